package eel

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileAndRun(t *testing.T, ctx *Context, code string) F {
	t.Helper()
	program, err := ctx.Compile(code)
	require.NoError(t, err)
	require.NotNil(t, program)
	return program.Execute()
}

func TestEndToEndScenarios(t *testing.T) {
	type scenario struct {
		Name     string
		Code     string
		Expected F
		Check    func(t *testing.T, ctx *Context)
	}

	scenarios := []scenario{
		{
			Name:     "pythagorean distance",
			Code:     "x = 3; y = 4; sqrt(sqr(x)+sqr(y))",
			Expected: 5,
			Check: func(t *testing.T, ctx *Context) {
				assert.Equal(t, F(3), *ctx.RegisterVariable("x"))
				assert.Equal(t, F(4), *ctx.RegisterVariable("y"))
			},
		},
		{
			Name:     "megabuf round-trip",
			Code:     "megabuf(10) = 42; megabuf(10) + 1",
			Expected: 43,
			Check: func(t *testing.T, ctx *Context) {
				assert.Equal(t, F(42), *ctx.localBank.Slot(10))
			},
		},
		{
			Name:     "loop accumulation",
			Code:     "a = 0; loop(5, a = a + 2)",
			Expected: 10,
			Check: func(t *testing.T, ctx *Context) {
				assert.Equal(t, F(10), *ctx.RegisterVariable("a"))
			},
		},
		{
			Name:     "while countdown",
			Code:     "b = 10; while(b = b - 1)",
			Expected: 0,
			Check: func(t *testing.T, ctx *Context) {
				assert.Equal(t, F(0), *ctx.RegisterVariable("b"))
			},
		},
	}

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			ctx := NewContext(nil)
			got := compileAndRun(t, ctx, sc.Code)
			assert.Equal(t, sc.Expected, got)
			if sc.Check != nil {
				sc.Check(t, ctx)
			}
		})
	}
}

func TestIfAssignmentTarget(t *testing.T) {
	ctx := NewContext(nil)
	got := compileAndRun(t, ctx, "x = 0; if(x < 10, 1, y) = 99")
	assert.Equal(t, F(99), got)
	assert.Equal(t, F(0), *ctx.RegisterVariable("y"), "y must be untouched when the true branch was selected")

	ctx2 := NewContext(nil)
	got2 := compileAndRun(t, ctx2, "x = 100; if(x < 10, 1, y) = 99")
	assert.Equal(t, F(99), got2)
	assert.Equal(t, F(99), *ctx2.RegisterVariable("y"))
}

func TestConstantFoldingVisibleBeforeExecution(t *testing.T) {
	ctx := NewContext(nil)
	program, err := ctx.Compile("c = 5 + 3")
	require.NoError(t, err)

	root := program.Root()
	require.Equal(t, "call", root.NodeKind(), "root is the assignment node itself")
	args := root.Args()
	require.Len(t, args, 2)
	assert.Equal(t, "var", args[0].NodeKind())

	folded := args[1]
	require.Equal(t, "const", folded.NodeKind(), "5+3 must be folded before execution")
	v, ok := folded.ConstValue()
	require.True(t, ok)
	assert.Equal(t, F(8), v)

	result := program.Execute()
	assert.Equal(t, F(8), result)
	assert.Equal(t, F(8), *ctx.RegisterVariable("c"))
}

func TestBoundaryBehaviors(t *testing.T) {
	tests := []struct {
		Name     string
		Code     string
		Expected F
	}{
		{"divide by zero", "1/0", 0},
		{"modulo by zero", "5%0", 0},
		{"zero to negative power", "0^(-5)", 0},
		{"asin out of domain", "asin(2)", 0},
		{"acos out of domain", "acos(2)", 0},
		{"sqrt of negative", "sqrt(-25)", 5},
		{"modulo truncates operands", "5 % 1.9", 0},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			ctx := NewContext(nil)
			got := compileAndRun(t, ctx, tt.Code)
			assert.Equal(t, tt.Expected, got)
		})
	}
}

func TestWhileTerminatesAtIterationCap(t *testing.T) {
	ctx := NewContext(nil)
	got := compileAndRun(t, ctx, "n = 0; while(n = n + 1)")
	assert.Equal(t, F(maxLoopIterations), got, "a body that never nears zero only stops via the hard cap")
	assert.Equal(t, F(maxLoopIterations), *ctx.RegisterVariable("n"))
}

func TestLoopClampsHugeCount(t *testing.T) {
	ctx := NewContext(nil)
	got := compileAndRun(t, ctx, "x = 0; loop(1000000000000, x += 1)")
	assert.Equal(t, F(maxLoopIterations), got)
	assert.Equal(t, F(maxLoopIterations), *ctx.RegisterVariable("x"))
}

func TestMemcpyOverlapRoundTrip(t *testing.T) {
	ctx := NewContext(nil)
	program, err := ctx.Compile("megabuf(0) = 1; megabuf(1) = 2; megabuf(2) = 3; memcpy(1, 0, 3)")
	require.NoError(t, err)
	program.Execute()

	for k := 0; k < 3; k++ {
		got := *ctx.localBank.Slot(1 + k)
		want := F(k + 1)
		assert.Equal(t, want, got, "slot %d after overlapping memcpy", k)
	}
}

func TestResetVariablesKeepsCellIdentity(t *testing.T) {
	ctx := NewContext(nil)
	cell := ctx.RegisterVariable("score")
	*cell = 42

	ctx.ResetVariables()

	assert.Equal(t, F(0), *cell, "reset must zero the cell in place")
	assert.Same(t, cell, ctx.RegisterVariable("score"), "reset must not reallocate the cell")
}

func TestVariableAddressIsStableAcrossAllocations(t *testing.T) {
	ctx := NewContext(nil)
	first := ctx.RegisterVariable("alpha")
	for i := 0; i < variableSlabSize*3; i++ {
		ctx.RegisterVariable("v" + strconv.Itoa(i))
	}
	assert.Same(t, first, ctx.RegisterVariable("alpha"))
}
