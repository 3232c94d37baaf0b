package eel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrecedenceAndLiterals(t *testing.T) {
	tests := []struct {
		Name     string
		Code     string
		Expected F
	}{
		{"addition before comparison", "1 + 2 < 10", 1},
		{"multiplication binds tighter than addition", "2 + 3 * 4", 14},
		{"power binds tighter than unary minus operand grouping", "-2^2", -4},
		{"power is right associative", "2^3^2", 512},
		{"parens override precedence", "(2 + 3) * 4", 20},
		{"hex literal", "0x10 + 1", 17},
		{"comparison chain uses result as operand", "(1 < 2) + (3 < 2)", 1},
		{"logical and short circuits", "x = 0; 0 && (x = 1); x", 0},
		{"logical or short circuits", "x = 1; 1 || (x = 0); x", 1},
		{"bitwise or rounds operands", "1.6 | 0", 2},
		{"subscript sugar calls megabuf", "megabuf[5] = 9; megabuf[5]", 9},
		{"unary not", "!0", 1},
		{"assignment chains right to left", "a = b = 5; a", 5},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			ctx := NewContext(nil)
			program, err := ctx.Compile(tt.Code)
			require.NoError(t, err)
			got := program.Execute()
			assert.Equal(t, tt.Expected, got)
		})
	}
}

func TestParseReportsLocationOnSyntaxError(t *testing.T) {
	ctx := NewContext(nil)
	_, err := ctx.Compile("1 +")
	require.Error(t, err)
	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 1, ce.Line)
}

func TestParseReportsInvalidFunction(t *testing.T) {
	ctx := NewContext(nil)
	_, err := ctx.Compile("not_a_real_function(1)")
	require.Error(t, err)
}

func TestParseReportsInvalidArgumentCount(t *testing.T) {
	ctx := NewContext(nil)
	_, err := ctx.Compile("sin(1, 2)")
	require.Error(t, err)
}

func TestParseCaseInsensitiveFunctionNames(t *testing.T) {
	ctx := NewContext(nil)
	program, err := ctx.Compile("SQRT(16)")
	require.NoError(t, err)
	assert.Equal(t, F(4), program.Execute())
}
