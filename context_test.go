package eel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContextWithGlobalsSharesSuppliedBank(t *testing.T) {
	bank := NewMemoryBank()
	ctx1 := NewContextWithGlobals(nil, bank, nil)
	ctx2 := NewContextWithGlobals(nil, bank, nil)

	_, err := compileAndExec(t, ctx1, "gmegabuf(3) = 7")
	require.NoError(t, err)

	got, err := compileAndExec(t, ctx2, "gmegabuf(3)")
	require.NoError(t, err)
	assert.Equal(t, F(7), got)
}

func TestNewContextWithGlobalsSharesSuppliedRegisters(t *testing.T) {
	regs := NewRegisters()
	ctx1 := NewContextWithGlobals(nil, nil, regs)
	ctx2 := NewContextWithGlobals(nil, nil, regs)

	_, err := compileAndExec(t, ctx1, "reg05 = 11")
	require.NoError(t, err)

	got, err := compileAndExec(t, ctx2, "reg05")
	require.NoError(t, err)
	assert.Equal(t, F(11), got)
}

func TestResetVariablesDoesNotClobberSharedRegisters(t *testing.T) {
	regs := NewRegisters()
	ctx1 := NewContextWithGlobals(nil, nil, regs)
	ctx2 := NewContextWithGlobals(nil, nil, regs)

	_, err := compileAndExec(t, ctx2, "reg07 = 99")
	require.NoError(t, err)

	ctx1.ResetVariables()

	got, err := compileAndExec(t, ctx1, "reg07")
	require.NoError(t, err)
	assert.Equal(t, F(99), got, "resetting ctx1's variables must not zero a register ctx2 still depends on")
}

func TestNewContextWithGlobalsNilFallsBackToProcessDefaults(t *testing.T) {
	ctx := NewContextWithGlobals(nil, nil, nil)
	got, err := compileAndExec(t, ctx, "reg10 = 4; gmegabuf(1) = 2; reg10 + gmegabuf(1)")
	require.NoError(t, err)
	assert.Equal(t, F(6), got)
}

func compileAndExec(t *testing.T, ctx *Context, code string) (F, error) {
	t.Helper()
	program, err := ctx.Compile(code)
	if err != nil {
		return 0, err
	}
	return program.Execute(), nil
}
