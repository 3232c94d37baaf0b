package eel

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariableTableInternsCaseInsensitively(t *testing.T) {
	vt := newVariableTable()
	a := vt.lookup("Foo")
	b := vt.lookup("foo")
	c := vt.lookup("FOO")
	assert.Same(t, a, b)
	assert.Same(t, a, c)
}

func TestVariableTableInitialValueIsZero(t *testing.T) {
	vt := newVariableTable()
	assert.Equal(t, F(0), *vt.lookup("fresh"))
}

func TestVariableTableCellsStayStableAcrossSlabGrowth(t *testing.T) {
	vt := newVariableTable()
	first := vt.lookup("first")
	*first = 11

	for i := 0; i < variableSlabSize*4; i++ {
		vt.lookup("gen" + strconv.Itoa(i))
	}

	assert.Same(t, first, vt.lookup("first"))
	assert.Equal(t, F(11), *first)
}

func TestVariableTableResetZeroesWithoutReallocating(t *testing.T) {
	vt := newVariableTable()
	cell := vt.lookup("a")
	*cell = 42
	vt.reset()
	assert.Equal(t, F(0), *cell)
	assert.Same(t, cell, vt.lookup("a"))
}

func TestVariableTableSnapshot(t *testing.T) {
	vt := newVariableTable()
	*vt.lookup("a") = 1
	*vt.lookup("b") = 2
	snap := vt.snapshot()
	assert.Equal(t, F(1), snap["a"])
	assert.Equal(t, F(2), snap["b"])
}
