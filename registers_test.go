package eel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistersLookup(t *testing.T) {
	tests := []struct {
		Name  string
		Input string
		Found bool
	}{
		{"lowercase reg00", "reg00", true},
		{"uppercase REG99", "REG99", true},
		{"mixed case ReG42", "ReG42", true},
		{"out of range reg100", "reg100", false},
		{"not a register name", "regular", false},
		{"missing digits", "reg", false},
		{"ordinary variable", "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			r := NewRegisters()
			cell := r.lookup(tt.Input)
			if tt.Found {
				assert.NotNil(t, cell)
			} else {
				assert.Nil(t, cell)
			}
		})
	}
}

func TestRegistersShareStorageAcrossCase(t *testing.T) {
	r := NewRegisters()
	a := r.lookup("reg05")
	b := r.lookup("REG05")
	assert.Same(t, a, b)

	*a = 17
	assert.Equal(t, F(17), *b)
}

func TestRegistersReset(t *testing.T) {
	r := NewRegisters()
	cell := r.lookup("reg01")
	*cell = 5
	r.reset()
	assert.Equal(t, F(0), *cell)
}
