package eel

import (
	"regexp"
	"strconv"
	"sync"
)

// registerNamePattern matches the reg00..reg99 naming convention for
// a fixed array of 100 scalars shared by every context that uses the
// same Registers (the process-wide one by default).
var registerNamePattern = regexp.MustCompile(`^reg([0-9]{2})$`)

// Registers wraps the shared register array so reg00..reg99 lookups
// are validated once (name shape, index range) instead of being an
// ad-hoc string check at every variable resolution site.
type Registers struct {
	cells [registerCount]F
}

// NewRegisters allocates a fresh, zeroed reg00..reg99 array a host can
// hand to NewContextWithGlobals in place of the process-wide default,
// matching the original API's caller-supplied register array
// parameter (`projectm_eval_context_create`'s second argument).
func NewRegisters() *Registers {
	return &Registers{}
}

// lookup returns the cell for name if it matches the reg00..reg99
// convention, or nil otherwise.
func (r *Registers) lookup(name string) *F {
	m := registerNamePattern.FindStringSubmatch(foldName(name))
	if m == nil {
		return nil
	}
	idx, err := strconv.Atoi(m[1])
	if err != nil || idx < 0 || idx >= registerCount {
		return nil
	}
	return &r.cells[idx]
}

func (r *Registers) reset() {
	for i := range r.cells {
		r.cells[i] = 0
	}
}

// globalRegisters is the process-wide reg00..reg99 array contexts
// borrow by default, matching megabuf's global/local split.
var (
	globalRegistersOnce sync.Once
	globalRegistersVal  *Registers
)

func globalRegisters() *Registers {
	globalRegistersOnce.Do(func() {
		globalRegistersVal = NewRegisters()
	})
	return globalRegistersVal
}
