//go:build !eel32

package eel

import "math"

// F is the numeric scalar type backing every variable cell, memory
// bank slot, and node value in the tree. This build selects the
// 64-bit IEEE-754 variant; build with -tags eel32 for the 32-bit one.
type F = float64

const (
	// epsHigh is the loose-equality / band/bor / sigmoid-guard tolerance.
	epsHigh F = 1e-5
	// epsLow is used by the logical operators and while's termination test.
	epsLow F = 1e-300

	// invSqrtMagicF64 is the classic fast-inverse-square-root constant.
	invSqrtMagicF64 uint64 = 0x5FE6EB50C7B537A9
)

// invSqrt is the fast inverse square root, Milkdrop style: one
// magic-constant bit-twiddle followed by a single Newton iteration.
func invSqrt(v F) F {
	const threeHalfs = 1.5
	half := v * 0.5
	bits := invSqrtMagicF64 - (math.Float64bits(v) >> 1)
	y := math.Float64frombits(bits)
	y = y * (threeHalfs - half*y*y)
	return y
}
