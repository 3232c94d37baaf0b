//go:build eel32

package eel

import "math"

// F is the numeric scalar type backing every variable cell, memory
// bank slot, and node value in the tree. This build selects the
// 32-bit IEEE-754 variant; the default build (no -tags) uses float64.
type F = float32

const (
	// epsHigh is the loose-equality / band/bor / sigmoid-guard tolerance.
	epsHigh F = 1e-5
	// epsLow is used by the logical operators and while's termination test.
	epsLow F = 1e-41

	// invSqrtMagicF32 is the classic fast-inverse-square-root constant.
	invSqrtMagicF32 uint32 = 0x5F3759DF
)

// invSqrt is the fast inverse square root, Milkdrop style: one
// magic-constant bit-twiddle followed by a single Newton iteration.
func invSqrt(v F) F {
	const threeHalfs = 1.5
	half := v * 0.5
	bits := invSqrtMagicF32 - (math.Float32bits(v) >> 1)
	y := math.Float32frombits(bits)
	y = y * (threeHalfs - half*y*y)
	return y
}
