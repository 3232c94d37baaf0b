package eel

const (
	// maxLoopIterations caps loop() and while() so a runaway preset
	// expression can't hang the host. Matches ns-eel2's original bound.
	maxLoopIterations = 1048576

	// memBlocks and memSlotsPerBlock give the megabuf/gmegabuf geometry:
	// 128 blocks of 65536 slots each, for a total of 8,388,608 cells.
	memBlocks        = 128
	memSlotsPerBlock = 65536

	// registerCount is the size of the shared reg00..reg99 array.
	registerCount = 100

	// inlineArgCount is the maximum arity any intrinsic declares; Node
	// stores up to this many children inline rather than via a slice.
	inlineArgCount = 3
)
