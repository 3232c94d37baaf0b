package eel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryBankSlotStability(t *testing.T) {
	bank := NewMemoryBank()

	first := bank.Slot(42)
	again := bank.Slot(42)
	assert.Same(t, first, again, "repeated access to the same slot must return the same cell")

	*first = 7
	assert.Equal(t, F(7), *bank.Slot(42))
}

func TestMemoryBankOutOfRangeReturnsNil(t *testing.T) {
	bank := NewMemoryBank()
	assert.Nil(t, bank.Slot(-1))
	assert.Nil(t, bank.Slot(memBlocks*memSlotsPerBlock))
}

func TestMemoryBankFreeAllZeroesButStaysUsable(t *testing.T) {
	bank := NewMemoryBank()
	*bank.Slot(5) = 99
	bank.FreeAll()
	assert.Equal(t, F(0), *bank.Slot(5))
}

func TestMemoryBankCrossesBlockBoundary(t *testing.T) {
	bank := NewMemoryBank()
	*bank.Slot(memSlotsPerBlock - 1) = 1
	*bank.Slot(memSlotsPerBlock) = 2
	assert.Equal(t, F(1), *bank.Slot(memSlotsPerBlock-1))
	assert.Equal(t, F(2), *bank.Slot(memSlotsPerBlock))
}

func TestNopLockerIsSafeToUse(t *testing.T) {
	bank := NewMemoryBankWithLocker(NopLocker{})
	*bank.Slot(0) = 5
	assert.Equal(t, F(5), *bank.Slot(0))
}

func TestGlobalMemoryBankIsASingleton(t *testing.T) {
	a := globalMemoryBank()
	b := globalMemoryBank()
	assert.Same(t, a, b)
}
