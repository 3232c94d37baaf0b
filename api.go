package eel

// Close releases the context's local memory bank (the large sparse
// blocks it allocated on demand) without invalidating the Context
// itself. It exists for symmetry with hosts that want deterministic
// buffer release (e.g. before a preset switch); Go's GC otherwise
// reclaims everything a C host would have to free by hand.
func (c *Context) Close() {
	c.localBank.Destroy()
}

// Close releases every allocated block of this bank; the bank stays
// usable and reads back as zero afterwards. Called on the gmegabuf bank
// it affects every context sharing that bank.
func (b *MemoryBank) Close() {
	b.Destroy()
}

// NewGlobalMemoryBank returns the process-global memory bank that
// gmegabuf/_gmem calls bind to, creating it on first use.
func NewGlobalMemoryBank() *MemoryBank {
	return globalMemoryBank()
}
