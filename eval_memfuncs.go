package eel

// evalMem backs megabuf/gmegabuf (and their _mem/_gmem aliases). The
// tree builder binds n.bank to the local or global memory bank
// depending on which name was used; this evaluator itself is shared,
// matching the original table's single dispatch for both names.
func evalMem(n *Node, result *F) *F {
	n.value = 0
	idxRef := n.args[0].Eval(&n.value)
	// lrint(i + 0.0001): a small bias nudges values that are exactly
	// between two integers towards the expected slot.
	idx := roundToInt(*idxRef + 0.0001)

	if slot := n.bank.Slot(idx); slot != nil {
		return slot
	}
	*result = 0
	return result
}

// evalFreeMBuf evaluates i (its value is discarded other than being
// returned), frees every block in the node's bank, and returns i.
func evalFreeMBuf(n *Node, result *F) *F {
	ref := n.args[0].Eval(result)
	n.bank.FreeAll()
	return ref
}

// evalMemcpy copies floor(n) slots from src to dst, choosing copy
// direction by pointer order so overlapping ranges behave correctly,
// and returns dst.
func evalMemcpy(n *Node, result *F) *F {
	var dstV, srcV, cntV F
	dstRef := n.args[0].Eval(&dstV)
	srcRef := n.args[1].Eval(&srcV)
	cntRef := n.args[2].Eval(&cntV)

	dst := roundToInt(*dstRef)
	src := roundToInt(*srcRef)
	count := truncToInt(*cntRef)

	if count > 0 {
		if dst <= src {
			for i := 0; i < count; i++ {
				copyOneSlot(n.bank, dst+i, src+i)
			}
		} else {
			for i := count - 1; i >= 0; i-- {
				copyOneSlot(n.bank, dst+i, src+i)
			}
		}
	}

	*result = *dstRef
	return result
}

func copyOneSlot(bank *MemoryBank, dst, src int) {
	srcSlot := bank.Slot(src)
	dstSlot := bank.Slot(dst)
	if srcSlot == nil || dstSlot == nil {
		return
	}
	*dstSlot = *srcSlot
}

// evalMemset fills floor(n) slots starting at dst with v, and returns dst.
func evalMemset(n *Node, result *F) *F {
	var dstV, valV, cntV F
	dstRef := n.args[0].Eval(&dstV)
	valRef := n.args[1].Eval(&valV)
	cntRef := n.args[2].Eval(&cntV)

	dst := roundToInt(*dstRef)
	count := truncToInt(*cntRef)

	for i := 0; i < count; i++ {
		if slot := n.bank.Slot(dst + i); slot != nil {
			*slot = *valRef
		}
	}

	*result = *dstRef
	return result
}
