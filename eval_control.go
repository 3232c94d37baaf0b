package eel

// evalConst is the evaluator bound to every <const> node: it writes
// the node's own literal value into the caller's result cell.
func evalConst(n *Node, result *F) *F {
	*result = n.value
	return result
}

// evalVar is the evaluator bound to every <var> node: it rebinds the
// result pointer to the bound variable's stable cell, so assignment
// through it writes directly into the variable's storage.
func evalVar(n *Node, result *F) *F {
	return n.varRef
}

// evalList evaluates each statement of an instruction list in order,
// rebinding to the last one's reference.
func evalList(n *Node, result *F) *F {
	var ref *F = result
	for _, stmt := range n.list {
		n.value = 0
		scratch := &n.value
		ref = stmt.Eval(scratch)
	}
	return ref
}

// evalIf evaluates the condition by value, then evaluates and returns
// (by reference) whichever branch was selected, so `if(c,a,b) = v` is
// a valid assignment target.
func evalIf(n *Node, result *F) *F {
	n.value = 0
	cond := n.args[0].Eval(&n.value)
	if *cond != 0 {
		return n.args[1].Eval(result)
	}
	return n.args[2].Eval(result)
}

// evalExec2 evaluates both arguments left to right, discarding the
// first and returning the second's reference.
func evalExec2(n *Node, result *F) *F {
	n.value = 0
	scratch := &n.value
	n.args[0].Eval(scratch)
	return n.args[1].Eval(result)
}

// evalExec3 evaluates all three arguments left to right, returning the
// last one's reference.
func evalExec3(n *Node, result *F) *F {
	n.value = 0
	scratch := &n.value
	n.args[0].Eval(scratch)
	n.args[1].Eval(scratch)
	return n.args[2].Eval(result)
}

// evalLoop evaluates the count by value, clamps it to
// [0, maxLoopIterations] after truncation, then evaluates body that
// many times, returning body's last reference.
func evalLoop(n *Node, result *F) *F {
	n.value = 0
	countRef := n.args[0].Eval(&n.value)
	count := truncToInt(*countRef)
	if count > maxLoopIterations {
		count = maxLoopIterations
	}
	if count < 0 {
		count = 0
	}

	ref := result
	for i := 0; i < count; i++ {
		n.value = 0
		ref = n.args[1].Eval(&n.value)
	}
	return ref
}

// evalWhile evaluates body repeatedly, at most maxLoopIterations
// times, stopping when the body's result is within epsLow of zero.
func evalWhile(n *Node, result *F) *F {
	ref := result
	remaining := maxLoopIterations
	for {
		n.value = 0
		ref = n.args[0].Eval(&n.value)
		remaining--
		if fabs(*ref) <= epsLow || remaining <= 0 {
			break
		}
	}
	return ref
}
