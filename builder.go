package eel

import "fmt"

// buildNode is the compiler-time node wrapper: the node under
// construction plus the two flags that drive folding and dead-store
// decisions. It is discarded once compilation finishes; the run-time
// Node tree carries no trace of it.
type buildNode struct {
	node          *Node
	constEval     bool // depends only on numeric literals and pure functions of constants
	stateChanging bool // writes a variable or memory, or calls an impure function
}

// Builder constructs the run-time Node tree for a Context, one
// production at a time, folding constant subexpressions and eliding
// dead stores as it goes.
type Builder struct {
	ctx *Context
}

func newBuilder(ctx *Context) *Builder {
	return &Builder{ctx: ctx}
}

// CreateConstant wraps a numeric literal.
func (b *Builder) CreateConstant(v F) *buildNode {
	return &buildNode{
		node:      &Node{kind: nodeKindConst, value: v, eval: evalConst},
		constEval: true,
	}
}

// CreateVariableReference interns name case-insensitively, creating
// the backing cell on first use with initial value 0. A variable read
// is pure (no side effect) but not constant-evaluable: its value can
// change between compile time and run time.
func (b *Builder) CreateVariableReference(name string) *buildNode {
	cell := b.ctx.resolveVariable(name)
	return &buildNode{
		node: &Node{kind: nodeKindVar, varRef: cell, eval: evalVar},
	}
}

// LookupFunction resolves name against the context's function list.
func (b *Builder) LookupFunction(name string) (*intrinsic, bool) {
	return b.ctx.lookupFunction(name)
}

// CreateFunctionCall validates argc against intr's declared arity,
// wires the node, and constant-folds it when the call and all its
// arguments are pure and constant, unless compiler.optimize is off.
func (b *Builder) CreateFunctionCall(intr *intrinsic, args []*buildNode, bank *MemoryBank) (*buildNode, error) {
	if intr.arity >= 0 && len(args) != intr.arity {
		return nil, fmt.Errorf("invalid argument count for %q: expected %d, got %d", intr.name, intr.arity, len(args))
	}

	if len(args) > inlineArgCount {
		return nil, fmt.Errorf("invalid argument count for %q: at most %d arguments", intr.name, inlineArgCount)
	}

	n := &Node{kind: nodeKindCall, intr: intr, eval: intr.eval, bank: bank}
	constEval := intr.pure
	stateChanging := intr.stateChanging

	n.argc = len(args)
	for i, a := range args {
		n.args[i] = a.node
		constEval = constEval && a.constEval
		stateChanging = stateChanging || a.stateChanging
	}

	bn := &buildNode{node: n, constEval: constEval, stateChanging: stateChanging}

	if constEval && !stateChanging && b.ctx.cfg.GetBoolOr("compiler.optimize", true) {
		return b.fold(bn), nil
	}
	return bn, nil
}

// fold evaluates bn's subtree immediately and replaces it with a
// <const> node carrying the result. The original sub-tree becomes
// unreachable and is reclaimed by the garbage collector.
func (b *Builder) fold(bn *buildNode) *buildNode {
	var scratch F
	ref := bn.node.Eval(&scratch)
	folded := b.CreateConstant(*ref)
	folded.stateChanging = false
	return folded
}

// FlattenStatement implements the three dead-store elimination rules:
// a pure, discarded statement vanishes; a statement list's dropped
// pure tail is replaced by next; otherwise next is appended.
func (b *Builder) FlattenStatement(prev, next *buildNode) *buildNode {
	if prev == nil {
		return next
	}
	if next == nil {
		return prev
	}

	if prev.node.kind != nodeKindList {
		if !prev.stateChanging {
			return next
		}
		list := &buildNode{
			node:          &Node{kind: nodeKindList, eval: evalList, list: []*Node{prev.node, next.node}},
			constEval:     next.constEval,
			stateChanging: next.stateChanging,
		}
		return list
	}

	// prev.stateChanging already reflects the current last item (it was
	// set from that item's own flags the last time FlattenStatement ran),
	// so no re-inspection of the tree is needed to drop it.
	items := prev.node.list
	if len(items) > 0 && !prev.stateChanging {
		items = items[:len(items)-1]
	}
	prev.node.list = append(items, next.node)
	prev.constEval = next.constEval
	prev.stateChanging = next.stateChanging
	return prev
}
