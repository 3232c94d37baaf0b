package eel

// evalFunc is the evaluator for one tree node. It receives the node
// itself and a pointer to the caller's scratch result cell.
//
// By-value evaluators (arithmetic, comparisons, math wrappers) write
// into *result and return result unchanged. By-reference evaluators
// (variable, memory access, assignment, if, list, loop, while, exec2,
// exec3) leave *result untouched and return a different, addressable
// cell instead — a variable's storage, a memory bank slot, or the
// node's own scratch value field. This is the Go rendering of the
// pointer-rebinding protocol described in the design notes: returning
// a (possibly different) *F plays the role a pointer-to-pointer would
// in C, without needing a tagged CellHandle enum.
type evalFunc func(n *Node, result *F) *F

// nodeKind distinguishes the three pseudo-functions the tree builder
// uses internally from ordinary intrinsic calls and instruction lists.
type nodeKind int

const (
	nodeKindCall nodeKind = iota
	nodeKindConst
	nodeKindVar
	nodeKindList
)

// Node is the sole run-time unit of a compiled expression tree. Every
// sub-node is owned by exactly one parent; Go's garbage collector
// reclaims the tree once its Program is dropped, so there is no
// explicit destroy path (unlike the C original, which free()s nodes
// recursively).
type Node struct {
	kind   nodeKind
	intr   *intrinsic // nil for <const>/<var>/<list>
	value  F          // constant value, or scratch cell during evaluation
	eval   evalFunc
	varRef *F          // bound variable cell, for nodeKindVar
	bank   *MemoryBank // bound memory bank, for megabuf/gmegabuf call nodes
	args   [3]*Node    // up to 3 children for operator/function nodes
	argc   int
	list   []*Node // ordered statements, for nodeKindList
}

// NodeKind reports the node's kind ("const", "var", "list" or "call"),
// so hosts and tests can inspect the shape of a compiled tree, e.g. to
// see that constant folding took effect before execution.
func (n *Node) NodeKind() string {
	switch n.kind {
	case nodeKindConst:
		return "const"
	case nodeKindVar:
		return "var"
	case nodeKindList:
		return "list"
	default:
		return "call"
	}
}

// ConstValue returns the node's literal value and true if NodeKind()
// reports "const"; otherwise it returns (0, false).
func (n *Node) ConstValue() (F, bool) {
	if n.kind != nodeKindConst {
		return 0, false
	}
	return n.value, true
}

// Args returns the node's argument sub-trees, for introspection/tests.
func (n *Node) Args() []*Node { return n.args[:n.argc] }

// Eval runs the node's evaluator against result, returning the cell
// holding the authoritative value (result itself, or a rebound cell).
func (n *Node) Eval(result *F) *F {
	return n.eval(n, result)
}
