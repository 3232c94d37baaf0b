package eel

// Program is a compiled expression tree bound to the Context it was
// built from. It owns its root Node; the Context it borrows stays
// alive independently so its variables survive across Program
// instances (the same Context can compile one program per preset
// frame, or keep reusing one compiled Program's Execute call).
type Program struct {
	root *Node
	ctx  *Context
}

// Execute runs the tree once and returns the value of its final
// statement (or its only statement, for a single expression).
func (p *Program) Execute() F {
	var scratch F
	ref := p.root.Eval(&scratch)
	return *ref
}

// Root exposes the compiled tree for introspection (NodeKind,
// ConstValue, Args), e.g. to confirm constant folding took effect
// before ever calling Execute.
func (p *Program) Root() *Node {
	return p.root
}
