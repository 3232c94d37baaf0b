package eel

import "fmt"

// parser is a minimal recursive-descent parser for the surface
// syntax: case-insensitive identifiers, decimal/hex numeric literals,
// `^` > unary > `* / %` > `+ -` > comparisons > `& |` > `&& ||` >
// assignment precedence, `;` statement separator, `name(args...)`
// calls, `name[index]` sugar for `name(index)`, and parens. It is
// intentionally small and hand-rolled rather than a generated grammar
// engine: the grammar itself is out of scope, this just needs to
// produce the tree builder's node stream from the test scenarios.
type parser struct {
	lex   *lexer
	tok   token
	b     *Builder
	input string
}

func parse(ctx *Context, code string) (*Node, error) {
	hex := true
	if ctx.cfg != nil {
		hex = ctx.cfg.GetBoolOr("parser.hex_literals", true)
	}
	p := &parser{lex: newLexer(code, hex), b: newBuilder(ctx), input: code}
	if err := p.advance(); err != nil {
		return nil, err
	}

	stmt, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf("unexpected trailing input near %q", p.tok.text)
	}
	if stmt == nil {
		stmt = p.b.CreateConstant(0)
	}
	return stmt.node, nil
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) errorf(format string, args ...interface{}) error {
	li := newLineIndex([]byte(p.input))
	// p.tok.cursor indexes the lexer's rune slice; lineCol wants a byte offset.
	line, col := li.lineCol(len(string(p.lex.input[:p.tok.cursor])))
	return &CompileError{
		Message:     fmt.Sprintf(format, args...),
		Line:        line,
		ColumnStart: col,
		ColumnEnd:   col + len(p.tok.text),
	}
}

func (p *parser) isPunct(s string) bool {
	return p.tok.kind == tokPunct && p.tok.text == s
}

func (p *parser) expectPunct(s string) error {
	if !p.isPunct(s) {
		return p.errorf("expected %q", s)
	}
	return p.advance()
}

// parseStatements parses a `;`-separated sequence, applying dead-store
// elimination via Builder.FlattenStatement as it goes.
func (p *parser) parseStatements() (*buildNode, error) {
	var result *buildNode
	for {
		if p.tok.kind == tokEOF || p.isPunct(")") {
			return result, nil
		}
		expr, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		result = p.b.FlattenStatement(result, expr)
		if !p.isPunct(";") {
			return result, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
}

// assignOps maps assignment punctuation to its intrinsic name.
var assignOps = map[string]string{
	"=": "=", "+=": "+=", "-=": "-=", "*=": "*=", "/=": "/=",
	"%=": "%=", "|=": "|=", "&=": "&=", "^=": "^=",
}

// parseAssign is right-associative and lowest precedence: `a = b = 5`
// assigns 5 to b, then the result to a.
func (p *parser) parseAssign() (*buildNode, error) {
	lhs, err := p.parseOrOr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind == tokPunct {
		if opName, ok := assignOps[p.tok.text]; ok {
			if err := p.advance(); err != nil {
				return nil, err
			}
			rhs, err := p.parseAssign()
			if err != nil {
				return nil, err
			}
			return p.call(opName, []*buildNode{lhs, rhs}, nil)
		}
	}
	return lhs, nil
}

func (p *parser) parseOrOr() (*buildNode, error) {
	return p.parseBinaryLeft(p.parseAndAnd, map[string]string{"||": "||"})
}

func (p *parser) parseAndAnd() (*buildNode, error) {
	return p.parseBinaryLeft(p.parseBitwise, map[string]string{"&&": "&&"})
}

func (p *parser) parseBitwise() (*buildNode, error) {
	return p.parseBinaryLeft(p.parseComparison, map[string]string{"|": "|", "&": "&"})
}

func (p *parser) parseComparison() (*buildNode, error) {
	return p.parseBinaryLeft(p.parseAdditive, map[string]string{
		"==": "==", "!=": "!=", "<=": "<=", ">=": ">=", "<": "<", ">": ">",
	})
}

func (p *parser) parseAdditive() (*buildNode, error) {
	return p.parseBinaryLeft(p.parseMultiplicative, map[string]string{"+": "+", "-": "-"})
}

func (p *parser) parseMultiplicative() (*buildNode, error) {
	return p.parseBinaryLeft(p.parseUnary, map[string]string{"*": "*", "/": "/", "%": "%"})
}

// parseBinaryLeft implements one left-associative precedence level:
// parse one operand via next, then fold in `(op operand)*` pairs whose
// punctuation matches ops.
func (p *parser) parseBinaryLeft(next func() (*buildNode, error), ops map[string]string) (*buildNode, error) {
	lhs, err := next()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokPunct {
		opName, ok := ops[p.tok.text]
		if !ok {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := next()
		if err != nil {
			return nil, err
		}
		lhs, err = p.call(opName, []*buildNode{lhs, rhs}, nil)
		if err != nil {
			return nil, err
		}
	}
	return lhs, nil
}

func (p *parser) parseUnary() (*buildNode, error) {
	if p.isPunct("-") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return p.call("_neg", []*buildNode{operand}, nil)
	}
	if p.isPunct("!") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return p.call("!", []*buildNode{operand}, nil)
	}
	return p.parsePower()
}

// parsePower is right-associative: `2^3^2` is `2^(3^2)`.
func (p *parser) parsePower() (*buildNode, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.isPunct("^") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return p.call("^", []*buildNode{lhs, rhs}, nil)
	}
	return lhs, nil
}

func (p *parser) parsePrimary() (*buildNode, error) {
	switch {
	case p.tok.kind == tokNumber:
		v := p.tok.number
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.b.CreateConstant(v), nil

	case p.isPunct("("):
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		return expr, nil

	case p.tok.kind == tokIdent:
		name := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parsePostfix(name)
	}
	return nil, p.errorf("expected an expression near %q", p.tok.text)
}

// parsePostfix handles `name(args...)` calls and `name[index]`
// subscript sugar (equivalent to `name(index)`); a bare identifier is
// a variable reference.
func (p *parser) parsePostfix(name string) (*buildNode, error) {
	if p.isPunct("(") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		args, err := p.parseArgList(")")
		if err != nil {
			return nil, err
		}
		return p.call(name, args, nil)
	}
	if p.isPunct("[") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		index, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct("]"); err != nil {
			return nil, err
		}
		return p.call(name, []*buildNode{index}, nil)
	}
	return p.b.CreateVariableReference(name), nil
}

func (p *parser) parseArgList(closing string) ([]*buildNode, error) {
	var args []*buildNode
	if p.isPunct(closing) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return args, nil
	}
	for {
		arg, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.isPunct(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if err := p.expectPunct(closing); err != nil {
			return nil, err
		}
		return args, nil
	}
}

// call resolves name against the builder's function table and
// constructs the call node, choosing the local or global memory bank
// for megabuf-family intrinsics.
func (p *parser) call(name string, args []*buildNode, bank *MemoryBank) (*buildNode, error) {
	intr, ok := p.b.LookupFunction(name)
	if !ok {
		return nil, p.errorf("invalid function %q", name)
	}
	if bank == nil {
		bank = p.bankFor(intr)
	}
	bn, err := p.b.CreateFunctionCall(intr, args, bank)
	if err != nil {
		return nil, p.errorf("%s", err.Error())
	}
	return bn, nil
}

// bankFor selects the memory bank a memory-family call should bind
// to: the context's local bank for megabuf/_mem, freembuf, memcpy and
// memset, the context's global bank (the process-global one unless the
// host supplied its own) for gmegabuf/_gmem, nil for everything else.
func (p *parser) bankFor(intr *intrinsic) *MemoryBank {
	switch foldName(intr.name) {
	case "megabuf", "_mem", "freembuf", "memcpy", "memset":
		return p.b.ctx.localBank
	case "gmegabuf", "_gmem":
		return p.b.ctx.globalBank
	default:
		return nil
	}
}
