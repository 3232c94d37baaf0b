package eel

// Context is the compile-time home for one preset's (or one family of
// related presets') variables, custom functions, and memory. It
// borrows the global memory bank and register array by default, and
// owns a local bank private to programs compiled from it.
//
// A Context is not safe for concurrent Compile calls; the host is
// expected to serialize compilation the way it serializes everything
// else that touches a single preset's state.
type Context struct {
	cfg        *Config
	functions  map[string]*intrinsic
	variables  *variableTable
	registers  *Registers
	localBank  *MemoryBank
	globalBank *MemoryBank
	lastErr    *CompileError
}

// NewContext allocates a context with its own local memory bank and
// variable table, borrowing the process-global gmegabuf bank and
// reg00..reg99 array. Pass nil for cfg to use NewConfig's defaults.
// Equivalent to NewContextWithGlobals(cfg, nil, nil).
func NewContext(cfg *Config) *Context {
	return NewContextWithGlobals(cfg, nil, nil)
}

// NewContextWithGlobals is NewContext's full constructor, mirroring
// the original API's `projectm_eval_context_create(global_mem,
// global_variables)`: a host can supply its own gmegabuf bank and its
// own reg00..reg99 array to share across a group of contexts instead
// of using the process-wide defaults. Pass nil for either to fall
// back to the process global (globalMemoryBank's gmegabuf singleton, or
// globalRegisters' shared register array).
func NewContextWithGlobals(cfg *Config, globalBank *MemoryBank, registers *Registers) *Context {
	if cfg == nil {
		cfg = NewConfig()
	}
	if globalBank == nil {
		globalBank = globalMemoryBank()
	}
	if registers == nil {
		registers = globalRegisters()
	}
	functions := make(map[string]*intrinsic, len(intrinsicTable))
	for i := range intrinsicTable {
		entry := intrinsicTable[i]
		functions[entry.name] = &entry
	}
	return &Context{
		cfg:        cfg,
		functions:  functions,
		variables:  newVariableTable(),
		registers:  registers,
		localBank:  NewMemoryBank(),
		globalBank: globalBank,
	}
}

// RegisterVariable interns name (creating it with initial value 0 on
// first reference) and returns its stable cell, letting a host read
// or write a preset variable between executions.
func (c *Context) RegisterVariable(name string) *F {
	return c.resolveVariable(name)
}

// resolveVariable dispatches reg00..reg99 names to the shared
// register array and everything else to the context's own variable
// table.
func (c *Context) resolveVariable(name string) *F {
	if cell := c.registers.lookup(name); cell != nil {
		return cell
	}
	return c.variables.lookup(name)
}

// RegisterFunction adds or overrides a custom intrinsic, keyed
// case-insensitively, extending the table a Context started with.
func (c *Context) RegisterFunction(name string, eval evalFunc, arity int, pure, stateChanging bool) {
	c.functions[foldName(name)] = &intrinsic{
		name:          foldName(name),
		eval:          eval,
		arity:         arity,
		pure:          pure,
		stateChanging: stateChanging,
	}
}

func (c *Context) lookupFunction(name string) (*intrinsic, bool) {
	intr, ok := c.functions[foldName(name)]
	return intr, ok
}

// ResetVariables zeroes every interned variable cell, including ones a
// host registered directly, without invalidating any pointer a
// compiled program already holds. Hosts call this between preset
// loads. It does not touch the register array: reg00..reg99 are
// shared across every context pointing at the same array (the
// process-global default included), so a reset scoped to one context
// must not clobber state a concurrently-running context still depends
// on.
func (c *Context) ResetVariables() {
	c.variables.reset()
}

// Variables returns a snapshot of every interned (non-register)
// variable's current value, keyed by its folded name.
func (c *Context) Variables() map[string]F {
	return c.variables.snapshot()
}

// Err returns the last compile error recorded against this context,
// or nil if the most recent Compile succeeded.
func (c *Context) Err() *CompileError {
	return c.lastErr
}

func (c *Context) fail(msg string, line, colStart, colEnd int) {
	c.lastErr = &CompileError{Message: msg, Line: line, ColumnStart: colStart, ColumnEnd: colEnd}
}

// Compile parses code, builds its expression tree against this
// context (interning variables, folding constants, eliding dead
// stores), and on success hands the root node to a new Program. The
// context's variables and custom functions persist across multiple
// Compile calls; only the tree itself is scoped to the returned
// Program.
func (c *Context) Compile(code string) (*Program, error) {
	c.lastErr = nil
	root, err := parse(c, code)
	if err != nil {
		c.lastErr = asCompileError(err)
		return nil, c.lastErr
	}
	return &Program{root: root, ctx: c}, nil
}
