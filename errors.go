package eel

import "fmt"

// CompileError reports a single syntax or tree-construction failure,
// located by line and column range in the source the compile call was
// given. A Context holds at most one of these at a time: a later
// error overwrites an earlier one, mirroring the original's
// single-slot error record.
type CompileError struct {
	Message     string
	Line        int
	ColumnStart int
	ColumnEnd   int
}

func (e *CompileError) Error() string {
	if e.Line == 0 && e.ColumnStart == 0 {
		return e.Message
	}
	if e.ColumnStart == e.ColumnEnd {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.ColumnStart, e.Message)
	}
	return fmt.Sprintf("%d:%d..%d: %s", e.Line, e.ColumnStart, e.ColumnEnd, e.Message)
}

// asCompileError normalizes any error the parser surfaces into a
// *CompileError; the parser only ever constructs CompileErrors
// itself, but this keeps Context.Compile's contract solid against
// future parser changes that might return a plain error.
func asCompileError(err error) *CompileError {
	if ce, ok := err.(*CompileError); ok {
		return ce
	}
	return &CompileError{Message: err.Error()}
}
