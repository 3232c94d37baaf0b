package eel

import (
	"sort"
	"unicode/utf8"
)

// lineIndex converts byte cursor offsets into 1-based line/column
// pairs for CompileError locations. It stores the start byte offset
// of each line and binary searches line starts, so locating a cursor
// costs O(log lines) after one O(n) pass over the input.
type lineIndex struct {
	input     []byte
	lineStart []int
}

func newLineIndex(input []byte) *lineIndex {
	lineStart := make([]int, 1, 64)
	lineStart[0] = 0
	for i, b := range input {
		if b == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &lineIndex{input: input, lineStart: lineStart}
}

// lineCol returns the 1-based line and column for a byte cursor,
// clamped to the input's bounds. Column counts runes, not bytes.
func (li *lineIndex) lineCol(cursor int) (line, col int) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(li.input) {
		cursor = len(li.input)
	}

	lineIdx := sort.Search(len(li.lineStart), func(i int) bool {
		return li.lineStart[i] > cursor
	}) - 1
	if lineIdx < 0 {
		lineIdx = 0
	}

	start := li.lineStart[lineIdx]
	col = utf8.RuneCount(li.input[start:cursor]) + 1
	return lineIdx + 1, col
}
