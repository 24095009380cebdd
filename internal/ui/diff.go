package ui

import (
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp marks a line in a line diff.
type DiffOp byte

const (
	DiffEqual  DiffOp = ' '
	DiffInsert DiffOp = '+'
	DiffDelete DiffOp = '-'
)

// DiffLine is one line of a line diff, without its trailing newline.
type DiffLine struct {
	Op   DiffOp
	Text string
}

// LineDiff compares old and new line by line.
func LineDiff(old, new string) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(old, new)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []DiffLine
	for _, d := range diffs {
		op := DiffEqual
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = DiffInsert
		case diffmatchpatch.DiffDelete:
			op = DiffDelete
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out = append(out, DiffLine{Op: op, Text: strings.TrimSuffix(line, "\n")})
		}
	}
	return out
}

// WriteDiff writes a colored line diff of old and new to w, with from and to
// as the file labels. Unchanged lines are omitted. Returns false when the
// inputs are identical.
func WriteDiff(w io.Writer, from, to, old, new string) bool {
	if old == new {
		return false
	}

	Bold.Fprintf(w, "--- %s\n+++ %s\n", from, to)
	for _, line := range LineDiff(old, new) {
		switch line.Op {
		case DiffInsert:
			Green.Fprintf(w, "+%s\n", line.Text)
		case DiffDelete:
			Red.Fprintf(w, "-%s\n", line.Text)
		}
	}
	return true
}
