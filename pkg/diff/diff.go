// Package diff renders line-oriented differences between two encoded
// palettes.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Result is a line diff between two documents.
type Result struct {
	Text    string
	Added   int
	Removed int
}

// Empty reports whether both documents were identical.
func (r Result) Empty() bool { return r.Added == 0 && r.Removed == 0 }

// Lines compares before and after line by line and renders the result in
// unified style without hunk headers. Identical inputs give an empty Result.
// Output beyond 10,000 lines is truncated with a marker.
func Lines(before, after []byte, beforeLabel, afterLabel string) Result {
	if bytes.Equal(before, after) {
		return Result{}
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var (
		buf     bytes.Buffer
		res     Result
		written int
	)
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				res.Removed++
			case diffmatchpatch.DiffInsert:
				res.Added++
			}
			if written == maxDiffLines {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
			written++
		}
	}
	if written == maxDiffLines && res.Added+res.Removed > 0 {
		buf.WriteString(truncateMessage)
		buf.WriteByte('\n')
	}

	res.Text = buf.String()
	return res
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
