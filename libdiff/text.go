package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/recordkit/container"
)

// Text returns a line diff of the String forms of a and b, or "" when they
// render the same.
func Text(a, b *container.Record) string {
	return DiffString(a.String()+"\n", b.String()+"\n")
}

// DiffString returns a line diff of from and to. Lines are prefixed with
// "-" when only in from, "+" when only in to and " " otherwise. The result
// is "" when from and to are equal.
func DiffString(from, to string) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	r1, r2, lines := diffCfg.DiffLinesToRunes(from, to)
	diffs := diffCfg.DiffMainRunes(r1, r2, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	buf := &strings.Builder{}
	for _, diff := range diffs {
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String()
}
