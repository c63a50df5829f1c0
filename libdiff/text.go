package libdiff

import (
	"strings"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Text returns a line diff of the projections of from and to, indented by
// two spaces per level.  Each line is prefixed by "-" if only in from, "+"
// if only in to, and " " otherwise.  Equal documents give "".
func Text(from, to *ir.Node) string {
	fromText := encode.MustString(from, encode.EncodeIndent(2)) + "\n"
	toText := encode.MustString(to, encode.EncodeIndent(2)) + "\n"
	if fromText == toText {
		return ""
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(fromText, toText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	buf := &strings.Builder{}
	for _, diff := range diffs {
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
		}
	}
	return buf.String()
}
