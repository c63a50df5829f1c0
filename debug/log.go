package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
)

var out io.Writer = os.Stderr

// Logf formats msg with args to stderr.  *ir.Node arguments are rendered as
// their projection; maps and slices of any as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil node>"
				continue
			}
			args[i] = encode.MustString(x)
		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
