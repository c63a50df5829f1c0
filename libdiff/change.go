package libdiff

import (
	"fmt"

	"github.com/signadot/jdoc/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return "<unknown op>"
	}
}

// Change is a difference between two documents.  Path locates From in the
// source document for Delete and Replace, and To in the target document for
// Insert.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

func (c *Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s %s", c.Op, c.Path, c.To.Text())
	case Delete:
		return fmt.Sprintf("%s %s %s", c.Op, c.Path, c.From.Text())
	case Replace:
		return fmt.Sprintf("%s %s %s -> %s", c.Op, c.Path, c.From.Text(), c.To.Text())
	default:
		panic("op")
	}
}

// Reverse returns the changes which undo cs, that is the changes from the
// target document back to the source.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i := range cs {
		c := cs[i]
		c.From, c.To = c.To, c.From
		switch c.Op {
		case Insert:
			c.Op = Delete
		case Delete:
			c.Op = Insert
		}
		res[i] = c
	}
	return res
}
