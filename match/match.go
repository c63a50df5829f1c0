package match

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"
)

var ErrNotBool = errors.New("expression result is not a bool")

// Matcher is a compiled selection expression.  A Matcher is not safe for
// concurrent use.
type Matcher struct {
	src string
	prg *vm.Program
	cur *ir.Node
}

// Compile compiles src.  Variables which are not fields of the object
// under evaluation are nil.
func Compile(src string) (*Matcher, error) {
	m := &Matcher{src: src}
	prg, err := expr.Compile(src, m.exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", src, err)
	}
	m.prg = prg
	return m, nil
}

func (m *Matcher) String() string {
	return m.src
}

func (m *Matcher) exprOpts() []expr.Option {
	return []expr.Option{
		expr.AllowUndefinedVariables(),
		expr.Function("has", func(params ...any) (any, error) {
			return m.cur.Get(params[0].(string)) != nil, nil
		},
			new(func(string) bool)),
		expr.Function("typeof", func(params ...any) (any, error) {
			v := m.cur.Get(params[0].(string))
			if v == nil {
				return "", nil
			}
			return v.Type.String(), nil
		},
			new(func(string) string)),
		expr.Function("truthy", func(params ...any) (any, error) {
			v := m.cur.Get(params[0].(string))
			return v != nil && ir.Truth(v), nil
		},
			new(func(string) bool)),
		expr.Function("path", func(params ...any) (any, error) {
			return m.cur.Path(), nil
		},
			new(func() string)),
		expr.Function("depth", func(params ...any) (any, error) {
			return m.cur.Depth(), nil
		},
			new(func() int)),
	}
}

// Match evaluates the expression with the fields of obj as variables.
// Nodes which are not objects never match.
func (m *Matcher) Match(obj *ir.Node) (bool, error) {
	if obj.Type != ir.ObjectType {
		return false, nil
	}
	m.cur = obj
	defer func() { m.cur = nil }()

	res, err := expr.Run(m.prg, ToAny(obj))
	if err != nil {
		return false, fmt.Errorf("%s at %s: %w", m.src, obj.Path(), err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%s at %s gave %T: %w", m.src, obj.Path(), res, ErrNotBool)
	}
	if debug.Match() {
		debug.Logf("match %s at %s: %t\n", m.src, obj.Path(), b)
	}
	return b, nil
}

// Objects returns, in document order, the objects of the tree rooted at root
// which match.
func (m *Matcher) Objects(root *ir.Node) ([]*ir.Node, error) {
	var res []*ir.Node
	err := root.Walk(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.ObjectType {
			return true, nil
		}
		ok, err := m.Match(y)
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, y)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
