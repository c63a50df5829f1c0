package ir

// Visitor is called by Accept during a depth-first, pre-order traversal.
//
// VisitEnter is called on each structured node before its children; if it
// returns false the children are skipped.  VisitExit is called on every
// structured node after its children, whether or not they were visited.
// Visit is called on each leaf.
type Visitor interface {
	VisitEnter(y *Node) bool
	Visit(y *Node)
	VisitExit(y *Node)
}

// BaseVisitor provides the default Visitor behavior: descend into every
// structured node and ignore leaves.  Embed it to override only some hooks.
type BaseVisitor struct{}

func (BaseVisitor) VisitEnter(*Node) bool { return true }
func (BaseVisitor) Visit(*Node)           {}
func (BaseVisitor) VisitExit(*Node)       {}

// Accept walks the tree rooted at y with v.  Object children are visited in
// field order, array children in sequence order.
func (y *Node) Accept(v Visitor) {
	switch y.Type {
	case ObjectType, ArrayType:
		if v.VisitEnter(y) {
			for _, c := range y.Values {
				c.Accept(v)
			}
		}
		v.VisitExit(y)
	case NullType, NumberType, StringType, BoolType:
		v.Visit(y)
	default:
		panic("type")
	}
}

// Walk calls f on y before (isPost=false) and after (isPost=true) its
// children.  The children are walked only if the pre call returns true.  The
// first error stops the walk.
func (y *Node) Walk(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Walk(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
