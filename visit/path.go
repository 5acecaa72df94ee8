package visit

import "github.com/gofhir/model/pool"

// PathVisitor wraps a visitor and tracks the path of the node being visited,
// e.g. "Coverage.payor[0].reference". The wrapped visitor can read Path from
// inside its callbacks.
type PathVisitor struct {
	Visitor
	path *pool.PathBuilder
}

// NewPathVisitor wraps delegate. Call Release when the traversal is done.
func NewPathVisitor(delegate Visitor) *PathVisitor {
	if delegate == nil {
		delegate = DefaultVisitor{}
	}
	return &PathVisitor{
		Visitor: delegate,
		path:    pool.AcquirePathBuilder(),
	}
}

// Path returns the path of the current node.
func (p *PathVisitor) Path() string {
	return p.path.String()
}

// ValuePath returns the path of a raw value of the current node.
func (p *PathVisitor) ValuePath(name string) string {
	return pool.JoinPath(p.path.String(), name)
}

// Release returns the path buffer to its pool. The visitor must not be
// used afterwards.
func (p *PathVisitor) Release() {
	p.path.Release()
	p.path = nil
}

// VisitStart pushes the node onto the path before delegating.
func (p *PathVisitor) VisitStart(name string, index int, n Node) {
	p.path.Push(name, index)
	p.Visitor.VisitStart(name, index, n)
}

// VisitEnd delegates and then pops the node from the path.
func (p *PathVisitor) VisitEnd(name string, index int, n Node) {
	p.Visitor.VisitEnd(name, index, n)
	p.path.Pop()
}
