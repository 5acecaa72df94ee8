package visit

// Node is implemented by every element of the model.
type Node interface {
	// TypeName returns the FHIR type name, e.g. "Coverage" or "Coverage.Class".
	TypeName() string

	// Accept runs the visit protocol on the node and its children. name and
	// index describe the node's position in its parent.
	Accept(name string, index int, v Visitor)
}

// Visitor receives traversal callbacks.
type Visitor interface {
	PreVisit(n Node) bool
	VisitStart(name string, index int, n Node)
	Visit(name string, index int, n Node) bool
	VisitEnd(name string, index int, n Node)
	PostVisit(n Node)
	VisitListStart(name string, size int)
	VisitListEnd(name string, size int)
	VisitValue(name string, value any)
}

// DefaultVisitor accepts every node. With Shallow set it visits only the
// node it is started on.
type DefaultVisitor struct {
	Shallow bool
}

var _ Visitor = DefaultVisitor{}

func (DefaultVisitor) PreVisit(Node) bool             { return true }
func (DefaultVisitor) VisitStart(string, int, Node)   {}
func (d DefaultVisitor) Visit(string, int, Node) bool { return !d.Shallow }
func (DefaultVisitor) VisitEnd(string, int, Node)     {}
func (DefaultVisitor) PostVisit(Node)                 {}
func (DefaultVisitor) VisitListStart(string, int)     {}
func (DefaultVisitor) VisitListEnd(string, int)       {}
func (DefaultVisitor) VisitValue(string, any)         {}

// Traverse visits n as a root node, named after its type.
func Traverse(n Node, v Visitor) {
	if n == nil || v == nil {
		return
	}
	n.Accept(n.TypeName(), -1, v)
}

// Child visits a single child. Nil children are skipped.
func Child[T interface {
	comparable
	Node
}](v Visitor, name string, n T) {
	var zero T
	if n == zero {
		return
	}
	n.Accept(name, -1, v)
}

// List visits a repeating child. Nil items are skipped and the remaining
// items are numbered consecutively. Empty lists are skipped.
func List[T interface {
	comparable
	Node
}](v Visitor, name string, items []T) {
	var zero T
	n := 0
	for _, item := range items {
		if item != zero {
			n++
		}
	}
	if n == 0 {
		return
	}
	v.VisitListStart(name, n)
	i := 0
	for _, item := range items {
		if item == zero {
			continue
		}
		item.Accept(name, i, v)
		i++
	}
	v.VisitListEnd(name, n)
}
