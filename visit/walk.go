package visit

// WalkFunc is called for each node with its path. Returning false skips the
// node's children.
type WalkFunc func(path string, n Node) bool

type walker struct {
	DefaultVisitor
	pv     *PathVisitor
	fn     WalkFunc
	values func(path string, value any)
}

func (w *walker) Visit(_ string, _ int, n Node) bool {
	return w.fn(w.pv.Path(), n)
}

func (w *walker) VisitValue(name string, value any) {
	if w.values != nil {
		w.values(w.pv.ValuePath(name), value)
	}
}

func walk(n Node, fn WalkFunc, values func(string, any)) {
	w := &walker{fn: fn, values: values}
	w.pv = NewPathVisitor(w)
	defer w.pv.Release()
	Traverse(n, w.pv)
}

// Walk visits n and its descendants depth first in declared field order.
func Walk(n Node, fn WalkFunc) {
	if fn == nil {
		return
	}
	walk(n, fn, nil)
}

// Paths returns the path of every node and raw value under n, in traversal
// order.
func Paths(n Node) []string {
	var out []string
	walk(n,
		func(path string, _ Node) bool {
			out = append(out, path)
			return true
		},
		func(path string, _ any) {
			out = append(out, path)
		},
	)
	return out
}

type childCollector struct {
	DefaultVisitor
	depth int
	names []string
}

func (c *childCollector) VisitStart(name string, index int, _ Node) {
	c.depth++
	if c.depth == 2 && index < 0 {
		c.names = append(c.names, name)
	}
}

func (c *childCollector) Visit(string, int, Node) bool {
	return c.depth == 1
}

func (c *childCollector) VisitEnd(string, int, Node) {
	c.depth--
}

func (c *childCollector) VisitListStart(name string, _ int) {
	if c.depth == 1 {
		c.names = append(c.names, name)
	}
}

func (c *childCollector) VisitValue(name string, _ any) {
	if c.depth == 1 {
		c.names = append(c.names, name)
	}
}

// Children returns the names of the populated direct children of n in
// traversal order. A repeating child is listed once.
func Children(n Node) []string {
	c := &childCollector{}
	Traverse(n, c)
	return c.names
}
