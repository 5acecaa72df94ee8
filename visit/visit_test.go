package visit

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tree is a minimal Node used to exercise the protocol.
type tree struct {
	typ      string
	value    string
	single   *tree
	children []*tree
}

func (t *tree) TypeName() string { return t.typ }

func (t *tree) Accept(name string, index int, v Visitor) {
	if !v.PreVisit(t) {
		return
	}
	v.VisitStart(name, index, t)
	if v.Visit(name, index, t) {
		if t.value != "" {
			v.VisitValue("value", t.value)
		}
		Child(v, "single", t.single)
		List(v, "child", t.children)
	}
	v.VisitEnd(name, index, t)
	v.PostVisit(t)
}

func sample() *tree {
	return &tree{
		typ:    "Root",
		value:  "r",
		single: &tree{typ: "Leaf", value: "s"},
		children: []*tree{
			{typ: "Leaf", value: "a"},
			{typ: "Leaf", children: []*tree{{typ: "Leaf", value: "deep"}}},
		},
	}
}

// recorder logs every callback in order.
type recorder struct {
	events []string
	skip   string
	prune  string
}

func (r *recorder) PreVisit(n Node) bool {
	t := n.(*tree)
	if r.skip != "" && t.value == r.skip {
		r.events = append(r.events, "skip "+t.value)
		return false
	}
	r.events = append(r.events, "pre "+n.TypeName())
	return true
}

func (r *recorder) VisitStart(name string, index int, _ Node) {
	r.events = append(r.events, fmt.Sprintf("start %s %d", name, index))
}

func (r *recorder) Visit(name string, _ int, n Node) bool {
	return r.prune == "" || n.(*tree).value != r.prune
}

func (r *recorder) VisitEnd(name string, index int, _ Node) {
	r.events = append(r.events, fmt.Sprintf("end %s %d", name, index))
}

func (r *recorder) PostVisit(n Node) {
	r.events = append(r.events, "post "+n.TypeName())
}

func (r *recorder) VisitListStart(name string, size int) {
	r.events = append(r.events, fmt.Sprintf("list %s %d", name, size))
}

func (r *recorder) VisitListEnd(name string, size int) {
	r.events = append(r.events, fmt.Sprintf("endlist %s %d", name, size))
}

func (r *recorder) VisitValue(name string, value any) {
	r.events = append(r.events, fmt.Sprintf("value %s=%v", name, value))
}

func TestTraverse_Order(t *testing.T) {
	r := &recorder{}
	Traverse(&tree{
		typ:      "Root",
		single:   &tree{typ: "Leaf", value: "s"},
		children: []*tree{{typ: "Leaf", value: "a"}},
	}, r)

	want := []string{
		"pre Root",
		"start Root -1",
		"pre Leaf",
		"start single -1",
		"value value=s",
		"end single -1",
		"post Leaf",
		"list child 1",
		"pre Leaf",
		"start child 0",
		"value value=a",
		"end child 0",
		"post Leaf",
		"endlist child 1",
		"end Root -1",
		"post Root",
	}
	if diff := cmp.Diff(want, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestTraverse_PreVisitSkips(t *testing.T) {
	r := &recorder{skip: "s"}
	Traverse(&tree{typ: "Root", single: &tree{typ: "Leaf", value: "s"}}, r)

	want := []string{"pre Root", "start Root -1", "skip s", "end Root -1", "post Root"}
	if diff := cmp.Diff(want, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestTraverse_VisitGatesChildren(t *testing.T) {
	r := &recorder{prune: "s"}
	Traverse(&tree{typ: "Root", single: &tree{typ: "Leaf", value: "s", single: &tree{typ: "Leaf"}}}, r)

	want := []string{
		"pre Root", "start Root -1",
		"pre Leaf", "start single -1", "end single -1", "post Leaf",
		"end Root -1", "post Root",
	}
	if diff := cmp.Diff(want, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestTraverse_Nil(t *testing.T) {
	Traverse(nil, DefaultVisitor{})
	Traverse(sample(), nil)

	var missing *tree
	r := &recorder{}
	Child(r, "single", missing)
	List[*tree](r, "child", nil)
	if len(r.events) != 0 {
		t.Errorf("nil children should not be visited: %v", r.events)
	}
}

func TestList_SkipsNilItems(t *testing.T) {
	root := &tree{typ: "Root", children: []*tree{nil, {typ: "Leaf", value: "a"}, nil, {typ: "Leaf", value: "b"}}}

	want := []string{
		"Root",
		"Root.child[0]",
		"Root.child[0].value",
		"Root.child[1]",
		"Root.child[1].value",
	}
	if diff := cmp.Diff(want, Paths(root)); diff != "" {
		t.Errorf("Paths mismatch (-want +got):\n%s", diff)
	}

	r := &recorder{}
	List(r, "child", []*tree{nil, {typ: "Leaf"}})
	wantEvents := []string{"list child 1", "pre Leaf", "start child 0", "end child 0", "post Leaf", "endlist child 1"}
	if diff := cmp.Diff(wantEvents, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	r = &recorder{}
	List(r, "child", []*tree{nil, nil})
	if len(r.events) != 0 {
		t.Errorf("a list of nil items should not be visited: %v", r.events)
	}
}

func TestDefaultVisitor_Shallow(t *testing.T) {
	if !(DefaultVisitor{}).Visit("x", -1, nil) {
		t.Error("DefaultVisitor should descend")
	}
	if (DefaultVisitor{Shallow: true}).Visit("x", -1, nil) {
		t.Error("shallow DefaultVisitor should not descend")
	}
}

func TestPaths(t *testing.T) {
	want := []string{
		"Root",
		"Root.value",
		"Root.single",
		"Root.single.value",
		"Root.child[0]",
		"Root.child[0].value",
		"Root.child[1]",
		"Root.child[1].child[0]",
		"Root.child[1].child[0].value",
	}
	if diff := cmp.Diff(want, Paths(sample())); diff != "" {
		t.Errorf("Paths mismatch (-want +got):\n%s", diff)
	}
}

func TestWalk_Prune(t *testing.T) {
	var got []string
	Walk(sample(), func(path string, n Node) bool {
		got = append(got, path)
		return path != "Root.child[1]"
	})

	want := []string{"Root", "Root.single", "Root.child[0]", "Root.child[1]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk mismatch (-want +got):\n%s", diff)
	}
}

func TestChildren(t *testing.T) {
	want := []string{"value", "single", "child"}
	if diff := cmp.Diff(want, Children(sample())); diff != "" {
		t.Errorf("Children mismatch (-want +got):\n%s", diff)
	}
}

type pathSpy struct {
	DefaultVisitor
	pv   *PathVisitor
	seen []string
}

func (p *pathSpy) VisitStart(string, int, Node) {
	p.seen = append(p.seen, p.pv.Path())
}

func TestPathVisitor_DelegateSeesPath(t *testing.T) {
	spy := &pathSpy{}
	spy.pv = NewPathVisitor(spy)
	defer spy.pv.Release()

	Traverse(&tree{typ: "Root", children: []*tree{{typ: "Leaf"}, {typ: "Leaf"}}}, spy.pv)

	want := []string{"Root", "Root.child[0]", "Root.child[1]"}
	if diff := cmp.Diff(want, spy.seen); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
	if spy.pv.Path() != "" {
		t.Errorf("path should be empty after traversal, got %q", spy.pv.Path())
	}
}

func BenchmarkPaths(b *testing.B) {
	root := sample()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Paths(root)
	}
}
