package hashcode

import (
	"sync"
	"sync/atomic"
	"testing"
)

type leaf uint64

func (l *leaf) Hash() uint64 { return uint64(*l) }

func newLeaf(v uint64) *leaf {
	l := leaf(v)
	return &l
}

func TestHasher_Deterministic(t *testing.T) {
	sum := func() uint64 {
		h := New("Coding")
		h.String("http://loinc.org")
		h.Bool(true)
		h.Int64(-4)
		h.Float64(1.5)
		h.Bytes([]byte{1, 2, 3})
		return h.Sum64()
	}
	if sum() != sum() {
		t.Error("identical input should produce identical hashes")
	}
}

func TestHasher_TypeNameSeeds(t *testing.T) {
	if New("Coding").Sum64() == New("Reference").Sum64() {
		t.Error("different type names should hash differently")
	}
}

func TestHasher_StringBoundaries(t *testing.T) {
	a := New("x")
	a.String("ab")
	a.String("c")

	b := New("x")
	b.String("a")
	b.String("bc")

	if a.Sum64() == b.Sum64() {
		t.Error("length prefix should separate adjacent strings")
	}
}

func TestField_Position(t *testing.T) {
	var none *leaf

	a := New("Period")
	Field(a, newLeaf(7))
	Field(a, none)

	b := New("Period")
	Field(b, none)
	Field(b, newLeaf(7))

	if a.Sum64() == b.Sum64() {
		t.Error("absent fields should keep their position in the hash")
	}
}

func TestList(t *testing.T) {
	hash := func(items ...*leaf) uint64 {
		h := New("CodeableConcept")
		List(h, items)
		return h.Sum64()
	}

	if hash(newLeaf(1), newLeaf(2)) == hash(newLeaf(2), newLeaf(1)) {
		t.Error("list order should affect the hash")
	}
	if hash() == hash(newLeaf(0)) {
		t.Error("empty list and single zero element should differ")
	}
}

func TestStrings(t *testing.T) {
	a := New("x")
	Strings(a, []string{"a", "b"})
	b := New("x")
	Strings(b, []string{"ab"})
	if a.Sum64() == b.Sum64() {
		t.Error("string lists should hash element boundaries")
	}
}

func TestCell_ComputesOnce(t *testing.T) {
	var c Cell
	calls := 0
	fn := func() uint64 {
		calls++
		return 42
	}

	if got := c.Get(fn); got != 42 {
		t.Errorf("Get = %d; want 42", got)
	}
	if got := c.Get(fn); got != 42 {
		t.Errorf("second Get = %d; want 42", got)
	}
	if calls != 1 {
		t.Errorf("fn called %d times; want 1", calls)
	}
}

func TestCell_ZeroHash(t *testing.T) {
	var c Cell
	var calls int
	for i := 0; i < 3; i++ {
		c.Get(func() uint64 {
			calls++
			return 0
		})
	}
	if calls != 1 {
		t.Errorf("a zero hash should still be cached; fn called %d times", calls)
	}
}

func TestCell_Concurrent(t *testing.T) {
	var c Cell
	var calls atomic.Int32
	results := make([]uint64, 64)

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Get(func() uint64 {
				calls.Add(1)
				return 0xfeed
			})
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if r != 0xfeed {
			t.Fatalf("results[%d] = %x; want feed", i, r)
		}
	}
	if calls.Load() < 1 {
		t.Error("fn never called")
	}
}

func BenchmarkHasher(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		h := New("Identifier")
		h.String("http://example.org/mrn")
		h.String("12345")
		Field(h, newLeaf(3))
		_ = h.Sum64()
	}
}
