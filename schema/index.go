package schema

import (
	"strings"
	"sync"
)

// ElementIndex provides O(1) lookup of fields by element path, e.g.
// "Coverage.payor" or "Coverage.class.value". Choice elements are indexed
// under both "value" and "value[x]".
type ElementIndex struct {
	byPath map[string]Field
}

var (
	indexOnce sync.Once
	index     *ElementIndex
)

// Index returns the element index for all types, built on first use.
func Index() *ElementIndex {
	indexOnce.Do(func() {
		index = buildElementIndex()
	})
	return index
}

func buildElementIndex() *ElementIndex {
	idx := &ElementIndex{
		byPath: make(map[string]Field, 512),
	}
	for _, t := range registry {
		if t.Kind == KindAbstract {
			continue
		}
		for _, f := range AllFields(t.Name) {
			idx.add(t.Path+"."+f.Name, f)
			if f.Choice {
				idx.add(t.Path+"."+f.Name+"[x]", f)
			}
		}
	}
	return idx
}

func (idx *ElementIndex) add(path string, f Field) {
	if _, exists := idx.byPath[path]; !exists {
		idx.byPath[path] = f
	}
}

// Get returns the field at path. Index brackets such as "payor[0]" are
// ignored.
func (idx *ElementIndex) Get(path string) (Field, bool) {
	f, ok := idx.byPath[stripIndexes(path)]
	return f, ok
}

// Len returns the number of indexed paths.
func (idx *ElementIndex) Len() int {
	return len(idx.byPath)
}

func stripIndexes(path string) string {
	if !strings.Contains(path, "[") {
		return path
	}
	var sb strings.Builder
	sb.Grow(len(path))
	depth := 0
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c == '[' && !strings.HasPrefix(path[i:], "[x]"):
			depth++
		case c == ']' && depth > 0:
			depth--
		case depth == 0:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
