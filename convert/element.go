package convert

import (
	"fmt"

	"github.com/gofhir/fhir/r4"

	"github.com/gofhir/model/datatype"
)

// primitiveBuilder is the builder surface shared by the primitive types.
type primitiveBuilder[P any, V any, B any] interface {
	ID(string) B
	SetExtension([]*datatype.Extension) B
	Value(V) B
	Build() (P, error)
}

// primitiveFromR4 builds a primitive from an r4 value and its companion
// element. Both nil yield the zero P.
func primitiveFromR4[P any, V any, B primitiveBuilder[P, V, B]](b B, v *V, elem *r4.Element) (P, error) {
	var zero P
	if v == nil && elem == nil {
		return zero, nil
	}
	if elem != nil {
		ext, err := extensionsFromR4(elem.Extension)
		if err != nil {
			return zero, err
		}
		b = b.ID(deref(elem.Id)).SetExtension(ext)
	}
	if v != nil {
		b = b.Value(*v)
	}
	return b.Build()
}

// primitiveValue is the read surface shared by the primitive types.
type primitiveValue[V any] interface {
	comparable
	ID() string
	Extension() []*datatype.Extension
	HasValue() bool
	Value() V
}

// primitiveToR4 splits p into its r4 value and companion element. A nil p
// yields nils.
func primitiveToR4[V any, P primitiveValue[V]](p P) (*V, *r4.Element, error) {
	var zero P
	if p == zero {
		return nil, nil, nil
	}
	var v *V
	if p.HasValue() {
		val := p.Value()
		v = &val
	}
	elem, err := elementToR4(p.ID(), p.Extension())
	return v, elem, err
}

// elementToR4 returns the r4 companion element for an id and extensions, or
// nil when both are empty.
func elementToR4(id string, ext []*datatype.Extension) (*r4.Element, error) {
	if id == "" && len(ext) == 0 {
		return nil, nil
	}
	out, err := extensionsToR4(ext)
	if err != nil {
		return nil, err
	}
	return &r4.Element{Id: optional(id), Extension: out}, nil
}

func extensionsFromR4(in []r4.Extension) ([]*datatype.Extension, error) {
	var out []*datatype.Extension
	for i := range in {
		e, err := ExtensionFromR4(&in[i])
		if err != nil {
			return nil, fmt.Errorf("extension[%d]: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func extensionsToR4(in []*datatype.Extension) ([]r4.Extension, error) {
	var out []r4.Extension
	for i, e := range in {
		r, err := ExtensionToR4(e)
		if err != nil {
			return nil, fmt.Errorf("extension[%d]: %w", i, err)
		}
		out = append(out, *r)
	}
	return out, nil
}

// codeFromR4 converts a string-based r4 code enum.
func codeFromR4[T ~string](v *T, elem *r4.Element) (*datatype.Code, error) {
	var s *string
	if v != nil {
		s = ptr(string(*v))
	}
	return primitiveFromR4[*datatype.Code](datatype.NewCodeBuilder(), s, elem)
}

// codeToR4 converts c into a string-based r4 code enum.
func codeToR4[T ~string](c *datatype.Code) (*T, *r4.Element, error) {
	s, elem, err := primitiveToR4[string](c)
	if err != nil || s == nil {
		return nil, elem, err
	}
	t := T(*s)
	return &t, elem, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ptr[T any](v T) *T { return &v }
