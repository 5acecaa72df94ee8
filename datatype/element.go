package datatype

import (
	"slices"

	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Element is implemented by every data type of the model. The set of
// implementations is closed: only types in this package satisfy it, which
// makes it the universe for choice (value[x]) elements.
type Element interface {
	visit.Node

	// Hash returns the structural hash, equal for equal values.
	Hash() uint64

	// ID returns the element id, or "" when unset.
	ID() string

	// Extension returns a copy of the element's extensions.
	Extension() []*Extension

	equalElement(other Element) bool
	isNil() bool
}

// EqualElements reports whether a and b hold equal values of the same type.
func EqualElements(a, b Element) bool {
	a, b = OrNil(a), OrNil(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.equalElement(b)
}

// OrNil normalises an interface holding a nil pointer to a nil interface.
func OrNil(e Element) Element {
	if e == nil || e.isNil() {
		return nil
	}
	return e
}

// As narrows a choice value to a concrete type.
//
//	if q, ok := datatype.As[*datatype.Quantity](dose); ok { ... }
func As[T Element](e Element) (T, bool) {
	t, ok := e.(T)
	return t, ok
}

// Must returns v or panics if err is non-nil. Intended for constants and
// fixtures built from literals.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// ElementBase holds the fields every element carries: id and extension.
// Concrete types embed it and call its methods from their own Accept,
// Equal, Hash and validate.
type ElementBase struct {
	id        string
	extension []*Extension
}

// NewElementBase copies extension.
func NewElementBase(id string, extension []*Extension) ElementBase {
	return ElementBase{id: id, extension: slices.Clone(extension)}
}

// ID returns the element id.
func (b *ElementBase) ID() string {
	return b.id
}

// Extension returns a copy of the extensions.
func (b *ElementBase) Extension() []*Extension {
	return slices.Clone(b.extension)
}

// HasExtension reports whether any extension is present.
func (b *ElementBase) HasExtension() bool {
	return len(b.extension) > 0
}

// AcceptBase visits id and extension.
func (b *ElementBase) AcceptBase(v visit.Visitor) {
	if b.id != "" {
		v.VisitValue("id", b.id)
	}
	visit.List(v, "extension", b.extension)
}

// EqualBase compares id and extension.
func (b *ElementBase) EqualBase(o *ElementBase) bool {
	return b.id == o.id && slices.EqualFunc(b.extension, o.extension, (*Extension).Equal)
}

// HashBase adds id and extension to h.
func (b *ElementBase) HashBase(h *hashcode.Hasher) {
	h.String(b.id)
	hashcode.List(h, b.extension)
}

// ValidateBase rejects nil extensions.
func (b *ElementBase) ValidateBase(typ string) error {
	return validate.Elements(typ, "extension", b.extension)
}

// HasContentBase reports whether the base fields count as content for the
// ele-1 rule. The id does not count.
func (b *ElementBase) HasContentBase() bool {
	return len(b.extension) > 0
}

// BackboneElementBase adds modifierExtension to ElementBase. Backbone
// elements of resources embed it.
type BackboneElementBase struct {
	ElementBase
	modifierExtension []*Extension
}

// NewBackboneElementBase copies both extension lists.
func NewBackboneElementBase(id string, extension, modifierExtension []*Extension) BackboneElementBase {
	return BackboneElementBase{
		ElementBase:       NewElementBase(id, extension),
		modifierExtension: slices.Clone(modifierExtension),
	}
}

// ModifierExtension returns a copy of the modifier extensions.
func (b *BackboneElementBase) ModifierExtension() []*Extension {
	return slices.Clone(b.modifierExtension)
}

// AcceptBase visits id, extension and modifierExtension.
func (b *BackboneElementBase) AcceptBase(v visit.Visitor) {
	b.ElementBase.AcceptBase(v)
	visit.List(v, "modifierExtension", b.modifierExtension)
}

// EqualBase compares all base fields.
func (b *BackboneElementBase) EqualBase(o *BackboneElementBase) bool {
	return b.ElementBase.EqualBase(&o.ElementBase) &&
		slices.EqualFunc(b.modifierExtension, o.modifierExtension, (*Extension).Equal)
}

// HashBase adds all base fields to h.
func (b *BackboneElementBase) HashBase(h *hashcode.Hasher) {
	b.ElementBase.HashBase(h)
	hashcode.List(h, b.modifierExtension)
}

// ValidateBase rejects nil extensions and modifier extensions.
func (b *BackboneElementBase) ValidateBase(typ string) error {
	return validate.First(
		b.ElementBase.ValidateBase(typ),
		validate.Elements(typ, "modifierExtension", b.modifierExtension),
	)
}

// HasContentBase reports whether either extension list is non-empty.
func (b *BackboneElementBase) HasContentBase() bool {
	return b.ElementBase.HasContentBase() || len(b.modifierExtension) > 0
}
