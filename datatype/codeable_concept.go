package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// CodeableConcept is a concept that may be defined by one or more codes
// from formal terminologies, or by text.
type CodeableConcept struct {
	ElementBase
	coding []*Coding
	text   *String
	opts   *fhirmodel.Options
	memo   hashcode.Cell
}

// TypeName returns "CodeableConcept".
func (x *CodeableConcept) TypeName() string { return "CodeableConcept" }

// Coding returns a copy of the coding list.
func (x *CodeableConcept) Coding() []*Coding { return slices.Clone(x.coding) }

// Text returns the text, or nil when absent.
func (x *CodeableConcept) Text() *String { return x.text }

// Accept visits x and then its fields in declaration order.
func (x *CodeableConcept) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.List(v, "coding", x.coding)
		visit.Child(v, "text", x.text)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *CodeableConcept) Equal(other *CodeableConcept) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		slices.EqualFunc(x.coding, other.coding, (*Coding).Equal) &&
		x.text.Equal(other.text)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *CodeableConcept) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("CodeableConcept")
		x.HashBase(h)
		hashcode.List(h, x.coding)
		hashcode.Field(h, x.text)
		return h.Sum64()
	})
}

func (x *CodeableConcept) equalElement(o Element) bool {
	other, ok := o.(*CodeableConcept)
	return ok && x.Equal(other)
}

func (x *CodeableConcept) isNil() bool { return x == nil }

func (x *CodeableConcept) checks() []error {
	return []error{
		x.ValidateBase("CodeableConcept"),
		validate.Elements("CodeableConcept", "coding", x.coding),
		validate.HasChildren("CodeableConcept", x.HasContentBase() ||
			len(x.coding) > 0 ||
			x.text != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *CodeableConcept) ToBuilder() *CodeableConceptBuilder {
	return &CodeableConceptBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		coding:    slices.Clone(x.coding),
		text:      x.text,
		opts:      x.opts,
	}
}

// CodeableConceptBuilder builds CodeableConcept values.
type CodeableConceptBuilder struct {
	id        string
	extension []*Extension
	coding    []*Coding
	text      *String
	opts      *fhirmodel.Options
}

// NewCodeableConceptBuilder returns an empty builder.
func NewCodeableConceptBuilder() *CodeableConceptBuilder {
	return &CodeableConceptBuilder{}
}

// ID sets the id.
func (b *CodeableConceptBuilder) ID(v string) *CodeableConceptBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *CodeableConceptBuilder) Extension(values ...*Extension) *CodeableConceptBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *CodeableConceptBuilder) SetExtension(values []*Extension) *CodeableConceptBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Coding appends values to coding.
func (b *CodeableConceptBuilder) Coding(values ...*Coding) *CodeableConceptBuilder {
	b.coding = append(b.coding, values...)
	return b
}

// SetCoding replaces coding with a copy of values.
func (b *CodeableConceptBuilder) SetCoding(values []*Coding) *CodeableConceptBuilder {
	b.coding = slices.Clone(values)
	return b
}

// Text sets the text.
func (b *CodeableConceptBuilder) Text(v *String) *CodeableConceptBuilder {
	b.text = v
	return b
}

// Build validates the fields and returns an immutable CodeableConcept. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *CodeableConceptBuilder) Build() (*CodeableConcept, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *CodeableConceptBuilder) BuildWith(opts ...fhirmodel.Option) (*CodeableConcept, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *CodeableConceptBuilder) build(o *fhirmodel.Options) (*CodeableConcept, error) {
	x := &CodeableConcept{
		ElementBase: NewElementBase(b.id, b.extension),
		coding:      slices.Clone(b.coding),
		text:        b.text,
		opts:        o,
	}
	if err := validate.Run("CodeableConcept", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
