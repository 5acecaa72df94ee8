package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Reference is a link from one resource to another.
type Reference struct {
	ElementBase
	reference  *String
	typ        *URI
	identifier *Identifier
	display    *String
	opts       *fhirmodel.Options
	memo       hashcode.Cell
}

// TypeName returns "Reference".
func (x *Reference) TypeName() string { return "Reference" }

// Reference returns the reference, or nil when absent.
func (x *Reference) Reference() *String { return x.reference }

// Type returns the type, or nil when absent.
func (x *Reference) Type() *URI { return x.typ }

// Identifier returns the identifier, or nil when absent.
func (x *Reference) Identifier() *Identifier { return x.identifier }

// Display returns the display, or nil when absent.
func (x *Reference) Display() *String { return x.display }

// Accept visits x and then its fields in declaration order.
func (x *Reference) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "reference", x.reference)
		visit.Child(v, "type", x.typ)
		visit.Child(v, "identifier", x.identifier)
		visit.Child(v, "display", x.display)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Reference) Equal(other *Reference) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.reference.Equal(other.reference) &&
		x.typ.Equal(other.typ) &&
		x.identifier.Equal(other.identifier) &&
		x.display.Equal(other.display)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Reference) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Reference")
		x.HashBase(h)
		hashcode.Field(h, x.reference)
		hashcode.Field(h, x.typ)
		hashcode.Field(h, x.identifier)
		hashcode.Field(h, x.display)
		return h.Sum64()
	})
}

func (x *Reference) equalElement(o Element) bool {
	other, ok := o.(*Reference)
	return ok && x.Equal(other)
}

func (x *Reference) isNil() bool { return x == nil }

func (x *Reference) checks() []error {
	return []error{
		x.ValidateBase("Reference"),
		validate.HasChildren("Reference", x.HasContentBase() ||
			x.reference != nil ||
			x.typ != nil ||
			x.identifier != nil ||
			x.display != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Reference) ToBuilder() *ReferenceBuilder {
	return &ReferenceBuilder{
		id:         x.id,
		extension:  slices.Clone(x.extension),
		reference:  x.reference,
		typ:        x.typ,
		identifier: x.identifier,
		display:    x.display,
		opts:       x.opts,
	}
}

// ReferenceBuilder builds Reference values.
type ReferenceBuilder struct {
	id         string
	extension  []*Extension
	reference  *String
	typ        *URI
	identifier *Identifier
	display    *String
	opts       *fhirmodel.Options
}

// NewReferenceBuilder returns an empty builder.
func NewReferenceBuilder() *ReferenceBuilder {
	return &ReferenceBuilder{}
}

// ID sets the id.
func (b *ReferenceBuilder) ID(v string) *ReferenceBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *ReferenceBuilder) Extension(values ...*Extension) *ReferenceBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *ReferenceBuilder) SetExtension(values []*Extension) *ReferenceBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Reference sets the reference.
func (b *ReferenceBuilder) Reference(v *String) *ReferenceBuilder {
	b.reference = v
	return b
}

// Type sets the type.
func (b *ReferenceBuilder) Type(v *URI) *ReferenceBuilder {
	b.typ = v
	return b
}

// Identifier sets the identifier.
func (b *ReferenceBuilder) Identifier(v *Identifier) *ReferenceBuilder {
	b.identifier = v
	return b
}

// Display sets the display.
func (b *ReferenceBuilder) Display(v *String) *ReferenceBuilder {
	b.display = v
	return b
}

// Build validates the fields and returns an immutable Reference. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *ReferenceBuilder) Build() (*Reference, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *ReferenceBuilder) BuildWith(opts ...fhirmodel.Option) (*Reference, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *ReferenceBuilder) build(o *fhirmodel.Options) (*Reference, error) {
	x := &Reference{
		ElementBase: NewElementBase(b.id, b.extension),
		reference:   b.reference,
		typ:         b.typ,
		identifier:  b.identifier,
		display:     b.display,
		opts:        o,
	}
	if err := validate.Run("Reference", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
