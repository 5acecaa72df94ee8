package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Ratio is a relationship between two quantities.
type Ratio struct {
	ElementBase
	numerator   *Quantity
	denominator *Quantity
	opts        *fhirmodel.Options
	memo        hashcode.Cell
}

// TypeName returns "Ratio".
func (x *Ratio) TypeName() string { return "Ratio" }

// Numerator returns the numerator, or nil when absent.
func (x *Ratio) Numerator() *Quantity { return x.numerator }

// Denominator returns the denominator, or nil when absent.
func (x *Ratio) Denominator() *Quantity { return x.denominator }

// Accept visits x and then its fields in declaration order.
func (x *Ratio) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "numerator", x.numerator)
		visit.Child(v, "denominator", x.denominator)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Ratio) Equal(other *Ratio) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.numerator.Equal(other.numerator) &&
		x.denominator.Equal(other.denominator)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Ratio) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Ratio")
		x.HashBase(h)
		hashcode.Field(h, x.numerator)
		hashcode.Field(h, x.denominator)
		return h.Sum64()
	})
}

func (x *Ratio) equalElement(o Element) bool {
	other, ok := o.(*Ratio)
	return ok && x.Equal(other)
}

func (x *Ratio) isNil() bool { return x == nil }

func (x *Ratio) checks() []error {
	return []error{
		x.ValidateBase("Ratio"),
		validate.HasChildren("Ratio", x.HasContentBase() ||
			x.numerator != nil ||
			x.denominator != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Ratio) ToBuilder() *RatioBuilder {
	return &RatioBuilder{
		id:          x.id,
		extension:   slices.Clone(x.extension),
		numerator:   x.numerator,
		denominator: x.denominator,
		opts:        x.opts,
	}
}

// RatioBuilder builds Ratio values.
type RatioBuilder struct {
	id          string
	extension   []*Extension
	numerator   *Quantity
	denominator *Quantity
	opts        *fhirmodel.Options
}

// NewRatioBuilder returns an empty builder.
func NewRatioBuilder() *RatioBuilder {
	return &RatioBuilder{}
}

// ID sets the id.
func (b *RatioBuilder) ID(v string) *RatioBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *RatioBuilder) Extension(values ...*Extension) *RatioBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *RatioBuilder) SetExtension(values []*Extension) *RatioBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Numerator sets the numerator.
func (b *RatioBuilder) Numerator(v *Quantity) *RatioBuilder {
	b.numerator = v
	return b
}

// Denominator sets the denominator.
func (b *RatioBuilder) Denominator(v *Quantity) *RatioBuilder {
	b.denominator = v
	return b
}

// Build validates the fields and returns an immutable Ratio. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *RatioBuilder) Build() (*Ratio, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *RatioBuilder) BuildWith(opts ...fhirmodel.Option) (*Ratio, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *RatioBuilder) build(o *fhirmodel.Options) (*Ratio, error) {
	x := &Ratio{
		ElementBase: NewElementBase(b.id, b.extension),
		numerator:   b.numerator,
		denominator: b.denominator,
		opts:        o,
	}
	if err := validate.Run("Ratio", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
