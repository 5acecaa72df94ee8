package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Range is a set of ordered quantities defined by a low and high limit.
type Range struct {
	ElementBase
	low  *SimpleQuantity
	high *SimpleQuantity
	opts *fhirmodel.Options
	memo hashcode.Cell
}

// TypeName returns "Range".
func (x *Range) TypeName() string { return "Range" }

// Low returns the low, or nil when absent.
func (x *Range) Low() *SimpleQuantity { return x.low }

// High returns the high, or nil when absent.
func (x *Range) High() *SimpleQuantity { return x.high }

// Accept visits x and then its fields in declaration order.
func (x *Range) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "low", x.low)
		visit.Child(v, "high", x.high)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Range) Equal(other *Range) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.low.Equal(other.low) &&
		x.high.Equal(other.high)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Range) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Range")
		x.HashBase(h)
		hashcode.Field(h, x.low)
		hashcode.Field(h, x.high)
		return h.Sum64()
	})
}

func (x *Range) equalElement(o Element) bool {
	other, ok := o.(*Range)
	return ok && x.Equal(other)
}

func (x *Range) isNil() bool { return x == nil }

func (x *Range) checks() []error {
	return []error{
		x.ValidateBase("Range"),
		validate.HasChildren("Range", x.HasContentBase() ||
			x.low != nil ||
			x.high != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Range) ToBuilder() *RangeBuilder {
	return &RangeBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		low:       x.low,
		high:      x.high,
		opts:      x.opts,
	}
}

// RangeBuilder builds Range values.
type RangeBuilder struct {
	id        string
	extension []*Extension
	low       *SimpleQuantity
	high      *SimpleQuantity
	opts      *fhirmodel.Options
}

// NewRangeBuilder returns an empty builder.
func NewRangeBuilder() *RangeBuilder {
	return &RangeBuilder{}
}

// ID sets the id.
func (b *RangeBuilder) ID(v string) *RangeBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *RangeBuilder) Extension(values ...*Extension) *RangeBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *RangeBuilder) SetExtension(values []*Extension) *RangeBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Low sets the low.
func (b *RangeBuilder) Low(v *SimpleQuantity) *RangeBuilder {
	b.low = v
	return b
}

// High sets the high.
func (b *RangeBuilder) High(v *SimpleQuantity) *RangeBuilder {
	b.high = v
	return b
}

// Build validates the fields and returns an immutable Range. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *RangeBuilder) Build() (*Range, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *RangeBuilder) BuildWith(opts ...fhirmodel.Option) (*Range, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *RangeBuilder) build(o *fhirmodel.Options) (*Range, error) {
	x := &Range{
		ElementBase: NewElementBase(b.id, b.extension),
		low:         b.low,
		high:        b.high,
		opts:        o,
	}
	if err := validate.Run("Range", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
