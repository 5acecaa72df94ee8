package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Duration is a length of time.
type Duration struct {
	ElementBase
	value      *Decimal
	comparator *Code
	unit       *String
	system     *URI
	code       *Code
	opts       *fhirmodel.Options
	memo       hashcode.Cell
}

// TypeName returns "Duration".
func (x *Duration) TypeName() string { return "Duration" }

// Value returns the value, or nil when absent.
func (x *Duration) Value() *Decimal { return x.value }

// Comparator returns the comparator code, drawn from QuantityComparator.
func (x *Duration) Comparator() *Code { return x.comparator }

// Unit returns the unit, or nil when absent.
func (x *Duration) Unit() *String { return x.unit }

// System returns the system, or nil when absent.
func (x *Duration) System() *URI { return x.system }

// Code returns the code, or nil when absent.
func (x *Duration) Code() *Code { return x.code }

// Accept visits x and then its fields in declaration order.
func (x *Duration) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "value", x.value)
		visit.Child(v, "comparator", x.comparator)
		visit.Child(v, "unit", x.unit)
		visit.Child(v, "system", x.system)
		visit.Child(v, "code", x.code)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Duration) Equal(other *Duration) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.value.Equal(other.value) &&
		x.comparator.Equal(other.comparator) &&
		x.unit.Equal(other.unit) &&
		x.system.Equal(other.system) &&
		x.code.Equal(other.code)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Duration) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Duration")
		x.HashBase(h)
		hashcode.Field(h, x.value)
		hashcode.Field(h, x.comparator)
		hashcode.Field(h, x.unit)
		hashcode.Field(h, x.system)
		hashcode.Field(h, x.code)
		return h.Sum64()
	})
}

func (x *Duration) equalElement(o Element) bool {
	other, ok := o.(*Duration)
	return ok && x.Equal(other)
}

func (x *Duration) isNil() bool { return x == nil }

func (x *Duration) checks() []error {
	return []error{
		x.ValidateBase("Duration"),
		CheckCode("Duration", "comparator", x.comparator, QuantityComparatorValues),
		validate.HasChildren("Duration", x.HasContentBase() ||
			x.value != nil ||
			x.comparator != nil ||
			x.unit != nil ||
			x.system != nil ||
			x.code != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Duration) ToBuilder() *DurationBuilder {
	return &DurationBuilder{
		id:         x.id,
		extension:  slices.Clone(x.extension),
		value:      x.value,
		comparator: x.comparator,
		unit:       x.unit,
		system:     x.system,
		code:       x.code,
		opts:       x.opts,
	}
}

// DurationBuilder builds Duration values.
type DurationBuilder struct {
	id         string
	extension  []*Extension
	value      *Decimal
	comparator *Code
	unit       *String
	system     *URI
	code       *Code
	opts       *fhirmodel.Options
}

// NewDurationBuilder returns an empty builder.
func NewDurationBuilder() *DurationBuilder {
	return &DurationBuilder{}
}

// ID sets the id.
func (b *DurationBuilder) ID(v string) *DurationBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *DurationBuilder) Extension(values ...*Extension) *DurationBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *DurationBuilder) SetExtension(values []*Extension) *DurationBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *DurationBuilder) Value(v *Decimal) *DurationBuilder {
	b.value = v
	return b
}

// Comparator sets the comparator.
func (b *DurationBuilder) Comparator(v *Code) *DurationBuilder {
	b.comparator = v
	return b
}

// Unit sets the unit.
func (b *DurationBuilder) Unit(v *String) *DurationBuilder {
	b.unit = v
	return b
}

// System sets the system.
func (b *DurationBuilder) System(v *URI) *DurationBuilder {
	b.system = v
	return b
}

// Code sets the code.
func (b *DurationBuilder) Code(v *Code) *DurationBuilder {
	b.code = v
	return b
}

// Build validates the fields and returns an immutable Duration. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *DurationBuilder) Build() (*Duration, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *DurationBuilder) BuildWith(opts ...fhirmodel.Option) (*Duration, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *DurationBuilder) build(o *fhirmodel.Options) (*Duration, error) {
	x := &Duration{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		comparator:  b.comparator,
		unit:        b.unit,
		system:      b.system,
		code:        b.code,
		opts:        o,
	}
	if err := validate.Run("Duration", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
