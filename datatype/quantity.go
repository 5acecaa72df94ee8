package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Quantity is a measured amount.
type Quantity struct {
	ElementBase
	value      *Decimal
	comparator *Code
	unit       *String
	system     *URI
	code       *Code
	opts       *fhirmodel.Options
	memo       hashcode.Cell
}

// TypeName returns "Quantity".
func (x *Quantity) TypeName() string { return "Quantity" }

// Value returns the value, or nil when absent.
func (x *Quantity) Value() *Decimal { return x.value }

// Comparator returns the comparator code, drawn from QuantityComparator.
func (x *Quantity) Comparator() *Code { return x.comparator }

// Unit returns the unit, or nil when absent.
func (x *Quantity) Unit() *String { return x.unit }

// System returns the system, or nil when absent.
func (x *Quantity) System() *URI { return x.system }

// Code returns the code, or nil when absent.
func (x *Quantity) Code() *Code { return x.code }

// Accept visits x and then its fields in declaration order.
func (x *Quantity) Accept(name string, index int, v visit.Visitor) {
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
func (x *Quantity) Equal(other *Quantity) bool {
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
func (x *Quantity) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Quantity")
		x.HashBase(h)
		hashcode.Field(h, x.value)
		hashcode.Field(h, x.comparator)
		hashcode.Field(h, x.unit)
		hashcode.Field(h, x.system)
		hashcode.Field(h, x.code)
		return h.Sum64()
	})
}

func (x *Quantity) equalElement(o Element) bool {
	other, ok := o.(*Quantity)
	return ok && x.Equal(other)
}

func (x *Quantity) isNil() bool { return x == nil }

func (x *Quantity) checks() []error {
	return []error{
		x.ValidateBase("Quantity"),
		CheckCode("Quantity", "comparator", x.comparator, QuantityComparatorValues),
		validate.HasChildren("Quantity", x.HasContentBase() ||
			x.value != nil ||
			x.comparator != nil ||
			x.unit != nil ||
			x.system != nil ||
			x.code != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Quantity) ToBuilder() *QuantityBuilder {
	return &QuantityBuilder{
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

// QuantityBuilder builds Quantity values.
type QuantityBuilder struct {
	id         string
	extension  []*Extension
	value      *Decimal
	comparator *Code
	unit       *String
	system     *URI
	code       *Code
	opts       *fhirmodel.Options
}

// NewQuantityBuilder returns an empty builder.
func NewQuantityBuilder() *QuantityBuilder {
	return &QuantityBuilder{}
}

// ID sets the id.
func (b *QuantityBuilder) ID(v string) *QuantityBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *QuantityBuilder) Extension(values ...*Extension) *QuantityBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *QuantityBuilder) SetExtension(values []*Extension) *QuantityBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *QuantityBuilder) Value(v *Decimal) *QuantityBuilder {
	b.value = v
	return b
}

// Comparator sets the comparator.
func (b *QuantityBuilder) Comparator(v *Code) *QuantityBuilder {
	b.comparator = v
	return b
}

// Unit sets the unit.
func (b *QuantityBuilder) Unit(v *String) *QuantityBuilder {
	b.unit = v
	return b
}

// System sets the system.
func (b *QuantityBuilder) System(v *URI) *QuantityBuilder {
	b.system = v
	return b
}

// Code sets the code.
func (b *QuantityBuilder) Code(v *Code) *QuantityBuilder {
	b.code = v
	return b
}

// Build validates the fields and returns an immutable Quantity. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *QuantityBuilder) Build() (*Quantity, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *QuantityBuilder) BuildWith(opts ...fhirmodel.Option) (*Quantity, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *QuantityBuilder) build(o *fhirmodel.Options) (*Quantity, error) {
	x := &Quantity{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		comparator:  b.comparator,
		unit:        b.unit,
		system:      b.system,
		code:        b.code,
		opts:        o,
	}
	if err := validate.Run("Quantity", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
