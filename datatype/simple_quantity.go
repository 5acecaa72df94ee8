package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// SimpleQuantity is a Quantity without a comparator.
type SimpleQuantity struct {
	ElementBase
	value  *Decimal
	unit   *String
	system *URI
	code   *Code
	opts   *fhirmodel.Options
	memo   hashcode.Cell
}

// TypeName returns "SimpleQuantity".
func (x *SimpleQuantity) TypeName() string { return "SimpleQuantity" }

// Value returns the value, or nil when absent.
func (x *SimpleQuantity) Value() *Decimal { return x.value }

// Unit returns the unit, or nil when absent.
func (x *SimpleQuantity) Unit() *String { return x.unit }

// System returns the system, or nil when absent.
func (x *SimpleQuantity) System() *URI { return x.system }

// Code returns the code, or nil when absent.
func (x *SimpleQuantity) Code() *Code { return x.code }

// Accept visits x and then its fields in declaration order.
func (x *SimpleQuantity) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "value", x.value)
		visit.Child(v, "unit", x.unit)
		visit.Child(v, "system", x.system)
		visit.Child(v, "code", x.code)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *SimpleQuantity) Equal(other *SimpleQuantity) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.value.Equal(other.value) &&
		x.unit.Equal(other.unit) &&
		x.system.Equal(other.system) &&
		x.code.Equal(other.code)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *SimpleQuantity) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("SimpleQuantity")
		x.HashBase(h)
		hashcode.Field(h, x.value)
		hashcode.Field(h, x.unit)
		hashcode.Field(h, x.system)
		hashcode.Field(h, x.code)
		return h.Sum64()
	})
}

func (x *SimpleQuantity) equalElement(o Element) bool {
	other, ok := o.(*SimpleQuantity)
	return ok && x.Equal(other)
}

func (x *SimpleQuantity) isNil() bool { return x == nil }

func (x *SimpleQuantity) checks() []error {
	return []error{
		x.ValidateBase("SimpleQuantity"),
		validate.HasChildren("SimpleQuantity", x.HasContentBase() ||
			x.value != nil ||
			x.unit != nil ||
			x.system != nil ||
			x.code != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *SimpleQuantity) ToBuilder() *SimpleQuantityBuilder {
	return &SimpleQuantityBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		unit:      x.unit,
		system:    x.system,
		code:      x.code,
		opts:      x.opts,
	}
}

// SimpleQuantityBuilder builds SimpleQuantity values.
type SimpleQuantityBuilder struct {
	id        string
	extension []*Extension
	value     *Decimal
	unit      *String
	system    *URI
	code      *Code
	opts      *fhirmodel.Options
}

// NewSimpleQuantityBuilder returns an empty builder.
func NewSimpleQuantityBuilder() *SimpleQuantityBuilder {
	return &SimpleQuantityBuilder{}
}

// ID sets the id.
func (b *SimpleQuantityBuilder) ID(v string) *SimpleQuantityBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *SimpleQuantityBuilder) Extension(values ...*Extension) *SimpleQuantityBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *SimpleQuantityBuilder) SetExtension(values []*Extension) *SimpleQuantityBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *SimpleQuantityBuilder) Value(v *Decimal) *SimpleQuantityBuilder {
	b.value = v
	return b
}

// Unit sets the unit.
func (b *SimpleQuantityBuilder) Unit(v *String) *SimpleQuantityBuilder {
	b.unit = v
	return b
}

// System sets the system.
func (b *SimpleQuantityBuilder) System(v *URI) *SimpleQuantityBuilder {
	b.system = v
	return b
}

// Code sets the code.
func (b *SimpleQuantityBuilder) Code(v *Code) *SimpleQuantityBuilder {
	b.code = v
	return b
}

// Build validates the fields and returns an immutable SimpleQuantity. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *SimpleQuantityBuilder) Build() (*SimpleQuantity, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *SimpleQuantityBuilder) BuildWith(opts ...fhirmodel.Option) (*SimpleQuantity, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *SimpleQuantityBuilder) build(o *fhirmodel.Options) (*SimpleQuantity, error) {
	x := &SimpleQuantity{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		unit:        b.unit,
		system:      b.system,
		code:        b.code,
		opts:        o,
	}
	if err := validate.Run("SimpleQuantity", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
