package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Money is an amount of economic utility in some recognized currency.
type Money struct {
	ElementBase
	value    *Decimal
	currency *Code
	opts     *fhirmodel.Options
	memo     hashcode.Cell
}

// TypeName returns "Money".
func (x *Money) TypeName() string { return "Money" }

// Value returns the value, or nil when absent.
func (x *Money) Value() *Decimal { return x.value }

// Currency returns the currency, or nil when absent.
func (x *Money) Currency() *Code { return x.currency }

// Accept visits x and then its fields in declaration order.
func (x *Money) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "value", x.value)
		visit.Child(v, "currency", x.currency)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Money) Equal(other *Money) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.value.Equal(other.value) &&
		x.currency.Equal(other.currency)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Money) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Money")
		x.HashBase(h)
		hashcode.Field(h, x.value)
		hashcode.Field(h, x.currency)
		return h.Sum64()
	})
}

func (x *Money) equalElement(o Element) bool {
	other, ok := o.(*Money)
	return ok && x.Equal(other)
}

func (x *Money) isNil() bool { return x == nil }

func (x *Money) checks() []error {
	return []error{
		x.ValidateBase("Money"),
		validate.HasChildren("Money", x.HasContentBase() ||
			x.value != nil ||
			x.currency != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Money) ToBuilder() *MoneyBuilder {
	return &MoneyBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		currency:  x.currency,
		opts:      x.opts,
	}
}

// MoneyBuilder builds Money values.
type MoneyBuilder struct {
	id        string
	extension []*Extension
	value     *Decimal
	currency  *Code
	opts      *fhirmodel.Options
}

// NewMoneyBuilder returns an empty builder.
func NewMoneyBuilder() *MoneyBuilder {
	return &MoneyBuilder{}
}

// ID sets the id.
func (b *MoneyBuilder) ID(v string) *MoneyBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *MoneyBuilder) Extension(values ...*Extension) *MoneyBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *MoneyBuilder) SetExtension(values []*Extension) *MoneyBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *MoneyBuilder) Value(v *Decimal) *MoneyBuilder {
	b.value = v
	return b
}

// Currency sets the currency.
func (b *MoneyBuilder) Currency(v *Code) *MoneyBuilder {
	b.currency = v
	return b
}

// Build validates the fields and returns an immutable Money. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *MoneyBuilder) Build() (*Money, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *MoneyBuilder) BuildWith(opts ...fhirmodel.Option) (*Money, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *MoneyBuilder) build(o *fhirmodel.Options) (*Money, error) {
	x := &Money{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		currency:    b.currency,
		opts:        o,
	}
	if err := validate.Run("Money", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
