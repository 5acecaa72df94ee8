package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// ContactPoint holds details for a technology-mediated contact.
type ContactPoint struct {
	ElementBase
	system *Code
	value  *String
	use    *Code
	rank   *PositiveInt
	period *Period
	opts   *fhirmodel.Options
	memo   hashcode.Cell
}

// TypeName returns "ContactPoint".
func (x *ContactPoint) TypeName() string { return "ContactPoint" }

// System returns the system code, drawn from ContactPointSystem.
func (x *ContactPoint) System() *Code { return x.system }

// Value returns the value, or nil when absent.
func (x *ContactPoint) Value() *String { return x.value }

// Use returns the use code, drawn from ContactPointUse.
func (x *ContactPoint) Use() *Code { return x.use }

// Rank returns the rank, or nil when absent.
func (x *ContactPoint) Rank() *PositiveInt { return x.rank }

// Period returns the period, or nil when absent.
func (x *ContactPoint) Period() *Period { return x.period }

// Accept visits x and then its fields in declaration order.
func (x *ContactPoint) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "system", x.system)
		visit.Child(v, "value", x.value)
		visit.Child(v, "use", x.use)
		visit.Child(v, "rank", x.rank)
		visit.Child(v, "period", x.period)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *ContactPoint) Equal(other *ContactPoint) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.system.Equal(other.system) &&
		x.value.Equal(other.value) &&
		x.use.Equal(other.use) &&
		x.rank.Equal(other.rank) &&
		x.period.Equal(other.period)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *ContactPoint) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("ContactPoint")
		x.HashBase(h)
		hashcode.Field(h, x.system)
		hashcode.Field(h, x.value)
		hashcode.Field(h, x.use)
		hashcode.Field(h, x.rank)
		hashcode.Field(h, x.period)
		return h.Sum64()
	})
}

func (x *ContactPoint) equalElement(o Element) bool {
	other, ok := o.(*ContactPoint)
	return ok && x.Equal(other)
}

func (x *ContactPoint) isNil() bool { return x == nil }

func (x *ContactPoint) checks() []error {
	return []error{
		x.ValidateBase("ContactPoint"),
		CheckCode("ContactPoint", "system", x.system, ContactPointSystemValues),
		CheckCode("ContactPoint", "use", x.use, ContactPointUseValues),
		validate.HasChildren("ContactPoint", x.HasContentBase() ||
			x.system != nil ||
			x.value != nil ||
			x.use != nil ||
			x.rank != nil ||
			x.period != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *ContactPoint) ToBuilder() *ContactPointBuilder {
	return &ContactPointBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		system:    x.system,
		value:     x.value,
		use:       x.use,
		rank:      x.rank,
		period:    x.period,
		opts:      x.opts,
	}
}

// ContactPointBuilder builds ContactPoint values.
type ContactPointBuilder struct {
	id        string
	extension []*Extension
	system    *Code
	value     *String
	use       *Code
	rank      *PositiveInt
	period    *Period
	opts      *fhirmodel.Options
}

// NewContactPointBuilder returns an empty builder.
func NewContactPointBuilder() *ContactPointBuilder {
	return &ContactPointBuilder{}
}

// ID sets the id.
func (b *ContactPointBuilder) ID(v string) *ContactPointBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *ContactPointBuilder) Extension(values ...*Extension) *ContactPointBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *ContactPointBuilder) SetExtension(values []*Extension) *ContactPointBuilder {
	b.extension = slices.Clone(values)
	return b
}

// System sets the system.
func (b *ContactPointBuilder) System(v *Code) *ContactPointBuilder {
	b.system = v
	return b
}

// Value sets the value.
func (b *ContactPointBuilder) Value(v *String) *ContactPointBuilder {
	b.value = v
	return b
}

// Use sets the use.
func (b *ContactPointBuilder) Use(v *Code) *ContactPointBuilder {
	b.use = v
	return b
}

// Rank sets the rank.
func (b *ContactPointBuilder) Rank(v *PositiveInt) *ContactPointBuilder {
	b.rank = v
	return b
}

// Period sets the period.
func (b *ContactPointBuilder) Period(v *Period) *ContactPointBuilder {
	b.period = v
	return b
}

// Build validates the fields and returns an immutable ContactPoint. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *ContactPointBuilder) Build() (*ContactPoint, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *ContactPointBuilder) BuildWith(opts ...fhirmodel.Option) (*ContactPoint, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *ContactPointBuilder) build(o *fhirmodel.Options) (*ContactPoint, error) {
	x := &ContactPoint{
		ElementBase: NewElementBase(b.id, b.extension),
		system:      b.system,
		value:       b.value,
		use:         b.use,
		rank:        b.rank,
		period:      b.period,
		opts:        o,
	}
	if err := validate.Run("ContactPoint", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
