package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Identifier is a business identifier assigned to a resource.
type Identifier struct {
	ElementBase
	use      *Code
	typ      *CodeableConcept
	system   *URI
	value    *String
	period   *Period
	assigner *Reference
	opts     *fhirmodel.Options
	memo     hashcode.Cell
}

// TypeName returns "Identifier".
func (x *Identifier) TypeName() string { return "Identifier" }

// Use returns the use code, drawn from IdentifierUse.
func (x *Identifier) Use() *Code { return x.use }

// Type returns the type, or nil when absent.
func (x *Identifier) Type() *CodeableConcept { return x.typ }

// System returns the system, or nil when absent.
func (x *Identifier) System() *URI { return x.system }

// Value returns the value, or nil when absent.
func (x *Identifier) Value() *String { return x.value }

// Period returns the period, or nil when absent.
func (x *Identifier) Period() *Period { return x.period }

// Assigner returns the assigner reference to Organization.
func (x *Identifier) Assigner() *Reference { return x.assigner }

// Accept visits x and then its fields in declaration order.
func (x *Identifier) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "use", x.use)
		visit.Child(v, "type", x.typ)
		visit.Child(v, "system", x.system)
		visit.Child(v, "value", x.value)
		visit.Child(v, "period", x.period)
		visit.Child(v, "assigner", x.assigner)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Identifier) Equal(other *Identifier) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.use.Equal(other.use) &&
		x.typ.Equal(other.typ) &&
		x.system.Equal(other.system) &&
		x.value.Equal(other.value) &&
		x.period.Equal(other.period) &&
		x.assigner.Equal(other.assigner)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Identifier) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Identifier")
		x.HashBase(h)
		hashcode.Field(h, x.use)
		hashcode.Field(h, x.typ)
		hashcode.Field(h, x.system)
		hashcode.Field(h, x.value)
		hashcode.Field(h, x.period)
		hashcode.Field(h, x.assigner)
		return h.Sum64()
	})
}

func (x *Identifier) equalElement(o Element) bool {
	other, ok := o.(*Identifier)
	return ok && x.Equal(other)
}

func (x *Identifier) isNil() bool { return x == nil }

func (x *Identifier) checks() []error {
	return []error{
		x.ValidateBase("Identifier"),
		CheckCode("Identifier", "use", x.use, IdentifierUseValues),
		CheckReference("Identifier", "assigner", x.assigner, "Organization"),
		validate.HasChildren("Identifier", x.HasContentBase() ||
			x.use != nil ||
			x.typ != nil ||
			x.system != nil ||
			x.value != nil ||
			x.period != nil ||
			x.assigner != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Identifier) ToBuilder() *IdentifierBuilder {
	return &IdentifierBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		use:       x.use,
		typ:       x.typ,
		system:    x.system,
		value:     x.value,
		period:    x.period,
		assigner:  x.assigner,
		opts:      x.opts,
	}
}

// IdentifierBuilder builds Identifier values.
type IdentifierBuilder struct {
	id        string
	extension []*Extension
	use       *Code
	typ       *CodeableConcept
	system    *URI
	value     *String
	period    *Period
	assigner  *Reference
	opts      *fhirmodel.Options
}

// NewIdentifierBuilder returns an empty builder.
func NewIdentifierBuilder() *IdentifierBuilder {
	return &IdentifierBuilder{}
}

// ID sets the id.
func (b *IdentifierBuilder) ID(v string) *IdentifierBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *IdentifierBuilder) Extension(values ...*Extension) *IdentifierBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *IdentifierBuilder) SetExtension(values []*Extension) *IdentifierBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Use sets the use.
func (b *IdentifierBuilder) Use(v *Code) *IdentifierBuilder {
	b.use = v
	return b
}

// Type sets the type.
func (b *IdentifierBuilder) Type(v *CodeableConcept) *IdentifierBuilder {
	b.typ = v
	return b
}

// System sets the system.
func (b *IdentifierBuilder) System(v *URI) *IdentifierBuilder {
	b.system = v
	return b
}

// Value sets the value.
func (b *IdentifierBuilder) Value(v *String) *IdentifierBuilder {
	b.value = v
	return b
}

// Period sets the period.
func (b *IdentifierBuilder) Period(v *Period) *IdentifierBuilder {
	b.period = v
	return b
}

// Assigner sets the assigner.
func (b *IdentifierBuilder) Assigner(v *Reference) *IdentifierBuilder {
	b.assigner = v
	return b
}

// Build validates the fields and returns an immutable Identifier. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *IdentifierBuilder) Build() (*Identifier, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *IdentifierBuilder) BuildWith(opts ...fhirmodel.Option) (*Identifier, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *IdentifierBuilder) build(o *fhirmodel.Options) (*Identifier, error) {
	x := &Identifier{
		ElementBase: NewElementBase(b.id, b.extension),
		use:         b.use,
		typ:         b.typ,
		system:      b.system,
		value:       b.value,
		period:      b.period,
		assigner:    b.assigner,
		opts:        o,
	}
	if err := validate.Run("Identifier", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
