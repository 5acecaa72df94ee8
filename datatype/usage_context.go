package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// UsageContext describes the context a knowledge artifact applies to.
type UsageContext struct {
	ElementBase
	code  *Coding
	value Element
	opts  *fhirmodel.Options
	memo  hashcode.Cell
}

// TypeName returns "UsageContext".
func (x *UsageContext) TypeName() string { return "UsageContext" }

// Code returns the code. It is never nil on a built value.
func (x *UsageContext) Code() *Coding { return x.code }

// Value returns value[x]: CodeableConcept, Quantity, Range or Reference.
func (x *UsageContext) Value() Element { return x.value }

// Accept visits x and then its fields in declaration order.
func (x *UsageContext) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "code", x.code)
		visit.Child(v, "value", x.value)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *UsageContext) Equal(other *UsageContext) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.code.Equal(other.code) &&
		EqualElements(x.value, other.value)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *UsageContext) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("UsageContext")
		x.HashBase(h)
		hashcode.Field(h, x.code)
		hashcode.Field(h, x.value)
		return h.Sum64()
	})
}

func (x *UsageContext) equalElement(o Element) bool {
	other, ok := o.(*UsageContext)
	return ok && x.Equal(other)
}

func (x *UsageContext) isNil() bool { return x == nil }

func (x *UsageContext) checks() []error {
	return []error{
		x.ValidateBase("UsageContext"),
		validate.Required("UsageContext", "code", x.code),
		validate.Required("UsageContext", "value", x.value),
		validate.Choice("UsageContext", "value", x.value, "CodeableConcept", "Quantity", "Range", "Reference"),
		CheckReferenceChoice("UsageContext", "value", x.value, "PlanDefinition", "ResearchStudy", "InsurancePlan", "HealthcareService", "Group", "Location", "Organization"),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *UsageContext) ToBuilder() *UsageContextBuilder {
	return &UsageContextBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		code:      x.code,
		value:     x.value,
		opts:      x.opts,
	}
}

// UsageContextBuilder builds UsageContext values.
type UsageContextBuilder struct {
	id        string
	extension []*Extension
	code      *Coding
	value     Element
	opts      *fhirmodel.Options
}

// NewUsageContextBuilder returns an empty builder.
func NewUsageContextBuilder() *UsageContextBuilder {
	return &UsageContextBuilder{}
}

// ID sets the id.
func (b *UsageContextBuilder) ID(v string) *UsageContextBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *UsageContextBuilder) Extension(values ...*Extension) *UsageContextBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *UsageContextBuilder) SetExtension(values []*Extension) *UsageContextBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Code sets the code.
func (b *UsageContextBuilder) Code(v *Coding) *UsageContextBuilder {
	b.code = v
	return b
}

// Value sets value[x]. A typed nil clears it.
func (b *UsageContextBuilder) Value(v Element) *UsageContextBuilder {
	b.value = OrNil(v)
	return b
}

// Build validates the fields and returns an immutable UsageContext. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *UsageContextBuilder) Build() (*UsageContext, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *UsageContextBuilder) BuildWith(opts ...fhirmodel.Option) (*UsageContext, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *UsageContextBuilder) build(o *fhirmodel.Options) (*UsageContext, error) {
	x := &UsageContext{
		ElementBase: NewElementBase(b.id, b.extension),
		code:        b.code,
		value:       b.value,
		opts:        o,
	}
	if err := validate.Run("UsageContext", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
