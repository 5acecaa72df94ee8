package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// ContactDetail holds a name and the ways to contact that person.
type ContactDetail struct {
	ElementBase
	name    *String
	telecom []*ContactPoint
	opts    *fhirmodel.Options
	memo    hashcode.Cell
}

// TypeName returns "ContactDetail".
func (x *ContactDetail) TypeName() string { return "ContactDetail" }

// Name returns the name, or nil when absent.
func (x *ContactDetail) Name() *String { return x.name }

// Telecom returns a copy of the telecom list.
func (x *ContactDetail) Telecom() []*ContactPoint { return slices.Clone(x.telecom) }

// Accept visits x and then its fields in declaration order.
func (x *ContactDetail) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "name", x.name)
		visit.List(v, "telecom", x.telecom)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *ContactDetail) Equal(other *ContactDetail) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.name.Equal(other.name) &&
		slices.EqualFunc(x.telecom, other.telecom, (*ContactPoint).Equal)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *ContactDetail) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("ContactDetail")
		x.HashBase(h)
		hashcode.Field(h, x.name)
		hashcode.List(h, x.telecom)
		return h.Sum64()
	})
}

func (x *ContactDetail) equalElement(o Element) bool {
	other, ok := o.(*ContactDetail)
	return ok && x.Equal(other)
}

func (x *ContactDetail) isNil() bool { return x == nil }

func (x *ContactDetail) checks() []error {
	return []error{
		x.ValidateBase("ContactDetail"),
		validate.Elements("ContactDetail", "telecom", x.telecom),
		validate.HasChildren("ContactDetail", x.HasContentBase() ||
			x.name != nil ||
			len(x.telecom) > 0),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *ContactDetail) ToBuilder() *ContactDetailBuilder {
	return &ContactDetailBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		name:      x.name,
		telecom:   slices.Clone(x.telecom),
		opts:      x.opts,
	}
}

// ContactDetailBuilder builds ContactDetail values.
type ContactDetailBuilder struct {
	id        string
	extension []*Extension
	name      *String
	telecom   []*ContactPoint
	opts      *fhirmodel.Options
}

// NewContactDetailBuilder returns an empty builder.
func NewContactDetailBuilder() *ContactDetailBuilder {
	return &ContactDetailBuilder{}
}

// ID sets the id.
func (b *ContactDetailBuilder) ID(v string) *ContactDetailBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *ContactDetailBuilder) Extension(values ...*Extension) *ContactDetailBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *ContactDetailBuilder) SetExtension(values []*Extension) *ContactDetailBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Name sets the name.
func (b *ContactDetailBuilder) Name(v *String) *ContactDetailBuilder {
	b.name = v
	return b
}

// Telecom appends values to telecom.
func (b *ContactDetailBuilder) Telecom(values ...*ContactPoint) *ContactDetailBuilder {
	b.telecom = append(b.telecom, values...)
	return b
}

// SetTelecom replaces telecom with a copy of values.
func (b *ContactDetailBuilder) SetTelecom(values []*ContactPoint) *ContactDetailBuilder {
	b.telecom = slices.Clone(values)
	return b
}

// Build validates the fields and returns an immutable ContactDetail. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *ContactDetailBuilder) Build() (*ContactDetail, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *ContactDetailBuilder) BuildWith(opts ...fhirmodel.Option) (*ContactDetail, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *ContactDetailBuilder) build(o *fhirmodel.Options) (*ContactDetail, error) {
	x := &ContactDetail{
		ElementBase: NewElementBase(b.id, b.extension),
		name:        b.name,
		telecom:     slices.Clone(b.telecom),
		opts:        o,
	}
	if err := validate.Run("ContactDetail", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
