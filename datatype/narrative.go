package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Narrative is a human-readable summary of a resource.
type Narrative struct {
	ElementBase
	status *Code
	div    *XHTML
	opts   *fhirmodel.Options
	memo   hashcode.Cell
}

// TypeName returns "Narrative".
func (x *Narrative) TypeName() string { return "Narrative" }

// Status returns the status code, drawn from NarrativeStatus.
func (x *Narrative) Status() *Code { return x.status }

// Div returns the div. It is never nil on a built value.
func (x *Narrative) Div() *XHTML { return x.div }

// Accept visits x and then its fields in declaration order.
func (x *Narrative) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "status", x.status)
		visit.Child(v, "div", x.div)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Narrative) Equal(other *Narrative) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.status.Equal(other.status) &&
		x.div.Equal(other.div)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Narrative) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Narrative")
		x.HashBase(h)
		hashcode.Field(h, x.status)
		hashcode.Field(h, x.div)
		return h.Sum64()
	})
}

func (x *Narrative) equalElement(o Element) bool {
	other, ok := o.(*Narrative)
	return ok && x.Equal(other)
}

func (x *Narrative) isNil() bool { return x == nil }

func (x *Narrative) checks() []error {
	return []error{
		x.ValidateBase("Narrative"),
		validate.Required("Narrative", "status", x.status),
		CheckCode("Narrative", "status", x.status, NarrativeStatusValues),
		validate.Required("Narrative", "div", x.div),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Narrative) ToBuilder() *NarrativeBuilder {
	return &NarrativeBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		status:    x.status,
		div:       x.div,
		opts:      x.opts,
	}
}

// NarrativeBuilder builds Narrative values.
type NarrativeBuilder struct {
	id        string
	extension []*Extension
	status    *Code
	div       *XHTML
	opts      *fhirmodel.Options
}

// NewNarrativeBuilder returns an empty builder.
func NewNarrativeBuilder() *NarrativeBuilder {
	return &NarrativeBuilder{}
}

// ID sets the id.
func (b *NarrativeBuilder) ID(v string) *NarrativeBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *NarrativeBuilder) Extension(values ...*Extension) *NarrativeBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *NarrativeBuilder) SetExtension(values []*Extension) *NarrativeBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Status sets the status.
func (b *NarrativeBuilder) Status(v *Code) *NarrativeBuilder {
	b.status = v
	return b
}

// Div sets the div.
func (b *NarrativeBuilder) Div(v *XHTML) *NarrativeBuilder {
	b.div = v
	return b
}

// Build validates the fields and returns an immutable Narrative. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *NarrativeBuilder) Build() (*Narrative, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *NarrativeBuilder) BuildWith(opts ...fhirmodel.Option) (*Narrative, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *NarrativeBuilder) build(o *fhirmodel.Options) (*Narrative, error) {
	x := &Narrative{
		ElementBase: NewElementBase(b.id, b.extension),
		status:      b.status,
		div:         b.div,
		opts:        o,
	}
	if err := validate.Run("Narrative", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
