package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Period is a time range defined by start and end date/time.
type Period struct {
	ElementBase
	start *DateTime
	end   *DateTime
	opts  *fhirmodel.Options
	memo  hashcode.Cell
}

// TypeName returns "Period".
func (x *Period) TypeName() string { return "Period" }

// Start returns the start, or nil when absent.
func (x *Period) Start() *DateTime { return x.start }

// End returns the end, or nil when absent.
func (x *Period) End() *DateTime { return x.end }

// Accept visits x and then its fields in declaration order.
func (x *Period) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "start", x.start)
		visit.Child(v, "end", x.end)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Period) Equal(other *Period) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.start.Equal(other.start) &&
		x.end.Equal(other.end)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Period) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Period")
		x.HashBase(h)
		hashcode.Field(h, x.start)
		hashcode.Field(h, x.end)
		return h.Sum64()
	})
}

func (x *Period) equalElement(o Element) bool {
	other, ok := o.(*Period)
	return ok && x.Equal(other)
}

func (x *Period) isNil() bool { return x == nil }

func (x *Period) checks() []error {
	return []error{
		x.ValidateBase("Period"),
		validate.HasChildren("Period", x.HasContentBase() ||
			x.start != nil ||
			x.end != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Period) ToBuilder() *PeriodBuilder {
	return &PeriodBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		start:     x.start,
		end:       x.end,
		opts:      x.opts,
	}
}

// PeriodBuilder builds Period values.
type PeriodBuilder struct {
	id        string
	extension []*Extension
	start     *DateTime
	end       *DateTime
	opts      *fhirmodel.Options
}

// NewPeriodBuilder returns an empty builder.
func NewPeriodBuilder() *PeriodBuilder {
	return &PeriodBuilder{}
}

// ID sets the id.
func (b *PeriodBuilder) ID(v string) *PeriodBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *PeriodBuilder) Extension(values ...*Extension) *PeriodBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *PeriodBuilder) SetExtension(values []*Extension) *PeriodBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Start sets the start.
func (b *PeriodBuilder) Start(v *DateTime) *PeriodBuilder {
	b.start = v
	return b
}

// End sets the end.
func (b *PeriodBuilder) End(v *DateTime) *PeriodBuilder {
	b.end = v
	return b
}

// Build validates the fields and returns an immutable Period. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *PeriodBuilder) Build() (*Period, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *PeriodBuilder) BuildWith(opts ...fhirmodel.Option) (*Period, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *PeriodBuilder) build(o *fhirmodel.Options) (*Period, error) {
	x := &Period{
		ElementBase: NewElementBase(b.id, b.extension),
		start:       b.start,
		end:         b.end,
		opts:        o,
	}
	if err := validate.Run("Period", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
