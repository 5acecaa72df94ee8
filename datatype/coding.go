package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Coding is a reference to a code defined by a terminology system.
type Coding struct {
	ElementBase
	system       *URI
	version      *String
	code         *Code
	display      *String
	userSelected *Boolean
	opts         *fhirmodel.Options
	memo         hashcode.Cell
}

// TypeName returns "Coding".
func (x *Coding) TypeName() string { return "Coding" }

// System returns the system, or nil when absent.
func (x *Coding) System() *URI { return x.system }

// Version returns the version, or nil when absent.
func (x *Coding) Version() *String { return x.version }

// Code returns the code, or nil when absent.
func (x *Coding) Code() *Code { return x.code }

// Display returns the display, or nil when absent.
func (x *Coding) Display() *String { return x.display }

// UserSelected returns the user selected, or nil when absent.
func (x *Coding) UserSelected() *Boolean { return x.userSelected }

// Accept visits x and then its fields in declaration order.
func (x *Coding) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "system", x.system)
		visit.Child(v, "version", x.version)
		visit.Child(v, "code", x.code)
		visit.Child(v, "display", x.display)
		visit.Child(v, "userSelected", x.userSelected)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Coding) Equal(other *Coding) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.system.Equal(other.system) &&
		x.version.Equal(other.version) &&
		x.code.Equal(other.code) &&
		x.display.Equal(other.display) &&
		x.userSelected.Equal(other.userSelected)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Coding) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Coding")
		x.HashBase(h)
		hashcode.Field(h, x.system)
		hashcode.Field(h, x.version)
		hashcode.Field(h, x.code)
		hashcode.Field(h, x.display)
		hashcode.Field(h, x.userSelected)
		return h.Sum64()
	})
}

func (x *Coding) equalElement(o Element) bool {
	other, ok := o.(*Coding)
	return ok && x.Equal(other)
}

func (x *Coding) isNil() bool { return x == nil }

func (x *Coding) checks() []error {
	return []error{
		x.ValidateBase("Coding"),
		validate.HasChildren("Coding", x.HasContentBase() ||
			x.system != nil ||
			x.version != nil ||
			x.code != nil ||
			x.display != nil ||
			x.userSelected != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Coding) ToBuilder() *CodingBuilder {
	return &CodingBuilder{
		id:           x.id,
		extension:    slices.Clone(x.extension),
		system:       x.system,
		version:      x.version,
		code:         x.code,
		display:      x.display,
		userSelected: x.userSelected,
		opts:         x.opts,
	}
}

// CodingBuilder builds Coding values.
type CodingBuilder struct {
	id           string
	extension    []*Extension
	system       *URI
	version      *String
	code         *Code
	display      *String
	userSelected *Boolean
	opts         *fhirmodel.Options
}

// NewCodingBuilder returns an empty builder.
func NewCodingBuilder() *CodingBuilder {
	return &CodingBuilder{}
}

// ID sets the id.
func (b *CodingBuilder) ID(v string) *CodingBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *CodingBuilder) Extension(values ...*Extension) *CodingBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *CodingBuilder) SetExtension(values []*Extension) *CodingBuilder {
	b.extension = slices.Clone(values)
	return b
}

// System sets the system.
func (b *CodingBuilder) System(v *URI) *CodingBuilder {
	b.system = v
	return b
}

// Version sets the version.
func (b *CodingBuilder) Version(v *String) *CodingBuilder {
	b.version = v
	return b
}

// Code sets the code.
func (b *CodingBuilder) Code(v *Code) *CodingBuilder {
	b.code = v
	return b
}

// Display sets the display.
func (b *CodingBuilder) Display(v *String) *CodingBuilder {
	b.display = v
	return b
}

// UserSelected sets the user selected.
func (b *CodingBuilder) UserSelected(v *Boolean) *CodingBuilder {
	b.userSelected = v
	return b
}

// Build validates the fields and returns an immutable Coding. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *CodingBuilder) Build() (*Coding, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *CodingBuilder) BuildWith(opts ...fhirmodel.Option) (*Coding, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *CodingBuilder) build(o *fhirmodel.Options) (*Coding, error) {
	x := &Coding{
		ElementBase:  NewElementBase(b.id, b.extension),
		system:       b.system,
		version:      b.version,
		code:         b.code,
		display:      b.display,
		userSelected: b.userSelected,
		opts:         o,
	}
	if err := validate.Run("Coding", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
