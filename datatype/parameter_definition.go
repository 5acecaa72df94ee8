package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// ParameterDefinition describes a parameter of a module.
type ParameterDefinition struct {
	ElementBase
	name          *Code
	use           *Code
	min           *Integer
	max           *String
	documentation *String
	typ           *Code
	profile       *Canonical
	opts          *fhirmodel.Options
	memo          hashcode.Cell
}

// TypeName returns "ParameterDefinition".
func (x *ParameterDefinition) TypeName() string { return "ParameterDefinition" }

// Name returns the name, or nil when absent.
func (x *ParameterDefinition) Name() *Code { return x.name }

// Use returns the use code, drawn from OperationParameterUse.
func (x *ParameterDefinition) Use() *Code { return x.use }

// Min returns the min, or nil when absent.
func (x *ParameterDefinition) Min() *Integer { return x.min }

// Max returns the max, or nil when absent.
func (x *ParameterDefinition) Max() *String { return x.max }

// Documentation returns the documentation, or nil when absent.
func (x *ParameterDefinition) Documentation() *String { return x.documentation }

// Type returns the type. It is never nil on a built value.
func (x *ParameterDefinition) Type() *Code { return x.typ }

// Profile returns the profile, or nil when absent.
func (x *ParameterDefinition) Profile() *Canonical { return x.profile }

// Accept visits x and then its fields in declaration order.
func (x *ParameterDefinition) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "name", x.name)
		visit.Child(v, "use", x.use)
		visit.Child(v, "min", x.min)
		visit.Child(v, "max", x.max)
		visit.Child(v, "documentation", x.documentation)
		visit.Child(v, "type", x.typ)
		visit.Child(v, "profile", x.profile)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *ParameterDefinition) Equal(other *ParameterDefinition) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.name.Equal(other.name) &&
		x.use.Equal(other.use) &&
		x.min.Equal(other.min) &&
		x.max.Equal(other.max) &&
		x.documentation.Equal(other.documentation) &&
		x.typ.Equal(other.typ) &&
		x.profile.Equal(other.profile)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *ParameterDefinition) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("ParameterDefinition")
		x.HashBase(h)
		hashcode.Field(h, x.name)
		hashcode.Field(h, x.use)
		hashcode.Field(h, x.min)
		hashcode.Field(h, x.max)
		hashcode.Field(h, x.documentation)
		hashcode.Field(h, x.typ)
		hashcode.Field(h, x.profile)
		return h.Sum64()
	})
}

func (x *ParameterDefinition) equalElement(o Element) bool {
	other, ok := o.(*ParameterDefinition)
	return ok && x.Equal(other)
}

func (x *ParameterDefinition) isNil() bool { return x == nil }

func (x *ParameterDefinition) checks() []error {
	return []error{
		x.ValidateBase("ParameterDefinition"),
		validate.Required("ParameterDefinition", "use", x.use),
		CheckCode("ParameterDefinition", "use", x.use, ParameterUseValues),
		validate.Required("ParameterDefinition", "type", x.typ),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *ParameterDefinition) ToBuilder() *ParameterDefinitionBuilder {
	return &ParameterDefinitionBuilder{
		id:            x.id,
		extension:     slices.Clone(x.extension),
		name:          x.name,
		use:           x.use,
		min:           x.min,
		max:           x.max,
		documentation: x.documentation,
		typ:           x.typ,
		profile:       x.profile,
		opts:          x.opts,
	}
}

// ParameterDefinitionBuilder builds ParameterDefinition values.
type ParameterDefinitionBuilder struct {
	id            string
	extension     []*Extension
	name          *Code
	use           *Code
	min           *Integer
	max           *String
	documentation *String
	typ           *Code
	profile       *Canonical
	opts          *fhirmodel.Options
}

// NewParameterDefinitionBuilder returns an empty builder.
func NewParameterDefinitionBuilder() *ParameterDefinitionBuilder {
	return &ParameterDefinitionBuilder{}
}

// ID sets the id.
func (b *ParameterDefinitionBuilder) ID(v string) *ParameterDefinitionBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *ParameterDefinitionBuilder) Extension(values ...*Extension) *ParameterDefinitionBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *ParameterDefinitionBuilder) SetExtension(values []*Extension) *ParameterDefinitionBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Name sets the name.
func (b *ParameterDefinitionBuilder) Name(v *Code) *ParameterDefinitionBuilder {
	b.name = v
	return b
}

// Use sets the use.
func (b *ParameterDefinitionBuilder) Use(v *Code) *ParameterDefinitionBuilder {
	b.use = v
	return b
}

// Min sets the min.
func (b *ParameterDefinitionBuilder) Min(v *Integer) *ParameterDefinitionBuilder {
	b.min = v
	return b
}

// Max sets the max.
func (b *ParameterDefinitionBuilder) Max(v *String) *ParameterDefinitionBuilder {
	b.max = v
	return b
}

// Documentation sets the documentation.
func (b *ParameterDefinitionBuilder) Documentation(v *String) *ParameterDefinitionBuilder {
	b.documentation = v
	return b
}

// Type sets the type.
func (b *ParameterDefinitionBuilder) Type(v *Code) *ParameterDefinitionBuilder {
	b.typ = v
	return b
}

// Profile sets the profile.
func (b *ParameterDefinitionBuilder) Profile(v *Canonical) *ParameterDefinitionBuilder {
	b.profile = v
	return b
}

// Build validates the fields and returns an immutable ParameterDefinition. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *ParameterDefinitionBuilder) Build() (*ParameterDefinition, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *ParameterDefinitionBuilder) BuildWith(opts ...fhirmodel.Option) (*ParameterDefinition, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *ParameterDefinitionBuilder) build(o *fhirmodel.Options) (*ParameterDefinition, error) {
	x := &ParameterDefinition{
		ElementBase:   NewElementBase(b.id, b.extension),
		name:          b.name,
		use:           b.use,
		min:           b.min,
		max:           b.max,
		documentation: b.documentation,
		typ:           b.typ,
		profile:       b.profile,
		opts:          o,
	}
	if err := validate.Run("ParameterDefinition", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
