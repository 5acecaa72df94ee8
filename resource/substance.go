package resource

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Substance is a homogeneous material with a definite composition.
type Substance struct {
	DomainResourceBase
	identifier  []*datatype.Identifier
	status      *datatype.Code
	category    []*datatype.CodeableConcept
	code        *datatype.CodeableConcept
	description *datatype.String
	instance    []*SubstanceInstance
	ingredient  []*SubstanceIngredient
	opts        *fhirmodel.Options
	memo        hashcode.Cell
}

// ResourceType returns "Substance".
func (x *Substance) ResourceType() string { return "Substance" }

// TypeName returns "Substance".
func (x *Substance) TypeName() string { return "Substance" }

// Identifier returns a copy of the identifier list.
func (x *Substance) Identifier() []*datatype.Identifier { return slices.Clone(x.identifier) }

// Status returns the status code, drawn from FHIRSubstanceStatus.
func (x *Substance) Status() *datatype.Code { return x.status }

// Category returns a copy of the category list.
func (x *Substance) Category() []*datatype.CodeableConcept { return slices.Clone(x.category) }

// Code returns the code. It is never nil on a built value.
func (x *Substance) Code() *datatype.CodeableConcept { return x.code }

// Description returns the description, or nil when absent.
func (x *Substance) Description() *datatype.String { return x.description }

// Instance returns a copy of the instance list.
func (x *Substance) Instance() []*SubstanceInstance { return slices.Clone(x.instance) }

// Ingredient returns a copy of the ingredient list.
func (x *Substance) Ingredient() []*SubstanceIngredient { return slices.Clone(x.ingredient) }

// Accept visits x and then its fields in declaration order.
func (x *Substance) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.List(v, "identifier", x.identifier)
		visit.Child(v, "status", x.status)
		visit.List(v, "category", x.category)
		visit.Child(v, "code", x.code)
		visit.Child(v, "description", x.description)
		visit.List(v, "instance", x.instance)
		visit.List(v, "ingredient", x.ingredient)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Substance) Equal(other *Substance) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.DomainResourceBase) &&
		slices.EqualFunc(x.identifier, other.identifier, (*datatype.Identifier).Equal) &&
		x.status.Equal(other.status) &&
		slices.EqualFunc(x.category, other.category, (*datatype.CodeableConcept).Equal) &&
		x.code.Equal(other.code) &&
		x.description.Equal(other.description) &&
		slices.EqualFunc(x.instance, other.instance, (*SubstanceInstance).Equal) &&
		slices.EqualFunc(x.ingredient, other.ingredient, (*SubstanceIngredient).Equal)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Substance) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Substance")
		x.HashBase(h)
		hashcode.List(h, x.identifier)
		hashcode.Field(h, x.status)
		hashcode.List(h, x.category)
		hashcode.Field(h, x.code)
		hashcode.Field(h, x.description)
		hashcode.List(h, x.instance)
		hashcode.List(h, x.ingredient)
		return h.Sum64()
	})
}

func (x *Substance) equalResource(o Resource) bool {
	other, ok := o.(*Substance)
	return ok && x.Equal(other)
}

func (x *Substance) isNil() bool { return x == nil }

func (x *Substance) checks() []error {
	return []error{
		x.ValidateBase("Substance"),
		validate.Elements("Substance", "identifier", x.identifier),
		datatype.CheckCode("Substance", "status", x.status, FHIRSubstanceStatusValues),
		validate.Elements("Substance", "category", x.category),
		validate.Required("Substance", "code", x.code),
		validate.Elements("Substance", "instance", x.instance),
		validate.Elements("Substance", "ingredient", x.ingredient),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Substance) ToBuilder() *SubstanceBuilder {
	return &SubstanceBuilder{
		id:                x.ID(),
		meta:              x.Meta(),
		implicitRules:     x.ImplicitRules(),
		language:          x.Language(),
		text:              x.Text(),
		contained:         x.Contained(),
		extension:         x.Extension(),
		modifierExtension: x.ModifierExtension(),
		identifier:        slices.Clone(x.identifier),
		status:            x.status,
		category:          slices.Clone(x.category),
		code:              x.code,
		description:       x.description,
		instance:          slices.Clone(x.instance),
		ingredient:        slices.Clone(x.ingredient),
		opts:              x.opts,
	}
}

// SubstanceBuilder builds Substance values.
type SubstanceBuilder struct {
	id                string
	meta              *datatype.Meta
	implicitRules     *datatype.URI
	language          *datatype.Code
	text              *datatype.Narrative
	contained         []Resource
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	identifier        []*datatype.Identifier
	status            *datatype.Code
	category          []*datatype.CodeableConcept
	code              *datatype.CodeableConcept
	description       *datatype.String
	instance          []*SubstanceInstance
	ingredient        []*SubstanceIngredient
	opts              *fhirmodel.Options
}

// NewSubstanceBuilder returns an empty builder.
func NewSubstanceBuilder() *SubstanceBuilder {
	return &SubstanceBuilder{}
}

// ID sets the id.
func (b *SubstanceBuilder) ID(v string) *SubstanceBuilder {
	b.id = v
	return b
}

// Meta sets the meta.
func (b *SubstanceBuilder) Meta(v *datatype.Meta) *SubstanceBuilder {
	b.meta = v
	return b
}

// ImplicitRules sets the implicit rules.
func (b *SubstanceBuilder) ImplicitRules(v *datatype.URI) *SubstanceBuilder {
	b.implicitRules = v
	return b
}

// Language sets the language.
func (b *SubstanceBuilder) Language(v *datatype.Code) *SubstanceBuilder {
	b.language = v
	return b
}

// Text sets the text.
func (b *SubstanceBuilder) Text(v *datatype.Narrative) *SubstanceBuilder {
	b.text = v
	return b
}

// Contained appends values to contained.
func (b *SubstanceBuilder) Contained(values ...Resource) *SubstanceBuilder {
	for _, v := range values {
		b.contained = append(b.contained, orNil(v))
	}
	return b
}

// SetContained replaces contained with a copy of values.
func (b *SubstanceBuilder) SetContained(values []Resource) *SubstanceBuilder {
	b.contained = nil
	return b.Contained(values...)
}

// Extension appends values to extension.
func (b *SubstanceBuilder) Extension(values ...*datatype.Extension) *SubstanceBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *SubstanceBuilder) SetExtension(values []*datatype.Extension) *SubstanceBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *SubstanceBuilder) ModifierExtension(values ...*datatype.Extension) *SubstanceBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *SubstanceBuilder) SetModifierExtension(values []*datatype.Extension) *SubstanceBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Identifier appends values to identifier.
func (b *SubstanceBuilder) Identifier(values ...*datatype.Identifier) *SubstanceBuilder {
	b.identifier = append(b.identifier, values...)
	return b
}

// SetIdentifier replaces identifier with a copy of values.
func (b *SubstanceBuilder) SetIdentifier(values []*datatype.Identifier) *SubstanceBuilder {
	b.identifier = slices.Clone(values)
	return b
}

// Status sets the status.
func (b *SubstanceBuilder) Status(v *datatype.Code) *SubstanceBuilder {
	b.status = v
	return b
}

// Category appends values to category.
func (b *SubstanceBuilder) Category(values ...*datatype.CodeableConcept) *SubstanceBuilder {
	b.category = append(b.category, values...)
	return b
}

// SetCategory replaces category with a copy of values.
func (b *SubstanceBuilder) SetCategory(values []*datatype.CodeableConcept) *SubstanceBuilder {
	b.category = slices.Clone(values)
	return b
}

// Code sets the code.
func (b *SubstanceBuilder) Code(v *datatype.CodeableConcept) *SubstanceBuilder {
	b.code = v
	return b
}

// Description sets the description.
func (b *SubstanceBuilder) Description(v *datatype.String) *SubstanceBuilder {
	b.description = v
	return b
}

// Instance appends values to instance.
func (b *SubstanceBuilder) Instance(values ...*SubstanceInstance) *SubstanceBuilder {
	b.instance = append(b.instance, values...)
	return b
}

// SetInstance replaces instance with a copy of values.
func (b *SubstanceBuilder) SetInstance(values []*SubstanceInstance) *SubstanceBuilder {
	b.instance = slices.Clone(values)
	return b
}

// Ingredient appends values to ingredient.
func (b *SubstanceBuilder) Ingredient(values ...*SubstanceIngredient) *SubstanceBuilder {
	b.ingredient = append(b.ingredient, values...)
	return b
}

// SetIngredient replaces ingredient with a copy of values.
func (b *SubstanceBuilder) SetIngredient(values []*SubstanceIngredient) *SubstanceBuilder {
	b.ingredient = slices.Clone(values)
	return b
}

// Build validates the fields and returns an immutable Substance. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *SubstanceBuilder) Build() (*Substance, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *SubstanceBuilder) BuildWith(opts ...fhirmodel.Option) (*Substance, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *SubstanceBuilder) build(o *fhirmodel.Options) (*Substance, error) {
	x := &Substance{
		DomainResourceBase: newDomainResourceBase(b.id, b.meta, b.implicitRules, b.language, b.text, b.contained, b.extension, b.modifierExtension),
		identifier:         slices.Clone(b.identifier),
		status:             b.status,
		category:           slices.Clone(b.category),
		code:               b.code,
		description:        b.description,
		instance:           slices.Clone(b.instance),
		ingredient:         slices.Clone(b.ingredient),
		opts:               o,
	}
	if err := validate.Run("Substance", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// SubstanceInstance is a specific amount of the substance held in a package or container.
type SubstanceInstance struct {
	datatype.BackboneElementBase
	identifier *datatype.Identifier
	expiry     *datatype.DateTime
	quantity   *datatype.SimpleQuantity
	opts       *fhirmodel.Options
	memo       hashcode.Cell
}

// TypeName returns "Substance.Instance".
func (x *SubstanceInstance) TypeName() string { return "Substance.Instance" }

// Identifier returns the identifier, or nil when absent.
func (x *SubstanceInstance) Identifier() *datatype.Identifier { return x.identifier }

// Expiry returns the expiry, or nil when absent.
func (x *SubstanceInstance) Expiry() *datatype.DateTime { return x.expiry }

// Quantity returns the quantity, or nil when absent.
func (x *SubstanceInstance) Quantity() *datatype.SimpleQuantity { return x.quantity }

// Accept visits x and then its fields in declaration order.
func (x *SubstanceInstance) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "identifier", x.identifier)
		visit.Child(v, "expiry", x.expiry)
		visit.Child(v, "quantity", x.quantity)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *SubstanceInstance) Equal(other *SubstanceInstance) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.BackboneElementBase) &&
		x.identifier.Equal(other.identifier) &&
		x.expiry.Equal(other.expiry) &&
		x.quantity.Equal(other.quantity)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *SubstanceInstance) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Substance.Instance")
		x.HashBase(h)
		hashcode.Field(h, x.identifier)
		hashcode.Field(h, x.expiry)
		hashcode.Field(h, x.quantity)
		return h.Sum64()
	})
}

func (x *SubstanceInstance) checks() []error {
	return []error{
		x.ValidateBase("Substance.Instance"),
		validate.HasChildren("Substance.Instance", x.HasContentBase() ||
			x.identifier != nil ||
			x.expiry != nil ||
			x.quantity != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *SubstanceInstance) ToBuilder() *SubstanceInstanceBuilder {
	return &SubstanceInstanceBuilder{
		id:                x.ID(),
		extension:         x.Extension(),
		modifierExtension: x.ModifierExtension(),
		identifier:        x.identifier,
		expiry:            x.expiry,
		quantity:          x.quantity,
		opts:              x.opts,
	}
}

// SubstanceInstanceBuilder builds SubstanceInstance values.
type SubstanceInstanceBuilder struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	identifier        *datatype.Identifier
	expiry            *datatype.DateTime
	quantity          *datatype.SimpleQuantity
	opts              *fhirmodel.Options
}

// NewSubstanceInstanceBuilder returns an empty builder.
func NewSubstanceInstanceBuilder() *SubstanceInstanceBuilder {
	return &SubstanceInstanceBuilder{}
}

// ID sets the id.
func (b *SubstanceInstanceBuilder) ID(v string) *SubstanceInstanceBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *SubstanceInstanceBuilder) Extension(values ...*datatype.Extension) *SubstanceInstanceBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *SubstanceInstanceBuilder) SetExtension(values []*datatype.Extension) *SubstanceInstanceBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *SubstanceInstanceBuilder) ModifierExtension(values ...*datatype.Extension) *SubstanceInstanceBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *SubstanceInstanceBuilder) SetModifierExtension(values []*datatype.Extension) *SubstanceInstanceBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Identifier sets the identifier.
func (b *SubstanceInstanceBuilder) Identifier(v *datatype.Identifier) *SubstanceInstanceBuilder {
	b.identifier = v
	return b
}

// Expiry sets the expiry.
func (b *SubstanceInstanceBuilder) Expiry(v *datatype.DateTime) *SubstanceInstanceBuilder {
	b.expiry = v
	return b
}

// Quantity sets the quantity.
func (b *SubstanceInstanceBuilder) Quantity(v *datatype.SimpleQuantity) *SubstanceInstanceBuilder {
	b.quantity = v
	return b
}

// Build validates the fields and returns an immutable SubstanceInstance. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *SubstanceInstanceBuilder) Build() (*SubstanceInstance, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *SubstanceInstanceBuilder) BuildWith(opts ...fhirmodel.Option) (*SubstanceInstance, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *SubstanceInstanceBuilder) build(o *fhirmodel.Options) (*SubstanceInstance, error) {
	x := &SubstanceInstance{
		BackboneElementBase: datatype.NewBackboneElementBase(b.id, b.extension, b.modifierExtension),
		identifier:          b.identifier,
		expiry:              b.expiry,
		quantity:            b.quantity,
		opts:                o,
	}
	if err := validate.Run("Substance.Instance", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// SubstanceIngredient is a component of the substance.
type SubstanceIngredient struct {
	datatype.BackboneElementBase
	quantity  *datatype.Ratio
	substance datatype.Element
	opts      *fhirmodel.Options
	memo      hashcode.Cell
}

// TypeName returns "Substance.Ingredient".
func (x *SubstanceIngredient) TypeName() string { return "Substance.Ingredient" }

// Quantity returns the quantity, or nil when absent.
func (x *SubstanceIngredient) Quantity() *datatype.Ratio { return x.quantity }

// Substance returns substance[x]: CodeableConcept or Reference.
func (x *SubstanceIngredient) Substance() datatype.Element { return x.substance }

// Accept visits x and then its fields in declaration order.
func (x *SubstanceIngredient) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "quantity", x.quantity)
		visit.Child(v, "substance", x.substance)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *SubstanceIngredient) Equal(other *SubstanceIngredient) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.BackboneElementBase) &&
		x.quantity.Equal(other.quantity) &&
		datatype.EqualElements(x.substance, other.substance)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *SubstanceIngredient) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Substance.Ingredient")
		x.HashBase(h)
		hashcode.Field(h, x.quantity)
		hashcode.Field(h, x.substance)
		return h.Sum64()
	})
}

func (x *SubstanceIngredient) checks() []error {
	return []error{
		x.ValidateBase("Substance.Ingredient"),
		validate.Required("Substance.Ingredient", "substance", x.substance),
		validate.Choice("Substance.Ingredient", "substance", x.substance, "CodeableConcept", "Reference"),
		datatype.CheckReferenceChoice("Substance.Ingredient", "substance", x.substance, "Substance"),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *SubstanceIngredient) ToBuilder() *SubstanceIngredientBuilder {
	return &SubstanceIngredientBuilder{
		id:                x.ID(),
		extension:         x.Extension(),
		modifierExtension: x.ModifierExtension(),
		quantity:          x.quantity,
		substance:         x.substance,
		opts:              x.opts,
	}
}

// SubstanceIngredientBuilder builds SubstanceIngredient values.
type SubstanceIngredientBuilder struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	quantity          *datatype.Ratio
	substance         datatype.Element
	opts              *fhirmodel.Options
}

// NewSubstanceIngredientBuilder returns an empty builder.
func NewSubstanceIngredientBuilder() *SubstanceIngredientBuilder {
	return &SubstanceIngredientBuilder{}
}

// ID sets the id.
func (b *SubstanceIngredientBuilder) ID(v string) *SubstanceIngredientBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *SubstanceIngredientBuilder) Extension(values ...*datatype.Extension) *SubstanceIngredientBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *SubstanceIngredientBuilder) SetExtension(values []*datatype.Extension) *SubstanceIngredientBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *SubstanceIngredientBuilder) ModifierExtension(values ...*datatype.Extension) *SubstanceIngredientBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *SubstanceIngredientBuilder) SetModifierExtension(values []*datatype.Extension) *SubstanceIngredientBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Quantity sets the quantity.
func (b *SubstanceIngredientBuilder) Quantity(v *datatype.Ratio) *SubstanceIngredientBuilder {
	b.quantity = v
	return b
}

// Substance sets substance[x]. A typed nil clears it.
func (b *SubstanceIngredientBuilder) Substance(v datatype.Element) *SubstanceIngredientBuilder {
	b.substance = datatype.OrNil(v)
	return b
}

// Build validates the fields and returns an immutable SubstanceIngredient. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *SubstanceIngredientBuilder) Build() (*SubstanceIngredient, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *SubstanceIngredientBuilder) BuildWith(opts ...fhirmodel.Option) (*SubstanceIngredient, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *SubstanceIngredientBuilder) build(o *fhirmodel.Options) (*SubstanceIngredient, error) {
	x := &SubstanceIngredient{
		BackboneElementBase: datatype.NewBackboneElementBase(b.id, b.extension, b.modifierExtension),
		quantity:            b.quantity,
		substance:           b.substance,
		opts:                o,
	}
	if err := validate.Run("Substance.Ingredient", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
