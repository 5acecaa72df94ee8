package resource

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Coverage is the insurance or payment plan that may pay for health care products and services.
type Coverage struct {
	DomainResourceBase
	identifier        []*datatype.Identifier
	status            *datatype.Code
	typ               *datatype.CodeableConcept
	policyHolder      *datatype.Reference
	subscriber        *datatype.Reference
	subscriberID      *datatype.String
	beneficiary       *datatype.Reference
	dependent         *datatype.String
	relationship      *datatype.CodeableConcept
	period            *datatype.Period
	payor             []*datatype.Reference
	class             []*CoverageClass
	order             *datatype.PositiveInt
	network           *datatype.String
	costToBeneficiary []*CoverageCostToBeneficiary
	subrogation       *datatype.Boolean
	contract          []*datatype.Reference
	opts              *fhirmodel.Options
	memo              hashcode.Cell
}

// ResourceType returns "Coverage".
func (x *Coverage) ResourceType() string { return "Coverage" }

// TypeName returns "Coverage".
func (x *Coverage) TypeName() string { return "Coverage" }

// Identifier returns a copy of the identifier list.
func (x *Coverage) Identifier() []*datatype.Identifier { return slices.Clone(x.identifier) }

// Status returns the status code, drawn from FinancialResourceStatusCodes.
func (x *Coverage) Status() *datatype.Code { return x.status }

// Type returns the type, or nil when absent.
func (x *Coverage) Type() *datatype.CodeableConcept { return x.typ }

// PolicyHolder returns the policy holder reference to Patient, RelatedPerson or Organization.
func (x *Coverage) PolicyHolder() *datatype.Reference { return x.policyHolder }

// Subscriber returns the subscriber reference to Patient or RelatedPerson.
func (x *Coverage) Subscriber() *datatype.Reference { return x.subscriber }

// SubscriberID returns the subscriber id, or nil when absent.
func (x *Coverage) SubscriberID() *datatype.String { return x.subscriberID }

// Beneficiary returns the beneficiary reference to Patient.
func (x *Coverage) Beneficiary() *datatype.Reference { return x.beneficiary }

// Dependent returns the dependent, or nil when absent.
func (x *Coverage) Dependent() *datatype.String { return x.dependent }

// Relationship returns the relationship, or nil when absent.
func (x *Coverage) Relationship() *datatype.CodeableConcept { return x.relationship }

// Period returns the period, or nil when absent.
func (x *Coverage) Period() *datatype.Period { return x.period }

// Payor returns a copy of the payor references to Organization, Patient or RelatedPerson.
func (x *Coverage) Payor() []*datatype.Reference { return slices.Clone(x.payor) }

// Class returns a copy of the class list.
func (x *Coverage) Class() []*CoverageClass { return slices.Clone(x.class) }

// Order returns the order, or nil when absent.
func (x *Coverage) Order() *datatype.PositiveInt { return x.order }

// Network returns the network, or nil when absent.
func (x *Coverage) Network() *datatype.String { return x.network }

// CostToBeneficiary returns a copy of the cost to beneficiary list.
func (x *Coverage) CostToBeneficiary() []*CoverageCostToBeneficiary {
	return slices.Clone(x.costToBeneficiary)
}

// Subrogation returns the subrogation, or nil when absent.
func (x *Coverage) Subrogation() *datatype.Boolean { return x.subrogation }

// Contract returns a copy of the contract references to Contract.
func (x *Coverage) Contract() []*datatype.Reference { return slices.Clone(x.contract) }

// Accept visits x and then its fields in declaration order.
func (x *Coverage) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.List(v, "identifier", x.identifier)
		visit.Child(v, "status", x.status)
		visit.Child(v, "type", x.typ)
		visit.Child(v, "policyHolder", x.policyHolder)
		visit.Child(v, "subscriber", x.subscriber)
		visit.Child(v, "subscriberId", x.subscriberID)
		visit.Child(v, "beneficiary", x.beneficiary)
		visit.Child(v, "dependent", x.dependent)
		visit.Child(v, "relationship", x.relationship)
		visit.Child(v, "period", x.period)
		visit.List(v, "payor", x.payor)
		visit.List(v, "class", x.class)
		visit.Child(v, "order", x.order)
		visit.Child(v, "network", x.network)
		visit.List(v, "costToBeneficiary", x.costToBeneficiary)
		visit.Child(v, "subrogation", x.subrogation)
		visit.List(v, "contract", x.contract)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Coverage) Equal(other *Coverage) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.DomainResourceBase) &&
		slices.EqualFunc(x.identifier, other.identifier, (*datatype.Identifier).Equal) &&
		x.status.Equal(other.status) &&
		x.typ.Equal(other.typ) &&
		x.policyHolder.Equal(other.policyHolder) &&
		x.subscriber.Equal(other.subscriber) &&
		x.subscriberID.Equal(other.subscriberID) &&
		x.beneficiary.Equal(other.beneficiary) &&
		x.dependent.Equal(other.dependent) &&
		x.relationship.Equal(other.relationship) &&
		x.period.Equal(other.period) &&
		slices.EqualFunc(x.payor, other.payor, (*datatype.Reference).Equal) &&
		slices.EqualFunc(x.class, other.class, (*CoverageClass).Equal) &&
		x.order.Equal(other.order) &&
		x.network.Equal(other.network) &&
		slices.EqualFunc(x.costToBeneficiary, other.costToBeneficiary, (*CoverageCostToBeneficiary).Equal) &&
		x.subrogation.Equal(other.subrogation) &&
		slices.EqualFunc(x.contract, other.contract, (*datatype.Reference).Equal)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Coverage) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Coverage")
		x.HashBase(h)
		hashcode.List(h, x.identifier)
		hashcode.Field(h, x.status)
		hashcode.Field(h, x.typ)
		hashcode.Field(h, x.policyHolder)
		hashcode.Field(h, x.subscriber)
		hashcode.Field(h, x.subscriberID)
		hashcode.Field(h, x.beneficiary)
		hashcode.Field(h, x.dependent)
		hashcode.Field(h, x.relationship)
		hashcode.Field(h, x.period)
		hashcode.List(h, x.payor)
		hashcode.List(h, x.class)
		hashcode.Field(h, x.order)
		hashcode.Field(h, x.network)
		hashcode.List(h, x.costToBeneficiary)
		hashcode.Field(h, x.subrogation)
		hashcode.List(h, x.contract)
		return h.Sum64()
	})
}

func (x *Coverage) equalResource(o Resource) bool {
	other, ok := o.(*Coverage)
	return ok && x.Equal(other)
}

func (x *Coverage) isNil() bool { return x == nil }

func (x *Coverage) checks() []error {
	return []error{
		x.ValidateBase("Coverage"),
		validate.Elements("Coverage", "identifier", x.identifier),
		validate.Required("Coverage", "status", x.status),
		datatype.CheckCode("Coverage", "status", x.status, FinancialResourceStatusValues),
		datatype.CheckReference("Coverage", "policyHolder", x.policyHolder, "Patient", "RelatedPerson", "Organization"),
		datatype.CheckReference("Coverage", "subscriber", x.subscriber, "Patient", "RelatedPerson"),
		validate.Required("Coverage", "beneficiary", x.beneficiary),
		datatype.CheckReference("Coverage", "beneficiary", x.beneficiary, "Patient"),
		validate.NotEmpty("Coverage", "payor", x.payor),
		validate.Elements("Coverage", "payor", x.payor),
		datatype.CheckReferences("Coverage", "payor", x.payor, "Organization", "Patient", "RelatedPerson"),
		validate.Elements("Coverage", "class", x.class),
		validate.Elements("Coverage", "costToBeneficiary", x.costToBeneficiary),
		validate.Elements("Coverage", "contract", x.contract),
		datatype.CheckReferences("Coverage", "contract", x.contract, "Contract"),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Coverage) ToBuilder() *CoverageBuilder {
	return &CoverageBuilder{
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
		typ:               x.typ,
		policyHolder:      x.policyHolder,
		subscriber:        x.subscriber,
		subscriberID:      x.subscriberID,
		beneficiary:       x.beneficiary,
		dependent:         x.dependent,
		relationship:      x.relationship,
		period:            x.period,
		payor:             slices.Clone(x.payor),
		class:             slices.Clone(x.class),
		order:             x.order,
		network:           x.network,
		costToBeneficiary: slices.Clone(x.costToBeneficiary),
		subrogation:       x.subrogation,
		contract:          slices.Clone(x.contract),
		opts:              x.opts,
	}
}

// CoverageBuilder builds Coverage values.
type CoverageBuilder struct {
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
	typ               *datatype.CodeableConcept
	policyHolder      *datatype.Reference
	subscriber        *datatype.Reference
	subscriberID      *datatype.String
	beneficiary       *datatype.Reference
	dependent         *datatype.String
	relationship      *datatype.CodeableConcept
	period            *datatype.Period
	payor             []*datatype.Reference
	class             []*CoverageClass
	order             *datatype.PositiveInt
	network           *datatype.String
	costToBeneficiary []*CoverageCostToBeneficiary
	subrogation       *datatype.Boolean
	contract          []*datatype.Reference
	opts              *fhirmodel.Options
}

// NewCoverageBuilder returns an empty builder.
func NewCoverageBuilder() *CoverageBuilder {
	return &CoverageBuilder{}
}

// ID sets the id.
func (b *CoverageBuilder) ID(v string) *CoverageBuilder {
	b.id = v
	return b
}

// Meta sets the meta.
func (b *CoverageBuilder) Meta(v *datatype.Meta) *CoverageBuilder {
	b.meta = v
	return b
}

// ImplicitRules sets the implicit rules.
func (b *CoverageBuilder) ImplicitRules(v *datatype.URI) *CoverageBuilder {
	b.implicitRules = v
	return b
}

// Language sets the language.
func (b *CoverageBuilder) Language(v *datatype.Code) *CoverageBuilder {
	b.language = v
	return b
}

// Text sets the text.
func (b *CoverageBuilder) Text(v *datatype.Narrative) *CoverageBuilder {
	b.text = v
	return b
}

// Contained appends values to contained.
func (b *CoverageBuilder) Contained(values ...Resource) *CoverageBuilder {
	for _, v := range values {
		b.contained = append(b.contained, orNil(v))
	}
	return b
}

// SetContained replaces contained with a copy of values.
func (b *CoverageBuilder) SetContained(values []Resource) *CoverageBuilder {
	b.contained = nil
	return b.Contained(values...)
}

// Extension appends values to extension.
func (b *CoverageBuilder) Extension(values ...*datatype.Extension) *CoverageBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *CoverageBuilder) SetExtension(values []*datatype.Extension) *CoverageBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *CoverageBuilder) ModifierExtension(values ...*datatype.Extension) *CoverageBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *CoverageBuilder) SetModifierExtension(values []*datatype.Extension) *CoverageBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Identifier appends values to identifier.
func (b *CoverageBuilder) Identifier(values ...*datatype.Identifier) *CoverageBuilder {
	b.identifier = append(b.identifier, values...)
	return b
}

// SetIdentifier replaces identifier with a copy of values.
func (b *CoverageBuilder) SetIdentifier(values []*datatype.Identifier) *CoverageBuilder {
	b.identifier = slices.Clone(values)
	return b
}

// Status sets the status.
func (b *CoverageBuilder) Status(v *datatype.Code) *CoverageBuilder {
	b.status = v
	return b
}

// Type sets the type.
func (b *CoverageBuilder) Type(v *datatype.CodeableConcept) *CoverageBuilder {
	b.typ = v
	return b
}

// PolicyHolder sets the policy holder.
func (b *CoverageBuilder) PolicyHolder(v *datatype.Reference) *CoverageBuilder {
	b.policyHolder = v
	return b
}

// Subscriber sets the subscriber.
func (b *CoverageBuilder) Subscriber(v *datatype.Reference) *CoverageBuilder {
	b.subscriber = v
	return b
}

// SubscriberID sets the subscriber id.
func (b *CoverageBuilder) SubscriberID(v *datatype.String) *CoverageBuilder {
	b.subscriberID = v
	return b
}

// Beneficiary sets the beneficiary.
func (b *CoverageBuilder) Beneficiary(v *datatype.Reference) *CoverageBuilder {
	b.beneficiary = v
	return b
}

// Dependent sets the dependent.
func (b *CoverageBuilder) Dependent(v *datatype.String) *CoverageBuilder {
	b.dependent = v
	return b
}

// Relationship sets the relationship.
func (b *CoverageBuilder) Relationship(v *datatype.CodeableConcept) *CoverageBuilder {
	b.relationship = v
	return b
}

// Period sets the period.
func (b *CoverageBuilder) Period(v *datatype.Period) *CoverageBuilder {
	b.period = v
	return b
}

// Payor appends values to payor.
func (b *CoverageBuilder) Payor(values ...*datatype.Reference) *CoverageBuilder {
	b.payor = append(b.payor, values...)
	return b
}

// SetPayor replaces payor with a copy of values.
func (b *CoverageBuilder) SetPayor(values []*datatype.Reference) *CoverageBuilder {
	b.payor = slices.Clone(values)
	return b
}

// Class appends values to class.
func (b *CoverageBuilder) Class(values ...*CoverageClass) *CoverageBuilder {
	b.class = append(b.class, values...)
	return b
}

// SetClass replaces class with a copy of values.
func (b *CoverageBuilder) SetClass(values []*CoverageClass) *CoverageBuilder {
	b.class = slices.Clone(values)
	return b
}

// Order sets the order.
func (b *CoverageBuilder) Order(v *datatype.PositiveInt) *CoverageBuilder {
	b.order = v
	return b
}

// Network sets the network.
func (b *CoverageBuilder) Network(v *datatype.String) *CoverageBuilder {
	b.network = v
	return b
}

// CostToBeneficiary appends values to cost to beneficiary.
func (b *CoverageBuilder) CostToBeneficiary(values ...*CoverageCostToBeneficiary) *CoverageBuilder {
	b.costToBeneficiary = append(b.costToBeneficiary, values...)
	return b
}

// SetCostToBeneficiary replaces cost to beneficiary with a copy of values.
func (b *CoverageBuilder) SetCostToBeneficiary(values []*CoverageCostToBeneficiary) *CoverageBuilder {
	b.costToBeneficiary = slices.Clone(values)
	return b
}

// Subrogation sets the subrogation.
func (b *CoverageBuilder) Subrogation(v *datatype.Boolean) *CoverageBuilder {
	b.subrogation = v
	return b
}

// Contract appends values to contract.
func (b *CoverageBuilder) Contract(values ...*datatype.Reference) *CoverageBuilder {
	b.contract = append(b.contract, values...)
	return b
}

// SetContract replaces contract with a copy of values.
func (b *CoverageBuilder) SetContract(values []*datatype.Reference) *CoverageBuilder {
	b.contract = slices.Clone(values)
	return b
}

// Build validates the fields and returns an immutable Coverage. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *CoverageBuilder) Build() (*Coverage, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *CoverageBuilder) BuildWith(opts ...fhirmodel.Option) (*Coverage, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *CoverageBuilder) build(o *fhirmodel.Options) (*Coverage, error) {
	x := &Coverage{
		DomainResourceBase: newDomainResourceBase(b.id, b.meta, b.implicitRules, b.language, b.text, b.contained, b.extension, b.modifierExtension),
		identifier:         slices.Clone(b.identifier),
		status:             b.status,
		typ:                b.typ,
		policyHolder:       b.policyHolder,
		subscriber:         b.subscriber,
		subscriberID:       b.subscriberID,
		beneficiary:        b.beneficiary,
		dependent:          b.dependent,
		relationship:       b.relationship,
		period:             b.period,
		payor:              slices.Clone(b.payor),
		class:              slices.Clone(b.class),
		order:              b.order,
		network:            b.network,
		costToBeneficiary:  slices.Clone(b.costToBeneficiary),
		subrogation:        b.subrogation,
		contract:           slices.Clone(b.contract),
		opts:               o,
	}
	if err := validate.Run("Coverage", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// CoverageClass is an additional classification of the coverage, such as a group or plan.
type CoverageClass struct {
	datatype.BackboneElementBase
	typ   *datatype.CodeableConcept
	value *datatype.String
	name  *datatype.String
	opts  *fhirmodel.Options
	memo  hashcode.Cell
}

// TypeName returns "Coverage.Class".
func (x *CoverageClass) TypeName() string { return "Coverage.Class" }

// Type returns the type. It is never nil on a built value.
func (x *CoverageClass) Type() *datatype.CodeableConcept { return x.typ }

// Value returns the value. It is never nil on a built value.
func (x *CoverageClass) Value() *datatype.String { return x.value }

// Name returns the name, or nil when absent.
func (x *CoverageClass) Name() *datatype.String { return x.name }

// Accept visits x and then its fields in declaration order.
func (x *CoverageClass) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "type", x.typ)
		visit.Child(v, "value", x.value)
		visit.Child(v, "name", x.name)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *CoverageClass) Equal(other *CoverageClass) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.BackboneElementBase) &&
		x.typ.Equal(other.typ) &&
		x.value.Equal(other.value) &&
		x.name.Equal(other.name)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *CoverageClass) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Coverage.Class")
		x.HashBase(h)
		hashcode.Field(h, x.typ)
		hashcode.Field(h, x.value)
		hashcode.Field(h, x.name)
		return h.Sum64()
	})
}

func (x *CoverageClass) checks() []error {
	return []error{
		x.ValidateBase("Coverage.Class"),
		validate.Required("Coverage.Class", "type", x.typ),
		validate.Required("Coverage.Class", "value", x.value),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *CoverageClass) ToBuilder() *CoverageClassBuilder {
	return &CoverageClassBuilder{
		id:                x.ID(),
		extension:         x.Extension(),
		modifierExtension: x.ModifierExtension(),
		typ:               x.typ,
		value:             x.value,
		name:              x.name,
		opts:              x.opts,
	}
}

// CoverageClassBuilder builds CoverageClass values.
type CoverageClassBuilder struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.CodeableConcept
	value             *datatype.String
	name              *datatype.String
	opts              *fhirmodel.Options
}

// NewCoverageClassBuilder returns an empty builder.
func NewCoverageClassBuilder() *CoverageClassBuilder {
	return &CoverageClassBuilder{}
}

// ID sets the id.
func (b *CoverageClassBuilder) ID(v string) *CoverageClassBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *CoverageClassBuilder) Extension(values ...*datatype.Extension) *CoverageClassBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *CoverageClassBuilder) SetExtension(values []*datatype.Extension) *CoverageClassBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *CoverageClassBuilder) ModifierExtension(values ...*datatype.Extension) *CoverageClassBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *CoverageClassBuilder) SetModifierExtension(values []*datatype.Extension) *CoverageClassBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Type sets the type.
func (b *CoverageClassBuilder) Type(v *datatype.CodeableConcept) *CoverageClassBuilder {
	b.typ = v
	return b
}

// Value sets the value.
func (b *CoverageClassBuilder) Value(v *datatype.String) *CoverageClassBuilder {
	b.value = v
	return b
}

// Name sets the name.
func (b *CoverageClassBuilder) Name(v *datatype.String) *CoverageClassBuilder {
	b.name = v
	return b
}

// Build validates the fields and returns an immutable CoverageClass. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *CoverageClassBuilder) Build() (*CoverageClass, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *CoverageClassBuilder) BuildWith(opts ...fhirmodel.Option) (*CoverageClass, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *CoverageClassBuilder) build(o *fhirmodel.Options) (*CoverageClass, error) {
	x := &CoverageClass{
		BackboneElementBase: datatype.NewBackboneElementBase(b.id, b.extension, b.modifierExtension),
		typ:                 b.typ,
		value:               b.value,
		name:                b.name,
		opts:                o,
	}
	if err := validate.Run("Coverage.Class", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// CoverageCostToBeneficiary is a patient payment category and its amount.
type CoverageCostToBeneficiary struct {
	datatype.BackboneElementBase
	typ       *datatype.CodeableConcept
	value     datatype.Element
	exception []*CoverageCostToBeneficiaryException
	opts      *fhirmodel.Options
	memo      hashcode.Cell
}

// TypeName returns "Coverage.CostToBeneficiary".
func (x *CoverageCostToBeneficiary) TypeName() string { return "Coverage.CostToBeneficiary" }

// Type returns the type, or nil when absent.
func (x *CoverageCostToBeneficiary) Type() *datatype.CodeableConcept { return x.typ }

// Value returns value[x]: SimpleQuantity or Money.
func (x *CoverageCostToBeneficiary) Value() datatype.Element { return x.value }

// Exception returns a copy of the exception list.
func (x *CoverageCostToBeneficiary) Exception() []*CoverageCostToBeneficiaryException {
	return slices.Clone(x.exception)
}

// Accept visits x and then its fields in declaration order.
func (x *CoverageCostToBeneficiary) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "type", x.typ)
		visit.Child(v, "value", x.value)
		visit.List(v, "exception", x.exception)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *CoverageCostToBeneficiary) Equal(other *CoverageCostToBeneficiary) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.BackboneElementBase) &&
		x.typ.Equal(other.typ) &&
		datatype.EqualElements(x.value, other.value) &&
		slices.EqualFunc(x.exception, other.exception, (*CoverageCostToBeneficiaryException).Equal)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *CoverageCostToBeneficiary) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Coverage.CostToBeneficiary")
		x.HashBase(h)
		hashcode.Field(h, x.typ)
		hashcode.Field(h, x.value)
		hashcode.List(h, x.exception)
		return h.Sum64()
	})
}

func (x *CoverageCostToBeneficiary) checks() []error {
	return []error{
		x.ValidateBase("Coverage.CostToBeneficiary"),
		validate.Required("Coverage.CostToBeneficiary", "value", x.value),
		validate.Choice("Coverage.CostToBeneficiary", "value", x.value, "SimpleQuantity", "Money"),
		validate.Elements("Coverage.CostToBeneficiary", "exception", x.exception),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *CoverageCostToBeneficiary) ToBuilder() *CoverageCostToBeneficiaryBuilder {
	return &CoverageCostToBeneficiaryBuilder{
		id:                x.ID(),
		extension:         x.Extension(),
		modifierExtension: x.ModifierExtension(),
		typ:               x.typ,
		value:             x.value,
		exception:         slices.Clone(x.exception),
		opts:              x.opts,
	}
}

// CoverageCostToBeneficiaryBuilder builds CoverageCostToBeneficiary values.
type CoverageCostToBeneficiaryBuilder struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.CodeableConcept
	value             datatype.Element
	exception         []*CoverageCostToBeneficiaryException
	opts              *fhirmodel.Options
}

// NewCoverageCostToBeneficiaryBuilder returns an empty builder.
func NewCoverageCostToBeneficiaryBuilder() *CoverageCostToBeneficiaryBuilder {
	return &CoverageCostToBeneficiaryBuilder{}
}

// ID sets the id.
func (b *CoverageCostToBeneficiaryBuilder) ID(v string) *CoverageCostToBeneficiaryBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *CoverageCostToBeneficiaryBuilder) Extension(values ...*datatype.Extension) *CoverageCostToBeneficiaryBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *CoverageCostToBeneficiaryBuilder) SetExtension(values []*datatype.Extension) *CoverageCostToBeneficiaryBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *CoverageCostToBeneficiaryBuilder) ModifierExtension(values ...*datatype.Extension) *CoverageCostToBeneficiaryBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *CoverageCostToBeneficiaryBuilder) SetModifierExtension(values []*datatype.Extension) *CoverageCostToBeneficiaryBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Type sets the type.
func (b *CoverageCostToBeneficiaryBuilder) Type(v *datatype.CodeableConcept) *CoverageCostToBeneficiaryBuilder {
	b.typ = v
	return b
}

// Value sets value[x]. A typed nil clears it.
func (b *CoverageCostToBeneficiaryBuilder) Value(v datatype.Element) *CoverageCostToBeneficiaryBuilder {
	b.value = datatype.OrNil(v)
	return b
}

// Exception appends values to exception.
func (b *CoverageCostToBeneficiaryBuilder) Exception(values ...*CoverageCostToBeneficiaryException) *CoverageCostToBeneficiaryBuilder {
	b.exception = append(b.exception, values...)
	return b
}

// SetException replaces exception with a copy of values.
func (b *CoverageCostToBeneficiaryBuilder) SetException(values []*CoverageCostToBeneficiaryException) *CoverageCostToBeneficiaryBuilder {
	b.exception = slices.Clone(values)
	return b
}

// Build validates the fields and returns an immutable CoverageCostToBeneficiary. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *CoverageCostToBeneficiaryBuilder) Build() (*CoverageCostToBeneficiary, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *CoverageCostToBeneficiaryBuilder) BuildWith(opts ...fhirmodel.Option) (*CoverageCostToBeneficiary, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *CoverageCostToBeneficiaryBuilder) build(o *fhirmodel.Options) (*CoverageCostToBeneficiary, error) {
	x := &CoverageCostToBeneficiary{
		BackboneElementBase: datatype.NewBackboneElementBase(b.id, b.extension, b.modifierExtension),
		typ:                 b.typ,
		value:               b.value,
		exception:           slices.Clone(b.exception),
		opts:                o,
	}
	if err := validate.Run("Coverage.CostToBeneficiary", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// CoverageCostToBeneficiaryException waives the patient cost.
type CoverageCostToBeneficiaryException struct {
	datatype.BackboneElementBase
	typ    *datatype.CodeableConcept
	period *datatype.Period
	opts   *fhirmodel.Options
	memo   hashcode.Cell
}

// TypeName returns "Coverage.CostToBeneficiary.Exception".
func (x *CoverageCostToBeneficiaryException) TypeName() string {
	return "Coverage.CostToBeneficiary.Exception"
}

// Type returns the type. It is never nil on a built value.
func (x *CoverageCostToBeneficiaryException) Type() *datatype.CodeableConcept { return x.typ }

// Period returns the period, or nil when absent.
func (x *CoverageCostToBeneficiaryException) Period() *datatype.Period { return x.period }

// Accept visits x and then its fields in declaration order.
func (x *CoverageCostToBeneficiaryException) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "type", x.typ)
		visit.Child(v, "period", x.period)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *CoverageCostToBeneficiaryException) Equal(other *CoverageCostToBeneficiaryException) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.BackboneElementBase) &&
		x.typ.Equal(other.typ) &&
		x.period.Equal(other.period)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *CoverageCostToBeneficiaryException) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Coverage.CostToBeneficiary.Exception")
		x.HashBase(h)
		hashcode.Field(h, x.typ)
		hashcode.Field(h, x.period)
		return h.Sum64()
	})
}

func (x *CoverageCostToBeneficiaryException) checks() []error {
	return []error{
		x.ValidateBase("Coverage.CostToBeneficiary.Exception"),
		validate.Required("Coverage.CostToBeneficiary.Exception", "type", x.typ),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *CoverageCostToBeneficiaryException) ToBuilder() *CoverageCostToBeneficiaryExceptionBuilder {
	return &CoverageCostToBeneficiaryExceptionBuilder{
		id:                x.ID(),
		extension:         x.Extension(),
		modifierExtension: x.ModifierExtension(),
		typ:               x.typ,
		period:            x.period,
		opts:              x.opts,
	}
}

// CoverageCostToBeneficiaryExceptionBuilder builds CoverageCostToBeneficiaryException values.
type CoverageCostToBeneficiaryExceptionBuilder struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.CodeableConcept
	period            *datatype.Period
	opts              *fhirmodel.Options
}

// NewCoverageCostToBeneficiaryExceptionBuilder returns an empty builder.
func NewCoverageCostToBeneficiaryExceptionBuilder() *CoverageCostToBeneficiaryExceptionBuilder {
	return &CoverageCostToBeneficiaryExceptionBuilder{}
}

// ID sets the id.
func (b *CoverageCostToBeneficiaryExceptionBuilder) ID(v string) *CoverageCostToBeneficiaryExceptionBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *CoverageCostToBeneficiaryExceptionBuilder) Extension(values ...*datatype.Extension) *CoverageCostToBeneficiaryExceptionBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *CoverageCostToBeneficiaryExceptionBuilder) SetExtension(values []*datatype.Extension) *CoverageCostToBeneficiaryExceptionBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *CoverageCostToBeneficiaryExceptionBuilder) ModifierExtension(values ...*datatype.Extension) *CoverageCostToBeneficiaryExceptionBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *CoverageCostToBeneficiaryExceptionBuilder) SetModifierExtension(values []*datatype.Extension) *CoverageCostToBeneficiaryExceptionBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Type sets the type.
func (b *CoverageCostToBeneficiaryExceptionBuilder) Type(v *datatype.CodeableConcept) *CoverageCostToBeneficiaryExceptionBuilder {
	b.typ = v
	return b
}

// Period sets the period.
func (b *CoverageCostToBeneficiaryExceptionBuilder) Period(v *datatype.Period) *CoverageCostToBeneficiaryExceptionBuilder {
	b.period = v
	return b
}

// Build validates the fields and returns an immutable CoverageCostToBeneficiaryException. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *CoverageCostToBeneficiaryExceptionBuilder) Build() (*CoverageCostToBeneficiaryException, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *CoverageCostToBeneficiaryExceptionBuilder) BuildWith(opts ...fhirmodel.Option) (*CoverageCostToBeneficiaryException, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *CoverageCostToBeneficiaryExceptionBuilder) build(o *fhirmodel.Options) (*CoverageCostToBeneficiaryException, error) {
	x := &CoverageCostToBeneficiaryException{
		BackboneElementBase: datatype.NewBackboneElementBase(b.id, b.extension, b.modifierExtension),
		typ:                 b.typ,
		period:              b.period,
		opts:                o,
	}
	if err := validate.Run("Coverage.CostToBeneficiary.Exception", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
