package resource

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// MedicinalProductAuthorization is the regulatory authorization of a medicinal product.
type MedicinalProductAuthorization struct {
	DomainResourceBase
	identifier                  []*datatype.Identifier
	subject                     *datatype.Reference
	country                     []*datatype.CodeableConcept
	jurisdiction                []*datatype.CodeableConcept
	status                      *datatype.CodeableConcept
	statusDate                  *datatype.DateTime
	restoreDate                 *datatype.DateTime
	validityPeriod              *datatype.Period
	dataExclusivityPeriod       *datatype.Period
	dateOfFirstAuthorization    *datatype.DateTime
	internationalBirthDate      *datatype.DateTime
	legalBasis                  *datatype.CodeableConcept
	jurisdictionalAuthorization []*MedicinalProductAuthorizationJurisdictionalAuthorization
	holder                      *datatype.Reference
	regulator                   *datatype.Reference
	procedure                   *MedicinalProductAuthorizationProcedure
	opts                        *fhirmodel.Options
	memo                        hashcode.Cell
}

// ResourceType returns "MedicinalProductAuthorization".
func (x *MedicinalProductAuthorization) ResourceType() string { return "MedicinalProductAuthorization" }

// TypeName returns "MedicinalProductAuthorization".
func (x *MedicinalProductAuthorization) TypeName() string { return "MedicinalProductAuthorization" }

// Identifier returns a copy of the identifier list.
func (x *MedicinalProductAuthorization) Identifier() []*datatype.Identifier {
	return slices.Clone(x.identifier)
}

// Subject returns the subject reference to MedicinalProduct or MedicinalProductPackaged.
func (x *MedicinalProductAuthorization) Subject() *datatype.Reference { return x.subject }

// Country returns a copy of the country list.
func (x *MedicinalProductAuthorization) Country() []*datatype.CodeableConcept {
	return slices.Clone(x.country)
}

// Jurisdiction returns a copy of the jurisdiction list.
func (x *MedicinalProductAuthorization) Jurisdiction() []*datatype.CodeableConcept {
	return slices.Clone(x.jurisdiction)
}

// Status returns the status, or nil when absent.
func (x *MedicinalProductAuthorization) Status() *datatype.CodeableConcept { return x.status }

// StatusDate returns the status date, or nil when absent.
func (x *MedicinalProductAuthorization) StatusDate() *datatype.DateTime { return x.statusDate }

// RestoreDate returns the restore date, or nil when absent.
func (x *MedicinalProductAuthorization) RestoreDate() *datatype.DateTime { return x.restoreDate }

// ValidityPeriod returns the validity period, or nil when absent.
func (x *MedicinalProductAuthorization) ValidityPeriod() *datatype.Period { return x.validityPeriod }

// DataExclusivityPeriod returns the data exclusivity period, or nil when absent.
func (x *MedicinalProductAuthorization) DataExclusivityPeriod() *datatype.Period {
	return x.dataExclusivityPeriod
}

// DateOfFirstAuthorization returns the date of first authorization, or nil when absent.
func (x *MedicinalProductAuthorization) DateOfFirstAuthorization() *datatype.DateTime {
	return x.dateOfFirstAuthorization
}

// InternationalBirthDate returns the international birth date, or nil when absent.
func (x *MedicinalProductAuthorization) InternationalBirthDate() *datatype.DateTime {
	return x.internationalBirthDate
}

// LegalBasis returns the legal basis, or nil when absent.
func (x *MedicinalProductAuthorization) LegalBasis() *datatype.CodeableConcept { return x.legalBasis }

// JurisdictionalAuthorization returns a copy of the jurisdictional authorization list.
func (x *MedicinalProductAuthorization) JurisdictionalAuthorization() []*MedicinalProductAuthorizationJurisdictionalAuthorization {
	return slices.Clone(x.jurisdictionalAuthorization)
}

// Holder returns the holder reference to Organization.
func (x *MedicinalProductAuthorization) Holder() *datatype.Reference { return x.holder }

// Regulator returns the regulator reference to Organization.
func (x *MedicinalProductAuthorization) Regulator() *datatype.Reference { return x.regulator }

// Procedure returns the procedure, or nil when absent.
func (x *MedicinalProductAuthorization) Procedure() *MedicinalProductAuthorizationProcedure {
	return x.procedure
}

// Accept visits x and then its fields in declaration order.
func (x *MedicinalProductAuthorization) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.List(v, "identifier", x.identifier)
		visit.Child(v, "subject", x.subject)
		visit.List(v, "country", x.country)
		visit.List(v, "jurisdiction", x.jurisdiction)
		visit.Child(v, "status", x.status)
		visit.Child(v, "statusDate", x.statusDate)
		visit.Child(v, "restoreDate", x.restoreDate)
		visit.Child(v, "validityPeriod", x.validityPeriod)
		visit.Child(v, "dataExclusivityPeriod", x.dataExclusivityPeriod)
		visit.Child(v, "dateOfFirstAuthorization", x.dateOfFirstAuthorization)
		visit.Child(v, "internationalBirthDate", x.internationalBirthDate)
		visit.Child(v, "legalBasis", x.legalBasis)
		visit.List(v, "jurisdictionalAuthorization", x.jurisdictionalAuthorization)
		visit.Child(v, "holder", x.holder)
		visit.Child(v, "regulator", x.regulator)
		visit.Child(v, "procedure", x.procedure)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *MedicinalProductAuthorization) Equal(other *MedicinalProductAuthorization) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.DomainResourceBase) &&
		slices.EqualFunc(x.identifier, other.identifier, (*datatype.Identifier).Equal) &&
		x.subject.Equal(other.subject) &&
		slices.EqualFunc(x.country, other.country, (*datatype.CodeableConcept).Equal) &&
		slices.EqualFunc(x.jurisdiction, other.jurisdiction, (*datatype.CodeableConcept).Equal) &&
		x.status.Equal(other.status) &&
		x.statusDate.Equal(other.statusDate) &&
		x.restoreDate.Equal(other.restoreDate) &&
		x.validityPeriod.Equal(other.validityPeriod) &&
		x.dataExclusivityPeriod.Equal(other.dataExclusivityPeriod) &&
		x.dateOfFirstAuthorization.Equal(other.dateOfFirstAuthorization) &&
		x.internationalBirthDate.Equal(other.internationalBirthDate) &&
		x.legalBasis.Equal(other.legalBasis) &&
		slices.EqualFunc(x.jurisdictionalAuthorization, other.jurisdictionalAuthorization, (*MedicinalProductAuthorizationJurisdictionalAuthorization).Equal) &&
		x.holder.Equal(other.holder) &&
		x.regulator.Equal(other.regulator) &&
		x.procedure.Equal(other.procedure)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *MedicinalProductAuthorization) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("MedicinalProductAuthorization")
		x.HashBase(h)
		hashcode.List(h, x.identifier)
		hashcode.Field(h, x.subject)
		hashcode.List(h, x.country)
		hashcode.List(h, x.jurisdiction)
		hashcode.Field(h, x.status)
		hashcode.Field(h, x.statusDate)
		hashcode.Field(h, x.restoreDate)
		hashcode.Field(h, x.validityPeriod)
		hashcode.Field(h, x.dataExclusivityPeriod)
		hashcode.Field(h, x.dateOfFirstAuthorization)
		hashcode.Field(h, x.internationalBirthDate)
		hashcode.Field(h, x.legalBasis)
		hashcode.List(h, x.jurisdictionalAuthorization)
		hashcode.Field(h, x.holder)
		hashcode.Field(h, x.regulator)
		hashcode.Field(h, x.procedure)
		return h.Sum64()
	})
}

func (x *MedicinalProductAuthorization) equalResource(o Resource) bool {
	other, ok := o.(*MedicinalProductAuthorization)
	return ok && x.Equal(other)
}

func (x *MedicinalProductAuthorization) isNil() bool { return x == nil }

func (x *MedicinalProductAuthorization) checks() []error {
	return []error{
		x.ValidateBase("MedicinalProductAuthorization"),
		validate.Elements("MedicinalProductAuthorization", "identifier", x.identifier),
		datatype.CheckReference("MedicinalProductAuthorization", "subject", x.subject, "MedicinalProduct", "MedicinalProductPackaged"),
		validate.Elements("MedicinalProductAuthorization", "country", x.country),
		validate.Elements("MedicinalProductAuthorization", "jurisdiction", x.jurisdiction),
		validate.Elements("MedicinalProductAuthorization", "jurisdictionalAuthorization", x.jurisdictionalAuthorization),
		datatype.CheckReference("MedicinalProductAuthorization", "holder", x.holder, "Organization"),
		datatype.CheckReference("MedicinalProductAuthorization", "regulator", x.regulator, "Organization"),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *MedicinalProductAuthorization) ToBuilder() *MedicinalProductAuthorizationBuilder {
	return &MedicinalProductAuthorizationBuilder{
		id:                          x.ID(),
		meta:                        x.Meta(),
		implicitRules:               x.ImplicitRules(),
		language:                    x.Language(),
		text:                        x.Text(),
		contained:                   x.Contained(),
		extension:                   x.Extension(),
		modifierExtension:           x.ModifierExtension(),
		identifier:                  slices.Clone(x.identifier),
		subject:                     x.subject,
		country:                     slices.Clone(x.country),
		jurisdiction:                slices.Clone(x.jurisdiction),
		status:                      x.status,
		statusDate:                  x.statusDate,
		restoreDate:                 x.restoreDate,
		validityPeriod:              x.validityPeriod,
		dataExclusivityPeriod:       x.dataExclusivityPeriod,
		dateOfFirstAuthorization:    x.dateOfFirstAuthorization,
		internationalBirthDate:      x.internationalBirthDate,
		legalBasis:                  x.legalBasis,
		jurisdictionalAuthorization: slices.Clone(x.jurisdictionalAuthorization),
		holder:                      x.holder,
		regulator:                   x.regulator,
		procedure:                   x.procedure,
		opts:                        x.opts,
	}
}

// MedicinalProductAuthorizationBuilder builds MedicinalProductAuthorization values.
type MedicinalProductAuthorizationBuilder struct {
	id                          string
	meta                        *datatype.Meta
	implicitRules               *datatype.URI
	language                    *datatype.Code
	text                        *datatype.Narrative
	contained                   []Resource
	extension                   []*datatype.Extension
	modifierExtension           []*datatype.Extension
	identifier                  []*datatype.Identifier
	subject                     *datatype.Reference
	country                     []*datatype.CodeableConcept
	jurisdiction                []*datatype.CodeableConcept
	status                      *datatype.CodeableConcept
	statusDate                  *datatype.DateTime
	restoreDate                 *datatype.DateTime
	validityPeriod              *datatype.Period
	dataExclusivityPeriod       *datatype.Period
	dateOfFirstAuthorization    *datatype.DateTime
	internationalBirthDate      *datatype.DateTime
	legalBasis                  *datatype.CodeableConcept
	jurisdictionalAuthorization []*MedicinalProductAuthorizationJurisdictionalAuthorization
	holder                      *datatype.Reference
	regulator                   *datatype.Reference
	procedure                   *MedicinalProductAuthorizationProcedure
	opts                        *fhirmodel.Options
}

// NewMedicinalProductAuthorizationBuilder returns an empty builder.
func NewMedicinalProductAuthorizationBuilder() *MedicinalProductAuthorizationBuilder {
	return &MedicinalProductAuthorizationBuilder{}
}

// ID sets the id.
func (b *MedicinalProductAuthorizationBuilder) ID(v string) *MedicinalProductAuthorizationBuilder {
	b.id = v
	return b
}

// Meta sets the meta.
func (b *MedicinalProductAuthorizationBuilder) Meta(v *datatype.Meta) *MedicinalProductAuthorizationBuilder {
	b.meta = v
	return b
}

// ImplicitRules sets the implicit rules.
func (b *MedicinalProductAuthorizationBuilder) ImplicitRules(v *datatype.URI) *MedicinalProductAuthorizationBuilder {
	b.implicitRules = v
	return b
}

// Language sets the language.
func (b *MedicinalProductAuthorizationBuilder) Language(v *datatype.Code) *MedicinalProductAuthorizationBuilder {
	b.language = v
	return b
}

// Text sets the text.
func (b *MedicinalProductAuthorizationBuilder) Text(v *datatype.Narrative) *MedicinalProductAuthorizationBuilder {
	b.text = v
	return b
}

// Contained appends values to contained.
func (b *MedicinalProductAuthorizationBuilder) Contained(values ...Resource) *MedicinalProductAuthorizationBuilder {
	for _, v := range values {
		b.contained = append(b.contained, orNil(v))
	}
	return b
}

// SetContained replaces contained with a copy of values.
func (b *MedicinalProductAuthorizationBuilder) SetContained(values []Resource) *MedicinalProductAuthorizationBuilder {
	b.contained = nil
	return b.Contained(values...)
}

// Extension appends values to extension.
func (b *MedicinalProductAuthorizationBuilder) Extension(values ...*datatype.Extension) *MedicinalProductAuthorizationBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *MedicinalProductAuthorizationBuilder) SetExtension(values []*datatype.Extension) *MedicinalProductAuthorizationBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *MedicinalProductAuthorizationBuilder) ModifierExtension(values ...*datatype.Extension) *MedicinalProductAuthorizationBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *MedicinalProductAuthorizationBuilder) SetModifierExtension(values []*datatype.Extension) *MedicinalProductAuthorizationBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Identifier appends values to identifier.
func (b *MedicinalProductAuthorizationBuilder) Identifier(values ...*datatype.Identifier) *MedicinalProductAuthorizationBuilder {
	b.identifier = append(b.identifier, values...)
	return b
}

// SetIdentifier replaces identifier with a copy of values.
func (b *MedicinalProductAuthorizationBuilder) SetIdentifier(values []*datatype.Identifier) *MedicinalProductAuthorizationBuilder {
	b.identifier = slices.Clone(values)
	return b
}

// Subject sets the subject.
func (b *MedicinalProductAuthorizationBuilder) Subject(v *datatype.Reference) *MedicinalProductAuthorizationBuilder {
	b.subject = v
	return b
}

// Country appends values to country.
func (b *MedicinalProductAuthorizationBuilder) Country(values ...*datatype.CodeableConcept) *MedicinalProductAuthorizationBuilder {
	b.country = append(b.country, values...)
	return b
}

// SetCountry replaces country with a copy of values.
func (b *MedicinalProductAuthorizationBuilder) SetCountry(values []*datatype.CodeableConcept) *MedicinalProductAuthorizationBuilder {
	b.country = slices.Clone(values)
	return b
}

// Jurisdiction appends values to jurisdiction.
func (b *MedicinalProductAuthorizationBuilder) Jurisdiction(values ...*datatype.CodeableConcept) *MedicinalProductAuthorizationBuilder {
	b.jurisdiction = append(b.jurisdiction, values...)
	return b
}

// SetJurisdiction replaces jurisdiction with a copy of values.
func (b *MedicinalProductAuthorizationBuilder) SetJurisdiction(values []*datatype.CodeableConcept) *MedicinalProductAuthorizationBuilder {
	b.jurisdiction = slices.Clone(values)
	return b
}

// Status sets the status.
func (b *MedicinalProductAuthorizationBuilder) Status(v *datatype.CodeableConcept) *MedicinalProductAuthorizationBuilder {
	b.status = v
	return b
}

// StatusDate sets the status date.
func (b *MedicinalProductAuthorizationBuilder) StatusDate(v *datatype.DateTime) *MedicinalProductAuthorizationBuilder {
	b.statusDate = v
	return b
}

// RestoreDate sets the restore date.
func (b *MedicinalProductAuthorizationBuilder) RestoreDate(v *datatype.DateTime) *MedicinalProductAuthorizationBuilder {
	b.restoreDate = v
	return b
}

// ValidityPeriod sets the validity period.
func (b *MedicinalProductAuthorizationBuilder) ValidityPeriod(v *datatype.Period) *MedicinalProductAuthorizationBuilder {
	b.validityPeriod = v
	return b
}

// DataExclusivityPeriod sets the data exclusivity period.
func (b *MedicinalProductAuthorizationBuilder) DataExclusivityPeriod(v *datatype.Period) *MedicinalProductAuthorizationBuilder {
	b.dataExclusivityPeriod = v
	return b
}

// DateOfFirstAuthorization sets the date of first authorization.
func (b *MedicinalProductAuthorizationBuilder) DateOfFirstAuthorization(v *datatype.DateTime) *MedicinalProductAuthorizationBuilder {
	b.dateOfFirstAuthorization = v
	return b
}

// InternationalBirthDate sets the international birth date.
func (b *MedicinalProductAuthorizationBuilder) InternationalBirthDate(v *datatype.DateTime) *MedicinalProductAuthorizationBuilder {
	b.internationalBirthDate = v
	return b
}

// LegalBasis sets the legal basis.
func (b *MedicinalProductAuthorizationBuilder) LegalBasis(v *datatype.CodeableConcept) *MedicinalProductAuthorizationBuilder {
	b.legalBasis = v
	return b
}

// JurisdictionalAuthorization appends values to jurisdictional authorization.
func (b *MedicinalProductAuthorizationBuilder) JurisdictionalAuthorization(values ...*MedicinalProductAuthorizationJurisdictionalAuthorization) *MedicinalProductAuthorizationBuilder {
	b.jurisdictionalAuthorization = append(b.jurisdictionalAuthorization, values...)
	return b
}

// SetJurisdictionalAuthorization replaces jurisdictional authorization with a copy of values.
func (b *MedicinalProductAuthorizationBuilder) SetJurisdictionalAuthorization(values []*MedicinalProductAuthorizationJurisdictionalAuthorization) *MedicinalProductAuthorizationBuilder {
	b.jurisdictionalAuthorization = slices.Clone(values)
	return b
}

// Holder sets the holder.
func (b *MedicinalProductAuthorizationBuilder) Holder(v *datatype.Reference) *MedicinalProductAuthorizationBuilder {
	b.holder = v
	return b
}

// Regulator sets the regulator.
func (b *MedicinalProductAuthorizationBuilder) Regulator(v *datatype.Reference) *MedicinalProductAuthorizationBuilder {
	b.regulator = v
	return b
}

// Procedure sets the procedure.
func (b *MedicinalProductAuthorizationBuilder) Procedure(v *MedicinalProductAuthorizationProcedure) *MedicinalProductAuthorizationBuilder {
	b.procedure = v
	return b
}

// Build validates the fields and returns an immutable MedicinalProductAuthorization. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *MedicinalProductAuthorizationBuilder) Build() (*MedicinalProductAuthorization, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *MedicinalProductAuthorizationBuilder) BuildWith(opts ...fhirmodel.Option) (*MedicinalProductAuthorization, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *MedicinalProductAuthorizationBuilder) build(o *fhirmodel.Options) (*MedicinalProductAuthorization, error) {
	x := &MedicinalProductAuthorization{
		DomainResourceBase:          newDomainResourceBase(b.id, b.meta, b.implicitRules, b.language, b.text, b.contained, b.extension, b.modifierExtension),
		identifier:                  slices.Clone(b.identifier),
		subject:                     b.subject,
		country:                     slices.Clone(b.country),
		jurisdiction:                slices.Clone(b.jurisdiction),
		status:                      b.status,
		statusDate:                  b.statusDate,
		restoreDate:                 b.restoreDate,
		validityPeriod:              b.validityPeriod,
		dataExclusivityPeriod:       b.dataExclusivityPeriod,
		dateOfFirstAuthorization:    b.dateOfFirstAuthorization,
		internationalBirthDate:      b.internationalBirthDate,
		legalBasis:                  b.legalBasis,
		jurisdictionalAuthorization: slices.Clone(b.jurisdictionalAuthorization),
		holder:                      b.holder,
		regulator:                   b.regulator,
		procedure:                   b.procedure,
		opts:                        o,
	}
	if err := validate.Run("MedicinalProductAuthorization", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// MedicinalProductAuthorizationJurisdictionalAuthorization is an authorization in a specific country or jurisdiction.
type MedicinalProductAuthorizationJurisdictionalAuthorization struct {
	datatype.BackboneElementBase
	identifier          []*datatype.Identifier
	country             *datatype.CodeableConcept
	jurisdiction        []*datatype.CodeableConcept
	legalStatusOfSupply *datatype.CodeableConcept
	validityPeriod      *datatype.Period
	opts                *fhirmodel.Options
	memo                hashcode.Cell
}

// TypeName returns "MedicinalProductAuthorization.JurisdictionalAuthorization".
func (x *MedicinalProductAuthorizationJurisdictionalAuthorization) TypeName() string {
	return "MedicinalProductAuthorization.JurisdictionalAuthorization"
}

// Identifier returns a copy of the identifier list.
func (x *MedicinalProductAuthorizationJurisdictionalAuthorization) Identifier() []*datatype.Identifier {
	return slices.Clone(x.identifier)
}

// Country returns the country, or nil when absent.
func (x *MedicinalProductAuthorizationJurisdictionalAuthorization) Country() *datatype.CodeableConcept {
	return x.country
}

// Jurisdiction returns a copy of the jurisdiction list.
func (x *MedicinalProductAuthorizationJurisdictionalAuthorization) Jurisdiction() []*datatype.CodeableConcept {
	return slices.Clone(x.jurisdiction)
}

// LegalStatusOfSupply returns the legal status of supply, or nil when absent.
func (x *MedicinalProductAuthorizationJurisdictionalAuthorization) LegalStatusOfSupply() *datatype.CodeableConcept {
	return x.legalStatusOfSupply
}

// ValidityPeriod returns the validity period, or nil when absent.
func (x *MedicinalProductAuthorizationJurisdictionalAuthorization) ValidityPeriod() *datatype.Period {
	return x.validityPeriod
}

// Accept visits x and then its fields in declaration order.
func (x *MedicinalProductAuthorizationJurisdictionalAuthorization) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.List(v, "identifier", x.identifier)
		visit.Child(v, "country", x.country)
		visit.List(v, "jurisdiction", x.jurisdiction)
		visit.Child(v, "legalStatusOfSupply", x.legalStatusOfSupply)
		visit.Child(v, "validityPeriod", x.validityPeriod)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *MedicinalProductAuthorizationJurisdictionalAuthorization) Equal(other *MedicinalProductAuthorizationJurisdictionalAuthorization) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.BackboneElementBase) &&
		slices.EqualFunc(x.identifier, other.identifier, (*datatype.Identifier).Equal) &&
		x.country.Equal(other.country) &&
		slices.EqualFunc(x.jurisdiction, other.jurisdiction, (*datatype.CodeableConcept).Equal) &&
		x.legalStatusOfSupply.Equal(other.legalStatusOfSupply) &&
		x.validityPeriod.Equal(other.validityPeriod)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *MedicinalProductAuthorizationJurisdictionalAuthorization) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("MedicinalProductAuthorization.JurisdictionalAuthorization")
		x.HashBase(h)
		hashcode.List(h, x.identifier)
		hashcode.Field(h, x.country)
		hashcode.List(h, x.jurisdiction)
		hashcode.Field(h, x.legalStatusOfSupply)
		hashcode.Field(h, x.validityPeriod)
		return h.Sum64()
	})
}

func (x *MedicinalProductAuthorizationJurisdictionalAuthorization) checks() []error {
	return []error{
		x.ValidateBase("MedicinalProductAuthorization.JurisdictionalAuthorization"),
		validate.Elements("MedicinalProductAuthorization.JurisdictionalAuthorization", "identifier", x.identifier),
		validate.Elements("MedicinalProductAuthorization.JurisdictionalAuthorization", "jurisdiction", x.jurisdiction),
		validate.HasChildren("MedicinalProductAuthorization.JurisdictionalAuthorization", x.HasContentBase() ||
			len(x.identifier) > 0 ||
			x.country != nil ||
			len(x.jurisdiction) > 0 ||
			x.legalStatusOfSupply != nil ||
			x.validityPeriod != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *MedicinalProductAuthorizationJurisdictionalAuthorization) ToBuilder() *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder {
	return &MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder{
		id:                  x.ID(),
		extension:           x.Extension(),
		modifierExtension:   x.ModifierExtension(),
		identifier:          slices.Clone(x.identifier),
		country:             x.country,
		jurisdiction:        slices.Clone(x.jurisdiction),
		legalStatusOfSupply: x.legalStatusOfSupply,
		validityPeriod:      x.validityPeriod,
		opts:                x.opts,
	}
}

// MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder builds MedicinalProductAuthorizationJurisdictionalAuthorization values.
type MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder struct {
	id                  string
	extension           []*datatype.Extension
	modifierExtension   []*datatype.Extension
	identifier          []*datatype.Identifier
	country             *datatype.CodeableConcept
	jurisdiction        []*datatype.CodeableConcept
	legalStatusOfSupply *datatype.CodeableConcept
	validityPeriod      *datatype.Period
	opts                *fhirmodel.Options
}

// NewMedicinalProductAuthorizationJurisdictionalAuthorizationBuilder returns an empty builder.
func NewMedicinalProductAuthorizationJurisdictionalAuthorizationBuilder() *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder {
	return &MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder{}
}

// ID sets the id.
func (b *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder) ID(v string) *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder) Extension(values ...*datatype.Extension) *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder) SetExtension(values []*datatype.Extension) *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder) ModifierExtension(values ...*datatype.Extension) *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder) SetModifierExtension(values []*datatype.Extension) *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Identifier appends values to identifier.
func (b *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder) Identifier(values ...*datatype.Identifier) *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder {
	b.identifier = append(b.identifier, values...)
	return b
}

// SetIdentifier replaces identifier with a copy of values.
func (b *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder) SetIdentifier(values []*datatype.Identifier) *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder {
	b.identifier = slices.Clone(values)
	return b
}

// Country sets the country.
func (b *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder) Country(v *datatype.CodeableConcept) *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder {
	b.country = v
	return b
}

// Jurisdiction appends values to jurisdiction.
func (b *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder) Jurisdiction(values ...*datatype.CodeableConcept) *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder {
	b.jurisdiction = append(b.jurisdiction, values...)
	return b
}

// SetJurisdiction replaces jurisdiction with a copy of values.
func (b *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder) SetJurisdiction(values []*datatype.CodeableConcept) *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder {
	b.jurisdiction = slices.Clone(values)
	return b
}

// LegalStatusOfSupply sets the legal status of supply.
func (b *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder) LegalStatusOfSupply(v *datatype.CodeableConcept) *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder {
	b.legalStatusOfSupply = v
	return b
}

// ValidityPeriod sets the validity period.
func (b *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder) ValidityPeriod(v *datatype.Period) *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder {
	b.validityPeriod = v
	return b
}

// Build validates the fields and returns an immutable MedicinalProductAuthorizationJurisdictionalAuthorization. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder) Build() (*MedicinalProductAuthorizationJurisdictionalAuthorization, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder) BuildWith(opts ...fhirmodel.Option) (*MedicinalProductAuthorizationJurisdictionalAuthorization, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder) build(o *fhirmodel.Options) (*MedicinalProductAuthorizationJurisdictionalAuthorization, error) {
	x := &MedicinalProductAuthorizationJurisdictionalAuthorization{
		BackboneElementBase: datatype.NewBackboneElementBase(b.id, b.extension, b.modifierExtension),
		identifier:          slices.Clone(b.identifier),
		country:             b.country,
		jurisdiction:        slices.Clone(b.jurisdiction),
		legalStatusOfSupply: b.legalStatusOfSupply,
		validityPeriod:      b.validityPeriod,
		opts:                o,
	}
	if err := validate.Run("MedicinalProductAuthorization.JurisdictionalAuthorization", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// MedicinalProductAuthorizationProcedure is the regulatory procedure for granting or amending the authorization.
type MedicinalProductAuthorizationProcedure struct {
	datatype.BackboneElementBase
	identifier  *datatype.Identifier
	typ         *datatype.CodeableConcept
	date        datatype.Element
	application []*MedicinalProductAuthorizationProcedure
	opts        *fhirmodel.Options
	memo        hashcode.Cell
}

// TypeName returns "MedicinalProductAuthorization.Procedure".
func (x *MedicinalProductAuthorizationProcedure) TypeName() string {
	return "MedicinalProductAuthorization.Procedure"
}

// Identifier returns the identifier, or nil when absent.
func (x *MedicinalProductAuthorizationProcedure) Identifier() *datatype.Identifier {
	return x.identifier
}

// Type returns the type. It is never nil on a built value.
func (x *MedicinalProductAuthorizationProcedure) Type() *datatype.CodeableConcept { return x.typ }

// Date returns date[x]: Period or dateTime.
func (x *MedicinalProductAuthorizationProcedure) Date() datatype.Element { return x.date }

// Application returns a copy of the application list.
func (x *MedicinalProductAuthorizationProcedure) Application() []*MedicinalProductAuthorizationProcedure {
	return slices.Clone(x.application)
}

// Accept visits x and then its fields in declaration order.
func (x *MedicinalProductAuthorizationProcedure) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "identifier", x.identifier)
		visit.Child(v, "type", x.typ)
		visit.Child(v, "date", x.date)
		visit.List(v, "application", x.application)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *MedicinalProductAuthorizationProcedure) Equal(other *MedicinalProductAuthorizationProcedure) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.BackboneElementBase) &&
		x.identifier.Equal(other.identifier) &&
		x.typ.Equal(other.typ) &&
		datatype.EqualElements(x.date, other.date) &&
		slices.EqualFunc(x.application, other.application, (*MedicinalProductAuthorizationProcedure).Equal)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *MedicinalProductAuthorizationProcedure) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("MedicinalProductAuthorization.Procedure")
		x.HashBase(h)
		hashcode.Field(h, x.identifier)
		hashcode.Field(h, x.typ)
		hashcode.Field(h, x.date)
		hashcode.List(h, x.application)
		return h.Sum64()
	})
}

func (x *MedicinalProductAuthorizationProcedure) checks() []error {
	return []error{
		x.ValidateBase("MedicinalProductAuthorization.Procedure"),
		validate.Required("MedicinalProductAuthorization.Procedure", "type", x.typ),
		validate.Choice("MedicinalProductAuthorization.Procedure", "date", x.date, "Period", "dateTime"),
		validate.Elements("MedicinalProductAuthorization.Procedure", "application", x.application),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *MedicinalProductAuthorizationProcedure) ToBuilder() *MedicinalProductAuthorizationProcedureBuilder {
	return &MedicinalProductAuthorizationProcedureBuilder{
		id:                x.ID(),
		extension:         x.Extension(),
		modifierExtension: x.ModifierExtension(),
		identifier:        x.identifier,
		typ:               x.typ,
		date:              x.date,
		application:       slices.Clone(x.application),
		opts:              x.opts,
	}
}

// MedicinalProductAuthorizationProcedureBuilder builds MedicinalProductAuthorizationProcedure values.
type MedicinalProductAuthorizationProcedureBuilder struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	identifier        *datatype.Identifier
	typ               *datatype.CodeableConcept
	date              datatype.Element
	application       []*MedicinalProductAuthorizationProcedure
	opts              *fhirmodel.Options
}

// NewMedicinalProductAuthorizationProcedureBuilder returns an empty builder.
func NewMedicinalProductAuthorizationProcedureBuilder() *MedicinalProductAuthorizationProcedureBuilder {
	return &MedicinalProductAuthorizationProcedureBuilder{}
}

// ID sets the id.
func (b *MedicinalProductAuthorizationProcedureBuilder) ID(v string) *MedicinalProductAuthorizationProcedureBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *MedicinalProductAuthorizationProcedureBuilder) Extension(values ...*datatype.Extension) *MedicinalProductAuthorizationProcedureBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *MedicinalProductAuthorizationProcedureBuilder) SetExtension(values []*datatype.Extension) *MedicinalProductAuthorizationProcedureBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *MedicinalProductAuthorizationProcedureBuilder) ModifierExtension(values ...*datatype.Extension) *MedicinalProductAuthorizationProcedureBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *MedicinalProductAuthorizationProcedureBuilder) SetModifierExtension(values []*datatype.Extension) *MedicinalProductAuthorizationProcedureBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Identifier sets the identifier.
func (b *MedicinalProductAuthorizationProcedureBuilder) Identifier(v *datatype.Identifier) *MedicinalProductAuthorizationProcedureBuilder {
	b.identifier = v
	return b
}

// Type sets the type.
func (b *MedicinalProductAuthorizationProcedureBuilder) Type(v *datatype.CodeableConcept) *MedicinalProductAuthorizationProcedureBuilder {
	b.typ = v
	return b
}

// Date sets date[x]. A typed nil clears it.
func (b *MedicinalProductAuthorizationProcedureBuilder) Date(v datatype.Element) *MedicinalProductAuthorizationProcedureBuilder {
	b.date = datatype.OrNil(v)
	return b
}

// Application appends values to application.
func (b *MedicinalProductAuthorizationProcedureBuilder) Application(values ...*MedicinalProductAuthorizationProcedure) *MedicinalProductAuthorizationProcedureBuilder {
	b.application = append(b.application, values...)
	return b
}

// SetApplication replaces application with a copy of values.
func (b *MedicinalProductAuthorizationProcedureBuilder) SetApplication(values []*MedicinalProductAuthorizationProcedure) *MedicinalProductAuthorizationProcedureBuilder {
	b.application = slices.Clone(values)
	return b
}

// Build validates the fields and returns an immutable MedicinalProductAuthorizationProcedure. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *MedicinalProductAuthorizationProcedureBuilder) Build() (*MedicinalProductAuthorizationProcedure, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *MedicinalProductAuthorizationProcedureBuilder) BuildWith(opts ...fhirmodel.Option) (*MedicinalProductAuthorizationProcedure, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *MedicinalProductAuthorizationProcedureBuilder) build(o *fhirmodel.Options) (*MedicinalProductAuthorizationProcedure, error) {
	x := &MedicinalProductAuthorizationProcedure{
		BackboneElementBase: datatype.NewBackboneElementBase(b.id, b.extension, b.modifierExtension),
		identifier:          b.identifier,
		typ:                 b.typ,
		date:                b.date,
		application:         slices.Clone(b.application),
		opts:                o,
	}
	if err := validate.Run("MedicinalProductAuthorization.Procedure", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
