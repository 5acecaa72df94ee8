package resource

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// ImmunizationRecommendation is a patient's immunization forecast.
type ImmunizationRecommendation struct {
	DomainResourceBase
	identifier     []*datatype.Identifier
	patient        *datatype.Reference
	date           *datatype.DateTime
	authority      *datatype.Reference
	recommendation []*ImmunizationRecommendationRecommendation
	opts           *fhirmodel.Options
	memo           hashcode.Cell
}

// ResourceType returns "ImmunizationRecommendation".
func (x *ImmunizationRecommendation) ResourceType() string { return "ImmunizationRecommendation" }

// TypeName returns "ImmunizationRecommendation".
func (x *ImmunizationRecommendation) TypeName() string { return "ImmunizationRecommendation" }

// Identifier returns a copy of the identifier list.
func (x *ImmunizationRecommendation) Identifier() []*datatype.Identifier {
	return slices.Clone(x.identifier)
}

// Patient returns the patient reference to Patient.
func (x *ImmunizationRecommendation) Patient() *datatype.Reference { return x.patient }

// Date returns the date. It is never nil on a built value.
func (x *ImmunizationRecommendation) Date() *datatype.DateTime { return x.date }

// Authority returns the authority reference to Organization.
func (x *ImmunizationRecommendation) Authority() *datatype.Reference { return x.authority }

// Recommendation returns a copy of the recommendation list.
func (x *ImmunizationRecommendation) Recommendation() []*ImmunizationRecommendationRecommendation {
	return slices.Clone(x.recommendation)
}

// Accept visits x and then its fields in declaration order.
func (x *ImmunizationRecommendation) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.List(v, "identifier", x.identifier)
		visit.Child(v, "patient", x.patient)
		visit.Child(v, "date", x.date)
		visit.Child(v, "authority", x.authority)
		visit.List(v, "recommendation", x.recommendation)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *ImmunizationRecommendation) Equal(other *ImmunizationRecommendation) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.DomainResourceBase) &&
		slices.EqualFunc(x.identifier, other.identifier, (*datatype.Identifier).Equal) &&
		x.patient.Equal(other.patient) &&
		x.date.Equal(other.date) &&
		x.authority.Equal(other.authority) &&
		slices.EqualFunc(x.recommendation, other.recommendation, (*ImmunizationRecommendationRecommendation).Equal)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *ImmunizationRecommendation) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("ImmunizationRecommendation")
		x.HashBase(h)
		hashcode.List(h, x.identifier)
		hashcode.Field(h, x.patient)
		hashcode.Field(h, x.date)
		hashcode.Field(h, x.authority)
		hashcode.List(h, x.recommendation)
		return h.Sum64()
	})
}

func (x *ImmunizationRecommendation) equalResource(o Resource) bool {
	other, ok := o.(*ImmunizationRecommendation)
	return ok && x.Equal(other)
}

func (x *ImmunizationRecommendation) isNil() bool { return x == nil }

func (x *ImmunizationRecommendation) checks() []error {
	return []error{
		x.ValidateBase("ImmunizationRecommendation"),
		validate.Elements("ImmunizationRecommendation", "identifier", x.identifier),
		validate.Required("ImmunizationRecommendation", "patient", x.patient),
		datatype.CheckReference("ImmunizationRecommendation", "patient", x.patient, "Patient"),
		validate.Required("ImmunizationRecommendation", "date", x.date),
		datatype.CheckReference("ImmunizationRecommendation", "authority", x.authority, "Organization"),
		validate.NotEmpty("ImmunizationRecommendation", "recommendation", x.recommendation),
		validate.Elements("ImmunizationRecommendation", "recommendation", x.recommendation),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *ImmunizationRecommendation) ToBuilder() *ImmunizationRecommendationBuilder {
	return &ImmunizationRecommendationBuilder{
		id:                x.ID(),
		meta:              x.Meta(),
		implicitRules:     x.ImplicitRules(),
		language:          x.Language(),
		text:              x.Text(),
		contained:         x.Contained(),
		extension:         x.Extension(),
		modifierExtension: x.ModifierExtension(),
		identifier:        slices.Clone(x.identifier),
		patient:           x.patient,
		date:              x.date,
		authority:         x.authority,
		recommendation:    slices.Clone(x.recommendation),
		opts:              x.opts,
	}
}

// ImmunizationRecommendationBuilder builds ImmunizationRecommendation values.
type ImmunizationRecommendationBuilder struct {
	id                string
	meta              *datatype.Meta
	implicitRules     *datatype.URI
	language          *datatype.Code
	text              *datatype.Narrative
	contained         []Resource
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	identifier        []*datatype.Identifier
	patient           *datatype.Reference
	date              *datatype.DateTime
	authority         *datatype.Reference
	recommendation    []*ImmunizationRecommendationRecommendation
	opts              *fhirmodel.Options
}

// NewImmunizationRecommendationBuilder returns an empty builder.
func NewImmunizationRecommendationBuilder() *ImmunizationRecommendationBuilder {
	return &ImmunizationRecommendationBuilder{}
}

// ID sets the id.
func (b *ImmunizationRecommendationBuilder) ID(v string) *ImmunizationRecommendationBuilder {
	b.id = v
	return b
}

// Meta sets the meta.
func (b *ImmunizationRecommendationBuilder) Meta(v *datatype.Meta) *ImmunizationRecommendationBuilder {
	b.meta = v
	return b
}

// ImplicitRules sets the implicit rules.
func (b *ImmunizationRecommendationBuilder) ImplicitRules(v *datatype.URI) *ImmunizationRecommendationBuilder {
	b.implicitRules = v
	return b
}

// Language sets the language.
func (b *ImmunizationRecommendationBuilder) Language(v *datatype.Code) *ImmunizationRecommendationBuilder {
	b.language = v
	return b
}

// Text sets the text.
func (b *ImmunizationRecommendationBuilder) Text(v *datatype.Narrative) *ImmunizationRecommendationBuilder {
	b.text = v
	return b
}

// Contained appends values to contained.
func (b *ImmunizationRecommendationBuilder) Contained(values ...Resource) *ImmunizationRecommendationBuilder {
	for _, v := range values {
		b.contained = append(b.contained, orNil(v))
	}
	return b
}

// SetContained replaces contained with a copy of values.
func (b *ImmunizationRecommendationBuilder) SetContained(values []Resource) *ImmunizationRecommendationBuilder {
	b.contained = nil
	return b.Contained(values...)
}

// Extension appends values to extension.
func (b *ImmunizationRecommendationBuilder) Extension(values ...*datatype.Extension) *ImmunizationRecommendationBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *ImmunizationRecommendationBuilder) SetExtension(values []*datatype.Extension) *ImmunizationRecommendationBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *ImmunizationRecommendationBuilder) ModifierExtension(values ...*datatype.Extension) *ImmunizationRecommendationBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *ImmunizationRecommendationBuilder) SetModifierExtension(values []*datatype.Extension) *ImmunizationRecommendationBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Identifier appends values to identifier.
func (b *ImmunizationRecommendationBuilder) Identifier(values ...*datatype.Identifier) *ImmunizationRecommendationBuilder {
	b.identifier = append(b.identifier, values...)
	return b
}

// SetIdentifier replaces identifier with a copy of values.
func (b *ImmunizationRecommendationBuilder) SetIdentifier(values []*datatype.Identifier) *ImmunizationRecommendationBuilder {
	b.identifier = slices.Clone(values)
	return b
}

// Patient sets the patient.
func (b *ImmunizationRecommendationBuilder) Patient(v *datatype.Reference) *ImmunizationRecommendationBuilder {
	b.patient = v
	return b
}

// Date sets the date.
func (b *ImmunizationRecommendationBuilder) Date(v *datatype.DateTime) *ImmunizationRecommendationBuilder {
	b.date = v
	return b
}

// Authority sets the authority.
func (b *ImmunizationRecommendationBuilder) Authority(v *datatype.Reference) *ImmunizationRecommendationBuilder {
	b.authority = v
	return b
}

// Recommendation appends values to recommendation.
func (b *ImmunizationRecommendationBuilder) Recommendation(values ...*ImmunizationRecommendationRecommendation) *ImmunizationRecommendationBuilder {
	b.recommendation = append(b.recommendation, values...)
	return b
}

// SetRecommendation replaces recommendation with a copy of values.
func (b *ImmunizationRecommendationBuilder) SetRecommendation(values []*ImmunizationRecommendationRecommendation) *ImmunizationRecommendationBuilder {
	b.recommendation = slices.Clone(values)
	return b
}

// Build validates the fields and returns an immutable ImmunizationRecommendation. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *ImmunizationRecommendationBuilder) Build() (*ImmunizationRecommendation, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *ImmunizationRecommendationBuilder) BuildWith(opts ...fhirmodel.Option) (*ImmunizationRecommendation, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *ImmunizationRecommendationBuilder) build(o *fhirmodel.Options) (*ImmunizationRecommendation, error) {
	x := &ImmunizationRecommendation{
		DomainResourceBase: newDomainResourceBase(b.id, b.meta, b.implicitRules, b.language, b.text, b.contained, b.extension, b.modifierExtension),
		identifier:         slices.Clone(b.identifier),
		patient:            b.patient,
		date:               b.date,
		authority:          b.authority,
		recommendation:     slices.Clone(b.recommendation),
		opts:               o,
	}
	if err := validate.Run("ImmunizationRecommendation", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// ImmunizationRecommendationRecommendation is a vaccine administration recommendation.
type ImmunizationRecommendationRecommendation struct {
	datatype.BackboneElementBase
	vaccineCode                  []*datatype.CodeableConcept
	targetDisease                *datatype.CodeableConcept
	contraindicatedVaccineCode   []*datatype.CodeableConcept
	forecastStatus               *datatype.CodeableConcept
	forecastReason               []*datatype.CodeableConcept
	dateCriterion                []*ImmunizationRecommendationRecommendationDateCriterion
	description                  *datatype.String
	series                       *datatype.String
	doseNumber                   datatype.Element
	seriesDoses                  datatype.Element
	supportingImmunization       []*datatype.Reference
	supportingPatientInformation []*datatype.Reference
	opts                         *fhirmodel.Options
	memo                         hashcode.Cell
}

// TypeName returns "ImmunizationRecommendation.Recommendation".
func (x *ImmunizationRecommendationRecommendation) TypeName() string {
	return "ImmunizationRecommendation.Recommendation"
}

// VaccineCode returns a copy of the vaccine code list.
func (x *ImmunizationRecommendationRecommendation) VaccineCode() []*datatype.CodeableConcept {
	return slices.Clone(x.vaccineCode)
}

// TargetDisease returns the target disease, or nil when absent.
func (x *ImmunizationRecommendationRecommendation) TargetDisease() *datatype.CodeableConcept {
	return x.targetDisease
}

// ContraindicatedVaccineCode returns a copy of the contraindicated vaccine code list.
func (x *ImmunizationRecommendationRecommendation) ContraindicatedVaccineCode() []*datatype.CodeableConcept {
	return slices.Clone(x.contraindicatedVaccineCode)
}

// ForecastStatus returns the forecast status. It is never nil on a built value.
func (x *ImmunizationRecommendationRecommendation) ForecastStatus() *datatype.CodeableConcept {
	return x.forecastStatus
}

// ForecastReason returns a copy of the forecast reason list.
func (x *ImmunizationRecommendationRecommendation) ForecastReason() []*datatype.CodeableConcept {
	return slices.Clone(x.forecastReason)
}

// DateCriterion returns a copy of the date criterion list.
func (x *ImmunizationRecommendationRecommendation) DateCriterion() []*ImmunizationRecommendationRecommendationDateCriterion {
	return slices.Clone(x.dateCriterion)
}

// Description returns the description, or nil when absent.
func (x *ImmunizationRecommendationRecommendation) Description() *datatype.String {
	return x.description
}

// Series returns the series, or nil when absent.
func (x *ImmunizationRecommendationRecommendation) Series() *datatype.String { return x.series }

// DoseNumber returns doseNumber[x]: positiveInt or string.
func (x *ImmunizationRecommendationRecommendation) DoseNumber() datatype.Element { return x.doseNumber }

// SeriesDoses returns seriesDoses[x]: positiveInt or string.
func (x *ImmunizationRecommendationRecommendation) SeriesDoses() datatype.Element {
	return x.seriesDoses
}

// SupportingImmunization returns a copy of the supporting immunization references to Immunization or ImmunizationEvaluation.
func (x *ImmunizationRecommendationRecommendation) SupportingImmunization() []*datatype.Reference {
	return slices.Clone(x.supportingImmunization)
}

// SupportingPatientInformation returns a copy of the supporting patient information list.
func (x *ImmunizationRecommendationRecommendation) SupportingPatientInformation() []*datatype.Reference {
	return slices.Clone(x.supportingPatientInformation)
}

// Accept visits x and then its fields in declaration order.
func (x *ImmunizationRecommendationRecommendation) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.List(v, "vaccineCode", x.vaccineCode)
		visit.Child(v, "targetDisease", x.targetDisease)
		visit.List(v, "contraindicatedVaccineCode", x.contraindicatedVaccineCode)
		visit.Child(v, "forecastStatus", x.forecastStatus)
		visit.List(v, "forecastReason", x.forecastReason)
		visit.List(v, "dateCriterion", x.dateCriterion)
		visit.Child(v, "description", x.description)
		visit.Child(v, "series", x.series)
		visit.Child(v, "doseNumber", x.doseNumber)
		visit.Child(v, "seriesDoses", x.seriesDoses)
		visit.List(v, "supportingImmunization", x.supportingImmunization)
		visit.List(v, "supportingPatientInformation", x.supportingPatientInformation)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *ImmunizationRecommendationRecommendation) Equal(other *ImmunizationRecommendationRecommendation) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.BackboneElementBase) &&
		slices.EqualFunc(x.vaccineCode, other.vaccineCode, (*datatype.CodeableConcept).Equal) &&
		x.targetDisease.Equal(other.targetDisease) &&
		slices.EqualFunc(x.contraindicatedVaccineCode, other.contraindicatedVaccineCode, (*datatype.CodeableConcept).Equal) &&
		x.forecastStatus.Equal(other.forecastStatus) &&
		slices.EqualFunc(x.forecastReason, other.forecastReason, (*datatype.CodeableConcept).Equal) &&
		slices.EqualFunc(x.dateCriterion, other.dateCriterion, (*ImmunizationRecommendationRecommendationDateCriterion).Equal) &&
		x.description.Equal(other.description) &&
		x.series.Equal(other.series) &&
		datatype.EqualElements(x.doseNumber, other.doseNumber) &&
		datatype.EqualElements(x.seriesDoses, other.seriesDoses) &&
		slices.EqualFunc(x.supportingImmunization, other.supportingImmunization, (*datatype.Reference).Equal) &&
		slices.EqualFunc(x.supportingPatientInformation, other.supportingPatientInformation, (*datatype.Reference).Equal)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *ImmunizationRecommendationRecommendation) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("ImmunizationRecommendation.Recommendation")
		x.HashBase(h)
		hashcode.List(h, x.vaccineCode)
		hashcode.Field(h, x.targetDisease)
		hashcode.List(h, x.contraindicatedVaccineCode)
		hashcode.Field(h, x.forecastStatus)
		hashcode.List(h, x.forecastReason)
		hashcode.List(h, x.dateCriterion)
		hashcode.Field(h, x.description)
		hashcode.Field(h, x.series)
		hashcode.Field(h, x.doseNumber)
		hashcode.Field(h, x.seriesDoses)
		hashcode.List(h, x.supportingImmunization)
		hashcode.List(h, x.supportingPatientInformation)
		return h.Sum64()
	})
}

func (x *ImmunizationRecommendationRecommendation) checks() []error {
	return []error{
		x.ValidateBase("ImmunizationRecommendation.Recommendation"),
		validate.Elements("ImmunizationRecommendation.Recommendation", "vaccineCode", x.vaccineCode),
		validate.Elements("ImmunizationRecommendation.Recommendation", "contraindicatedVaccineCode", x.contraindicatedVaccineCode),
		validate.Required("ImmunizationRecommendation.Recommendation", "forecastStatus", x.forecastStatus),
		validate.Elements("ImmunizationRecommendation.Recommendation", "forecastReason", x.forecastReason),
		validate.Elements("ImmunizationRecommendation.Recommendation", "dateCriterion", x.dateCriterion),
		validate.Choice("ImmunizationRecommendation.Recommendation", "doseNumber", x.doseNumber, "positiveInt", "string"),
		validate.Choice("ImmunizationRecommendation.Recommendation", "seriesDoses", x.seriesDoses, "positiveInt", "string"),
		validate.Elements("ImmunizationRecommendation.Recommendation", "supportingImmunization", x.supportingImmunization),
		datatype.CheckReferences("ImmunizationRecommendation.Recommendation", "supportingImmunization", x.supportingImmunization, "Immunization", "ImmunizationEvaluation"),
		validate.Elements("ImmunizationRecommendation.Recommendation", "supportingPatientInformation", x.supportingPatientInformation),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *ImmunizationRecommendationRecommendation) ToBuilder() *ImmunizationRecommendationRecommendationBuilder {
	return &ImmunizationRecommendationRecommendationBuilder{
		id:                           x.ID(),
		extension:                    x.Extension(),
		modifierExtension:            x.ModifierExtension(),
		vaccineCode:                  slices.Clone(x.vaccineCode),
		targetDisease:                x.targetDisease,
		contraindicatedVaccineCode:   slices.Clone(x.contraindicatedVaccineCode),
		forecastStatus:               x.forecastStatus,
		forecastReason:               slices.Clone(x.forecastReason),
		dateCriterion:                slices.Clone(x.dateCriterion),
		description:                  x.description,
		series:                       x.series,
		doseNumber:                   x.doseNumber,
		seriesDoses:                  x.seriesDoses,
		supportingImmunization:       slices.Clone(x.supportingImmunization),
		supportingPatientInformation: slices.Clone(x.supportingPatientInformation),
		opts:                         x.opts,
	}
}

// ImmunizationRecommendationRecommendationBuilder builds ImmunizationRecommendationRecommendation values.
type ImmunizationRecommendationRecommendationBuilder struct {
	id                           string
	extension                    []*datatype.Extension
	modifierExtension            []*datatype.Extension
	vaccineCode                  []*datatype.CodeableConcept
	targetDisease                *datatype.CodeableConcept
	contraindicatedVaccineCode   []*datatype.CodeableConcept
	forecastStatus               *datatype.CodeableConcept
	forecastReason               []*datatype.CodeableConcept
	dateCriterion                []*ImmunizationRecommendationRecommendationDateCriterion
	description                  *datatype.String
	series                       *datatype.String
	doseNumber                   datatype.Element
	seriesDoses                  datatype.Element
	supportingImmunization       []*datatype.Reference
	supportingPatientInformation []*datatype.Reference
	opts                         *fhirmodel.Options
}

// NewImmunizationRecommendationRecommendationBuilder returns an empty builder.
func NewImmunizationRecommendationRecommendationBuilder() *ImmunizationRecommendationRecommendationBuilder {
	return &ImmunizationRecommendationRecommendationBuilder{}
}

// ID sets the id.
func (b *ImmunizationRecommendationRecommendationBuilder) ID(v string) *ImmunizationRecommendationRecommendationBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *ImmunizationRecommendationRecommendationBuilder) Extension(values ...*datatype.Extension) *ImmunizationRecommendationRecommendationBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *ImmunizationRecommendationRecommendationBuilder) SetExtension(values []*datatype.Extension) *ImmunizationRecommendationRecommendationBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *ImmunizationRecommendationRecommendationBuilder) ModifierExtension(values ...*datatype.Extension) *ImmunizationRecommendationRecommendationBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *ImmunizationRecommendationRecommendationBuilder) SetModifierExtension(values []*datatype.Extension) *ImmunizationRecommendationRecommendationBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// VaccineCode appends values to vaccine code.
func (b *ImmunizationRecommendationRecommendationBuilder) VaccineCode(values ...*datatype.CodeableConcept) *ImmunizationRecommendationRecommendationBuilder {
	b.vaccineCode = append(b.vaccineCode, values...)
	return b
}

// SetVaccineCode replaces vaccine code with a copy of values.
func (b *ImmunizationRecommendationRecommendationBuilder) SetVaccineCode(values []*datatype.CodeableConcept) *ImmunizationRecommendationRecommendationBuilder {
	b.vaccineCode = slices.Clone(values)
	return b
}

// TargetDisease sets the target disease.
func (b *ImmunizationRecommendationRecommendationBuilder) TargetDisease(v *datatype.CodeableConcept) *ImmunizationRecommendationRecommendationBuilder {
	b.targetDisease = v
	return b
}

// ContraindicatedVaccineCode appends values to contraindicated vaccine code.
func (b *ImmunizationRecommendationRecommendationBuilder) ContraindicatedVaccineCode(values ...*datatype.CodeableConcept) *ImmunizationRecommendationRecommendationBuilder {
	b.contraindicatedVaccineCode = append(b.contraindicatedVaccineCode, values...)
	return b
}

// SetContraindicatedVaccineCode replaces contraindicated vaccine code with a copy of values.
func (b *ImmunizationRecommendationRecommendationBuilder) SetContraindicatedVaccineCode(values []*datatype.CodeableConcept) *ImmunizationRecommendationRecommendationBuilder {
	b.contraindicatedVaccineCode = slices.Clone(values)
	return b
}

// ForecastStatus sets the forecast status.
func (b *ImmunizationRecommendationRecommendationBuilder) ForecastStatus(v *datatype.CodeableConcept) *ImmunizationRecommendationRecommendationBuilder {
	b.forecastStatus = v
	return b
}

// ForecastReason appends values to forecast reason.
func (b *ImmunizationRecommendationRecommendationBuilder) ForecastReason(values ...*datatype.CodeableConcept) *ImmunizationRecommendationRecommendationBuilder {
	b.forecastReason = append(b.forecastReason, values...)
	return b
}

// SetForecastReason replaces forecast reason with a copy of values.
func (b *ImmunizationRecommendationRecommendationBuilder) SetForecastReason(values []*datatype.CodeableConcept) *ImmunizationRecommendationRecommendationBuilder {
	b.forecastReason = slices.Clone(values)
	return b
}

// DateCriterion appends values to date criterion.
func (b *ImmunizationRecommendationRecommendationBuilder) DateCriterion(values ...*ImmunizationRecommendationRecommendationDateCriterion) *ImmunizationRecommendationRecommendationBuilder {
	b.dateCriterion = append(b.dateCriterion, values...)
	return b
}

// SetDateCriterion replaces date criterion with a copy of values.
func (b *ImmunizationRecommendationRecommendationBuilder) SetDateCriterion(values []*ImmunizationRecommendationRecommendationDateCriterion) *ImmunizationRecommendationRecommendationBuilder {
	b.dateCriterion = slices.Clone(values)
	return b
}

// Description sets the description.
func (b *ImmunizationRecommendationRecommendationBuilder) Description(v *datatype.String) *ImmunizationRecommendationRecommendationBuilder {
	b.description = v
	return b
}

// Series sets the series.
func (b *ImmunizationRecommendationRecommendationBuilder) Series(v *datatype.String) *ImmunizationRecommendationRecommendationBuilder {
	b.series = v
	return b
}

// DoseNumber sets doseNumber[x]. A typed nil clears it.
func (b *ImmunizationRecommendationRecommendationBuilder) DoseNumber(v datatype.Element) *ImmunizationRecommendationRecommendationBuilder {
	b.doseNumber = datatype.OrNil(v)
	return b
}

// SeriesDoses sets seriesDoses[x]. A typed nil clears it.
func (b *ImmunizationRecommendationRecommendationBuilder) SeriesDoses(v datatype.Element) *ImmunizationRecommendationRecommendationBuilder {
	b.seriesDoses = datatype.OrNil(v)
	return b
}

// SupportingImmunization appends values to supporting immunization.
func (b *ImmunizationRecommendationRecommendationBuilder) SupportingImmunization(values ...*datatype.Reference) *ImmunizationRecommendationRecommendationBuilder {
	b.supportingImmunization = append(b.supportingImmunization, values...)
	return b
}

// SetSupportingImmunization replaces supporting immunization with a copy of values.
func (b *ImmunizationRecommendationRecommendationBuilder) SetSupportingImmunization(values []*datatype.Reference) *ImmunizationRecommendationRecommendationBuilder {
	b.supportingImmunization = slices.Clone(values)
	return b
}

// SupportingPatientInformation appends values to supporting patient information.
func (b *ImmunizationRecommendationRecommendationBuilder) SupportingPatientInformation(values ...*datatype.Reference) *ImmunizationRecommendationRecommendationBuilder {
	b.supportingPatientInformation = append(b.supportingPatientInformation, values...)
	return b
}

// SetSupportingPatientInformation replaces supporting patient information with a copy of values.
func (b *ImmunizationRecommendationRecommendationBuilder) SetSupportingPatientInformation(values []*datatype.Reference) *ImmunizationRecommendationRecommendationBuilder {
	b.supportingPatientInformation = slices.Clone(values)
	return b
}

// Build validates the fields and returns an immutable ImmunizationRecommendationRecommendation. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *ImmunizationRecommendationRecommendationBuilder) Build() (*ImmunizationRecommendationRecommendation, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *ImmunizationRecommendationRecommendationBuilder) BuildWith(opts ...fhirmodel.Option) (*ImmunizationRecommendationRecommendation, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *ImmunizationRecommendationRecommendationBuilder) build(o *fhirmodel.Options) (*ImmunizationRecommendationRecommendation, error) {
	x := &ImmunizationRecommendationRecommendation{
		BackboneElementBase:          datatype.NewBackboneElementBase(b.id, b.extension, b.modifierExtension),
		vaccineCode:                  slices.Clone(b.vaccineCode),
		targetDisease:                b.targetDisease,
		contraindicatedVaccineCode:   slices.Clone(b.contraindicatedVaccineCode),
		forecastStatus:               b.forecastStatus,
		forecastReason:               slices.Clone(b.forecastReason),
		dateCriterion:                slices.Clone(b.dateCriterion),
		description:                  b.description,
		series:                       b.series,
		doseNumber:                   b.doseNumber,
		seriesDoses:                  b.seriesDoses,
		supportingImmunization:       slices.Clone(b.supportingImmunization),
		supportingPatientInformation: slices.Clone(b.supportingPatientInformation),
		opts:                         o,
	}
	if err := validate.Run("ImmunizationRecommendation.Recommendation", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// ImmunizationRecommendationRecommendationDateCriterion is a date relevant to the recommendation.
type ImmunizationRecommendationRecommendationDateCriterion struct {
	datatype.BackboneElementBase
	code  *datatype.CodeableConcept
	value *datatype.DateTime
	opts  *fhirmodel.Options
	memo  hashcode.Cell
}

// TypeName returns "ImmunizationRecommendation.Recommendation.DateCriterion".
func (x *ImmunizationRecommendationRecommendationDateCriterion) TypeName() string {
	return "ImmunizationRecommendation.Recommendation.DateCriterion"
}

// Code returns the code. It is never nil on a built value.
func (x *ImmunizationRecommendationRecommendationDateCriterion) Code() *datatype.CodeableConcept {
	return x.code
}

// Value returns the value. It is never nil on a built value.
func (x *ImmunizationRecommendationRecommendationDateCriterion) Value() *datatype.DateTime {
	return x.value
}

// Accept visits x and then its fields in declaration order.
func (x *ImmunizationRecommendationRecommendationDateCriterion) Accept(name string, index int, v visit.Visitor) {
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
func (x *ImmunizationRecommendationRecommendationDateCriterion) Equal(other *ImmunizationRecommendationRecommendationDateCriterion) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.BackboneElementBase) &&
		x.code.Equal(other.code) &&
		x.value.Equal(other.value)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *ImmunizationRecommendationRecommendationDateCriterion) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("ImmunizationRecommendation.Recommendation.DateCriterion")
		x.HashBase(h)
		hashcode.Field(h, x.code)
		hashcode.Field(h, x.value)
		return h.Sum64()
	})
}

func (x *ImmunizationRecommendationRecommendationDateCriterion) checks() []error {
	return []error{
		x.ValidateBase("ImmunizationRecommendation.Recommendation.DateCriterion"),
		validate.Required("ImmunizationRecommendation.Recommendation.DateCriterion", "code", x.code),
		validate.Required("ImmunizationRecommendation.Recommendation.DateCriterion", "value", x.value),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *ImmunizationRecommendationRecommendationDateCriterion) ToBuilder() *ImmunizationRecommendationRecommendationDateCriterionBuilder {
	return &ImmunizationRecommendationRecommendationDateCriterionBuilder{
		id:                x.ID(),
		extension:         x.Extension(),
		modifierExtension: x.ModifierExtension(),
		code:              x.code,
		value:             x.value,
		opts:              x.opts,
	}
}

// ImmunizationRecommendationRecommendationDateCriterionBuilder builds ImmunizationRecommendationRecommendationDateCriterion values.
type ImmunizationRecommendationRecommendationDateCriterionBuilder struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	code              *datatype.CodeableConcept
	value             *datatype.DateTime
	opts              *fhirmodel.Options
}

// NewImmunizationRecommendationRecommendationDateCriterionBuilder returns an empty builder.
func NewImmunizationRecommendationRecommendationDateCriterionBuilder() *ImmunizationRecommendationRecommendationDateCriterionBuilder {
	return &ImmunizationRecommendationRecommendationDateCriterionBuilder{}
}

// ID sets the id.
func (b *ImmunizationRecommendationRecommendationDateCriterionBuilder) ID(v string) *ImmunizationRecommendationRecommendationDateCriterionBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *ImmunizationRecommendationRecommendationDateCriterionBuilder) Extension(values ...*datatype.Extension) *ImmunizationRecommendationRecommendationDateCriterionBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *ImmunizationRecommendationRecommendationDateCriterionBuilder) SetExtension(values []*datatype.Extension) *ImmunizationRecommendationRecommendationDateCriterionBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *ImmunizationRecommendationRecommendationDateCriterionBuilder) ModifierExtension(values ...*datatype.Extension) *ImmunizationRecommendationRecommendationDateCriterionBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *ImmunizationRecommendationRecommendationDateCriterionBuilder) SetModifierExtension(values []*datatype.Extension) *ImmunizationRecommendationRecommendationDateCriterionBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Code sets the code.
func (b *ImmunizationRecommendationRecommendationDateCriterionBuilder) Code(v *datatype.CodeableConcept) *ImmunizationRecommendationRecommendationDateCriterionBuilder {
	b.code = v
	return b
}

// Value sets the value.
func (b *ImmunizationRecommendationRecommendationDateCriterionBuilder) Value(v *datatype.DateTime) *ImmunizationRecommendationRecommendationDateCriterionBuilder {
	b.value = v
	return b
}

// Build validates the fields and returns an immutable ImmunizationRecommendationRecommendationDateCriterion. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *ImmunizationRecommendationRecommendationDateCriterionBuilder) Build() (*ImmunizationRecommendationRecommendationDateCriterion, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *ImmunizationRecommendationRecommendationDateCriterionBuilder) BuildWith(opts ...fhirmodel.Option) (*ImmunizationRecommendationRecommendationDateCriterion, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *ImmunizationRecommendationRecommendationDateCriterionBuilder) build(o *fhirmodel.Options) (*ImmunizationRecommendationRecommendationDateCriterion, error) {
	x := &ImmunizationRecommendationRecommendationDateCriterion{
		BackboneElementBase: datatype.NewBackboneElementBase(b.id, b.extension, b.modifierExtension),
		code:                b.code,
		value:               b.value,
		opts:                o,
	}
	if err := validate.Run("ImmunizationRecommendation.Recommendation.DateCriterion", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
