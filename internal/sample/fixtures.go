package sample

import (
	"github.com/shopspring/decimal"

	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/resource"
)

// Extension returns a minimal valid Extension.
func Extension() *datatype.Extension {
	return datatype.ExtensionOf(URL, datatype.StringOf("sample"))
}

// Narrative returns a minimal valid Narrative.
func Narrative() *datatype.Narrative {
	return datatype.Must(datatype.NewNarrativeBuilder().
		Status(datatype.CodeOf("generated")).
		Div(datatype.XHTMLOf(`<div xmlns="http://www.w3.org/1999/xhtml">sample</div>`)).
		Build())
}

// Meta returns a minimal valid Meta.
func Meta() *datatype.Meta {
	return datatype.Must(datatype.NewMetaBuilder().
		VersionID(datatype.IDOf("sample-1")).
		Build())
}

// Coding returns a minimal valid Coding.
func Coding() *datatype.Coding {
	return datatype.Must(datatype.NewCodingBuilder().
		System(datatype.URIOf("http://example.org/fhir/sample")).
		Build())
}

// CodeableConcept returns a minimal valid CodeableConcept.
func CodeableConcept() *datatype.CodeableConcept {
	return datatype.Must(datatype.NewCodeableConceptBuilder().
		Coding(Coding()).
		Build())
}

// Identifier returns a minimal valid Identifier.
func Identifier() *datatype.Identifier {
	return datatype.Must(datatype.NewIdentifierBuilder().
		Use(datatype.CodeOf("usual")).
		Build())
}

// Reference returns a minimal valid Reference.
func Reference() *datatype.Reference {
	return datatype.Must(datatype.NewReferenceBuilder().
		Reference(datatype.StringOf("sample")).
		Build())
}

// Period returns a minimal valid Period.
func Period() *datatype.Period {
	return datatype.Must(datatype.NewPeriodBuilder().
		Start(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		Build())
}

// Quantity returns a minimal valid Quantity.
func Quantity() *datatype.Quantity {
	return datatype.Must(datatype.NewQuantityBuilder().
		Value(datatype.DecimalOf("1.50")).
		Build())
}

// SimpleQuantity returns a minimal valid SimpleQuantity.
func SimpleQuantity() *datatype.SimpleQuantity {
	return datatype.Must(datatype.NewSimpleQuantityBuilder().
		Value(datatype.DecimalOf("1.50")).
		Build())
}

// Money returns a minimal valid Money.
func Money() *datatype.Money {
	return datatype.Must(datatype.NewMoneyBuilder().
		Value(datatype.DecimalOf("1.50")).
		Build())
}

// Duration returns a minimal valid Duration.
func Duration() *datatype.Duration {
	return datatype.Must(datatype.NewDurationBuilder().
		Value(datatype.DecimalOf("1.50")).
		Build())
}

// Range returns a minimal valid Range.
func Range() *datatype.Range {
	return datatype.Must(datatype.NewRangeBuilder().
		Low(SimpleQuantity()).
		Build())
}

// Ratio returns a minimal valid Ratio.
func Ratio() *datatype.Ratio {
	return datatype.Must(datatype.NewRatioBuilder().
		Numerator(Quantity()).
		Build())
}

// Attachment returns a minimal valid Attachment.
func Attachment() *datatype.Attachment {
	return datatype.Must(datatype.NewAttachmentBuilder().
		ContentType(datatype.CodeOf("sample")).
		Build())
}

// Annotation returns a minimal valid Annotation.
func Annotation() *datatype.Annotation {
	return datatype.Must(datatype.NewAnnotationBuilder().
		Text(datatype.MarkdownOf("**sample**")).
		Build())
}

// ContactPoint returns a minimal valid ContactPoint.
func ContactPoint() *datatype.ContactPoint {
	return datatype.Must(datatype.NewContactPointBuilder().
		System(datatype.CodeOf("phone")).
		Build())
}

// ContactDetail returns a minimal valid ContactDetail.
func ContactDetail() *datatype.ContactDetail {
	return datatype.Must(datatype.NewContactDetailBuilder().
		Name(datatype.StringOf("sample")).
		Build())
}

// UsageContext returns a minimal valid UsageContext.
func UsageContext() *datatype.UsageContext {
	return datatype.Must(datatype.NewUsageContextBuilder().
		Code(Coding()).
		Value(CodeableConcept()).
		Build())
}

// RelatedArtifact returns a minimal valid RelatedArtifact.
func RelatedArtifact() *datatype.RelatedArtifact {
	return datatype.Must(datatype.NewRelatedArtifactBuilder().
		Type(datatype.CodeOf("documentation")).
		Build())
}

// ParameterDefinition returns a minimal valid ParameterDefinition.
func ParameterDefinition() *datatype.ParameterDefinition {
	return datatype.Must(datatype.NewParameterDefinitionBuilder().
		Use(datatype.CodeOf("in")).
		Type(datatype.CodeOf("sample")).
		Build())
}

// DataRequirement returns a minimal valid DataRequirement.
func DataRequirement() *datatype.DataRequirement {
	return datatype.Must(datatype.NewDataRequirementBuilder().
		Type(datatype.CodeOf("sample")).
		Build())
}

// DataRequirementCodeFilter returns a minimal valid DataRequirement.CodeFilter.
func DataRequirementCodeFilter() *datatype.DataRequirementCodeFilter {
	return datatype.Must(datatype.NewDataRequirementCodeFilterBuilder().
		Path(datatype.StringOf("sample")).
		Build())
}

// DataRequirementDateFilter returns a minimal valid DataRequirement.DateFilter.
func DataRequirementDateFilter() *datatype.DataRequirementDateFilter {
	return datatype.Must(datatype.NewDataRequirementDateFilterBuilder().
		Path(datatype.StringOf("sample")).
		Build())
}

// DataRequirementSort returns a minimal valid DataRequirement.Sort.
func DataRequirementSort() *datatype.DataRequirementSort {
	return datatype.Must(datatype.NewDataRequirementSortBuilder().
		Path(datatype.StringOf("sample")).
		Direction(datatype.CodeOf("ascending")).
		Build())
}

// Communication returns a minimal valid Communication.
func Communication() *resource.Communication {
	return datatype.Must(resource.NewCommunicationBuilder().
		Status(datatype.CodeOf("preparation")).
		Build())
}

// CommunicationPayload returns a minimal valid Communication.Payload.
func CommunicationPayload() *resource.CommunicationPayload {
	return datatype.Must(resource.NewCommunicationPayloadBuilder().
		Content(datatype.StringOf("sample")).
		Build())
}

// Coverage returns a minimal valid Coverage.
func Coverage() *resource.Coverage {
	return datatype.Must(resource.NewCoverageBuilder().
		Status(datatype.CodeOf("active")).
		Beneficiary(datatype.ReferenceTo("Patient/1")).
		Payor(datatype.ReferenceTo("Organization/1")).
		Build())
}

// CoverageClass returns a minimal valid Coverage.Class.
func CoverageClass() *resource.CoverageClass {
	return datatype.Must(resource.NewCoverageClassBuilder().
		Type(CodeableConcept()).
		Value(datatype.StringOf("sample")).
		Build())
}

// CoverageCostToBeneficiary returns a minimal valid Coverage.CostToBeneficiary.
func CoverageCostToBeneficiary() *resource.CoverageCostToBeneficiary {
	return datatype.Must(resource.NewCoverageCostToBeneficiaryBuilder().
		Value(SimpleQuantity()).
		Build())
}

// CoverageCostToBeneficiaryException returns a minimal valid Coverage.CostToBeneficiary.Exception.
func CoverageCostToBeneficiaryException() *resource.CoverageCostToBeneficiaryException {
	return datatype.Must(resource.NewCoverageCostToBeneficiaryExceptionBuilder().
		Type(CodeableConcept()).
		Build())
}

// ImmunizationRecommendation returns a minimal valid ImmunizationRecommendation.
func ImmunizationRecommendation() *resource.ImmunizationRecommendation {
	return datatype.Must(resource.NewImmunizationRecommendationBuilder().
		Patient(datatype.ReferenceTo("Patient/1")).
		Date(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		Recommendation(ImmunizationRecommendationRecommendation()).
		Build())
}

// ImmunizationRecommendationRecommendation returns a minimal valid ImmunizationRecommendation.Recommendation.
func ImmunizationRecommendationRecommendation() *resource.ImmunizationRecommendationRecommendation {
	return datatype.Must(resource.NewImmunizationRecommendationRecommendationBuilder().
		ForecastStatus(CodeableConcept()).
		Build())
}

// ImmunizationRecommendationRecommendationDateCriterion returns a minimal valid ImmunizationRecommendation.Recommendation.DateCriterion.
func ImmunizationRecommendationRecommendationDateCriterion() *resource.ImmunizationRecommendationRecommendationDateCriterion {
	return datatype.Must(resource.NewImmunizationRecommendationRecommendationDateCriterionBuilder().
		Code(CodeableConcept()).
		Value(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		Build())
}

// Library returns a minimal valid Library.
func Library() *resource.Library {
	return datatype.Must(resource.NewLibraryBuilder().
		Status(datatype.CodeOf("draft")).
		Type(CodeableConcept()).
		Build())
}

// MedicationAdministration returns a minimal valid MedicationAdministration.
func MedicationAdministration() *resource.MedicationAdministration {
	return datatype.Must(resource.NewMedicationAdministrationBuilder().
		Status(datatype.CodeOf("in-progress")).
		Medication(CodeableConcept()).
		Subject(datatype.ReferenceTo("Patient/1")).
		Effective(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		Build())
}

// MedicationAdministrationPerformer returns a minimal valid MedicationAdministration.Performer.
func MedicationAdministrationPerformer() *resource.MedicationAdministrationPerformer {
	return datatype.Must(resource.NewMedicationAdministrationPerformerBuilder().
		Actor(datatype.ReferenceTo("Practitioner/1")).
		Build())
}

// MedicationAdministrationDosage returns a minimal valid MedicationAdministration.Dosage.
func MedicationAdministrationDosage() *resource.MedicationAdministrationDosage {
	return datatype.Must(resource.NewMedicationAdministrationDosageBuilder().
		Text(datatype.StringOf("sample")).
		Build())
}

// MedicinalProductAuthorization returns a minimal valid MedicinalProductAuthorization.
func MedicinalProductAuthorization() *resource.MedicinalProductAuthorization {
	return datatype.Must(resource.NewMedicinalProductAuthorizationBuilder().
		Identifier(Identifier()).
		Build())
}

// MedicinalProductAuthorizationJurisdictionalAuthorization returns a minimal valid MedicinalProductAuthorization.JurisdictionalAuthorization.
func MedicinalProductAuthorizationJurisdictionalAuthorization() *resource.MedicinalProductAuthorizationJurisdictionalAuthorization {
	return datatype.Must(resource.NewMedicinalProductAuthorizationJurisdictionalAuthorizationBuilder().
		Identifier(Identifier()).
		Build())
}

// MedicinalProductAuthorizationProcedure returns a minimal valid MedicinalProductAuthorization.Procedure.
func MedicinalProductAuthorizationProcedure() *resource.MedicinalProductAuthorizationProcedure {
	return datatype.Must(resource.NewMedicinalProductAuthorizationProcedureBuilder().
		Type(CodeableConcept()).
		Build())
}

// PractitionerRole returns a minimal valid PractitionerRole.
func PractitionerRole() *resource.PractitionerRole {
	return datatype.Must(resource.NewPractitionerRoleBuilder().
		Identifier(Identifier()).
		Build())
}

// PractitionerRoleAvailableTime returns a minimal valid PractitionerRole.AvailableTime.
func PractitionerRoleAvailableTime() *resource.PractitionerRoleAvailableTime {
	return datatype.Must(resource.NewPractitionerRoleAvailableTimeBuilder().
		DaysOfWeek(datatype.CodeOf("mon")).
		Build())
}

// PractitionerRoleNotAvailable returns a minimal valid PractitionerRole.NotAvailable.
func PractitionerRoleNotAvailable() *resource.PractitionerRoleNotAvailable {
	return datatype.Must(resource.NewPractitionerRoleNotAvailableBuilder().
		Description(datatype.StringOf("sample")).
		Build())
}

// Substance returns a minimal valid Substance.
func Substance() *resource.Substance {
	return datatype.Must(resource.NewSubstanceBuilder().
		Code(CodeableConcept()).
		Build())
}

// SubstanceInstance returns a minimal valid Substance.Instance.
func SubstanceInstance() *resource.SubstanceInstance {
	return datatype.Must(resource.NewSubstanceInstanceBuilder().
		Identifier(Identifier()).
		Build())
}

// SubstanceIngredient returns a minimal valid Substance.Ingredient.
func SubstanceIngredient() *resource.SubstanceIngredient {
	return datatype.Must(resource.NewSubstanceIngredientBuilder().
		Substance(CodeableConcept()).
		Build())
}

// FullBooleanBuilder returns a builder with id, extension and value set.
func FullBooleanBuilder() *datatype.BooleanBuilder {
	return datatype.NewBooleanBuilder().
		ID("el-1").
		Extension(Extension()).
		Value(true)
}

// FullIntegerBuilder returns a builder with id, extension and value set.
func FullIntegerBuilder() *datatype.IntegerBuilder {
	return datatype.NewIntegerBuilder().
		ID("el-1").
		Extension(Extension()).
		Value(1)
}

// FullPositiveIntBuilder returns a builder with id, extension and value set.
func FullPositiveIntBuilder() *datatype.PositiveIntBuilder {
	return datatype.NewPositiveIntBuilder().
		ID("el-1").
		Extension(Extension()).
		Value(1)
}

// FullUnsignedIntBuilder returns a builder with id, extension and value set.
func FullUnsignedIntBuilder() *datatype.UnsignedIntBuilder {
	return datatype.NewUnsignedIntBuilder().
		ID("el-1").
		Extension(Extension()).
		Value(0)
}

// FullDecimalBuilder returns a builder with id, extension and value set.
func FullDecimalBuilder() *datatype.DecimalBuilder {
	return datatype.NewDecimalBuilder().
		ID("el-1").
		Extension(Extension()).
		Value(decimal.RequireFromString("1.50"))
}

// FullStringBuilder returns a builder with id, extension and value set.
func FullStringBuilder() *datatype.StringBuilder {
	return datatype.NewStringBuilder().
		ID("el-1").
		Extension(Extension()).
		Value("sample")
}

// FullCodeBuilder returns a builder with id, extension and value set.
func FullCodeBuilder() *datatype.CodeBuilder {
	return datatype.NewCodeBuilder().
		ID("el-1").
		Extension(Extension()).
		Value("sample")
}

// FullIDBuilder returns a builder with id, extension and value set.
func FullIDBuilder() *datatype.IDBuilder {
	return datatype.NewIDBuilder().
		ID("el-1").
		Extension(Extension()).
		Value("sample-1")
}

// FullURIBuilder returns a builder with id, extension and value set.
func FullURIBuilder() *datatype.URIBuilder {
	return datatype.NewURIBuilder().
		ID("el-1").
		Extension(Extension()).
		Value("http://example.org/fhir/sample")
}

// FullURLBuilder returns a builder with id, extension and value set.
func FullURLBuilder() *datatype.URLBuilder {
	return datatype.NewURLBuilder().
		ID("el-1").
		Extension(Extension()).
		Value("https://example.org/sample")
}

// FullCanonicalBuilder returns a builder with id, extension and value set.
func FullCanonicalBuilder() *datatype.CanonicalBuilder {
	return datatype.NewCanonicalBuilder().
		ID("el-1").
		Extension(Extension()).
		Value("http://example.org/fhir/StructureDefinition/sample")
}

// FullUUIDBuilder returns a builder with id, extension and value set.
func FullUUIDBuilder() *datatype.UUIDBuilder {
	return datatype.NewUUIDBuilder().
		ID("el-1").
		Extension(Extension()).
		Value("urn:uuid:3f2504e0-4f89-41d3-9a0c-0305e82c3301")
}

// FullMarkdownBuilder returns a builder with id, extension and value set.
func FullMarkdownBuilder() *datatype.MarkdownBuilder {
	return datatype.NewMarkdownBuilder().
		ID("el-1").
		Extension(Extension()).
		Value("**sample**")
}

// FullBase64BinaryBuilder returns a builder with id, extension and value set.
func FullBase64BinaryBuilder() *datatype.Base64BinaryBuilder {
	return datatype.NewBase64BinaryBuilder().
		ID("el-1").
		Extension(Extension()).
		Value([]byte("sample"))
}

// FullDateBuilder returns a builder with id, extension and value set.
func FullDateBuilder() *datatype.DateBuilder {
	return datatype.NewDateBuilder().
		ID("el-1").
		Extension(Extension()).
		Value("2024-01-15")
}

// FullDateTimeBuilder returns a builder with id, extension and value set.
func FullDateTimeBuilder() *datatype.DateTimeBuilder {
	return datatype.NewDateTimeBuilder().
		ID("el-1").
		Extension(Extension()).
		Value("2024-01-15T10:30:00Z")
}

// FullTimeBuilder returns a builder with id, extension and value set.
func FullTimeBuilder() *datatype.TimeBuilder {
	return datatype.NewTimeBuilder().
		ID("el-1").
		Extension(Extension()).
		Value("10:30:00")
}

// FullInstantBuilder returns a builder with id, extension and value set.
func FullInstantBuilder() *datatype.InstantBuilder {
	return datatype.NewInstantBuilder().
		ID("el-1").
		Extension(Extension()).
		Value("2024-01-15T10:30:00.000Z")
}

// FullXHTMLBuilder returns a builder with id, extension and value set.
func FullXHTMLBuilder() *datatype.XHTMLBuilder {
	return datatype.NewXHTMLBuilder().
		ID("el-1").
		Extension(Extension()).
		Value(`<div xmlns="http://www.w3.org/1999/xhtml">sample</div>`)
}

// FullExtensionBuilder returns a builder with every element of Extension populated.
func FullExtensionBuilder() *datatype.ExtensionBuilder {
	return datatype.NewExtensionBuilder().
		ID("el-1").
		URL(URL).
		Value(datatype.StringOf("sample"))
}

// FullNarrativeBuilder returns a builder with every element of Narrative populated.
func FullNarrativeBuilder() *datatype.NarrativeBuilder {
	return datatype.NewNarrativeBuilder().
		ID("el-1").
		Extension(Extension()).
		Status(datatype.CodeOf("generated")).
		Div(datatype.XHTMLOf(`<div xmlns="http://www.w3.org/1999/xhtml">sample</div>`))
}

// FullMetaBuilder returns a builder with every element of Meta populated.
func FullMetaBuilder() *datatype.MetaBuilder {
	return datatype.NewMetaBuilder().
		ID("el-1").
		Extension(Extension()).
		VersionID(datatype.IDOf("sample-1")).
		LastUpdated(datatype.InstantOf("2024-01-15T10:30:00.000Z")).
		Source(datatype.URIOf("http://example.org/fhir/sample")).
		Profile(datatype.CanonicalOf("http://example.org/fhir/StructureDefinition/sample")).
		Security(Coding()).
		Tag(Coding())
}

// FullCodingBuilder returns a builder with every element of Coding populated.
func FullCodingBuilder() *datatype.CodingBuilder {
	return datatype.NewCodingBuilder().
		ID("el-1").
		Extension(Extension()).
		System(datatype.URIOf("http://example.org/fhir/sample")).
		Version(datatype.StringOf("sample")).
		Code(datatype.CodeOf("sample")).
		Display(datatype.StringOf("sample")).
		UserSelected(datatype.BooleanOf(true))
}

// FullCodeableConceptBuilder returns a builder with every element of CodeableConcept populated.
func FullCodeableConceptBuilder() *datatype.CodeableConceptBuilder {
	return datatype.NewCodeableConceptBuilder().
		ID("el-1").
		Extension(Extension()).
		Coding(Coding()).
		Text(datatype.StringOf("sample"))
}

// FullIdentifierBuilder returns a builder with every element of Identifier populated.
func FullIdentifierBuilder() *datatype.IdentifierBuilder {
	return datatype.NewIdentifierBuilder().
		ID("el-1").
		Extension(Extension()).
		Use(datatype.CodeOf("usual")).
		Type(CodeableConcept()).
		System(datatype.URIOf("http://example.org/fhir/sample")).
		Value(datatype.StringOf("sample")).
		Period(Period()).
		Assigner(datatype.ReferenceTo("Organization/1"))
}

// FullReferenceBuilder returns a builder with every element of Reference populated.
func FullReferenceBuilder() *datatype.ReferenceBuilder {
	return datatype.NewReferenceBuilder().
		ID("el-1").
		Extension(Extension()).
		Reference(datatype.StringOf("sample")).
		Type(datatype.URIOf("http://example.org/fhir/sample")).
		Identifier(Identifier()).
		Display(datatype.StringOf("sample"))
}

// FullPeriodBuilder returns a builder with every element of Period populated.
func FullPeriodBuilder() *datatype.PeriodBuilder {
	return datatype.NewPeriodBuilder().
		ID("el-1").
		Extension(Extension()).
		Start(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		End(datatype.DateTimeOf("2024-01-15T10:30:00Z"))
}

// FullQuantityBuilder returns a builder with every element of Quantity populated.
func FullQuantityBuilder() *datatype.QuantityBuilder {
	return datatype.NewQuantityBuilder().
		ID("el-1").
		Extension(Extension()).
		Value(datatype.DecimalOf("1.50")).
		Comparator(datatype.CodeOf("<")).
		Unit(datatype.StringOf("sample")).
		System(datatype.URIOf("http://example.org/fhir/sample")).
		Code(datatype.CodeOf("sample"))
}

// FullSimpleQuantityBuilder returns a builder with every element of SimpleQuantity populated.
func FullSimpleQuantityBuilder() *datatype.SimpleQuantityBuilder {
	return datatype.NewSimpleQuantityBuilder().
		ID("el-1").
		Extension(Extension()).
		Value(datatype.DecimalOf("1.50")).
		Unit(datatype.StringOf("sample")).
		System(datatype.URIOf("http://example.org/fhir/sample")).
		Code(datatype.CodeOf("sample"))
}

// FullMoneyBuilder returns a builder with every element of Money populated.
func FullMoneyBuilder() *datatype.MoneyBuilder {
	return datatype.NewMoneyBuilder().
		ID("el-1").
		Extension(Extension()).
		Value(datatype.DecimalOf("1.50")).
		Currency(datatype.CodeOf("sample"))
}

// FullDurationBuilder returns a builder with every element of Duration populated.
func FullDurationBuilder() *datatype.DurationBuilder {
	return datatype.NewDurationBuilder().
		ID("el-1").
		Extension(Extension()).
		Value(datatype.DecimalOf("1.50")).
		Comparator(datatype.CodeOf("<")).
		Unit(datatype.StringOf("sample")).
		System(datatype.URIOf("http://example.org/fhir/sample")).
		Code(datatype.CodeOf("sample"))
}

// FullRangeBuilder returns a builder with every element of Range populated.
func FullRangeBuilder() *datatype.RangeBuilder {
	return datatype.NewRangeBuilder().
		ID("el-1").
		Extension(Extension()).
		Low(SimpleQuantity()).
		High(SimpleQuantity())
}

// FullRatioBuilder returns a builder with every element of Ratio populated.
func FullRatioBuilder() *datatype.RatioBuilder {
	return datatype.NewRatioBuilder().
		ID("el-1").
		Extension(Extension()).
		Numerator(Quantity()).
		Denominator(Quantity())
}

// FullAttachmentBuilder returns a builder with every element of Attachment populated.
func FullAttachmentBuilder() *datatype.AttachmentBuilder {
	return datatype.NewAttachmentBuilder().
		ID("el-1").
		Extension(Extension()).
		ContentType(datatype.CodeOf("sample")).
		Language(datatype.CodeOf("sample")).
		Data(datatype.Base64BinaryOf([]byte("sample"))).
		URL(datatype.URLOf("https://example.org/sample")).
		Size(datatype.UnsignedIntOf(0)).
		ContentHash(datatype.Base64BinaryOf([]byte("sample"))).
		Title(datatype.StringOf("sample")).
		Creation(datatype.DateTimeOf("2024-01-15T10:30:00Z"))
}

// FullAnnotationBuilder returns a builder with every element of Annotation populated.
func FullAnnotationBuilder() *datatype.AnnotationBuilder {
	return datatype.NewAnnotationBuilder().
		ID("el-1").
		Extension(Extension()).
		Author(datatype.ReferenceTo("Practitioner/1")).
		Time(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		Text(datatype.MarkdownOf("**sample**"))
}

// FullContactPointBuilder returns a builder with every element of ContactPoint populated.
func FullContactPointBuilder() *datatype.ContactPointBuilder {
	return datatype.NewContactPointBuilder().
		ID("el-1").
		Extension(Extension()).
		System(datatype.CodeOf("phone")).
		Value(datatype.StringOf("sample")).
		Use(datatype.CodeOf("home")).
		Rank(datatype.PositiveIntOf(1)).
		Period(Period())
}

// FullContactDetailBuilder returns a builder with every element of ContactDetail populated.
func FullContactDetailBuilder() *datatype.ContactDetailBuilder {
	return datatype.NewContactDetailBuilder().
		ID("el-1").
		Extension(Extension()).
		Name(datatype.StringOf("sample")).
		Telecom(ContactPoint())
}

// FullUsageContextBuilder returns a builder with every element of UsageContext populated.
func FullUsageContextBuilder() *datatype.UsageContextBuilder {
	return datatype.NewUsageContextBuilder().
		ID("el-1").
		Extension(Extension()).
		Code(Coding()).
		Value(CodeableConcept())
}

// FullRelatedArtifactBuilder returns a builder with every element of RelatedArtifact populated.
func FullRelatedArtifactBuilder() *datatype.RelatedArtifactBuilder {
	return datatype.NewRelatedArtifactBuilder().
		ID("el-1").
		Extension(Extension()).
		Type(datatype.CodeOf("documentation")).
		Label(datatype.StringOf("sample")).
		Display(datatype.StringOf("sample")).
		Citation(datatype.MarkdownOf("**sample**")).
		URL(datatype.URLOf("https://example.org/sample")).
		Document(Attachment()).
		Resource(datatype.CanonicalOf("http://example.org/fhir/StructureDefinition/sample"))
}

// FullParameterDefinitionBuilder returns a builder with every element of ParameterDefinition populated.
func FullParameterDefinitionBuilder() *datatype.ParameterDefinitionBuilder {
	return datatype.NewParameterDefinitionBuilder().
		ID("el-1").
		Extension(Extension()).
		Name(datatype.CodeOf("sample")).
		Use(datatype.CodeOf("in")).
		Min(datatype.IntegerOf(1)).
		Max(datatype.StringOf("sample")).
		Documentation(datatype.StringOf("sample")).
		Type(datatype.CodeOf("sample")).
		Profile(datatype.CanonicalOf("http://example.org/fhir/StructureDefinition/sample"))
}

// FullDataRequirementBuilder returns a builder with every element of DataRequirement populated.
func FullDataRequirementBuilder() *datatype.DataRequirementBuilder {
	return datatype.NewDataRequirementBuilder().
		ID("el-1").
		Extension(Extension()).
		Type(datatype.CodeOf("sample")).
		Profile(datatype.CanonicalOf("http://example.org/fhir/StructureDefinition/sample")).
		Subject(CodeableConcept()).
		MustSupport(datatype.StringOf("sample")).
		CodeFilter(DataRequirementCodeFilter()).
		DateFilter(DataRequirementDateFilter()).
		Limit(datatype.PositiveIntOf(1)).
		Sort(DataRequirementSort())
}

// FullDataRequirementCodeFilterBuilder returns a builder with every element of DataRequirement.CodeFilter populated.
func FullDataRequirementCodeFilterBuilder() *datatype.DataRequirementCodeFilterBuilder {
	return datatype.NewDataRequirementCodeFilterBuilder().
		ID("el-1").
		Extension(Extension()).
		Path(datatype.StringOf("sample")).
		SearchParam(datatype.StringOf("sample")).
		ValueSet(datatype.CanonicalOf("http://example.org/fhir/StructureDefinition/sample")).
		Code(Coding())
}

// FullDataRequirementDateFilterBuilder returns a builder with every element of DataRequirement.DateFilter populated.
func FullDataRequirementDateFilterBuilder() *datatype.DataRequirementDateFilterBuilder {
	return datatype.NewDataRequirementDateFilterBuilder().
		ID("el-1").
		Extension(Extension()).
		Path(datatype.StringOf("sample")).
		SearchParam(datatype.StringOf("sample")).
		Value(datatype.DateTimeOf("2024-01-15T10:30:00Z"))
}

// FullDataRequirementSortBuilder returns a builder with every element of DataRequirement.Sort populated.
func FullDataRequirementSortBuilder() *datatype.DataRequirementSortBuilder {
	return datatype.NewDataRequirementSortBuilder().
		ID("el-1").
		Extension(Extension()).
		Path(datatype.StringOf("sample")).
		Direction(datatype.CodeOf("ascending"))
}

// FullCommunicationBuilder returns a builder with every element of Communication populated.
func FullCommunicationBuilder() *resource.CommunicationBuilder {
	return resource.NewCommunicationBuilder().
		ID("res-1").
		Meta(Meta()).
		ImplicitRules(datatype.URIOf(URL)).
		Language(datatype.CodeOf("en")).
		Text(Narrative()).
		Contained(Contained()).
		Extension(Extension()).
		ModifierExtension(Extension()).
		Identifier(Identifier()).
		InstantiatesCanonical(datatype.CanonicalOf("http://example.org/fhir/StructureDefinition/sample")).
		InstantiatesURI(datatype.URIOf("http://example.org/fhir/sample")).
		BasedOn(datatype.ReferenceTo("Patient/1")).
		PartOf(datatype.ReferenceTo("Patient/1")).
		InResponseTo(datatype.ReferenceTo("Communication/1")).
		Status(datatype.CodeOf("preparation")).
		StatusReason(CodeableConcept()).
		Category(CodeableConcept()).
		Priority(datatype.CodeOf("routine")).
		Medium(CodeableConcept()).
		Subject(datatype.ReferenceTo("Patient/1")).
		Topic(CodeableConcept()).
		About(datatype.ReferenceTo("Patient/1")).
		Encounter(datatype.ReferenceTo("Encounter/1")).
		Sent(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		Received(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		Recipient(datatype.ReferenceTo("Device/1")).
		Sender(datatype.ReferenceTo("Device/1")).
		ReasonCode(CodeableConcept()).
		ReasonReference(datatype.ReferenceTo("Condition/1")).
		Payload(CommunicationPayload()).
		Note(Annotation())
}

// FullCommunicationPayloadBuilder returns a builder with every element of Communication.Payload populated.
func FullCommunicationPayloadBuilder() *resource.CommunicationPayloadBuilder {
	return resource.NewCommunicationPayloadBuilder().
		ID("el-1").
		Extension(Extension()).
		ModifierExtension(Extension()).
		Content(datatype.StringOf("sample"))
}

// FullCoverageBuilder returns a builder with every element of Coverage populated.
func FullCoverageBuilder() *resource.CoverageBuilder {
	return resource.NewCoverageBuilder().
		ID("res-1").
		Meta(Meta()).
		ImplicitRules(datatype.URIOf(URL)).
		Language(datatype.CodeOf("en")).
		Text(Narrative()).
		Contained(Contained()).
		Extension(Extension()).
		ModifierExtension(Extension()).
		Identifier(Identifier()).
		Status(datatype.CodeOf("active")).
		Type(CodeableConcept()).
		PolicyHolder(datatype.ReferenceTo("Patient/1")).
		Subscriber(datatype.ReferenceTo("Patient/1")).
		SubscriberID(datatype.StringOf("sample")).
		Beneficiary(datatype.ReferenceTo("Patient/1")).
		Dependent(datatype.StringOf("sample")).
		Relationship(CodeableConcept()).
		Period(Period()).
		Payor(datatype.ReferenceTo("Organization/1")).
		Class(CoverageClass()).
		Order(datatype.PositiveIntOf(1)).
		Network(datatype.StringOf("sample")).
		CostToBeneficiary(CoverageCostToBeneficiary()).
		Subrogation(datatype.BooleanOf(true)).
		Contract(datatype.ReferenceTo("Contract/1"))
}

// FullCoverageClassBuilder returns a builder with every element of Coverage.Class populated.
func FullCoverageClassBuilder() *resource.CoverageClassBuilder {
	return resource.NewCoverageClassBuilder().
		ID("el-1").
		Extension(Extension()).
		ModifierExtension(Extension()).
		Type(CodeableConcept()).
		Value(datatype.StringOf("sample")).
		Name(datatype.StringOf("sample"))
}

// FullCoverageCostToBeneficiaryBuilder returns a builder with every element of Coverage.CostToBeneficiary populated.
func FullCoverageCostToBeneficiaryBuilder() *resource.CoverageCostToBeneficiaryBuilder {
	return resource.NewCoverageCostToBeneficiaryBuilder().
		ID("el-1").
		Extension(Extension()).
		ModifierExtension(Extension()).
		Type(CodeableConcept()).
		Value(SimpleQuantity()).
		Exception(CoverageCostToBeneficiaryException())
}

// FullCoverageCostToBeneficiaryExceptionBuilder returns a builder with every element of Coverage.CostToBeneficiary.Exception populated.
func FullCoverageCostToBeneficiaryExceptionBuilder() *resource.CoverageCostToBeneficiaryExceptionBuilder {
	return resource.NewCoverageCostToBeneficiaryExceptionBuilder().
		ID("el-1").
		Extension(Extension()).
		ModifierExtension(Extension()).
		Type(CodeableConcept()).
		Period(Period())
}

// FullImmunizationRecommendationBuilder returns a builder with every element of ImmunizationRecommendation populated.
func FullImmunizationRecommendationBuilder() *resource.ImmunizationRecommendationBuilder {
	return resource.NewImmunizationRecommendationBuilder().
		ID("res-1").
		Meta(Meta()).
		ImplicitRules(datatype.URIOf(URL)).
		Language(datatype.CodeOf("en")).
		Text(Narrative()).
		Contained(Contained()).
		Extension(Extension()).
		ModifierExtension(Extension()).
		Identifier(Identifier()).
		Patient(datatype.ReferenceTo("Patient/1")).
		Date(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		Authority(datatype.ReferenceTo("Organization/1")).
		Recommendation(ImmunizationRecommendationRecommendation())
}

// FullImmunizationRecommendationRecommendationBuilder returns a builder with every element of ImmunizationRecommendation.Recommendation populated.
func FullImmunizationRecommendationRecommendationBuilder() *resource.ImmunizationRecommendationRecommendationBuilder {
	return resource.NewImmunizationRecommendationRecommendationBuilder().
		ID("el-1").
		Extension(Extension()).
		ModifierExtension(Extension()).
		VaccineCode(CodeableConcept()).
		TargetDisease(CodeableConcept()).
		ContraindicatedVaccineCode(CodeableConcept()).
		ForecastStatus(CodeableConcept()).
		ForecastReason(CodeableConcept()).
		DateCriterion(ImmunizationRecommendationRecommendationDateCriterion()).
		Description(datatype.StringOf("sample")).
		Series(datatype.StringOf("sample")).
		DoseNumber(datatype.PositiveIntOf(1)).
		SeriesDoses(datatype.PositiveIntOf(1)).
		SupportingImmunization(datatype.ReferenceTo("Immunization/1")).
		SupportingPatientInformation(datatype.ReferenceTo("Patient/1"))
}

// FullImmunizationRecommendationRecommendationDateCriterionBuilder returns a builder with every element of ImmunizationRecommendation.Recommendation.DateCriterion populated.
func FullImmunizationRecommendationRecommendationDateCriterionBuilder() *resource.ImmunizationRecommendationRecommendationDateCriterionBuilder {
	return resource.NewImmunizationRecommendationRecommendationDateCriterionBuilder().
		ID("el-1").
		Extension(Extension()).
		ModifierExtension(Extension()).
		Code(CodeableConcept()).
		Value(datatype.DateTimeOf("2024-01-15T10:30:00Z"))
}

// FullLibraryBuilder returns a builder with every element of Library populated.
func FullLibraryBuilder() *resource.LibraryBuilder {
	return resource.NewLibraryBuilder().
		ID("res-1").
		Meta(Meta()).
		ImplicitRules(datatype.URIOf(URL)).
		Language(datatype.CodeOf("en")).
		Text(Narrative()).
		Contained(Contained()).
		Extension(Extension()).
		ModifierExtension(Extension()).
		URL(datatype.URIOf("http://example.org/fhir/sample")).
		Identifier(Identifier()).
		Version(datatype.StringOf("sample")).
		Name(datatype.StringOf("sample")).
		Title(datatype.StringOf("sample")).
		Subtitle(datatype.StringOf("sample")).
		Status(datatype.CodeOf("draft")).
		Experimental(datatype.BooleanOf(true)).
		Type(CodeableConcept()).
		Subject(CodeableConcept()).
		Date(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		Publisher(datatype.StringOf("sample")).
		Contact(ContactDetail()).
		Description(datatype.MarkdownOf("**sample**")).
		UseContext(UsageContext()).
		Jurisdiction(CodeableConcept()).
		Purpose(datatype.MarkdownOf("**sample**")).
		Usage(datatype.StringOf("sample")).
		Copyright(datatype.MarkdownOf("**sample**")).
		ApprovalDate(datatype.DateOf("2024-01-15")).
		LastReviewDate(datatype.DateOf("2024-01-15")).
		EffectivePeriod(Period()).
		Topic(CodeableConcept()).
		Author(ContactDetail()).
		Editor(ContactDetail()).
		Reviewer(ContactDetail()).
		Endorser(ContactDetail()).
		RelatedArtifact(RelatedArtifact()).
		Parameter(ParameterDefinition()).
		DataRequirement(DataRequirement()).
		Content(Attachment())
}

// FullMedicationAdministrationBuilder returns a builder with every element of MedicationAdministration populated.
func FullMedicationAdministrationBuilder() *resource.MedicationAdministrationBuilder {
	return resource.NewMedicationAdministrationBuilder().
		ID("res-1").
		Meta(Meta()).
		ImplicitRules(datatype.URIOf(URL)).
		Language(datatype.CodeOf("en")).
		Text(Narrative()).
		Contained(Contained()).
		Extension(Extension()).
		ModifierExtension(Extension()).
		Identifier(Identifier()).
		Instantiates(datatype.URIOf("http://example.org/fhir/sample")).
		PartOf(datatype.ReferenceTo("MedicationAdministration/1")).
		Status(datatype.CodeOf("in-progress")).
		StatusReason(CodeableConcept()).
		Category(CodeableConcept()).
		Medication(CodeableConcept()).
		Subject(datatype.ReferenceTo("Patient/1")).
		Context(datatype.ReferenceTo("Encounter/1")).
		SupportingInformation(datatype.ReferenceTo("Patient/1")).
		Effective(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		Performer(MedicationAdministrationPerformer()).
		ReasonCode(CodeableConcept()).
		ReasonReference(datatype.ReferenceTo("Condition/1")).
		Request(datatype.ReferenceTo("MedicationRequest/1")).
		Device(datatype.ReferenceTo("Device/1")).
		Note(Annotation()).
		Dosage(MedicationAdministrationDosage()).
		EventHistory(datatype.ReferenceTo("Provenance/1"))
}

// FullMedicationAdministrationPerformerBuilder returns a builder with every element of MedicationAdministration.Performer populated.
func FullMedicationAdministrationPerformerBuilder() *resource.MedicationAdministrationPerformerBuilder {
	return resource.NewMedicationAdministrationPerformerBuilder().
		ID("el-1").
		Extension(Extension()).
		ModifierExtension(Extension()).
		Function(CodeableConcept()).
		Actor(datatype.ReferenceTo("Practitioner/1"))
}

// FullMedicationAdministrationDosageBuilder returns a builder with every element of MedicationAdministration.Dosage populated.
func FullMedicationAdministrationDosageBuilder() *resource.MedicationAdministrationDosageBuilder {
	return resource.NewMedicationAdministrationDosageBuilder().
		ID("el-1").
		Extension(Extension()).
		ModifierExtension(Extension()).
		Text(datatype.StringOf("sample")).
		Site(CodeableConcept()).
		Route(CodeableConcept()).
		Method(CodeableConcept()).
		Dose(SimpleQuantity()).
		Rate(Ratio())
}

// FullMedicinalProductAuthorizationBuilder returns a builder with every element of MedicinalProductAuthorization populated.
func FullMedicinalProductAuthorizationBuilder() *resource.MedicinalProductAuthorizationBuilder {
	return resource.NewMedicinalProductAuthorizationBuilder().
		ID("res-1").
		Meta(Meta()).
		ImplicitRules(datatype.URIOf(URL)).
		Language(datatype.CodeOf("en")).
		Text(Narrative()).
		Contained(Contained()).
		Extension(Extension()).
		ModifierExtension(Extension()).
		Identifier(Identifier()).
		Subject(datatype.ReferenceTo("MedicinalProduct/1")).
		Country(CodeableConcept()).
		Jurisdiction(CodeableConcept()).
		Status(CodeableConcept()).
		StatusDate(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		RestoreDate(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		ValidityPeriod(Period()).
		DataExclusivityPeriod(Period()).
		DateOfFirstAuthorization(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		InternationalBirthDate(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		LegalBasis(CodeableConcept()).
		JurisdictionalAuthorization(MedicinalProductAuthorizationJurisdictionalAuthorization()).
		Holder(datatype.ReferenceTo("Organization/1")).
		Regulator(datatype.ReferenceTo("Organization/1")).
		Procedure(MedicinalProductAuthorizationProcedure())
}

// FullMedicinalProductAuthorizationJurisdictionalAuthorizationBuilder returns a builder with every element of MedicinalProductAuthorization.JurisdictionalAuthorization populated.
func FullMedicinalProductAuthorizationJurisdictionalAuthorizationBuilder() *resource.MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder {
	return resource.NewMedicinalProductAuthorizationJurisdictionalAuthorizationBuilder().
		ID("el-1").
		Extension(Extension()).
		ModifierExtension(Extension()).
		Identifier(Identifier()).
		Country(CodeableConcept()).
		Jurisdiction(CodeableConcept()).
		LegalStatusOfSupply(CodeableConcept()).
		ValidityPeriod(Period())
}

// FullMedicinalProductAuthorizationProcedureBuilder returns a builder with every element of MedicinalProductAuthorization.Procedure populated.
func FullMedicinalProductAuthorizationProcedureBuilder() *resource.MedicinalProductAuthorizationProcedureBuilder {
	return resource.NewMedicinalProductAuthorizationProcedureBuilder().
		ID("el-1").
		Extension(Extension()).
		ModifierExtension(Extension()).
		Identifier(Identifier()).
		Type(CodeableConcept()).
		Date(Period()).
		Application(MedicinalProductAuthorizationProcedure())
}

// FullPractitionerRoleBuilder returns a builder with every element of PractitionerRole populated.
func FullPractitionerRoleBuilder() *resource.PractitionerRoleBuilder {
	return resource.NewPractitionerRoleBuilder().
		ID("res-1").
		Meta(Meta()).
		ImplicitRules(datatype.URIOf(URL)).
		Language(datatype.CodeOf("en")).
		Text(Narrative()).
		Contained(Contained()).
		Extension(Extension()).
		ModifierExtension(Extension()).
		Identifier(Identifier()).
		Active(datatype.BooleanOf(true)).
		Period(Period()).
		Practitioner(datatype.ReferenceTo("Practitioner/1")).
		Organization(datatype.ReferenceTo("Organization/1")).
		Code(CodeableConcept()).
		Specialty(CodeableConcept()).
		Location(datatype.ReferenceTo("Location/1")).
		HealthcareService(datatype.ReferenceTo("HealthcareService/1")).
		Telecom(ContactPoint()).
		AvailableTime(PractitionerRoleAvailableTime()).
		NotAvailable(PractitionerRoleNotAvailable()).
		AvailabilityExceptions(datatype.StringOf("sample")).
		Endpoint(datatype.ReferenceTo("Endpoint/1"))
}

// FullPractitionerRoleAvailableTimeBuilder returns a builder with every element of PractitionerRole.AvailableTime populated.
func FullPractitionerRoleAvailableTimeBuilder() *resource.PractitionerRoleAvailableTimeBuilder {
	return resource.NewPractitionerRoleAvailableTimeBuilder().
		ID("el-1").
		Extension(Extension()).
		ModifierExtension(Extension()).
		DaysOfWeek(datatype.CodeOf("mon")).
		AllDay(datatype.BooleanOf(true)).
		AvailableStartTime(datatype.TimeOf("10:30:00")).
		AvailableEndTime(datatype.TimeOf("10:30:00"))
}

// FullPractitionerRoleNotAvailableBuilder returns a builder with every element of PractitionerRole.NotAvailable populated.
func FullPractitionerRoleNotAvailableBuilder() *resource.PractitionerRoleNotAvailableBuilder {
	return resource.NewPractitionerRoleNotAvailableBuilder().
		ID("el-1").
		Extension(Extension()).
		ModifierExtension(Extension()).
		Description(datatype.StringOf("sample")).
		During(Period())
}

// FullSubstanceBuilder returns a builder with every element of Substance populated.
func FullSubstanceBuilder() *resource.SubstanceBuilder {
	return resource.NewSubstanceBuilder().
		ID("res-1").
		Meta(Meta()).
		ImplicitRules(datatype.URIOf(URL)).
		Language(datatype.CodeOf("en")).
		Text(Narrative()).
		Contained(Contained()).
		Extension(Extension()).
		ModifierExtension(Extension()).
		Identifier(Identifier()).
		Status(datatype.CodeOf("active")).
		Category(CodeableConcept()).
		Code(CodeableConcept()).
		Description(datatype.StringOf("sample")).
		Instance(SubstanceInstance()).
		Ingredient(SubstanceIngredient())
}

// FullSubstanceInstanceBuilder returns a builder with every element of Substance.Instance populated.
func FullSubstanceInstanceBuilder() *resource.SubstanceInstanceBuilder {
	return resource.NewSubstanceInstanceBuilder().
		ID("el-1").
		Extension(Extension()).
		ModifierExtension(Extension()).
		Identifier(Identifier()).
		Expiry(datatype.DateTimeOf("2024-01-15T10:30:00Z")).
		Quantity(SimpleQuantity())
}

// FullSubstanceIngredientBuilder returns a builder with every element of Substance.Ingredient populated.
func FullSubstanceIngredientBuilder() *resource.SubstanceIngredientBuilder {
	return resource.NewSubstanceIngredientBuilder().
		ID("el-1").
		Extension(Extension()).
		ModifierExtension(Extension()).
		Quantity(Ratio()).
		Substance(CodeableConcept())
}
