package sample

import (
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/resource"
)

// DatatypeSamples returns one fully populated sample per data type.
func DatatypeSamples() []Sample {
	return []Sample{
		sample[*datatype.Boolean, *datatype.BooleanBuilder]("boolean", FullBooleanBuilder),
		sample[*datatype.Integer, *datatype.IntegerBuilder]("integer", FullIntegerBuilder),
		sample[*datatype.PositiveInt, *datatype.PositiveIntBuilder]("positiveInt", FullPositiveIntBuilder),
		sample[*datatype.UnsignedInt, *datatype.UnsignedIntBuilder]("unsignedInt", FullUnsignedIntBuilder),
		sample[*datatype.Decimal, *datatype.DecimalBuilder]("decimal", FullDecimalBuilder),
		sample[*datatype.String, *datatype.StringBuilder]("string", FullStringBuilder),
		sample[*datatype.Code, *datatype.CodeBuilder]("code", FullCodeBuilder),
		sample[*datatype.ID, *datatype.IDBuilder]("id", FullIDBuilder),
		sample[*datatype.URI, *datatype.URIBuilder]("uri", FullURIBuilder),
		sample[*datatype.URL, *datatype.URLBuilder]("url", FullURLBuilder),
		sample[*datatype.Canonical, *datatype.CanonicalBuilder]("canonical", FullCanonicalBuilder),
		sample[*datatype.UUID, *datatype.UUIDBuilder]("uuid", FullUUIDBuilder),
		sample[*datatype.Markdown, *datatype.MarkdownBuilder]("markdown", FullMarkdownBuilder),
		sample[*datatype.Base64Binary, *datatype.Base64BinaryBuilder]("base64Binary", FullBase64BinaryBuilder),
		sample[*datatype.Date, *datatype.DateBuilder]("date", FullDateBuilder),
		sample[*datatype.DateTime, *datatype.DateTimeBuilder]("dateTime", FullDateTimeBuilder),
		sample[*datatype.Time, *datatype.TimeBuilder]("time", FullTimeBuilder),
		sample[*datatype.Instant, *datatype.InstantBuilder]("instant", FullInstantBuilder),
		sample[*datatype.XHTML, *datatype.XHTMLBuilder]("xhtml", FullXHTMLBuilder),
		sample[*datatype.Extension, *datatype.ExtensionBuilder]("Extension", FullExtensionBuilder, "extension"),
		sample[*datatype.Narrative, *datatype.NarrativeBuilder]("Narrative", FullNarrativeBuilder),
		sample[*datatype.Meta, *datatype.MetaBuilder]("Meta", FullMetaBuilder),
		sample[*datatype.Coding, *datatype.CodingBuilder]("Coding", FullCodingBuilder),
		sample[*datatype.CodeableConcept, *datatype.CodeableConceptBuilder]("CodeableConcept", FullCodeableConceptBuilder),
		sample[*datatype.Identifier, *datatype.IdentifierBuilder]("Identifier", FullIdentifierBuilder),
		sample[*datatype.Reference, *datatype.ReferenceBuilder]("Reference", FullReferenceBuilder),
		sample[*datatype.Period, *datatype.PeriodBuilder]("Period", FullPeriodBuilder),
		sample[*datatype.Quantity, *datatype.QuantityBuilder]("Quantity", FullQuantityBuilder),
		sample[*datatype.SimpleQuantity, *datatype.SimpleQuantityBuilder]("SimpleQuantity", FullSimpleQuantityBuilder),
		sample[*datatype.Money, *datatype.MoneyBuilder]("Money", FullMoneyBuilder),
		sample[*datatype.Duration, *datatype.DurationBuilder]("Duration", FullDurationBuilder),
		sample[*datatype.Range, *datatype.RangeBuilder]("Range", FullRangeBuilder),
		sample[*datatype.Ratio, *datatype.RatioBuilder]("Ratio", FullRatioBuilder),
		sample[*datatype.Attachment, *datatype.AttachmentBuilder]("Attachment", FullAttachmentBuilder),
		sample[*datatype.Annotation, *datatype.AnnotationBuilder]("Annotation", FullAnnotationBuilder),
		sample[*datatype.ContactPoint, *datatype.ContactPointBuilder]("ContactPoint", FullContactPointBuilder),
		sample[*datatype.ContactDetail, *datatype.ContactDetailBuilder]("ContactDetail", FullContactDetailBuilder),
		sample[*datatype.UsageContext, *datatype.UsageContextBuilder]("UsageContext", FullUsageContextBuilder),
		sample[*datatype.RelatedArtifact, *datatype.RelatedArtifactBuilder]("RelatedArtifact", FullRelatedArtifactBuilder),
		sample[*datatype.ParameterDefinition, *datatype.ParameterDefinitionBuilder]("ParameterDefinition", FullParameterDefinitionBuilder),
		sample[*datatype.DataRequirement, *datatype.DataRequirementBuilder]("DataRequirement", FullDataRequirementBuilder),
		sample[*datatype.DataRequirementCodeFilter, *datatype.DataRequirementCodeFilterBuilder]("DataRequirement.CodeFilter", FullDataRequirementCodeFilterBuilder),
		sample[*datatype.DataRequirementDateFilter, *datatype.DataRequirementDateFilterBuilder]("DataRequirement.DateFilter", FullDataRequirementDateFilterBuilder),
		sample[*datatype.DataRequirementSort, *datatype.DataRequirementSortBuilder]("DataRequirement.Sort", FullDataRequirementSortBuilder),
	}
}

// ResourceSamples returns one fully populated sample per resource and
// backbone element.
func ResourceSamples() []Sample {
	return []Sample{
		sample[*resource.Communication, *resource.CommunicationBuilder]("Communication", FullCommunicationBuilder),
		sample[*resource.CommunicationPayload, *resource.CommunicationPayloadBuilder]("Communication.Payload", FullCommunicationPayloadBuilder),
		sample[*resource.Coverage, *resource.CoverageBuilder]("Coverage", FullCoverageBuilder),
		sample[*resource.CoverageClass, *resource.CoverageClassBuilder]("Coverage.Class", FullCoverageClassBuilder),
		sample[*resource.CoverageCostToBeneficiary, *resource.CoverageCostToBeneficiaryBuilder]("Coverage.CostToBeneficiary", FullCoverageCostToBeneficiaryBuilder),
		sample[*resource.CoverageCostToBeneficiaryException, *resource.CoverageCostToBeneficiaryExceptionBuilder]("Coverage.CostToBeneficiary.Exception", FullCoverageCostToBeneficiaryExceptionBuilder),
		sample[*resource.ImmunizationRecommendation, *resource.ImmunizationRecommendationBuilder]("ImmunizationRecommendation", FullImmunizationRecommendationBuilder),
		sample[*resource.ImmunizationRecommendationRecommendation, *resource.ImmunizationRecommendationRecommendationBuilder]("ImmunizationRecommendation.Recommendation", FullImmunizationRecommendationRecommendationBuilder),
		sample[*resource.ImmunizationRecommendationRecommendationDateCriterion, *resource.ImmunizationRecommendationRecommendationDateCriterionBuilder]("ImmunizationRecommendation.Recommendation.DateCriterion", FullImmunizationRecommendationRecommendationDateCriterionBuilder),
		sample[*resource.Library, *resource.LibraryBuilder]("Library", FullLibraryBuilder),
		sample[*resource.MedicationAdministration, *resource.MedicationAdministrationBuilder]("MedicationAdministration", FullMedicationAdministrationBuilder),
		sample[*resource.MedicationAdministrationPerformer, *resource.MedicationAdministrationPerformerBuilder]("MedicationAdministration.Performer", FullMedicationAdministrationPerformerBuilder),
		sample[*resource.MedicationAdministrationDosage, *resource.MedicationAdministrationDosageBuilder]("MedicationAdministration.Dosage", FullMedicationAdministrationDosageBuilder),
		sample[*resource.MedicinalProductAuthorization, *resource.MedicinalProductAuthorizationBuilder]("MedicinalProductAuthorization", FullMedicinalProductAuthorizationBuilder),
		sample[*resource.MedicinalProductAuthorizationJurisdictionalAuthorization, *resource.MedicinalProductAuthorizationJurisdictionalAuthorizationBuilder]("MedicinalProductAuthorization.JurisdictionalAuthorization", FullMedicinalProductAuthorizationJurisdictionalAuthorizationBuilder),
		sample[*resource.MedicinalProductAuthorizationProcedure, *resource.MedicinalProductAuthorizationProcedureBuilder]("MedicinalProductAuthorization.Procedure", FullMedicinalProductAuthorizationProcedureBuilder),
		sample[*resource.PractitionerRole, *resource.PractitionerRoleBuilder]("PractitionerRole", FullPractitionerRoleBuilder),
		sample[*resource.PractitionerRoleAvailableTime, *resource.PractitionerRoleAvailableTimeBuilder]("PractitionerRole.AvailableTime", FullPractitionerRoleAvailableTimeBuilder),
		sample[*resource.PractitionerRoleNotAvailable, *resource.PractitionerRoleNotAvailableBuilder]("PractitionerRole.NotAvailable", FullPractitionerRoleNotAvailableBuilder),
		sample[*resource.Substance, *resource.SubstanceBuilder]("Substance", FullSubstanceBuilder),
		sample[*resource.SubstanceInstance, *resource.SubstanceInstanceBuilder]("Substance.Instance", FullSubstanceInstanceBuilder),
		sample[*resource.SubstanceIngredient, *resource.SubstanceIngredientBuilder]("Substance.Ingredient", FullSubstanceIngredientBuilder),
	}
}
