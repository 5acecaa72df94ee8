package sample

import (
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/pkg/validate"
)

// DatatypeCases returns the construction failures of the datatype types.
func DatatypeCases() []Case {
	return []Case{
		{Type: "Extension", Field: "url", Want: validate.ErrRequired, Build: func() error {
			_, err := FullExtensionBuilder().URL("").Build()
			return err
		}},
		{Type: "Extension", Field: "value", Want: validate.ErrChoiceType, Build: func() error {
			_, err := FullExtensionBuilder().Value(Extension()).Build()
			return err
		}},
		{Type: "Narrative", Field: "status", Want: validate.ErrRequired, Build: func() error {
			_, err := FullNarrativeBuilder().Status(nil).Build()
			return err
		}},
		{Type: "Narrative", Field: "status", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullNarrativeBuilder().Status(datatype.CodeOf("not-a-code")).Build()
			return err
		}},
		{Type: "Narrative", Field: "div", Want: validate.ErrRequired, Build: func() error {
			_, err := FullNarrativeBuilder().Div(nil).Build()
			return err
		}},
		{Type: "Meta", Field: "profile", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMetaBuilder().Profile(nil).Build()
			return err
		}},
		{Type: "Meta", Field: "security", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMetaBuilder().Security(nil).Build()
			return err
		}},
		{Type: "Meta", Field: "tag", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMetaBuilder().Tag(nil).Build()
			return err
		}},
		{Type: "CodeableConcept", Field: "coding", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCodeableConceptBuilder().Coding(nil).Build()
			return err
		}},
		{Type: "Identifier", Field: "use", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullIdentifierBuilder().Use(datatype.CodeOf("not-a-code")).Build()
			return err
		}},
		{Type: "Identifier", Field: "assigner", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullIdentifierBuilder().Assigner(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "Quantity", Field: "comparator", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullQuantityBuilder().Comparator(datatype.CodeOf("not-a-code")).Build()
			return err
		}},
		{Type: "Duration", Field: "comparator", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullDurationBuilder().Comparator(datatype.CodeOf("not-a-code")).Build()
			return err
		}},
		{Type: "Annotation", Field: "author", Want: validate.ErrChoiceType, Build: func() error {
			_, err := FullAnnotationBuilder().Author(datatype.BooleanOf(true)).Build()
			return err
		}},
		{Type: "Annotation", Field: "author", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullAnnotationBuilder().Author(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "Annotation", Field: "text", Want: validate.ErrRequired, Build: func() error {
			_, err := FullAnnotationBuilder().Text(nil).Build()
			return err
		}},
		{Type: "ContactPoint", Field: "system", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullContactPointBuilder().System(datatype.CodeOf("not-a-code")).Build()
			return err
		}},
		{Type: "ContactPoint", Field: "use", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullContactPointBuilder().Use(datatype.CodeOf("not-a-code")).Build()
			return err
		}},
		{Type: "ContactDetail", Field: "telecom", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullContactDetailBuilder().Telecom(nil).Build()
			return err
		}},
		{Type: "UsageContext", Field: "code", Want: validate.ErrRequired, Build: func() error {
			_, err := FullUsageContextBuilder().Code(nil).Build()
			return err
		}},
		{Type: "UsageContext", Field: "value", Want: validate.ErrRequired, Build: func() error {
			_, err := FullUsageContextBuilder().Value(nil).Build()
			return err
		}},
		{Type: "UsageContext", Field: "value", Want: validate.ErrChoiceType, Build: func() error {
			_, err := FullUsageContextBuilder().Value(datatype.BooleanOf(true)).Build()
			return err
		}},
		{Type: "UsageContext", Field: "value", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullUsageContextBuilder().Value(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "RelatedArtifact", Field: "type", Want: validate.ErrRequired, Build: func() error {
			_, err := FullRelatedArtifactBuilder().Type(nil).Build()
			return err
		}},
		{Type: "RelatedArtifact", Field: "type", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullRelatedArtifactBuilder().Type(datatype.CodeOf("not-a-code")).Build()
			return err
		}},
		{Type: "ParameterDefinition", Field: "use", Want: validate.ErrRequired, Build: func() error {
			_, err := FullParameterDefinitionBuilder().Use(nil).Build()
			return err
		}},
		{Type: "ParameterDefinition", Field: "use", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullParameterDefinitionBuilder().Use(datatype.CodeOf("not-a-code")).Build()
			return err
		}},
		{Type: "ParameterDefinition", Field: "type", Want: validate.ErrRequired, Build: func() error {
			_, err := FullParameterDefinitionBuilder().Type(nil).Build()
			return err
		}},
		{Type: "DataRequirement", Field: "type", Want: validate.ErrRequired, Build: func() error {
			_, err := FullDataRequirementBuilder().Type(nil).Build()
			return err
		}},
		{Type: "DataRequirement", Field: "profile", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullDataRequirementBuilder().Profile(nil).Build()
			return err
		}},
		{Type: "DataRequirement", Field: "subject", Want: validate.ErrChoiceType, Build: func() error {
			_, err := FullDataRequirementBuilder().Subject(datatype.BooleanOf(true)).Build()
			return err
		}},
		{Type: "DataRequirement", Field: "subject", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullDataRequirementBuilder().Subject(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "DataRequirement", Field: "mustSupport", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullDataRequirementBuilder().MustSupport(nil).Build()
			return err
		}},
		{Type: "DataRequirement", Field: "codeFilter", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullDataRequirementBuilder().CodeFilter(nil).Build()
			return err
		}},
		{Type: "DataRequirement", Field: "dateFilter", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullDataRequirementBuilder().DateFilter(nil).Build()
			return err
		}},
		{Type: "DataRequirement", Field: "sort", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullDataRequirementBuilder().Sort(nil).Build()
			return err
		}},
		{Type: "DataRequirement.CodeFilter", Field: "code", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullDataRequirementCodeFilterBuilder().Code(nil).Build()
			return err
		}},
		{Type: "DataRequirement.DateFilter", Field: "value", Want: validate.ErrChoiceType, Build: func() error {
			_, err := FullDataRequirementDateFilterBuilder().Value(datatype.BooleanOf(true)).Build()
			return err
		}},
		{Type: "DataRequirement.Sort", Field: "path", Want: validate.ErrRequired, Build: func() error {
			_, err := FullDataRequirementSortBuilder().Path(nil).Build()
			return err
		}},
		{Type: "DataRequirement.Sort", Field: "direction", Want: validate.ErrRequired, Build: func() error {
			_, err := FullDataRequirementSortBuilder().Direction(nil).Build()
			return err
		}},
		{Type: "DataRequirement.Sort", Field: "direction", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullDataRequirementSortBuilder().Direction(datatype.CodeOf("not-a-code")).Build()
			return err
		}},
	}
}

// ResourceCases returns the construction failures of the resource types.
func ResourceCases() []Case {
	return []Case{
		{Type: "Communication", Field: "identifier", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCommunicationBuilder().Identifier(nil).Build()
			return err
		}},
		{Type: "Communication", Field: "instantiatesCanonical", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCommunicationBuilder().InstantiatesCanonical(nil).Build()
			return err
		}},
		{Type: "Communication", Field: "instantiatesUri", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCommunicationBuilder().InstantiatesURI(nil).Build()
			return err
		}},
		{Type: "Communication", Field: "basedOn", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCommunicationBuilder().BasedOn(nil).Build()
			return err
		}},
		{Type: "Communication", Field: "partOf", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCommunicationBuilder().PartOf(nil).Build()
			return err
		}},
		{Type: "Communication", Field: "inResponseTo", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCommunicationBuilder().InResponseTo(nil).Build()
			return err
		}},
		{Type: "Communication", Field: "inResponseTo", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullCommunicationBuilder().SetInResponseTo([]*datatype.Reference{datatype.ReferenceTo("Basic/1")}).Build()
			return err
		}},
		{Type: "Communication", Field: "status", Want: validate.ErrRequired, Build: func() error {
			_, err := FullCommunicationBuilder().Status(nil).Build()
			return err
		}},
		{Type: "Communication", Field: "status", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullCommunicationBuilder().Status(datatype.CodeOf("not-a-code")).Build()
			return err
		}},
		{Type: "Communication", Field: "category", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCommunicationBuilder().Category(nil).Build()
			return err
		}},
		{Type: "Communication", Field: "priority", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullCommunicationBuilder().Priority(datatype.CodeOf("not-a-code")).Build()
			return err
		}},
		{Type: "Communication", Field: "medium", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCommunicationBuilder().Medium(nil).Build()
			return err
		}},
		{Type: "Communication", Field: "subject", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullCommunicationBuilder().Subject(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "Communication", Field: "about", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCommunicationBuilder().About(nil).Build()
			return err
		}},
		{Type: "Communication", Field: "encounter", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullCommunicationBuilder().Encounter(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "Communication", Field: "recipient", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCommunicationBuilder().Recipient(nil).Build()
			return err
		}},
		{Type: "Communication", Field: "recipient", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullCommunicationBuilder().SetRecipient([]*datatype.Reference{datatype.ReferenceTo("Basic/1")}).Build()
			return err
		}},
		{Type: "Communication", Field: "sender", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullCommunicationBuilder().Sender(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "Communication", Field: "reasonCode", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCommunicationBuilder().ReasonCode(nil).Build()
			return err
		}},
		{Type: "Communication", Field: "reasonReference", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCommunicationBuilder().ReasonReference(nil).Build()
			return err
		}},
		{Type: "Communication", Field: "reasonReference", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullCommunicationBuilder().SetReasonReference([]*datatype.Reference{datatype.ReferenceTo("Basic/1")}).Build()
			return err
		}},
		{Type: "Communication", Field: "payload", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCommunicationBuilder().Payload(nil).Build()
			return err
		}},
		{Type: "Communication", Field: "note", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCommunicationBuilder().Note(nil).Build()
			return err
		}},
		{Type: "Communication.Payload", Field: "content", Want: validate.ErrRequired, Build: func() error {
			_, err := FullCommunicationPayloadBuilder().Content(nil).Build()
			return err
		}},
		{Type: "Communication.Payload", Field: "content", Want: validate.ErrChoiceType, Build: func() error {
			_, err := FullCommunicationPayloadBuilder().Content(datatype.BooleanOf(true)).Build()
			return err
		}},
		{Type: "Coverage", Field: "identifier", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCoverageBuilder().Identifier(nil).Build()
			return err
		}},
		{Type: "Coverage", Field: "status", Want: validate.ErrRequired, Build: func() error {
			_, err := FullCoverageBuilder().Status(nil).Build()
			return err
		}},
		{Type: "Coverage", Field: "status", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullCoverageBuilder().Status(datatype.CodeOf("not-a-code")).Build()
			return err
		}},
		{Type: "Coverage", Field: "policyHolder", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullCoverageBuilder().PolicyHolder(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "Coverage", Field: "subscriber", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullCoverageBuilder().Subscriber(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "Coverage", Field: "beneficiary", Want: validate.ErrRequired, Build: func() error {
			_, err := FullCoverageBuilder().Beneficiary(nil).Build()
			return err
		}},
		{Type: "Coverage", Field: "beneficiary", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullCoverageBuilder().Beneficiary(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "Coverage", Field: "payor", Want: validate.ErrEmpty, Build: func() error {
			_, err := FullCoverageBuilder().SetPayor(nil).Build()
			return err
		}},
		{Type: "Coverage", Field: "payor", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCoverageBuilder().Payor(nil).Build()
			return err
		}},
		{Type: "Coverage", Field: "payor", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullCoverageBuilder().SetPayor([]*datatype.Reference{datatype.ReferenceTo("Basic/1")}).Build()
			return err
		}},
		{Type: "Coverage", Field: "class", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCoverageBuilder().Class(nil).Build()
			return err
		}},
		{Type: "Coverage", Field: "costToBeneficiary", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCoverageBuilder().CostToBeneficiary(nil).Build()
			return err
		}},
		{Type: "Coverage", Field: "contract", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCoverageBuilder().Contract(nil).Build()
			return err
		}},
		{Type: "Coverage", Field: "contract", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullCoverageBuilder().SetContract([]*datatype.Reference{datatype.ReferenceTo("Basic/1")}).Build()
			return err
		}},
		{Type: "Coverage.Class", Field: "type", Want: validate.ErrRequired, Build: func() error {
			_, err := FullCoverageClassBuilder().Type(nil).Build()
			return err
		}},
		{Type: "Coverage.Class", Field: "value", Want: validate.ErrRequired, Build: func() error {
			_, err := FullCoverageClassBuilder().Value(nil).Build()
			return err
		}},
		{Type: "Coverage.CostToBeneficiary", Field: "value", Want: validate.ErrRequired, Build: func() error {
			_, err := FullCoverageCostToBeneficiaryBuilder().Value(nil).Build()
			return err
		}},
		{Type: "Coverage.CostToBeneficiary", Field: "value", Want: validate.ErrChoiceType, Build: func() error {
			_, err := FullCoverageCostToBeneficiaryBuilder().Value(datatype.BooleanOf(true)).Build()
			return err
		}},
		{Type: "Coverage.CostToBeneficiary", Field: "exception", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullCoverageCostToBeneficiaryBuilder().Exception(nil).Build()
			return err
		}},
		{Type: "Coverage.CostToBeneficiary.Exception", Field: "type", Want: validate.ErrRequired, Build: func() error {
			_, err := FullCoverageCostToBeneficiaryExceptionBuilder().Type(nil).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation", Field: "identifier", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullImmunizationRecommendationBuilder().Identifier(nil).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation", Field: "patient", Want: validate.ErrRequired, Build: func() error {
			_, err := FullImmunizationRecommendationBuilder().Patient(nil).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation", Field: "patient", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullImmunizationRecommendationBuilder().Patient(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation", Field: "date", Want: validate.ErrRequired, Build: func() error {
			_, err := FullImmunizationRecommendationBuilder().Date(nil).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation", Field: "authority", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullImmunizationRecommendationBuilder().Authority(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation", Field: "recommendation", Want: validate.ErrEmpty, Build: func() error {
			_, err := FullImmunizationRecommendationBuilder().SetRecommendation(nil).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation", Field: "recommendation", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullImmunizationRecommendationBuilder().Recommendation(nil).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation.Recommendation", Field: "vaccineCode", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullImmunizationRecommendationRecommendationBuilder().VaccineCode(nil).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation.Recommendation", Field: "contraindicatedVaccineCode", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullImmunizationRecommendationRecommendationBuilder().ContraindicatedVaccineCode(nil).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation.Recommendation", Field: "forecastStatus", Want: validate.ErrRequired, Build: func() error {
			_, err := FullImmunizationRecommendationRecommendationBuilder().ForecastStatus(nil).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation.Recommendation", Field: "forecastReason", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullImmunizationRecommendationRecommendationBuilder().ForecastReason(nil).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation.Recommendation", Field: "dateCriterion", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullImmunizationRecommendationRecommendationBuilder().DateCriterion(nil).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation.Recommendation", Field: "doseNumber", Want: validate.ErrChoiceType, Build: func() error {
			_, err := FullImmunizationRecommendationRecommendationBuilder().DoseNumber(datatype.BooleanOf(true)).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation.Recommendation", Field: "seriesDoses", Want: validate.ErrChoiceType, Build: func() error {
			_, err := FullImmunizationRecommendationRecommendationBuilder().SeriesDoses(datatype.BooleanOf(true)).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation.Recommendation", Field: "supportingImmunization", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullImmunizationRecommendationRecommendationBuilder().SupportingImmunization(nil).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation.Recommendation", Field: "supportingImmunization", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullImmunizationRecommendationRecommendationBuilder().SetSupportingImmunization([]*datatype.Reference{datatype.ReferenceTo("Basic/1")}).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation.Recommendation", Field: "supportingPatientInformation", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullImmunizationRecommendationRecommendationBuilder().SupportingPatientInformation(nil).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation.Recommendation.DateCriterion", Field: "code", Want: validate.ErrRequired, Build: func() error {
			_, err := FullImmunizationRecommendationRecommendationDateCriterionBuilder().Code(nil).Build()
			return err
		}},
		{Type: "ImmunizationRecommendation.Recommendation.DateCriterion", Field: "value", Want: validate.ErrRequired, Build: func() error {
			_, err := FullImmunizationRecommendationRecommendationDateCriterionBuilder().Value(nil).Build()
			return err
		}},
		{Type: "Library", Field: "identifier", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullLibraryBuilder().Identifier(nil).Build()
			return err
		}},
		{Type: "Library", Field: "status", Want: validate.ErrRequired, Build: func() error {
			_, err := FullLibraryBuilder().Status(nil).Build()
			return err
		}},
		{Type: "Library", Field: "status", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullLibraryBuilder().Status(datatype.CodeOf("not-a-code")).Build()
			return err
		}},
		{Type: "Library", Field: "type", Want: validate.ErrRequired, Build: func() error {
			_, err := FullLibraryBuilder().Type(nil).Build()
			return err
		}},
		{Type: "Library", Field: "subject", Want: validate.ErrChoiceType, Build: func() error {
			_, err := FullLibraryBuilder().Subject(datatype.BooleanOf(true)).Build()
			return err
		}},
		{Type: "Library", Field: "subject", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullLibraryBuilder().Subject(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "Library", Field: "contact", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullLibraryBuilder().Contact(nil).Build()
			return err
		}},
		{Type: "Library", Field: "useContext", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullLibraryBuilder().UseContext(nil).Build()
			return err
		}},
		{Type: "Library", Field: "jurisdiction", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullLibraryBuilder().Jurisdiction(nil).Build()
			return err
		}},
		{Type: "Library", Field: "topic", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullLibraryBuilder().Topic(nil).Build()
			return err
		}},
		{Type: "Library", Field: "author", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullLibraryBuilder().Author(nil).Build()
			return err
		}},
		{Type: "Library", Field: "editor", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullLibraryBuilder().Editor(nil).Build()
			return err
		}},
		{Type: "Library", Field: "reviewer", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullLibraryBuilder().Reviewer(nil).Build()
			return err
		}},
		{Type: "Library", Field: "endorser", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullLibraryBuilder().Endorser(nil).Build()
			return err
		}},
		{Type: "Library", Field: "relatedArtifact", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullLibraryBuilder().RelatedArtifact(nil).Build()
			return err
		}},
		{Type: "Library", Field: "parameter", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullLibraryBuilder().Parameter(nil).Build()
			return err
		}},
		{Type: "Library", Field: "dataRequirement", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullLibraryBuilder().DataRequirement(nil).Build()
			return err
		}},
		{Type: "Library", Field: "content", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullLibraryBuilder().Content(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "identifier", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Identifier(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "instantiates", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Instantiates(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "partOf", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().PartOf(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "partOf", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().SetPartOf([]*datatype.Reference{datatype.ReferenceTo("Basic/1")}).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "status", Want: validate.ErrRequired, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Status(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "status", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Status(datatype.CodeOf("not-a-code")).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "statusReason", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().StatusReason(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "medication", Want: validate.ErrRequired, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Medication(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "medication", Want: validate.ErrChoiceType, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Medication(datatype.BooleanOf(true)).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "medication", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Medication(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "subject", Want: validate.ErrRequired, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Subject(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "subject", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Subject(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "context", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Context(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "supportingInformation", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().SupportingInformation(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "effective", Want: validate.ErrRequired, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Effective(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "effective", Want: validate.ErrChoiceType, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Effective(datatype.BooleanOf(true)).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "performer", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Performer(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "reasonCode", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().ReasonCode(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "reasonReference", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().ReasonReference(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "reasonReference", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().SetReasonReference([]*datatype.Reference{datatype.ReferenceTo("Basic/1")}).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "request", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Request(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "device", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Device(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "device", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().SetDevice([]*datatype.Reference{datatype.ReferenceTo("Basic/1")}).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "note", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().Note(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "eventHistory", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().EventHistory(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration", Field: "eventHistory", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullMedicationAdministrationBuilder().SetEventHistory([]*datatype.Reference{datatype.ReferenceTo("Basic/1")}).Build()
			return err
		}},
		{Type: "MedicationAdministration.Performer", Field: "actor", Want: validate.ErrRequired, Build: func() error {
			_, err := FullMedicationAdministrationPerformerBuilder().Actor(nil).Build()
			return err
		}},
		{Type: "MedicationAdministration.Performer", Field: "actor", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullMedicationAdministrationPerformerBuilder().Actor(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "MedicationAdministration.Dosage", Field: "rate", Want: validate.ErrChoiceType, Build: func() error {
			_, err := FullMedicationAdministrationDosageBuilder().Rate(datatype.BooleanOf(true)).Build()
			return err
		}},
		{Type: "MedicinalProductAuthorization", Field: "identifier", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicinalProductAuthorizationBuilder().Identifier(nil).Build()
			return err
		}},
		{Type: "MedicinalProductAuthorization", Field: "subject", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullMedicinalProductAuthorizationBuilder().Subject(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "MedicinalProductAuthorization", Field: "country", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicinalProductAuthorizationBuilder().Country(nil).Build()
			return err
		}},
		{Type: "MedicinalProductAuthorization", Field: "jurisdiction", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicinalProductAuthorizationBuilder().Jurisdiction(nil).Build()
			return err
		}},
		{Type: "MedicinalProductAuthorization", Field: "jurisdictionalAuthorization", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicinalProductAuthorizationBuilder().JurisdictionalAuthorization(nil).Build()
			return err
		}},
		{Type: "MedicinalProductAuthorization", Field: "holder", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullMedicinalProductAuthorizationBuilder().Holder(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "MedicinalProductAuthorization", Field: "regulator", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullMedicinalProductAuthorizationBuilder().Regulator(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "MedicinalProductAuthorization.JurisdictionalAuthorization", Field: "identifier", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicinalProductAuthorizationJurisdictionalAuthorizationBuilder().Identifier(nil).Build()
			return err
		}},
		{Type: "MedicinalProductAuthorization.JurisdictionalAuthorization", Field: "jurisdiction", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicinalProductAuthorizationJurisdictionalAuthorizationBuilder().Jurisdiction(nil).Build()
			return err
		}},
		{Type: "MedicinalProductAuthorization.Procedure", Field: "type", Want: validate.ErrRequired, Build: func() error {
			_, err := FullMedicinalProductAuthorizationProcedureBuilder().Type(nil).Build()
			return err
		}},
		{Type: "MedicinalProductAuthorization.Procedure", Field: "date", Want: validate.ErrChoiceType, Build: func() error {
			_, err := FullMedicinalProductAuthorizationProcedureBuilder().Date(datatype.BooleanOf(true)).Build()
			return err
		}},
		{Type: "MedicinalProductAuthorization.Procedure", Field: "application", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullMedicinalProductAuthorizationProcedureBuilder().Application(nil).Build()
			return err
		}},
		{Type: "PractitionerRole", Field: "identifier", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullPractitionerRoleBuilder().Identifier(nil).Build()
			return err
		}},
		{Type: "PractitionerRole", Field: "practitioner", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullPractitionerRoleBuilder().Practitioner(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "PractitionerRole", Field: "organization", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullPractitionerRoleBuilder().Organization(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
		{Type: "PractitionerRole", Field: "code", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullPractitionerRoleBuilder().Code(nil).Build()
			return err
		}},
		{Type: "PractitionerRole", Field: "specialty", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullPractitionerRoleBuilder().Specialty(nil).Build()
			return err
		}},
		{Type: "PractitionerRole", Field: "location", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullPractitionerRoleBuilder().Location(nil).Build()
			return err
		}},
		{Type: "PractitionerRole", Field: "location", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullPractitionerRoleBuilder().SetLocation([]*datatype.Reference{datatype.ReferenceTo("Basic/1")}).Build()
			return err
		}},
		{Type: "PractitionerRole", Field: "healthcareService", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullPractitionerRoleBuilder().HealthcareService(nil).Build()
			return err
		}},
		{Type: "PractitionerRole", Field: "healthcareService", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullPractitionerRoleBuilder().SetHealthcareService([]*datatype.Reference{datatype.ReferenceTo("Basic/1")}).Build()
			return err
		}},
		{Type: "PractitionerRole", Field: "telecom", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullPractitionerRoleBuilder().Telecom(nil).Build()
			return err
		}},
		{Type: "PractitionerRole", Field: "availableTime", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullPractitionerRoleBuilder().AvailableTime(nil).Build()
			return err
		}},
		{Type: "PractitionerRole", Field: "notAvailable", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullPractitionerRoleBuilder().NotAvailable(nil).Build()
			return err
		}},
		{Type: "PractitionerRole", Field: "endpoint", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullPractitionerRoleBuilder().Endpoint(nil).Build()
			return err
		}},
		{Type: "PractitionerRole", Field: "endpoint", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullPractitionerRoleBuilder().SetEndpoint([]*datatype.Reference{datatype.ReferenceTo("Basic/1")}).Build()
			return err
		}},
		{Type: "PractitionerRole.AvailableTime", Field: "daysOfWeek", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullPractitionerRoleAvailableTimeBuilder().DaysOfWeek(nil).Build()
			return err
		}},
		{Type: "PractitionerRole.AvailableTime", Field: "daysOfWeek", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullPractitionerRoleAvailableTimeBuilder().SetDaysOfWeek([]*datatype.Code{datatype.CodeOf("not-a-code")}).Build()
			return err
		}},
		{Type: "PractitionerRole.NotAvailable", Field: "description", Want: validate.ErrRequired, Build: func() error {
			_, err := FullPractitionerRoleNotAvailableBuilder().Description(nil).Build()
			return err
		}},
		{Type: "Substance", Field: "identifier", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullSubstanceBuilder().Identifier(nil).Build()
			return err
		}},
		{Type: "Substance", Field: "status", Want: validate.ErrInvalidCode, Build: func() error {
			_, err := FullSubstanceBuilder().Status(datatype.CodeOf("not-a-code")).Build()
			return err
		}},
		{Type: "Substance", Field: "category", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullSubstanceBuilder().Category(nil).Build()
			return err
		}},
		{Type: "Substance", Field: "code", Want: validate.ErrRequired, Build: func() error {
			_, err := FullSubstanceBuilder().Code(nil).Build()
			return err
		}},
		{Type: "Substance", Field: "instance", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullSubstanceBuilder().Instance(nil).Build()
			return err
		}},
		{Type: "Substance", Field: "ingredient", Want: validate.ErrNilElement, Build: func() error {
			_, err := FullSubstanceBuilder().Ingredient(nil).Build()
			return err
		}},
		{Type: "Substance.Ingredient", Field: "substance", Want: validate.ErrRequired, Build: func() error {
			_, err := FullSubstanceIngredientBuilder().Substance(nil).Build()
			return err
		}},
		{Type: "Substance.Ingredient", Field: "substance", Want: validate.ErrChoiceType, Build: func() error {
			_, err := FullSubstanceIngredientBuilder().Substance(datatype.BooleanOf(true)).Build()
			return err
		}},
		{Type: "Substance.Ingredient", Field: "substance", Want: validate.ErrReferenceType, Build: func() error {
			_, err := FullSubstanceIngredientBuilder().Substance(datatype.ReferenceTo("Basic/1")).Build()
			return err
		}},
	}
}
