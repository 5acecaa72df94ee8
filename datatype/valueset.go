package datatype

import "github.com/gofhir/model/pkg/validate"

// ValueSet is a required code binding.
type ValueSet = validate.ValueSet

// CheckCode rejects a code outside vs. A nil code or a code with only
// extensions passes.
func CheckCode(typ, field string, c *Code, vs ValueSet) error {
	if c == nil || !c.HasValue() {
		return nil
	}
	return validate.InValueSet(typ, field, c.Value(), vs)
}

// CheckCodes applies CheckCode to every element of a list.
func CheckCodes(typ, field string, codes []*Code, vs ValueSet) error {
	for _, c := range codes {
		if err := CheckCode(typ, field, c, vs); err != nil {
			return err
		}
	}
	return nil
}

// NarrativeStatus codes.
const (
	NarrativeStatusGenerated  = "generated"
	NarrativeStatusExtensions = "extensions"
	NarrativeStatusAdditional = "additional"
	NarrativeStatusEmpty      = "empty"
)

// NarrativeStatusValues is bound to Narrative.status.
var NarrativeStatusValues = ValueSet{
	Name: "NarrativeStatus",
	URL:  "http://hl7.org/fhir/ValueSet/narrative-status",
	Codes: []string{
		NarrativeStatusGenerated, NarrativeStatusExtensions,
		NarrativeStatusAdditional, NarrativeStatusEmpty,
	},
}

// IdentifierUse codes.
const (
	IdentifierUseUsual     = "usual"
	IdentifierUseOfficial  = "official"
	IdentifierUseTemp      = "temp"
	IdentifierUseSecondary = "secondary"
	IdentifierUseOld       = "old"
)

// IdentifierUseValues is bound to Identifier.use.
var IdentifierUseValues = ValueSet{
	Name: "IdentifierUse",
	URL:  "http://hl7.org/fhir/ValueSet/identifier-use",
	Codes: []string{
		IdentifierUseUsual, IdentifierUseOfficial, IdentifierUseTemp,
		IdentifierUseSecondary, IdentifierUseOld,
	},
}

// QuantityComparator codes.
const (
	QuantityComparatorLess           = "<"
	QuantityComparatorLessOrEqual    = "<="
	QuantityComparatorGreaterOrEqual = ">="
	QuantityComparatorGreater        = ">"
)

// QuantityComparatorValues is bound to Quantity.comparator.
var QuantityComparatorValues = ValueSet{
	Name: "QuantityComparator",
	URL:  "http://hl7.org/fhir/ValueSet/quantity-comparator",
	Codes: []string{
		QuantityComparatorLess, QuantityComparatorLessOrEqual,
		QuantityComparatorGreaterOrEqual, QuantityComparatorGreater,
	},
}

// ContactPointSystem codes.
const (
	ContactPointSystemPhone = "phone"
	ContactPointSystemFax   = "fax"
	ContactPointSystemEmail = "email"
	ContactPointSystemPager = "pager"
	ContactPointSystemURL   = "url"
	ContactPointSystemSMS   = "sms"
	ContactPointSystemOther = "other"
)

// ContactPointSystemValues is bound to ContactPoint.system.
var ContactPointSystemValues = ValueSet{
	Name: "ContactPointSystem",
	URL:  "http://hl7.org/fhir/ValueSet/contact-point-system",
	Codes: []string{
		ContactPointSystemPhone, ContactPointSystemFax, ContactPointSystemEmail,
		ContactPointSystemPager, ContactPointSystemURL, ContactPointSystemSMS,
		ContactPointSystemOther,
	},
}

// ContactPointUse codes.
const (
	ContactPointUseHome   = "home"
	ContactPointUseWork   = "work"
	ContactPointUseTemp   = "temp"
	ContactPointUseOld    = "old"
	ContactPointUseMobile = "mobile"
)

// ContactPointUseValues is bound to ContactPoint.use.
var ContactPointUseValues = ValueSet{
	Name: "ContactPointUse",
	URL:  "http://hl7.org/fhir/ValueSet/contact-point-use",
	Codes: []string{
		ContactPointUseHome, ContactPointUseWork, ContactPointUseTemp,
		ContactPointUseOld, ContactPointUseMobile,
	},
}

// RelatedArtifactType codes.
const (
	RelatedArtifactTypeDocumentation = "documentation"
	RelatedArtifactTypeJustification = "justification"
	RelatedArtifactTypeCitation      = "citation"
	RelatedArtifactTypePredecessor   = "predecessor"
	RelatedArtifactTypeSuccessor     = "successor"
	RelatedArtifactTypeDerivedFrom   = "derived-from"
	RelatedArtifactTypeDependsOn     = "depends-on"
	RelatedArtifactTypeComposedOf    = "composed-of"
)

// RelatedArtifactTypeValues is bound to RelatedArtifact.type.
var RelatedArtifactTypeValues = ValueSet{
	Name: "RelatedArtifactType",
	URL:  "http://hl7.org/fhir/ValueSet/related-artifact-type",
	Codes: []string{
		RelatedArtifactTypeDocumentation, RelatedArtifactTypeJustification,
		RelatedArtifactTypeCitation, RelatedArtifactTypePredecessor,
		RelatedArtifactTypeSuccessor, RelatedArtifactTypeDerivedFrom,
		RelatedArtifactTypeDependsOn, RelatedArtifactTypeComposedOf,
	},
}

// ParameterUse codes.
const (
	ParameterUseIn  = "in"
	ParameterUseOut = "out"
)

// ParameterUseValues is bound to ParameterDefinition.use.
var ParameterUseValues = ValueSet{
	Name:  "OperationParameterUse",
	URL:   "http://hl7.org/fhir/ValueSet/operation-parameter-use",
	Codes: []string{ParameterUseIn, ParameterUseOut},
}

// SortDirection codes.
const (
	SortDirectionAscending  = "ascending"
	SortDirectionDescending = "descending"
)

// SortDirectionValues is bound to DataRequirement.sort.direction.
var SortDirectionValues = ValueSet{
	Name:  "SortDirection",
	URL:   "http://hl7.org/fhir/ValueSet/sort-direction",
	Codes: []string{SortDirectionAscending, SortDirectionDescending},
}
