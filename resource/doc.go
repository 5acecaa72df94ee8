// Package resource implements the FHIR R4 resources Communication,
// Coverage, ImmunizationRecommendation, Library, MedicationAdministration,
// MedicinalProductAuthorization, PractitionerRole and Substance, together
// with their backbone elements.
//
// Resources own their backbone elements. Links between resources are
// datatype.Reference values; Build checks that a literal reference points
// at one of the resource types the element permits.
//
//	coverage, err := resource.NewCoverageBuilder().
//	    Status(datatype.CodeOf(resource.CoverageStatusActive)).
//	    Beneficiary(datatype.ReferenceTo("Patient/123")).
//	    Payor(datatype.ReferenceTo("Organization/456")).
//	    Build()
package resource
