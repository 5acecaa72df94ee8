package datatype

import "github.com/google/uuid"

// NewUUID returns a random urn:uuid value.
func NewUUID() *UUID {
	return UUIDOf("urn:uuid:" + uuid.NewString())
}

// CodingOf returns a Coding with system and code.
func CodingOf(system, code string) *Coding {
	return Must(NewCodingBuilder().
		System(URIOf(system)).
		Code(CodeOf(code)).
		Build())
}

// ConceptOf returns a CodeableConcept with a single coding.
func ConceptOf(system, code string) *CodeableConcept {
	return Must(NewCodeableConceptBuilder().
		Coding(CodingOf(system, code)).
		Build())
}

// TextConcept returns a CodeableConcept carrying only text.
func TextConcept(text string) *CodeableConcept {
	return Must(NewCodeableConceptBuilder().
		Text(StringOf(text)).
		Build())
}
