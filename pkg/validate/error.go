// Package validate reports construction failures of model types.
//
// Every Build method returns a *Error naming the type and field that failed.
// The error unwraps to one of the sentinel errors below so callers can test
// the category with errors.Is.
package validate

import (
	"errors"
	"strings"
)

// Code classifies a construction failure, aligned with FHIR IssueType.
type Code string

// Code constants.
const (
	CodeRequired    Code = "required"
	CodeStructure   Code = "structure"
	CodeValue       Code = "value"
	CodeCodeInvalid Code = "code-invalid"
	CodeInvariant   Code = "invariant"
)

// Sentinel errors.
var (
	ErrRequired      = errors.New("required element missing")
	ErrEmpty         = errors.New("required list empty")
	ErrNilElement    = errors.New("nil list element")
	ErrChoiceType    = errors.New("type not permitted for choice element")
	ErrInvalidValue  = errors.New("invalid value")
	ErrInvalidCode   = errors.New("code not in required value set")
	ErrReferenceType = errors.New("reference target type not permitted")
	ErrNoChildren    = errors.New("element has no value or children")
	ErrInvariant     = errors.New("invariant violated")
)

// Error describes the first violation found while building a type.
type Error struct {
	// Type is the FHIR type being built, e.g. "Coverage" or "Coverage.Class".
	Type string

	// Field is the element name, empty for whole-element rules.
	Field string

	// ID identifies the diagnostic template.
	ID DiagnosticID

	// Code classifies the failure.
	Code Code

	// Diagnostics is the human-readable message.
	Diagnostics string

	// Allowed lists the permitted alternatives for choice, code and
	// reference violations.
	Allowed []string

	err error
}

// Error implements error.
func (e *Error) Error() string {
	return e.Path() + ": " + e.Diagnostics
}

// Path returns Type.Field, or Type when the error is not tied to a field.
func (e *Error) Path() string {
	if e.Field == "" {
		return e.Type
	}
	return e.Type + "." + e.Field
}

// Unwrap returns the sentinel error for the failure category.
func (e *Error) Unwrap() error {
	return e.err
}

// As extracts a *Error from err.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// builder provides a fluent API for building errors from templates.
type builder struct {
	e      Error
	params map[string]any
}

func newError(id DiagnosticID) *builder {
	tmpl := diagnosticTemplates[id]
	return &builder{
		e: Error{
			ID:   id,
			Code: tmpl.Code,
			err:  tmpl.Err,
		},
		params: make(map[string]any, 4),
	}
}

func (b *builder) on(typ, field string) *builder {
	b.e.Type = typ
	b.e.Field = field
	b.params["type"] = typ
	b.params["field"] = field
	return b
}

func (b *builder) with(key string, value any) *builder {
	b.params[key] = value
	return b
}

func (b *builder) allowed(values ...string) *builder {
	b.e.Allowed = values
	b.params["allowed"] = strings.Join(values, " | ")
	return b
}

func (b *builder) build() *Error {
	b.e.Diagnostics = FormatDiagnostic(b.e.ID, b.params)
	return &b.e
}
