package validate

import (
	"fmt"
	"strings"
)

// DiagnosticID identifies a specific diagnostic message.
type DiagnosticID string

// Diagnostic IDs.
const (
	DiagRequired         DiagnosticID = "REQUIRED"
	DiagEmpty            DiagnosticID = "REQUIRED_LIST_EMPTY"
	DiagNilElement       DiagnosticID = "LIST_NIL_ELEMENT"
	DiagChoiceType       DiagnosticID = "CHOICE_INVALID_TYPE"
	DiagInvalidValue     DiagnosticID = "TYPE_INVALID_VALUE"
	DiagInvalidCode      DiagnosticID = "BINDING_REQUIRED"
	DiagReferenceType    DiagnosticID = "REFERENCE_INVALID_TARGET"
	DiagNoChildren       DiagnosticID = "ELE_1"
	DiagExtensionContent DiagnosticID = "EXT_1"
)

// DiagnosticTemplate defines the structure for a diagnostic message.
type DiagnosticTemplate struct {
	ID       DiagnosticID
	Code     Code
	Err      error
	Template string
}

// Templates use {placeholder} syntax for variable substitution.
var diagnosticTemplates = map[DiagnosticID]DiagnosticTemplate{
	DiagRequired: {
		Code:     CodeRequired,
		Err:      ErrRequired,
		Template: "missing required element '{field}'",
	},
	DiagEmpty: {
		Code:     CodeRequired,
		Err:      ErrEmpty,
		Template: "'{field}' requires at least one element",
	},
	DiagNilElement: {
		Code:     CodeStructure,
		Err:      ErrNilElement,
		Template: "element {index} of '{field}' is nil",
	},
	DiagChoiceType: {
		Code:     CodeStructure,
		Err:      ErrChoiceType,
		Template: "type {actual} is not permitted for '{field}[x]' (allowed: {allowed})",
	},
	DiagInvalidValue: {
		Code:     CodeValue,
		Err:      ErrInvalidValue,
		Template: "invalid value '{value}': {reason}",
	},
	DiagInvalidCode: {
		Code:     CodeCodeInvalid,
		Err:      ErrInvalidCode,
		Template: "code '{code}' is not in value set {valueSet}",
	},
	DiagReferenceType: {
		Code:     CodeStructure,
		Err:      ErrReferenceType,
		Template: "reference to {target} is not permitted for '{field}' (allowed: {allowed})",
	},
	DiagNoChildren: {
		Code:     CodeInvariant,
		Err:      ErrNoChildren,
		Template: "{type} must have a value or children",
	},
	DiagExtensionContent: {
		Code:     CodeInvariant,
		Err:      ErrInvariant,
		Template: "extension must have either nested extensions or a value, not both",
	},
}

// FormatDiagnostic formats a diagnostic message using the template for id.
func FormatDiagnostic(id DiagnosticID, params map[string]any) string {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		return string(id)
	}
	return formatTemplate(tmpl.Template, params)
}

// GetDiagnosticTemplate returns the template for a diagnostic ID.
func GetDiagnosticTemplate(id DiagnosticID) (DiagnosticTemplate, bool) {
	tmpl, ok := diagnosticTemplates[id]
	if ok {
		tmpl.ID = id
	}
	return tmpl, ok
}

func formatTemplate(template string, params map[string]any) string {
	result := template
	for key, value := range params {
		result = strings.ReplaceAll(result, "{"+key+"}", fmt.Sprint(value))
	}
	return result
}
