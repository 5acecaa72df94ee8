package validate

import (
	"errors"
	"slices"
	"strconv"
	"time"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/pkg/logger"
)

// Run runs checks for typ and returns the first error that o does not
// switch off. Code errors are skipped when o.CheckCodes is false and
// reference target errors when o.CheckReferenceTypes is false; every other
// error is returned regardless of o. A nil o means the defaults.
func Run(typ string, o *fhirmodel.Options, checks func() []error) error {
	o = o.OrDefault()

	start := time.Now()
	err := firstEnabled(o, checks())
	if o.Metrics != nil {
		o.Metrics.RecordBuild(typ, time.Since(start), err != nil)
	}
	if o.TraceBuilds {
		if err != nil {
			logger.Debug("build %s rejected: %v", typ, err)
		} else {
			logger.Debug("build %s ok", typ)
		}
	}
	return err
}

func firstEnabled(o *fhirmodel.Options, errs []error) error {
	for _, err := range errs {
		switch {
		case err == nil:
		case !o.CheckCodes && errors.Is(err, ErrInvalidCode):
		case !o.CheckReferenceTypes && errors.Is(err, ErrReferenceType):
		default:
			return err
		}
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Required fails when v is the zero value (a nil pointer or interface).
func Required[T comparable](typ, field string, v T) error {
	var zero T
	if v == zero {
		return newError(DiagRequired).on(typ, field).build()
	}
	return nil
}

// RequiredString fails on an empty raw string value.
func RequiredString(typ, field, v string) error {
	if v == "" {
		return newError(DiagRequired).on(typ, field).build()
	}
	return nil
}

// NotEmpty fails when a required list has no elements.
func NotEmpty[T any](typ, field string, v []T) error {
	if len(v) == 0 {
		return newError(DiagEmpty).on(typ, field).build()
	}
	return nil
}

// Elements fails when a list holds a nil element.
func Elements[T comparable](typ, field string, v []T) error {
	var zero T
	for i, item := range v {
		if item == zero {
			return newError(DiagNilElement).on(typ, field).with("index", i).build()
		}
	}
	return nil
}

// Typed is implemented by every value stored in a choice element.
type Typed interface {
	TypeName() string
}

// quantityProfiles maps constrained Quantity types to Quantity. A choice
// that permits Quantity accepts them too.
var quantityProfiles = map[string]string{
	"SimpleQuantity": "Quantity",
	"Duration":       "Quantity",
}

// Choice fails when v's type is not one of allowed. A nil v passes; pair it
// with Required for mandatory choices.
func Choice(typ, field string, v Typed, allowed ...string) error {
	if v == nil {
		return nil
	}
	actual := v.TypeName()
	if slices.Contains(allowed, actual) {
		return nil
	}
	if base, ok := quantityProfiles[actual]; ok && slices.Contains(allowed, base) {
		return nil
	}
	return newError(DiagChoiceType).
		on(typ, field).
		with("actual", actual).
		allowed(allowed...).
		build()
}

// InvalidValue reports a malformed primitive value.
func InvalidValue(typ, value, reason string) *Error {
	return InvalidField(typ, "value", value, reason)
}

// InvalidField reports a malformed raw value held directly by a type, such
// as a resource id or an extension url.
func InvalidField(typ, field, value, reason string) *Error {
	return newError(DiagInvalidValue).
		on(typ, field).
		with("value", value).
		with("reason", reason).
		build()
}

// NoChildren reports an element with neither a value nor children.
func NoChildren(typ string) *Error {
	return newError(DiagNoChildren).on(typ, "").build()
}

// HasChildren fails with NoChildren unless ok.
func HasChildren(typ string, ok bool) error {
	if ok {
		return nil
	}
	return NoChildren(typ)
}

// ExtensionContent reports an extension holding both a value and nested
// extensions, or neither.
func ExtensionContent(typ string) *Error {
	return newError(DiagExtensionContent).on(typ, "").build()
}

// ValueSet is a required code binding.
type ValueSet struct {
	Name  string
	URL   string
	Codes []string
}

// Contains reports whether code is a member of the value set.
func (vs ValueSet) Contains(code string) bool {
	return slices.Contains(vs.Codes, code)
}

// InValueSet fails with ErrInvalidCode when code is not in vs. Empty codes
// pass. Run drops the error for builds using fhirmodel.WithCodeChecks(false).
func InValueSet(typ, field, code string, vs ValueSet) error {
	if code == "" || vs.Contains(code) {
		return nil
	}
	return newError(DiagInvalidCode).
		on(typ, field).
		with("code", code).
		with("valueSet", vs.Name).
		allowed(vs.Codes...).
		build()
}

// ReferenceTarget fails with ErrReferenceType when target is not one of
// allowed. An empty target or an empty allowed set passes. Run drops the
// error for builds using fhirmodel.WithReferenceTypeChecks(false).
func ReferenceTarget(typ, field, target string, allowed ...string) error {
	if target == "" || len(allowed) == 0 {
		return nil
	}
	if slices.Contains(allowed, target) || slices.Contains(allowed, "Resource") {
		return nil
	}
	return newError(DiagReferenceType).
		on(typ, field).
		with("target", target).
		allowed(allowed...).
		build()
}

// JoinField builds an indexed field name such as "payor[2]".
func JoinField(field string, index int) string {
	return field + "[" + strconv.Itoa(index) + "]"
}
