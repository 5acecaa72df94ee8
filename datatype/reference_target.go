package datatype

import (
	"strings"

	"github.com/gofhir/model/pkg/validate"
)

// ReferenceTo returns a Reference with a literal reference such as
// "Patient/123". It panics if ref is not a valid string.
func ReferenceTo(ref string) *Reference {
	return Must(NewReferenceBuilder().Reference(StringOf(ref)).Build())
}

// TargetType returns the resource type r points at. The explicit type wins;
// otherwise the type is read from a relative or absolute literal reference.
// Contained ("#id") and urn references have no readable type and yield "".
func (x *Reference) TargetType() string {
	if x == nil {
		return ""
	}
	if t := x.typ.Value(); t != "" {
		if i := strings.LastIndexByte(t, '/'); i >= 0 {
			return t[i+1:]
		}
		return t
	}
	ref := x.reference.Value()
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "urn:") {
		return ""
	}
	if i := strings.Index(ref, "/_history/"); i >= 0 {
		ref = ref[:i]
	}
	segs := strings.Split(strings.TrimSuffix(ref, "/"), "/")
	if len(segs) < 2 {
		return ""
	}
	typ := segs[len(segs)-2]
	if typ == "" || typ[0] < 'A' || typ[0] > 'Z' {
		return ""
	}
	return typ
}

// CheckReference rejects a reference whose target type is not allowed.
func CheckReference(typ, field string, r *Reference, allowed ...string) error {
	if r == nil {
		return nil
	}
	return validate.ReferenceTarget(typ, field, r.TargetType(), allowed...)
}

// CheckReferences applies CheckReference to every element of a list.
func CheckReferences(typ, field string, refs []*Reference, allowed ...string) error {
	for _, r := range refs {
		if err := CheckReference(typ, field, r, allowed...); err != nil {
			return err
		}
	}
	return nil
}

// CheckReferenceChoice checks a choice value when it holds a Reference.
func CheckReferenceChoice(typ, field string, v Element, allowed ...string) error {
	if r, ok := v.(*Reference); ok {
		return CheckReference(typ, field, r, allowed...)
	}
	return nil
}
