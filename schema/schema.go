// Package schema describes the structure of every type in the model: field
// order, cardinality, permitted choice types, reference targets and code
// bindings. Builders and traversal follow the same declarations.
package schema

import (
	"slices"
	"sort"
)

// Kind mirrors StructureDefinition.kind, with backbone elements split out.
type Kind string

// Kinds.
const (
	KindPrimitive Kind = "primitive-type"
	KindComplex   Kind = "complex-type"
	KindBackbone  Kind = "backbone-element"
	KindResource  Kind = "resource"
	KindAbstract  Kind = "abstract"
)

// Field describes one element of a type.
type Field struct {
	// Name is the element name without the [x] suffix.
	Name string

	// Types lists the permitted types. Choice elements list several.
	Types []string

	// Min is 0 or 1.
	Min int

	// Max is "1" or "*".
	Max string

	// Choice is set for value[x] style elements.
	Choice bool

	// Targets lists the resource types a Reference may point to.
	Targets []string

	// Binding names the required value set, if any.
	Binding string
}

// Required reports whether the element must be present.
func (f Field) Required() bool { return f.Min > 0 }

// Repeating reports whether the element is a list.
func (f Field) Repeating() bool { return f.Max == "*" }

// ElementName returns the name as written in FHIR, e.g. "value[x]".
func (f Field) ElementName() string {
	if f.Choice {
		return f.Name + "[x]"
	}
	return f.Name
}

// Cardinality returns the cardinality in FHIR notation, e.g. "1..*".
func (f Field) Cardinality() string {
	if f.Min > 0 {
		return "1.." + f.Max
	}
	return "0.." + f.Max
}

// Allows reports whether typ is one of the permitted types.
func (f Field) Allows(typ string) bool {
	return slices.Contains(f.Types, typ)
}

// Type describes a data type, backbone element or resource.
type Type struct {
	// Name is the type name. Backbone elements are named after their
	// owner, e.g. "Coverage.Class".
	Name string

	// Path is the element path of a backbone element, e.g. "Coverage.class".
	// It equals Name for other types.
	Path string

	Kind Kind

	// Base is the type this one specializes, e.g. "DomainResource".
	Base string

	// Fields are the type's own elements in declaration order.
	Fields []Field
}

// Field returns the named element, searching base types too.
func (t *Type) Field(name string) (Field, bool) {
	for _, f := range AllFields(t.Name) {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Lookup returns the type with the given name.
func Lookup(name string) (*Type, bool) {
	t, ok := registry[name]
	return t, ok
}

// Types returns the names of all concrete types, sorted.
func Types() []string {
	return names(func(t *Type) bool { return t.Kind != KindAbstract })
}

// OfKind returns the names of all types of kind k, sorted.
func OfKind(k Kind) []string {
	return names(func(t *Type) bool { return t.Kind == k })
}

func names(keep func(*Type) bool) []string {
	out := make([]string, 0, len(registry))
	for name, t := range registry {
		if keep(t) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// AllFields returns the fields of name including inherited ones, base
// fields first. It returns nil for unknown types.
func AllFields(name string) []Field {
	t, ok := registry[name]
	if !ok {
		return nil
	}
	var out []Field
	if t.Base != "" {
		out = AllFields(t.Base)
	}
	return append(out, t.Fields...)
}

// FieldNames returns the names of AllFields(name).
func FieldNames(name string) []string {
	fields := AllFields(name)
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}
