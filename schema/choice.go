package schema

import "strings"

// ChoiceResult is the outcome of resolving a JSON-style choice key such as
// "valueQuantity" against a type.
type ChoiceResult struct {
	// BaseName is the element name, e.g. "value".
	BaseName string

	// TypeName is the resolved type, e.g. "Quantity" or "string".
	TypeName string

	// ChoicePath is the [x] path, e.g. "UsageContext.value[x]".
	ChoicePath string

	Field Field
}

// ResolveChoice resolves key against the choice elements of typeName. It
// reports false when key is not a permitted variant of any choice element.
func ResolveChoice(typeName, key string) (ChoiceResult, bool) {
	for _, f := range AllFields(typeName) {
		if !f.Choice || !strings.HasPrefix(key, f.Name) || len(key) == len(f.Name) {
			continue
		}
		suffix := key[len(f.Name):]
		for _, t := range f.Types {
			if upperFirst(t) == suffix {
				return ChoiceResult{
					BaseName:   f.Name,
					TypeName:   t,
					ChoicePath: typeName + "." + f.Name + "[x]",
					Field:      f,
				}, true
			}
		}
	}
	return ChoiceResult{}, false
}

// ChoiceKey returns the JSON property name of a choice variant, e.g.
// ChoiceKey("value", "string") is "valueString".
func ChoiceKey(baseName, typeName string) string {
	return baseName + upperFirst(typeName)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
