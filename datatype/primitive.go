package datatype

import (
	"bytes"
	"encoding/base64"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gofhir/model/internal/hashcode"
)

// Primitive is implemented by the primitive data types.
type Primitive interface {
	Element

	// HasValue reports whether a value is present. A primitive may carry
	// only an id and extensions.
	HasValue() bool

	// ValueString returns the lexical form of the value, or "" when absent.
	ValueString() string
}

// Lexical patterns of the R4 primitive types, as published in the regex
// extension of each type's value element.
var primitivePatterns = map[string]string{
	"code":     `[^\s]+(\s[^\s]+)*`,
	"id":       `[A-Za-z0-9\-\.]{1,64}`,
	"date":     `([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)(-(0[1-9]|1[0-2])(-(0[1-9]|[1-2][0-9]|3[0-1]))?)?`,
	"dateTime": `([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)(-(0[1-9]|1[0-2])(-(0[1-9]|[1-2][0-9]|3[0-1])(T([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]+)?(Z|(\+|-)((0[0-9]|1[0-3]):[0-5][0-9]|14:00)))?)?)?`,
	"instant":  `([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)-(0[1-9]|1[0-2])-(0[1-9]|[1-2][0-9]|3[0-1])T([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]+)?(Z|(\+|-)((0[0-9]|1[0-3]):[0-5][0-9]|14:00))`,
	"time":     `([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]+)?`,
}

var primitiveRegex = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(primitivePatterns))
	for name, pattern := range primitivePatterns {
		// The regex must match the entire string
		m[name] = regexp.MustCompile("^" + pattern + "$")
	}
	return m
}()

func matchPattern(typ, value string) string {
	if primitiveRegex[typ].MatchString(value) {
		return ""
	}
	return "does not match the " + typ + " format"
}

// ValidID reports whether s is a valid resource or element id.
func ValidID(s string) bool {
	return primitiveRegex["id"].MatchString(s)
}

func checkBoolean(bool) string { return "" }

func checkInteger(int32) string { return "" }

func checkPositiveInt(v int32) string {
	if v <= 0 {
		return "must be greater than zero"
	}
	return ""
}

func checkUnsignedInt(v int32) string {
	if v < 0 {
		return "must not be negative"
	}
	return ""
}

func checkDecimal(decimal.Decimal) string { return "" }

func checkString(v string) string {
	if v == "" {
		return "must not be empty"
	}
	return ""
}

func checkMarkdown(v string) string { return checkString(v) }

func checkCode(v string) string { return matchPattern("code", v) }

func checkID(v string) string { return matchPattern("id", v) }

func checkURI(v string) string {
	if v == "" {
		return "must not be empty"
	}
	if strings.IndexFunc(v, unicode.IsSpace) >= 0 {
		return "must not contain whitespace"
	}
	return ""
}

func checkURL(v string) string { return checkURI(v) }

func checkCanonical(v string) string { return checkURI(v) }

func checkUUID(v string) string {
	rest, ok := strings.CutPrefix(v, "urn:uuid:")
	if !ok {
		return "must start with urn:uuid:"
	}
	if _, err := uuid.Parse(rest); err != nil || len(rest) != 36 {
		return "is not an RFC 4122 uuid"
	}
	return ""
}

func checkBase64Binary([]byte) string { return "" }

func checkDate(v string) string { return matchPattern("date", v) }

func checkDateTime(v string) string { return matchPattern("dateTime", v) }

func checkTime(v string) string { return matchPattern("time", v) }

func checkInstant(v string) string { return matchPattern("instant", v) }

func checkXHTML(v string) string {
	if !strings.HasPrefix(strings.TrimSpace(v), "<div") {
		return "must be a single <div> element"
	}
	return ""
}

// truncateValue truncates a value for display in error messages. The cut
// falls on a rune boundary so the result stays valid UTF-8.
func truncateValue(value string) string {
	if len(value) <= 50 {
		return value
	}
	cut := 47
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut] + "..."
}

func formatBool(v bool) string { return strconv.FormatBool(v) }

func formatInt(v int32) string { return strconv.FormatInt(int64(v), 10) }

func formatBytes(v []byte) string { return base64.StdEncoding.EncodeToString(v) }

// formatDecimal keeps trailing zeros: 1.50 stays "1.50".
func formatDecimal(v decimal.Decimal) string {
	if exp := v.Exponent(); exp < 0 {
		return v.StringFixed(-exp)
	}
	return v.String()
}

// equalDecimal compares value and precision; 1.5 and 1.50 differ.
func equalDecimal(a, b decimal.Decimal) bool {
	return a.Exponent() == b.Exponent() && a.Equal(b)
}

func hashDecimal(h *hashcode.Hasher, v decimal.Decimal) {
	h.String(v.Coefficient().String())
	h.Int64(int64(v.Exponent()))
}

func equalBytes(a, b []byte) bool { return bytes.Equal(a, b) }
