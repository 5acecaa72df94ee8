package datatype

import (
	"strings"
	"unicode"

	"github.com/gofhir/model/pkg/validate"
)

// validateContent enforces ext-1: an extension has either a value or nested
// extensions. The url must be a uri.
func (x *Extension) validateContent() error {
	if x.url != "" && strings.IndexFunc(x.url, unicode.IsSpace) >= 0 {
		return validate.InvalidField("Extension", "url", truncateValue(x.url), "must not contain whitespace")
	}
	if (x.value != nil) == (len(x.extension) > 0) {
		return validate.ExtensionContent("Extension")
	}
	return nil
}

// ExtensionOf returns an extension with url and value. It panics if url is
// empty or value is nil.
func ExtensionOf(url string, value Element) *Extension {
	return Must(NewExtensionBuilder().URL(url).Value(value).Build())
}

// ExtensionByURL returns the first extension in list with the given url.
func ExtensionByURL(list []*Extension, url string) (*Extension, bool) {
	for _, e := range list {
		if e.url == url {
			return e, true
		}
	}
	return nil, false
}
