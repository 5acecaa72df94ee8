package convert

import (
	"fmt"
	"strings"

	"github.com/gofhir/fhir/r4"

	"github.com/gofhir/model/datatype"
)

// ValueSetFromR4 reads the codes of vs from its expansion, or from the
// concepts listed in compose.include when it has no expansion. Filters are
// not evaluated.
func ValueSetFromR4(vs *r4.ValueSet) (datatype.ValueSet, error) {
	if vs == nil || vs.Url == nil {
		return datatype.ValueSet{}, fmt.Errorf("valueset is nil or has no URL")
	}
	out := datatype.ValueSet{
		Name: nameFromURL(*vs.Url),
		URL:  *vs.Url,
	}
	seen := make(map[string]bool)
	add := func(code *string) {
		if code != nil && !seen[*code] {
			seen[*code] = true
			out.Codes = append(out.Codes, *code)
		}
	}

	if vs.Expansion != nil {
		var walk func([]r4.ValueSetExpansionContains)
		walk = func(contains []r4.ValueSetExpansionContains) {
			for i := range contains {
				add(contains[i].Code)
				walk(contains[i].Contains)
			}
		}
		walk(vs.Expansion.Contains)
		return out, nil
	}
	if vs.Compose != nil {
		for i := range vs.Compose.Include {
			for j := range vs.Compose.Include[i].Concept {
				add(vs.Compose.Include[i].Concept[j].Code)
			}
		}
	}
	return out, nil
}

// ValueSetToR4 returns vs as an expanded ValueSet. system is recorded on every
// expansion entry when it is not empty.
func ValueSetToR4(vs datatype.ValueSet, system string) *r4.ValueSet {
	url := vs.URL
	out := &r4.ValueSet{
		Url:       &url,
		Expansion: &r4.ValueSetExpansion{},
	}
	for _, code := range vs.Codes {
		entry := r4.ValueSetExpansionContains{Code: ptr(code)}
		if system != "" {
			entry.System = ptr(system)
		}
		out.Expansion.Contains = append(out.Expansion.Contains, entry)
	}
	return out
}

func nameFromURL(url string) string {
	if i := strings.LastIndexByte(url, '/'); i >= 0 {
		return url[i+1:]
	}
	return url
}
