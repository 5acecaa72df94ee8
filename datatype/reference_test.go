package datatype_test

import (
	"errors"
	"testing"

	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/pkg/validate"
)

func TestReferenceTargetType(t *testing.T) {
	tests := []struct {
		name string
		ref  *datatype.Reference
		want string
	}{
		{"relative", datatype.ReferenceTo("Patient/123"), "Patient"},
		{"absolute", datatype.ReferenceTo("http://example.org/fhir/Organization/1"), "Organization"},
		{"versioned", datatype.ReferenceTo("Practitioner/7/_history/2"), "Practitioner"},
		{"contained", datatype.ReferenceTo("#med1"), ""},
		{"urn", datatype.ReferenceTo("urn:uuid:3f2504e0-4f89-41d3-9a0c-0305e82c3301"), ""},
		{"bare id", datatype.ReferenceTo("123"), ""},
		{"explicit type", datatype.Must(datatype.NewReferenceBuilder().
			Type(datatype.URIOf("Location")).
			Display(datatype.StringOf("Ward 3")).
			Build()), "Location"},
		{"explicit type url", datatype.Must(datatype.NewReferenceBuilder().
			Reference(datatype.StringOf("#x")).
			Type(datatype.URIOf("http://hl7.org/fhir/StructureDefinition/Device")).
			Build()), "Device"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.TargetType(); got != tt.want {
				t.Errorf("TargetType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckReference(t *testing.T) {
	err := datatype.CheckReference("Coverage", "beneficiary", datatype.ReferenceTo("Practitioner/1"), "Patient")
	if !errors.Is(err, validate.ErrReferenceType) {
		t.Fatalf("error = %v, want ErrReferenceType", err)
	}

	ok := []struct {
		name    string
		ref     *datatype.Reference
		allowed []string
	}{
		{"allowed", datatype.ReferenceTo("Patient/1"), []string{"Patient"}},
		{"any resource", datatype.ReferenceTo("Basic/1"), []string{"Resource"}},
		{"unknown target", datatype.ReferenceTo("#c1"), []string{"Patient"}},
		{"nil", nil, []string{"Patient"}},
	}
	for _, tt := range ok {
		t.Run(tt.name, func(t *testing.T) {
			if err := datatype.CheckReference("Coverage", "beneficiary", tt.ref, tt.allowed...); err != nil {
				t.Errorf("CheckReference() error = %v", err)
			}
		})
	}

	if err := datatype.CheckReferenceChoice("X", "y", datatype.StringOf("Basic/1"), "Patient"); err != nil {
		t.Errorf("CheckReferenceChoice() on a string error = %v", err)
	}
}

func TestExtensionContent(t *testing.T) {
	nested := datatype.ExtensionOf("http://example.org/inner", datatype.CodeOf("a"))

	tests := []struct {
		name    string
		b       *datatype.ExtensionBuilder
		wantErr error
	}{
		{"value", datatype.NewExtensionBuilder().URL("http://example.org/a").Value(datatype.BooleanOf(false)), nil},
		{"nested", datatype.NewExtensionBuilder().URL("http://example.org/a").Extension(nested), nil},
		{"both", datatype.NewExtensionBuilder().URL("http://example.org/a").Value(datatype.BooleanOf(false)).Extension(nested), validate.ErrInvariant},
		{"neither", datatype.NewExtensionBuilder().URL("http://example.org/a"), validate.ErrInvariant},
		{"no url", datatype.NewExtensionBuilder().Value(datatype.BooleanOf(false)), validate.ErrRequired},
		{"url with space", datatype.NewExtensionBuilder().URL("http://a b").Value(datatype.BooleanOf(false)), validate.ErrInvalidValue},
		{"narrative value", datatype.NewExtensionBuilder().URL("http://example.org/a").Value(datatype.Must(datatype.NewNarrativeBuilder().
			Status(datatype.CodeOf(datatype.NarrativeStatusGenerated)).
			Div(datatype.XHTMLOf("<div>x</div>")).
			Build())), validate.ErrChoiceType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.b.Build()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Build() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	got, ok := datatype.ExtensionByURL([]*datatype.Extension{nested}, "http://example.org/inner")
	if !ok || got != nested {
		t.Errorf("ExtensionByURL() = %v, %v", got, ok)
	}
}
