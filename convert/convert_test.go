package convert

import (
	"errors"
	"testing"

	"github.com/gofhir/fhir/r4"
	"github.com/google/go-cmp/cmp"

	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/resource"
)

const extURL = "http://example.org/fhir/StructureDefinition/source"

func r4Ext(value string) r4.Extension {
	return r4.Extension{Url: extURL, ValueString: ptr(value)}
}

func TestCodingRoundTrip(t *testing.T) {
	src := &r4.Coding{
		Id:           ptr("c1"),
		Extension:    []r4.Extension{r4Ext("coding")},
		System:       ptr("http://loinc.org"),
		Version:      ptr("2.74"),
		Code:         ptr("8867-4"),
		Display:      ptr("Heart rate"),
		DisplayExt:   &r4.Element{Id: ptr("d1"), Extension: []r4.Extension{r4Ext("display")}},
		UserSelected: ptr(true),
	}

	c, err := CodingFromR4(src)
	if err != nil {
		t.Fatalf("CodingFromR4() error = %v", err)
	}
	if c.ID() != "c1" || !c.UserSelected().Value() || c.Display().ID() != "d1" {
		t.Errorf("CodingFromR4() = %+v", c)
	}

	out, err := CodingToR4(c)
	if err != nil {
		t.Fatalf("CodingToR4() error = %v", err)
	}
	if diff := cmp.Diff(src, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCodingFromR4Invalid(t *testing.T) {
	_, err := CodingFromR4(&r4.Coding{Code: ptr(" padded")})
	if !errors.Is(err, validate.ErrInvalidValue) {
		t.Fatalf("CodingFromR4() error = %v, want ErrInvalidValue", err)
	}

	empty, err := CodingFromR4(&r4.Coding{})
	if !errors.Is(err, validate.ErrNoChildren) || empty != nil {
		t.Fatalf("CodingFromR4(empty) = %v, %v", empty, err)
	}

	if c, err := CodingFromR4(nil); c != nil || err != nil {
		t.Errorf("CodingFromR4(nil) = %v, %v", c, err)
	}
	if c, err := CodingToR4(nil); c != nil || err != nil {
		t.Errorf("CodingToR4(nil) = %v, %v", c, err)
	}
}

func TestCodeableConceptRoundTrip(t *testing.T) {
	cc := datatype.Must(datatype.NewCodeableConceptBuilder().
		ID("cc1").
		Extension(datatype.ExtensionOf(extURL, datatype.StringOf("concept"))).
		Coding(datatype.CodingOf("http://snomed.info/sct", "73211009")).
		Coding(datatype.Must(datatype.NewCodingBuilder().
			Code(datatype.CodeOf("E11")).
			UserSelected(datatype.BooleanOf(true)).
			Build())).
		Text(datatype.StringOf("Diabetes")).
		Build())

	out, err := CodeableConceptToR4(cc)
	if err != nil {
		t.Fatalf("CodeableConceptToR4() error = %v", err)
	}
	if len(out.Coding) != 2 || *out.Text != "Diabetes" || *out.Id != "cc1" || len(out.Extension) != 1 {
		t.Fatalf("CodeableConceptToR4() = %+v", out)
	}

	back, err := CodeableConceptFromR4(out)
	if err != nil {
		t.Fatalf("CodeableConceptFromR4() error = %v", err)
	}
	if !back.Equal(cc) {
		t.Error("round trip changed the concept")
	}

	_, err = CodeableConceptFromR4(&r4.CodeableConcept{Coding: []r4.Coding{{}, {Code: ptr("a  b")}}})
	if err == nil {
		t.Fatal("expected an error for an invalid coding")
	}
}

func TestIdentifierRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		id   *datatype.Identifier
	}{
		{
			name: "all elements",
			id: datatype.Must(datatype.NewIdentifierBuilder().
				ID("mrn").
				Extension(datatype.ExtensionOf(extURL, datatype.StringOf("identifier"))).
				Use(datatype.CodeOf(datatype.IdentifierUseOfficial)).
				Type(datatype.Must(datatype.NewCodeableConceptBuilder().
					Coding(datatype.CodingOf("http://terminology.hl7.org/CodeSystem/v2-0203", "MR")).
					Build())).
				System(datatype.URIOf("http://hospital.example.org/mrn")).
				Value(datatype.StringOf("12345")).
				Period(datatype.Must(datatype.NewPeriodBuilder().
					Start(datatype.DateTimeOf("2024-01-01")).
					Build())).
				Assigner(datatype.Must(datatype.NewReferenceBuilder().
					Reference(datatype.StringOf("Organization/1")).
					Display(datatype.StringOf("General Hospital")).
					Build())).
				Build()),
		},
		{
			name: "type only",
			id: datatype.Must(datatype.NewIdentifierBuilder().
				Type(datatype.Must(datatype.NewCodeableConceptBuilder().Text(datatype.StringOf("MRN")).Build())).
				Build()),
		},
		{
			name: "value with extension only",
			id: datatype.Must(datatype.NewIdentifierBuilder().
				Value(datatype.Must(datatype.NewStringBuilder().
					Extension(datatype.ExtensionOf("http://hl7.org/fhir/StructureDefinition/data-absent-reason", datatype.CodeOf("masked"))).
					Build())).
				Build()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := IdentifierToR4(tt.id)
			if err != nil {
				t.Fatalf("IdentifierToR4() error = %v", err)
			}
			back, err := IdentifierFromR4(out)
			if err != nil {
				t.Fatalf("IdentifierFromR4() error = %v", err)
			}
			if !back.Equal(tt.id) {
				t.Errorf("round trip changed the identifier: %+v", out)
			}
		})
	}
}

func TestIdentifierFromR4UnknownUse(t *testing.T) {
	src := &r4.Identifier{Use: ptr(r4.IdentifierUse("nickname")), Value: ptr("12345")}
	if _, err := IdentifierFromR4(src); !errors.Is(err, validate.ErrInvalidCode) {
		t.Errorf("IdentifierFromR4() with unknown use error = %v, want ErrInvalidCode", err)
	}

	src.Use = ptr(r4.IdentifierUseOfficial)
	id, err := IdentifierFromR4(src)
	if err != nil {
		t.Fatalf("IdentifierFromR4() error = %v", err)
	}
	if id.Use().Value() != datatype.IdentifierUseOfficial {
		t.Errorf("Use() = %v", id.Use())
	}
}

func TestPeriodRoundTrip(t *testing.T) {
	src := &r4.Period{
		Id:       ptr("p1"),
		Start:    ptr("2024-01-15T10:30:00Z"),
		End:      ptr("2024-02-01"),
		StartExt: &r4.Element{Extension: []r4.Extension{r4Ext("start")}},
	}
	p, err := PeriodFromR4(src)
	if err != nil {
		t.Fatalf("PeriodFromR4() error = %v", err)
	}
	out, err := PeriodToR4(p)
	if err != nil {
		t.Fatalf("PeriodToR4() error = %v", err)
	}
	if diff := cmp.Diff(src, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if _, err := PeriodFromR4(&r4.Period{Start: ptr("15/01/2024")}); !errors.Is(err, validate.ErrInvalidValue) {
		t.Errorf("PeriodFromR4() with a malformed start error = %v, want ErrInvalidValue", err)
	}
}

func TestReferenceRoundTrip(t *testing.T) {
	src := &r4.Reference{
		Id:        ptr("r1"),
		Extension: []r4.Extension{r4Ext("reference")},
		Reference: ptr("Patient/123"),
		Type:      ptr("Patient"),
		Identifier: &r4.Identifier{
			System:   ptr("http://hospital.example.org/mrn"),
			Value:    ptr("12345"),
			Assigner: &r4.Reference{Display: ptr("General Hospital")},
		},
		Display: ptr("Jane Doe"),
	}
	r, err := ReferenceFromR4(src)
	if err != nil {
		t.Fatalf("ReferenceFromR4() error = %v", err)
	}
	if r.TargetType() != "Patient" {
		t.Errorf("TargetType() = %q", r.TargetType())
	}
	out, err := ReferenceToR4(r)
	if err != nil {
		t.Fatalf("ReferenceToR4() error = %v", err)
	}
	if diff := cmp.Diff(src, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExtensionRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ext  *r4.Extension
	}{
		{"base64Binary", &r4.Extension{Url: extURL, ValueBase64Binary: ptr("c2FtcGxl")}},
		{"boolean", &r4.Extension{Url: extURL, ValueBoolean: ptr(false)}},
		{"canonical", &r4.Extension{Url: extURL, ValueCanonical: ptr("http://example.org/fhir/ValueSet/x")}},
		{"code", &r4.Extension{Url: extURL, ValueCode: ptr("active")}},
		{"date", &r4.Extension{Url: extURL, ValueDate: ptr("2024-01")}},
		{"dateTime", &r4.Extension{Url: extURL, ValueDateTime: ptr("2024-01-15T10:30:00+01:00")}},
		{"decimal", &r4.Extension{Url: extURL, ValueDecimal: ptr(1.5)}},
		{"id", &r4.Extension{Url: extURL, ValueId: ptr("abc-1")}},
		{"instant", &r4.Extension{Url: extURL, ValueInstant: ptr("2024-01-15T10:30:00.000Z")}},
		{"integer", &r4.Extension{Url: extURL, ValueInteger: ptr(-7)}},
		{"markdown", &r4.Extension{Url: extURL, ValueMarkdown: ptr("**bold**")}},
		{"positiveInt", &r4.Extension{Url: extURL, ValuePositiveInt: ptr(uint32(3))}},
		{"string", &r4.Extension{Url: extURL, ValueString: ptr("x"), ValueStringExt: &r4.Element{Id: ptr("v1")}}},
		{"time", &r4.Extension{Url: extURL, ValueTime: ptr("10:30:00")}},
		{"unsignedInt", &r4.Extension{Url: extURL, ValueUnsignedInt: ptr(uint32(0))}},
		{"uri", &r4.Extension{Url: extURL, ValueUri: ptr("urn:oid:1.2.3")}},
		{"url", &r4.Extension{Url: extURL, ValueUrl: ptr("https://example.org")}},
		{"uuid", &r4.Extension{Url: extURL, ValueUuid: ptr("urn:uuid:3f2504e0-4f89-41d3-9a0c-0305e82c3301")}},
		{"CodeableConcept", &r4.Extension{Url: extURL, ValueCodeableConcept: &r4.CodeableConcept{Text: ptr("x")}}},
		{"Coding", &r4.Extension{Url: extURL, ValueCoding: &r4.Coding{Code: ptr("x"), UserSelected: ptr(true)}}},
		{"Identifier", &r4.Extension{Url: extURL, ValueIdentifier: &r4.Identifier{Value: ptr("x")}}},
		{"Period", &r4.Extension{Url: extURL, ValuePeriod: &r4.Period{End: ptr("2024")}}},
		{"Reference", &r4.Extension{Url: extURL, ValueReference: &r4.Reference{Reference: ptr("Organization/1")}}},
		{"nested", &r4.Extension{Id: ptr("outer"), Url: extURL, Extension: []r4.Extension{
			r4Ext("inner"),
			{Url: extURL, ValueCode: ptr("x")},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ExtensionFromR4(tt.ext)
			if err != nil {
				t.Fatalf("ExtensionFromR4() error = %v", err)
			}
			if tt.name != "nested" && e.Value() == nil {
				t.Fatal("ExtensionFromR4() dropped the value")
			}
			out, err := ExtensionToR4(e)
			if err != nil {
				t.Fatalf("ExtensionToR4() error = %v", err)
			}
			if diff := cmp.Diff(tt.ext, out); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtensionUnsupportedValue(t *testing.T) {
	_, err := ExtensionFromR4(&r4.Extension{Url: extURL, ValueOid: ptr("urn:oid:1.2.3")})
	if err == nil {
		t.Fatal("ExtensionFromR4() with an oid value should fail")
	}

	_, err = IdentifierFromR4(&r4.Identifier{
		Value:     ptr("x"),
		Extension: []r4.Extension{{Url: extURL, ValueHumanName: &r4.HumanName{Family: ptr("Doe")}}},
	})
	if err == nil {
		t.Fatal("IdentifierFromR4() with an unsupported extension value should fail")
	}

	money := datatype.Must(datatype.NewMoneyBuilder().Currency(datatype.CodeOf("EUR")).Build())
	if _, err := ExtensionToR4(datatype.ExtensionOf(extURL, money)); err == nil {
		t.Fatal("ExtensionToR4() with a Money value should fail")
	}
}

func TestValueSetFromR4(t *testing.T) {
	url := "http://example.org/ValueSet/status"
	system := "http://example.org/CodeSystem/status"
	parent, child, dup := "active", "suspended", "active"

	expanded := &r4.ValueSet{
		Url: &url,
		Expansion: &r4.ValueSetExpansion{
			Contains: []r4.ValueSetExpansionContains{
				{
					System:   &system,
					Code:     &parent,
					Contains: []r4.ValueSetExpansionContains{{System: &system, Code: &child}},
				},
				{System: &system, Code: &dup},
			},
		},
	}
	vs, err := ValueSetFromR4(expanded)
	if err != nil {
		t.Fatalf("ValueSetFromR4() error = %v", err)
	}
	want := datatype.ValueSet{Name: "status", URL: url, Codes: []string{"active", "suspended"}}
	if diff := cmp.Diff(want, vs); diff != "" {
		t.Errorf("ValueSetFromR4() mismatch (-want +got):\n%s", diff)
	}

	composed := &r4.ValueSet{
		Url: &url,
		Compose: &r4.ValueSetCompose{
			Include: []r4.ValueSetComposeInclude{
				{System: &system, Concept: []r4.ValueSetComposeIncludeConcept{{Code: &child}}},
			},
		},
	}
	vs, err = ValueSetFromR4(composed)
	if err != nil {
		t.Fatalf("ValueSetFromR4() error = %v", err)
	}
	if !vs.Contains("suspended") || vs.Contains("active") {
		t.Errorf("composed codes = %v", vs.Codes)
	}

	if _, err := ValueSetFromR4(&r4.ValueSet{}); err == nil {
		t.Error("expected an error for a value set without url")
	}
}

func TestValueSetToR4(t *testing.T) {
	out := ValueSetToR4(resource.FinancialResourceStatusValues, "http://hl7.org/fhir/fm-status")
	back, err := ValueSetFromR4(out)
	if err != nil {
		t.Fatalf("ValueSetFromR4() error = %v", err)
	}
	if diff := cmp.Diff(resource.FinancialResourceStatusValues.Codes, back.Codes); diff != "" {
		t.Errorf("codes mismatch (-want +got):\n%s", diff)
	}
	if *out.Expansion.Contains[0].System != "http://hl7.org/fhir/fm-status" {
		t.Errorf("system = %q", *out.Expansion.Contains[0].System)
	}
}
