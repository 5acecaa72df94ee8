package validate

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/pkg/logger"
)

type named string

func (n named) TypeName() string { return string(n) }

func TestRequired(t *testing.T) {
	var missing *int
	one := 1

	if err := Required("Coverage", "beneficiary", &one); err != nil {
		t.Errorf("Required with value: unexpected error %v", err)
	}

	err := Required("Coverage", "beneficiary", missing)
	if !errors.Is(err, ErrRequired) {
		t.Fatalf("Required(nil) = %v; want ErrRequired", err)
	}
	if got := err.Error(); got != "Coverage.beneficiary: missing required element 'beneficiary'" {
		t.Errorf("Error() = %q", got)
	}

	if err := RequiredString("Extension", "url", ""); !errors.Is(err, ErrRequired) {
		t.Errorf("RequiredString(\"\") = %v; want ErrRequired", err)
	}
}

func TestNotEmpty(t *testing.T) {
	err := NotEmpty[string]("Coverage", "payor", nil)
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("NotEmpty(nil) = %v; want ErrEmpty", err)
	}
	e, ok := As(err)
	if !ok {
		t.Fatal("As failed on a validation error")
	}
	if e.Field != "payor" || e.Code != CodeRequired || e.ID != DiagEmpty {
		t.Errorf("unexpected error fields: %+v", e)
	}

	if err := NotEmpty("Coverage", "payor", []string{"x"}); err != nil {
		t.Errorf("NotEmpty with one element: %v", err)
	}
}

func TestElements(t *testing.T) {
	a, b := 1, 2
	if err := Elements("Library", "topic", []*int{&a, &b}); err != nil {
		t.Errorf("unexpected error %v", err)
	}

	err := Elements("Library", "topic", []*int{&a, nil})
	if !errors.Is(err, ErrNilElement) {
		t.Fatalf("Elements = %v; want ErrNilElement", err)
	}
	if !strings.Contains(err.Error(), "element 1 of 'topic'") {
		t.Errorf("message should name the index: %q", err.Error())
	}
}

func TestChoice(t *testing.T) {
	tests := []struct {
		name    string
		value   Typed
		allowed []string
		wantErr bool
	}{
		{"nil passes", nil, []string{"CodeableConcept"}, false},
		{"permitted", named("Reference"), []string{"CodeableConcept", "Reference"}, false},
		{"not permitted", named("string"), []string{"CodeableConcept", "Reference"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Choice("Substance.Ingredient", "substance", tt.value, tt.allowed...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Choice() error = %v; wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			if !errors.Is(err, ErrChoiceType) {
				t.Errorf("want ErrChoiceType, got %v", err)
			}
			e, _ := As(err)
			if e.Field != "substance" {
				t.Errorf("Field = %q; want substance", e.Field)
			}
			if len(e.Allowed) != 2 {
				t.Errorf("Allowed = %v", e.Allowed)
			}
			if !strings.Contains(err.Error(), "CodeableConcept | Reference") {
				t.Errorf("message should list permitted types: %q", err.Error())
			}
		})
	}
}

func TestFirst(t *testing.T) {
	e1 := errors.New("one")
	e2 := errors.New("two")
	if got := First(nil, e1, e2); got != e1 {
		t.Errorf("First = %v; want %v", got, e1)
	}
	if got := First(nil, nil); got != nil {
		t.Errorf("First(nil, nil) = %v", got)
	}
}

func TestChoice_QuantityProfiles(t *testing.T) {
	tests := []struct {
		actual  string
		allowed []string
		wantErr bool
	}{
		{"SimpleQuantity", []string{"CodeableConcept", "Quantity", "Range"}, false},
		{"Duration", []string{"Quantity"}, false},
		{"Duration", []string{"Duration"}, false},
		{"SimpleQuantity", []string{"CodeableConcept", "Range"}, true},
		{"Money", []string{"Quantity"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.actual, func(t *testing.T) {
			err := Choice("UsageContext", "value", named(tt.actual), tt.allowed...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Choice(%s, %v) = %v; wantErr %v", tt.actual, tt.allowed, err, tt.wantErr)
			}
		})
	}
}

func TestInValueSet(t *testing.T) {
	vs := ValueSet{Name: "PublicationStatus", Codes: []string{"draft", "active", "retired", "unknown"}}

	if err := InValueSet("Library", "status", "active", vs); err != nil {
		t.Errorf("member code: %v", err)
	}
	if err := InValueSet("Library", "status", "", vs); err != nil {
		t.Errorf("empty code: %v", err)
	}

	err := InValueSet("Library", "status", "final", vs)
	if !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("InValueSet = %v; want ErrInvalidCode", err)
	}
	if !strings.Contains(err.Error(), "PublicationStatus") {
		t.Errorf("message should name the value set: %q", err.Error())
	}
}

func TestReferenceTarget(t *testing.T) {
	tests := []struct {
		target  string
		allowed []string
		wantErr bool
	}{
		{"Patient", []string{"Patient"}, false},
		{"", []string{"Patient"}, false},
		{"Group", nil, false},
		{"Group", []string{"Resource"}, false},
		{"Organization", []string{"Patient"}, true},
	}

	for _, tt := range tests {
		err := ReferenceTarget("Coverage", "beneficiary", tt.target, tt.allowed...)
		if (err != nil) != tt.wantErr {
			t.Errorf("ReferenceTarget(%q, %v) = %v; wantErr %v", tt.target, tt.allowed, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrReferenceType) {
			t.Errorf("want ErrReferenceType, got %v", err)
		}
	}
}

func TestHasChildren(t *testing.T) {
	if err := HasChildren("Period", true); err != nil {
		t.Errorf("HasChildren(true) = %v", err)
	}
	if err := HasChildren("Period", false); !errors.Is(err, ErrNoChildren) {
		t.Errorf("HasChildren(false) = %v; want ErrNoChildren", err)
	}
}

func TestRun(t *testing.T) {
	boom := errors.New("boom")
	badCode := InValueSet("Library", "status", "final", ValueSet{Name: "PublicationStatus", Codes: []string{"active"}})
	badTarget := ReferenceTarget("Coverage", "beneficiary", "Organization", "Patient")
	missing := Required[*int]("Coverage", "beneficiary", nil)

	tests := []struct {
		name string
		opts *fhirmodel.Options
		errs []error
		want error
	}{
		{"no errors", nil, []error{nil, nil}, nil},
		{"first error", nil, []error{nil, boom, missing}, boom},
		{"defaults keep code errors", nil, []error{badCode, missing}, badCode},
		{"code checks off", fhirmodel.Apply(fhirmodel.WithCodeChecks(false)), []error{badCode, missing}, missing},
		{"reference checks off", fhirmodel.Apply(fhirmodel.WithReferenceTypeChecks(false)), []error{badTarget, nil}, nil},
		{"reference checks off keeps codes", fhirmodel.Apply(fhirmodel.WithReferenceTypeChecks(false)), []error{badTarget, badCode}, badCode},
		{"lenient keeps structure", fhirmodel.Apply(fhirmodel.LenientOptions()...), []error{badCode, badTarget, missing}, missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Run("Coverage", tt.opts, func() []error { return tt.errs })
			if got != tt.want {
				t.Errorf("Run() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestRun_Metrics(t *testing.T) {
	m := fhirmodel.NewMetrics()
	opts := fhirmodel.Apply(fhirmodel.WithMetrics(m))

	_ = Run("Coverage", opts, func() []error { return nil })
	_ = Run("Coverage", opts, func() []error { return []error{NoChildren("Coverage")} })

	s, ok := m.TypeStats("Coverage")
	if !ok || s.Builds != 2 || s.Rejected != 1 {
		t.Errorf("unexpected stats: %+v", s)
	}

	_ = Run("Coverage", nil, func() []error { return nil })
	if m.BuildsTotal() != 2 {
		t.Errorf("builds without WithMetrics should not be recorded, total = %d", m.BuildsTotal())
	}
}

func TestRun_Tracing(t *testing.T) {
	orig := logger.Default()
	t.Cleanup(func() { logger.SetDefault(orig) })

	var buf bytes.Buffer
	logger.SetDefault(logger.New(&buf, logger.LevelDebug))
	opts := fhirmodel.Apply(fhirmodel.WithBuildTracing(true))

	_ = Run("Coverage", opts, func() []error { return []error{NoChildren("Coverage.Class")} })

	if !strings.Contains(buf.String(), "build Coverage rejected") {
		t.Errorf("expected trace output, got %q", buf.String())
	}
}

func TestDiagnosticTemplates(t *testing.T) {
	ids := []DiagnosticID{
		DiagRequired, DiagEmpty, DiagNilElement, DiagChoiceType, DiagInvalidValue,
		DiagInvalidCode, DiagReferenceType, DiagNoChildren, DiagExtensionContent,
	}
	for _, id := range ids {
		tmpl, ok := GetDiagnosticTemplate(id)
		if !ok {
			t.Errorf("missing template for %s", id)
			continue
		}
		if tmpl.Err == nil || tmpl.Code == "" || tmpl.Template == "" {
			t.Errorf("incomplete template for %s: %+v", id, tmpl)
		}
	}

	if got := FormatDiagnostic("UNKNOWN", nil); got != "UNKNOWN" {
		t.Errorf("FormatDiagnostic(unknown) = %q", got)
	}
}

func TestErrorPath(t *testing.T) {
	e := NoChildren("Coverage.Class")
	if e.Path() != "Coverage.Class" {
		t.Errorf("Path() = %q", e.Path())
	}
	if !errors.Is(e, ErrNoChildren) {
		t.Error("NoChildren should unwrap to ErrNoChildren")
	}

	v := InvalidValue("positiveInt", "0", "must be greater than zero")
	if v.Error() != "positiveInt.value: invalid value '0': must be greater than zero" {
		t.Errorf("Error() = %q", v.Error())
	}
}

func TestJoinField(t *testing.T) {
	if got := JoinField("payor", 12); got != "payor[12]" {
		t.Errorf("JoinField = %q", got)
	}
}
