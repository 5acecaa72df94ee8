package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	cov, ok := Lookup("Coverage")
	if !ok {
		t.Fatal("Coverage not registered")
	}
	if cov.Kind != KindResource || cov.Base != "DomainResource" {
		t.Errorf("Coverage = %+v", cov)
	}

	payor, ok := cov.Field("payor")
	if !ok {
		t.Fatal("Coverage.payor missing")
	}
	if !payor.Required() || !payor.Repeating() || payor.Cardinality() != "1..*" {
		t.Errorf("payor cardinality = %s", payor.Cardinality())
	}
	if diff := cmp.Diff([]string{"Organization", "Patient", "RelatedPerson"}, payor.Targets); diff != "" {
		t.Errorf("payor targets mismatch (-want +got):\n%s", diff)
	}

	status, _ := cov.Field("status")
	if status.Binding != "FinancialResourceStatusCodes" {
		t.Errorf("status binding = %q", status.Binding)
	}

	if _, ok := cov.Field("meta"); !ok {
		t.Error("inherited field meta not found")
	}
	if _, ok := Lookup("Patient"); ok {
		t.Error("Patient should not be registered")
	}
}

func TestBackboneTypes(t *testing.T) {
	tests := []struct {
		name string
		path string
		base string
	}{
		{"Coverage.Class", "Coverage.class", "BackboneElement"},
		{"Coverage.CostToBeneficiary.Exception", "Coverage.costToBeneficiary.exception", "BackboneElement"},
		{"Substance.Ingredient", "Substance.ingredient", "BackboneElement"},
		{"DataRequirement.Sort", "DataRequirement.sort", "Element"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("%s not registered", tt.name)
			}
			if typ.Path != tt.path || typ.Base != tt.base {
				t.Errorf("got path %q base %q, want %q %q", typ.Path, typ.Base, tt.path, tt.base)
			}
		})
	}
}

func TestAllFieldsOrder(t *testing.T) {
	want := []string{"id", "extension", "modifierExtension", "type", "value", "name"}
	if diff := cmp.Diff(want, FieldNames("Coverage.Class")); diff != "" {
		t.Errorf("FieldNames mismatch (-want +got):\n%s", diff)
	}
	if got := FieldNames("Nope"); len(got) != 0 {
		t.Errorf("FieldNames of an unknown type = %v", got)
	}
}

func TestKinds(t *testing.T) {
	resources := OfKind(KindResource)
	want := []string{
		"Communication", "Coverage", "ImmunizationRecommendation", "Library",
		"MedicationAdministration", "MedicinalProductAuthorization", "PractitionerRole", "Substance",
	}
	if diff := cmp.Diff(want, resources); diff != "" {
		t.Errorf("OfKind(resource) mismatch (-want +got):\n%s", diff)
	}
	if n := len(OfKind(KindPrimitive)); n != 19 {
		t.Errorf("len(OfKind(primitive)) = %d, want 19", n)
	}
	for _, name := range Types() {
		if typ, _ := Lookup(name); typ.Kind == KindAbstract {
			t.Errorf("Types() includes abstract %s", name)
		}
	}
}

func TestResolveChoice(t *testing.T) {
	tests := []struct {
		typ    string
		key    string
		want   ChoiceResult
		wantOK bool
	}{
		{"Substance.Ingredient", "substanceReference", ChoiceResult{BaseName: "substance", TypeName: "Reference", ChoicePath: "Substance.Ingredient.substance[x]"}, true},
		{"Extension", "valueString", ChoiceResult{BaseName: "value", TypeName: "string", ChoicePath: "Extension.value[x]"}, true},
		{"Extension", "valueDateTime", ChoiceResult{BaseName: "value", TypeName: "dateTime", ChoicePath: "Extension.value[x]"}, true},
		{"Extension", "valueNarrative", ChoiceResult{}, false},
		{"Substance.Ingredient", "substance", ChoiceResult{}, false},
		{"Coverage", "statusCode", ChoiceResult{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.key, func(t *testing.T) {
			got, ok := ResolveChoice(tt.typ, tt.key)
			if ok != tt.wantOK {
				t.Fatalf("ResolveChoice() ok = %v, want %v", ok, tt.wantOK)
			}
			got.Field = Field{}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ResolveChoice() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if got := ChoiceKey("medication", "CodeableConcept"); got != "medicationCodeableConcept" {
		t.Errorf("ChoiceKey() = %q", got)
	}
}

func TestElementIndex(t *testing.T) {
	idx := Index()
	if idx != Index() {
		t.Error("Index() should be built once")
	}

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"Coverage.payor", "payor", true},
		{"Coverage.payor[3]", "payor", true},
		{"Coverage.class.value", "value", true},
		{"Coverage.class[0].value", "value", true},
		{"Substance.ingredient.substance[x]", "substance", true},
		{"Extension.value[x]", "value", true},
		{"Coverage.id", "id", true},
		{"Coverage.nothing", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f, ok := idx.Get(tt.path)
			if ok != tt.wantOK || f.Name != tt.want {
				t.Errorf("Get(%q) = %q, %v", tt.path, f.Name, ok)
			}
		})
	}
	if idx.Len() == 0 {
		t.Error("empty index")
	}
}

func TestStripIndexes(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"Coverage.payor", "Coverage.payor"},
		{"Coverage.payor[7]", "Coverage.payor"},
		{"Coverage.class[0].value", "Coverage.class.value"},
		{"Coverage.costToBeneficiary[1].exception[12].type", "Coverage.costToBeneficiary.exception.type"},
		{"Extension.value[x]", "Extension.value[x]"},
		{"Substance.ingredient[2].substance[x]", "Substance.ingredient.substance[x]"},
	}
	for _, tt := range tests {
		if got := stripIndexes(tt.path); got != tt.want {
			t.Errorf("stripIndexes(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
