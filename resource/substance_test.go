package resource_test

import (
	"errors"
	"testing"

	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/resource"
)

func TestSubstanceIngredientChoice(t *testing.T) {
	tests := []struct {
		name    string
		value   datatype.Element
		wantErr error
	}{
		{"concept", datatype.TextConcept("sodium chloride"), nil},
		{"reference", datatype.ReferenceTo("Substance/nacl"), nil},
		{"string", datatype.StringOf("sodium chloride"), validate.ErrChoiceType},
		{"wrong target", datatype.ReferenceTo("Medication/1"), validate.ErrReferenceType},
		{"missing", nil, validate.ErrRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ing, err := resource.NewSubstanceIngredientBuilder().Substance(tt.value).Build()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Build() error = %v", err)
				}
				if !datatype.EqualElements(ing.Substance(), tt.value) {
					t.Error("Substance() differs from the value set on the builder")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}
			e, ok := validate.As(err)
			if !ok || e.Path() != "Substance.Ingredient.substance" {
				t.Errorf("error = %v, want it to name Substance.Ingredient.substance", err)
			}
		})
	}
}

func TestSubstanceChoiceAccessors(t *testing.T) {
	ing, err := resource.NewSubstanceIngredientBuilder().
		Substance(datatype.ReferenceTo("Substance/nacl")).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := datatype.As[*datatype.CodeableConcept](ing.Substance()); ok {
		t.Error("As[*CodeableConcept] matched a Reference")
	}
	ref, ok := datatype.As[*datatype.Reference](ing.Substance())
	if !ok || ref.TargetType() != "Substance" {
		t.Errorf("As[*Reference] = %v, %v", ref, ok)
	}
}

func TestSubstanceStatusBinding(t *testing.T) {
	_, err := resource.NewSubstanceBuilder().
		Code(datatype.TextConcept("saline")).
		Status(datatype.CodeOf("retired")).
		Build()
	if !errors.Is(err, validate.ErrInvalidCode) {
		t.Fatalf("Build() error = %v, want ErrInvalidCode", err)
	}

	_, err = resource.NewSubstanceBuilder().
		Code(datatype.TextConcept("saline")).
		Status(datatype.CodeOf(resource.SubstanceStatusInactive)).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
}
