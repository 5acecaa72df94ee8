package datatype_test

import (
	"errors"
	"testing"

	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/internal/sample"
	"github.com/gofhir/model/internal/sample/sampletest"
	"github.com/gofhir/model/pkg/validate"
)

func TestDatatypeSamples(t *testing.T) {
	sampletest.RunSamples(t, sample.DatatypeSamples())
}

func TestDatatypeConstraints(t *testing.T) {
	sampletest.RunCases(t, sample.DatatypeCases())
}

func TestQuantityProfilesInQuantityChoices(t *testing.T) {
	simple := datatype.Must(datatype.NewSimpleQuantityBuilder().
		Value(datatype.DecimalOf("2")).
		Unit(datatype.StringOf("mg")).
		Build())
	duration := datatype.Must(datatype.NewDurationBuilder().
		Value(datatype.DecimalOf("30")).
		Code(datatype.CodeOf("min")).
		Build())
	age := datatype.CodingOf("http://terminology.hl7.org/CodeSystem/usage-context-type", "age")

	for _, v := range []datatype.Element{simple, duration} {
		t.Run(v.TypeName(), func(t *testing.T) {
			uc, err := datatype.NewUsageContextBuilder().Code(age).Value(v).Build()
			if err != nil {
				t.Fatalf("UsageContext.value = %s: %v", v.TypeName(), err)
			}
			if uc.Value().TypeName() != v.TypeName() {
				t.Errorf("Value().TypeName() = %q", uc.Value().TypeName())
			}

			if _, err := datatype.NewExtensionBuilder().URL(sample.URL).Value(v).Build(); err != nil {
				t.Errorf("Extension.value = %s: %v", v.TypeName(), err)
			}
		})
	}

	_, err := datatype.NewUsageContextBuilder().Code(age).Value(datatype.StringOf("adult")).Build()
	if !errors.Is(err, validate.ErrChoiceType) {
		t.Errorf("UsageContext.value = string error = %v, want ErrChoiceType", err)
	}
}
