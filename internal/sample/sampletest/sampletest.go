// Package sampletest runs the shared samples and cases under go test.
package sampletest

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gofhir/model/internal/sample"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/schema"
	"github.com/gofhir/model/visit"
)

// RunSamples checks build, round trip, equality, hashing and traversal order
// of every sample.
func RunSamples(t *testing.T, samples []sample.Sample) {
	t.Helper()
	for _, s := range samples {
		t.Run(s.Type, func(t *testing.T) {
			n, err := s.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if n.TypeName() != s.Type {
				t.Errorf("TypeName() = %q, want %q", n.TypeName(), s.Type)
			}

			equal, err := s.RoundTrip()
			if err != nil {
				t.Fatalf("ToBuilder().Build() error = %v", err)
			}
			if !equal {
				t.Error("ToBuilder().Build() is not equal to the original")
			}

			h1, h2, err := s.Hashes()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if h1 != h2 {
				t.Errorf("equal values hash differently: %x != %x", h1, h2)
			}

			equal, err = s.Mutated()
			if err != nil {
				t.Fatalf("Build() with changed id error = %v", err)
			}
			if equal {
				t.Error("values with different ids compare equal")
			}

			want := slices.DeleteFunc(schema.FieldNames(s.Type), func(name string) bool {
				return slices.Contains(s.Omitted, name)
			})
			if diff := cmp.Diff(want, visit.Children(n)); diff != "" {
				t.Errorf("Children() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// RunCases checks that every case fails with its expected error on its field.
func RunCases(t *testing.T, cases []sample.Case) {
	t.Helper()
	for _, c := range cases {
		name := c.Type + "." + c.Field + "/" + c.Want.Error()
		t.Run(name, func(t *testing.T) {
			err := c.Build()
			if !errors.Is(err, c.Want) {
				t.Fatalf("Build() error = %v, want %v", err, c.Want)
			}
			e, ok := validate.As(err)
			if !ok {
				t.Fatalf("Build() error %T is not a *validate.Error", err)
			}
			if e.Type != c.Type || e.Field != c.Field {
				t.Errorf("error path = %s, want %s.%s", e.Path(), c.Type, c.Field)
			}
		})
	}
}
