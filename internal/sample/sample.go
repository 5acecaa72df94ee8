// Package sample holds a minimal and a fully populated instance of every
// type of the model, and the construction failures each type must report.
// The model tests and the example command share them.
package sample

import (
	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/resource"
	"github.com/gofhir/model/visit"
)

// URL is the url used by sample extensions and uri fields.
const URL = "http://example.org/fhir/StructureDefinition/sample"

// Contained returns the resource placed in the contained list of full
// resource fixtures.
func Contained() resource.Resource {
	return Substance()
}

// Case is a builder that must fail with Want on Field of Type.
type Case struct {
	Type  string
	Field string
	Want  error
	Build func() error
}

// Sample exercises one type through its fully populated builder.
type Sample struct {
	Type string

	// Omitted lists fields the full fixture leaves unset.
	Omitted []string

	// Build builds the fully populated value with opts.
	Build func(opts ...fhirmodel.Option) (visit.Node, error)

	// RoundTrip rebuilds the value from its ToBuilder and reports whether
	// the two are equal in both directions.
	RoundTrip func() (bool, error)

	// Hashes builds the value twice and returns both hashes.
	Hashes func() (uint64, uint64, error)

	// Mutated builds the value with a different id and reports whether it is
	// still equal to the original.
	Mutated func() (bool, error)
}

type node[P any, B any] interface {
	visit.Node
	Equal(P) bool
	Hash() uint64
	ToBuilder() B
}

type builder[P any, B any] interface {
	ID(string) B
	Build() (P, error)
	BuildWith(...fhirmodel.Option) (P, error)
}

func sample[P node[P, B], B builder[P, B]](typ string, full func() B, omitted ...string) Sample {
	return Sample{
		Type:    typ,
		Omitted: omitted,
		Build: func(opts ...fhirmodel.Option) (visit.Node, error) {
			x, err := full().BuildWith(opts...)
			if err != nil {
				return nil, err
			}
			return x, nil
		},
		RoundTrip: func() (bool, error) {
			x, err := full().Build()
			if err != nil {
				return false, err
			}
			y, err := x.ToBuilder().Build()
			if err != nil {
				return false, err
			}
			return x.Equal(y) && y.Equal(x), nil
		},
		Hashes: func() (uint64, uint64, error) {
			x, err := full().Build()
			if err != nil {
				return 0, 0, err
			}
			y, err := full().Build()
			if err != nil {
				return 0, 0, err
			}
			return x.Hash(), y.Hash(), nil
		},
		Mutated: func() (bool, error) {
			x, err := full().Build()
			if err != nil {
				return false, err
			}
			y, err := full().ID("changed-id").Build()
			if err != nil {
				return false, err
			}
			return x.Equal(y), nil
		},
	}
}
