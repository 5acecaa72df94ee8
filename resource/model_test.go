package resource_test

import (
	"testing"

	"github.com/gofhir/model/internal/sample"
	"github.com/gofhir/model/internal/sample/sampletest"
)

func TestResourceSamples(t *testing.T) {
	sampletest.RunSamples(t, sample.ResourceSamples())
}

func TestResourceConstraints(t *testing.T) {
	sampletest.RunCases(t, sample.ResourceCases())
}
