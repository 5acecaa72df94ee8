package resource_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/internal/sample"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/resource"
	"github.com/gofhir/model/visit"
)

func minimalCoverage() *resource.CoverageBuilder {
	return resource.NewCoverageBuilder().
		Status(datatype.CodeOf(resource.CoverageStatusActive)).
		Beneficiary(datatype.ReferenceTo("Patient/123")).
		Payor(datatype.ReferenceTo("Organization/456"))
}

func TestCoverageBuild(t *testing.T) {
	cov, err := minimalCoverage().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cov.ResourceType() != "Coverage" {
		t.Errorf("ResourceType() = %q", cov.ResourceType())
	}
	if got := cov.Beneficiary().TargetType(); got != "Patient" {
		t.Errorf("Beneficiary().TargetType() = %q", got)
	}
	if n := len(cov.Payor()); n != 1 {
		t.Errorf("len(Payor()) = %d, want 1", n)
	}
}

func TestCoverageMissingPayor(t *testing.T) {
	_, err := minimalCoverage().SetPayor(nil).Build()
	if !errors.Is(err, validate.ErrEmpty) {
		t.Fatalf("Build() error = %v, want ErrEmpty", err)
	}
	e, ok := validate.As(err)
	if !ok || e.Field != "payor" || e.Type != "Coverage" {
		t.Errorf("error = %v, want it to name Coverage.payor", err)
	}
}

func TestCoverageBeneficiaryTarget(t *testing.T) {
	_, err := minimalCoverage().Beneficiary(datatype.ReferenceTo("Practitioner/1")).Build()
	if !errors.Is(err, validate.ErrReferenceType) {
		t.Fatalf("Build() error = %v, want ErrReferenceType", err)
	}
}

func TestCoverageBuilderIsolation(t *testing.T) {
	payors := []*datatype.Reference{datatype.ReferenceTo("Organization/1")}
	b := minimalCoverage().SetPayor(payors)
	cov, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	payors[0] = datatype.ReferenceTo("Organization/2")
	b.Payor(datatype.ReferenceTo("Organization/3"))

	got := cov.Payor()
	if len(got) != 1 || got[0].Reference().Value() != "Organization/1" {
		t.Errorf("Payor() changed after build: %v", got)
	}
	got[0] = nil
	if cov.Payor()[0] == nil {
		t.Error("Payor() exposes the internal slice")
	}
}

func TestCoveragePayorAppendAndReplace(t *testing.T) {
	a := datatype.ReferenceTo("Organization/a")
	b := datatype.ReferenceTo("Organization/b")
	c := datatype.ReferenceTo("Patient/c")
	d := datatype.ReferenceTo("RelatedPerson/d")
	refs := func(list []*datatype.Reference) []string {
		var out []string
		for _, r := range list {
			out = append(out, r.Reference().Value())
		}
		return out
	}

	builder := minimalCoverage().SetPayor(nil).Payor(a).Payor(b, c)
	cov, err := builder.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := []string{"Organization/a", "Organization/b", "Patient/c"}
	if diff := cmp.Diff(want, refs(cov.Payor())); diff != "" {
		t.Errorf("appended Payor() mismatch (-want +got):\n%s", diff)
	}

	replaced, err := builder.SetPayor([]*datatype.Reference{d}).Build()
	if err != nil {
		t.Fatalf("Build() after SetPayor error = %v", err)
	}
	if diff := cmp.Diff([]string{"RelatedPerson/d"}, refs(replaced.Payor())); diff != "" {
		t.Errorf("replaced Payor() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, refs(cov.Payor())); diff != "" {
		t.Errorf("SetPayor changed an earlier value (-want +got):\n%s", diff)
	}
}

func TestCoverageToBuilder(t *testing.T) {
	cov, err := minimalCoverage().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	updated, err := cov.ToBuilder().Network(datatype.StringOf("north")).Build()
	if err != nil {
		t.Fatalf("ToBuilder().Build() error = %v", err)
	}
	if cov.Network() != nil {
		t.Error("original changed by ToBuilder")
	}
	if updated.Equal(cov) {
		t.Error("updated coverage equal to original")
	}
	if updated.Network().Value() != "north" {
		t.Errorf("Network() = %q", updated.Network().Value())
	}
}

func TestCoveragePaths(t *testing.T) {
	cov, err := minimalCoverage().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := []string{
		"Coverage",
		"Coverage.status",
		"Coverage.status.value",
		"Coverage.beneficiary",
		"Coverage.beneficiary.reference",
		"Coverage.beneficiary.reference.value",
		"Coverage.payor[0]",
		"Coverage.payor[0].reference",
		"Coverage.payor[0].reference.value",
	}
	if diff := cmp.Diff(want, visit.Paths(cov)); diff != "" {
		t.Errorf("Paths() mismatch (-want +got):\n%s", diff)
	}
}

func TestCoveragePathsStable(t *testing.T) {
	first, err := sample.FullCoverageBuilder().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	second, err := sample.FullCoverageBuilder().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !first.Equal(second) {
		t.Fatal("two builds of the same fixture differ")
	}

	want := visit.Paths(first)
	if diff := cmp.Diff(want, visit.Paths(first)); diff != "" {
		t.Errorf("second traversal differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(want, visit.Paths(second)); diff != "" {
		t.Errorf("equal values traverse differently (-first +second):\n%s", diff)
	}
	rebuilt, err := first.ToBuilder().Build()
	if err != nil {
		t.Fatalf("ToBuilder().Build() error = %v", err)
	}
	if diff := cmp.Diff(want, visit.Paths(rebuilt)); diff != "" {
		t.Errorf("rebuilt value traverses differently (-first +rebuilt):\n%s", diff)
	}
}

func TestCoverageWalkSkip(t *testing.T) {
	cov, err := minimalCoverage().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	var got []string
	visit.Walk(cov, func(path string, _ visit.Node) bool {
		got = append(got, path)
		return path == "Coverage"
	})
	want := []string{"Coverage", "Coverage.status", "Coverage.beneficiary", "Coverage.payor[0]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk() mismatch (-want +got):\n%s", diff)
	}
}

func TestConcurrentHash(t *testing.T) {
	cov, err := sample.FullCoverageBuilder().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	other, err := sample.FullCoverageBuilder().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := other.Hash()

	var wg sync.WaitGroup
	hashes := make([]uint64, 16)
	for i := range hashes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hashes[i] = cov.Hash()
		}()
	}
	wg.Wait()

	for i, h := range hashes {
		if h != want {
			t.Errorf("hash %d = %x, want %x", i, h, want)
		}
	}
}

func TestContainedNesting(t *testing.T) {
	inner, err := resource.NewSubstanceBuilder().
		Code(datatype.TextConcept("saline")).
		Contained(sample.Substance()).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	_, err = minimalCoverage().Contained(inner).Build()
	if !errors.Is(err, validate.ErrInvalidValue) {
		t.Fatalf("Build() error = %v, want ErrInvalidValue", err)
	}

	var typedNil *resource.Substance
	_, err = minimalCoverage().Contained(sample.Substance(), typedNil).Build()
	if !errors.Is(err, validate.ErrNilElement) {
		t.Fatalf("Build() error = %v, want ErrNilElement", err)
	}

	cov, err := minimalCoverage().Contained(sample.Substance()).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if n := len(cov.Contained()); n != 1 {
		t.Errorf("len(Contained()) = %d, want 1", n)
	}
	if !resource.EqualResources(cov.Contained()[0], sample.Substance()) {
		t.Error("contained substance differs from its source")
	}
}

func TestCoverageBuildWithLenientRoundTrip(t *testing.T) {
	lenient := minimalCoverage().
		Status(datatype.CodeOf("suspended")).
		Beneficiary(datatype.ReferenceTo("Practitioner/1"))

	if _, err := lenient.Build(); !errors.Is(err, validate.ErrInvalidCode) {
		t.Fatalf("Build() error = %v, want ErrInvalidCode", err)
	}

	cov, err := lenient.BuildWith(fhirmodel.LenientOptions()...)
	if err != nil {
		t.Fatalf("BuildWith(lenient) error = %v", err)
	}

	again, err := cov.ToBuilder().Build()
	if err != nil {
		t.Fatalf("ToBuilder().Build() of a lenient value error = %v", err)
	}
	if !again.Equal(cov) || again.Hash() != cov.Hash() {
		t.Error("rebuilt value differs from the lenient original")
	}

	edited, err := cov.ToBuilder().Network(datatype.StringOf("north")).Build()
	if err != nil {
		t.Fatalf("edited lenient value error = %v", err)
	}
	if edited.Network().Value() != "north" {
		t.Errorf("Network() = %v", edited.Network())
	}

	if _, err := cov.ToBuilder().BuildWith(); !errors.Is(err, validate.ErrInvalidCode) {
		t.Errorf("BuildWith() with defaults error = %v, want ErrInvalidCode", err)
	}
	if _, err := cov.ToBuilder().BuildWith(fhirmodel.WithCodeChecks(false)); !errors.Is(err, validate.ErrReferenceType) {
		t.Errorf("BuildWith(no code checks) error = %v, want ErrReferenceType", err)
	}
	if _, err := cov.ToBuilder().SetPayor(nil).Build(); !errors.Is(err, validate.ErrEmpty) {
		t.Errorf("lenient rebuild without payor error = %v, want ErrEmpty", err)
	}
}

func TestCoverageStructuralChecksIgnoreOptions(t *testing.T) {
	options := map[string][]fhirmodel.Option{
		"default": nil,
		"strict":  fhirmodel.StrictOptions(),
		"lenient": fhirmodel.LenientOptions(),
		"metrics": {fhirmodel.WithMetrics(fhirmodel.NewMetrics()), fhirmodel.WithCodeChecks(false)},
	}
	builds := []struct {
		name  string
		build *resource.CoverageBuilder
		want  error
	}{
		{"missing beneficiary", minimalCoverage().Beneficiary(nil), validate.ErrRequired},
		{"missing status", minimalCoverage().Status(nil), validate.ErrRequired},
		{"missing payor", minimalCoverage().SetPayor(nil), validate.ErrEmpty},
		{"nil payor", minimalCoverage().Payor(nil), validate.ErrNilElement},
	}

	for name, opts := range options {
		for _, tt := range builds {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				_, err := tt.build.BuildWith(opts...)
				if !errors.Is(err, tt.want) {
					t.Fatalf("BuildWith() error = %v, want %v", err, tt.want)
				}
			})
		}
	}
}
