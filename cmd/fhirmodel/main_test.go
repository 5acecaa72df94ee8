package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gofhir/model/pkg/logger"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithLog(t, args...)
	return out, err
}

func runWithLog(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	prev := logger.Default()
	t.Cleanup(func() { logger.SetDefault(prev) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTypes(t *testing.T) {
	out, err := run(t, "types", "--kind", "resource")
	require.NoError(t, err)

	want := []string{
		"Communication",
		"Coverage",
		"ImmunizationRecommendation",
		"Library",
		"MedicationAdministration",
		"MedicinalProductAuthorization",
		"PractitionerRole",
		"Substance",
	}
	assert.Equal(t, want, strings.Fields(out))
}

func TestTypes_JSON(t *testing.T) {
	out, err := run(t, "-o", "json", "types", "--kind", "backbone")
	require.NoError(t, err)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Contains(t, names, "Coverage.Class")
	assert.Contains(t, names, "Substance.Ingredient")
	assert.NotContains(t, names, "Coverage")
}

func TestTypes_UnknownKind(t *testing.T) {
	_, err := run(t, "types", "--kind", "widget")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "Coverage")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "Coverage (resource, DomainResource)", lines[0])
	assert.Equal(t, "http://hl7.org/fhir/StructureDefinition/Coverage", lines[1])
	assert.Contains(t, out, "Coverage.payor")
	assert.Contains(t, out, "{FinancialResourceStatusCodes}")
}

func TestDescribe_YAML(t *testing.T) {
	out, err := run(t, "--output", "yaml", "describe", "Coverage.Class")
	require.NoError(t, err)

	var info typeInfo
	require.NoError(t, yaml.Unmarshal([]byte(out), &info))
	assert.Equal(t, "Coverage.Class", info.Name)
	assert.Equal(t, "Coverage.class", info.Path)
	assert.Equal(t, "backbone-element", info.Kind)
	assert.Empty(t, info.URL)

	var names []string
	for _, f := range info.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"id", "extension", "modifierExtension", "type", "value", "name"}, names)
}

func TestExample(t *testing.T) {
	out, err := run(t, "-o", "json", "example", "Coverage")
	require.NoError(t, err)

	var values []pathValue
	require.NoError(t, json.Unmarshal([]byte(out), &values))

	got := make(map[string]string, len(values))
	for _, v := range values {
		got[v.Path] = v.Value
	}
	assert.Equal(t, "active", got["Coverage.status.value"])
	assert.Equal(t, "Patient/1", got["Coverage.beneficiary.reference.value"])
	assert.Equal(t, "Organization/1", got["Coverage.payor[0].reference.value"])
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown type", []string{"describe", "Patient"}, `unknown type "Patient"`},
		{"unknown example", []string{"example", "Patient"}, `unknown type "Patient"`},
		{"bad output", []string{"-o", "xml", "types"}, "output"},
		{"missing config", []string{"--config", "does-not-exist.yaml", "types"}, "does-not-exist.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExample_UsesConfiguredOptions(t *testing.T) {
	t.Setenv("FHIRMODEL_TRACE_BUILDS", "true")

	_, log, err := runWithLog(t, "--log-level", "debug", "example", "Coverage")
	require.NoError(t, err)
	assert.Contains(t, log, "build Coverage ok")

	t.Setenv("FHIRMODEL_TRACE_BUILDS", "false")
	_, log, err = runWithLog(t, "--log-level", "debug", "example", "Coverage")
	require.NoError(t, err)
	assert.NotContains(t, log, "build Coverage ok")
}
