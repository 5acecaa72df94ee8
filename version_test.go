package fhirmodel

import (
	"testing"
)

func TestFHIRVersion_String(t *testing.T) {
	if got := R4.String(); got != "R4" {
		t.Errorf("R4.String() = %q; want %q", got, "R4")
	}
}

func TestFHIRVersion_IsValid(t *testing.T) {
	tests := []struct {
		version FHIRVersion
		want    bool
	}{
		{R4, true},
		{"R4B", false},
		{"R5", false},
		{"invalid", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.version.IsValid(); got != tt.want {
			t.Errorf("%v.IsValid() = %v; want %v", tt.version, got, tt.want)
		}
	}
}

func TestFHIRVersion_Release(t *testing.T) {
	tests := []struct {
		version FHIRVersion
		release string
		base    string
	}{
		{R4, "4.0.1", "http://hl7.org/fhir"},
		{"R5", "", ""},
	}

	for _, tt := range tests {
		if got := tt.version.Release(); got != tt.release {
			t.Errorf("%v.Release() = %q; want %q", tt.version, got, tt.release)
		}
		if got := tt.version.BaseURL(); got != tt.base {
			t.Errorf("%v.BaseURL() = %q; want %q", tt.version, got, tt.base)
		}
	}
}

func TestVersionConstant(t *testing.T) {
	if Version != R4 {
		t.Errorf("Version = %v; want R4", Version)
	}
	cfg, ok := getVersionConfig(Version)
	if !ok {
		t.Fatal("no config for Version")
	}
	if cfg.FHIRVersionString != "4.0.1" {
		t.Errorf("FHIRVersionString = %q", cfg.FHIRVersionString)
	}
}

func TestStructureDefinitionURL(t *testing.T) {
	tests := []struct {
		version FHIRVersion
		typ     string
		want    string
	}{
		{R4, "Coverage", "http://hl7.org/fhir/StructureDefinition/Coverage"},
		{R4, "", ""},
		{"R5", "Coverage", ""},
	}
	for _, tt := range tests {
		if got := tt.version.StructureDefinitionURL(tt.typ); got != tt.want {
			t.Errorf("%v.StructureDefinitionURL(%q) = %q; want %q", tt.version, tt.typ, got, tt.want)
		}
	}
}
