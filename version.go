package fhirmodel

// FHIRVersion identifies a FHIR release.
type FHIRVersion string

// Supported FHIR versions.
const (
	// R4 is FHIR Release 4 (4.0.1)
	R4 FHIRVersion = "R4"
)

// String returns the version string.
func (v FHIRVersion) String() string {
	return string(v)
}

// IsValid returns true if the model implements this version.
func (v FHIRVersion) IsValid() bool {
	return v == R4
}

// Release returns the full release number, e.g. "4.0.1".
func (v FHIRVersion) Release() string {
	cfg, ok := getVersionConfig(v)
	if !ok {
		return ""
	}
	return cfg.FHIRVersionString
}

// BaseURL returns the canonical base of the core definitions for the version.
func (v FHIRVersion) BaseURL() string {
	cfg, ok := getVersionConfig(v)
	if !ok {
		return ""
	}
	return cfg.BaseURL
}

// versionConfig holds version-specific configuration.
type versionConfig struct {
	// FHIRVersionString is the version string used in StructureDefinitions
	FHIRVersionString string

	// BaseURL prefixes StructureDefinition and ValueSet canonicals
	BaseURL string
}

// versionConfigs maps FHIR versions to their configurations.
var versionConfigs = map[FHIRVersion]versionConfig{
	R4: {
		FHIRVersionString: "4.0.1",
		BaseURL:           "http://hl7.org/fhir",
	},
}

// getVersionConfig returns the configuration for a FHIR version.
func getVersionConfig(v FHIRVersion) (versionConfig, bool) {
	cfg, ok := versionConfigs[v]
	return cfg, ok
}

// Version is the FHIR version implemented by this module.
const Version = R4

// StructureDefinitionURL returns the canonical url of the core definition of
// a type, e.g. "http://hl7.org/fhir/StructureDefinition/Coverage".
func (v FHIRVersion) StructureDefinitionURL(typeName string) string {
	base := v.BaseURL()
	if base == "" || typeName == "" {
		return ""
	}
	return base + "/StructureDefinition/" + typeName
}
