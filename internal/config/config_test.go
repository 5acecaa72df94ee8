package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/pkg/logger"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, logger.LevelWarn, cfg.Level())
	assert.True(t, cfg.CheckReferences)
	assert.True(t, cfg.CheckCodes)
	assert.False(t, cfg.TraceBuilds)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("FHIRMODEL_OUTPUT", "JSON")
	t.Setenv("FHIRMODEL_LOG_LEVEL", "debug")
	t.Setenv("FHIRMODEL_CHECK_REFERENCES", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, logger.LevelDebug, cfg.Level())
	assert.False(t, cfg.CheckReferences)
	assert.True(t, cfg.CheckCodes)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fhirmodel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: yaml\ncheck_codes: false\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.False(t, cfg.CheckCodes)

	t.Setenv("FHIRMODEL_OUTPUT", "text")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, OutputText, cfg.Output, "environment overrides the file")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("FHIRMODEL_OUTPUT", "xml")
	_, err = Load("")
	require.ErrorContains(t, err, "output must be")

	t.Setenv("FHIRMODEL_OUTPUT", "text")
	t.Setenv("FHIRMODEL_LOG_LEVEL", "chatty")
	_, err = Load("")
	require.ErrorContains(t, err, "unknown log level")
}

func TestOptions(t *testing.T) {
	cfg := &Config{CheckReferences: false, CheckCodes: true, TraceBuilds: true}

	got := fhirmodel.Apply(cfg.Options()...)
	require.NotNil(t, got)
	assert.False(t, got.CheckReferenceTypes)
	assert.True(t, got.CheckCodes)
	assert.True(t, got.TraceBuilds)
}
