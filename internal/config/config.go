// Package config loads the settings of the fhirmodel command from the
// environment and an optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/pkg/logger"
)

// EnvPrefix prefixes every environment variable, e.g. FHIRMODEL_OUTPUT.
const EnvPrefix = "FHIRMODEL"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the command settings.
type Config struct {
	Output          string `mapstructure:"OUTPUT"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	CheckReferences bool   `mapstructure:"CHECK_REFERENCES"`
	CheckCodes      bool   `mapstructure:"CHECK_CODES"`
	TraceBuilds     bool   `mapstructure:"TRACE_BUILDS"`
}

var keys = []string{"OUTPUT", "LOG_LEVEL", "CHECK_REFERENCES", "CHECK_CODES", "TRACE_BUILDS"}

// Load reads the configuration. Environment variables override the file;
// file is optional and may be any format viper understands.
func Load(file string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("OUTPUT", OutputText)
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("CHECK_REFERENCES", true)
	v.SetDefault("CHECK_CODES", true)
	v.SetDefault("TRACE_BUILDS", false)

	// Bind env vars explicitly so Unmarshal picks them up
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Output = strings.ToLower(cfg.Output)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the output format and log level.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("output must be %q, %q or %q, got %q", OutputText, OutputJSON, OutputYAML, c.Output)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() logger.Level {
	lvl, _ := logger.ParseLevel(c.LogLevel)
	return lvl
}

// Options returns the build options selected by the configuration.
func (c *Config) Options() []fhirmodel.Option {
	return []fhirmodel.Option{
		fhirmodel.WithReferenceTypeChecks(c.CheckReferences),
		fhirmodel.WithCodeChecks(c.CheckCodes),
		fhirmodel.WithBuildTracing(c.TraceBuilds),
	}
}
