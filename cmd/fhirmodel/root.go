package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/config"
	"github.com/gofhir/model/pkg/logger"
)

type app struct {
	out    io.Writer
	errOut io.Writer
	cfg    *config.Config

	configFile string
	output     string
	logLevel   string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "fhirmodel",
		Short:         "Inspect the FHIR R4 object model",
		Version:       "FHIR " + fhirmodel.Version.Release(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text, json, yaml")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error, none")

	root.AddCommand(a.typesCmd())
	root.AddCommand(a.describeCmd())
	root.AddCommand(a.exampleCmd())
	return root
}

// setup loads the configuration, applies flag overrides and configures the
// logger. Build options are taken from a.cfg where values are built.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = a.output
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger.SetDefault(logger.NewConsole(a.errOut, cfg.Level()))
	logger.Debug("configured: output=%s codes=%t references=%t", cfg.Output, cfg.CheckCodes, cfg.CheckReferences)
	return nil
}

// render writes v as json or yaml, or calls text for the text format.
func (a *app) render(v any, text func(io.Writer) error) error {
	switch a.cfg.Output {
	case config.OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(a.out, string(data))
		return err
	case config.OutputYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return text(a.out)
	}
}
