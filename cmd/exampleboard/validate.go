package main

import (
	"fmt"

	"github.com/jpalmerr/exampleboard/config"
	"github.com/spf13/cobra"
)

// validateCmd validates a config file without starting the server.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate an ExampleBoard configuration file without starting the server.

This command parses the YAML, expands environment variables, validates all
fields and reads every referenced input file. It's useful for CI/CD
pipelines or pre-deployment checks.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  exampleboard validate -c examples.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	sections, err := config.BuildSections(cfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	inputs := 0
	for _, s := range sections {
		for _, app := range s.Apps() {
			inputs += len(app.Inputs())
		}
	}

	defaultApp := cfg.DefaultApp
	if defaultApp == "" {
		defaultApp = "(first app)"
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Port:        %d\n", cfg.Port)
	fmt.Printf("  Session TTL: %s\n", cfg.SessionTTL.Duration())
	fmt.Printf("  Default app: %s\n", defaultApp)
	fmt.Printf("  Catalog:     %d sections, %d apps, %d input files\n",
		len(sections), cfg.AppCount(), inputs)

	return nil
}
