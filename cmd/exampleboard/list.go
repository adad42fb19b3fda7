package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jpalmerr/exampleboard"
	"github.com/jpalmerr/exampleboard/config"
	"github.com/spf13/cobra"
)

// listCmd prints the catalog as a table.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the example apps in a config file",
	Long: `Print every app in the catalog with its section, page path and input files.

Example:
  exampleboard list -c examples.yaml`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = listCmd.MarkFlagRequired("config")
}

func runList(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	sections, err := config.BuildSections(cfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return writeCatalog(cmd.OutOrStdout(), sections)
}

// writeCatalog renders sections as an aligned table.
func writeCatalog(out io.Writer, sections []exampleboard.Section) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SECTION\tAPP\tTITLE\tPATH\tINPUTS")
	for _, s := range sections {
		for _, app := range s.Apps() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t/examples/%s\t%d\n",
				s.ID(), app.ID(), app.Title(), app.ID(), len(app.Inputs()))
		}
	}
	return tw.Flush()
}
