// Package main is the entry point for the exampleboard CLI.
//
// ExampleBoard can be run either as a library (SDK) or as a standalone binary
// with YAML configuration. This CLI provides the standalone binary approach.
//
// Usage:
//
//	exampleboard serve -c examples.yaml    # Start the examples server
//	exampleboard validate -c examples.yaml # Validate configuration
//	exampleboard list -c examples.yaml     # Print the catalog
//	exampleboard version                   # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "exampleboard",
	Short: "Serve an interactive examples page",
	Long: `ExampleBoard serves a menu of example apps next to a live editor.

Every app has a shareable address (/examples/<id>). Selecting an app in the
menu loads its source files into the editor and updates the address bar.

Quick start:
  1. Create a config file (examples.yaml)
  2. Run: exampleboard serve -c examples.yaml
  3. Open http://localhost:8080 in your browser

Example config:
  port: 8080
  sections:
    - id: introduction
      title: Introduction
      apps:
        - id: hello-world
          title: Hello World
          dir: apps/hello-world`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this exampleboard binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("exampleboard %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
