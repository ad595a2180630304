// =============================================================================
// TOON to JSON Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (toonconv)
//   ├── processCmd (toonconv process)
//   ├── inspectCmd (toonconv inspect)
//   └── versionCmd (toonconv version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the main configuration file.
// It can be overridden with the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "toonconv",
	Short: "TOON to JSON Converter - Transform tabular TOON datasets into JSON or XLSX",

	Long: `TOON to JSON Converter is a CLI tool that parses the uniform tabular
block subset of TOON (Token-Oriented Object Notation) and renders each
dataset as JSON and/or XLSX.

Key Features:
  - Lenient single-pass parser: malformed rows degrade, they never abort
  - Merge-by-name semantics across blocks sharing a name
  - Typed output: numbers, booleans, nulls, and strings survive coercion
  - Dataset-specific configuration via YAML
  - Concurrent processing with per-file isolation

Example Usage:
  toonconv process                     # Process all files in the input directory
  toonconv process --config ./my.yaml  # Use a custom configuration file
  toonconv inspect data.toon           # Summarize a file without writing output`,

	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand: print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called once, by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the persistent flags shared by every subcommand.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
