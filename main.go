// =============================================================================
// TOON to JSON Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the TOON to JSON Converter CLI. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   toonconv process       - Process all TOON files in the input directory
//   toonconv inspect FILE  - Summarize a file's blocks without writing output
//   toonconv version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/toon  : The TOON tabular-block parser (the core library)
//   - internal/      : Config, converter pipeline, and output writers
//   - pkg/           : Shared utilities
//   - configs/       : Dataset-specific YAML configurations
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/TOON-to-JSON-conversion/cmd"
)

// main calls Execute from the cmd package, which initializes and runs the
// Cobra CLI.
func main() {
	cmd.Execute()
}
