// =============================================================================
// TOON to JSON Converter - Inspect Command
// =============================================================================
//
// This file defines the 'inspect' command, which parses one or more TOON
// files and prints a per-block summary without writing any output files.
// It is the quickest way to check what a file contains and whether any
// declared row counts disagree with the data.
//
// COMMAND USAGE:
//   toonconv inspect FILE [FILE...]
//
// OUTPUT:
//   data.toon
//     points   3 record(s)   fields: x, y, label
//     events   2 record(s)   fields: time, kind   [declared 5, parsed 2]
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/TOON-to-JSON-conversion/internal/toon"
)

// inspectCmd represents the 'inspect' command.
var inspectCmd = &cobra.Command{
	Use:   "inspect FILE [FILE...]",
	Short: "Parse TOON files and print a block summary",
	Long: `The inspect command parses each given file and prints one line per block:
the block name, the number of records parsed, and the field list. Blocks
whose declared row count disagrees with the parsed count are annotated;
the disagreement is informational and never an error.`,
	Args: cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			if err := inspectFile(path); err != nil {
				return err
			}
		}
		return nil
	},
}

// init registers the inspect command.
func init() {
	rootCmd.AddCommand(inspectCmd)
}

// inspectFile parses one file and prints its block summary.
func inspectFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Collect count mismatches keyed by block name. A name can appear in
	// several merged blocks, so keep every diagnostic.
	mismatches := make(map[string][]toon.Diagnostic)
	doc := toon.Parse(string(data), toon.WithDiagnostics(func(d toon.Diagnostic) {
		mismatches[d.Block] = append(mismatches[d.Block], d)
	}))

	fmt.Println(path)

	if doc.Len() == 0 {
		fmt.Println("  (no blocks)")
		return nil
	}

	for _, name := range doc.Names() {
		line := fmt.Sprintf("  %-12s %d record(s)   fields: %s",
			name,
			len(doc.Records(name)),
			strings.Join(doc.Fields(name), ", "),
		)
		for _, d := range mismatches[name] {
			line += fmt.Sprintf("   [declared %d, parsed %d]", d.Declared, d.Actual)
		}
		fmt.Println(line)
	}

	return nil
}
