// =============================================================================
// TOON to JSON Converter - JSON Writer Module
// =============================================================================
//
// This module renders a parsed TOON document as a JSON object. Block names
// become object keys in document order (order of first occurrence), each
// holding the block's record list. Scalar values keep their parsed types:
//
//   {
//     "points": [
//       {"x": 1, "y": 2.5, "label": "start"},
//       {"x": -3, "y": 0, "label": null}
//     ],
//     "flags": [
//       {"name": "fastPath", "enabled": true}
//     ]
//   }
//
// Record keys are emitted in encoding/json's map order (lexicographic),
// which keeps the output byte-stable across runs.
//
// =============================================================================

package jsonwriter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ginjaninja78/TOON-to-JSON-conversion/internal/toon"
)

// =============================================================================
// GENERATION OPTIONS
// =============================================================================

// GenerateOptions contains options for JSON generation.
type GenerateOptions struct {
	// Pretty enables indented output.
	// Default: false (compact)
	Pretty bool

	// Indent is the indentation string used when Pretty is set.
	// Default: "  " (two spaces)
	Indent string

	// TrailingNewline appends a final newline, which is friendlier to
	// shell tooling. Default: true.
	TrailingNewline bool
}

// DefaultOptions returns the default generation options.
func DefaultOptions() GenerateOptions {
	return GenerateOptions{
		Pretty:          false,
		Indent:          "  ",
		TrailingNewline: true,
	}
}

// =============================================================================
// GENERATION
// =============================================================================

// Generate renders the document to JSON bytes using the given options.
func Generate(doc *toon.Document, opts GenerateOptions) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	if opts.Pretty {
		indent := opts.Indent
		if indent == "" {
			indent = "  "
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", indent); err != nil {
			return nil, fmt.Errorf("failed to indent document: %w", err)
		}
		data = buf.Bytes()
	}

	if opts.TrailingNewline {
		data = append(data, '\n')
	}

	return data, nil
}
