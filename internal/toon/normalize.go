// =============================================================================
// TOON to JSON Converter - Line Normalizer
// =============================================================================
//
// Splits raw document text into the trimmed, non-empty, non-comment lines
// the parser operates on. Comment stripping is purely lexical: there is no
// lookahead and no escaping, so a data value that begins a line with "#" or
// "//" is indistinguishable from a comment and is dropped. This is a known,
// accepted limitation of the format.
//
// =============================================================================

package toon

import "strings"

// normalizeLines splits text on line breaks, trims each line, and discards
// lines that are empty after trimming or that start with a comment marker.
// Trailing "\r" from CRLF input is removed by the trim.
func normalizeLines(text string) []string {
	var lines []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		// Skip blank lines and comments.
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		lines = append(lines, line)
	}

	return lines
}
