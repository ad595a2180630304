// =============================================================================
// TOON to JSON Converter - Block Header Matching
// =============================================================================
//
// A block header declares a name, a row count, and a field list:
//
//   points[3]{x,y,label}:
//
// A line is a header if and only if it matches, with nothing else on the
// line: an identifier, "[", digits, "]", "{", one or more non-"}" chars,
// "}", ":". Any line that fails the pattern is treated as data.
//
// =============================================================================

package toon

import (
	"regexp"
	"strconv"
	"strings"
)

// headerPattern is the exact, line-anchored header grammar.
var headerPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\[([0-9]+)\]\{([^}]+)\}:$`)

// Header is the decomposed form of one block header line. It exists only
// while the block's rows are being consumed.
type Header struct {
	// Name is the block identifier. Blocks sharing a name are merged.
	Name string

	// DeclaredCount is the bracketed row count. It is advisory metadata
	// only: it never truncates or pads the parsed rows, and a mismatch
	// with the actual row count is surfaced as a non-fatal diagnostic.
	DeclaredCount int

	// Fields are the brace contents split on commas, trimmed, with
	// entries that are empty after trimming dropped. A field list that
	// reduces to zero fields is allowed and propagates as-is.
	Fields []string
}

// parseHeader classifies a normalized line. It returns nil if the line is
// not a header. Decomposition of a matching line cannot fail.
func parseHeader(line string) *Header {
	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	// The regexp guarantees m[2] is all digits.
	count, _ := strconv.Atoi(m[2])

	var fields []string
	for _, f := range strings.Split(m[3], ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		fields = append(fields, f)
	}

	return &Header{
		Name:          m[1],
		DeclaredCount: count,
		Fields:        fields,
	}
}
