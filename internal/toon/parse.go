// =============================================================================
// TOON to JSON Converter - Document Parser
// =============================================================================
//
// This file drives the full parse: one left-to-right pass over the
// normalized lines, delegating header decomposition and scalar coercion to
// the other files in this package.
//
// STATE MACHINE:
//   The parser is either scanning (no open block) or inside a block. A
//   header line closes the open block, if any, and atomically opens the
//   next one; end of input closes the last open block. A data line inside
//   a block appends one record. A data line before any header has no
//   target block and is skipped - a tolerated stray, not an error.
//
// ERROR POLICY:
//   Parsing never fails. Declared/actual row-count disagreements, short or
//   long rows, and stray pre-header lines all degrade gracefully; count
//   mismatches are reported through the injected diagnostic sink (default
//   no-op) and the best-effort Document is always returned.
//
// =============================================================================

package toon

import "strings"

// =============================================================================
// DIAGNOSTICS
// =============================================================================

// Diagnostic reports a non-fatal oddity found while parsing. Today the only
// emitted diagnostic is a declared/actual row-count mismatch.
type Diagnostic struct {
	// Block is the name of the block the diagnostic refers to.
	Block string

	// Declared is the row count from the block header.
	Declared int

	// Actual is the number of rows actually parsed for that header.
	Actual int
}

// Option configures a single parse call.
type Option func(*parser)

// WithDiagnostics installs a sink for non-fatal diagnostics. The sink is
// called synchronously during the parse; a nil sink restores the default
// no-op behavior.
func WithDiagnostics(sink func(Diagnostic)) Option {
	return func(p *parser) {
		p.diag = sink
	}
}

// =============================================================================
// ENTRY POINTS
// =============================================================================

// Parse parses a TOON uniform-tabular document from a text buffer and
// returns the resulting Document. It never fails: malformed but lexically
// parseable input degrades per the error policy above.
//
// Parse holds no state between calls and mutates nothing outside its own
// frame, so concurrent calls need no coordination.
func Parse(text string, opts ...Option) *Document {
	p := &parser{doc: newDocument()}
	for _, opt := range opts {
		opt(p)
	}

	for _, line := range normalizeLines(text) {
		p.consume(line)
	}
	p.closeBlock()

	return p.doc
}

// ParseLines is a convenience entry point for callers holding pre-split
// lines. The lines are joined with a newline separator and parsed exactly
// as Parse would. The slice is not retained.
func ParseLines(lines []string, opts ...Option) *Document {
	return Parse(strings.Join(lines, "\n"), opts...)
}

// =============================================================================
// PARSER
// =============================================================================

// parser holds the per-call state: the document being built and the block
// currently open, if any. No other component holds cross-line state.
type parser struct {
	doc  *Document
	diag func(Diagnostic)

	header *Header
	rows   []Record
}

// consume processes one normalized line.
func (p *parser) consume(line string) {
	if h := parseHeader(line); h != nil {
		// A header both closes the prior block and opens the next.
		p.closeBlock()
		p.header = h
		return
	}

	if p.header == nil {
		// Data-shaped line before any header: no target block, skip it.
		return
	}

	p.rows = append(p.rows, assembleRecord(p.header.Fields, line))
}

// closeBlock finalizes the open block, if any: emits a count-mismatch
// diagnostic when warranted and merges the rows into the document under the
// block's name.
func (p *parser) closeBlock() {
	if p.header == nil {
		return
	}

	if p.diag != nil && p.header.DeclaredCount != len(p.rows) {
		p.diag(Diagnostic{
			Block:    p.header.Name,
			Declared: p.header.DeclaredCount,
			Actual:   len(p.rows),
		})
	}

	p.doc.append(p.header.Name, p.header.Fields, p.rows)
	p.header = nil
	p.rows = nil
}

// =============================================================================
// BLOCK ASSEMBLY
// =============================================================================

// assembleRecord turns one data line into a record under the given field
// list. The line is comma-split without dropping interior empties (a row
// may legitimately carry fewer values than fields), each token is trimmed,
// and trailing fully-blank tokens are removed before mapping. Token i is
// stored under fields[i]; a missing token is the empty token. When a header
// repeats a field name, the later occurrence overwrites the earlier one
// within the record.
func assembleRecord(fields []string, line string) Record {
	tokens := strings.Split(line, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}

	rec := make(Record, len(fields))
	for i, field := range fields {
		token := ""
		if i < len(tokens) {
			token = tokens[i]
		}
		rec[field] = Coerce(token)
	}

	return rec
}
