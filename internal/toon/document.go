// =============================================================================
// TOON to JSON Converter - Parsed Document
// =============================================================================
//
// Document is the full parse result: an insertion-ordered mapping from block
// name to the records of every block sharing that name, concatenated in
// document order. A Document is created fresh per parse call, is owned by
// the caller after return, and is never retained or mutated by the parser.
//
// =============================================================================

package toon

import (
	"bytes"
	"encoding/json"
)

// Record is one parsed row: a mapping from field name to a coerced scalar.
// Field order follows the block header, but the record itself is a named
// mapping, not a sequence.
type Record map[string]Scalar

// Document is the insertion-ordered result of a parse. Names are ordered by
// first occurrence; later blocks with an already-seen name append records.
type Document struct {
	names  []string
	blocks map[string][]Record

	// fields tracks, per name, the ordered union of header fields across
	// every merged block. The writers use it for stable column order.
	fields map[string][]string
}

func newDocument() *Document {
	return &Document{
		blocks: make(map[string][]Record),
		fields: make(map[string][]string),
	}
}

// append merges one finished block into the document: a new name is
// registered in insertion order, an existing name has the rows appended.
func (d *Document) append(name string, fields []string, records []Record) {
	if _, seen := d.blocks[name]; !seen {
		d.names = append(d.names, name)
		// A block with zero rows still produces an (empty) record list.
		d.blocks[name] = []Record{}
	}
	d.blocks[name] = append(d.blocks[name], records...)

	// Extend the field order with any columns this block introduced.
	known := make(map[string]bool, len(d.fields[name]))
	for _, f := range d.fields[name] {
		known[f] = true
	}
	for _, f := range fields {
		if !known[f] {
			known[f] = true
			d.fields[name] = append(d.fields[name], f)
		}
	}
}

// Len returns the number of distinct block names.
func (d *Document) Len() int { return len(d.names) }

// Names returns the block names in order of first occurrence.
func (d *Document) Names() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	return names
}

// Records returns the records for a block name, in document order.
// It returns nil for a name that never appeared.
func (d *Document) Records(name string) []Record { return d.blocks[name] }

// Fields returns the ordered union of header fields seen for a block name.
// For a name declared by a single header this is exactly that header's
// field list; merged blocks with differing headers contribute their new
// fields in order of first appearance.
func (d *Document) Fields(name string) []string { return d.fields[name] }

// MarshalJSON encodes the document as a JSON object whose keys appear in
// insertion order. Record keys follow encoding/json map behavior
// (lexicographic), which keeps output deterministic.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, name := range d.names {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		rows, err := json.Marshal(d.blocks[name])
		if err != nil {
			return nil, err
		}
		buf.Write(rows)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
