// =============================================================================
// TOON to JSON Converter - XLSX Writer Module
// =============================================================================
//
// This module renders a parsed TOON document as an XLSX workbook, one
// worksheet per block:
//
//   Sheet "points"
//   | x  | y   | label |
//   | 1  | 2.5 | start |
//   | -3 | 0   |       |
//
// The header row carries the block's field names in header order (for
// merged blocks with differing headers, the ordered union). Cells keep
// their parsed types: numbers are written as numbers, booleans as
// booleans, nulls as blank cells.
//
// SHEET NAMING:
//   Excel limits sheet names to 31 characters and forbids : \ / ? * [ ].
//   Offending characters are replaced with "_" and long names truncated;
//   a collision after sanitizing gets a numeric suffix.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/TOON-to-JSON-conversion/internal/toon"
)

// sheetNameMax is the sheet name length limit imposed by the XLSX format.
const sheetNameMax = 31

// =============================================================================
// GENERATION
// =============================================================================

// Generate builds an in-memory workbook from the document. The caller owns
// the returned file and must Close it.
func Generate(doc *toon.Document) (*excelize.File, error) {
	f := excelize.NewFile()

	used := make(map[string]bool)
	for _, name := range doc.Names() {
		sheet := sheetName(name, used)
		used[sheet] = true

		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}

		if err := writeBlock(f, sheet, doc.Fields(name), doc.Records(name)); err != nil {
			return nil, fmt.Errorf("failed to write sheet %s: %w", sheet, err)
		}
	}

	// Drop the default sheet once real ones exist.
	if doc.Len() > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("failed to remove default sheet: %w", err)
		}
	}

	return f, nil
}

// WriteFile renders the document and saves the workbook to path.
func WriteFile(doc *toon.Document, path string) error {
	f, err := Generate(doc)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeBlock writes the header row and one row per record.
func writeBlock(f *excelize.File, sheet string, fields []string, records []toon.Record) error {
	for col, field := range fields {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, field); err != nil {
			return err
		}
	}

	for row, rec := range records {
		for col, field := range fields {
			val, ok := rec[field]
			if !ok || val.IsNull() {
				// Nulls and fields this record's header never declared
				// stay blank.
				continue
			}

			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, cellValue(val)); err != nil {
				return err
			}
		}
	}

	return nil
}

// cellValue maps a scalar to the native cell type.
func cellValue(s toon.Scalar) interface{} {
	switch s.Kind() {
	case toon.KindNumber:
		return s.AsFloat()
	case toon.KindBool:
		return s.AsBool()
	default:
		return s.AsStr()
	}
}

// sheetName sanitizes a block name into a legal, unused sheet name.
func sheetName(name string, used map[string]bool) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, name)

	if clean == "" {
		clean = "block"
	}
	if len(clean) > sheetNameMax {
		clean = clean[:sheetNameMax]
	}

	if !used[clean] {
		return clean
	}

	// Collision after sanitizing: append a numeric suffix.
	for i := 2; ; i++ {
		suffix := fmt.Sprintf("_%d", i)
		candidate := clean
		if len(candidate)+len(suffix) > sheetNameMax {
			candidate = candidate[:sheetNameMax-len(suffix)]
		}
		candidate += suffix
		if !used[candidate] {
			return candidate
		}
	}
}
