package toon

import (
	"reflect"
	"testing"
)

func TestParseWellFormedBlock(t *testing.T) {
	input := `points[2]{x,y}:
1, 2.5
-3, "hi"`

	doc := Parse(input)

	if doc.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", doc.Len())
	}

	recs := doc.Records("points")
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}

	if got := recs[0]["x"]; got != Number(1) {
		t.Errorf("row 1 x = %v, want 1", got)
	}
	if got := recs[0]["y"]; got != Number(2.5) {
		t.Errorf("row 1 y = %v, want 2.5", got)
	}
	if got := recs[1]["x"]; got != Number(-3) {
		t.Errorf("row 2 x = %v, want -3", got)
	}
	if got := recs[1]["y"]; got != Str("hi") {
		t.Errorf("row 2 y = %v, want \"hi\"", got)
	}
}

// Two headers sharing a name concatenate their record lists in document
// order; they never replace each other.
func TestParseMergeByName(t *testing.T) {
	input := `name[1]{a}:
1
other[1]{b}:
x
name[1]{a}:
2`

	doc := Parse(input)

	wantNames := []string{"name", "other"}
	if !reflect.DeepEqual(doc.Names(), wantNames) {
		t.Fatalf("Names() = %v, want %v", doc.Names(), wantNames)
	}

	recs := doc.Records("name")
	if len(recs) != 2 {
		t.Fatalf("name records = %d, want 2", len(recs))
	}
	if recs[0]["a"] != Number(1) || recs[1]["a"] != Number(2) {
		t.Errorf("merged rows = %v, want [{a:1} {a:2}]", recs)
	}
}

// Blank lines and comment lines between rows must not affect the result.
func TestParseCommentAndBlankStripping(t *testing.T) {
	clean := `pts[2]{x}:
1
2`
	noisy := `
# leading comment
pts[2]{x}:

// interior comment
1

# more noise
2
`

	if !reflect.DeepEqual(Parse(noisy), Parse(clean)) {
		t.Error("noisy document did not parse identically to the clean one")
	}
}

// A declared count that disagrees with the actual row count emits a
// diagnostic but never raises an error, truncates, or pads.
func TestParseDeclaredCountMismatch(t *testing.T) {
	var diags []Diagnostic
	doc := Parse("pts[5]{x}:\n1\n2", WithDiagnostics(func(d Diagnostic) {
		diags = append(diags, d)
	}))

	if got := len(doc.Records("pts")); got != 2 {
		t.Errorf("records = %d, want 2", got)
	}

	if len(diags) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(diags))
	}
	want := Diagnostic{Block: "pts", Declared: 5, Actual: 2}
	if diags[0] != want {
		t.Errorf("diagnostic = %+v, want %+v", diags[0], want)
	}
}

func TestParseNoDiagnosticWhenCountsAgree(t *testing.T) {
	called := false
	Parse("pts[1]{x}:\n7", WithDiagnostics(func(Diagnostic) { called = true }))
	if called {
		t.Error("diagnostic emitted for a matching count")
	}
}

// Data-shaped lines before any header have no target block and contribute
// nothing.
func TestParseStrayPreHeaderLines(t *testing.T) {
	doc := Parse("1, 2, 3\nstray\npts[1]{x}:\n9")

	if doc.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", doc.Len())
	}
	recs := doc.Records("pts")
	if len(recs) != 1 || recs[0]["x"] != Number(9) {
		t.Errorf("records = %v, want [{x:9}]", recs)
	}
}

// A row with fewer tokens than fields fills the trailing fields from the
// empty token; the keys are never omitted.
func TestParseShortRow(t *testing.T) {
	doc := Parse("pts[1]{x,y,z}:\n1")

	rec := doc.Records("pts")[0]
	if len(rec) != 3 {
		t.Fatalf("record has %d fields, want 3", len(rec))
	}
	if rec["y"] != Str("") || rec["z"] != Str("") {
		t.Errorf("missing trailing values = %v/%v, want empty strings", rec["y"], rec["z"])
	}
}

// Extra tokens beyond the field list are ignored.
func TestParseLongRow(t *testing.T) {
	doc := Parse("pts[1]{x}:\n1, 2, 3")

	rec := doc.Records("pts")[0]
	if len(rec) != 1 {
		t.Fatalf("record has %d fields, want 1", len(rec))
	}
	if rec["x"] != Number(1) {
		t.Errorf("x = %v, want 1", rec["x"])
	}
}

// Trailing fully-blank tokens are removed before mapping, so "1,," maps
// only one token; interior empties are kept positional.
func TestParseTrailingBlankTokens(t *testing.T) {
	doc := Parse("pts[1]{a,b,c}:\n1, ,2,,")

	rec := doc.Records("pts")[0]
	if rec["a"] != Number(1) {
		t.Errorf("a = %v, want 1", rec["a"])
	}
	if rec["b"] != Str("") {
		t.Errorf("b = %v, want empty string (interior empty token kept)", rec["b"])
	}
	if rec["c"] != Number(2) {
		t.Errorf("c = %v, want 2", rec["c"])
	}
}

// Later duplicate field names overwrite earlier ones within a record.
func TestParseDuplicateFieldNames(t *testing.T) {
	doc := Parse("pts[1]{a,a}:\n1, 2")

	rec := doc.Records("pts")[0]
	if len(rec) != 1 {
		t.Fatalf("record has %d fields, want 1", len(rec))
	}
	if rec["a"] != Number(2) {
		t.Errorf("a = %v, want 2 (later duplicate wins)", rec["a"])
	}
}

// A header whose field list reduced to zero fields still consumes its rows
// and yields empty records.
func TestParseZeroFieldBlock(t *testing.T) {
	doc := Parse("blank[2]{,,}:\n1, 2\n3")

	recs := doc.Records("blank")
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	for i, rec := range recs {
		if len(rec) != 0 {
			t.Errorf("record %d has %d fields, want 0", i+1, len(rec))
		}
	}
}

// A header directly followed by another header closes the first block with
// zero rows; the name still appears in the document.
func TestParseEmptyBlock(t *testing.T) {
	doc := Parse("empty[0]{x}:\nnext[1]{y}:\n1")

	if recs := doc.Records("empty"); recs == nil || len(recs) != 0 {
		t.Errorf("empty block records = %v, want empty non-nil list", recs)
	}
	if len(doc.Records("next")) != 1 {
		t.Errorf("next records = %d, want 1", len(doc.Records("next")))
	}
}

func TestParseLinesMatchesParse(t *testing.T) {
	lines := []string{"pts[1]{x,y}:", "1, 2"}
	fromLines := ParseLines(lines)
	fromText := Parse("pts[1]{x,y}:\n1, 2")

	if !reflect.DeepEqual(fromLines, fromText) {
		t.Error("ParseLines result differs from Parse on equivalent input")
	}
}

// Parsing the same buffer twice yields element-wise equal documents.
func TestParseIdempotence(t *testing.T) {
	input := `a[1]{x}:
1
b[2]{y,z}:
true, null
"q", 3`

	if !reflect.DeepEqual(Parse(input), Parse(input)) {
		t.Error("two parses of the same buffer are not equal")
	}
}

// Word-spelled non-finite tokens are strings, so any parsed document stays
// JSON-encodable and element-wise equal to a re-parse of the same buffer.
func TestParseNonFiniteTokensStayStrings(t *testing.T) {
	input := "pts[2]{x,y}:\nNaN, Inf\n1_000, 0x1p2"

	doc := Parse(input)
	rec := doc.Records("pts")[0]
	if rec["x"] != Str("NaN") || rec["y"] != Str("Inf") {
		t.Errorf("row 1 = %v, want string NaN / string Inf", rec)
	}

	data, err := doc.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	want := `{"pts":[{"x":"NaN","y":"Inf"},{"x":"1_000","y":"0x1p2"}]}`
	if string(data) != want {
		t.Errorf("MarshalJSON = %s\nwant %s", data, want)
	}

	if !reflect.DeepEqual(doc, Parse(input)) {
		t.Error("document with non-finite-looking tokens is not re-parse equal")
	}
}

func TestDocumentMarshalJSON(t *testing.T) {
	doc := Parse(`b[1]{n}:
1
a[1]{s}:
hi`)

	data, err := doc.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}

	// Keys must appear in insertion order, not sorted.
	want := `{"b":[{"n":1}],"a":[{"s":"hi"}]}`
	if string(data) != want {
		t.Errorf("MarshalJSON = %s, want %s", data, want)
	}
}

func TestDocumentFieldsOrder(t *testing.T) {
	doc := Parse(`m[1]{a,b}:
1, 2
m[1]{b,c}:
3, 4`)

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(doc.Fields("m"), want) {
		t.Errorf("Fields(m) = %v, want %v", doc.Fields("m"), want)
	}
}

func TestNormalizeLines(t *testing.T) {
	got := normalizeLines("  a \r\n\n# c\n// d\n b\n   \n")
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("normalizeLines = %v, want %v", got, want)
	}
}
