package jsonwriter

import (
	"strings"
	"testing"

	"github.com/ginjaninja78/TOON-to-JSON-conversion/internal/toon"
)

func TestGenerateCompact(t *testing.T) {
	doc := toon.Parse(`pts[2]{x,y}:
1, 2.5
-3, null
flags[1]{name,on}:
"fastPath", true`)

	opts := DefaultOptions()
	opts.TrailingNewline = false

	data, err := Generate(doc, opts)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	want := `{"pts":[{"x":1,"y":2.5},{"x":-3,"y":null}],"flags":[{"name":"fastPath","on":true}]}`
	if string(data) != want {
		t.Errorf("Generate = %s\nwant %s", data, want)
	}
}

func TestGeneratePretty(t *testing.T) {
	doc := toon.Parse("a[1]{x}:\n1")

	data, err := Generate(doc, GenerateOptions{Pretty: true, Indent: "  "})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "\n  \"a\"") {
		t.Errorf("pretty output missing indentation:\n%s", out)
	}
}

func TestGenerateTrailingNewline(t *testing.T) {
	doc := toon.Parse("a[1]{x}:\n1")

	data, err := Generate(doc, DefaultOptions())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Error("default options did not append a trailing newline")
	}
}

func TestGenerateEmptyDocument(t *testing.T) {
	doc := toon.Parse("")

	opts := DefaultOptions()
	opts.TrailingNewline = false

	data, err := Generate(doc, opts)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Generate = %s, want {}", data)
	}
}
