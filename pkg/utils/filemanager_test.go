package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()

	paths := []string{"a.toon", "b.TOON", "c.txt", filepath.Join("sub", "d.toon")}
	for _, p := range paths {
		full := filepath.Join(dir, p)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := DiscoverFiles(dir, ".toon")
	if err != nil {
		t.Fatalf("DiscoverFiles error: %v", err)
	}

	// Extension matching is case-insensitive and recursive; .txt is skipped.
	if len(files) != 3 {
		t.Errorf("found %d files, want 3: %v", len(files), files)
	}
	for _, f := range files {
		if strings.HasSuffix(f, ".txt") {
			t.Errorf("non-matching file discovered: %s", f)
		}
	}
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a")
	b := filepath.Join(root, "b", "c")

	if err := EnsureDirectories(a, b, ""); err != nil {
		t.Fatalf("EnsureDirectories error: %v", err)
	}
	for _, d := range []string{a, b} {
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			t.Errorf("directory %s missing", d)
		}
	}
}

func TestWriteErrorLog(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteErrorLog(dir, []string{"first.toon: bad", "second.toon: worse"})
	if err != nil {
		t.Fatalf("WriteErrorLog error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "first.toon: bad") || !strings.Contains(out, "second.toon: worse") {
		t.Errorf("log missing entries:\n%s", out)
	}
	if !strings.HasPrefix(filepath.Base(path), "errors_") {
		t.Errorf("unexpected log name: %s", path)
	}
}
