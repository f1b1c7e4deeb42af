package jsonutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodePretty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePretty(&buf, map[string]int{"k": 9}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "{\n  \"k\": 9\n}\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestWriteFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.json")
	if err := WriteFile(p, []int{1, 2}); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "[\n  1,\n  2\n]\n" {
		t.Fatalf("unexpected file body %q", raw)
	}
	if err := WriteFile(filepath.Join(t.TempDir(), "missing", "x.json"), 1); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
