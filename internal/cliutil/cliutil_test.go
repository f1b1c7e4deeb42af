package cliutil

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	_ = os.WriteFile(a, []byte(">a\nA\n"), 0o644)
	_ = os.WriteFile(b, []byte(">b\nA\n"), 0o644)

	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa"), "-", "plain.fa"})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	want := []string{a, b, "-", "plain.fa"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestExpandPositionals_Dedupes(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	_ = os.WriteFile(a, []byte(">a\nA\n"), 0o644)

	got, err := ExpandPositionals([]string{a, filepath.Join(dir, "*.fa"), "-", "-", dir + "/./a.fa"})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if want := []string{a, "-"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestExpandPositionals_NoMatch(t *testing.T) {
	if _, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.fa")}); err == nil {
		t.Fatal("expected error for glob with no matches")
	}
}
