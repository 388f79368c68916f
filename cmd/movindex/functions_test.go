package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAppendResultFormat(t *testing.T) {
	dir := t.TempDir()

	if err := appendResult(dir, "sample.mp4", 3.14); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "results.txt"))
	if err != nil {
		t.Fatal(err)
	}

	if want := "sample.mp4\t3.1400\n"; string(got) != want {
		t.Errorf("results line = %q, want %q", got, want)
	}
}

func TestAppendResultAppends(t *testing.T) {
	dir := t.TempDir()

	if err := appendResult(dir, "a.mp4", 1); err != nil {
		t.Fatal(err)
	}
	if err := appendResult(dir, "b.avi", 0.1234); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "results.txt"))
	if err != nil {
		t.Fatal(err)
	}

	if want := "a.mp4\t1.0000\nb.avi\t0.1234\n"; string(got) != want {
		t.Errorf("results log = %q, want %q", got, want)
	}
}
