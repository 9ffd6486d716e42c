package main

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	if err := run(&out, dir); err != nil {
		t.Fatalf("Failed to run: %v", err)
	}

	want := "Created icon-144x144.png (144x144)\n" +
		"Created icon-32x32.png (32x32)\n" +
		"Created icon-16x16.png (16x16)\n" +
		"All icons created successfully!\n"
	if out.String() != want {
		t.Errorf("expected output %q, got %q", want, out.String())
	}

	tests := []struct {
		filename string
		size     int
	}{
		{"icon-144x144.png", 144},
		{"icon-32x32.png", 32},
		{"icon-16x16.png", 16},
	}
	for _, tt := range tests {
		f, err := os.Open(filepath.Join(dir, tt.filename))
		if err != nil {
			t.Fatalf("Failed to open %s: %v", tt.filename, err)
		}
		img, err := png.Decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("Failed to decode %s: %v", tt.filename, err)
		}
		if b := img.Bounds(); b.Dx() != tt.size || b.Dy() != tt.size {
			t.Errorf("%s: expected %dx%d, got %dx%d", tt.filename, tt.size, tt.size, b.Dx(), b.Dy())
		}
	}
}

func TestRunTwiceOverwrites(t *testing.T) {
	dir := t.TempDir()

	var first bytes.Buffer
	if err := run(&first, dir); err != nil {
		t.Fatalf("Failed on first run: %v", err)
	}
	before, err := os.ReadFile(filepath.Join(dir, "icon-16x16.png"))
	if err != nil {
		t.Fatalf("Failed to read icon: %v", err)
	}

	var second bytes.Buffer
	if err := run(&second, dir); err != nil {
		t.Fatalf("Failed on second run: %v", err)
	}
	after, err := os.ReadFile(filepath.Join(dir, "icon-16x16.png"))
	if err != nil {
		t.Fatalf("Failed to read icon after rerun: %v", err)
	}

	if first.String() != second.String() {
		t.Errorf("expected identical output, got %q then %q", first.String(), second.String())
	}
	if !bytes.Equal(before, after) {
		t.Error("expected rerun to overwrite with identical file contents")
	}
	if _, err := png.Decode(bytes.NewReader(after)); err != nil {
		t.Errorf("Failed to decode icon after rerun: %v", err)
	}
}

func TestRunMissingDir(t *testing.T) {
	err := run(io.Discard, filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
