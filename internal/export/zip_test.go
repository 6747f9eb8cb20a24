package export

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteZip_OrdersAndRenamesByPageNumber(t *testing.T) {
	dir := t.TempDir()
	// Lexical order would put page 10 before page 2.
	for _, name := range []string{"doc_page_10.pdf", "doc_page_2.pdf", "doc_page_1.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4 "+name), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// Non-PDF entries are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeZip(&buf, dir); err != nil {
		t.Fatalf("writeZip: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("read zip: %v", err)
	}

	want := []string{"page_001.pdf", "page_002.pdf", "page_010.pdf"}
	if len(zr.File) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(zr.File))
	}
	for i, f := range zr.File {
		if f.Name != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], f.Name)
		}
	}
}

func TestWriteZip_EmptyDirFails(t *testing.T) {
	var buf bytes.Buffer
	if err := writeZip(&buf, t.TempDir()); err == nil {
		t.Fatal("expected error for a directory without extracts")
	}
}

func TestPageBundle_RejectsEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := PageBundle(&buf, "/nonexistent.pdf", 0); err == nil {
		t.Fatal("expected error for zero pages")
	}
}

func TestTrailingNumber(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"doc_page_1.pdf", 1},
		{"doc_page_42.pdf", 42},
		{"report2024_page_7.pdf", 7},
		{"nodigits.pdf", 0},
	}
	for _, tt := range tests {
		if got := trailingNumber(tt.name); got != tt.want {
			t.Errorf("trailingNumber(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}
