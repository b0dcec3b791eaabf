package extractor

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSupports(t *testing.T) {
	e := New()
	tests := []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"cover.docx", true},
		{"old.doc", true},
		{"notes.txt", true},
		{"avatar.png", false},
		{"archive.zip", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := e.Supports(tt.filename); got != tt.want {
			t.Errorf("Supports(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestExtractPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := New().Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello world" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestExtractDocx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.docx")
	writeDocx(t, path, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second</w:t></w:r><w:r><w:t> paragraph</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	got, err := New().Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %q", len(lines), got)
	}
	if lines[0] != "First paragraph" || lines[1] != "Second paragraph" {
		t.Errorf("unexpected paragraphs %q", lines)
	}
}

func TestExtractDocxMissingBody(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, _ := zw.Create("word/other.xml")
	w.Write([]byte("<x/>"))
	zw.Close()
	f.Close()

	if _, err := New().Extract(path); err == nil {
		t.Error("expected error for docx without document body")
	}
}

func TestExtractUnsupported(t *testing.T) {
	if _, err := New().Extract("image.png"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func writeDocx(t *testing.T, path, documentXML string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}
