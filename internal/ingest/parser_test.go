package ingest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDOCX(t *testing.T) {
	raw := buildDOCX(t, `<w:document><w:body><w:p><w:r><w:t>Chapter 1</w:t></w:r></w:p><w:p><w:r><w:t>Hello</w:t></w:r><w:r><w:tab/><w:t>world.</w:t></w:r></w:p></w:body></w:document>`)
	got, err := parseDOCX(raw)
	if err != nil {
		t.Fatalf("parseDOCX failed: %v", err)
	}
	if got != "Chapter 1\nHello world." {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestParseFileText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.md")
	if err := os.WriteFile(path, []byte("  First   line.\r\n\n\nSecond line.  \n"), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	parsed, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if parsed.Text != "First line.\nSecond line." {
		t.Fatalf("unexpected text %q", parsed.Text)
	}
	if parsed.Title != "draft" || parsed.Format != "md" {
		t.Fatalf("unexpected metadata %+v", parsed)
	}
}

func TestParseHTML(t *testing.T) {
	page := `<html><head><title>Launch</title></head><body>
<article><p>First   paragraph of the launch post, long enough to count as content.</p>
<p>Second paragraph explains what the product does for you.</p></article>
</body></html>`
	parsed, err := Parse("launch.html", []byte(page))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	lines := strings.Split(parsed.Text, "\n")
	var first, second bool
	for _, l := range lines {
		first = first || l == "First paragraph of the launch post, long enough to count as content."
		second = second || l == "Second paragraph explains what the product does for you."
	}
	if !first || !second {
		t.Fatalf("expected both paragraphs on their own lines, got %q", parsed.Text)
	}
}

func TestParseFileUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.rtf")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	_, err := ParseFile(path)
	if err == nil {
		t.Fatal("expected unsupported file type error")
	}
}

func TestParsePDFRejectsGarbage(t *testing.T) {
	if _, err := parsePDF([]byte("not a pdf")); err == nil {
		t.Fatal("expected error for invalid pdf")
	}
}

func buildDOCX(t *testing.T, bodyXML string) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	xml := `<?xml version="1.0" encoding="UTF-8"?>` + bodyXML
	if _, err := f.Write([]byte(xml)); err != nil {
		t.Fatalf("write xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return b.Bytes()
}
