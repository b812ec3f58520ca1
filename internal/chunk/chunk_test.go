package chunk

import (
	"strings"
	"testing"
)

func TestParagraphs(t *testing.T) {
	text := "First line.\r\n\n   \nSecond   line.  \nThird."
	segments := Paragraphs(text)
	if len(segments) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d: %+v", len(segments), segments)
	}

	want := []Segment{
		{Index: 0, Line: 0, Text: "First line."},
		{Index: 1, Line: 3, Text: "Second   line."},
		{Index: 2, Line: 4, Text: "Third."},
	}
	for i, s := range segments {
		if s != want[i] {
			t.Fatalf("segment %d: got %+v, want %+v", i, s, want[i])
		}
	}
}

func TestLineCount(t *testing.T) {
	cases := map[string]int{
		"":           0,
		"one":        1,
		"one\ntwo":   2,
		"one\n\n":    3,
		"a\r\nb\r\n": 3,
	}
	for in, want := range cases {
		if got := LineCount(in); got != want {
			t.Fatalf("LineCount(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestHead(t *testing.T) {
	words := make([]string, 500)
	for i := range words {
		words[i] = "word"
	}
	head := Head(strings.Join(words, "\n"), 100)
	if got := len(strings.Fields(head)); got != 100 {
		t.Fatalf("expected 100 tokens, got %d", got)
	}
	if Head("a b", 0) != "" {
		t.Fatal("expected empty head for zero tokens")
	}
	if Head("  a   b ", 10) != "a b" {
		t.Fatalf("unexpected head %q", Head("  a   b ", 10))
	}
}
