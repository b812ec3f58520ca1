package chunk

import "strings"

// Segment is one paragraph of a document: a single non-blank line.
type Segment struct {
	Index int
	Line  int
	Text  string
}

// Paragraphs splits text on newlines and keeps the non-blank lines, trimmed.
// Line is the zero-based line number the paragraph came from.
func Paragraphs(text string) []Segment {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	segments := make([]Segment, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		segments = append(segments, Segment{
			Index: len(segments),
			Line:  i,
			Text:  line,
		})
	}
	return segments
}

// LineCount is the number of newline-separated lines, blank ones included.
// Empty text has zero lines.
func LineCount(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(strings.ReplaceAll(text, "\r\n", "\n"), "\n") + 1
}

// Head returns the first maxTokens whitespace-separated tokens of text joined
// by single spaces.
func Head(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	tokens := strings.Fields(text)
	if len(tokens) > maxTokens {
		tokens = tokens[:maxTokens]
	}
	return strings.Join(tokens, " ")
}
