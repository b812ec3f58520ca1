package span

import (
	"html"
	"strings"
)

const Close = "</span>"

// Open renders the opening tag of an annotation. Empty attributes are omitted.
func Open(class, suggestion, reason string) string {
	var b strings.Builder
	b.WriteString(`<span class="`)
	b.WriteString(html.EscapeString(class))
	b.WriteByte('"')
	if suggestion != "" {
		b.WriteString(` data-suggestion="`)
		b.WriteString(html.EscapeString(suggestion))
		b.WriteByte('"')
	}
	if reason != "" {
		b.WriteString(` data-reason="`)
		b.WriteString(html.EscapeString(reason))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}

func Highlight(text, class, suggestion, reason string) string {
	return Open(class, suggestion, reason) + text + Close
}

type segment struct {
	start, end int
	tag        bool
}

// segments splits an annotated string into markup and visible text. A '<'
// only opens a tag when followed by a letter or '/', so prose such as
// "a < b" stays visible.
func segments(s string) []segment {
	var out []segment
	textStart := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '<' || !opensTag(s, i) {
			continue
		}
		closeAt := strings.IndexByte(s[i:], '>')
		if closeAt < 0 {
			break
		}
		if i > textStart {
			out = append(out, segment{start: textStart, end: i})
		}
		out = append(out, segment{start: i, end: i + closeAt + 1, tag: true})
		i += closeAt
		textStart = i + 1
	}
	if textStart < len(s) {
		out = append(out, segment{start: textStart, end: len(s)})
	}
	return out
}

func opensTag(s string, i int) bool {
	if i+1 >= len(s) {
		return false
	}
	c := s[i+1]
	return c == '/' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// PlainText drops all markup and returns what a reader would see.
func PlainText(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	for _, seg := range segments(s) {
		if !seg.tag {
			b.WriteString(s[seg.start:seg.end])
		}
	}
	return b.String()
}

// Token is a whitespace-delimited run of visible text. Start and End are byte
// offsets into the annotated string; a token may straddle markup.
type Token struct {
	Text  string
	Start int
	End   int
}

func Tokens(s string) []Token {
	var (
		out []Token
		cur strings.Builder
		tok = Token{Start: -1}
	)
	flush := func() {
		if tok.Start >= 0 {
			tok.Text = cur.String()
			out = append(out, tok)
		}
		cur.Reset()
		tok = Token{Start: -1}
	}
	for _, seg := range segments(s) {
		if seg.tag {
			continue
		}
		for i := seg.start; i < seg.end; i++ {
			if isSpace(s[i]) {
				flush()
				continue
			}
			if tok.Start < 0 {
				tok.Start = i
			}
			cur.WriteByte(s[i])
			tok.End = i + 1
		}
	}
	flush()
	return out
}

// WrapRange wraps s[start:end] in open/close. The range grows left over
// opening tags that directly precede it and right over closing tags that
// directly follow it, as long as those closings balance openings inside the
// range, so the new element nests cleanly around existing annotations.
func WrapRange(s string, start, end int, open, close string) string {
	if start < 0 || end > len(s) || start >= end {
		return s
	}
	for start > 0 && s[start-1] == '>' {
		lt := strings.LastIndexByte(s[:start-1], '<')
		if lt < 0 || !opensTag(s, lt) || s[lt+1] == '/' {
			break
		}
		start = lt
	}
	depth := tagDepth(s[start:end])
	for depth > 0 && strings.HasPrefix(s[end:], "</") {
		gt := strings.IndexByte(s[end:], '>')
		if gt < 0 {
			break
		}
		end += gt + 1
		depth--
	}
	return s[:start] + open + s[start:end] + close + s[end:]
}

func tagDepth(s string) int {
	depth := 0
	for _, seg := range segments(s) {
		if !seg.tag {
			continue
		}
		switch {
		case strings.HasPrefix(s[seg.start:], "</"):
			depth--
		case strings.HasSuffix(s[seg.start:seg.end], "/>"):
		default:
			depth++
		}
	}
	return depth
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
