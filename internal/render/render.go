// Package render reads annotated HTML back into structured highlights.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type Highlight struct {
	Class      string `json:"class" yaml:"class"`
	Text       string `json:"text" yaml:"text"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
	Reason     string `json:"reason,omitempty" yaml:"reason,omitempty"`
	// Depth counts the annotated spans enclosing this one.
	Depth int `json:"depth" yaml:"depth"`
}

// Extract returns every annotated span in document order.
func Extract(html string) ([]Highlight, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var out []Highlight
	doc.Find("span[class]").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		suggestion, _ := s.Attr("data-suggestion")
		reason, _ := s.Attr("data-reason")
		out = append(out, Highlight{
			Class:      class,
			Text:       s.Text(),
			Suggestion: suggestion,
			Reason:     reason,
			Depth:      s.ParentsFiltered("span[class]").Length(),
		})
	})
	return out, nil
}

// Summarize counts highlights per class.
func Summarize(highlights []Highlight) map[string]int {
	counts := make(map[string]int)
	for _, h := range highlights {
		counts[h.Class]++
	}
	return counts
}

// Classes returns the keys of a summary in a stable order.
func Classes(summary map[string]int) []string {
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Plain returns the visible text of annotated HTML with paragraphs separated
// by newlines.
func Plain(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	paras := doc.Find("p")
	if paras.Length() == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	lines := make([]string, 0, paras.Length())
	paras.Each(func(_ int, s *goquery.Selection) {
		lines = append(lines, s.Text())
	})
	return strings.Join(lines, "\n"), nil
}
