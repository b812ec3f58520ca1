// Package difficulty annotates paragraphs sentence by sentence: the standard
// rules, the optional writing mode, then a readability tier around the whole
// sentence.
package difficulty

import (
	"fmt"
	"strings"

	"prosecoach/internal/feedback"
	"prosecoach/internal/modes"
	"prosecoach/internal/readability"
	"prosecoach/internal/rules"
	"prosecoach/internal/span"
)

const (
	ClassHard     = "hardSentence"
	ClassVeryHard = "veryHardSentence"
)

// SplitSentences cuts on a period followed by a space. It is not aware of
// abbreviations, so "Mr. Smith" splits in two. Blank pieces are dropped and
// every piece ends in terminal punctuation.
func SplitSentences(paragraph string) []string {
	parts := strings.Split(paragraph, ". ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasSuffix(p, ".") && !strings.HasSuffix(p, "!") && !strings.HasSuffix(p, "?") {
			p += "."
		}
		out = append(out, p)
	}
	return out
}

// AnalyzeParagraph annotates one paragraph of raw text and accumulates into c.
// fullText is the whole document, used by modes that look at position.
//
// The input must be raw text. Feeding back output from an earlier run is not
// supported: the existing spans would be counted as words and their
// attributes skipped as markup.
func AnalyzeParagraph(paragraph string, c *feedback.Counters, settings feedback.Settings, fullText string) string {
	return analyze(rules.Default(), modes.For(settings.Mode), paragraph, c, settings.PassiveVariant, fullText)
}

func analyze(ra *rules.Analyzer, mode modes.Analyzer, paragraph string, c *feedback.Counters, variant feedback.PassiveVariant, fullText string) string {
	sentences := SplitSentences(paragraph)
	c.Sentences += len(sentences)

	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = analyzeSentence(ra, mode, s, c, variant, fullText)
	}
	return strings.Join(out, " ")
}

func analyzeSentence(ra *rules.Analyzer, mode modes.Analyzer, sentence string, c *feedback.Counters, variant feedback.PassiveVariant, fullText string) string {
	letters, words := readability.Counts(sentence)
	c.Words += words

	result := ra.Apply(sentence, c, variant)
	if mode != nil {
		result = mode.AnnotateSentence(result, c, fullText)
	}

	level := readability.Level(letters, words, 1)
	switch readability.Classify(level, words) {
	case readability.VeryHard:
		c.VeryHardSentences++
		c.AddIssue(ClassVeryHard, sentence,
			fmt.Sprintf("Grade %d. This sentence is very hard to read; split it or use shorter words.", level),
			feedback.SeverityHigh)
		return span.Highlight(result, ClassVeryHard, "", "")
	case readability.Hard:
		c.HardSentences++
		c.AddIssue(ClassHard, sentence,
			fmt.Sprintf("Grade %d. This sentence is hard to read; shorten it or split it.", level),
			feedback.SeverityMedium)
		return span.Highlight(result, ClassHard, "", "")
	default:
		return result
	}
}
