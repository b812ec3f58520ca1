package modes

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"prosecoach/internal/feedback"
)

var sentenceEnd = regexp.MustCompile(`[.!?]+`)
var wordPattern = regexp.MustCompile(`[A-Za-z']+`)
var passiveMarker = regexp.MustCompile(`(?i)\b(was|were|been|being|be)\s+\w+ed\b`)
var trailingPunct = regexp.MustCompile(`[.!?]+\s*$`)

// splitSentences cuts on runs of terminal punctuation and drops blank pieces.
// Pieces keep their surrounding whitespace.
func splitSentences(text string) []string {
	parts := sentenceEnd.Split(text, -1)
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

func countWords(s string) int {
	return len(strings.Fields(s))
}

type lengthCheck struct {
	Long       bool
	Words      int
	Suggestion string
	Severity   feedback.Severity
}

func checkSentenceLength(plain string, maxWords int) lengthCheck {
	n := countWords(plain)
	if n <= maxWords {
		return lengthCheck{Words: n}
	}
	sev := feedback.SeverityMedium
	if float64(n) > float64(maxWords)*1.5 {
		sev = feedback.SeverityHigh
	}
	return lengthCheck{
		Long:       true,
		Words:      n,
		Suggestion: fmt.Sprintf("This sentence has %d words. Consider breaking it into shorter sentences (aim for %d words or fewer).", n, maxWords),
		Severity:   sev,
	}
}

// passivePercentage is the share of sentences containing a "was/were/be
// ...ed" marker, rounded to a whole percent.
func passivePercentage(text string) int {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return 0
	}
	passive := 0
	for _, s := range sentences {
		if passiveMarker.MatchString(s) {
			passive++
		}
	}
	return roundInt(float64(passive) / float64(len(sentences)) * 100)
}

func sentenceLengthStats(text string) (sd float64, mean float64) {
	sentences := sentenceEnd.Split(text, -1)
	lengths := make([]float64, 0, len(sentences))
	for _, s := range sentences {
		count := float64(len(wordPattern.FindAllString(s, -1)))
		if count > 0 {
			lengths = append(lengths, count)
		}
	}
	if len(lengths) == 0 {
		return 0, 0
	}

	total := 0.0
	for _, l := range lengths {
		total += l
	}
	mean = total / float64(len(lengths))
	if len(lengths) == 1 {
		return 0, mean
	}

	var variance float64
	for _, l := range lengths {
		d := l - mean
		variance += d * d
	}
	variance /= float64(len(lengths))
	return math.Sqrt(variance), mean
}

// stripTerminal drops trailing sentence punctuation and surrounding space.
func stripTerminal(s string) string {
	return strings.TrimSpace(trailingPunct.ReplaceAllString(strings.TrimSpace(s), ""))
}

func roundInt(x float64) int {
	return int(math.Floor(x + 0.5))
}

func round1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
