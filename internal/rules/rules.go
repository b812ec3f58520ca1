package rules

import (
	"regexp"
	"strings"
	"sync"

	"prosecoach/internal/feedback"
	"prosecoach/internal/lexicon"
	"prosecoach/internal/span"
)

const (
	ClassAdverb    = "adverb"
	ClassComplex   = "complex"
	ClassPassive   = "passive"
	ClassQualifier = "qualifier"
)

var nonWord = regexp.MustCompile(`[^a-z0-9.]`)

// Analyzer runs the standard rule passes over single sentences. It holds only
// read-only state and may be shared.
type Analyzer struct {
	lx         *lexicon.Lexicon
	complex    *span.Set
	qualifiers *span.Set
}

func New(lx *lexicon.Lexicon) *Analyzer {
	return &Analyzer{
		lx:         lx,
		complex:    span.NewMappingSet(lx.ComplexWords),
		qualifiers: span.NewSet(lx.Qualifiers),
	}
}

var (
	defaultOnce sync.Once
	defaultA    *Analyzer
)

func Default() *Analyzer {
	defaultOnce.Do(func() { defaultA = New(lexicon.Default()) })
	return defaultA
}

// Apply runs adverb, complex, passive and qualifier passes in that order.
func (a *Analyzer) Apply(sentence string, c *feedback.Counters, variant feedback.PassiveVariant) string {
	sentence = a.Adverbs(sentence, c)
	sentence = a.Complex(sentence, c)
	sentence = a.Passive(sentence, c, variant)
	sentence = a.Qualifiers(sentence, c)
	return sentence
}

func (a *Analyzer) Adverbs(sentence string, c *feedback.Counters) string {
	words := strings.Split(sentence, " ")
	for i, w := range words {
		if strings.Contains(w, "<") {
			continue
		}
		if a.isAdverb(clean(w)) {
			c.Adverbs++
			words[i] = span.Highlight(w, ClassAdverb, "", "")
		}
	}
	return strings.Join(words, " ")
}

func (a *Analyzer) isAdverb(cleaned string) bool {
	return len(cleaned) > 2 && strings.HasSuffix(cleaned, "ly") && !a.lx.IsAdverbException(cleaned)
}

func (a *Analyzer) Complex(sentence string, c *feedback.Counters) string {
	out, n := span.Suggest(sentence, a.complex, ClassComplex)
	c.Complex += n
	return out
}

func (a *Analyzer) Qualifiers(sentence string, c *feedback.Counters) string {
	out, n := span.HighlightWords(sentence, a.qualifiers, ClassQualifier, "")
	c.Qualifiers += n
	return out
}

// clean lowercases a token, keeps letters, digits and periods, then trims
// trailing periods so sentence-final words still match suffix checks.
func clean(word string) string {
	return strings.TrimRight(nonWord.ReplaceAllString(strings.ToLower(word), ""), ".")
}
