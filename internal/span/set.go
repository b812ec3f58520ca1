package span

import (
	"regexp"
	"sort"
	"strings"

	"github.com/coregx/ahocorasick"

	"prosecoach/internal/lexicon"
)

// Set is a fixed, ordered list of phrases matched case-insensitively on
// whole-word boundaries. An Aho-Corasick automaton finds which phrases occur
// at all, so the per-phrase regexps only run for phrases that can match.
type Set struct {
	phrases      []string
	replacements []string
	patterns     []*regexp.Regexp
	ac           *ahocorasick.Automaton
}

type Match struct {
	Start   int
	End     int
	Pattern int
	Text    string
}

func NewSet(phrases []string) *Set {
	return newSet(phrases, nil)
}

func NewMappingSet(m lexicon.Mapping) *Set {
	repl := make([]string, len(m))
	for i, p := range m {
		repl[i] = p.Replacement
	}
	return newSet(m.Phrases(), repl)
}

func newSet(phrases, replacements []string) *Set {
	s := &Set{
		phrases:      make([]string, 0, len(phrases)),
		replacements: make([]string, 0, len(phrases)),
		patterns:     make([]*regexp.Regexp, 0, len(phrases)),
	}
	lowered := make([]string, 0, len(phrases))
	for i, p := range phrases {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		r := ""
		if replacements != nil {
			r = replacements[i]
		}
		s.phrases = append(s.phrases, p)
		s.replacements = append(s.replacements, r)
		s.patterns = append(s.patterns, WordPattern(p))
		lowered = append(lowered, asciiLower(p))
	}
	if len(lowered) > 0 {
		ac, err := ahocorasick.NewBuilder().
			AddStrings(lowered).
			SetPrefilter(true).
			Build()
		if err == nil {
			s.ac = ac
		}
	}
	return s
}

// WordPattern compiles a literal, case-insensitive pattern anchored on word
// boundaries at whichever ends of the phrase are word characters.
func WordPattern(phrase string) *regexp.Regexp {
	expr := regexp.QuoteMeta(phrase)
	if phrase != "" && isWordByte(phrase[0]) {
		expr = `\b` + expr
	}
	if phrase != "" && isWordByte(phrase[len(phrase)-1]) {
		expr += `\b`
	}
	return regexp.MustCompile(`(?i)` + expr)
}

func (s *Set) Len() int { return len(s.phrases) }

func (s *Set) Phrase(i int) string { return s.phrases[i] }

func (s *Set) Replacement(i int) string { return s.replacements[i] }

// Find returns every boundary-respecting occurrence in plain text, ordered by
// position then pattern index. Occurrences of different phrases may overlap.
func (s *Set) Find(text string) []Match {
	if len(s.phrases) == 0 || text == "" {
		return nil
	}
	if s.ac == nil {
		return s.findSlow(text)
	}
	raw := s.ac.FindAllOverlapping([]byte(asciiLower(text)))
	out := make([]Match, 0, len(raw))
	for _, m := range raw {
		if m.PatternID < 0 || m.PatternID >= len(s.phrases) {
			continue
		}
		if !s.bounded(text, m.PatternID, m.Start, m.End) {
			continue
		}
		out = append(out, Match{Start: m.Start, End: m.End, Pattern: m.PatternID, Text: text[m.Start:m.End]})
	}
	sortMatches(out)
	return out
}

func (s *Set) findSlow(text string) []Match {
	var out []Match
	for i, re := range s.patterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			out = append(out, Match{Start: loc[0], End: loc[1], Pattern: i, Text: text[loc[0]:loc[1]]})
		}
	}
	sortMatches(out)
	return out
}

func (s *Set) bounded(text string, i, start, end int) bool {
	p := s.phrases[i]
	if isWordByte(p[0]) && start > 0 && isWordByte(text[start-1]) {
		return false
	}
	if isWordByte(p[len(p)-1]) && end < len(text) && isWordByte(text[end]) {
		return false
	}
	return true
}

// Count returns the number of occurrences of every phrase, summed.
func (s *Set) Count(text string) int {
	total := 0
	for _, i := range s.candidates(text) {
		total += len(s.patterns[i].FindAllStringIndex(text, -1))
	}
	return total
}

func (s *Set) Contains(text string) bool {
	return len(s.Find(text)) > 0
}

// FirstIn returns the index of the first phrase, in list order, present in
// text, or -1.
func (s *Set) FirstIn(text string) int {
	for i, re := range s.patterns {
		if re.MatchString(text) {
			return i
		}
	}
	return -1
}

// Annotate wraps every occurrence of each phrase, in list order, using wrap to
// render the replacement. Only visible text is matched; markup added by an
// earlier pass is left alone. The count is the number of occurrences found.
func (s *Set) Annotate(annotated string, wrap func(i int, matched string) string) (string, int) {
	if len(s.phrases) == 0 {
		return annotated, 0
	}
	candidates := s.candidates(PlainText(annotated))
	total := 0
	for _, i := range candidates {
		var n int
		annotated, n = replaceVisible(annotated, s.patterns[i], func(m string) string {
			return wrap(i, m)
		})
		total += n
	}
	return annotated, total
}

func (s *Set) candidates(plain string) []int {
	seen := make(map[int]bool)
	for _, m := range s.Find(plain) {
		seen[m.Pattern] = true
	}
	out := make([]int, 0, len(seen))
	for i := range s.phrases {
		if seen[i] {
			out = append(out, i)
		}
	}
	return out
}

func replaceVisible(s string, re *regexp.Regexp, fn func(string) string) (string, int) {
	var b strings.Builder
	count := 0
	for _, seg := range segments(s) {
		chunk := s[seg.start:seg.end]
		if seg.tag {
			b.WriteString(chunk)
			continue
		}
		b.WriteString(re.ReplaceAllStringFunc(chunk, func(m string) string {
			count++
			return fn(m)
		}))
	}
	return b.String(), count
}

func sortMatches(ms []Match) {
	sort.SliceStable(ms, func(a, b int) bool {
		if ms[a].Start != ms[b].Start {
			return ms[a].Start < ms[b].Start
		}
		return ms[a].Pattern < ms[b].Pattern
	})
}

// asciiLower lowercases ASCII letters only, so byte offsets stay aligned with
// the original string.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
