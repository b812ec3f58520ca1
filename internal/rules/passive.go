package rules

import (
	"strings"

	"prosecoach/internal/feedback"
	"prosecoach/internal/span"
)

const (
	lookbackWindow = 4
	agentLookahead = 3
)

var legacyHelpers = map[string]struct{}{
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
}

var helpers = map[string]struct{}{
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"am": {}, "will": {}, "would": {}, "could": {}, "should": {}, "might": {},
	"may": {}, "must": {}, "have": {}, "has": {}, "had": {},
}

// Short modifiers that may sit between a helper and its participle.
var fillers = map[string]struct{}{
	"not": {}, "never": {}, "also": {}, "still": {}, "just": {},
	"already": {}, "often": {}, "always": {}, "even": {},
}

const (
	reasonPassive      = "Passive voice. Consider rewriting in active voice."
	reasonPassiveAgent = "Passive voice with an explicit agent (by ...). Make the agent the subject."
)

func (a *Analyzer) Passive(sentence string, c *feedback.Counters, variant feedback.PassiveVariant) string {
	if variant == feedback.PassiveLegacy {
		return a.passiveLegacy(sentence, c)
	}
	return a.passiveWindowed(sentence, c)
}

type hit struct {
	from, to int // token indexes, inclusive
	agent    bool
}

// passiveLegacy only accepts a helper directly before an -ed word. Once a
// pair is wrapped the scan resumes after the participle, so a helper is never
// reused.
func (a *Analyzer) passiveLegacy(sentence string, c *feedback.Counters) string {
	toks := span.Tokens(sentence)
	words := cleanTokens(toks)

	var hits []hit
	for i := 1; i < len(words); i++ {
		if !strings.HasSuffix(words[i], "ed") {
			continue
		}
		if _, ok := legacyHelpers[words[i-1]]; !ok {
			continue
		}
		hits = append(hits, hit{from: i - 1, to: i})
		i++
	}
	c.PassiveVoice += len(hits)
	return wrapHits(sentence, toks, hits, func(hit) string { return span.Open(ClassPassive, "", "") })
}

// passiveWindowed accepts regular and irregular participles and looks back up
// to four tokens for a helper, stepping over adverbs and chained helpers.
// The wrap starts at the earliest helper of the chain.
func (a *Analyzer) passiveWindowed(sentence string, c *feedback.Counters) string {
	toks := span.Tokens(sentence)
	words := cleanTokens(toks)

	var hits []hit
	consumed := -1
	for i := 1; i < len(words); i++ {
		if !a.isParticiple(words[i]) {
			continue
		}
		earliest := -1
		for k := i - 1; k >= 0 && k > consumed && i-k <= lookbackWindow; k-- {
			w := words[k]
			if _, ok := helpers[w]; ok {
				earliest = k
				continue
			}
			if a.isModifier(w) {
				continue
			}
			break
		}
		if earliest < 0 {
			continue
		}
		hits = append(hits, hit{from: earliest, to: i, agent: hasAgent(words, i)})
		consumed = i
	}
	c.PassiveVoice += len(hits)
	return wrapHits(sentence, toks, hits, func(h hit) string {
		if h.agent {
			return span.Open(ClassPassive, "", reasonPassiveAgent)
		}
		return span.Open(ClassPassive, "", reasonPassive)
	})
}

func (a *Analyzer) isParticiple(w string) bool {
	if len(w) > 3 && strings.HasSuffix(w, "ed") {
		return true
	}
	return a.lx.IsIrregularParticiple(w)
}

func (a *Analyzer) isModifier(w string) bool {
	if _, ok := fillers[w]; ok {
		return true
	}
	return a.isAdverb(w)
}

func hasAgent(words []string, i int) bool {
	for k := i + 1; k < len(words) && k <= i+agentLookahead; k++ {
		if words[k] == "by" {
			return true
		}
	}
	return false
}

func cleanTokens(toks []span.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = clean(t.Text)
	}
	return out
}

// wrapHits applies wraps right to left so earlier offsets stay valid.
func wrapHits(sentence string, toks []span.Token, hits []hit, open func(hit) string) string {
	for n := len(hits) - 1; n >= 0; n-- {
		h := hits[n]
		sentence = span.WrapRange(sentence, toks[h.from].Start, toks[h.to].End, open(h), span.Close)
	}
	return sentence
}
