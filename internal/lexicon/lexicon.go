package lexicon

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var lexiconYAML []byte

// Pair is one phrase and the simpler wording offered in its place.
type Pair struct {
	Phrase      string
	Replacement string
}

// Mapping keeps the declaration order of a YAML mapping.
type Mapping []Pair

func (m *Mapping) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping, got %s", node.Line, node.Tag)
	}
	out := make(Mapping, 0, len(node.Content)/2)
	seen := make(map[string]struct{}, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var k, v string
		if err := node.Content[i].Decode(&k); err != nil {
			return err
		}
		if err := node.Content[i+1].Decode(&v); err != nil {
			return err
		}
		key := strings.ToLower(strings.TrimSpace(k))
		if _, dup := seen[key]; dup {
			return fmt.Errorf("line %d: duplicate phrase %q", node.Content[i].Line, k)
		}
		seen[key] = struct{}{}
		out = append(out, Pair{Phrase: strings.TrimSpace(k), Replacement: v})
	}
	*m = out
	return nil
}

func (m Mapping) Phrases() []string {
	out := make([]string, len(m))
	for i, p := range m {
		out[i] = p.Phrase
	}
	return out
}

// Lookup is case-insensitive.
func (m Mapping) Lookup(phrase string) (string, bool) {
	for _, p := range m {
		if strings.EqualFold(p.Phrase, phrase) {
			return p.Replacement, true
		}
	}
	return "", false
}

type Brevity struct {
	WordyPhrases     Mapping  `yaml:"wordy_phrases"`
	RedundantPhrases Mapping  `yaml:"redundant_phrases"`
	FillerWords      []string `yaml:"filler_words"`
	WeakQualifiers   []string `yaml:"weak_qualifiers"`
}

type Conversational struct {
	Contractions        Mapping `yaml:"contractions"`
	FormalWords         Mapping `yaml:"formal_words"`
	ImpersonalPhrases   Mapping `yaml:"impersonal_phrases"`
	ComplexConjunctions Mapping `yaml:"complex_conjunctions"`
	FormalTransitions   Mapping `yaml:"formal_transitions"`
}

type WeakCTAs struct {
	VeryWeak       []string `yaml:"very_weak"`
	Weak           []string `yaml:"weak"`
	MissingBenefit []string `yaml:"missing_benefit"`
	Passive        []string `yaml:"passive"`
}

type CTATemplates struct {
	LeadGeneration []string `yaml:"lead_generation"`
	TrialSignup    []string `yaml:"trial_signup"`
	Purchase       []string `yaml:"purchase"`
	Content        []string `yaml:"content"`
	Consultation   []string `yaml:"consultation"`
}

type Marketing struct {
	WeakCTAs             WeakCTAs     `yaml:"weak_ctas"`
	CTATemplates         CTATemplates `yaml:"cta_templates"`
	PowerWords           []string     `yaml:"power_words"`
	WeakHeadlineStarters []string     `yaml:"weak_headline_starters"`
	FeatureWords         []string     `yaml:"feature_words"`
	BenefitWords         []string     `yaml:"benefit_words"`
	VagueClaims          []string     `yaml:"vague_claims"`
	UrgencyWords         []string     `yaml:"urgency_words"`
}

// Lexicon is read-only after Load; share it freely between goroutines.
type Lexicon struct {
	AdverbExceptions     []string       `yaml:"adverb_exceptions"`
	ComplexWords         Mapping        `yaml:"complex_words"`
	Qualifiers           []string       `yaml:"qualifiers"`
	IrregularParticiples []string       `yaml:"irregular_participles"`
	Brevity              Brevity        `yaml:"brevity"`
	Conversational       Conversational `yaml:"conversational"`
	Marketing            Marketing      `yaml:"marketing"`

	adverbExceptions map[string]struct{}
	irregular        map[string]struct{}
}

func Parse(raw []byte) (*Lexicon, error) {
	var lx Lexicon
	if err := yaml.Unmarshal(raw, &lx); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}
	if len(lx.ComplexWords) == 0 || len(lx.Qualifiers) == 0 {
		return nil, fmt.Errorf("decode lexicon: complex_words and qualifiers must not be empty")
	}
	lx.adverbExceptions = toSet(lx.AdverbExceptions)
	lx.irregular = toSet(lx.IrregularParticiples)
	return &lx, nil
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the embedded lexicon. It panics if the embedded file is
// malformed, which the package tests guard against.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		lx, err := Parse(lexiconYAML)
		if err != nil {
			panic(err)
		}
		defaultLex = lx
	})
	return defaultLex
}

func (lx *Lexicon) IsAdverbException(word string) bool {
	_, ok := lx.adverbExceptions[strings.ToLower(word)]
	return ok
}

func (lx *Lexicon) IsIrregularParticiple(word string) bool {
	_, ok := lx.irregular[strings.ToLower(word)]
	return ok
}

func toSet(words []string) map[string]struct{} {
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return out
}
