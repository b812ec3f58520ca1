package feedback

import "strings"

type Mode string

const (
	ModeNone           Mode = "none"
	ModeBrevity        Mode = "brevity"
	ModeConversational Mode = "conversational"
	ModeMarketing      Mode = "marketing"
)

// ParseMode maps unknown or empty names to ModeNone.
func ParseMode(s string) Mode {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeBrevity, ModeConversational, ModeMarketing:
		return m
	default:
		return ModeNone
	}
}

type PassiveVariant string

const (
	PassiveLegacy   PassiveVariant = "legacy"
	PassiveEnhanced PassiveVariant = "enhanced"
)

// ParsePassiveVariant accepts "original" as an alias of legacy; anything
// else selects the enhanced detector.
func ParsePassiveVariant(s string) PassiveVariant {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "original":
		return PassiveLegacy
	default:
		return PassiveEnhanced
	}
}

type Settings struct {
	PassiveVariant PassiveVariant `json:"passive_detection" yaml:"passive_detection"`
	Mode           Mode           `json:"mode" yaml:"mode"`
}

func DefaultSettings() Settings {
	return Settings{PassiveVariant: PassiveEnhanced, Mode: ModeNone}
}

type Severity string

const (
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type Issue struct {
	Category   string   `json:"category" yaml:"category"`
	Excerpt    string   `json:"excerpt" yaml:"excerpt"`
	Suggestion string   `json:"suggestion" yaml:"suggestion"`
	Severity   Severity `json:"severity" yaml:"severity"`
}

type BrevityCounts struct {
	LongSentences    int `json:"long_sentences" yaml:"long_sentences"`
	WordyPhrases     int `json:"wordy_phrases" yaml:"wordy_phrases"`
	RedundantPhrases int `json:"redundant_phrases" yaml:"redundant_phrases"`
	FillerWords      int `json:"filler_words" yaml:"filler_words"`
	WeakQualifiers   int `json:"weak_qualifiers" yaml:"weak_qualifiers"`
}

type ConversationalCounts struct {
	MissingContractions int `json:"missing_contractions" yaml:"missing_contractions"`
	FormalWords         int `json:"formal_words" yaml:"formal_words"`
	ImpersonalLanguage  int `json:"impersonal_language" yaml:"impersonal_language"`
	ComplexConjunctions int `json:"complex_conjunctions" yaml:"complex_conjunctions"`
	FormalTransitions   int `json:"formal_transitions" yaml:"formal_transitions"`
	ComplexSentences    int `json:"complex_sentences" yaml:"complex_sentences"`
}

type Positioning struct {
	Position       string `json:"position" yaml:"position"`
	Score          int    `json:"score" yaml:"score"`
	Recommendation string `json:"recommendation" yaml:"recommendation"`
}

type MarketingCounts struct {
	WeakHeadlines  int `json:"weak_headlines" yaml:"weak_headlines"`
	WeakCTAs       int `json:"weak_ctas" yaml:"weak_ctas"`
	FeatureFocused int `json:"feature_focused" yaml:"feature_focused"`
	VagueClaims    int `json:"vague_claims" yaml:"vague_claims"`
	MissingUrgency int `json:"missing_urgency" yaml:"missing_urgency"`
	// Placement of the most recent weak CTA, nil until one is seen.
	CTAPositioning *Positioning `json:"cta_positioning,omitempty" yaml:"cta_positioning,omitempty"`
}

// Counters accumulates the results of one analysis run. It is owned by the
// caller and must not be shared between concurrent runs.
type Counters struct {
	Paragraphs        int `json:"paragraphs" yaml:"paragraphs"`
	Sentences         int `json:"sentences" yaml:"sentences"`
	Words             int `json:"words" yaml:"words"`
	Characters        int `json:"characters" yaml:"characters"`
	HardSentences     int `json:"hard_sentences" yaml:"hard_sentences"`
	VeryHardSentences int `json:"very_hard_sentences" yaml:"very_hard_sentences"`
	Adverbs           int `json:"adverbs" yaml:"adverbs"`
	Qualifiers        int `json:"qualifiers" yaml:"qualifiers"`
	PassiveVoice      int `json:"passive_voice" yaml:"passive_voice"`
	Complex           int `json:"complex" yaml:"complex"`

	Brevity        BrevityCounts        `json:"brevity" yaml:"brevity"`
	Conversational ConversationalCounts `json:"conversational" yaml:"conversational"`
	Marketing      MarketingCounts      `json:"marketing" yaml:"marketing"`

	Issues []Issue `json:"issues" yaml:"issues"`
}

func (c *Counters) Reset() {
	*c = Counters{}
}

// Weakeners is adverbs plus qualifiers, the combined figure older reports
// showed under "adverbs".
func (c *Counters) Weakeners() int {
	return c.Adverbs + c.Qualifiers
}

func (c *Counters) AddIssue(category, excerpt, suggestion string, severity Severity) {
	c.Issues = append(c.Issues, Issue{
		Category:   category,
		Excerpt:    excerpt,
		Suggestion: suggestion,
		Severity:   severity,
	})
}
