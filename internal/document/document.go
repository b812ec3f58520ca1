// Package document runs the sentence pipeline over a whole text and gathers
// the per-run result.
package document

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pemistahl/lingua-go"
	"github.com/rs/zerolog"

	"prosecoach/internal/chunk"
	"prosecoach/internal/difficulty"
	"prosecoach/internal/feedback"
	"prosecoach/internal/modes"
)

// Tokens of text handed to the language detector.
const languageSampleTokens = 200

type Analyzer struct {
	log      zerolog.Logger
	settings feedback.Settings
	detector lingua.LanguageDetector
}

type Option func(*Analyzer)

func WithLogger(l zerolog.Logger) Option {
	return func(a *Analyzer) { a.log = l }
}

func WithSettings(s feedback.Settings) Option {
	return func(a *Analyzer) { a.settings = s }
}

// WithLanguageDetection enables a check that the text is English. Other
// languages are reported and logged but still analyzed.
func WithLanguageDetection() Option {
	return func(a *Analyzer) { a.detector = NewDetector() }
}

func WithDetector(d lingua.LanguageDetector) Option {
	return func(a *Analyzer) { a.detector = d }
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		log:      zerolog.Nop(),
		settings: feedback.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Analyzer) Settings() feedback.Settings { return a.settings }

// NewDetector builds a detector over the languages most often pasted into
// the editor by mistake.
func NewDetector() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.French, lingua.German, lingua.Spanish, lingua.Italian, lingua.Portuguese, lingua.Dutch).
		Build()
}

type Tip struct {
	Key     string `json:"key" yaml:"key"`
	Message string `json:"message" yaml:"message"`
}

type Language struct {
	Code       string  `json:"code" yaml:"code"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	English    bool    `json:"english" yaml:"english"`
}

type Result struct {
	RunID    string            `json:"run_id" yaml:"run_id"`
	Settings feedback.Settings `json:"settings" yaml:"settings"`
	HTML     string            `json:"html" yaml:"html"`
	Counters feedback.Counters `json:"counters" yaml:"counters"`
	Tips     []Tip             `json:"tips" yaml:"tips"`
	Mode     *modes.Summary    `json:"mode,omitempty" yaml:"mode,omitempty"`
	Language *Language         `json:"language,omitempty" yaml:"language,omitempty"`
	Duration time.Duration     `json:"duration" yaml:"duration"`
}

// Analyze annotates text paragraph by paragraph with fresh counters. text must
// be raw input, not the HTML of an earlier result. The context is checked
// between paragraphs.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*Result, error) {
	started := time.Now()
	res := &Result{
		RunID:    uuid.NewString(),
		Settings: a.settings,
	}
	log := a.log.With().Str("run_id", res.RunID).Logger()

	if a.detector != nil {
		res.Language = a.detectLanguage(text)
		if !res.Language.English {
			log.Warn().
				Str("language", res.Language.Code).
				Float64("confidence", res.Language.Confidence).
				Msg("text does not look like English; results may be meaningless")
		}
	}

	c := &res.Counters
	paragraphs := chunk.Paragraphs(text)
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("analyze paragraph %d: %w", p.Index, err)
		}
		html := difficulty.AnalyzeParagraph(p.Text, c, a.settings, text)
		out = append(out, "<p>"+html+"</p>")
	}
	c.Paragraphs = chunk.LineCount(text)
	c.Characters = utf8.RuneCountInString(text)

	res.HTML = strings.Join(out, " ")
	res.Tips = Tips(c)
	if summary, ok := modes.Report(a.settings.Mode, text); ok {
		res.Mode = &summary
	}
	res.Duration = time.Since(started)

	log.Debug().
		Int("paragraphs", c.Paragraphs).
		Int("sentences", c.Sentences).
		Int("words", c.Words).
		Int("hard", c.HardSentences).
		Int("very_hard", c.VeryHardSentences).
		Str("mode", string(a.settings.Mode)).
		Dur("took", res.Duration).
		Msg("analysis completed")
	return res, nil
}

func (a *Analyzer) detectLanguage(text string) *Language {
	sample := chunk.Head(text, languageSampleTokens)
	lang := &Language{Code: "unknown", English: true}
	if sample == "" {
		return lang
	}
	detected, ok := a.detector.DetectLanguageOf(sample)
	if !ok {
		return lang
	}
	lang.Code = strings.ToLower(detected.IsoCode639_1().String())
	lang.Confidence = a.detector.ComputeLanguageConfidence(sample, detected)
	lang.English = detected == lingua.English
	return lang
}

// Tips renders the counter summaries shown next to the editor.
func Tips(c *feedback.Counters) []Tip {
	adverbs := c.Weakeners()
	return []Tip{
		{
			Key: "adverb",
			Message: fmt.Sprintf("You have used %d adverb%s. Try to use %d or less",
				adverbs, plural(adverbs), roundHalfUp(float64(c.Paragraphs)/3)),
		},
		{
			Key: "passive",
			Message: fmt.Sprintf("You have used passive voice %d time%s. Aim for %d or less.",
				c.PassiveVoice, plural(c.PassiveVoice), roundHalfUp(float64(c.Sentences)/5)),
		},
		{
			Key:     "complex",
			Message: fmt.Sprintf("%d phrase%s could be simplified.", c.Complex, plural(c.Complex)),
		},
		{
			Key:     difficulty.ClassHard,
			Message: fmt.Sprintf("%d of %d %s hard to read", c.HardSentences, c.Sentences, sentencesAre(c.Sentences)),
		},
		{
			Key:     difficulty.ClassVeryHard,
			Message: fmt.Sprintf("%d of %d %s very hard to read", c.VeryHardSentences, c.Sentences, sentencesAre(c.Sentences)),
		},
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

func sentencesAre(n int) string {
	if n > 1 {
		return "sentences are"
	}
	return "sentence is"
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
