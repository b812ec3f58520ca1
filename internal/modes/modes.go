// Package modes holds the optional writing-mode analyzers. Each mode annotates
// single sentences alongside the standard rules and also scores whole
// documents independently of the per-sentence pass.
package modes

import (
	"sync"

	"prosecoach/internal/feedback"
	"prosecoach/internal/lexicon"
)

type Analyzer interface {
	Mode() feedback.Mode
	AnnotateSentence(sentence string, c *feedback.Counters, fullText string) string
}

// New builds the analyzer for mode over lx. It returns nil for ModeNone and
// for any mode it does not know.
func New(mode feedback.Mode, lx *lexicon.Lexicon) Analyzer {
	switch mode {
	case feedback.ModeBrevity:
		return NewBrevity(lx)
	case feedback.ModeConversational:
		return NewConversational(lx)
	case feedback.ModeMarketing:
		return NewMarketing(lx)
	default:
		return nil
	}
}

type defaults struct {
	once           sync.Once
	brevity        *Brevity
	conversational *Conversational
	marketing      *Marketing
}

var std defaults

func (d *defaults) load() {
	d.once.Do(func() {
		lx := lexicon.Default()
		d.brevity = NewBrevity(lx)
		d.conversational = NewConversational(lx)
		d.marketing = NewMarketing(lx)
	})
}

// For returns the shared analyzer for mode built over the embedded lexicon.
func For(mode feedback.Mode) Analyzer {
	std.load()
	switch mode {
	case feedback.ModeBrevity:
		return std.brevity
	case feedback.ModeConversational:
		return std.conversational
	case feedback.ModeMarketing:
		return std.marketing
	default:
		return nil
	}
}

func AnalyzeBrevityMetrics(text string) BrevityReport {
	std.load()
	return std.brevity.Metrics(text)
}

func AnalyzeConversationalTone(text string) ConversationalReport {
	std.load()
	return std.conversational.Metrics(text)
}

func AnalyzeMarketingEffectiveness(text string) MarketingReport {
	std.load()
	return std.marketing.Metrics(text)
}

type Summary struct {
	Mode            feedback.Mode `json:"mode" yaml:"mode"`
	Score           int           `json:"score" yaml:"score"`
	Recommendations []string      `json:"recommendations" yaml:"recommendations"`
	Details         any           `json:"details" yaml:"details"`
}

// Report runs the whole-document metrics for mode. ok is false for ModeNone
// and unknown modes.
func Report(mode feedback.Mode, text string) (Summary, bool) {
	switch mode {
	case feedback.ModeBrevity:
		r := AnalyzeBrevityMetrics(text)
		return Summary{Mode: mode, Score: r.Score, Recommendations: r.Recommendations, Details: r}, true
	case feedback.ModeConversational:
		r := AnalyzeConversationalTone(text)
		return Summary{Mode: mode, Score: r.Score, Recommendations: r.Recommendations, Details: r}, true
	case feedback.ModeMarketing:
		r := AnalyzeMarketingEffectiveness(text)
		return Summary{Mode: mode, Score: r.Score, Recommendations: r.Recommendations, Details: r}, true
	default:
		return Summary{}, false
	}
}
