package modes

import (
	"strings"

	"github.com/orsinium-labs/stopwords"

	"prosecoach/internal/feedback"
	"prosecoach/internal/lexicon"
	"prosecoach/internal/span"
)

const brevityMaxWords = 15

const (
	ClassBrevityLong      = "brevity-long-sentence"
	ClassBrevityWordy     = "brevity-wordy"
	ClassBrevityRedundant = "brevity-redundant"
	ClassBrevityFiller    = "brevity-filler"
	ClassBrevityQualifier = "brevity-qualifier"
)

type Brevity struct {
	wordy      *span.Set
	redundant  *span.Set
	filler     *span.Set
	qualifiers *span.Set
	stop       *stopwords.Stopwords
}

func NewBrevity(lx *lexicon.Lexicon) *Brevity {
	return &Brevity{
		wordy:      span.NewMappingSet(lx.Brevity.WordyPhrases),
		redundant:  span.NewMappingSet(lx.Brevity.RedundantPhrases),
		filler:     span.NewSet(lx.Brevity.FillerWords),
		qualifiers: span.NewSet(lx.Brevity.WeakQualifiers),
		stop:       stopwords.MustGet("en"),
	}
}

func (b *Brevity) Mode() feedback.Mode { return feedback.ModeBrevity }

func (b *Brevity) AnnotateSentence(sentence string, c *feedback.Counters, _ string) string {
	plain := span.PlainText(sentence)
	result := sentence

	if check := checkSentenceLength(plain, brevityMaxWords); check.Long {
		c.Brevity.LongSentences++
		c.AddIssue(ClassBrevityLong, strings.TrimSpace(plain), check.Suggestion, check.Severity)
		result = span.Highlight(result, ClassBrevityLong, "Break into shorter sentences", check.Suggestion)
	}

	var n int
	result, n = span.ReplacePhrases(result, b.wordy, ClassBrevityWordy)
	c.Brevity.WordyPhrases += n
	result, n = span.ReplacePhrases(result, b.redundant, ClassBrevityRedundant)
	c.Brevity.RedundantPhrases += n
	result, n = span.HighlightWords(result, b.filler, ClassBrevityFiller, "Remove this filler word for more impact")
	c.Brevity.FillerWords += n
	result, n = span.HighlightWords(result, b.qualifiers, ClassBrevityQualifier, "Consider removing this qualifier for stronger writing")
	c.Brevity.WeakQualifiers += n
	return result
}

type BrevityReport struct {
	Score                   int      `json:"score" yaml:"score"`
	AverageWordsPerSentence float64  `json:"average_words_per_sentence" yaml:"average_words_per_sentence"`
	LongSentencePercentage  int      `json:"long_sentence_percentage" yaml:"long_sentence_percentage"`
	PassivePercentage       int      `json:"passive_percentage" yaml:"passive_percentage"`
	TotalWordyPhrases       int      `json:"total_wordy_phrases" yaml:"total_wordy_phrases"`
	LexicalDensity          float64  `json:"lexical_density" yaml:"lexical_density"`
	SentenceLengthSD        float64  `json:"sentence_length_sd" yaml:"sentence_length_sd"`
	Recommendations         []string `json:"recommendations" yaml:"recommendations"`
}

func (b *Brevity) Metrics(text string) BrevityReport {
	sentences := splitSentences(text)
	totalWords := countWords(text)

	var avg, longPct float64
	if len(sentences) > 0 {
		avg = float64(totalWords) / float64(len(sentences))
		long := 0
		for _, s := range sentences {
			if countWords(s) > brevityMaxWords {
				long++
			}
		}
		longPct = float64(long) / float64(len(sentences)) * 100
	}
	passive := passivePercentage(text)
	wordy := b.wordy.Count(text) + b.redundant.Count(text)

	score := 100.0
	score -= min(longPct*0.5, 25)
	if passive > 10 {
		score -= min(float64(passive-10)*2, 20)
	}
	score -= min(float64(wordy)*3, 20)
	if avg > brevityMaxWords {
		score -= min((avg-brevityMaxWords)*2, 15)
	}

	sd, _ := sentenceLengthStats(text)
	return BrevityReport{
		Score:                   max(0, roundInt(score)),
		AverageWordsPerSentence: round1(avg),
		LongSentencePercentage:  roundInt(longPct),
		PassivePercentage:       passive,
		TotalWordyPhrases:       wordy,
		LexicalDensity:          b.lexicalDensity(text),
		SentenceLengthSD:        round1(sd),
		Recommendations:         brevityRecommendations(score, longPct, passive, wordy, avg),
	}
}

// lexicalDensity is the percentage of words that are not stopwords.
func (b *Brevity) lexicalDensity(text string) float64 {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	if len(words) == 0 {
		return 0
	}
	content := 0
	for _, w := range words {
		if !b.stop.Contains(w) {
			content++
		}
	}
	return round1(float64(content) / float64(len(words)) * 100)
}

func brevityRecommendations(score, longPct float64, passive, wordy int, avg float64) []string {
	var recs []string
	if longPct > 30 {
		recs = append(recs, "Break up long sentences - aim for 15 words or fewer per sentence.")
	}
	if passive > 15 {
		recs = append(recs, "Use more active voice - replace passive constructions with active ones.")
	}
	if wordy > 3 {
		recs = append(recs, "Replace wordy phrases with shorter alternatives (e.g., 'in order to' → 'to').")
	}
	if avg > 20 {
		recs = append(recs, "Reduce average sentence length for better readability.")
	}
	switch {
	case score > 80:
		recs = append(recs, "Excellent brevity! Your writing is concise and impactful.")
	case score > 60:
		recs = append(recs, "Good brevity with room for improvement.")
	default:
		recs = append(recs, "Focus on cutting unnecessary words and phrases.")
	}
	return recs
}
