package modes

import (
	"regexp"
	"strings"

	"prosecoach/internal/feedback"
	"prosecoach/internal/lexicon"
	"prosecoach/internal/span"
)

const (
	ClassMissingContraction = "conversational-missing-contraction"
	ClassFormal             = "conversational-formal"
	ClassImpersonal         = "conversational-impersonal"
	ClassComplexConjunction = "conversational-complex"
	ClassFormalTransition   = "conversational-transition"
	ClassComplexSentence    = "conversational-complex-sentence"
)

var (
	clauseIndicator  = regexp.MustCompile(`(?i)[,;:]\s*(?:and|but|or|which|that|who|where|when|while|although|because|since|if|unless|until|after|before)`)
	contractionMark  = regexp.MustCompile(`(?i)'(t|s|re|ve|ll|d|m)\b`)
	personalPronouns = regexp.MustCompile(`(?i)\b(you|we|I|us|me|our|your)\b`)
)

type Conversational struct {
	contractions *span.Set
	formal       *span.Set
	impersonal   *span.Set
	conjunctions *span.Set
	transitions  *span.Set
}

func NewConversational(lx *lexicon.Lexicon) *Conversational {
	cv := lx.Conversational
	return &Conversational{
		contractions: span.NewMappingSet(cv.Contractions),
		formal:       span.NewMappingSet(cv.FormalWords),
		impersonal:   span.NewMappingSet(cv.ImpersonalPhrases),
		conjunctions: span.NewMappingSet(cv.ComplexConjunctions),
		transitions:  span.NewMappingSet(cv.FormalTransitions),
	}
}

func (cv *Conversational) Mode() feedback.Mode { return feedback.ModeConversational }

func (cv *Conversational) AnnotateSentence(sentence string, c *feedback.Counters, _ string) string {
	result := sentence
	var n int
	result, n = span.ReplacePhrases(result, cv.contractions, ClassMissingContraction)
	c.Conversational.MissingContractions += n
	result, n = span.ReplacePhrases(result, cv.formal, ClassFormal)
	c.Conversational.FormalWords += n
	result, n = span.ReplacePhrases(result, cv.impersonal, ClassImpersonal)
	c.Conversational.ImpersonalLanguage += n
	result, n = span.ReplacePhrases(result, cv.conjunctions, ClassComplexConjunction)
	c.Conversational.ComplexConjunctions += n
	result, n = span.ReplacePhrases(result, cv.transitions, ClassFormalTransition)
	c.Conversational.FormalTransitions += n

	if hasComplexStructure(span.PlainText(sentence)) {
		c.Conversational.ComplexSentences++
		result = span.Highlight(result, ClassComplexSentence, "Simplify this sentence", "Break this into simpler sentences for better conversation flow")
	}
	return result
}

// hasComplexStructure: more than two clause indicators, or a long sentence
// with at least one.
func hasComplexStructure(plain string) bool {
	clauses := len(clauseIndicator.FindAllStringIndex(plain, -1))
	return clauses > 2 || (countWords(plain) > 25 && clauses > 0)
}

type ConversationalReport struct {
	Score                   int      `json:"score" yaml:"score"`
	QuestionPercentage      int      `json:"question_percentage" yaml:"question_percentage"`
	ContractionCount        int      `json:"contraction_count" yaml:"contraction_count"`
	FormalWordCount         int      `json:"formal_word_count" yaml:"formal_word_count"`
	PersonalPronounCount    int      `json:"personal_pronoun_count" yaml:"personal_pronoun_count"`
	AverageWordsPerSentence float64  `json:"average_words_per_sentence" yaml:"average_words_per_sentence"`
	Recommendations         []string `json:"recommendations" yaml:"recommendations"`
}

func (cv *Conversational) Metrics(text string) ConversationalReport {
	sentences := splitSentences(text)
	totalWords := countWords(text)

	var questionPct, avg float64
	if len(sentences) > 0 {
		questionPct = float64(strings.Count(text, "?")) / float64(len(sentences)) * 100
		avg = float64(totalWords) / float64(len(sentences))
	}
	contractions := len(contractionMark.FindAllStringIndex(text, -1))
	formal := cv.formal.Count(text)
	pronouns := len(personalPronouns.FindAllStringIndex(text, -1))

	score := 50.0
	score += min(float64(contractions)*2, 15)
	score += min(questionPct*0.5, 10)
	score += min(float64(pronouns)*0.5, 15)
	score -= min(float64(formal)*3, 25)
	if avg > 20 {
		score -= min((avg-20)*1.5, 15)
	}

	return ConversationalReport{
		Score:                   clampInt(roundInt(score), 0, 100),
		QuestionPercentage:      roundInt(questionPct),
		ContractionCount:        contractions,
		FormalWordCount:         formal,
		PersonalPronounCount:    pronouns,
		AverageWordsPerSentence: round1(avg),
		Recommendations:         conversationalRecommendations(score, questionPct, contractions, formal, pronouns, totalWords),
	}
}

func conversationalRecommendations(score, questionPct float64, contractions, formal, pronouns, words int) []string {
	var recs []string
	if contractions == 0 && words > 50 {
		recs = append(recs, "Use contractions (don't, can't, you're) to sound more natural.")
	}
	if formal > 5 {
		recs = append(recs, "Replace formal words with simpler alternatives (use 'start' instead of 'commence').")
	}
	if pronouns < 3 && words > 100 {
		recs = append(recs, "Use more personal pronouns (you, we, I) to connect with readers.")
	}
	if questionPct == 0 && words > 100 {
		recs = append(recs, "Add questions to engage your readers (What does this mean? How does this help?).")
	}
	switch {
	case score > 80:
		recs = append(recs, "Excellent conversational tone! Your writing feels natural and engaging.")
	case score > 60:
		recs = append(recs, "Good conversational tone with room to be more natural.")
	case score > 40:
		recs = append(recs, "Your writing could be more conversational - try reading it out loud.")
	default:
		recs = append(recs, "Focus on writing like you talk - use simple words and direct language.")
	}
	return recs
}
