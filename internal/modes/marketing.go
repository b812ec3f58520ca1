package modes

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"prosecoach/internal/feedback"
	"prosecoach/internal/lexicon"
	"prosecoach/internal/span"
)

const (
	ClassWeakHeadline   = "marketing-weak-headline"
	ClassVeryWeakCTA    = "marketing-very-weak-cta"
	ClassWeakCTA        = "marketing-weak-cta"
	ClassFeatureFocused = "marketing-feature-focused"
	ClassVagueClaim     = "marketing-vague-claim"
	ClassMissingUrgency = "marketing-missing-urgency"
)

const ctaMaxChars = 100

var (
	promiseVerbs  = regexp.MustCompile(`(?i)\b(save|get|boost|increase|reduce|improve|grow|win|earn|gain)\b`)
	headlineVerbs = regexp.MustCompile(`(?i)\b(get|save|boost|increase|create|build|grow|win|discover|unlock|transform|start|stop|avoid|prevent|achieve|reach)\b`)
	directYou     = regexp.MustCompile(`(?i)\byou\b`)

	actionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(click|get|start|try|download|sign|buy|order|subscribe|join)\b`),
		regexp.MustCompile(`(?i)\b(button|link)\b`),
		regexp.MustCompile(`(?i)^(get|start|try|download|sign|buy|click|join)`),
	}
	extractPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(get|start|try|download|sign up|subscribe|buy|purchase|order|click|join|learn|discover|explore|see|view|watch|read)\b`),
		regexp.MustCompile(`(?i)\b(free|now|today|instant|immediately)\b`),
		regexp.MustCompile(`(?i)\bbutton\b`),
		regexp.MustCompile(`(?i)^(get|start|try|download|sign|buy|click|join)`),
	}
)

type Marketing struct {
	lx       *lexicon.Lexicon
	ctas     ctaCategories
	power    *span.Set
	starters []string
	feature  *span.Set
	benefit  *span.Set
	vague    *span.Set
	urgency  *span.Set
}

func NewMarketing(lx *lexicon.Lexicon) *Marketing {
	mk := lx.Marketing
	starters := make([]string, len(mk.WeakHeadlineStarters))
	for i, s := range mk.WeakHeadlineStarters {
		starters[i] = strings.ToLower(s)
	}
	return &Marketing{
		lx:       lx,
		ctas:     newCTACategories(mk.WeakCTAs),
		power:    span.NewSet(mk.PowerWords),
		starters: starters,
		feature:  span.NewSet(mk.FeatureWords),
		benefit:  span.NewSet(mk.BenefitWords),
		vague:    span.NewSet(mk.VagueClaims),
		urgency:  span.NewSet(mk.UrgencyWords),
	}
}

func (m *Marketing) Mode() feedback.Mode { return feedback.ModeMarketing }

func (m *Marketing) AnnotateSentence(sentence string, c *feedback.Counters, fullText string) string {
	plain := strings.TrimSpace(span.PlainText(sentence))
	result := sentence

	if isHeadlineOrOpening(fullText, plain) {
		if issues := m.headlineIssues(stripTerminal(plain)); len(issues) > 0 {
			c.Marketing.WeakHeadlines++
			result = span.Highlight(result, ClassWeakHeadline, "Strengthen headline", "Improve with: "+strings.Join(issues, ", "))
		}
	}

	if check, ok := m.checkWeakCTA(plain, fullText); ok {
		c.Marketing.WeakCTAs++
		class := ClassWeakCTA
		if check.Strength <= 3 {
			class = ClassVeryWeakCTA
		}
		reason := "Use Verb + Benefit formula for stronger CTAs"
		if len(check.Issues) > 0 {
			reason = "Issues: " + strings.Join(check.Issues, ", ")
		}
		suggestion := fmt.Sprintf("%s | Strength: %d/10", check.Suggestion, check.Strength)
		result = span.Highlight(result, class, suggestion, reason)
		if check.Positioning != nil {
			c.Marketing.CTAPositioning = check.Positioning
		}
	}

	var n int
	benefits := m.lx.Marketing.BenefitWords
	result, n = m.feature.Annotate(result, func(i int, matched string) string {
		if len(benefits) == 0 {
			return span.Highlight(matched, ClassFeatureFocused, "", "")
		}
		alt := benefits[i%len(benefits)]
		return span.Highlight(matched, ClassFeatureFocused, alt, fmt.Sprintf("Focus on benefits: %q instead of %q", alt, m.feature.Phrase(i)))
	})
	c.Marketing.FeatureFocused += n

	result, n = m.vague.Annotate(result, func(_ int, matched string) string {
		return span.Highlight(matched, ClassVagueClaim, "be specific", "Be specific: How much time/money? Include numbers, percentages, or timeframes.")
	})
	c.Marketing.VagueClaims += n

	if isCallToAction(plain) && !m.urgency.Contains(plain) {
		c.Marketing.MissingUrgency++
		result = span.Highlight(result, ClassMissingUrgency, "Add urgency", `Consider adding urgency words like "now", "today", or "limited time"`)
	}
	return result
}

func (m *Marketing) headlineIssues(headline string) []string {
	lower := strings.ToLower(headline)
	hasPromise := m.power.Contains(headline) || promiseVerbs.MatchString(headline)
	hasAction := headlineVerbs.MatchString(headline)
	hasYou := directYou.MatchString(headline)

	weakStart := false
	for _, s := range m.starters {
		if strings.HasPrefix(lower, s) && (len(lower) == len(s) || !isWordChar(lower[len(s)])) {
			weakStart = true
			break
		}
	}

	var issues []string
	if !hasPromise {
		issues = append(issues, "add a promise or benefit")
	}
	if !hasAction {
		issues = append(issues, "include an action verb")
	}
	if !hasYou {
		issues = append(issues, "address the reader directly with 'you'")
	}
	if weakStart {
		issues = append(issues, "avoid weak opening phrases")
	}
	return issues
}

// isHeadlineOrOpening reports whether the sentence sits near the start of the
// document: within the first 100 characters, at the very start, or short and
// within the first 50.
func isHeadlineOrOpening(fullText, plain string) bool {
	start := headOfRunes(strings.TrimSpace(fullText), 200)
	sentence := strings.TrimSpace(plain)
	if sentence == "" {
		return false
	}
	pos := strings.Index(start, sentence)
	if pos < 0 {
		// The sentence splitter may have appended a period the source lacks.
		sentence = strings.TrimSpace(strings.TrimSuffix(sentence, "."))
		if sentence == "" {
			return false
		}
		pos = strings.Index(start, sentence)
	}
	if pos < 0 {
		return false
	}
	pos = utf8.RuneCountInString(start[:pos])
	return pos < 100 || strings.HasPrefix(start, sentence) || (utf8.RuneCountInString(sentence) < 60 && pos < 50)
}

// headOfRunes returns at most n runes from the start of s.
func headOfRunes(s string, n int) string {
	i := 0
	for off := range s {
		if i == n {
			return s[:off]
		}
		i++
	}
	return s
}

func isCallToAction(plain string) bool {
	if len(plain) >= ctaMaxChars {
		return false
	}
	for _, re := range actionPatterns {
		if re.MatchString(plain) {
			return true
		}
	}
	return false
}

func extractCTAs(text string) []string {
	var out []string
	for _, s := range splitSentences(text) {
		t := strings.TrimSpace(s)
		if len(t) >= ctaMaxChars {
			continue
		}
		for _, re := range extractPatterns {
			if re.MatchString(t) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

type SocialProof struct {
	Testimonials int  `json:"testimonials" yaml:"testimonials"`
	Numbers      int  `json:"numbers" yaml:"numbers"`
	Companies    int  `json:"companies" yaml:"companies"`
	Ratings      int  `json:"ratings" yaml:"ratings"`
	Total        int  `json:"total" yaml:"total"`
	HasProof     bool `json:"has_proof" yaml:"has_proof"`
}

var (
	proofTestimonials = regexp.MustCompile(`(?i)\b(testimonial|review|says|".*")\b`)
	proofNumbers      = regexp.MustCompile(`(?i)\b(\d+[kmb]?[\+]?\s*(customers?|users?|companies?|people)|\d+%)`)
	proofCompanies    = regexp.MustCompile(`(?i)\b(trusted by|used by|featured in|clients include)\b`)
	proofRatings      = regexp.MustCompile(`(?i)\b(\d+\.\d+\s*stars?|\d+/\d+|rated)\b`)
)

// analyzeSocialProof scores each kind of proof by its first occurrence: the
// whole match plus one per capture group.
func analyzeSocialProof(text string) SocialProof {
	sp := SocialProof{
		Testimonials: len(proofTestimonials.FindStringSubmatch(text)),
		Numbers:      len(proofNumbers.FindStringSubmatch(text)),
		Companies:    len(proofCompanies.FindStringSubmatch(text)),
		Ratings:      len(proofRatings.FindStringSubmatch(text)),
	}
	sp.Total = sp.Testimonials + sp.Numbers + sp.Companies + sp.Ratings
	sp.HasProof = sp.Total > 0
	return sp
}

type MarketingReport struct {
	Score            int         `json:"score" yaml:"score"`
	CTACount         int         `json:"cta_count" yaml:"cta_count"`
	WeakCTACount     int         `json:"weak_cta_count" yaml:"weak_cta_count"`
	PowerWordCount   int         `json:"power_word_count" yaml:"power_word_count"`
	UrgencyWordCount int         `json:"urgency_word_count" yaml:"urgency_word_count"`
	SocialProofScore int         `json:"social_proof_score" yaml:"social_proof_score"`
	SocialProof      SocialProof `json:"social_proof" yaml:"social_proof"`
	FeatureWordCount int         `json:"feature_word_count" yaml:"feature_word_count"`
	BenefitWordCount int         `json:"benefit_word_count" yaml:"benefit_word_count"`
	Recommendations  []string    `json:"recommendations" yaml:"recommendations"`
}

func (m *Marketing) Metrics(text string) MarketingReport {
	ctas := extractCTAs(text)
	weak := 0
	for _, cta := range ctas {
		if m.ctas.any(cta) {
			weak++
		}
	}
	proof := analyzeSocialProof(text)
	power := m.power.Count(text)
	urgency := m.urgency.Count(text)
	feature := m.feature.Count(text)
	benefit := m.benefit.Count(text)

	score := 50.0
	score += min(float64(power)*3, 20)
	score += min(float64(urgency)*4, 15)
	if proof.HasProof {
		score += 15
	}
	score += min(float64(benefit)*2, 10)
	score -= min(float64(weak)*8, 20)
	score -= min(float64(feature)*2, 15)
	if len(ctas) > 0 {
		score += 5
	}

	return MarketingReport{
		Score:            clampInt(roundInt(score), 0, 100),
		CTACount:         len(ctas),
		WeakCTACount:     weak,
		PowerWordCount:   power,
		UrgencyWordCount: urgency,
		SocialProofScore: proof.Total,
		SocialProof:      proof,
		FeatureWordCount: feature,
		BenefitWordCount: benefit,
		Recommendations:  marketingRecommendations(score, len(ctas), weak, power, urgency, proof.HasProof, feature, benefit),
	}
}

func marketingRecommendations(score float64, ctas, weak, power, urgency int, proof bool, feature, benefit int) []string {
	var recs []string
	if ctas == 0 {
		recs = append(recs, "Add clear calls-to-action to guide readers toward conversion.")
	} else if weak > 0 {
		recs = append(recs, "Strengthen CTAs with Verb + Benefit formula (e.g., 'Get your free report').")
	}
	if power < 2 {
		recs = append(recs, "Add power words like 'guaranteed', 'proven', 'instant' for more impact.")
	}
	if urgency == 0 {
		recs = append(recs, "Create urgency with words like 'now', 'today', 'limited time'.")
	}
	if !proof {
		recs = append(recs, "Add social proof: testimonials, customer counts, or press mentions.")
	}
	if feature > benefit {
		recs = append(recs, "Focus more on benefits (what it does for customers) than features (what it has).")
	}
	switch {
	case score > 80:
		recs = append(recs, "Excellent marketing copy! Your writing is persuasive and action-oriented.")
	case score > 60:
		recs = append(recs, "Good marketing copy with room for more persuasive elements.")
	case score > 40:
		recs = append(recs, "Add more persuasive elements: CTAs, urgency, social proof.")
	default:
		recs = append(recs, "Focus on clear benefits, strong CTAs, and trust-building elements.")
	}
	return recs
}

func isWordChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
