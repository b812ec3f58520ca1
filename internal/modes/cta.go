package modes

import (
	"fmt"
	"regexp"
	"strings"

	"prosecoach/internal/feedback"
	"prosecoach/internal/lexicon"
	"prosecoach/internal/span"
)

type CTACategory string

const (
	CTAVeryWeak       CTACategory = "very_weak"
	CTAWeak           CTACategory = "weak"
	CTAMissingBenefit CTACategory = "missing_benefit"
	CTAPassive        CTACategory = "passive"
	CTAPattern        CTACategory = "pattern"
)

// Strength ceilings per category keep a generic "click here" below a merely
// vague "sign up" however the rest of the sentence scores.
var categoryCeiling = map[CTACategory]int{
	CTAVeryWeak:       3,
	CTAPassive:        4,
	CTAWeak:           5,
	CTAMissingBenefit: 6,
}

var (
	ctaActionVerbs = span.NewSet([]string{"get", "start", "download", "claim", "access", "unlock", "boost", "save", "earn", "win"})
	ctaBenefits    = span.NewSet([]string{"free", "save", "boost", "increase", "improve", "results", "instant", "immediate"})
	ctaUrgency     = span.NewSet([]string{"now", "today", "instant", "immediate", "limited", "hurry"})
	ctaTentative   = span.NewSet([]string{"maybe", "perhaps", "try", "consider", "might"})
	ctaSpecific    = regexp.MustCompile(`(?i)\b(free|[\d%]+\s*(off|discount)|[\d]+\s*(minutes?|hours?|days?))\b`)
)

type CTAStrength struct {
	Strength  int      `json:"strength" yaml:"strength"`
	Issues    []string `json:"issues" yaml:"issues"`
	Strengths []string `json:"strengths" yaml:"strengths"`
}

// AnalyzeCTAStrength scores a call to action from 1 to 10.
func AnalyzeCTAStrength(cta string) CTAStrength {
	score := 5
	var issues, strengths []string

	if ctaActionVerbs.Contains(cta) {
		score += 2
		strengths = append(strengths, "has action verb")
	} else {
		score -= 2
		issues = append(issues, "missing strong action verb")
	}
	if ctaBenefits.Contains(cta) {
		score += 2
		strengths = append(strengths, "includes clear benefit")
	} else {
		score--
		issues = append(issues, "missing clear benefit")
	}
	if ctaUrgency.Contains(cta) {
		score++
		strengths = append(strengths, "creates urgency")
	}
	if ctaTentative.Contains(cta) {
		score -= 2
		issues = append(issues, "uses weak/tentative language")
	}
	if ctaSpecific.MatchString(cta) {
		score++
		strengths = append(strengths, "includes specific offer/timeframe")
	}

	switch words := countWords(cta); {
	case words >= 2 && words <= 5:
		score++
		strengths = append(strengths, "appropriate length")
	case words > 7:
		score--
		issues = append(issues, "too long")
	case words < 2:
		score--
		issues = append(issues, "too short")
	}

	return CTAStrength{Strength: clampInt(score, 1, 10), Issues: issues, Strengths: strengths}
}

type weakPattern struct {
	re    *regexp.Regexp
	issue string
}

var weakCTAPatterns = []weakPattern{
	{regexp.MustCompile(`(?i)^(we|our|this|it) (will|can|helps?|enables?)`), "starts with company focus instead of customer benefit"},
	{regexp.MustCompile(`(?i)\b(maybe|perhaps|consider|might want to)\b`), "uses tentative language instead of confident direction"},
	{regexp.MustCompile(`(?i)\b(feel free to|if you want|you can)\b`), "lacks urgency and commitment"},
	{regexp.MustCompile(`\?\s*$`), "ends with question instead of clear direction"},
}

type ctaCheck struct {
	Category    CTACategory
	Phrase      string
	Strength    int
	Issues      []string
	Suggestion  string
	Positioning *feedback.Positioning
}

type ctaCategories struct {
	order []CTACategory
	sets  map[CTACategory]*span.Set
}

func newCTACategories(w lexicon.WeakCTAs) ctaCategories {
	return ctaCategories{
		order: []CTACategory{CTAVeryWeak, CTAWeak, CTAMissingBenefit, CTAPassive},
		sets: map[CTACategory]*span.Set{
			CTAVeryWeak:       span.NewSet(w.VeryWeak),
			CTAWeak:           span.NewSet(w.Weak),
			CTAMissingBenefit: span.NewSet(w.MissingBenefit),
			CTAPassive:        span.NewSet(w.Passive),
		},
	}
}

// classify returns the first category, in severity order, whose phrase list
// occurs in the sentence.
func (cc ctaCategories) classify(plain string) (CTACategory, string, bool) {
	for _, cat := range cc.order {
		set := cc.sets[cat]
		if i := set.FirstIn(plain); i >= 0 {
			return cat, set.Phrase(i), true
		}
	}
	return "", "", false
}

func (cc ctaCategories) any(plain string) bool {
	_, _, ok := cc.classify(plain)
	return ok
}

func (m *Marketing) checkWeakCTA(plain, fullText string) (ctaCheck, bool) {
	sentence := strings.TrimSpace(plain)
	if cat, phrase, ok := m.ctas.classify(sentence); ok {
		st := AnalyzeCTAStrength(sentence)
		strength := min(st.Strength, categoryCeiling[cat])
		pos := ctaPositioning(sentence, fullText)
		return ctaCheck{
			Category:    cat,
			Phrase:      phrase,
			Strength:    strength,
			Issues:      st.Issues,
			Suggestion:  m.contextualSuggestion(cat, fullText),
			Positioning: &pos,
		}, true
	}
	for _, p := range weakCTAPatterns {
		if loc := p.re.FindStringIndex(sentence); loc != nil {
			return ctaCheck{
				Category:   CTAPattern,
				Phrase:     sentence[loc[0]:loc[1]],
				Strength:   2,
				Issues:     []string{p.issue},
				Suggestion: "Make it more direct and benefit-focused",
			}, true
		}
	}
	return ctaCheck{}, false
}

type contentContext string

const (
	contextLeadGeneration contentContext = "lead_generation"
	contextTrial          contentContext = "trial_signup"
	contextPurchase       contentContext = "purchase"
	contextContent        contentContext = "content"
	contextConsultation   contentContext = "consultation"
)

var contextRules = []struct {
	re  *regexp.Regexp
	ctx contentContext
}{
	{regexp.MustCompile(`(?i)\b(trial|demo|test|try)\b`), contextTrial},
	{regexp.MustCompile(`(?i)\b(buy|purchase|price|cost|order)\b|\$`), contextPurchase},
	{regexp.MustCompile(`(?i)\b(guide|ebook|checklist|template|report)\b`), contextContent},
	{regexp.MustCompile(`(?i)\b(consultation|call|meeting|audit|assessment)\b`), contextConsultation},
}

func detectContentContext(text string) contentContext {
	for _, r := range contextRules {
		if r.re.MatchString(text) {
			return r.ctx
		}
	}
	return contextLeadGeneration
}

var benefitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(save|saving)\s+(\w+)`),
	regexp.MustCompile(`(?i)\b(increase|boost|improve|grow)\s+(\w+)`),
	regexp.MustCompile(`(?i)\b(free|instant|immediate)\s+(\w+)`),
	regexp.MustCompile(`(?i)\b(\d+%)\s+(more|less|faster)`),
}

func extractPossibleBenefit(text string) string {
	for _, re := range benefitPatterns {
		if m := re.FindString(text); m != "" {
			return strings.ToLower(m)
		}
	}
	return ""
}

func (m *Marketing) templates(ctx contentContext) []string {
	t := m.lx.Marketing.CTATemplates
	var out []string
	switch ctx {
	case contextTrial:
		out = t.TrialSignup
	case contextPurchase:
		out = t.Purchase
	case contextContent:
		out = t.Content
	case contextConsultation:
		out = t.Consultation
	}
	if len(out) < 2 {
		out = t.LeadGeneration
	}
	return out
}

func (m *Marketing) contextualSuggestion(cat CTACategory, fullText string) string {
	tpl := m.templates(detectContentContext(fullText))
	if len(tpl) == 0 {
		return "Use Verb + Benefit formula for stronger CTAs"
	}
	switch cat {
	case CTAVeryWeak:
		return fmt.Sprintf("Replace with benefit-focused action: %q", fill(tpl[0], "free guide"))
	case CTAWeak:
		return fmt.Sprintf("Add specific benefit: %q", fill(tpl[min(1, len(tpl)-1)], "free guide"))
	case CTAMissingBenefit:
		benefit := extractPossibleBenefit(fullText)
		if benefit == "" {
			benefit = "instant access"
		}
		return fmt.Sprintf("Add clear value: %q", fill(tpl[0], benefit))
	case CTAPassive:
		return fmt.Sprintf("Make it direct and customer-focused: %q", fill(tpl[0], "results"))
	default:
		return fmt.Sprintf("Strengthen with: Verb + Specific Benefit + Urgency (e.g., %q)", tpl[0])
	}
}

func fill(template, benefit string) string {
	return strings.NewReplacer(
		"{benefit}", benefit,
		"{product}", "our tool",
		"{timeframe}", "30 days",
		"{discount}", "discount",
		"{amount}", "20%",
		"{percentage}", "20%",
	).Replace(template)
}

// ctaPositioning scores where the CTA sits among the document's sentences;
// later is better once value has been delivered.
func ctaPositioning(cta, fullText string) feedback.Positioning {
	target := stripTerminal(cta)
	sentences := splitSentences(fullText)
	idx := -1
	if target != "" {
		for i, s := range sentences {
			if strings.Contains(s, target) {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return feedback.Positioning{Position: "unknown", Score: 5, Recommendation: positioningRecommendation("unknown")}
	}

	ratio := float64(idx) / float64(len(sentences))
	var pos string
	var score int
	switch {
	case ratio < 0.1:
		pos, score = "very_early", 6
	case ratio < 0.3:
		pos, score = "early", 8
	case ratio < 0.7:
		pos, score = "middle", 7
	case ratio < 0.9:
		pos, score = "late", 9
	default:
		pos, score = "very_late", 10
	}
	return feedback.Positioning{Position: pos, Score: score, Recommendation: positioningRecommendation(pos)}
}

func positioningRecommendation(pos string) string {
	switch pos {
	case "very_early":
		return "Consider providing more value before the CTA"
	case "early":
		return "Good early positioning - ensure you've established value"
	case "middle":
		return "Consider moving closer to the end after delivering value"
	case "late":
		return "Excellent positioning after value delivery"
	case "very_late":
		return "Perfect positioning - readers are convinced and ready to act"
	default:
		return "Position after establishing clear value and benefits"
	}
}
