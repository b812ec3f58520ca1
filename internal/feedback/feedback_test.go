package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeBrevity, ParseMode("Brevity"))
	assert.Equal(t, ModeMarketing, ParseMode(" marketing "))
	assert.Equal(t, ModeNone, ParseMode("poetry"))
	assert.Equal(t, ModeNone, ParseMode(""))
}

func TestParsePassiveVariant(t *testing.T) {
	assert.Equal(t, PassiveLegacy, ParsePassiveVariant("original"))
	assert.Equal(t, PassiveLegacy, ParsePassiveVariant("legacy"))
	assert.Equal(t, PassiveEnhanced, ParsePassiveVariant("enhanced"))
	assert.Equal(t, PassiveEnhanced, ParsePassiveVariant("whatever"))
}

func TestCountersReset(t *testing.T) {
	c := &Counters{Adverbs: 3, Qualifiers: 2}
	c.Brevity.WordyPhrases = 1
	c.Marketing.CTAPositioning = &Positioning{Position: "late", Score: 9}
	c.AddIssue("hard", "text", "split it", SeverityMedium)

	assert.Equal(t, 5, c.Weakeners())
	assert.Len(t, c.Issues, 1)

	c.Reset()
	assert.Equal(t, Counters{}, *c)
}
