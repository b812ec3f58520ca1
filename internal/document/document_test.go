package document

import (
	"context"
	"errors"
	"testing"

	"github.com/pemistahl/lingua-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prosecoach/internal/feedback"
)

func TestAnalyzeWrapsParagraphs(t *testing.T) {
	res, err := New().Analyze(context.Background(), "The cat sat.\nThe dog ran.")
	require.NoError(t, err)

	assert.Equal(t, "<p>The cat sat.</p> <p>The dog ran.</p>", res.HTML)
	assert.Equal(t, 2, res.Counters.Paragraphs)
	assert.Equal(t, 2, res.Counters.Sentences)
	assert.Equal(t, 6, res.Counters.Words)
	assert.Equal(t, 25, res.Counters.Characters)
	assert.NotEmpty(t, res.RunID)
	assert.Nil(t, res.Mode)
	assert.Nil(t, res.Language)
}

func TestAnalyzeUsesFreshCountersPerRun(t *testing.T) {
	a := New()
	text := "We utilize tools quickly.\nThe ball was kicked by John."

	first, err := a.Analyze(context.Background(), text)
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, first.Counters, second.Counters)
	assert.Equal(t, 1, second.Counters.Complex)
	assert.Equal(t, 1, second.Counters.PassiveVoice)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestAnalyzeModeSummary(t *testing.T) {
	a := New(WithSettings(feedback.Settings{PassiveVariant: feedback.PassiveEnhanced, Mode: feedback.ModeBrevity}))
	res, err := a.Analyze(context.Background(), "We met in order to plan.")
	require.NoError(t, err)

	require.NotNil(t, res.Mode)
	assert.Equal(t, feedback.ModeBrevity, res.Mode.Mode)
	assert.Equal(t, 1, res.Counters.Brevity.WordyPhrases)
	assert.Contains(t, res.HTML, "brevity-wordy")
}

func TestAnalyzeHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Analyze(ctx, "One paragraph.")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLanguageDetectionReportsButProceeds(t *testing.T) {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.French).
		Build()
	a := New(WithDetector(detector))

	res, err := a.Analyze(context.Background(), "Le chat est sur la table et il dort tranquillement pendant que nous mangeons.")
	require.NoError(t, err)
	require.NotNil(t, res.Language)
	assert.Equal(t, "fr", res.Language.Code)
	assert.False(t, res.Language.English)
	assert.NotEmpty(t, res.HTML)

	res, err = a.Analyze(context.Background(), "The weather is lovely and we are going for a long walk in the park.")
	require.NoError(t, err)
	assert.True(t, res.Language.English)
}

func TestTips(t *testing.T) {
	c := &feedback.Counters{Paragraphs: 3, Sentences: 1, Adverbs: 1, Qualifiers: 1, PassiveVoice: 1}
	tips := Tips(c)
	require.Len(t, tips, 5)

	assert.Equal(t, "You have used 2 adverbs. Try to use 1 or less", tips[0].Message)
	assert.Equal(t, "You have used passive voice 1 time. Aim for 0 or less.", tips[1].Message)
	assert.Equal(t, "0 phrase could be simplified.", tips[2].Message)
	assert.Equal(t, "0 of 1 sentence is hard to read", tips[3].Message)
	assert.Equal(t, "0 of 1 sentence is very hard to read", tips[4].Message)

	c.Sentences = 4
	assert.Equal(t, "0 of 4 sentences are hard to read", Tips(c)[3].Message)
}
