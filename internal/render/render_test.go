package render

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prosecoach/internal/document"
	"prosecoach/internal/feedback"
)

func TestExtractRecoversEverySpan(t *testing.T) {
	text := "We utilize tools quickly.\nThe ball was kicked by John.\nDownload the guide, maybe."
	a := document.New(document.WithSettings(feedback.Settings{Mode: feedback.ModeMarketing}))
	res, err := a.Analyze(context.Background(), text)
	require.NoError(t, err)

	highlights, err := Extract(res.HTML)
	require.NoError(t, err)
	assert.Len(t, highlights, strings.Count(res.HTML, "<span "))

	summary := Summarize(highlights)
	assert.Equal(t, 1, summary["complex"])
	assert.Equal(t, 1, summary["passive"])
	assert.Equal(t, 1, summary["adverb"])

	plain, err := Plain(res.HTML)
	require.NoError(t, err)
	assert.Equal(t, text, plain)
}

func TestExtractUnescapesAttributesAndDepth(t *testing.T) {
	html := `<p><span class="hardSentence">We <span class="complex" data-suggestion="use" data-reason="Consider using &#34;use&#34;">utilize</span> it.</span></p>`
	highlights, err := Extract(html)
	require.NoError(t, err)
	require.Len(t, highlights, 2)

	assert.Equal(t, Highlight{Class: "hardSentence", Text: "We utilize it.", Depth: 0}, highlights[0])
	assert.Equal(t, "complex", highlights[1].Class)
	assert.Equal(t, `Consider using "use"`, highlights[1].Reason)
	assert.Equal(t, 1, highlights[1].Depth)
}

func TestClassesSorted(t *testing.T) {
	assert.Equal(t, []string{"adverb", "passive"}, Classes(map[string]int{"passive": 1, "adverb": 2}))
}
