package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prosecoach/internal/lexicon"
)

func TestHighlightEscapesAttributes(t *testing.T) {
	got := Highlight("here", "x", `say "this"`, "a<b")
	assert.Equal(t, `<span class="x" data-suggestion="say &#34;this&#34;" data-reason="a&lt;b">here</span>`, got)
	assert.Equal(t, `<span class="x">here</span>`, Highlight("here", "x", "", ""))
}

func TestPlainText(t *testing.T) {
	s := `The <span class="adverb">really</span> long <b>text</b>, a < b.`
	assert.Equal(t, "The really long text, a < b.", PlainText(s))
}

func TestReplacePhrasesWholeWordCaseInsensitive(t *testing.T) {
	set := NewMappingSet(lexicon.Mapping{{Phrase: "in order to", Replacement: "to"}})

	got, n := ReplacePhrases("We did this In order to succeed.", set, "brevity-wordy")
	assert.Equal(t, 1, n)
	assert.Equal(t, `We did this <span class="brevity-wordy" data-suggestion="to" data-reason="Consider using &#34;to&#34; instead of &#34;in order to&#34;">In order to</span> succeed.`, got)

	got, n = ReplacePhrases("Join order tomorrow.", set, "brevity-wordy")
	assert.Zero(t, n)
	assert.Equal(t, "Join order tomorrow.", got)
}

func TestAnnotateSkipsMarkup(t *testing.T) {
	set := NewSet([]string{"use", "very"})
	in := `<span class="x" data-suggestion="use">utilize</span> very well.`

	got, n := HighlightWords(in, set, "filler", "")
	assert.Equal(t, 1, n)
	assert.Equal(t, `<span class="x" data-suggestion="use">utilize</span> <span class="filler">very</span> well.`, got)
}

func TestAnnotateCountsEveryOccurrence(t *testing.T) {
	set := NewSet([]string{"just"})
	got, n := HighlightWords("Just do it, just now.", set, "qualifier", "")
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, set.Count("Just do it, just now."))
	assert.Contains(t, got, `<span class="qualifier">Just</span>`)
	assert.Contains(t, got, `<span class="qualifier">just</span>`)
}

func TestNoMatchLeavesTextUnchanged(t *testing.T) {
	set := NewSet([]string{"utilize", "perhaps"})
	got, n := HighlightWords("Nothing to see here.", set, "complex", "")
	assert.Zero(t, n)
	assert.Equal(t, "Nothing to see here.", got)
}

func TestFindOrdersMatches(t *testing.T) {
	set := NewSet([]string{"free", "get your free", "now"})
	ms := set.Find("Get your free trial now")
	require.Len(t, ms, 3)
	assert.Equal(t, 1, ms[0].Pattern)
	assert.Equal(t, "Get your free", ms[0].Text)
	assert.Equal(t, 0, ms[1].Pattern)
	assert.Equal(t, 2, ms[2].Pattern)

	assert.Empty(t, set.Find("freedom knows"))
	assert.Equal(t, 0, set.FirstIn("a free lunch"))
	assert.Equal(t, 0, set.FirstIn("act now to get your free copy"))
	assert.Equal(t, 2, set.FirstIn("call now"))
	assert.Equal(t, -1, set.FirstIn("freedom"))
}

func TestTokens(t *testing.T) {
	s := `The <span class="adverb">carefully</span> written.`
	toks := Tokens(s)
	require.Len(t, toks, 3)
	assert.Equal(t, "carefully", toks[1].Text)
	assert.Equal(t, "carefully", s[toks[1].Start:toks[1].End])
	assert.Equal(t, "written.", toks[2].Text)
}

func TestWrapRangeNestsAroundExistingSpans(t *testing.T) {
	s := `The report was <span class="adverb">carefully</span> written.`
	toks := Tokens(s)
	require.Len(t, toks, 5)

	got := WrapRange(s, toks[2].Start, toks[4].End, Open("passive", "", ""), Close)
	assert.Equal(t, `The report <span class="passive">was <span class="adverb">carefully</span> written.</span>`, got)

	s = `It was <span class="complex">impacted</span> badly.`
	toks = Tokens(s)
	got = WrapRange(s, toks[1].Start, toks[2].End, Open("passive", "", ""), Close)
	assert.Equal(t, `It <span class="passive">was <span class="complex">impacted</span></span> badly.`, got)
}
