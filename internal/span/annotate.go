package span

import "fmt"

// ReplacePhrases marks each phrase of a replacement set with its simpler
// alternative. Returns the rewritten text and the number of spans added.
func ReplacePhrases(s string, set *Set, class string) (string, int) {
	return set.Annotate(s, func(i int, matched string) string {
		repl := set.Replacement(i)
		return Highlight(matched, class, repl, SuggestReason(repl, set.Phrase(i)))
	})
}

// HighlightWords marks every listed word or phrase with the same rationale.
func HighlightWords(s string, set *Set, class, reason string) (string, int) {
	return set.Annotate(s, func(_ int, matched string) string {
		return Highlight(matched, class, "", reason)
	})
}

// Suggest marks each phrase of a replacement set with its alternative as the
// suggestion and no rationale.
func Suggest(s string, set *Set, class string) (string, int) {
	return set.Annotate(s, func(i int, matched string) string {
		return Highlight(matched, class, set.Replacement(i), "")
	})
}

func SuggestReason(replacement, phrase string) string {
	return fmt.Sprintf("Consider using %q instead of %q", replacement, phrase)
}
