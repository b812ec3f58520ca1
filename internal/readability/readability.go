package readability

import (
	"math"
	"regexp"
	"strings"
)

// Sentences shorter than this are never classified as hard.
const MinWordsForDifficulty = 14

const (
	HardLevel     = 10
	VeryHardLevel = 14
)

type Tier int

const (
	Normal Tier = iota
	Hard
	VeryHard
)

func (t Tier) String() string {
	switch t {
	case Hard:
		return "hard"
	case VeryHard:
		return "very_hard"
	default:
		return "normal"
	}
}

var nonCountable = regexp.MustCompile(`[^a-zA-Z0-9. ]`)

// Level is the grade level 4.71*L/W + 0.5*W/S - 21.43, rounded half up and
// floored at zero. Zero words or sentences yield zero.
func Level(letters, words, sentences int) int {
	if words == 0 || sentences == 0 {
		return 0
	}
	raw := 4.71*float64(letters)/float64(words) + 0.5*float64(words)/float64(sentences) - 21.43
	level := int(math.Floor(raw + 0.5))
	if level < 0 {
		return 0
	}
	return level
}

func Classify(level, words int) Tier {
	switch {
	case words < MinWordsForDifficulty:
		return Normal
	case level >= VeryHardLevel:
		return VeryHard
	case level >= HardLevel:
		return Hard
	default:
		return Normal
	}
}

// Counts strips everything but letters, digits, periods and spaces, appends a
// period, and counts single-space separated words and the remaining
// non-space characters.
func Counts(sentence string) (letters, words int) {
	clean := nonCountable.ReplaceAllString(sentence, "") + "."
	parts := strings.Split(clean, " ")
	words = len(parts)
	for _, p := range parts {
		letters += len(p)
	}
	return letters, words
}
