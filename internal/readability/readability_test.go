package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelZeroDenominators(t *testing.T) {
	assert.Equal(t, 0, Level(100, 0, 1))
	assert.Equal(t, 0, Level(100, 10, 0))
}

func TestLevelFloorsAtZero(t *testing.T) {
	assert.Equal(t, 0, Level(3, 3, 1))
}

func TestLevelFormula(t *testing.T) {
	// 4.71*5 + 0.5*20 - 21.43 = 12.12
	assert.Equal(t, 12, Level(100, 20, 1))
	// 4.71*6 + 0.5*20 - 21.43 = 16.83
	assert.Equal(t, 17, Level(120, 20, 1))
}

func TestLevelMonotonicInLetters(t *testing.T) {
	prev := Level(40, 20, 1)
	for letters := 41; letters < 200; letters++ {
		cur := Level(letters, 20, 1)
		assert.GreaterOrEqual(t, cur, prev, "letters=%d", letters)
		prev = cur
	}
}

func TestLevelMonotonicInWordsPerSentence(t *testing.T) {
	prev := Level(80, 16, 4)
	for sentences := 3; sentences >= 1; sentences-- {
		cur := Level(80, 16, sentences)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		level int
		words int
		want  Tier
	}{
		{"short sentence never hard", 30, 13, Normal},
		{"easy", 9, 20, Normal},
		{"hard lower bound", 10, 14, Hard},
		{"hard upper bound", 13, 20, Hard},
		{"very hard", 14, 20, VeryHard},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.level, tc.words))
		})
	}
}

func TestCounts(t *testing.T) {
	letters, words := Counts("Hi, there friend.")
	// "Hi there friend.." -> ["Hi", "there", "friend.."]
	assert.Equal(t, 3, words)
	assert.Equal(t, 15, letters)
}
