package wordlist

import (
	"testing"

	"freqdeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	list := Parse("# header\nThe\n\nof\n  and  \nthe\n")

	assert.Equal(t, []string{"the", "of", "and"}, list.Words())
	assert.Equal(t, 3, list.Len())

	tests := []struct {
		name     string
		word     string
		expected int
	}{
		{name: "first word", word: "the", expected: 1},
		{name: "case insensitive", word: "OF", expected: 2},
		{name: "trimmed entry", word: "and", expected: 3},
		{name: "absent word", word: "cat", expected: 0},
		{name: "comment is not a word", word: "# header", expected: 0},
		{name: "empty word", word: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, list.Rank(tt.word))
		})
	}
}

func TestRank_MatchesListPosition(t *testing.T) {
	for _, lang := range domain.Languages() {
		t.Run(string(lang), func(t *testing.T) {
			words := Words(lang)
			require.NotEmpty(t, words)
			for i, word := range words {
				assert.Equal(t, i+1, Rank(lang, word), "word %q", word)
			}
			assert.Equal(t, 0, Rank(lang, "zzxqv"))
		})
	}
}

func TestRank_KnownWords(t *testing.T) {
	assert.Equal(t, 1, Rank(domain.LanguageEnglish, "The"))
	assert.Equal(t, 1, Rank(domain.LanguageSpanish, "de"))
	assert.Equal(t, 1, Rank(domain.LanguageGerman, "der"))
	assert.Equal(t, 0, Rank(domain.LanguageEnglish, "cat"))
}

func TestRank_UnknownLanguage(t *testing.T) {
	assert.Nil(t, For("zz"))
	assert.Equal(t, 0, Rank("zz", "the"))
	assert.Nil(t, Words("zz"))
}

func TestFormatRank(t *testing.T) {
	assert.Equal(t, "-", FormatRank(0))
	assert.Equal(t, "1", FormatRank(1))
	assert.Equal(t, "250", FormatRank(250))
}
