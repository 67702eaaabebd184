// Package counter turns raw text into per-word frequency rows for the table.
package counter

import (
	"regexp"
	"sort"
	"strings"

	"freqdeck/internal/domain"
)

var wordRegex = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// Count lowercases text, extracts letter runs and counts them.
// The result is ordered by count descending, then by word.
func Count(text string) []domain.WordFrequency {
	words := wordRegex.FindAllString(strings.ToLower(text), -1)
	if len(words) == 0 {
		return nil
	}

	frequencies := make(map[string]int)
	for _, word := range words {
		frequencies[word]++
	}

	total := float64(len(words))
	result := make([]domain.WordFrequency, 0, len(frequencies))
	for word, count := range frequencies {
		result = append(result, domain.WordFrequency{
			Word:       word,
			Count:      count,
			Percentage: float64(count) / total * 100,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Word < result[j].Word
	})

	return result
}
