package testutil

import (
	"time"

	"freqdeck/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestDeck creates a test deck
func NewTestDeck(userID int64, name string, wordCount int) *domain.Deck {
	return &domain.Deck{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
		WordCount: wordCount,
	}
}

// NewTestFrequencies builds frequency rows with the given counts
func NewTestFrequencies(counts map[string]int) []domain.WordFrequency {
	total := 0
	for _, c := range counts {
		total += c
	}

	out := make([]domain.WordFrequency, 0, len(counts))
	for word, c := range counts {
		out = append(out, domain.WordFrequency{
			Word:       word,
			Count:      c,
			Percentage: float64(c) / float64(total) * 100,
		})
	}
	return out
}
