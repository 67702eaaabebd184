package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayDate(t *testing.T) {
	now := time.Date(2024, 6, 20, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "today",
			date:     now.Add(-2 * time.Hour),
			expected: "Сегодня",
		},
		{
			name:     "yesterday",
			date:     now.AddDate(0, 0, -1),
			expected: "Вчера",
		},
		{
			name:     "specific date",
			date:     time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			expected: "15 июн 2024",
		},
		{
			name:     "previous year",
			date:     time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC),
			expected: "31 дек 2023",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayDate(tt.date, now))
		})
	}
}

func TestDeck_DisplayCreated(t *testing.T) {
	deck := Deck{CreatedAt: time.Now()}
	assert.Equal(t, "Сегодня", deck.DisplayCreated())
}
