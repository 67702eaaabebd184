package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck is a named flashcard collection of words
type Deck struct {
	ID        uuid.UUID
	UserID    int64
	Name      string
	CreatedAt time.Time
	WordCount int
}
