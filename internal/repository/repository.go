package repository

import (
	"context"

	"freqdeck/internal/domain"

	"github.com/google/uuid"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(ctx context.Context, userID int64) (bool, error)
	AuthorizeUser(ctx context.Context, userID int64) error
	EnsureUserExists(ctx context.Context, userID int64) error
}

// DeckRepository defines deck data operations
type DeckRepository interface {
	CreateDeck(ctx context.Context, userID int64, id uuid.UUID, name string, words []string) (int, error)
	AddWords(ctx context.Context, deckID uuid.UUID, words []string) (int, error)
	ListDecks(ctx context.Context, userID int64) ([]domain.Deck, error)
	GetDeck(ctx context.Context, userID int64, deckID uuid.UUID) (*domain.Deck, error)
	GetDeckWords(ctx context.Context, deckID uuid.UUID) ([]string, error)
}
