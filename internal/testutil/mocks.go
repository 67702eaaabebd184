package testutil

import (
	"context"

	"freqdeck/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(ctx context.Context, userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(ctx context.Context, userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockDeckRepository is a mock for DeckRepository
type MockDeckRepository struct {
	mock.Mock
}

func (m *MockDeckRepository) CreateDeck(ctx context.Context, userID int64, id uuid.UUID, name string, words []string) (int, error) {
	args := m.Called(userID, id, name, words)
	return args.Int(0), args.Error(1)
}

func (m *MockDeckRepository) AddWords(ctx context.Context, deckID uuid.UUID, words []string) (int, error) {
	args := m.Called(deckID, words)
	return args.Int(0), args.Error(1)
}

func (m *MockDeckRepository) ListDecks(ctx context.Context, userID int64) ([]domain.Deck, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deck), args.Error(1)
}

func (m *MockDeckRepository) GetDeck(ctx context.Context, userID int64, deckID uuid.UUID) (*domain.Deck, error) {
	args := m.Called(userID, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckRepository) GetDeckWords(ctx context.Context, deckID uuid.UUID) ([]string, error) {
	args := m.Called(deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
