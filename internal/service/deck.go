package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"freqdeck/internal/domain"
	"freqdeck/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxDeckNameLength = 64

var (
	ErrDeckNotFound    = errors.New("deck not found")
	ErrEmptySelection  = errors.New("no words selected")
	ErrInvalidDeckName = errors.New("invalid deck name")
)

// DeckService stores the words selected in frequency tables as decks
type DeckService struct {
	deckRepo repository.DeckRepository
	logger   *zap.Logger
}

// NewDeckService creates a new deck service
func NewDeckService(deckRepo repository.DeckRepository, logger *zap.Logger) *DeckService {
	return &DeckService{
		deckRepo: deckRepo,
		logger:   logger,
	}
}

// CreateDeck creates a deck named name holding words
func (s *DeckService) CreateDeck(ctx context.Context, userID int64, name string, words []string) (*domain.Deck, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxDeckNameLength {
		return nil, ErrInvalidDeckName
	}
	if len(words) == 0 {
		return nil, ErrEmptySelection
	}

	id := uuid.New()
	added, err := s.deckRepo.CreateDeck(ctx, userID, id, name, words)
	if err != nil {
		return nil, fmt.Errorf("failed to create deck: %w", err)
	}

	s.logger.Info("Deck created",
		zap.Int64("user_id", userID),
		zap.String("deck_id", id.String()),
		zap.Int("words", added),
	)

	return &domain.Deck{
		ID:        id,
		UserID:    userID,
		Name:      name,
		WordCount: added,
	}, nil
}

// AddToDeck appends words to one of the user's decks and returns how many
// were new to it
func (s *DeckService) AddToDeck(ctx context.Context, userID int64, deckID uuid.UUID, words []string) (int, error) {
	if len(words) == 0 {
		return 0, ErrEmptySelection
	}

	deck, err := s.deckRepo.GetDeck(ctx, userID, deckID)
	if err != nil {
		return 0, fmt.Errorf("failed to load deck: %w", err)
	}
	if deck == nil {
		return 0, ErrDeckNotFound
	}

	added, err := s.deckRepo.AddWords(ctx, deckID, words)
	if err != nil {
		return 0, fmt.Errorf("failed to add words to deck: %w", err)
	}

	s.logger.Info("Words added to deck",
		zap.Int64("user_id", userID),
		zap.String("deck_id", deckID.String()),
		zap.Int("requested", len(words)),
		zap.Int("added", added),
	)

	return added, nil
}

// ListDecks returns the user's decks, newest first
func (s *DeckService) ListDecks(ctx context.Context, userID int64) ([]domain.Deck, error) {
	decks, err := s.deckRepo.ListDecks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	return decks, nil
}

// DeckWords returns a deck with its words
func (s *DeckService) DeckWords(ctx context.Context, userID int64, deckID uuid.UUID) (*domain.Deck, []string, error) {
	deck, err := s.deckRepo.GetDeck(ctx, userID, deckID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load deck: %w", err)
	}
	if deck == nil {
		return nil, nil, ErrDeckNotFound
	}

	words, err := s.deckRepo.GetDeckWords(ctx, deckID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load deck words: %w", err)
	}
	return deck, words, nil
}
