package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"freqdeck/internal/domain"

	"github.com/google/uuid"
)

// DeckRepo implements repository.DeckRepository
type DeckRepo struct {
	db *sql.DB
}

// NewDeckRepo creates a new deck repository
func NewDeckRepo(db *sql.DB) *DeckRepo {
	return &DeckRepo{db: db}
}

// CreateDeck stores a deck together with its words in one transaction
// and returns how many distinct words it holds.
func (r *DeckRepo) CreateDeck(ctx context.Context, userID int64, id uuid.UUID, name string, words []string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO decks (id, user_id, name)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.ExecContext(ctx, query, id, userID, name); err != nil {
		return 0, fmt.Errorf("failed to insert deck: %w", err)
	}

	added, err := insertWords(ctx, tx, id, 0, words)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return added, nil
}

// AddWords appends words to a deck in one transaction.
// Words already in the deck are skipped; the number of new words is returned.
func (r *DeckRepo) AddWords(ctx context.Context, deckID uuid.UUID, words []string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var position int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), 0) FROM deck_words WHERE deck_id = $1`,
		deckID,
	).Scan(&position)
	if err != nil {
		return 0, fmt.Errorf("failed to read deck position: %w", err)
	}

	added, err := insertWords(ctx, tx, deckID, position, words)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return added, nil
}

// insertWords adds words after position, skipping those the deck has
func insertWords(ctx context.Context, tx *sql.Tx, deckID uuid.UUID, position int, words []string) (int, error) {
	query := `
		INSERT INTO deck_words (deck_id, word, position)
		VALUES ($1, $2, $3)
		ON CONFLICT (deck_id, word) DO NOTHING
	`

	added := 0
	for _, word := range words {
		res, err := tx.ExecContext(ctx, query, deckID, word, position+1)
		if err != nil {
			return 0, fmt.Errorf("failed to add word %q: %w", word, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		if n > 0 {
			added++
			position++
		}
	}
	return added, nil
}

// ListDecks returns the user's decks, newest first, with word counts
func (r *DeckRepo) ListDecks(ctx context.Context, userID int64) ([]domain.Deck, error) {
	query := `
		SELECT d.id, d.user_id, d.name, d.created_at, COUNT(w.word)
		FROM decks d
		LEFT JOIN deck_words w ON w.deck_id = d.id
		WHERE d.user_id = $1
		GROUP BY d.id, d.user_id, d.name, d.created_at
		ORDER BY d.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decks []domain.Deck
	for rows.Next() {
		var d domain.Deck
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.CreatedAt, &d.WordCount); err != nil {
			return nil, err
		}
		decks = append(decks, d)
	}

	return decks, rows.Err()
}

// GetDeck returns a deck owned by the user, nil if there is none
func (r *DeckRepo) GetDeck(ctx context.Context, userID int64, deckID uuid.UUID) (*domain.Deck, error) {
	query := `
		SELECT d.id, d.user_id, d.name, d.created_at, COUNT(w.word)
		FROM decks d
		LEFT JOIN deck_words w ON w.deck_id = d.id
		WHERE d.user_id = $1 AND d.id = $2
		GROUP BY d.id, d.user_id, d.name, d.created_at
	`

	var d domain.Deck
	err := r.db.QueryRowContext(ctx, query, userID, deckID).Scan(
		&d.ID, &d.UserID, &d.Name, &d.CreatedAt, &d.WordCount,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// GetDeckWords returns deck words in the order they were added
func (r *DeckRepo) GetDeckWords(ctx context.Context, deckID uuid.UUID) ([]string, error) {
	query := `
		SELECT word
		FROM deck_words
		WHERE deck_id = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}
