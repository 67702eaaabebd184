package postgres

import (
	"context"
	"database/sql"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized checks if user passed the password gate
func (r *UserRepo) IsAuthorized(ctx context.Context, userID int64) (bool, error) {
	var authorized bool
	err := r.db.QueryRowContext(ctx,
		`SELECT authorized FROM users WHERE user_id = $1`,
		userID,
	).Scan(&authorized)

	if err == sql.ErrNoRows {
		// Unknown users are not authorized
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return authorized, nil
}

// AuthorizeUser upserts the user as authorized
func (r *UserRepo) AuthorizeUser(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}

// EnsureUserExists creates the user row decks reference
func (r *UserRepo) EnsureUserExists(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}
