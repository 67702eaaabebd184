package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepo_IsAuthorized(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedAuth  bool
		expectedError bool
	}{
		{
			name:         "authorized user",
			userID:       123,
			mockRows:     sqlmock.NewRows([]string{"authorized"}).AddRow(true),
			expectedAuth: true,
		},
		{
			name:         "unauthorized user",
			userID:       456,
			mockRows:     sqlmock.NewRows([]string{"authorized"}).AddRow(false),
			expectedAuth: false,
		},
		{
			name:         "user not exists",
			userID:       789,
			mockError:    sql.ErrNoRows,
			expectedAuth: false,
		},
		{
			name:          "database error",
			userID:        789,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			query := "SELECT authorized FROM users WHERE user_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			authorized, err := repo.IsAuthorized(context.Background(), tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAuth, authorized)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_AuthorizeUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	// Only userID is a parameter, TRUE is a SQL constant
	mock.ExpectExec("INSERT INTO users .* ON CONFLICT \\(user_id\\) DO UPDATE SET authorized = TRUE").
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.AuthorizeUser(context.Background(), 123)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_EnsureUserExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users .* ON CONFLICT \\(user_id\\) DO NOTHING").
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.EnsureUserExists(context.Background(), 123)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
