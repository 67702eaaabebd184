package handler

import (
	"errors"
	"testing"

	"freqdeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandleText_WrongPassword(t *testing.T) {
	env := newTestEnv()
	env.users.On("EnsureUserExists", int64(1)).Return(nil)
	env.users.On("IsAuthorized", int64(1)).Return(false, nil)

	c := newTextContext(1, "guess")
	err := env.handler.handleText(c)

	require.NoError(t, err)
	assert.Equal(t, []interface{}{"Неверный пароль"}, c.sent)
	env.users.AssertNotCalled(t, "AuthorizeUser", mock.Anything)
}

func TestHandleText_CorrectPassword(t *testing.T) {
	env := newTestEnv()
	env.users.On("EnsureUserExists", int64(1)).Return(nil)
	env.users.On("IsAuthorized", int64(1)).Return(false, nil)
	env.users.On("AuthorizeUser", int64(1)).Return(nil)

	c := newTextContext(1, "secret")
	err := env.handler.handleText(c)

	require.NoError(t, err)
	require.Len(t, c.sent, 1)
	assert.Contains(t, c.sent[0], "Доступ разрешён")
	env.users.AssertExpectations(t)
}

func TestHandleText_AuthorizationError(t *testing.T) {
	env := newTestEnv()
	env.users.On("EnsureUserExists", int64(1)).Return(nil)
	env.users.On("IsAuthorized", int64(1)).Return(false, errors.New("db down"))

	c := newTextContext(1, "hello")
	err := env.handler.handleText(c)

	require.NoError(t, err)
	assert.Equal(t, []interface{}{msgError}, c.sent)
}

func TestHandleText_IgnoresCommands(t *testing.T) {
	env := newTestEnv()

	c := newTextContext(1, "/unknown")
	err := env.handler.handleText(c)

	require.NoError(t, err)
	assert.Empty(t, c.sent)
	env.users.AssertNotCalled(t, "EnsureUserExists", mock.Anything)
}

func TestHandleText_NoWords(t *testing.T) {
	env := newTestEnv()
	env.users.On("EnsureUserExists", int64(1)).Return(nil)
	env.users.On("IsAuthorized", int64(1)).Return(true, nil)

	c := newTextContext(1, "123 456 !!!")
	err := env.handler.handleText(c)

	require.NoError(t, err)
	assert.Equal(t, []interface{}{msgNoWords}, c.sent)
	assert.Equal(t, 0, env.sessions.Count())
}

func TestHandleText_CreateDeck(t *testing.T) {
	env := newTestEnv()
	env.users.On("EnsureUserExists", int64(1)).Return(nil)
	env.users.On("IsAuthorized", int64(1)).Return(true, nil)

	pending := []string{"the", "cat"}
	env.handler.SetState(1, &domain.StateData{State: domain.StateWaitingDeckName, PendingWords: pending})
	env.decks.On("CreateDeck", int64(1), mock.Anything, "Animals", pending).Return(2, nil)

	c := newTextContext(1, "  Animals ")
	err := env.handler.handleText(c)

	require.NoError(t, err)
	require.Len(t, c.sent, 1)
	assert.Equal(t, "✅ Колода «Animals» создана, слов: 2", c.sent[0])
	assert.Equal(t, domain.StateIdle, env.handler.GetState(1).State)
	env.decks.AssertExpectations(t)
}

func TestHandleText_CreateDeckRepositoryError(t *testing.T) {
	env := newTestEnv()
	env.users.On("EnsureUserExists", int64(1)).Return(nil)
	env.users.On("IsAuthorized", int64(1)).Return(true, nil)

	pending := []string{"the"}
	env.handler.SetState(1, &domain.StateData{State: domain.StateWaitingDeckName, PendingWords: pending})
	env.decks.On("CreateDeck", int64(1), mock.Anything, "Animals", pending).Return(0, errors.New("db down"))

	c := newTextContext(1, "Animals")
	err := env.handler.handleText(c)

	require.NoError(t, err)
	require.Len(t, c.sent, 1)
	assert.Contains(t, c.sent[0], "Не удалось создать колоду")
	// Words stay pending so the user can retry
	state := env.handler.GetState(1)
	assert.Equal(t, domain.StateWaitingDeckName, state.State)
	assert.Equal(t, pending, state.PendingWords)
}

func TestHandleText_DeckNameTooLong(t *testing.T) {
	env := newTestEnv()
	env.users.On("EnsureUserExists", int64(1)).Return(nil)
	env.users.On("IsAuthorized", int64(1)).Return(true, nil)
	env.handler.SetState(1, &domain.StateData{State: domain.StateWaitingDeckName, PendingWords: []string{"the"}})

	long := make([]rune, 65)
	for i := range long {
		long[i] = 'я'
	}

	c := newTextContext(1, string(long))
	err := env.handler.handleText(c)

	require.NoError(t, err)
	assert.Equal(t, []interface{}{"Название должно быть от 1 до 64 символов"}, c.sent)
	env.decks.AssertNotCalled(t, "CreateDeck", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleText_ChoosingDeckReminder(t *testing.T) {
	env := newTestEnv()
	env.users.On("EnsureUserExists", int64(1)).Return(nil)
	env.users.On("IsAuthorized", int64(1)).Return(true, nil)
	env.handler.SetState(1, &domain.StateData{State: domain.StateChoosingDeck, PendingWords: []string{"the"}})

	c := newTextContext(1, "some text")
	err := env.handler.handleText(c)

	require.NoError(t, err)
	assert.Equal(t, []interface{}{msgPickingDeck}, c.sent)
}

func TestResolveWords(t *testing.T) {
	sorted := []domain.WordFrequency{
		{Word: "the", Count: 4},
		{Word: "cat", Count: 3},
		{Word: "sat", Count: 2},
		{Word: "mat", Count: 1},
	}

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "single numbers",
			args:     []string{"1", "3"},
			expected: []string{"the", "sat"},
		},
		{
			name:     "range",
			args:     []string{"2-4"},
			expected: []string{"cat", "sat", "mat"},
		},
		{
			name:     "comma list",
			args:     []string{"4,1"},
			expected: []string{"mat", "the"},
		},
		{
			name:     "words are matched case-insensitively",
			args:     []string{"Cat", "dog"},
			expected: []string{"cat"},
		},
		{
			name:     "duplicates collapse",
			args:     []string{"1", "the", "1-2"},
			expected: []string{"the", "cat"},
		},
		{
			name:     "out of range is ignored",
			args:     []string{"0", "9", "3-10"},
			expected: []string{"sat", "mat"},
		},
		{
			name:     "nothing matches",
			args:     []string{"dog", ","},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveWords(tt.args, sorted))
		})
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		token    string
		from, to int
		ok       bool
	}{
		{token: "5", from: 5, to: 5, ok: true},
		{token: "2-7", from: 2, to: 7, ok: true},
		{token: "7-2", ok: false},
		{token: "a-3", ok: false},
		{token: "3-", ok: false},
		{token: "cat", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			from, to, ok := parseRange(tt.token)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.from, from)
				assert.Equal(t, tt.to, to)
			}
		})
	}
}
