package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readDeck(t *testing.T, path string) []string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Fields(string(content))
}

func TestDeckFiles_Create(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "decks")
	decks := NewDeckFiles(dir)

	path, err := decks.Create([]string{"the", "cat"})

	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "deck-"))
	assert.Equal(t, ".txt", filepath.Ext(path))
	assert.Equal(t, []string{"the", "cat"}, readDeck(t, path))
}

func TestDeckFiles_AppendSkipsKnownWords(t *testing.T) {
	decks := NewDeckFiles(t.TempDir())
	path, err := decks.Create([]string{"the", "cat"})
	require.NoError(t, err)

	got, added, err := decks.Append([]string{"cat", "sat"})

	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"the", "cat", "sat"}, readDeck(t, path))

	_, added, err = decks.Append([]string{"the"})
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestDeckFiles_AppendWithoutDecks(t *testing.T) {
	decks := NewDeckFiles(t.TempDir())

	path, added, err := decks.Append([]string{"sat"})

	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"sat"}, readDeck(t, path))
}

func TestDeckFiles_Latest(t *testing.T) {
	dir := t.TempDir()
	decks := NewDeckFiles(dir)

	_, err := decks.Latest()
	assert.ErrorIs(t, err, os.ErrNotExist)

	older, err := decks.Create([]string{"a"})
	require.NoError(t, err)
	newer, err := decks.Create([]string{"b"})
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, past, past))

	// Other files in the directory are not decks
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	latest, err := decks.Latest()
	require.NoError(t, err)
	assert.Equal(t, newer, latest)
}
