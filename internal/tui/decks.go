package tui

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const deckPattern = "deck-*.txt"

// DeckFiles stores decks as plain text files, one word per line
type DeckFiles struct {
	dir string
}

// NewDeckFiles stores decks under dir
func NewDeckFiles(dir string) *DeckFiles {
	return &DeckFiles{dir: dir}
}

// Create writes words to a new deck file and returns its path
func (d *DeckFiles) Create(words []string) (string, error) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create decks directory: %w", err)
	}

	path := filepath.Join(d.dir, "deck-"+uuid.NewString()+".txt")
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to write deck: %w", err)
	}
	return path, nil
}

// Append adds the words the latest deck does not have yet and returns its
// path and how many were added. Without any deck a new one is created.
func (d *DeckFiles) Append(words []string) (string, int, error) {
	path, err := d.Latest()
	if errors.Is(err, os.ErrNotExist) {
		path, err = d.Create(words)
		return path, len(words), err
	}
	if err != nil {
		return "", 0, err
	}

	existing, err := readWords(path)
	if err != nil {
		return "", 0, err
	}

	var fresh []string
	for _, word := range words {
		if _, ok := existing[word]; !ok {
			existing[word] = struct{}{}
			fresh = append(fresh, word)
		}
	}
	if len(fresh) == 0 {
		return path, 0, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open deck: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(fresh, "\n") + "\n"); err != nil {
		return "", 0, fmt.Errorf("failed to append to deck: %w", err)
	}
	return path, len(fresh), nil
}

// Latest returns the most recently written deck file
func (d *DeckFiles) Latest() (string, error) {
	paths, err := filepath.Glob(filepath.Join(d.dir, deckPattern))
	if err != nil {
		return "", err
	}

	var latest string
	var latestInfo os.FileInfo
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if latestInfo == nil || info.ModTime().After(latestInfo.ModTime()) {
			latest, latestInfo = path, info
		}
	}

	if latest == "" {
		return "", os.ErrNotExist
	}
	return latest, nil
}

func readWords(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck: %w", err)
	}
	defer f.Close()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	return words, nil
}
