// Package examples finds usage examples of a word inside a text.
package examples

import (
	"crypto/sha256"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

var sentenceEnd = regexp.MustCompile(`[.!?\n]+`)

type cacheKey struct {
	text [sha256.Size]byte
	word string
}

// Finder looks up sentences containing a word and keeps recent results
type Finder struct {
	cache *lru.Cache[cacheKey, []string]
}

// NewFinder creates a finder caching up to size lookups
func NewFinder(size int) (*Finder, error) {
	cache, err := lru.New[cacheKey, []string](size)
	if err != nil {
		return nil, err
	}
	return &Finder{cache: cache}, nil
}

// Find returns up to limit sentences of text that contain word as a whole
// word, compared case-insensitively, in text order.
func (f *Finder) Find(word, text string, limit int) []string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || limit <= 0 {
		return nil
	}

	key := cacheKey{text: sha256.Sum256([]byte(text)), word: word}
	found, ok := f.cache.Get(key)
	if !ok {
		found = search(word, text)
		f.cache.Add(key, found)
	}

	if len(found) > limit {
		found = found[:limit]
	}
	out := make([]string, len(found))
	copy(out, found)
	return out
}

func search(word, text string) []string {
	// Letters on either side mean the match is part of a longer word
	re := regexp.MustCompile(`(?i)(^|[^\p{L}])` + regexp.QuoteMeta(word) + `($|[^\p{L}])`)

	var found []string
	for _, sentence := range sentenceEnd.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if re.MatchString(sentence) {
			found = append(found, sentence)
		}
	}
	return found
}
