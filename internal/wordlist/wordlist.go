// Package wordlist holds the static frequency-rank reference lists, one per
// supported language. Rank 1 is the most frequent word of the language.
package wordlist

import (
	"embed"
	"strconv"
	"strings"

	"freqdeck/internal/domain"
)

//go:embed data/*.txt
var dataFS embed.FS

// List is an ordered reference list with a precomputed rank index
type List struct {
	words []string
	ranks map[string]int
}

// Parse builds a List from newline separated words.
// Empty lines and lines starting with # are skipped and do not take a rank.
func Parse(data string) *List {
	l := &List{ranks: make(map[string]int)}
	for _, line := range strings.Split(data, "\n") {
		word := strings.ToLower(strings.TrimSpace(line))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if _, dup := l.ranks[word]; dup {
			continue
		}
		l.words = append(l.words, word)
		l.ranks[word] = len(l.words)
	}
	return l
}

// Rank returns the 1-based rank of word, or 0 if the list does not contain it
func (l *List) Rank(word string) int {
	if l == nil {
		return 0
	}
	return l.ranks[strings.ToLower(word)]
}

// Words returns the list in rank order
func (l *List) Words() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Len returns the number of ranked words
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

var lists = load()

func load() map[domain.Language]*List {
	out := make(map[domain.Language]*List)
	for _, lang := range domain.Languages() {
		data, err := dataFS.ReadFile("data/" + string(lang) + ".txt")
		if err != nil {
			panic("wordlist: missing embedded list for " + string(lang))
		}
		out[lang] = Parse(string(data))
	}
	return out
}

// For returns the reference list of lang, nil for unknown languages
func For(lang domain.Language) *List {
	return lists[lang]
}

// Rank looks word up in the reference list of lang
func Rank(lang domain.Language, word string) int {
	return For(lang).Rank(word)
}

// Words returns the reference list of lang in rank order
func Words(lang domain.Language) []string {
	return For(lang).Words()
}

// FormatRank renders a rank for display, unranked words show a dash
func FormatRank(rank int) string {
	if rank <= 0 {
		return "-"
	}
	return strconv.Itoa(rank)
}
