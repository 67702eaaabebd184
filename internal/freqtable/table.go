// Package freqtable implements the interactive word-frequency table: sorting,
// paging, row selection for decks and the active word of the example view.
//
// A Table holds only explicit state. Every derived view (sorted rows, the
// visible page) is recomputed from that state on request.
package freqtable

import (
	"regexp"

	"freqdeck/internal/domain"
)

// Callbacks receive the selection when a deck action fires
type Callbacks struct {
	OnCreateNewDeck     func(words []string)
	OnAddToExistingDeck func(words []string)
}

// Stats summarizes the source text
type Stats struct {
	TotalWords  int
	UniqueWords int
}

// Row is a visible table row
type Row struct {
	domain.WordFrequency
	Rank     int
	Selected bool
	Position int // 1-based position in the sorted list
}

// Table is the state of one frequency table. It is not safe for concurrent use.
type Table struct {
	freqs []domain.WordFrequency
	text  string
	known map[string]struct{}

	callbacks Callbacks

	language     domain.Language
	sortBy       domain.SortColumn
	sortOrder    domain.SortOrder
	currentPage  int
	wordsPerPage int

	selected map[string]struct{}
	order    []string

	activeWord string
}

// New creates a table over freqs, sorted by count descending on page 1
func New(freqs []domain.WordFrequency, text string, callbacks Callbacks) *Table {
	t := &Table{
		callbacks:    callbacks,
		language:     domain.LanguageEnglish,
		sortBy:       domain.SortByCount,
		sortOrder:    domain.Desc,
		wordsPerPage: domain.DefaultPageSize,
	}
	t.SetFrequencies(freqs, text)
	return t
}

// SetFrequencies replaces the data. Selection and the active word are cleared
// and the table returns to page 1; sort and language are kept.
func (t *Table) SetFrequencies(freqs []domain.WordFrequency, text string) {
	t.freqs = freqs
	t.text = text
	t.known = make(map[string]struct{}, len(freqs))
	for _, f := range freqs {
		t.known[f.Word] = struct{}{}
	}
	t.currentPage = 1
	t.clearSelection()
	t.activeWord = ""
}

// Text returns the source text
func (t *Table) Text() string {
	return t.text
}

var whitespace = regexp.MustCompile(`\s+`)

// Stats counts whitespace separated tokens of the text and unique words.
// Empty text counts as one token, like a plain split of an empty string.
func (t *Table) Stats() Stats {
	return Stats{
		TotalWords:  len(whitespace.Split(t.text, -1)),
		UniqueWords: len(t.freqs),
	}
}

// Language returns the active reference language
func (t *Table) Language() domain.Language {
	return t.language
}

// SetLanguage switches the reference list used for ranks
func (t *Table) SetLanguage(lang domain.Language) {
	t.language = lang
}
