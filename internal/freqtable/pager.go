package freqtable

import (
	"fmt"

	"freqdeck/internal/domain"
	"freqdeck/internal/wordlist"
)

// WordsPerPage returns the page size
func (t *Table) WordsPerPage() int {
	return t.wordsPerPage
}

// SetWordsPerPage changes the page size and goes back to the first page
func (t *Table) SetWordsPerPage(n int) error {
	if !domain.IsValidPageSize(n) {
		return fmt.Errorf("invalid page size %d", n)
	}
	t.wordsPerPage = n
	t.currentPage = 1
	return nil
}

// TotalPages returns ceil(unique words / page size)
func (t *Table) TotalPages() int {
	return (len(t.freqs) + t.wordsPerPage - 1) / t.wordsPerPage
}

// CurrentPage returns the 1-based current page
func (t *Table) CurrentPage() int {
	return t.currentPage
}

// HasPrev reports whether there is a page before the current one
func (t *Table) HasPrev() bool {
	return t.currentPage > 1
}

// HasNext reports whether there is a page after the current one
func (t *Table) HasNext() bool {
	return t.currentPage < t.TotalPages()
}

// PrevPage moves one page back, staying on page 1 at the start
func (t *Table) PrevPage() {
	if t.HasPrev() {
		t.currentPage--
	}
}

// NextPage moves one page forward, staying on the last page at the end
func (t *Table) NextPage() {
	if t.HasNext() {
		t.currentPage++
	}
}

// SetPage jumps to page p clamped to the valid range
func (t *Table) SetPage(p int) {
	if last := t.TotalPages(); p > last {
		p = last
	}
	if p < 1 {
		p = 1
	}
	t.currentPage = p
}

// Page returns the visible rows of the current page
func (t *Table) Page() []Row {
	sorted := t.Sorted()

	start := (t.currentPage - 1) * t.wordsPerPage
	if start >= len(sorted) {
		return nil
	}
	end := start + t.wordsPerPage
	if end > len(sorted) {
		end = len(sorted)
	}

	list := wordlist.For(t.language)
	rows := make([]Row, 0, end-start)
	for i, f := range sorted[start:end] {
		rows = append(rows, Row{
			WordFrequency: f,
			Rank:          list.Rank(f.Word),
			Selected:      t.IsSelected(f.Word),
			Position:      start + i + 1,
		})
	}
	return rows
}
