package freqtable

import (
	"slices"

	"freqdeck/internal/domain"
	"freqdeck/internal/wordlist"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortBy returns the active sort column
func (t *Table) SortBy() domain.SortColumn {
	return t.sortBy
}

// SortOrder returns the active sort direction
func (t *Table) SortOrder() domain.SortOrder {
	return t.sortOrder
}

// ToggleSort handles a click on a column header. The current column flips
// direction, any other column becomes current with its default direction.
func (t *Table) ToggleSort(col domain.SortColumn) {
	if col == t.sortBy {
		t.sortOrder = t.sortOrder.Flip()
		return
	}
	t.sortBy = col
	t.sortOrder = col.DefaultOrder()
}

// SetSort sets column and direction directly
func (t *Table) SetSort(col domain.SortColumn, order domain.SortOrder) {
	t.sortBy = col
	t.sortOrder = order
}

// Sorted returns a new ordering of the full list for the current sort state.
// Ties keep their order from the input list.
func (t *Table) Sorted() []domain.WordFrequency {
	sorted := make([]domain.WordFrequency, len(t.freqs))
	copy(sorted, t.freqs)

	cmp := t.comparator()
	if t.sortOrder == domain.Desc {
		asc := cmp
		cmp = func(a, b domain.WordFrequency) int { return asc(b, a) }
	}
	slices.SortStableFunc(sorted, cmp)
	return sorted
}

func (t *Table) comparator() func(a, b domain.WordFrequency) int {
	switch t.sortBy {
	case domain.SortByWord:
		c := collate.New(language.Make(string(t.language)))
		return func(a, b domain.WordFrequency) int {
			return c.CompareString(a.Word, b.Word)
		}
	case domain.SortByFrequency:
		list := wordlist.For(t.language)
		return func(a, b domain.WordFrequency) int {
			return list.Rank(a.Word) - list.Rank(b.Word)
		}
	default:
		return func(a, b domain.WordFrequency) int {
			return a.Count - b.Count
		}
	}
}
