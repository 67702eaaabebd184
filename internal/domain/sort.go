package domain

import "fmt"

// SortColumn is a table column the rows can be ordered by
type SortColumn string

const (
	SortByCount     SortColumn = "count"
	SortByWord      SortColumn = "word"
	SortByFrequency SortColumn = "frequency"
)

// SortOrder is the direction of a sort
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// ParseSortColumn converts a column key into a SortColumn
func ParseSortColumn(s string) (SortColumn, error) {
	switch col := SortColumn(s); col {
	case SortByCount, SortByWord, SortByFrequency:
		return col, nil
	}
	return "", fmt.Errorf("unknown sort column %q", s)
}

// DefaultOrder returns the direction a column gets when first selected.
// Words read naturally A to Z, numeric columns start from the top.
func (c SortColumn) DefaultOrder() SortOrder {
	if c == SortByWord {
		return Asc
	}
	return Desc
}

// Flip returns the opposite direction
func (o SortOrder) Flip() SortOrder {
	if o == Asc {
		return Desc
	}
	return Asc
}
