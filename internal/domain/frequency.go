package domain

// WordFrequency is one row of frequency statistics for a unique word
type WordFrequency struct {
	Word       string
	Count      int
	Percentage float64
}

// PageSizes lists the allowed table page sizes
var PageSizes = []int{50, 100, 250, 500, 1000}

// DefaultPageSize is the page size a new table starts with
const DefaultPageSize = 50

// IsValidPageSize reports whether n is one of PageSizes
func IsValidPageSize(n int) bool {
	for _, size := range PageSizes {
		if size == n {
			return true
		}
	}
	return false
}
