package domain

import "time"

var monthNames = []string{
	"", "янв", "фев", "мар", "апр", "мая", "июн",
	"июл", "авг", "сен", "окт", "ноя", "дек",
}

// DisplayDate returns user-friendly date string relative to now
func DisplayDate(date, now time.Time) string {
	// Check if today
	if date.Year() == now.Year() && date.Month() == now.Month() && date.Day() == now.Day() {
		return "Сегодня"
	}

	// Check if yesterday
	yesterday := now.AddDate(0, 0, -1)
	if date.Year() == yesterday.Year() && date.Month() == yesterday.Month() && date.Day() == yesterday.Day() {
		return "Вчера"
	}

	return date.Format("2 ") + monthNames[date.Month()] + date.Format(" 2006")
}

// DisplayCreated returns the deck creation date for lists
func (d Deck) DisplayCreated() string {
	return DisplayDate(d.CreatedAt, time.Now())
}
