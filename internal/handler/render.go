package handler

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"freqdeck/internal/domain"
	"freqdeck/internal/freqtable"
	"freqdeck/internal/wordlist"

	tele "gopkg.in/telebot.v3"
)

// Telegram allows 4096 characters per message, leave room for the header
const maxTableRunes = 3500

var columnTitles = map[domain.SortColumn]string{
	domain.SortByCount:     "Кол-во",
	domain.SortByWord:      "Слово",
	domain.SortByFrequency: "Ранг",
}

var sortColumns = []domain.SortColumn{domain.SortByCount, domain.SortByWord, domain.SortByFrequency}

// renderTable builds the table message and its keyboard
func renderTable(t *freqtable.Table) (string, *tele.ReplyMarkup) {
	return renderTableText(t), tableMarkup(t)
}

func renderTableText(t *freqtable.Table) string {
	stats := t.Stats()

	var b strings.Builder
	b.WriteString("📊 Частотность слов\n")
	fmt.Fprintf(&b, "Всего слов: %d · Уникальных: %d\n", stats.TotalWords, stats.UniqueWords)
	fmt.Fprintf(&b, "Язык: %s · Сортировка: %s %s\n",
		t.Language().DisplayName(), columnTitles[t.SortBy()], orderArrow(t.SortOrder()))
	fmt.Fprintf(&b, "Страница %d/%d · По %d · Выбрано: %d\n\n",
		t.CurrentPage(), max(t.TotalPages(), 1), t.WordsPerPage(), t.SelectionCount())

	rows := t.Page()
	if len(rows) == 0 {
		b.WriteString("Слов нет")
		return b.String()
	}

	used := utf8.RuneCountInString(b.String())
	for i, row := range rows {
		line := formatRow(row)
		if used+utf8.RuneCountInString(line) > maxTableRunes {
			fmt.Fprintf(&b, "…и ещё %d строк на этой странице", len(rows)-i)
			break
		}
		b.WriteString(line)
		used += utf8.RuneCountInString(line)
	}

	return b.String()
}

func formatRow(row freqtable.Row) string {
	mark := "☐"
	if row.Selected {
		mark = "☑"
	}
	return fmt.Sprintf("%d. %s %s — %d (%.2f%%) · %s\n",
		row.Position, mark, row.Word, row.Count, row.Percentage, wordlist.FormatRank(row.Rank))
}

func orderArrow(o domain.SortOrder) string {
	if o == domain.Asc {
		return "▲"
	}
	return "▼"
}

func tableMarkup(t *freqtable.Table) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	// Column headers
	headers := tele.Row{}
	for _, col := range sortColumns {
		title := columnTitles[col]
		if col == t.SortBy() {
			title += " " + orderArrow(t.SortOrder())
		}
		headers = append(headers, markup.Data(title, "sort_"+string(col)))
	}
	rows = append(rows, headers)

	// Boundary buttons are left out rather than disabled
	if t.HasPrev() || t.HasNext() {
		navRow := tele.Row{}
		if t.HasPrev() {
			navRow = append(navRow, markup.Data("⬅️", "page_prev"))
		}
		if t.HasNext() {
			navRow = append(navRow, markup.Data("➡️", "page_next"))
		}
		rows = append(rows, navRow)
	}

	sizes := tele.Row{}
	for _, size := range domain.PageSizes {
		title := fmt.Sprintf("%d", size)
		if size == t.WordsPerPage() {
			title = "• " + title
		}
		sizes = append(sizes, markup.Data(title, fmt.Sprintf("size_%d", size)))
	}
	rows = append(rows, sizes)

	langs := tele.Row{}
	for _, lang := range domain.Languages() {
		title := strings.ToUpper(string(lang))
		if lang == t.Language() {
			title = "• " + title
		}
		langs = append(langs, markup.Data(title, "lang_"+string(lang)))
	}
	rows = append(rows, langs)

	if n := t.SelectionCount(); n > 0 {
		rows = append(rows, markup.Row(
			markup.Data(fmt.Sprintf("🆕 Новая колода (%d)", n), "deck_new"),
			markup.Data("➕ В колоду", "deck_add"),
		))
	}

	rows = append(rows, markup.Row(btnMainMenu))

	markup.Inline(rows...)
	return markup
}

// renderExamples builds the example view for the active word
func renderExamples(word string, found []string) (string, *tele.ReplyMarkup) {
	var b strings.Builder
	fmt.Fprintf(&b, "🔎 Примеры: %s\n\n", word)
	if len(found) == 0 {
		b.WriteString("Примеров не нашлось")
	}
	for i, sentence := range found {
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, sentence)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data("◀️ К таблице", "ex_close")))
	return strings.TrimRight(b.String(), "\n"), markup
}

// renderDeckPicker lists decks the pending words can go to
func renderDeckPicker(decks []domain.Deck, pending int) (string, *tele.ReplyMarkup) {
	text := fmt.Sprintf("📚 Куда добавить слова (%d)?", pending)

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, deck := range decks {
		btnText := fmt.Sprintf("%s (%d)", deck.Name, deck.WordCount)
		rows = append(rows, markup.Row(markup.Data(btnText, "deckpick_"+deck.ID.String())))
	}
	rows = append(rows, markup.Row(btnCancel))
	markup.Inline(rows...)
	return text, markup
}

// renderDeckList shows the user's decks
func renderDeckList(decks []domain.Deck) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}
	if len(decks) == 0 {
		markup.Inline(markup.Row(btnMainMenu))
		return "📚 У тебя пока нет колод.\n\nОтправь текст, выбери слова и создай колоду.", markup
	}

	rows := []tele.Row{}
	for _, deck := range decks {
		btnText := fmt.Sprintf("%s · %d · %s", deck.Name, deck.WordCount, deck.DisplayCreated())
		rows = append(rows, markup.Row(markup.Data(btnText, "deckview_"+deck.ID.String())))
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return "📚 Твои колоды:", markup
}

// renderDeck shows the words of one deck
func renderDeck(deck *domain.Deck, words []string) (string, *tele.ReplyMarkup) {
	var b strings.Builder
	fmt.Fprintf(&b, "📚 %s (%d)\n\n", deck.Name, len(words))
	for i, word := range words {
		line := fmt.Sprintf("%d. %s\n", i+1, word)
		if utf8.RuneCountInString(b.String())+utf8.RuneCountInString(line) > maxTableRunes {
			fmt.Fprintf(&b, "…и ещё %d", len(words)-i)
			break
		}
		b.WriteString(line)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnDecks, btnMainMenu))
	return strings.TrimRight(b.String(), "\n"), markup
}
