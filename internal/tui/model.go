// Package tui shows a frequency table in the terminal.
package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"freqdeck/internal/domain"
	"freqdeck/internal/examples"
	"freqdeck/internal/freqtable"
	"freqdeck/internal/wordlist"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Options configure a Model
type Options struct {
	Language     domain.Language
	PageSize     int
	ExampleLimit int
}

// Model is the bubbletea model of one frequency table
type Model struct {
	table  *freqtable.Table
	grid   table.Model
	help   help.Model
	keys   keyMap
	finder *examples.Finder
	decks  *DeckFiles
	logger *zap.Logger

	exampleLimit int
	examples     []string
	status       string
	failed       bool

	width  int
	height int
}

// New creates a model over freqs counted from text
func New(freqs []domain.WordFrequency, text string, finder *examples.Finder, decks *DeckFiles, opts Options, logger *zap.Logger) *Model {
	m := &Model{
		help:         help.New(),
		keys:         defaultKeyMap(),
		finder:       finder,
		decks:        decks,
		logger:       logger,
		exampleLimit: opts.ExampleLimit,
	}

	m.table = freqtable.New(freqs, text, freqtable.Callbacks{
		OnCreateNewDeck:     m.createDeck,
		OnAddToExistingDeck: m.addToDeck,
	})
	if opts.Language != "" {
		m.table.SetLanguage(opts.Language)
	}
	if domain.IsValidPageSize(opts.PageSize) {
		_ = m.table.SetWordsPerPage(opts.PageSize)
	}

	m.grid = table.New(
		table.WithFocused(true),
		table.WithHeight(20),
		table.WithStyles(tableStyles()),
	)
	m.refresh(true)
	return m
}

// Table returns the underlying frequency table
func (m *Model) Table() *freqtable.Table {
	return m.table
}

// Status returns the last status line
func (m *Model) Status() string {
	return m.status
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.grid.SetHeight(max(msg.Height-9, 3))
		m.refresh(false)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		// The example view only closes
		if _, open := m.table.ActiveWord(); open {
			if key.Matches(msg, m.keys.Back) {
				m.table.CloseWord()
				m.examples = nil
			}
			return m, nil
		}

		reset := true
		switch {
		case key.Matches(msg, m.keys.SortCount):
			m.table.ToggleSort(domain.SortByCount)
		case key.Matches(msg, m.keys.SortWord):
			m.table.ToggleSort(domain.SortByWord)
		case key.Matches(msg, m.keys.SortFreq):
			m.table.ToggleSort(domain.SortByFrequency)
		case key.Matches(msg, m.keys.PrevPage):
			m.table.PrevPage()
		case key.Matches(msg, m.keys.NextPage):
			m.table.NextPage()
		case key.Matches(msg, m.keys.Grow):
			m.cyclePageSize(1)
		case key.Matches(msg, m.keys.Shrink):
			m.cyclePageSize(-1)
		case key.Matches(msg, m.keys.Language):
			m.table.SetLanguage(m.table.Language().Next())
			reset = false
		case key.Matches(msg, m.keys.Toggle):
			if row, ok := m.cursorRow(); ok {
				m.table.ToggleRow(row.Word)
			}
			reset = false
		case key.Matches(msg, m.keys.Examples):
			if row, ok := m.cursorRow(); ok {
				m.table.OpenWord(row.Word)
				m.examples = m.finder.Find(row.Word, m.table.Text(), m.exampleLimit)
			}
			return m, nil
		case key.Matches(msg, m.keys.NewDeck):
			if !m.table.CreateNewDeck() {
				m.setStatus("Select words first (space)", true)
			}
			reset = false
		case key.Matches(msg, m.keys.AddToDeck):
			if !m.table.AddToExistingDeck() {
				m.setStatus("Select words first (space)", true)
			}
			reset = false
		default:
			var cmd tea.Cmd
			m.grid, cmd = m.grid.Update(msg)
			return m, cmd
		}

		m.refresh(reset)
		return m, nil
	}

	return m, nil
}

func (m *Model) View() string {
	if word, open := m.table.ActiveWord(); open {
		return m.examplesView(word)
	}

	stats := m.table.Stats()
	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Word frequency"),
		infoStyle.Render(fmt.Sprintf("%d words · %d unique · %s · page %d/%d · %d per page · %d selected",
			stats.TotalWords, stats.UniqueWords, m.table.Language().DisplayName(),
			m.table.CurrentPage(), max(m.table.TotalPages(), 1), m.table.WordsPerPage(),
			m.table.SelectionCount())),
	)

	status := ""
	if m.status != "" {
		style := statusStyle
		if m.failed {
			style = errorStyle
		}
		status = style.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		panelStyle.Render(m.grid.View()),
		status,
		m.help.View(m.keys),
	)
}

func (m *Model) examplesView(word string) string {
	var b strings.Builder
	if len(m.examples) == 0 {
		b.WriteString(infoStyle.Italic(true).Render("No examples found"))
	}
	for i, sentence := range m.examples {
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, sentence)
	}

	width := 80
	if m.width > 4 {
		width = m.width - 4
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Examples: "+word),
		panelStyle.Width(width).Render(strings.TrimRight(b.String(), "\n")),
		m.help.ShortHelpView([]key.Binding{m.keys.Back, m.keys.Quit}),
	)
}

// refresh rebuilds the visible rows from the table
func (m *Model) refresh(resetCursor bool) {
	cursor := m.grid.Cursor()

	m.grid.SetColumns(m.columns())

	page := m.table.Page()
	rows := make([]table.Row, 0, len(page))
	for _, row := range page {
		mark := " "
		if row.Selected {
			mark = "✓"
		}
		rows = append(rows, table.Row{
			mark,
			strconv.Itoa(row.Position),
			row.Word,
			strconv.Itoa(row.Count),
			fmt.Sprintf("%.2f", row.Percentage),
			wordlist.FormatRank(row.Rank),
		})
	}
	m.grid.SetRows(rows)

	if resetCursor {
		cursor = 0
	}
	if len(rows) > 0 {
		m.grid.SetCursor(min(cursor, len(rows)-1))
	}
}

func (m *Model) columns() []table.Column {
	title := func(col domain.SortColumn, name string) string {
		if m.table.SortBy() != col {
			return name
		}
		if m.table.SortOrder() == domain.Asc {
			return name + " ▲"
		}
		return name + " ▼"
	}

	wordWidth := 24
	if m.width > 60 {
		wordWidth = m.width - 50
	}

	return []table.Column{
		{Title: "", Width: 1},
		{Title: "#", Width: 6},
		{Title: title(domain.SortByWord, "Word"), Width: wordWidth},
		{Title: title(domain.SortByCount, "Count"), Width: 9},
		{Title: "%", Width: 7},
		{Title: title(domain.SortByFrequency, "Rank"), Width: 8},
	}
}

// cursorRow returns the table row under the cursor
func (m *Model) cursorRow() (freqtable.Row, bool) {
	page := m.table.Page()
	i := m.grid.Cursor()
	if i < 0 || i >= len(page) {
		return freqtable.Row{}, false
	}
	return page[i], true
}

// cyclePageSize moves through the allowed page sizes, wrapping around
func (m *Model) cyclePageSize(step int) {
	sizes := domain.PageSizes
	current := 0
	for i, size := range sizes {
		if size == m.table.WordsPerPage() {
			current = i
		}
	}
	next := (current + step + len(sizes)) % len(sizes)
	_ = m.table.SetWordsPerPage(sizes[next])
}

func (m *Model) createDeck(words []string) {
	path, err := m.decks.Create(words)
	if err != nil {
		m.logger.Error("Failed to create deck", zap.Error(err))
		m.setStatus("Could not create deck: "+err.Error(), true)
		return
	}
	m.logger.Info("Deck created", zap.String("path", path), zap.Int("words", len(words)))
	m.setStatus(fmt.Sprintf("Created %s with %d words", filepath.Base(path), len(words)), false)
}

func (m *Model) addToDeck(words []string) {
	path, added, err := m.decks.Append(words)
	if err != nil {
		m.logger.Error("Failed to add words to deck", zap.Error(err))
		m.setStatus("Could not add to deck: "+err.Error(), true)
		return
	}
	m.logger.Info("Words added to deck", zap.String("path", path), zap.Int("added", added))
	m.setStatus(fmt.Sprintf("Added %d of %d words to %s", added, len(words), filepath.Base(path)), false)
}

func (m *Model) setStatus(text string, failed bool) {
	m.status = text
	m.failed = failed
}
