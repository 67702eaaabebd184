package freqtable

import (
	"testing"

	"freqdeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_ToggleRow(t *testing.T) {
	table := New(exampleFreqs(), "the cat", Callbacks{})

	table.ToggleRow("cat")
	table.ToggleRow("the")
	assert.True(t, table.IsSelected("cat"))
	assert.Equal(t, []string{"cat", "the"}, table.Selection())

	table.ToggleRow("cat")
	assert.False(t, table.IsSelected("cat"))
	assert.Equal(t, []string{"the"}, table.Selection())

	table.ToggleRow("dog")
	assert.Equal(t, 1, table.SelectionCount())
}

func TestTable_SelectionSurvivesSortAndPaging(t *testing.T) {
	table := New(generated(120), "", Callbacks{})
	table.ToggleRow("w0000")
	table.ToggleRow("w0119")

	table.ToggleSort(domain.SortByWord)
	table.NextPage()
	require.NoError(t, table.SetWordsPerPage(100))
	table.SetLanguage(domain.LanguageFrench)

	assert.Equal(t, []string{"w0000", "w0119"}, table.Selection())

	rows := table.Page()
	require.NotEmpty(t, rows)
	assert.True(t, rows[0].Selected)
	assert.False(t, rows[1].Selected)
}

func TestTable_SetFrequenciesClearsSelection(t *testing.T) {
	table := New(exampleFreqs(), "the cat", Callbacks{})
	table.ToggleRow("the")
	table.OpenWord("the")
	table.NextPage()

	table.SetFrequencies([]domain.WordFrequency{{Word: "dog", Count: 1}}, "dog")

	assert.Empty(t, table.Selection())
	assert.Equal(t, 1, table.CurrentPage())
	_, open := table.ActiveWord()
	assert.False(t, open)
	assert.Equal(t, "dog", table.Text())
}

func TestTable_DeckActions(t *testing.T) {
	tests := []struct {
		name   string
		action func(*Table) bool
		isNew  bool
	}{
		{name: "create new deck", action: (*Table).CreateNewDeck, isNew: true},
		{name: "add to existing deck", action: (*Table).AddToExistingDeck, isNew: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created, added [][]string
			table := New(exampleFreqs(), "the cat", Callbacks{
				OnCreateNewDeck:     func(words []string) { created = append(created, words) },
				OnAddToExistingDeck: func(words []string) { added = append(added, words) },
			})

			assert.False(t, tt.action(table))
			assert.Empty(t, created)
			assert.Empty(t, added)

			table.ToggleRow("the")
			table.ToggleRow("cat")
			assert.True(t, tt.action(table))

			if tt.isNew {
				require.Len(t, created, 1)
				assert.Equal(t, []string{"the", "cat"}, created[0])
				assert.Empty(t, added)
			} else {
				require.Len(t, added, 1)
				assert.Equal(t, []string{"the", "cat"}, added[0])
				assert.Empty(t, created)
			}
			assert.Empty(t, table.Selection())
			assert.False(t, table.IsSelected("the"))
		})
	}
}

func TestTable_DeckSnapshotIsDetached(t *testing.T) {
	var got []string
	table := New(exampleFreqs(), "", Callbacks{
		OnCreateNewDeck: func(words []string) { got = words },
	})
	table.ToggleRow("cat")
	table.CreateNewDeck()

	table.ToggleRow("the")
	assert.Equal(t, []string{"cat"}, got)
}

func TestTable_NilCallbacks(t *testing.T) {
	table := New(exampleFreqs(), "", Callbacks{})
	table.ToggleRow("cat")
	assert.True(t, table.CreateNewDeck())
	assert.Empty(t, table.Selection())
}

func TestTable_ActiveWord(t *testing.T) {
	table := New(exampleFreqs(), "", Callbacks{})

	_, open := table.ActiveWord()
	assert.False(t, open)

	table.OpenWord("the")
	table.OpenWord("cat")
	word, open := table.ActiveWord()
	assert.True(t, open)
	assert.Equal(t, "cat", word)

	table.CloseWord()
	_, open = table.ActiveWord()
	assert.False(t, open)
}
