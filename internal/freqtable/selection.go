package freqtable

// ToggleRow flips the selection of word. Words not in the table are ignored.
func (t *Table) ToggleRow(word string) {
	if _, ok := t.known[word]; !ok {
		return
	}
	if _, ok := t.selected[word]; ok {
		delete(t.selected, word)
		for i, w := range t.order {
			if w == word {
				t.order = append(t.order[:i], t.order[i+1:]...)
				break
			}
		}
		return
	}
	t.selected[word] = struct{}{}
	t.order = append(t.order, word)
}

// IsSelected reports whether word is selected
func (t *Table) IsSelected(word string) bool {
	_, ok := t.selected[word]
	return ok
}

// Selection returns the selected words in the order they were selected
func (t *Table) Selection() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// SelectionCount returns the number of selected words
func (t *Table) SelectionCount() int {
	return len(t.order)
}

// CreateNewDeck hands the selection to OnCreateNewDeck and clears it.
// It does nothing and returns false when nothing is selected.
func (t *Table) CreateNewDeck() bool {
	return t.emit(t.callbacks.OnCreateNewDeck)
}

// AddToExistingDeck hands the selection to OnAddToExistingDeck and clears it.
// It does nothing and returns false when nothing is selected.
func (t *Table) AddToExistingDeck() bool {
	return t.emit(t.callbacks.OnAddToExistingDeck)
}

func (t *Table) emit(callback func([]string)) bool {
	if len(t.order) == 0 {
		return false
	}
	words := t.Selection()
	t.clearSelection()
	if callback != nil {
		callback(words)
	}
	return true
}

func (t *Table) clearSelection() {
	t.selected = make(map[string]struct{})
	t.order = nil
}

// OpenWord makes word the active word of the example view
func (t *Table) OpenWord(word string) {
	t.activeWord = word
}

// CloseWord closes the example view
func (t *Table) CloseWord() {
	t.activeWord = ""
}

// ActiveWord returns the word whose examples are shown, if any
func (t *Table) ActiveWord() (string, bool) {
	return t.activeWord, t.activeWord != ""
}
