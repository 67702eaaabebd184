package handler

import (
	"strconv"
	"strings"
	"unicode"

	"freqdeck/internal/domain"
	"freqdeck/internal/freqtable"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Same content as before, e.g. a double tap on a button
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch data {
	case "decks":
		return h.handleDecks(c)
	case "show_table":
		return h.handleShowTable(c)
	case "cancel":
		return h.handleCancel(c)
	case "main_menu":
		return h.handleStart(c)
	case "deck_new":
		return h.handleDeckNew(c)
	case "deck_add":
		return h.handleDeckAdd(c)
	case "ex_close":
		return h.handleExampleClose(c)
	}

	// Handle by Data prefix (dynamic buttons)
	switch {
	case strings.HasPrefix(data, "sort_"):
		return h.handleSort(c, data)
	case strings.HasPrefix(data, "page_"):
		return h.handlePagination(c, data)
	case strings.HasPrefix(data, "size_"):
		return h.handlePageSize(c, data)
	case strings.HasPrefix(data, "lang_"):
		return h.handleLanguage(c, data)
	case strings.HasPrefix(data, "deckpick_"):
		return h.handleDeckPick(c, data)
	case strings.HasPrefix(data, "deckview_"):
		return h.handleDeckView(c, data)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// updateTable applies fn to the user's table and shows the result
func (h *Handler) updateTable(c tele.Context, fn func(t *freqtable.Table)) error {
	session, ok := h.sessions.Get(c.Sender().ID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: msgNoTable, ShowAlert: true})
	}

	var text string
	var markup *tele.ReplyMarkup
	session.Do(func(t *freqtable.Table) {
		fn(t)
		text, markup = renderTable(t)
	})
	return h.present(c, session, text, markup)
}

// handleShowTable brings the open table back
func (h *Handler) handleShowTable(c tele.Context) error {
	return h.updateTable(c, func(t *freqtable.Table) {})
}

// handleSort handles a click on a column header
func (h *Handler) handleSort(c tele.Context, data string) error {
	col, err := domain.ParseSortColumn(strings.TrimPrefix(data, "sort_"))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неизвестная колонка"})
	}
	return h.updateTable(c, func(t *freqtable.Table) {
		t.ToggleSort(col)
	})
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context, data string) error {
	switch strings.TrimPrefix(data, "page_") {
	case "prev":
		return h.updateTable(c, (*freqtable.Table).PrevPage)
	case "next":
		return h.updateTable(c, (*freqtable.Table).NextPage)
	}
	return c.Respond(&tele.CallbackResponse{Text: "Неверная страница"})
}

// handlePageSize changes how many words a page shows
func (h *Handler) handlePageSize(c tele.Context, data string) error {
	size, err := strconv.Atoi(strings.TrimPrefix(data, "size_"))
	if err != nil || !domain.IsValidPageSize(size) {
		return c.Respond(&tele.CallbackResponse{Text: "Неверный размер страницы"})
	}
	return h.updateTable(c, func(t *freqtable.Table) {
		// size is one of domain.PageSizes
		_ = t.SetWordsPerPage(size)
	})
}

// handleLanguage switches the reference word list
func (h *Handler) handleLanguage(c tele.Context, data string) error {
	lang, err := domain.ParseLanguage(strings.TrimPrefix(data, "lang_"))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неизвестный язык"})
	}
	return h.updateTable(c, func(t *freqtable.Table) {
		t.SetLanguage(lang)
	})
}

// handleExampleClose closes the example view and returns to the table
func (h *Handler) handleExampleClose(c tele.Context) error {
	return h.updateTable(c, (*freqtable.Table).CloseWord)
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID

	h.ResetState(userID)

	if err := c.Edit(msgMainMenu, mainMenuMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		return c.Send(msgMainMenu, mainMenuMarkup())
	}
	return c.Respond()
}
