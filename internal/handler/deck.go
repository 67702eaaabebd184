package handler

import (
	"errors"
	"fmt"
	"strings"

	"freqdeck/internal/domain"
	"freqdeck/internal/freqtable"
	"freqdeck/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgSelectFirst  = "Сначала выбери слова: /sel 1 2 3"
	msgAskDeckName  = "🆕 Как назвать новую колоду?"
	msgDeckNotFound = "Колода не найдена"
)

// takeSelection runs a deck action on the user's table and refreshes it.
// It returns false when nothing was selected.
func (h *Handler) takeSelection(c tele.Context, action func(t *freqtable.Table) bool) (bool, error) {
	session, ok := h.sessions.Get(c.Sender().ID)
	if !ok {
		return false, c.Respond(&tele.CallbackResponse{Text: msgNoTable, ShowAlert: true})
	}

	var emitted bool
	var text string
	var markup *tele.ReplyMarkup
	session.Do(func(t *freqtable.Table) {
		emitted = action(t)
		text, markup = renderTable(t)
	})

	if !emitted {
		return false, c.Respond(&tele.CallbackResponse{Text: msgSelectFirst, ShowAlert: true})
	}

	// Selection is cleared now, show the table without it
	if err := h.present(c, session, text, markup); err != nil {
		h.logger.Warn("Failed to refresh table", zap.Error(err))
	}
	return true, nil
}

// handleDeckNew sends the selection to a new deck, asking for its name
func (h *Handler) handleDeckNew(c tele.Context) error {
	ok, err := h.takeSelection(c, (*freqtable.Table).CreateNewDeck)
	if !ok {
		return err
	}
	return c.Send(msgAskDeckName, cancelMarkup())
}

// handleDeckAdd sends the selection to an existing deck picked from a list
func (h *Handler) handleDeckAdd(c tele.Context) error {
	userID := c.Sender().ID

	ok, err := h.takeSelection(c, (*freqtable.Table).AddToExistingDeck)
	if !ok {
		return err
	}

	pending := h.GetState(userID).PendingWords

	ctx, cancel := requestContext()
	defer cancel()

	decks, err := h.deckService.ListDecks(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to list decks", zap.Error(err), zap.Int64("user_id", userID))
		h.ResetState(userID)
		return c.Send(msgError)
	}

	if len(decks) == 0 {
		h.SetState(userID, &domain.StateData{
			State:        domain.StateWaitingDeckName,
			PendingWords: pending,
		})
		return c.Send("У тебя пока нет колод.\n\n"+msgAskDeckName, cancelMarkup())
	}

	text, markup := renderDeckPicker(decks, len(pending))
	return c.Send(text, markup)
}

// createDeck stores pending words under the name the user sent
func (h *Handler) createDeck(c tele.Context, name string, words []string) error {
	userID := c.Sender().ID

	ctx, cancel := requestContext()
	defer cancel()

	deck, err := h.deckService.CreateDeck(ctx, userID, name, words)
	switch {
	case errors.Is(err, service.ErrInvalidDeckName):
		return c.Send("Название должно быть от 1 до 64 символов", cancelMarkup())
	case errors.Is(err, service.ErrEmptySelection):
		h.ResetState(userID)
		return c.Send(msgSelectFirst)
	case err != nil:
		h.logger.Error("Failed to create deck",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("Не удалось создать колоду. Попробуйте ещё раз.", cancelMarkup())
	}

	h.ResetState(userID)

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnShowTable, btnDecks))
	return c.Send(fmt.Sprintf("✅ Колода «%s» создана, слов: %d", deck.Name, deck.WordCount), markup)
}

// handleDeckPick adds pending words to the chosen deck
func (h *Handler) handleDeckPick(c tele.Context, data string) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	if state.State != domain.StateChoosingDeck || len(state.PendingWords) == 0 {
		return c.Respond(&tele.CallbackResponse{Text: msgSelectFirst, ShowAlert: true})
	}

	deckID, err := uuid.Parse(strings.TrimPrefix(data, "deckpick_"))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: msgDeckNotFound})
	}

	ctx, cancel := requestContext()
	defer cancel()

	added, err := h.deckService.AddToDeck(ctx, userID, deckID, state.PendingWords)
	if errors.Is(err, service.ErrDeckNotFound) {
		return c.Respond(&tele.CallbackResponse{Text: msgDeckNotFound, ShowAlert: true})
	}
	if err != nil {
		h.logger.Error("Failed to add words to deck",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("deck_id", deckID.String()),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при сохранении"})
	}

	h.ResetState(userID)

	text := fmt.Sprintf("✅ Добавлено новых слов: %d из %d", added, len(state.PendingWords))
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnShowTable, btnDecks))

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleDecks lists the user's decks
func (h *Handler) handleDecks(c tele.Context) error {
	userID := c.Sender().ID

	ctx, cancel := requestContext()
	defer cancel()

	decks, err := h.deckService.ListDecks(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to list decks", zap.Error(err), zap.Int64("user_id", userID))
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке данных"})
		}
		return c.Send(msgError)
	}

	text, markup := renderDeckList(decks)

	// Edit message if callback, send new if command
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// handleDeckView shows the words of one deck
func (h *Handler) handleDeckView(c tele.Context, data string) error {
	userID := c.Sender().ID

	deckID, err := uuid.Parse(strings.TrimPrefix(data, "deckview_"))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: msgDeckNotFound})
	}

	ctx, cancel := requestContext()
	defer cancel()

	deck, words, err := h.deckService.DeckWords(ctx, userID, deckID)
	if errors.Is(err, service.ErrDeckNotFound) {
		return c.Respond(&tele.CallbackResponse{Text: msgDeckNotFound, ShowAlert: true})
	}
	if err != nil {
		h.logger.Error("Failed to load deck", zap.Error(err), zap.String("deck_id", deckID.String()))
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке"})
	}

	text, markup := renderDeck(deck, words)
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}
