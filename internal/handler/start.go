package handler

import (
	"freqdeck/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgError          = middleware.MsgError
	msgPasswordPrompt = middleware.MsgPasswordPrompt
	msgMainMenu       = "🏠 Главное меню\n\nОтправь текст или файл (.txt, .pdf), и я покажу частотность слов."
	msgHelp           = "📖 Как пользоваться:\n\n" +
		"• Отправь текст или файл .txt/.pdf — получишь таблицу частотности.\n" +
		"• Кнопки «Кол-во», «Слово», «Ранг» сортируют таблицу, повторное нажатие меняет направление.\n" +
		"• Ранг — место слова в списке самых частых слов выбранного языка, «-» если слова там нет.\n" +
		"• /sel 3 5 7 — выбрать или снять строки по номерам (можно и словами: /sel cat dog).\n" +
		"• /ex 3 или /ex cat — примеры употребления слова.\n" +
		"• /decks — твои колоды."
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	ctx, cancel := requestContext()
	defer cancel()

	// Ensure user exists in database
	if err := h.authService.EnsureUserExists(ctx, userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(msgError)
	}

	// Check if authorized
	authorized, err := h.authService.IsAuthorized(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgError)
	}

	h.ResetState(userID)

	if !authorized {
		return c.Send(msgPasswordPrompt)
	}

	if c.Callback() != nil {
		if err := c.Edit(msgMainMenu, mainMenuMarkup()); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(msgMainMenu, mainMenuMarkup())
		}
		return c.Respond()
	}
	return c.Send(msgMainMenu, mainMenuMarkup())
}

// handleHelp handles /help command
func (h *Handler) handleHelp(c tele.Context) error {
	return c.Send(msgHelp)
}
