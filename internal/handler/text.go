package handler

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"freqdeck/internal/counter"
	"freqdeck/internal/domain"
	"freqdeck/internal/extract"
	"freqdeck/internal/freqtable"
	"freqdeck/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgNoTable     = "Сначала отправь текст"
	msgNoWords     = "В тексте не нашлось слов"
	msgPickingDeck = "Выбери колоду кнопкой выше или нажми «Отменить»"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	// Ensure user exists
	if err := h.authService.EnsureUserExists(ctx, userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	// Check authorization first
	authorized, err := h.authService.IsAuthorized(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgError)
	}

	// If not authorized, check password
	if !authorized {
		if !h.authService.CheckPassword(text) {
			return c.Send("Неверный пароль")
		}

		if err := h.authService.AuthorizeUser(ctx, userID); err != nil {
			h.logger.Error("Failed to authorize user", zap.Error(err))
			return c.Send(msgError)
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		h.ResetState(userID)
		return c.Send("✅ Доступ разрешён!\n\n"+msgMainMenu, mainMenuMarkup())
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingDeckName:
		return h.createDeck(c, text, state.PendingWords)
	case domain.StateChoosingDeck:
		return c.Send(msgPickingDeck, cancelMarkup())
	default:
		// Stats count whitespace tokens, so keep the text as sent
		return h.openTable(c, c.Text())
	}
}

// handleDocument reads an uploaded .txt or .pdf and opens a table over it
func (h *Handler) handleDocument(c tele.Context) error {
	userID := c.Sender().ID

	doc := c.Message().Document
	if doc == nil {
		return nil
	}

	if h.opts.MaxDocumentBytes > 0 && doc.FileSize > h.opts.MaxDocumentBytes {
		return c.Send("Файл слишком большой")
	}

	reader, err := h.messages.File(&doc.File)
	if err != nil {
		h.logger.Error("Failed to download document",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("file_name", doc.FileName),
		)
		return c.Send("Не удалось скачать файл")
	}
	defer reader.Close()

	var src io.Reader = reader
	if h.opts.MaxDocumentBytes > 0 {
		src = io.LimitReader(reader, h.opts.MaxDocumentBytes)
	}

	text, err := extract.Text(doc.FileName, doc.MIME, src)
	if errors.Is(err, extract.ErrUnsupported) {
		return c.Send("Поддерживаются только файлы .txt и .pdf")
	}
	if err != nil {
		h.logger.Warn("Failed to extract document text",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("file_name", doc.FileName),
		)
		return c.Send("Не удалось прочитать файл")
	}

	h.logger.Info("Document received",
		zap.Int64("user_id", userID),
		zap.String("file_name", doc.FileName),
		zap.Int("text_length", len(text)),
	)

	return h.openTable(c, text)
}

// openTable counts words of text and shows a fresh table
func (h *Handler) openTable(c tele.Context, text string) error {
	userID := c.Sender().ID

	freqs := counter.Count(text)
	if len(freqs) == 0 {
		return c.Send(msgNoWords)
	}

	h.ResetState(userID)
	session := h.sessions.Start(userID, text, freqs, h.deckCallbacks(userID))

	var body string
	var markup *tele.ReplyMarkup
	session.Do(func(t *freqtable.Table) {
		body, markup = renderTable(t)
	})

	msg, err := h.messages.Send(c.Recipient(), body, markup)
	if err != nil {
		h.logger.Error("Failed to send table", zap.Error(err), zap.Int64("user_id", userID))
		return err
	}
	session.SetMessageID(msg.ID)

	h.logger.Info("Table opened",
		zap.Int64("user_id", userID),
		zap.Int("unique_words", len(freqs)),
	)
	return nil
}

// present shows a view of the session: callbacks edit their message,
// commands edit the last table message, anything else sends a new one
func (h *Handler) present(c tele.Context, session *service.Session, text string, markup *tele.ReplyMarkup) error {
	userID := c.Sender().ID

	if cb := c.Callback(); cb != nil {
		err := c.Edit(text, markup)
		if err == nil {
			if cb.Message != nil {
				session.SetMessageID(cb.Message.ID)
			}
			return c.Respond()
		}
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
	} else if id := session.MessageID(); id != 0 {
		stored := tele.StoredMessage{MessageID: strconv.Itoa(id), ChatID: c.Chat().ID}
		_, err := h.messages.Edit(stored, text, markup)
		if err == nil || strings.Contains(err.Error(), "message is not modified") {
			return nil
		}
		h.logger.Debug("Failed to edit table message, sending new",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
	}

	msg, err := h.messages.Send(c.Recipient(), text, markup)
	if err != nil {
		return err
	}
	session.SetMessageID(msg.ID)
	return nil
}

// handleSelect toggles rows given by number, range or word: /sel 1 4-6 cat
func (h *Handler) handleSelect(c tele.Context) error {
	session, ok := h.sessions.Get(c.Sender().ID)
	if !ok {
		return c.Send(msgNoTable)
	}

	args := c.Args()
	if len(args) == 0 {
		return c.Send("Укажи номера строк: /sel 1 2 3")
	}

	var toggled int
	var body string
	var markup *tele.ReplyMarkup
	session.Do(func(t *freqtable.Table) {
		words := resolveWords(args, t.Sorted())
		for _, word := range words {
			t.ToggleRow(word)
		}
		toggled = len(words)
		body, markup = renderTable(t)
	})

	if toggled == 0 {
		return c.Send("Не нашёл таких строк")
	}
	return h.present(c, session, body, markup)
}

// handleExample opens the example view: /ex 3 or /ex cat
func (h *Handler) handleExample(c tele.Context) error {
	session, ok := h.sessions.Get(c.Sender().ID)
	if !ok {
		return c.Send(msgNoTable)
	}

	arg := strings.TrimSpace(c.Message().Payload)
	if arg == "" {
		return c.Send("Укажи номер строки или слово: /ex 3")
	}

	var word, text string
	session.Do(func(t *freqtable.Table) {
		words := resolveWords([]string{arg}, t.Sorted())
		if len(words) == 0 {
			return
		}
		word = words[0]
		t.OpenWord(word)
		text = t.Text()
	})

	if word == "" {
		return c.Send("Не нашёл такого слова")
	}

	found := h.finder.Find(word, text, h.opts.ExampleLimit)
	body, markup := renderExamples(word, found)
	return h.present(c, session, body, markup)
}

// resolveWords maps row numbers, ranges like 3-7 and words to table words.
// Unknown entries are skipped and a word is returned at most once.
func resolveWords(args []string, sorted []domain.WordFrequency) []string {
	index := make(map[string]struct{}, len(sorted))
	for _, f := range sorted {
		index[f.Word] = struct{}{}
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(word string) {
		if _, dup := seen[word]; dup {
			return
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}

	for _, arg := range args {
		for _, token := range strings.Split(arg, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}

			if from, to, ok := parseRange(token); ok {
				for n := max(from, 1); n <= to && n <= len(sorted); n++ {
					add(sorted[n-1].Word)
				}
				continue
			}

			word := strings.ToLower(token)
			if _, ok := index[word]; ok {
				add(word)
			}
		}
	}
	return out
}

// parseRange parses "N" or "N-M" into an inclusive range
func parseRange(token string) (int, int, bool) {
	fromStr, toStr, isRange := strings.Cut(token, "-")
	from, err := strconv.Atoi(fromStr)
	if err != nil {
		return 0, 0, false
	}
	if !isRange {
		return from, from, true
	}
	to, err := strconv.Atoi(toStr)
	if err != nil || to < from {
		return 0, 0, false
	}
	return from, to, true
}
