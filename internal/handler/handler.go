package handler

import (
	"context"
	"io"
	"sync"
	"time"

	"freqdeck/internal/domain"
	"freqdeck/internal/examples"
	"freqdeck/internal/freqtable"
	"freqdeck/internal/middleware"
	"freqdeck/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const requestTimeout = 10 * time.Second

// Options tune handler behaviour
type Options struct {
	ExampleLimit     int
	MaxDocumentBytes int64
}

// messenger is the part of the bot API table views and uploads go through
type messenger interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error)
	File(file *tele.File) (io.ReadCloser, error)
}

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	messages    messenger
	authService *service.AuthService
	deckService *service.DeckService
	sessions    *service.SessionService
	finder      *examples.Finder
	opts        Options
	logger      *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	deckService *service.DeckService,
	sessions *service.SessionService,
	finder *examples.Finder,
	opts Options,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		messages:    bot,
		authService: authService,
		deckService: deckService,
		sessions:    sessions,
		finder:      finder,
		opts:        opts,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Public: /start and plain text carry the password flow
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle(tele.OnText, h.handleText)

	private := h.bot.Group()
	private.Use(middleware.AuthMiddleware(h.authService, h.logger))

	private.Handle("/decks", h.handleDecks)
	private.Handle("/sel", h.handleSelect)
	private.Handle("/ex", h.handleExample)
	private.Handle(tele.OnDocument, h.handleDocument)

	// Callback queries (inline buttons)
	private.Handle(&btnDecks, h.handleDecks)
	private.Handle(&btnShowTable, h.handleShowTable)
	private.Handle(&btnCancel, h.handleCancel)
	private.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	private.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// deckCallbacks wires a table's deck actions into the user's state machine
func (h *Handler) deckCallbacks(userID int64) freqtable.Callbacks {
	return freqtable.Callbacks{
		OnCreateNewDeck: func(words []string) {
			h.SetState(userID, &domain.StateData{
				State:        domain.StateWaitingDeckName,
				PendingWords: words,
			})
		},
		OnAddToExistingDeck: func(words []string) {
			h.SetState(userID, &domain.StateData{
				State:        domain.StateChoosingDeck,
				PendingWords: words,
			})
		},
	}
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// Inline keyboard buttons
var (
	btnDecks = tele.Btn{
		Unique: "decks",
		Text:   "📚 Мои колоды",
	}
	btnShowTable = tele.Btn{
		Unique: "show_table",
		Text:   "📊 Открыть таблицу",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Отменить",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Главное меню",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnShowTable),
		menu.Row(btnDecks),
	)
	return menu
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}
