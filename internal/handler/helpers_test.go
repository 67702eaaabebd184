package handler

import (
	"errors"
	"io"
	"strings"

	"freqdeck/internal/domain"
	"freqdeck/internal/examples"
	"freqdeck/internal/freqtable"
	"freqdeck/internal/service"
	"freqdeck/internal/testutil"

	tele "gopkg.in/telebot.v3"
)

// fakeContext implements the parts of tele.Context the handlers touch
type fakeContext struct {
	tele.Context
	sender    *tele.User
	callback  *tele.Callback
	message   *tele.Message
	chat      *tele.Chat
	text      string
	args      []string
	edits     []interface{}
	sent      []interface{}
	responses []*tele.CallbackResponse
	responded int
}

func newCallbackContext(userID int64, data string) *fakeContext {
	return &fakeContext{
		sender:   &tele.User{ID: userID},
		callback: &tele.Callback{ID: "cb", Data: "\f" + data, Message: &tele.Message{ID: 7}},
	}
}

func newTextContext(userID int64, text string) *fakeContext {
	return &fakeContext{
		sender:  &tele.User{ID: userID},
		message: &tele.Message{Text: text},
		chat:    &tele.Chat{ID: userID},
		text:    text,
	}
}

// newCommandContext builds a command message like "/sel 1 3"
func newCommandContext(userID int64, command, payload string) *fakeContext {
	return &fakeContext{
		sender:  &tele.User{ID: userID},
		message: &tele.Message{Text: command + " " + payload, Payload: payload},
		chat:    &tele.Chat{ID: userID},
		text:    command + " " + payload,
		args:    strings.Fields(payload),
	}
}

func newDocumentContext(userID int64, doc *tele.Document) *fakeContext {
	return &fakeContext{
		sender:  &tele.User{ID: userID},
		message: &tele.Message{Document: doc},
		chat:    &tele.Chat{ID: userID},
	}
}

func (f *fakeContext) Sender() *tele.User        { return f.sender }
func (f *fakeContext) Callback() *tele.Callback  { return f.callback }
func (f *fakeContext) Message() *tele.Message    { return f.message }
func (f *fakeContext) Text() string              { return f.text }
func (f *fakeContext) Args() []string            { return f.args }
func (f *fakeContext) Chat() *tele.Chat          { return f.chat }
func (f *fakeContext) Recipient() tele.Recipient { return f.chat }

func (f *fakeContext) Edit(what interface{}, _ ...interface{}) error {
	f.edits = append(f.edits, what)
	return nil
}

func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	f.sent = append(f.sent, what)
	return nil
}

func (f *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	f.responded++
	f.responses = append(f.responses, resp...)
	return nil
}

type botEdit struct {
	messageID string
	what      interface{}
}

// fakeBot records what the handler sends and edits through the bot API
type fakeBot struct {
	nextID  int
	sent    []interface{}
	edits   []botEdit
	editErr error
	files   map[string]string
}

func (b *fakeBot) Send(_ tele.Recipient, what interface{}, _ ...interface{}) (*tele.Message, error) {
	b.nextID++
	b.sent = append(b.sent, what)
	return &tele.Message{ID: b.nextID}, nil
}

func (b *fakeBot) Edit(msg tele.Editable, what interface{}, _ ...interface{}) (*tele.Message, error) {
	if b.editErr != nil {
		return nil, b.editErr
	}
	id, _ := msg.MessageSig()
	b.edits = append(b.edits, botEdit{messageID: id, what: what})
	return &tele.Message{}, nil
}

func (b *fakeBot) File(file *tele.File) (io.ReadCloser, error) {
	content, ok := b.files[file.FileID]
	if !ok {
		return nil, errors.New("file not found")
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

type testEnv struct {
	handler  *Handler
	bot      *fakeBot
	users    *testutil.MockUserRepository
	decks    *testutil.MockDeckRepository
	sessions *service.SessionService
}

func newTestEnv() *testEnv {
	logger := testutil.NewTestLogger()
	users := new(testutil.MockUserRepository)
	decks := new(testutil.MockDeckRepository)
	sessions := service.NewSessionService(service.SessionOptions{}, logger)
	finder, err := examples.NewFinder(16)
	if err != nil {
		panic(err)
	}

	h := NewHandler(
		nil,
		service.NewAuthService(users, "secret"),
		service.NewDeckService(decks, logger),
		sessions,
		finder,
		Options{ExampleLimit: 3},
		logger,
	)
	bot := &fakeBot{nextID: 100, files: make(map[string]string)}
	h.messages = bot
	return &testEnv{handler: h, bot: bot, users: users, decks: decks, sessions: sessions}
}

// startTable opens a table for userID the way openTable does, without the bot
func (e *testEnv) startTable(userID int64, text string, freqs []domain.WordFrequency) *service.Session {
	return e.sessions.Start(userID, text, freqs, e.handler.deckCallbacks(userID))
}

func generatedFreqs(n int) []domain.WordFrequency {
	out := make([]domain.WordFrequency, n)
	for i := range out {
		out[i] = domain.WordFrequency{Word: "w" + string(rune('a'+i%26)) + string(rune('a'+i/26%26)), Count: n - i}
	}
	return out
}

func tableOf(session *service.Session) *freqtable.Table {
	var table *freqtable.Table
	session.Do(func(t *freqtable.Table) { table = t })
	return table
}

func uniques(markup *tele.ReplyMarkup) []string {
	var out []string
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			out = append(out, btn.Unique)
		}
	}
	return out
}
