package service

import (
	"sync"
	"time"

	"freqdeck/internal/domain"
	"freqdeck/internal/freqtable"

	"go.uber.org/zap"
)

// Session is one user's open frequency table
type Session struct {
	mu        sync.Mutex
	table     *freqtable.Table
	messageID int
	lastUsed  time.Time
}

// Do runs fn with exclusive access to the table
func (s *Session) Do(fn func(t *freqtable.Table)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.table)
}

// MessageID returns the chat message showing the table
func (s *Session) MessageID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messageID
}

// SetMessageID remembers the chat message showing the table
func (s *Session) SetMessageID(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messageID = id
}

// SessionOptions are the initial table settings of a session
type SessionOptions struct {
	Language domain.Language
	PageSize int
}

// SessionService keeps open tables in memory, one per user
type SessionService struct {
	sessions map[int64]*Session
	mux      sync.RWMutex
	opts     SessionOptions
	logger   *zap.Logger
	now      func() time.Time
}

// NewSessionService creates a new session store
func NewSessionService(opts SessionOptions, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessions: make(map[int64]*Session),
		opts:     opts,
		logger:   logger,
		now:      time.Now,
	}
}

// Start opens a new table for the user, replacing any previous one
func (s *SessionService) Start(userID int64, text string, freqs []domain.WordFrequency, callbacks freqtable.Callbacks) *Session {
	table := freqtable.New(freqs, text, callbacks)
	if s.opts.Language != "" {
		table.SetLanguage(s.opts.Language)
	}
	if domain.IsValidPageSize(s.opts.PageSize) {
		_ = table.SetWordsPerPage(s.opts.PageSize)
	}

	session := &Session{table: table, lastUsed: s.now()}

	s.mux.Lock()
	s.sessions[userID] = session
	s.mux.Unlock()

	s.logger.Debug("Session started",
		zap.Int64("user_id", userID),
		zap.Int("unique_words", len(freqs)),
	)
	return session
}

// Get returns the user's session and marks it as used
func (s *SessionService) Get(userID int64) (*Session, bool) {
	s.mux.RLock()
	session, ok := s.sessions[userID]
	s.mux.RUnlock()
	if !ok {
		return nil, false
	}

	session.mu.Lock()
	session.lastUsed = s.now()
	session.mu.Unlock()
	return session, true
}

// Drop closes the user's session
func (s *SessionService) Drop(userID int64) {
	s.mux.Lock()
	defer s.mux.Unlock()
	delete(s.sessions, userID)
}

// Count returns the number of open sessions
func (s *SessionService) Count() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return len(s.sessions)
}

// Evict drops sessions idle for longer than maxIdle and returns how many
func (s *SessionService) Evict(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mux.Lock()
	defer s.mux.Unlock()

	evicted := 0
	for userID, session := range s.sessions {
		session.mu.Lock()
		idle := session.lastUsed.Before(cutoff)
		session.mu.Unlock()
		if idle {
			delete(s.sessions, userID)
			evicted++
		}
	}

	s.logger.Debug("Idle sessions evicted",
		zap.Int("evicted", evicted),
		zap.Int("remaining", len(s.sessions)),
		zap.Duration("max_idle", maxIdle),
	)
	return evicted
}
