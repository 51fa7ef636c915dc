package session

import (
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/zhubert/sidechat/internal/config"
	perrors "github.com/zhubert/sidechat/internal/errors"
	"github.com/zhubert/sidechat/internal/logger"
)

// DefaultTopic is the topic of a chat before it is renamed
const DefaultTopic = "New Conversation"

// Store is the chat session list backed by the config.
type Store struct {
	cfg      *config.Config
	clock    clockwork.Clock
	newID    func() string
	messages map[string][]config.Message
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for session timestamps.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// NewStore creates a store over cfg. If cfg has no sessions, one is created.
func NewStore(cfg *config.Config, opts ...Option) *Store {
	s := &Store{
		cfg:      cfg,
		clock:    clockwork.NewRealClock(),
		newID:    func() string { return uuid.New().String() },
		messages: make(map[string][]config.Message),
	}
	for _, opt := range opts {
		opt(s)
	}
	if cfg.SessionCount() == 0 {
		s.NewSession("")
	}
	return s
}

// Sessions returns the sessions in display order.
func (s *Store) Sessions() []config.Session {
	return s.cfg.GetSessions()
}

// Len returns the number of sessions.
func (s *Store) Len() int {
	return s.cfg.SessionCount()
}

// CurrentIndex returns the index of the selected session.
func (s *Store) CurrentIndex() int {
	return s.cfg.GetCurrentSessionIndex()
}

// Current returns the selected session.
func (s *Store) Current() (config.Session, bool) {
	sessions := s.cfg.GetSessions()
	i := s.cfg.GetCurrentSessionIndex()
	if i < 0 || i >= len(sessions) {
		return config.Session{}, false
	}
	return sessions[i], true
}

// Advance moves the selection by direction, wrapping around at both ends.
func (s *Store) Advance(direction int) {
	n := s.cfg.SessionCount()
	if n == 0 {
		return
	}
	i := s.cfg.GetCurrentSessionIndex()
	next := ((i+direction)%n + n) % n
	s.Select(next)
}

// Select makes the session at index current. Returns false if index is out of range.
func (s *Store) Select(index int) bool {
	if !s.cfg.SetCurrentSessionIndex(index) {
		return false
	}
	if sess, ok := s.Current(); ok {
		logger.WithSession(sess.ID).Debug("session selected", "index", index)
	}
	return true
}

// NewSession creates a session at the top of the list and selects it.
// mask names the persona the chat starts with and may be empty.
func (s *Store) NewSession(mask string) config.Session {
	now := s.clock.Now()
	sess := config.Session{
		ID:        s.newID(),
		Topic:     DefaultTopic,
		Mask:      mask,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.cfg.InsertSession(sess)
	logger.WithSession(sess.ID).Info("session created", "mask", mask)
	return sess
}

// DeleteSession removes the session at index along with its history.
// Deleting the only session replaces it with a new one.
func (s *Store) DeleteSession(index int) error {
	removed, ok := s.cfg.RemoveSessionAt(index)
	if !ok {
		return perrors.SessionIndexOutOfRange(index, s.cfg.SessionCount())
	}

	log := logger.WithSession(removed.ID)
	delete(s.messages, removed.ID)
	if err := s.cfg.DeleteSessionMessages(removed.ID); err != nil {
		log.Warn("failed to delete session history", "error", err)
	}
	log.Info("session deleted", "index", index)

	if s.cfg.SessionCount() == 0 {
		s.NewSession("")
	}
	return nil
}

// Messages returns the history of a session.
func (s *Store) Messages(sessionID string) ([]config.Message, error) {
	if s.cfg.GetSession(sessionID) == nil {
		return nil, perrors.SessionNotFound(sessionID)
	}
	if msgs, ok := s.messages[sessionID]; ok {
		return msgs, nil
	}
	msgs, err := s.cfg.LoadSessionMessages(sessionID)
	if err != nil {
		return nil, perrors.E(perrors.Op("session.Messages"), perrors.KindIO, err)
	}
	s.messages[sessionID] = msgs
	return msgs, nil
}

// AppendMessage adds a message to a session's history and persists it. The
// first user message becomes the topic of a chat that still has the default one.
func (s *Store) AppendMessage(sessionID, role, content string) error {
	msgs, err := s.Messages(sessionID)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	msgs = append(msgs, config.Message{Role: role, Content: content, CreatedAt: now})
	s.messages[sessionID] = msgs

	topic := ""
	if sess := s.cfg.GetSession(sessionID); sess != nil && sess.Topic == DefaultTopic && role == "user" {
		topic = summarizeTopic(content)
	}
	s.cfg.TouchSession(sessionID, topic, len(msgs), now)

	if err := s.cfg.SaveSessionMessages(sessionID, msgs, config.MaxSessionMessageLines); err != nil {
		return perrors.E(perrors.Op("session.AppendMessage"), perrors.KindIO, err)
	}
	return nil
}
