package chat

import (
	"sync"

	"github.com/cloudwego/eino/schema"
)

// SessionStore holds per-session conversation state, keyed by the session
// id the HTTP layer extracts (or mints). In-memory only; history does not
// survive a restart.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, creating it when absent.
func (s *SessionStore) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{}
		s.sessions[id] = sess
	}
	return sess
}

// Session is one customer's conversation history. It grows by exactly one
// user turn per incoming message, keeps assistant turns across free-text
// replies so slot-filling survives, and is cleared once a tool branch
// completes.
type Session struct {
	mu      sync.Mutex
	history []*schema.Message
}

func (s *Session) Append(msgs ...*schema.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, msgs...)
}

// History returns a copy of the turns so far.
func (s *Session) History() []*schema.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*schema.Message, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// Len reports the number of stored turns.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}
