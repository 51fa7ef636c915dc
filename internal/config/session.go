package config

import "time"

// Session is a chat conversation listed in the sidebar
type Session struct {
	ID           string    `json:"id"`
	Topic        string    `json:"topic"`
	Mask         string    `json:"mask,omitempty"` // Persona the chat was started with
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// InsertSession places a session at the top of the list and makes it current
func (c *Config) InsertSession(session Session) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Sessions = append([]Session{session}, c.Sessions...)
	c.CurrentSessionIndex = 0
}

// RemoveSessionAt removes the session at index and keeps the current index
// pointing at a valid entry. Returns the removed session, or false if the
// index is out of range.
func (c *Config) RemoveSessionAt(index int) (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.Sessions) {
		return Session{}, false
	}

	removed := c.Sessions[index]
	c.Sessions = append(c.Sessions[:index], c.Sessions[index+1:]...)

	if index < c.CurrentSessionIndex || c.CurrentSessionIndex >= len(c.Sessions) {
		c.CurrentSessionIndex--
	}
	if c.CurrentSessionIndex < 0 {
		c.CurrentSessionIndex = 0
	}
	return removed, true
}

// RemoveSession removes a session by ID
func (c *Config) RemoveSession(id string) bool {
	for i, s := range c.GetSessions() {
		if s.ID == id {
			_, ok := c.RemoveSessionAt(i)
			return ok
		}
	}
	return false
}

// ClearSessions removes all sessions
func (c *Config) ClearSessions() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sessions = []Session{}
	c.CurrentSessionIndex = 0
}

// GetSession returns a copy of a session by ID.
// Returns nil if no session with the given ID exists.
func (c *Config) GetSession(id string) *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.Sessions {
		if c.Sessions[i].ID == id {
			sess := c.Sessions[i] // copy
			return &sess
		}
	}
	return nil
}

// GetSessions returns a copy of the sessions slice
func (c *Config) GetSessions() []Session {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sessions := make([]Session, len(c.Sessions))
	copy(sessions, c.Sessions)
	return sessions
}

// SessionCount returns the number of sessions
func (c *Config) SessionCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.Sessions)
}

// GetCurrentSessionIndex returns the index of the selected session
func (c *Config) GetCurrentSessionIndex() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.CurrentSessionIndex
}

// SetCurrentSessionIndex selects the session at index. Returns false if the
// index is out of range.
func (c *Config) SetCurrentSessionIndex(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.Sessions) {
		return false
	}
	c.CurrentSessionIndex = index
	return true
}

// TouchSession updates the topic and message count of a session
func (c *Config) TouchSession(id, topic string, messageCount int, at time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.Sessions {
		if c.Sessions[i].ID == id {
			if topic != "" {
				c.Sessions[i].Topic = topic
			}
			c.Sessions[i].MessageCount = messageCount
			c.Sessions[i].UpdatedAt = at
			return true
		}
	}
	return false
}
