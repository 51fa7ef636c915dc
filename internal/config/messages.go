package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxSessionMessageLines is the maximum number of lines kept in a session's message history
const MaxSessionMessageLines = 10000

// sessionsDirName is the directory next to the config file holding message histories
const sessionsDirName = "sessions"

// Message is one entry of a chat's history
type Message struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// SessionMessagesPath returns the history file for a session, or empty if the
// config is not bound to a file.
func (c *Config) SessionMessagesPath(sessionID string) string {
	path := c.Path()
	if path == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(path), sessionsDirName, sessionID+".json")
}

// LoadSessionMessages reads a session's history. A missing file is an empty history.
func (c *Config) LoadSessionMessages(sessionID string) ([]Message, error) {
	path := c.SessionMessagesPath(sessionID)
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read messages for %s: %w", sessionID, err)
	}

	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages for %s: %w", sessionID, err)
	}
	return messages, nil
}

// SaveSessionMessages writes a session's history, dropping the oldest
// messages until at most maxLines lines of content remain.
func (c *Config) SaveSessionMessages(sessionID string, messages []Message, maxLines int) error {
	path := c.SessionMessagesPath(sessionID)
	if path == "" {
		return nil
	}

	messages = truncateMessages(messages, maxLines)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create sessions dir: %w", err)
	}
	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode messages for %s: %w", sessionID, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write messages for %s: %w", sessionID, err)
	}
	return nil
}

// DeleteSessionMessages removes a session's history file
func (c *Config) DeleteSessionMessages(sessionID string) error {
	path := c.SessionMessagesPath(sessionID)
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete messages for %s: %w", sessionID, err)
	}
	return nil
}

// truncateMessages keeps the newest messages whose combined line count fits in maxLines
func truncateMessages(messages []Message, maxLines int) []Message {
	if maxLines <= 0 {
		return messages
	}
	lines := 0
	for i := len(messages) - 1; i >= 0; i-- {
		lines += strings.Count(messages[i].Content, "\n") + 1
		if lines > maxLines {
			return messages[i+1:]
		}
	}
	return messages
}
