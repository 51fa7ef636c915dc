package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	perrors "github.com/zhubert/sidechat/internal/errors"
)

// Config holds the application configuration
type Config struct {
	Preferences

	Sessions            []Session `json:"sessions"`
	CurrentSessionIndex int       `json:"current_session_index"`
	LastSeenVersion     string    `json:"last_seen_version,omitempty"` // Last version the user has run

	mu          sync.RWMutex
	filePath    string
	subscribers []subscriber
	nextSubID   int
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigDirName), nil
}

// DefaultPath returns the path to the config file under the user's home directory
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// New returns an empty config bound to path. Nothing is read from disk.
func New(path string) *Config {
	cfg := &Config{
		Sessions: []Session{},
		filePath: path,
	}
	cfg.ensureInitialized()
	return cfg
}

// Load reads the config from the default path, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, or returns a fresh config bound to path if the file doesn't exist
func LoadFrom(path string) (*Config, error) {
	cfg := New(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	// Ensure slices are initialized and defaults applied after unmarshaling.
	// This must happen before Validate() since Validate() only reads.
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized fills in defaults for values absent from the file.
//
// Thread-safety: NOT thread-safe; only called while the Config is still
// private to New/LoadFrom.
func (c *Config) ensureInitialized() {
	if c.Sessions == nil {
		c.Sessions = []Session{}
	}
	if c.SidebarWidth == 0 {
		c.SidebarWidth = DefaultSidebarWidth
	}
	if c.CurrentSessionIndex >= len(c.Sessions) {
		c.CurrentSessionIndex = len(c.Sessions) - 1
	}
	if c.CurrentSessionIndex < 0 {
		c.CurrentSessionIndex = 0
	}
}

// Validate checks that the config is internally consistent.
// This is a read-only operation - call ensureInitialized() first if needed.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.SidebarWidth < 0 {
		return perrors.ConfigInvalid(fmt.Sprintf("sidebar width must not be negative, got %d", c.SidebarWidth))
	}

	seenIDs := make(map[string]bool)
	for _, sess := range c.Sessions {
		if sess.ID == "" {
			return perrors.ConfigInvalid("session with empty ID found")
		}
		if seenIDs[sess.ID] {
			return perrors.ConfigInvalid(fmt.Sprintf("duplicate session ID: %s", sess.ID))
		}
		seenIDs[sess.ID] = true
	}

	if len(c.Sessions) > 0 && (c.CurrentSessionIndex < 0 || c.CurrentSessionIndex >= len(c.Sessions)) {
		return perrors.ConfigInvalid(fmt.Sprintf("current session index %d out of range", c.CurrentSessionIndex))
	}

	return nil
}

// Path returns the file the config is persisted to
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return perrors.ConfigSaveFailed("", fmt.Errorf("config has no file path"))
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetLastSeenVersion returns the last version the user has run
func (c *Config) GetLastSeenVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastSeenVersion
}

// SetLastSeenVersion sets the last version the user has run
func (c *Config) SetLastSeenVersion(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastSeenVersion = version
}
