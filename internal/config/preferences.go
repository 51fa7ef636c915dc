package config

import (
	"encoding/json"
	"os"

	perrors "github.com/zhubert/sidechat/internal/errors"
	"github.com/zhubert/sidechat/internal/logger"
)

// Preferences holds the user-tunable settings that UI components observe.
// It is embedded in Config so its fields are stored at the top level of config.json.
type Preferences struct {
	SidebarWidth             int    `json:"sidebar_width,omitempty"`                // Logical sidebar width in columns
	Theme                    string `json:"theme,omitempty"`                        // UI theme name (e.g., "dark-purple", "nord")
	NotificationsEnabled     bool   `json:"notifications_enabled,omitempty"`        // Desktop toasts for sidebar actions
	DontShowMaskSplashScreen bool   `json:"dont_show_mask_splash_screen,omitempty"` // New chat skips the mask picker
}

type subscriber struct {
	id int
	fn func(Preferences)
}

// Read returns a snapshot of the current preferences
func (c *Config) Read() Preferences {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Preferences
}

// Update applies patch to a copy of the preferences, stores the result and
// notifies subscribers with the new snapshot. Subscribers run after the lock
// is released, in subscription order.
func (c *Config) Update(patch func(p *Preferences)) {
	c.mu.Lock()
	draft := c.Preferences
	patch(&draft)
	c.Preferences = draft
	subs := make([]subscriber, len(c.subscribers))
	copy(subs, c.subscribers)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(draft)
	}
}

// Subscribe registers fn to be called after every Update. The returned
// function removes the subscription; calling it more than once is harmless.
func (c *Config) Subscribe(fn func(Preferences)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextSubID++
	id := c.nextSubID
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subscribers {
			if s.id == id {
				c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
				return
			}
		}
	}
}

// SubscriberCount returns the number of active subscriptions
func (c *Config) SubscriberCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subscribers)
}

// GetSidebarWidth returns the persisted sidebar width
func (c *Config) GetSidebarWidth() int {
	return c.Read().SidebarWidth
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	return c.Read().Theme
}

// GetNotificationsEnabled returns whether desktop toasts are enabled
func (c *Config) GetNotificationsEnabled() bool {
	return c.Read().NotificationsEnabled
}

// GetDontShowMaskSplashScreen returns whether new chats skip the mask picker
func (c *Config) GetDontShowMaskSplashScreen() bool {
	return c.Read().DontShowMaskSplashScreen
}

// Reload re-reads the preferences from disk and, if they differ from the
// in-memory values, applies them through Update so subscribers observe the
// change. Sessions are owned by the running process and are not reloaded.
// Returns true if anything changed.
func (c *Config) Reload() (bool, error) {
	path := c.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		return false, perrors.ConfigLoadFailed(path, err)
	}

	var onDisk struct {
		Preferences
	}
	if err := json.Unmarshal(data, &onDisk); err != nil {
		return false, perrors.ConfigLoadFailed(path, err)
	}
	if onDisk.SidebarWidth <= 0 {
		onDisk.SidebarWidth = DefaultSidebarWidth
	}

	if onDisk.Preferences == c.Read() {
		return false, nil
	}

	logger.WithComponent("config").Info("preferences changed on disk",
		"path", path,
		"sidebarWidth", onDisk.SidebarWidth,
		"theme", onDisk.Theme,
	)
	c.Update(func(p *Preferences) { *p = onDisk.Preferences })
	return true, nil
}
