package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/sidechat/internal/config"
	"github.com/zhubert/sidechat/internal/logger"
	"github.com/zhubert/sidechat/internal/session"
	"github.com/zhubert/sidechat/internal/sidebar"
	"github.com/zhubert/sidechat/internal/surface"
	"github.com/zhubert/sidechat/internal/ui"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusChat
)

// Route is the page shown next to the sidebar
type Route int

const (
	RouteHome Route = iota
	RouteChat
	RouteNewChat
	RouteSettings
)

// String returns a human-readable name for the route
func (r Route) String() string {
	switch r {
	case RouteHome:
		return "home"
	case RouteChat:
		return "chat"
	case RouteNewChat:
		return "new-chat"
	case RouteSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	store   *session.Store

	// Global event targets shared with the sidebar core
	window *surface.Window
	doc    *surface.Document

	classifier *sidebar.Classifier
	controller *sidebar.Controller
	projector  *sidebar.Projector
	hotkeys    *sidebar.HotKeys
	limits     sidebar.Limits

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	chat    *ui.Chat
	modal   *ui.Modal

	width  int
	height int
	focus  Focus

	route     Route
	prevRoute Route // Route to return to when a route modal closes

	activeID string // Session shown in the chat pane, empty on Home

	// Preferences changed since the last save
	prefsDirty  bool
	unsubscribe func()
}

// New creates a new app model
func New(cfg *config.Config, version string, opts ...Option) *Model {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:     cfg,
		version:    version,
		store:      session.NewStore(cfg, o.storeOptions()...),
		window:     surface.NewWindow(),
		doc:        surface.NewDocument(),
		classifier: sidebar.NewClassifier(),
		limits:     o.limits,
		header:     ui.NewHeader(),
		footer:     ui.NewFooter(),
		sidebar:    ui.NewSidebar(),
		chat:       ui.NewChat(),
		modal:      ui.NewModal(),
		focus:      FocusSidebar,
		route:      RouteHome,
	}

	m.controller = sidebar.NewController(cfg, m.window,
		sidebar.WithClock(o.clock), sidebar.WithLimits(o.limits))
	m.projector = sidebar.NewProjector(cfg, m.classifier, m.doc,
		sidebar.WithProjectorLimits(o.limits))
	m.hotkeys = sidebar.NewHotKeys(m.store)
	m.hotkeys.Mount(m.window)

	m.unsubscribe = cfg.Subscribe(func(config.Preferences) {
		m.prefsDirty = true
	})

	m.footer.SetClock(o.clock)
	m.sidebar.SetFocused(true)
	m.syncSessions()
	m.showChangesSince(cfg.GetLastSeenVersion())
	m.header.SetRoute(m.route.String())

	logger.WithComponent("app").Info("app created",
		"version", version,
		"sessions", m.store.Len(),
		"sidebarWidth", cfg.GetSidebarWidth(),
	)
	return m
}

// Init starts the app. Bubble Tea sends the first WindowSizeMsg on its own.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Close releases listeners and subscriptions and saves unsaved preferences.
func (m *Model) Close() {
	m.controller.Close()
	m.hotkeys.Unmount()
	m.projector.Close()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	if m.prefsDirty {
		if err := m.config.Save(); err != nil {
			logger.WithComponent("app").Error("failed to save config on exit", "error", err)
		}
		m.prefsDirty = false
	}
	logger.WithComponent("app").Debug("app closed", "listeners", m.window.Total())
}

// Route returns the current route
func (m *Model) Route() Route {
	return m.route
}

// Focus returns the focused panel
func (m *Model) Focus() Focus {
	return m.focus
}

// setRoute switches the page next to the sidebar
func (m *Model) setRoute(route Route) {
	if route == m.route {
		return
	}
	logger.WithComponent("app").Debug("route changed", "from", m.route, "to", route)
	if route == RouteNewChat || route == RouteSettings {
		m.prevRoute = m.route
	}
	m.route = route
	m.header.SetRoute(route.String())
	if route == RouteHome {
		m.activeID = ""
		m.chat.ClearSession()
		m.header.SetTopic("")
		m.setFocus(FocusSidebar)
	}
	// On a phone-sized terminal the sidebar and the chat pane take turns
	m.updateSizes()
}

// closeRouteModal hides the modal of a route modal and returns to the route
// it was opened from
func (m *Model) closeRouteModal() {
	m.modal.Hide()
	if m.route == RouteNewChat || m.route == RouteSettings {
		m.setRoute(m.prevRoute)
	}
}

// setFocus moves keyboard focus between the sidebar and the chat pane
func (m *Model) setFocus(focus Focus) {
	m.focus = focus
	m.sidebar.SetFocused(focus == FocusSidebar)
	m.chat.SetFocused(focus == FocusChat)
}

// toggleFocus switches focus between sidebar and chat. Moving to the chat
// pane opens the selected chat.
func (m *Model) toggleFocus() {
	if m.focus == FocusSidebar {
		m.openCurrentChat()
		return
	}
	m.setFocus(FocusSidebar)
}

// openCurrentChat shows the selected chat and focuses its input
func (m *Model) openCurrentChat() {
	sess, ok := m.store.Current()
	if !ok {
		return
	}
	m.showSession(sess)
	m.setRoute(RouteChat)
	m.setFocus(FocusChat)
}

// showSession loads a chat into the chat pane
func (m *Model) showSession(sess config.Session) {
	msgs, err := m.store.Messages(sess.ID)
	if err != nil {
		logger.WithSession(sess.ID).Warn("failed to load messages", "error", err)
	}
	m.activeID = sess.ID
	m.chat.SetSession(sess, msgs)
	m.header.SetTopic(sess.Topic)
}

// syncSessions pushes the session list to the sidebar and, when a chat is
// open, follows the selection into the chat pane
func (m *Model) syncSessions() {
	m.sidebar.SetSessions(m.store.Sessions(), m.store.CurrentIndex())

	sess, ok := m.store.Current()
	if !ok || m.route != RouteChat {
		return
	}
	if sess.ID != m.activeID {
		m.showSession(sess)
		return
	}
	m.header.SetTopic(sess.Topic)
}

// persistPreferences writes the config if preferences changed since the last save
func (m *Model) persistPreferences() tea.Cmd {
	if !m.prefsDirty {
		return nil
	}
	m.prefsDirty = false
	if err := m.config.Save(); err != nil {
		logger.WithComponent("app").Error("failed to save preferences", "error", err)
		return m.ShowFlashError("Failed to save settings")
	}
	return nil
}

// saveSessions writes the config after the session list changed
func (m *Model) saveSessions() tea.Cmd {
	m.prefsDirty = false
	if err := m.config.Save(); err != nil {
		logger.WithComponent("app").Error("failed to save sessions", "error", err)
		return m.ShowFlashError("Failed to save chats")
	}
	return nil
}
