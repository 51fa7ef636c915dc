package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/sidechat/internal/keys"
	"github.com/zhubert/sidechat/internal/logger"
	"github.com/zhubert/sidechat/internal/surface"
	"github.com/zhubert/sidechat/internal/ui"
	"github.com/zhubert/sidechat/internal/ui/modals"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	case tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.BlurMsg:
		return m, m.dispatchPointer(msg)

	case tea.MouseWheelMsg:
		return m, m.handleMouseWheel(msg)

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case ui.SelectChatMsg:
		m.selectChat(msg.Index)
		return m, nil

	case ui.FlashTickMsg:
		return m, m.handleFlashTick()

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	case OpenExternalMsg:
		return m, m.handleOpenExternal(msg)

	case ExternalOpenedMsg:
		return m, m.handleExternalOpened(msg)

	case ConfigFileChangedMsg:
		return m, m.handleConfigFileChanged()
	}

	// Anything else (cursor blinks, etc.) goes to the modal or the focused panel
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}
	return m, m.updateFocusedPanel(msg)
}

// updateFocusedPanel forwards msg to the focused panel
func (m *Model) updateFocusedPanel(msg tea.Msg) tea.Cmd {
	if m.focus == FocusSidebar {
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		return cmd
	}
	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	return cmd
}

// handleResize re-classifies the viewport and lays the panels out again
func (m *Model) handleResize() {
	if m.classifier.SetWidth(m.width) {
		logger.WithComponent("app").Info("viewport class changed",
			"width", m.width, "mobile", m.classifier.IsMobile())
	}
	m.projector.ViewportChanged()
	m.updateSizes()
}

// handleKeyPress handles all keyboard input
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.WithComponent("app").Debug("key press",
		"key", key, "focus", m.focus, "route", m.route, "modalVisible", m.modal.IsVisible())

	// Handle ctrl+c specially - always quits
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	// Window listeners see every key first, like a global keydown handler
	if ev, ok := surface.FromTea(msg); ok && m.window.Dispatch(ev) {
		m.syncSessions()
		return m, nil
	}

	// Handle modal first if visible
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// Search input owns the keyboard until it is closed
	if m.sidebar.IsSearchMode() {
		return m, m.updateFocusedPanel(msg)
	}

	if m.focus == FocusChat {
		if result, cmd, handled := m.handleChatFocusedKeys(key); handled {
			return result, cmd
		}
	}

	// Try executing from shortcut registry
	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	if m.focus == FocusSidebar && key == keys.Enter {
		m.openCurrentChat()
		return m, nil
	}

	return m, m.updateFocusedPanel(msg)
}

// handleChatFocusedKeys handles keys that mean something only while typing in a chat
func (m *Model) handleChatFocusedKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case keys.Escape:
		m.setFocus(FocusSidebar)
		return m, nil, true
	case keys.Enter:
		if !m.chat.HasSession() {
			return m, nil, false
		}
		result, cmd := m.sendMessage()
		return result, cmd, true
	}
	return m, nil, false
}

// sendMessage stores the typed text as a user message of the open chat
func (m *Model) sendMessage() (tea.Model, tea.Cmd) {
	content := strings.TrimSpace(m.chat.GetInput())
	if content == "" || m.activeID == "" {
		return m, nil
	}

	log := logger.WithSession(m.activeID)
	if err := m.store.AppendMessage(m.activeID, "user", content); err != nil {
		log.Error("failed to append message", "error", err)
		return m, m.ShowFlashError("Failed to save message")
	}
	log.Debug("message sent", "length", len(content))

	m.chat.ClearInput()
	if msgs, err := m.store.Messages(m.activeID); err == nil && len(msgs) > 0 {
		m.chat.AppendMessage(msgs[len(msgs)-1])
	}
	m.syncSessions()
	return m, m.saveSessions()
}

// selectChat makes the chat at index current and opens it
func (m *Model) selectChat(index int) {
	if !m.store.Select(index) {
		return
	}
	sess, _ := m.store.Current()
	m.showSession(sess)
	m.setRoute(RouteChat)
	m.syncSessions()
}

// handleConfigFileChanged reloads preferences edited outside the app
func (m *Model) handleConfigFileChanged() tea.Cmd {
	changed, err := m.config.Reload()
	if err != nil {
		logger.WithComponent("app").Warn("failed to reload config", "error", err)
		return m.ShowFlashWarning("Config file could not be read")
	}
	// Reloaded values are already on disk
	m.prefsDirty = false
	if !changed {
		return nil
	}
	if theme := m.config.GetTheme(); theme != "" && theme != string(ui.CurrentThemeName()) {
		ui.SetThemeByName(theme)
	}
	m.updateSizes()
	return m.ShowFlashInfo("Settings reloaded")
}
