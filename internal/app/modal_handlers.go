package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/sidechat/internal/config"
	"github.com/zhubert/sidechat/internal/keys"
	"github.com/zhubert/sidechat/internal/logger"
	"github.com/zhubert/sidechat/internal/notification"
	"github.com/zhubert/sidechat/internal/ui"
	"github.com/zhubert/sidechat/internal/ui/modals"
)

// handleModalKey routes modal key events to the appropriate handler based on modal state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	case *modals.MaskPickerState:
		return m.handleMaskPickerModal(key, msg, s)
	case *modals.ConfirmDeleteState:
		return m.handleConfirmDeleteModal(key, msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	case *modals.ChangelogState:
		return m.handleChangelogModal(key, msg)
	}

	if key == keys.Escape {
		m.modal.Hide()
		return m, nil
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleSettingsModal handles key events for the Settings modal.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.closeRouteModal()
		return m, nil
	case keys.Enter:
		width, ok := state.GetSidebarWidth()
		if !ok {
			m.modal.SetError(fmt.Sprintf("Sidebar width must be between %d and %d",
				m.limits.Narrow, m.limits.Max))
			return m, nil
		}

		if state.ThemeChanged() {
			ui.SetThemeByName(state.GetSelectedTheme())
		}
		m.config.Update(func(p *config.Preferences) {
			p.SidebarWidth = width
			p.Theme = state.GetSelectedTheme()
			p.NotificationsEnabled = state.NotificationsEnabled
			p.DontShowMaskSplashScreen = state.DontShowMaskSplashScreen
		})
		logger.WithComponent("app").Info("settings saved",
			"theme", state.GetSelectedTheme(),
			"sidebarWidth", width,
			"notifications", state.NotificationsEnabled,
			"skipMasks", state.DontShowMaskSplashScreen,
		)

		m.closeRouteModal()
		m.updateSizes()
		if cmd := m.persistPreferences(); cmd != nil {
			return m, cmd
		}
		return m, m.ShowFlashSuccess("Settings saved")
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleMaskPickerModal handles key events for the new chat mask picker.
func (m *Model) handleMaskPickerModal(key string, msg tea.KeyPressMsg, state *modals.MaskPickerState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.closeRouteModal()
		return m, nil
	case keys.Enter:
		if state.DontShowAgain() {
			m.config.Update(func(p *config.Preferences) {
				p.DontShowMaskSplashScreen = true
			})
		}
		m.modal.Hide()
		return m, m.createChat(state.GetSelectedMask())
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleConfirmDeleteModal handles key events for the Confirm Delete modal.
func (m *Model) handleConfirmDeleteModal(key string, msg tea.KeyPressMsg, state *modals.ConfirmDeleteState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.modal.Hide()
		if !state.Confirmed() {
			return m, nil
		}
		return m, m.deleteChat(state.Index, state.Topic)
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// deleteChat removes the chat at index. The chat pane follows the new selection.
func (m *Model) deleteChat(index int, topic string) tea.Cmd {
	if err := m.store.DeleteSession(index); err != nil {
		logger.WithComponent("app").Error("failed to delete chat", "index", index, "error", err)
		return m.ShowFlashError("Failed to delete chat")
	}

	if m.config.GetNotificationsEnabled() {
		if err := notification.SessionDeleted(topic); err != nil {
			logger.WithComponent("app").Debug("delete notification failed", "error", err)
		}
	}

	m.activeID = ""
	if m.route == RouteChat {
		if sess, ok := m.store.Current(); ok {
			m.showSession(sess)
		}
	}
	m.syncSessions()
	return tea.Batch(m.saveSessions(), m.ShowFlashInfo("Deleted \""+topic+"\""))
}

// handleChangelogModal handles key events for the What's New modal.
func (m *Model) handleChangelogModal(key string, msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape, keys.Enter, "q":
		m.modal.Hide()
		return m, nil
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal handles key events for the Help modal.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		// Trigger the selected shortcut
		shortcut := state.GetSelectedShortcut()
		if shortcut != nil {
			m.modal.Hide()
			triggered := shortcut.Key
			return m, func() tea.Msg {
				return modals.HelpShortcutTriggeredMsg{Key: triggered}
			}
		}
		return m, nil
	}
	// Forward navigation keys to the modal
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpShortcutTrigger handles shortcuts triggered from the help modal.
// It normalizes display keys and delegates to the shortcut registry.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	normalizedKey := normalizeHelpDisplayKey(key)
	if normalizedKey == "" {
		return m, nil // Display-only shortcut, no action
	}
	result, cmd, _ := m.ExecuteShortcut(normalizedKey)
	return result, cmd
}

// normalizeHelpDisplayKey converts help modal display keys to actual key values.
// Returns empty string for display-only shortcuts that shouldn't be executed.
func normalizeHelpDisplayKey(displayKey string) string {
	for _, s := range DisplayOnlyShortcuts {
		if s.DisplayKey == displayKey {
			return ""
		}
	}
	for _, s := range ShortcutRegistry {
		if s.DisplayKey != "" && s.DisplayKey == displayKey {
			return s.Key
		}
	}
	return strings.ToLower(displayKey)
}
