package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/sidechat/internal/changelog"
	"github.com/zhubert/sidechat/internal/clipboard"
	"github.com/zhubert/sidechat/internal/launch"
	"github.com/zhubert/sidechat/internal/logger"
	"github.com/zhubert/sidechat/internal/notification"
	"github.com/zhubert/sidechat/internal/ui"
	"github.com/zhubert/sidechat/internal/ui/modals"
)

// WeChatLaunchDelay is how long the contact action waits after copying the
// id before opening WeChat, so the toast can be read first.
const WeChatLaunchDelay = time.Second

// OpenExternalMsg asks the app to open Target outside the terminal
type OpenExternalMsg struct {
	Target string
}

// ExternalOpenedMsg reports the outcome of opening an external target
type ExternalOpenedMsg struct {
	Target string
	Err    error
}

// ConfigFileChangedMsg is sent when the config file was written on disk
type ConfigFileChangedMsg struct{}

// handleSidebarAction performs the action of a clicked sidebar control
func (m *Model) handleSidebarAction(hit ui.SidebarHit) (tea.Model, tea.Cmd) {
	switch hit.Action {
	case ui.ActionContact:
		return m, m.copyContact()
	case ui.ActionMasks:
		m.showMaskPicker()
		return m, nil
	case ui.ActionPlugins:
		return m, openExternal(launch.ShopURL)
	case ui.ActionSelectChat:
		m.setFocus(FocusSidebar)
		m.selectChat(hit.Index)
		return m, nil
	case ui.ActionHome:
		m.setRoute(RouteHome)
		return m, nil
	case ui.ActionDelete:
		m.confirmDelete(m.store.CurrentIndex())
		return m, nil
	case ui.ActionSettings:
		m.showSettings()
		return m, nil
	case ui.ActionNewChat:
		return m, m.newChat()
	}
	return m, nil
}

// copyContact copies the WeChat id, tells the user, and opens WeChat after
// WeChatLaunchDelay
func (m *Model) copyContact() tea.Cmd {
	log := logger.WithComponent("app")
	if err := clipboard.WriteText(launch.ContactID); err != nil {
		log.Warn("failed to copy contact id", "error", err)
		return m.ShowFlashError("Could not copy the WeChat id")
	}

	if m.config.GetNotificationsEnabled() {
		if err := notification.ContactCopied(launch.ContactID); err != nil {
			log.Debug("contact notification failed", "error", err)
		}
	}

	return tea.Batch(
		m.ShowFlashSuccess("Copied WeChat id "+launch.ContactID+", opening WeChat..."),
		tea.Tick(WeChatLaunchDelay, func(time.Time) tea.Msg {
			return OpenExternalMsg{Target: launch.WeChatURL}
		}),
	)
}

// openExternal returns a command that opens target with the system handler
func openExternal(target string) tea.Cmd {
	return func() tea.Msg {
		return ExternalOpenedMsg{Target: target, Err: launch.Open(target)}
	}
}

func (m *Model) handleOpenExternal(msg OpenExternalMsg) tea.Cmd {
	return openExternal(msg.Target)
}

func (m *Model) handleExternalOpened(msg ExternalOpenedMsg) tea.Cmd {
	if msg.Err == nil {
		logger.WithComponent("app").Debug("opened external target", "target", msg.Target)
		return nil
	}
	logger.WithComponent("app").Warn("failed to open external target",
		"target", msg.Target, "error", msg.Err)
	return m.ShowFlashError("Could not open " + msg.Target)
}

// newChat starts a chat right away when the mask picker is turned off, and
// shows the picker otherwise
func (m *Model) newChat() tea.Cmd {
	if !m.config.GetDontShowMaskSplashScreen() {
		m.showMaskPicker()
		return nil
	}
	return m.createChat("")
}

// createChat creates a chat with mask and opens it
func (m *Model) createChat(mask string) tea.Cmd {
	m.store.NewSession(mask)
	m.openCurrentChat()
	m.syncSessions()
	return m.saveSessions()
}

// showMaskPicker opens the new-chat route with its mask picker
func (m *Model) showMaskPicker() {
	m.setRoute(RouteNewChat)
	m.modal.Show(modals.NewMaskPickerState(modals.DefaultMasks))
}

// showSettings opens the settings route
func (m *Model) showSettings() {
	m.setRoute(RouteSettings)
	prefs := m.config.Read()
	m.modal.Show(modals.NewSettingsState(
		ui.ThemeChoices(),
		string(ui.CurrentThemeName()),
		m.limits.Clamp(prefs.SidebarWidth),
		m.limits.Narrow,
		m.limits.Max,
		prefs.NotificationsEnabled,
		prefs.DontShowMaskSplashScreen,
	))
}

// confirmDelete asks before deleting the chat at index
func (m *Model) confirmDelete(index int) {
	sessions := m.store.Sessions()
	if index < 0 || index >= len(sessions) {
		return
	}
	m.modal.Show(modals.NewConfirmDeleteState(sessions[index].Topic, index))
}

// showChangesSince opens the What's New modal with the releases after
// lastSeen, up to the running version. Nothing shows when there are none.
func (m *Model) showChangesSince(lastSeen string) {
	changes := changelog.Since(lastSeen, m.version, changelog.Parse(changelog.Content))
	if len(changes) == 0 {
		return
	}
	logger.WithComponent("app").Info("showing changelog",
		"from", lastSeen, "to", m.version, "entries", len(changes))
	m.showChangelog(changes)
}

func (m *Model) showChangelog(entries []changelog.Entry) {
	items := make([]modals.ChangelogEntry, len(entries))
	for i, e := range entries {
		items[i] = modals.ChangelogEntry{Version: e.Version, Date: e.Date, Changes: e.Changes}
	}
	m.modal.Show(modals.NewChangelogState(items))
}
