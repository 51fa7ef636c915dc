package app

import (
	"strings"
	"testing"

	"github.com/zhubert/sidechat/internal/config"
	"github.com/zhubert/sidechat/internal/keys"
	"github.com/zhubert/sidechat/internal/notification"
	"github.com/zhubert/sidechat/internal/ui/modals"
)

// recordNotifications captures desktop notifications for the test
func recordNotifications(t *testing.T) *[]string {
	t.Helper()
	var sent []string
	notification.SetNotifier(func(_, message string, _ any) error {
		sent = append(sent, message)
		return nil
	})
	t.Cleanup(func() {
		notification.SetNotifier(func(string, string, any) error { return nil })
	})
	return &sent
}

// =============================================================================
// Settings
// =============================================================================

func TestSettings_EscapeReturnsToPreviousRoute(t *testing.T) {
	m, _ := testModelWithSize(t, testConfig(t), 120, 40)
	sendKey(m, keys.Tab)
	sendKey(m, keys.Escape)

	sendKey(m, "s")
	if m.Route() != RouteSettings {
		t.Fatalf("route = %v, want settings", m.Route())
	}
	sendKey(m, keys.Escape)

	if m.modal.IsVisible() {
		t.Error("esc should close settings")
	}
	if m.Route() != RouteChat {
		t.Errorf("route = %v, want chat", m.Route())
	}
}

func TestSettings_InvalidWidthShowsError(t *testing.T) {
	cfg := testConfig(t)
	m, _ := testModelWithSize(t, cfg, 120, 40)

	sendKey(m, "s")
	state, ok := m.modal.State.(*modals.SettingsState)
	if !ok {
		t.Fatalf("modal = %T, want settings", m.modal.State)
	}
	state.SetSidebarWidthText("5")
	sendKey(m, keys.Enter)

	if !m.modal.IsVisible() {
		t.Fatal("settings should stay open")
	}
	if !strings.Contains(m.modal.GetError(), "between 8 and 64") {
		t.Errorf("error = %q", m.modal.GetError())
	}
	if cfg.GetSidebarWidth() != config.DefaultSidebarWidth {
		t.Errorf("width = %d, want unchanged", cfg.GetSidebarWidth())
	}
}

func TestSettings_SaveAppliesWidth(t *testing.T) {
	cfg := testConfig(t)
	m, _ := testModelWithSize(t, cfg, 120, 40)

	sendKey(m, "s")
	m.modal.State.(*modals.SettingsState).SetSidebarWidthText("40")
	cmd := sendKey(m, keys.Enter)

	if m.modal.IsVisible() || m.Route() != RouteHome {
		t.Errorf("settings should close back to home, route = %v", m.Route())
	}
	if cmd == nil {
		t.Error("expected a flash command")
	}
	if got := m.sidebar.Width(); got != 40 {
		t.Errorf("sidebar width = %d, want 40", got)
	}
	if got := savedSidebarWidth(t, cfg); got != 40 {
		t.Errorf("saved width = %d, want 40", got)
	}
}

func TestSettings_NarrowWidthCollapses(t *testing.T) {
	cfg := testConfig(t)
	m, _ := testModelWithSize(t, cfg, 120, 40)

	sendKey(m, "s")
	m.modal.State.(*modals.SettingsState).SetSidebarWidthText("12")
	sendKey(m, keys.Enter)

	if got := m.sidebar.Width(); got != config.NarrowSidebarWidth {
		t.Errorf("sidebar width = %d, want %d", got, config.NarrowSidebarWidth)
	}
}

// =============================================================================
// Mask picker
// =============================================================================

func TestMaskPicker_EnterCreatesChat(t *testing.T) {
	cfg := testConfigWithSessions(t, 1)
	m, _ := testModelWithSize(t, cfg, 120, 40)

	sendKey(m, "n")
	if _, ok := m.modal.State.(*modals.MaskPickerState); !ok {
		t.Fatalf("modal = %T, want mask picker", m.modal.State)
	}
	if m.Route() != RouteNewChat {
		t.Errorf("route = %v, want new-chat", m.Route())
	}

	sendKey(m, keys.Enter)

	if m.store.Len() != 2 {
		t.Fatalf("sessions = %d, want 2", m.store.Len())
	}
	sess, _ := m.store.Current()
	if sess.ID != "new-1" || m.activeID != "new-1" {
		t.Errorf("current/active = %q/%q, want new-1", sess.ID, m.activeID)
	}
	if m.Route() != RouteChat || m.Focus() != FocusChat {
		t.Errorf("route/focus = %v/%v, want chat/chat", m.Route(), m.Focus())
	}
	if m.modal.IsVisible() {
		t.Error("picker should close")
	}
}

func TestMaskPicker_EscapeCancels(t *testing.T) {
	cfg := testConfigWithSessions(t, 1)
	m, _ := testModelWithSize(t, cfg, 120, 40)

	sendKey(m, "m")
	sendKey(m, keys.Escape)

	if m.store.Len() != 1 {
		t.Errorf("sessions = %d, want 1", m.store.Len())
	}
	if m.Route() != RouteHome {
		t.Errorf("route = %v, want home", m.Route())
	}
}

func TestNewChat_SkipsPickerWhenDisabled(t *testing.T) {
	cfg := testConfigWithSessions(t, 1)
	cfg.Update(func(p *config.Preferences) { p.DontShowMaskSplashScreen = true })
	m, _ := testModelWithSize(t, cfg, 120, 40)

	sendKey(m, "n")

	if m.modal.IsVisible() {
		t.Error("picker should be skipped")
	}
	if m.store.Len() != 2 || m.activeID != "new-1" {
		t.Errorf("sessions/active = %d/%q, want 2/new-1", m.store.Len(), m.activeID)
	}
}

// =============================================================================
// Confirm delete
// =============================================================================

func TestConfirmDelete_DeletesSelectedChat(t *testing.T) {
	cfg := testConfigWithSessions(t, 3)
	cfg.Update(func(p *config.Preferences) { p.NotificationsEnabled = true })
	sent := recordNotifications(t)
	m, _ := testModelWithSize(t, cfg, 120, 40)

	sendKey(m, "d")
	if _, ok := m.modal.State.(*modals.ConfirmDeleteState); !ok {
		t.Fatalf("modal = %T, want confirm delete", m.modal.State)
	}
	sendKey(m, "y")
	sendKey(m, keys.Enter)

	if m.store.Len() != 2 {
		t.Fatalf("sessions = %d, want 2", m.store.Len())
	}
	if m.config.GetSession("chat-1") != nil {
		t.Error("chat-1 should be gone")
	}
	if len(*sent) != 1 || !strings.Contains((*sent)[0], "Topic 1") {
		t.Errorf("notifications = %v", *sent)
	}
	if !m.footer.HasFlash() {
		t.Error("expected a flash")
	}
}

func TestConfirmDelete_CancelKeepsChat(t *testing.T) {
	cfg := testConfigWithSessions(t, 2)
	sent := recordNotifications(t)
	m, _ := testModelWithSize(t, cfg, 120, 40)

	sendKey(m, "d")
	sendKey(m, keys.Enter)

	if m.store.Len() != 2 {
		t.Errorf("sessions = %d, want 2", m.store.Len())
	}
	if m.modal.IsVisible() {
		t.Error("modal should close")
	}
	if len(*sent) != 0 {
		t.Errorf("notifications = %v, want none", *sent)
	}
}

func TestConfirmDelete_OpenChatFollowsSelection(t *testing.T) {
	cfg := testConfigWithSessions(t, 2)
	m, _ := testModelWithSize(t, cfg, 120, 40)
	sendKey(m, keys.Tab)
	sendKey(m, keys.Escape)

	sendKey(m, "d")
	sendKey(m, "y")
	sendKey(m, keys.Enter)

	if m.activeID != "chat-2" {
		t.Errorf("active chat = %q, want chat-2", m.activeID)
	}
}

func TestConfirmDelete_LastChatIsReplaced(t *testing.T) {
	cfg := testConfigWithSessions(t, 1)
	m, _ := testModelWithSize(t, cfg, 120, 40)

	sendKey(m, "d")
	sendKey(m, "y")
	sendKey(m, keys.Enter)

	if m.store.Len() != 1 {
		t.Fatalf("sessions = %d, want 1", m.store.Len())
	}
	if sess, _ := m.store.Current(); sess.ID == "chat-1" {
		t.Error("deleted chat should be replaced by a fresh one")
	}
}
