package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/sidechat/internal/config"
	"github.com/zhubert/sidechat/internal/keys"
	"github.com/zhubert/sidechat/internal/ui/modals"
)

// =============================================================================
// ShortcutRegistry Tests
// =============================================================================

func TestShortcutRegistry_AllShortcutsHaveHandlers(t *testing.T) {
	for _, s := range ShortcutRegistry {
		if s.Handler == nil {
			t.Errorf("Shortcut %q has no handler", s.Key)
		}
		if s.Key == "" {
			t.Error("Shortcut has empty key")
		}
		if s.Description == "" {
			t.Errorf("Shortcut %q has no description", s.Key)
		}
		if s.Category == "" {
			t.Errorf("Shortcut %q has no category", s.Key)
		}
	}
}

func TestShortcutRegistry_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range ShortcutRegistry {
		if seen[s.Key] {
			t.Errorf("Duplicate shortcut key: %q", s.Key)
		}
		seen[s.Key] = true
	}
	if seen[helpShortcut.Key] {
		t.Error("Help shortcut key '?' duplicated in registry")
	}
}

func TestShortcutRegistry_ValidCategories(t *testing.T) {
	valid := make(map[string]bool)
	for _, c := range categoryOrder {
		valid[c] = true
	}
	for _, s := range append(ShortcutRegistry, DisplayOnlyShortcuts...) {
		if !valid[s.Category] {
			t.Errorf("Shortcut %q has invalid category: %q", s.Key+s.DisplayKey, s.Category)
		}
	}
}

// =============================================================================
// ExecuteShortcut Tests
// =============================================================================

func TestExecuteShortcut_ReturnsNotHandledForUnknownKey(t *testing.T) {
	m, _ := testModelWithSize(t, testConfig(t), 120, 40)

	if _, _, handled := m.ExecuteShortcut("F13"); handled {
		t.Error("unknown key should not be handled")
	}
}

func TestExecuteShortcut_SidebarGuard(t *testing.T) {
	m, _ := testModelWithSize(t, testConfig(t), 120, 40)
	sendKey(m, keys.Tab)

	if _, _, handled := m.ExecuteShortcut("n"); handled {
		t.Error("'n' should type into the chat while it is focused")
	}
	if _, _, handled := m.ExecuteShortcut("tab"); !handled {
		t.Error("tab should work from the chat pane")
	}
}

func TestExecuteShortcut_SearchModeSwallowsShortcuts(t *testing.T) {
	cfg := testConfigWithSessions(t, 3)
	m, _ := testModelWithSize(t, cfg, 120, 40)

	sendKey(m, "/")
	if !m.sidebar.IsSearchMode() {
		t.Fatal("'/' should open the search")
	}
	typeText(m, "2")
	sendKey(m, "q")
	if m.sidebar.SearchQuery() != "2q" {
		t.Errorf("query = %q, want 2q", m.sidebar.SearchQuery())
	}
}

func TestShortcut_ResizeKeys(t *testing.T) {
	tests := []struct {
		name  string
		start int
		keys  []string
		want  int
	}{
		{"grow", 32, []string{"]"}, 33},
		{"shrink", 32, []string{"[", "["}, 30},
		{"grow capped", config.MaxSidebarWidth, []string{"]"}, config.MaxSidebarWidth},
		{"shrink below min collapses", config.MinSidebarWidth, []string{"["}, config.NarrowSidebarWidth},
		{"grow from collapsed", config.NarrowSidebarWidth, []string{"]"}, config.MinSidebarWidth},
		{"toggle collapses", 40, []string{"\\"}, config.NarrowSidebarWidth},
		{"toggle twice restores default", 40, []string{"\\", "\\"}, config.DefaultSidebarWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Update(func(p *config.Preferences) { p.SidebarWidth = tt.start })
			m, _ := testModelWithSize(t, cfg, 120, 40)

			for _, k := range tt.keys {
				sendKey(m, k)
			}

			if got := cfg.GetSidebarWidth(); got != tt.want {
				t.Errorf("width = %d, want %d", got, tt.want)
			}
			if got := m.sidebar.Width(); got != tt.want {
				t.Errorf("rendered width = %d, want %d", got, tt.want)
			}
			if got := savedSidebarWidth(t, cfg); got != tt.want {
				t.Errorf("saved width = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHotKeys_SwitchChatFromAnywhere(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		focus Focus
		want  int
	}{
		{"alt+down", []string{keys.AltDown}, FocusSidebar, 1},
		{"ctrl+down", []string{keys.CtrlDown}, FocusSidebar, 1},
		{"alt+up wraps", []string{keys.AltUp}, FocusSidebar, 2},
		{"down wraps", []string{keys.AltDown, keys.AltDown, keys.AltDown}, FocusSidebar, 0},
		{"from chat pane", []string{keys.AltDown}, FocusChat, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfigWithSessions(t, 3)
			m, _ := testModelWithSize(t, cfg, 120, 40)
			if tt.focus == FocusChat {
				sendKey(m, keys.Tab)
			}

			for _, k := range tt.keys {
				sendKey(m, k)
			}

			if got := m.store.CurrentIndex(); got != tt.want {
				t.Errorf("current = %d, want %d", got, tt.want)
			}
			if got := m.sidebar.SelectedIndex(); got != tt.want {
				t.Errorf("sidebar selection = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHotKeys_FollowIntoOpenChat(t *testing.T) {
	cfg := testConfigWithSessions(t, 2)
	m, _ := testModelWithSize(t, cfg, 120, 40)
	sendKey(m, keys.Tab)

	sendKey(m, keys.AltDown)
	if m.activeID != "chat-2" {
		t.Errorf("active chat = %q, want chat-2", m.activeID)
	}
}

func TestHotKeys_PlainArrowsAreLeftAlone(t *testing.T) {
	cfg := testConfigWithSessions(t, 3)
	m, _ := testModelWithSize(t, cfg, 120, 40)

	m.Update(tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModShift})
	if m.store.CurrentIndex() != 0 {
		t.Errorf("current = %d, want 0", m.store.CurrentIndex())
	}
}

func TestShortcut_Help(t *testing.T) {
	m, _ := testModelWithSize(t, testConfig(t), 120, 40)

	sendKey(m, "?")
	if _, ok := m.modal.State.(*modals.HelpState); !ok {
		t.Fatalf("modal = %T, want help", m.modal.State)
	}
	sendKey(m, keys.Escape)
	if m.modal.IsVisible() {
		t.Error("esc should close help")
	}
}

func TestGetApplicableHelpSections(t *testing.T) {
	m, _ := testModelWithSize(t, testConfig(t), 120, 40)

	sections := m.getApplicableHelpSections(ShortcutRegistry, DisplayOnlyShortcuts)
	if len(sections) == 0 {
		t.Fatal("expected help sections")
	}
	if sections[0].Title != CategoryNavigation {
		t.Errorf("first section = %q, want %q", sections[0].Title, CategoryNavigation)
	}

	// With the chat focused, sidebar-only shortcuts drop out
	sendKey(m, keys.Tab)
	for _, sec := range m.getApplicableHelpSections(ShortcutRegistry, DisplayOnlyShortcuts) {
		for _, s := range sec.Shortcuts {
			if s.Key == "n" || s.Key == "?" {
				t.Errorf("%q should not be listed while the chat is focused", s.Key)
			}
		}
	}
}

func TestNormalizeHelpDisplayKey(t *testing.T) {
	tests := []struct {
		display string
		want    string
	}{
		{"Tab", "tab"},
		{"n", "n"},
		{"\\", "\\"},
		{"Enter", ""},
		{"Mouse drag", ""},
	}
	for _, tt := range tests {
		if got := normalizeHelpDisplayKey(tt.display); got != tt.want {
			t.Errorf("normalizeHelpDisplayKey(%q) = %q, want %q", tt.display, got, tt.want)
		}
	}
}

func TestHelpShortcutTriggered(t *testing.T) {
	m, _ := testModelWithSize(t, testConfig(t), 120, 40)

	m.Update(modals.HelpShortcutTriggeredMsg{Key: "s"})
	if _, ok := m.modal.State.(*modals.SettingsState); !ok {
		t.Errorf("modal = %T, want settings", m.modal.State)
	}
}
