package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/sidechat/internal/changelog"
	"github.com/zhubert/sidechat/internal/keys"
	"github.com/zhubert/sidechat/internal/launch"
	"github.com/zhubert/sidechat/internal/logger"
	"github.com/zhubert/sidechat/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key             string                              // The key binding (e.g., "n", "ctrl+f")
	DisplayKey      string                              // Display name in help (e.g., "Tab"); defaults to Key
	Description     string                              // Human-readable description
	Category        string                              // Section for help modal grouping
	RequiresSession bool                                // Must have a chat selected
	RequiresSidebar bool                                // Must not be in chat focus
	Handler         func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition       func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryChats      = "Chats"
	CategorySidebar    = "Sidebar"
	CategoryChat       = "Chat (when focused)"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryChats,
	CategorySidebar,
	CategoryChat,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help modal
// and be executable from both direct key presses and the help modal.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:         keys.Tab,
		DisplayKey:  "Tab",
		Description: "Switch between sidebar and chat",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleFocus,
	},
	{
		Key:             "/",
		Description:     "Search chats",
		Category:        CategoryNavigation,
		RequiresSidebar: true,
		Handler:         shortcutSearch,
	},
	{
		Key:             "h",
		Description:     "Go home",
		Category:        CategoryNavigation,
		RequiresSidebar: true,
		Handler:         shortcutHome,
	},

	// Chats
	{
		Key:             "n",
		Description:     "New chat",
		Category:        CategoryChats,
		RequiresSidebar: true,
		Handler:         shortcutNewChat,
	},
	{
		Key:             "m",
		Description:     "New chat from a mask",
		Category:        CategoryChats,
		RequiresSidebar: true,
		Handler:         shortcutMasks,
	},
	{
		Key:             "d",
		Description:     "Delete selected chat",
		Category:        CategoryChats,
		RequiresSidebar: true,
		RequiresSession: true,
		Handler:         shortcutDeleteChat,
	},

	// Sidebar
	{
		Key:             "[",
		Description:     "Narrow the sidebar",
		Category:        CategorySidebar,
		RequiresSidebar: true,
		Handler:         shortcutShrinkSidebar,
	},
	{
		Key:             "]",
		Description:     "Widen the sidebar",
		Category:        CategorySidebar,
		RequiresSidebar: true,
		Handler:         shortcutGrowSidebar,
	},
	{
		Key:             "\\",
		Description:     "Collapse or expand the sidebar",
		Category:        CategorySidebar,
		RequiresSidebar: true,
		Handler:         shortcutToggleSidebar,
	},
	{
		Key:             "c",
		Description:     "Copy WeChat id and open WeChat",
		Category:        CategorySidebar,
		RequiresSidebar: true,
		Handler:         shortcutContact,
	},
	{
		Key:             "p",
		Description:     "Open the plugin shop",
		Category:        CategorySidebar,
		RequiresSidebar: true,
		Handler:         shortcutPlugins,
	},

	// General
	{
		Key:             "s",
		Description:     "Settings",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         shortcutSettings,
	},
	{
		Key:             "w",
		Description:     "What's new",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         shortcutWhatsNew,
	},
	{
		Key:             "q",
		Description:     "Quit application",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         shortcutQuit,
	},
}

// helpShortcut is the "?" shortcut, which opens the help modal.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:             "?",
	Description:     "Show this help",
	Category:        CategoryGeneral,
	RequiresSidebar: true,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
// These are context-sensitive or informational entries.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "↑/↓ or j/k", Description: "Move through the chat list", Category: CategoryNavigation},
	{DisplayKey: "Alt/Ctrl+↑/↓", Description: "Switch chat from anywhere", Category: CategoryNavigation},
	{DisplayKey: "Enter", Description: "Open chat / Send message", Category: CategoryNavigation},
	{DisplayKey: "Mouse drag", Description: "Drag the sidebar edge to resize", Category: CategorySidebar},
	{DisplayKey: "Quick click", Description: "Click the sidebar edge to collapse or expand", Category: CategorySidebar},
	{DisplayKey: "PgUp/PgDn", Description: "Scroll the conversation", Category: CategoryChat},
	{DisplayKey: "Esc", Description: "Back to the sidebar", Category: CategoryChat},
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
// This is used to filter which shortcuts appear in the help modal.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresSidebar && m.focus == FocusChat {
		return false
	}
	if s.RequiresSession && m.store.Len() == 0 {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// It checks all guards (RequiresSidebar, RequiresSession, Condition) before executing.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	log := logger.WithComponent("shortcuts")

	// If sidebar is in search mode, don't process shortcuts - let keys go to search input
	if m.sidebar.IsSearchMode() {
		log.Debug("sidebar in search mode, key goes to search input", "key", key)
		return m, nil, false
	}

	// Handle help shortcut specially (defined outside registry to avoid init cycle)
	if key == helpShortcut.Key {
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			log.Debug("shortcut guard failed", "key", key, "focus", m.focus)
			return m, nil, false // Guard failed, let key propagate to the focused panel
		}
		log.Debug("executing shortcut", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts that are
// applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	add := func(s Shortcut) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	for _, s := range registry {
		if m.isShortcutApplicable(s) {
			add(s)
		}
	}
	if m.isShortcutApplicable(helpShortcut) {
		add(helpShortcut)
	}
	for _, s := range displayOnly {
		add(s)
	}

	// Build sections in the correct order
	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	m.toggleFocus()
	return m, nil
}

func shortcutSearch(m *Model) (tea.Model, tea.Cmd) {
	return m, m.sidebar.EnterSearchMode()
}

func shortcutHome(m *Model) (tea.Model, tea.Cmd) {
	m.setRoute(RouteHome)
	return m, nil
}

func shortcutNewChat(m *Model) (tea.Model, tea.Cmd) {
	return m, m.newChat()
}

func shortcutMasks(m *Model) (tea.Model, tea.Cmd) {
	m.showMaskPicker()
	return m, nil
}

func shortcutDeleteChat(m *Model) (tea.Model, tea.Cmd) {
	m.confirmDelete(m.store.CurrentIndex())
	return m, nil
}

func shortcutShrinkSidebar(m *Model) (tea.Model, tea.Cmd) {
	m.controller.Resize(-1)
	m.updateSizes()
	return m, m.persistPreferences()
}

func shortcutGrowSidebar(m *Model) (tea.Model, tea.Cmd) {
	m.controller.Resize(1)
	m.updateSizes()
	return m, m.persistPreferences()
}

func shortcutToggleSidebar(m *Model) (tea.Model, tea.Cmd) {
	m.controller.Toggle()
	m.updateSizes()
	return m, m.persistPreferences()
}

func shortcutContact(m *Model) (tea.Model, tea.Cmd) {
	return m, m.copyContact()
}

func shortcutPlugins(m *Model) (tea.Model, tea.Cmd) {
	return m, openExternal(launch.ShopURL)
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	m.showSettings()
	return m, nil
}

func shortcutWhatsNew(m *Model) (tea.Model, tea.Cmd) {
	entries := changelog.Parse(changelog.Content)
	if len(entries) == 0 {
		return m, m.ShowFlashInfo("No release notes")
	}
	m.showChangelog(entries)
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	sections := m.getApplicableHelpSections(ShortcutRegistry, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpStateFromSections(sections))
	return m, nil
}
