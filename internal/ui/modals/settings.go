package modals

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// SettingsState - State for the Settings modal
// =============================================================================

// ThemeChoice is a theme offered by the settings modal
type ThemeChoice struct {
	Label string
	Value string
}

const (
	optionNotifications = "notifications"
	optionSkipMasks     = "skip-masks"
)

// SettingsState edits the persisted preferences
type SettingsState struct {
	// Bound form values
	selectedTheme  string
	OriginalTheme  string
	widthText      string
	generalOptions []string

	NotificationsEnabled     bool
	DontShowMaskSplashScreen bool

	minWidth, maxWidth int

	form *huh.Form
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	s.syncFromMultiSelect()
	return s, cmd
}

// SetSize updates the form width
func (s *SettingsState) SetSize(width, height int) {
	s.form.WithWidth(max(20, width-10))
}

// syncFromMultiSelect updates boolean fields from the MultiSelect bindings.
func (s *SettingsState) syncFromMultiSelect() {
	s.NotificationsEnabled = slices.Contains(s.generalOptions, optionNotifications)
	s.DontShowMaskSplashScreen = slices.Contains(s.generalOptions, optionSkipMasks)
}

func (s *SettingsState) validateWidth(text string) error {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("width must be a number")
	}
	if n < s.minWidth || n > s.maxWidth {
		return fmt.Errorf("width must be between %d and %d", s.minWidth, s.maxWidth)
	}
	return nil
}

// GetSelectedTheme returns the selected theme key.
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// GetSidebarWidth returns the entered sidebar width and whether it is valid
func (s *SettingsState) GetSidebarWidth() (int, bool) {
	if s.validateWidth(s.widthText) != nil {
		return 0, false
	}
	n, _ := strconv.Atoi(strings.TrimSpace(s.widthText))
	return n, true
}

// SetSidebarWidthText replaces the width field's text. huh binds via pointer,
// so the form shows the new value.
func (s *SettingsState) SetSidebarWidthText(text string) {
	s.widthText = text
}

// NewSettingsState creates a new SettingsState with the current settings values.
// minWidth and maxWidth bound the sidebar width field.
func NewSettingsState(themes []ThemeChoice, currentTheme string, sidebarWidth, minWidth, maxWidth int,
	notificationsEnabled, dontShowMaskSplashScreen bool) *SettingsState {

	s := &SettingsState{
		selectedTheme:            currentTheme,
		OriginalTheme:            currentTheme,
		widthText:                strconv.Itoa(sidebarWidth),
		NotificationsEnabled:     notificationsEnabled,
		DontShowMaskSplashScreen: dontShowMaskSplashScreen,
		minWidth:                 minWidth,
		maxWidth:                 maxWidth,
	}

	themeOptions := make([]huh.Option[string], len(themes))
	for i, theme := range themes {
		themeOptions[i] = huh.NewOption(theme.Label, theme.Value)
	}

	generalOpts := []huh.Option[string]{
		huh.NewOption("Desktop notifications", optionNotifications).
			Selected(notificationsEnabled),
		huh.NewOption("Skip the mask picker for new chats", optionSkipMasks).
			Selected(dontShowMaskSplashScreen),
	}
	if notificationsEnabled {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}
	if dontShowMaskSplashScreen {
		s.generalOptions = append(s.generalOptions, optionSkipMasks)
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewInput().
			Title("Sidebar width").
			Description(fmt.Sprintf("Columns, %d to %d", minWidth, maxWidth)).
			CharLimit(4).
			Validate(s.validateWidth).
			Value(&s.widthText),
		huh.NewMultiSelect[string]().
			Title("Options").
			Options(generalOpts...).
			Height(len(generalOpts)).
			Value(&s.generalOptions),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
