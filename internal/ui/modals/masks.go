package modals

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// MaskPickerState - State for the new chat mask picker
// =============================================================================

const optionDontShowAgain = "dont-show-again"

// MaskPickerState lets the user pick the mask a new chat starts with
type MaskPickerState struct {
	selectedMask string
	options      []string

	form *huh.Form
}

func (*MaskPickerState) modalState() {}

func (s *MaskPickerState) Title() string { return "New Chat" }

func (s *MaskPickerState) Help() string {
	return "↑/↓ to pick a mask, Tab: options, Enter: start chat, Esc: cancel"
}

func (s *MaskPickerState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *MaskPickerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetSelectedMask returns the id of the picked mask; empty for a plain chat
func (s *MaskPickerState) GetSelectedMask() string {
	return s.selectedMask
}

// DontShowAgain reports whether the user asked to skip the picker from now on
func (s *MaskPickerState) DontShowAgain() bool {
	return slices.Contains(s.options, optionDontShowAgain)
}

// NewMaskPickerState creates a picker over the given masks
func NewMaskPickerState(masks []Mask) *MaskPickerState {
	s := &MaskPickerState{}

	maskOptions := make([]huh.Option[string], len(masks))
	for i, m := range masks {
		maskOptions[i] = huh.NewOption(m.Name, m.ID)
	}
	if len(masks) > 0 {
		s.selectedMask = masks[0].ID
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Mask").
			Options(maskOptions...).
			Value(&s.selectedMask),
		huh.NewMultiSelect[string]().
			Options(huh.NewOption("Don't show this again", optionDontShowAgain)).
			Height(1).
			Value(&s.options),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
