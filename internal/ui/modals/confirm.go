package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/sidechat/internal/keys"
)

// =============================================================================
// ConfirmDeleteState - State for the Confirm Delete modal
// =============================================================================

type ConfirmDeleteState struct {
	Topic         string
	Index         int
	Options       []string
	SelectedIndex int
}

func (*ConfirmDeleteState) modalState() {}

func (s *ConfirmDeleteState) Title() string { return "Delete Chat?" }

func (s *ConfirmDeleteState) Help() string {
	return "↑/↓ to select, Enter to confirm, Esc to cancel"
}

func (s *ConfirmDeleteState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	topicLabel := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginBottom(1).
		Render(s.Topic)

	message := lipgloss.NewStyle().
		Foreground(ColorText).
		MarginBottom(1).
		Render("The chat and its history will be removed.")

	var optionList string
	for i, opt := range s.Options {
		style := SidebarItemStyle
		prefix := "  "
		if i == s.SelectedIndex {
			style = SidebarSelectedStyle
			prefix = "> "
		}
		optionList += style.Render(prefix+opt) + "\n"
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, topicLabel, message, optionList, help)
}

func (s *ConfirmDeleteState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case keys.Down, "j":
			if s.SelectedIndex < len(s.Options)-1 {
				s.SelectedIndex++
			}
		case "y":
			s.SelectedIndex = 1
		case "n":
			s.SelectedIndex = 0
		}
	}
	return s, nil
}

// Confirmed returns true if the user picked "Delete"
func (s *ConfirmDeleteState) Confirmed() bool {
	return s.SelectedIndex == 1
}

// NewConfirmDeleteState asks whether to delete the chat at index.
// "Cancel" is preselected.
func NewConfirmDeleteState(topic string, index int) *ConfirmDeleteState {
	return &ConfirmDeleteState{
		Topic:         topic,
		Index:         index,
		Options:       []string{"Cancel", "Delete"},
		SelectedIndex: 0,
	}
}
