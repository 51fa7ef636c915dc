package modals

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// ChangelogState - State for the "What's New" modal
// =============================================================================

// ChangelogEntry is one release shown in the modal
type ChangelogEntry struct {
	Version string
	Date    string
	Changes []string
}

// changelogMaxVisible caps the number of lines shown before scrolling
const changelogMaxVisible = 14

// ChangelogState lists the releases since the last version the user ran
type ChangelogState struct {
	Entries []ChangelogEntry

	viewport viewport.Model
	width    int
}

func (*ChangelogState) modalState() {}

func (s *ChangelogState) Title() string { return "What's New" }

func (s *ChangelogState) Help() string {
	if s.viewport.TotalLineCount() > s.viewport.Height() {
		return "↑/↓ scroll  Enter/Esc: dismiss"
	}
	return "Press Enter or Esc to dismiss"
}

// renderEntries lays out the releases wrapped to width
func (s *ChangelogState) renderEntries(width int) string {
	versionStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	bulletStyle := lipgloss.NewStyle().Foreground(ColorSecondary)
	textStyle := lipgloss.NewStyle().Foreground(ColorText).Width(max(10, width-4))

	var lines []string
	for i, entry := range s.Entries {
		if i > 0 {
			lines = append(lines, "")
		}
		header := "v" + entry.Version
		if entry.Date != "" {
			header += " (" + entry.Date + ")"
		}
		lines = append(lines, versionStyle.Render(header))

		for _, change := range entry.Changes {
			for j, line := range strings.Split(textStyle.Render(change), "\n") {
				if j == 0 {
					lines = append(lines, bulletStyle.Render("  - ")+line)
				} else {
					lines = append(lines, "    "+line)
				}
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (s *ChangelogState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.viewport.View(), help)
}

func (s *ChangelogState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// SetSize rewraps the entries for the modal width
func (s *ChangelogState) SetSize(width, height int) {
	inner := max(10, width-4)
	if inner != s.width {
		s.width = inner
		s.viewport.SetWidth(inner)
		s.viewport.SetContent(s.renderEntries(inner))
	}
	s.viewport.SetHeight(max(1, min(changelogMaxVisible, height-8, s.viewport.TotalLineCount())))
}

// NewChangelogState creates the modal for entries, newest first
func NewChangelogState(entries []ChangelogEntry) *ChangelogState {
	s := &ChangelogState{
		Entries:  entries,
		viewport: viewport.New(),
	}
	s.SetSize(ModalWidth, changelogMaxVisible+8)
	return s
}
