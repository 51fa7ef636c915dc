package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/jonboulle/clockwork"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays in the footer
const DefaultFlashDuration = 3 * time.Second

// FlashMessage is a transient toast shown in place of the key bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return f.expiredAt(time.Now())
}

func (f *FlashMessage) expiredAt(now time.Time) bool {
	return now.Sub(f.CreatedAt) >= f.Duration
}

// FlashTickMsg asks the app to drop an expired flash message
type FlashTickMsg time.Time

// FlashTick returns a command that fires after the default flash duration
func FlashTick() tea.Cmd {
	return tea.Tick(DefaultFlashDuration, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	chatFocused  bool
	dragging     bool
	flashMessage *FlashMessage
	clock        clockwork.Clock
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		clock: clockwork.NewRealClock(),
		bindings: []KeyBinding{
			{Key: "tab", Desc: "switch pane"},
			{Key: "n", Desc: "new chat"},
			{Key: "d", Desc: "delete"},
			{Key: "s", Desc: "settings"},
			{Key: "[/]", Desc: "resize"},
			{Key: "\\", Desc: "collapse"},
			{Key: "alt+↑/↓", Desc: "switch chat"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(chatFocused, dragging bool) {
	f.chatFocused = chatFocused
	f.dragging = dragging
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetClock replaces the clock used to expire flash messages
func (f *Footer) SetClock(clock clockwork.Clock) {
	f.clock = clock
}

// SetFlash shows a flash message for the default duration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for the given duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: f.clock.Now(),
		Duration:  d,
	}
}

// ClearFlash removes any flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops the flash message once it has expired and reports
// whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.expiredAt(f.clock.Now()) {
		f.flashMessage = nil
		return true
	}
	return false
}

func flashIcon(t FlashType) (string, lipgloss.Style) {
	switch t {
	case FlashError:
		return "✕", lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	case FlashWarning:
		return "⚠", lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	case FlashSuccess:
		return "✓", lipgloss.NewStyle().Foreground(ColorAssistant).Bold(true)
	default:
		return "ℹ", lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		icon, style := flashIcon(f.flashMessage.Type)
		return FooterStyle.Width(f.width).Render(style.Render(icon + " " + f.flashMessage.Text))
	}

	var bindings []KeyBinding
	switch {
	case f.dragging:
		bindings = []KeyBinding{
			{Key: "drag", Desc: "resize"},
			{Key: "release", Desc: "apply"},
			{Key: "quick click", Desc: "collapse/expand"},
		}
	case f.chatFocused:
		bindings = []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "alt+↑/↓", Desc: "switch chat"},
			{Key: "pgup/dn", Desc: "scroll"},
		}
	default:
		bindings = f.bindings
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
