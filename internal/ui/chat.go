package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/sidechat/internal/config"
	"github.com/zhubert/sidechat/internal/logger"
)

// Chat represents the right panel with the conversation view
type Chat struct {
	viewport   viewport.Model
	input      textarea.Model
	width      int
	height     int
	focused    bool
	messages   []config.Message
	topic      string
	mask       string
	hasSession bool
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = "Type your message..."
	ti.CharLimit = 0
	ti.SetHeight(1)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()
	c.viewport.SetWidth(ctx.InnerWidth(width))
	c.viewport.SetHeight(max(1, ctx.InnerHeight(height-InputTotalHeight)))
	c.input.SetWidth(max(1, ctx.InnerWidth(width)-2))
	c.updateContent()

	logger.WithComponent("ui").Debug("Chat.SetSize", "width", width, "height", height,
		"viewportWidth", c.viewport.Width(), "viewportHeight", c.viewport.Height())
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetSession shows a chat and its history
func (c *Chat) SetSession(sess config.Session, messages []config.Message) {
	c.topic = sess.Topic
	c.mask = sess.Mask
	c.messages = append([]config.Message(nil), messages...)
	c.hasSession = true
	c.updateContent()
}

// ClearSession returns the panel to the welcome page
func (c *Chat) ClearSession() {
	c.topic = ""
	c.mask = ""
	c.messages = nil
	c.hasSession = false
	c.updateContent()
}

// HasSession reports whether a chat is shown
func (c *Chat) HasSession() bool {
	return c.hasSession
}

// AppendMessage adds a message to the visible history
func (c *Chat) AppendMessage(msg config.Message) {
	c.messages = append(c.messages, msg)
	c.updateContent()
}

// GetInput returns the text typed so far
func (c *Chat) GetInput() string {
	return c.input.Value()
}

// ClearInput empties the input
func (c *Chat) ClearInput() {
	c.input.Reset()
}

func (c *Chat) renderWelcome() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Render(BrandTitle)
	body := lipgloss.NewStyle().Foreground(ColorTextMuted).Render(
		"Pick a chat from the sidebar or press n to start a new one.\n" +
			"Drag the sidebar's right edge to resize it; a quick click collapses it.")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body)
}

func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var sb strings.Builder
	switch {
	case !c.hasSession:
		sb.WriteString(c.renderWelcome())
	case len(c.messages) == 0:
		hint := "Start a conversation..."
		if c.mask != "" {
			hint = "Start a conversation with the " + c.mask + " mask..."
		}
		sb.WriteString(lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Render(hint))
	default:
		for i, msg := range c.messages {
			if i > 0 {
				sb.WriteString("\n\n")
			}
			roleStyle, roleName := ChatAssistantStyle, "Assistant"
			if msg.Role == "user" {
				roleStyle, roleName = ChatUserStyle, "You"
			}
			sb.WriteString(roleStyle.Render(roleName + ":"))
			sb.WriteString("\n")
			sb.WriteString(ChatMessageStyle.Width(wrapWidth).Render(strings.TrimSpace(msg.Content)))
		}
	}

	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	if c.focused && c.hasSession {
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case "pgup", "pgdown", "home", "end", "ctrl+u", "ctrl+d":
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				return c, cmd
			}

			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			return c, cmd
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the chat panel
func (c *Chat) View() string {
	if c.width <= 0 || c.height <= 0 {
		return ""
	}

	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	if !c.hasSession {
		return panelStyle.Width(c.width).Height(c.height).Render(c.viewport.View())
	}

	chatPanel := panelStyle.Width(c.width).Height(c.height - InputTotalHeight).Render(c.viewport.View())

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}
