package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// AppTitle is shown at the left of the header bar
const AppTitle = "sidechat"

// Header represents the top header bar
type Header struct {
	width int
	topic string
	route string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTopic sets the current chat topic to display
func (h *Header) SetTopic(topic string) {
	h.topic = topic
}

// SetRoute sets the name of the current page, shown muted after the topic
func (h *Header) SetRoute(route string) {
	h.route = route
}

// View renders the header
func (h *Header) View() string {
	titleText := " " + AppTitle
	var rightText string
	if h.topic != "" {
		rightText = h.topic
		if h.route != "" {
			rightText += " (" + h.route + ")"
		}
		rightText += " "
	}

	// The topic gives way to the title when the terminal is narrow
	room := h.width - runewidth.StringWidth(titleText) - 1
	if runewidth.StringWidth(rightText) > room {
		rightText = runewidth.Truncate(rightText, max(room, 0), "…")
	}

	paddingLen := max(h.width-runewidth.StringWidth(titleText)-runewidth.StringWidth(rightText), 0)
	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// The route suffix in parentheses is rendered muted.
func (h *Header) renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	routeStart := -1
	if h.route != "" {
		if idx := strings.LastIndex(content, "("+h.route+")"); idx >= 0 {
			routeStart = len([]rune(content[:idx]))
		}
	}
	titleLen := len([]rune(AppTitle)) + 1

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < titleLen)

		if routeStart >= 0 && i >= routeStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
