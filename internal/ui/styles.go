package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, populated from the active theme
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorMuted       color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorBgSelected  color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorUser        color.Color
	ColorAssistant   color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
)

// Header styles
var HeaderStyle lipgloss.Style

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Sidebar styles
var (
	SidebarTitleStyle     lipgloss.Style
	SidebarSubtitleStyle  lipgloss.Style
	SidebarLogoStyle      lipgloss.Style
	SidebarButtonStyle    lipgloss.Style
	SidebarItemStyle      lipgloss.Style
	SidebarItemMetaStyle  lipgloss.Style
	SidebarSelectedStyle  lipgloss.Style
	SidebarActionStyle    lipgloss.Style
	DragHandleStyle       lipgloss.Style
	DragHandleActiveStyle lipgloss.Style
)

// Chat styles
var (
	ChatUserStyle         lipgloss.Style
	ChatAssistantStyle    lipgloss.Style
	ChatMessageStyle      lipgloss.Style
	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusInfoStyle  lipgloss.Style
	StatusErrorStyle lipgloss.Style
)

func init() {
	regenerateStyles()
	RefreshModalStyles()
}
