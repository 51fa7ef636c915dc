package ui

import (
	"sync"

	"github.com/zhubert/sidechat/internal/logger"
)

// ViewContext holds centralized layout calculations.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	SidebarWidth  int
	ChatWidth     int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateLayout recalculates all dimensions from the terminal size and the
// sidebar width in columns. The sidebar width is whatever the width projector
// resolved for this terminal; the chat pane gets the rest.
func (v *ViewContext) UpdateLayout(width, height, sidebarWidth int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}
	sidebarWidth = max(0, min(sidebarWidth, width))

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight
	v.SidebarWidth = sidebarWidth
	v.ChatWidth = width - sidebarWidth

	logger.WithComponent("ui").Debug("layout updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"chatWidth", v.ChatWidth,
	)
}

// SidebarFillsScreen reports whether the sidebar takes the whole terminal
func (v *ViewContext) SidebarFillsScreen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.SidebarWidth >= v.TerminalWidth
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return max(0, panelWidth-BorderSize)
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return max(0, panelHeight-BorderSize)
}
