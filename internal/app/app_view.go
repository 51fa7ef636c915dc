package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/sidechat/internal/logger"
	"github.com/zhubert/sidechat/internal/sidebar"
	"github.com/zhubert/sidechat/internal/surface"
	"github.com/zhubert/sidechat/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Update footer context for conditional bindings
	m.updateFooterContext()

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	var panels []string
	if m.sidebar.Width() > 0 {
		panels = append(panels, m.sidebar.View())
	}
	if ui.GetViewContext().ChatWidth > 0 {
		panels = append(panels, m.chat.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, panels...),
		m.footer.View(),
	)
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	m.footer.SetContext(m.focus == FocusChat, m.controller.Dragging())
}

// sidebarColumns resolves the published sidebar width for the current terminal
func (m *Model) sidebarColumns() int {
	value, ok := m.doc.Property(surface.SidebarWidthProperty)
	if !ok {
		return m.projector.Resolve(m.width)
	}
	eff, ok := sidebar.ParseEffectiveWidth(value)
	if !ok {
		logger.WithComponent("app").Warn("unparseable sidebar width", "value", value)
		return m.projector.Resolve(m.width)
	}
	return eff.Resolve(m.width)
}

// updateSizes updates component sizes based on terminal dimensions and the
// projected sidebar width
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}

	sidebarWidth := m.sidebarColumns()
	mobile := m.classifier.IsMobile()
	// On a phone-sized terminal the full-width sidebar only shows on Home
	if mobile && m.route == RouteChat {
		sidebarWidth = 0
	}

	ctx := ui.GetViewContext()
	ctx.UpdateLayout(m.width, m.height, sidebarWidth)

	m.sidebar.SetNarrow(m.projector.ShouldNarrow())
	m.sidebar.SetMobile(mobile)
	m.sidebar.SetDragging(m.controller.Dragging())

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.chat.SetSize(ctx.ChatWidth, ctx.ContentHeight)
}
