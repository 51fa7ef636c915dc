package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/sidechat/internal/logger"
	"github.com/zhubert/sidechat/internal/surface"
	"github.com/zhubert/sidechat/internal/ui"
)

// handleMouseClick routes a press to the sidebar control under the pointer.
// A press on the drag handle starts a width gesture.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() || m.controller.Dragging() {
		return m, nil
	}

	x, y, ok := m.sidebarPoint(msg.X, msg.Y)
	if !ok {
		// Clicking the chat pane focuses it
		if m.chat.HasSession() && msg.Button == tea.MouseLeft {
			m.setFocus(FocusChat)
		}
		return m, nil
	}

	hit := m.sidebar.HitTest(x, y)
	logger.WithComponent("app").Debug("sidebar click",
		"x", x, "y", y, "action", hit.Action, "button", msg.Button)

	if hit.Action == ui.ActionDragHandle {
		ev, _ := surface.FromTea(msg)
		if m.controller.Begin(ev) {
			m.sidebar.SetDragging(true)
		}
		return m, nil
	}
	if msg.Button != tea.MouseLeft {
		return m, nil
	}
	return m.handleSidebarAction(hit)
}

// dispatchPointer hands motion, release and blur to the window listeners the
// width controller installed. Without an active gesture nothing listens.
func (m *Model) dispatchPointer(msg tea.Msg) tea.Cmd {
	ev, ok := surface.FromTea(msg)
	if !ok {
		return nil
	}
	wasDragging := m.controller.Dragging()
	if !m.window.Dispatch(ev) {
		return nil
	}

	m.sidebar.SetDragging(m.controller.Dragging())
	m.updateSizes()
	if wasDragging && !m.controller.Dragging() {
		logger.WithComponent("app").Debug("gesture finished",
			"kind", ev.Kind, "width", m.config.GetSidebarWidth())
		return m.persistPreferences()
	}
	return nil
}

// handleMouseWheel scrolls the panel under the pointer
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) tea.Cmd {
	if m.modal.IsVisible() {
		return nil
	}
	if _, _, ok := m.sidebarPoint(msg.X, msg.Y); ok {
		switch msg.Button {
		case tea.MouseWheelUp:
			m.sidebar.ScrollBy(-1)
		case tea.MouseWheelDown:
			m.sidebar.ScrollBy(1)
		}
		return nil
	}
	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	return cmd
}

// sidebarPoint converts screen coordinates to sidebar coordinates. ok is
// false when the point is outside the sidebar.
func (m *Model) sidebarPoint(x, y int) (int, int, bool) {
	ctx := ui.GetViewContext()
	sy := y - ctx.HeaderHeight
	if x < 0 || x >= m.sidebar.Width() || sy < 0 || sy >= ctx.ContentHeight {
		return 0, 0, false
	}
	return x, sy, true
}
