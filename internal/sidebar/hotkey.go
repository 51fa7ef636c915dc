package sidebar

import "github.com/zhubert/sidechat/internal/surface"

// SessionCursor moves the selection in the chat list. Advance wraps around.
type SessionCursor interface {
	Advance(direction int)
}

// HotKeys switches chats with a modifier held and the up or down arrow.
// Alt, Ctrl and Meta all count as the modifier; plain arrows are left to the
// focused widget.
type HotKeys struct {
	sessions SessionCursor
	window   *surface.Window
	id       surface.ListenerID
}

// NewHotKeys creates an unmounted handler.
func NewHotKeys(sessions SessionCursor) *HotKeys {
	return &HotKeys{sessions: sessions}
}

// Mount installs the keydown listener on window. Mounting again first
// removes the previous listener.
func (h *HotKeys) Mount(window *surface.Window) {
	h.Unmount()
	h.window = window
	h.id = window.AddListener(surface.KeyDown, h.handle)
}

// Unmount removes the keydown listener.
func (h *HotKeys) Unmount() {
	if h.window == nil {
		return
	}
	h.window.RemoveListener(h.id)
	h.window = nil
	h.id = 0
}

// Mounted reports whether the listener is installed.
func (h *HotKeys) Mounted() bool {
	return h.window != nil
}

func (h *HotKeys) handle(ev surface.Event) bool {
	if !ev.Alt && !ev.Ctrl && !ev.Meta {
		return false
	}
	switch ev.Key {
	case surface.KeyArrowUp:
		h.sessions.Advance(-1)
		return true
	case surface.KeyArrowDown:
		h.sessions.Advance(1)
		return true
	}
	return false
}
