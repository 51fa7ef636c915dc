// Package surface models the global event targets the sidebar core talks to:
// a Window that fans input events out to registered listeners, and a
// Document that holds root layout properties.
//
// The root Bubble Tea model owns one Window and one Document and feeds them
// from its Update loop. Components install listeners for the lifetime of a
// gesture or a mount and must remove them with the ListenerID they were given.
package surface

// EventKind identifies a class of window event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerCancel
	KeyDown
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	case PointerCancel:
		return "pointercancel"
	case KeyDown:
		return "keydown"
	default:
		return "unknown"
	}
}

// Button identifies the pointer button of a pointer event.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonOther
)

// Key names used in KeyEvent.Key for the keys the sidebar cares about.
// Any other key is reported by its Bubble Tea string form.
const (
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
)

// Event is a single input event delivered to window listeners.
type Event struct {
	Kind EventKind

	// Pointer fields, in terminal cells
	X, Y   int
	Button Button

	// Keyboard fields
	Key   string
	Alt   bool
	Ctrl  bool
	Meta  bool
	Shift bool
}

// Handler receives an event and reports whether it consumed it.
type Handler func(Event) bool

// ListenerID identifies an installed listener.
type ListenerID uint64

type listener struct {
	id      ListenerID
	handler Handler
}

// Window is a registry of event listeners keyed by event kind.
//
// Window is not safe for concurrent use; it lives on the UI goroutine.
type Window struct {
	listeners map[EventKind][]listener
	nextID    ListenerID
}

// NewWindow creates an empty window.
func NewWindow() *Window {
	return &Window{listeners: make(map[EventKind][]listener)}
}

// AddListener installs handler for events of the given kind. Listeners run in
// installation order.
func (w *Window) AddListener(kind EventKind, handler Handler) ListenerID {
	w.nextID++
	w.listeners[kind] = append(w.listeners[kind], listener{id: w.nextID, handler: handler})
	return w.nextID
}

// RemoveListener uninstalls the listener with the given id. Returns false if
// no such listener is installed.
func (w *Window) RemoveListener(id ListenerID) bool {
	for kind, ls := range w.listeners {
		for i, l := range ls {
			if l.id != id {
				continue
			}
			w.listeners[kind] = append(ls[:i:i], ls[i+1:]...)
			if len(w.listeners[kind]) == 0 {
				delete(w.listeners, kind)
			}
			return true
		}
	}
	return false
}

// Count returns the number of listeners installed for kind.
func (w *Window) Count(kind EventKind) int {
	return len(w.listeners[kind])
}

// Total returns the number of listeners installed across all kinds.
func (w *Window) Total() int {
	n := 0
	for _, ls := range w.listeners {
		n += len(ls)
	}
	return n
}

// Dispatch delivers ev to every listener registered for its kind and reports
// whether any of them consumed it. Listeners added or removed by a handler
// take effect from the next dispatch.
func (w *Window) Dispatch(ev Event) bool {
	ls := w.listeners[ev.Kind]
	if len(ls) == 0 {
		return false
	}
	snapshot := make([]listener, len(ls))
	copy(snapshot, ls)

	handled := false
	for _, l := range snapshot {
		if l.handler(ev) {
			handled = true
		}
	}
	return handled
}
