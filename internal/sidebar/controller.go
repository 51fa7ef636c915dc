package sidebar

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/zhubert/sidechat/internal/config"
	"github.com/zhubert/sidechat/internal/surface"
)

const (
	// UpdateInterval is the minimum gap between width updates during a drag.
	UpdateInterval = 20 * time.Millisecond

	// ClickMaxDuration is the longest press that still counts as a click.
	ClickMaxDuration = 300 * time.Millisecond
)

// Store is the configuration the sidebar reads its width from and writes it to.
type Store interface {
	Read() config.Preferences
	Update(patch func(p *config.Preferences))
	Subscribe(fn func(config.Preferences)) (unsubscribe func())
}

// DragSession is the state of one press on the resize handle. It exists from
// pointer-down until the matching pointer-up or cancel.
type DragSession struct {
	StartX     int
	StartWidth int
	StartTime  time.Time

	moveID   surface.ListenerID
	upID     surface.ListenerID
	cancelID surface.ListenerID
}

// Controller turns presses on the resize handle into width updates. A press
// that is released within ClickMaxDuration toggles between collapsed and
// expanded; anything longer is a drag whose last committed width stands.
type Controller struct {
	store  Store
	window *surface.Window
	clock  clockwork.Clock
	limits Limits

	drag *DragSession

	// lastUpdate spans gestures: the first move of a new drag is throttled
	// against the last move of the previous one.
	lastUpdate time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used for throttling and click detection.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithLimits sets the width thresholds.
func WithLimits(limits Limits) Option {
	return func(c *Controller) {
		c.limits = limits
	}
}

// NewController creates a controller that installs its gesture listeners on window.
func NewController(store Store, window *surface.Window, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		window: window,
		clock:  clockwork.NewRealClock(),
		limits: DefaultLimits(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Begin starts a gesture for a press at ev. Presses with a button other than
// the primary one, and presses while a gesture is already active, are
// ignored. Returns true if a gesture started.
func (c *Controller) Begin(ev surface.Event) bool {
	if c.drag != nil || ev.Button != surface.ButtonLeft {
		return false
	}

	d := &DragSession{
		StartX:     ev.X,
		StartWidth: c.store.Read().SidebarWidth,
		StartTime:  c.clock.Now(),
	}
	d.moveID = c.window.AddListener(surface.PointerMove, func(ev surface.Event) bool {
		c.Move(ev)
		return true
	})
	d.upID = c.window.AddListener(surface.PointerUp, func(surface.Event) bool {
		c.End()
		return true
	})
	d.cancelID = c.window.AddListener(surface.PointerCancel, func(surface.Event) bool {
		c.Cancel()
		return true
	})
	c.drag = d
	return true
}

// Move resizes the sidebar relative to the press position. Samples arriving
// within UpdateInterval of the previous update are dropped. Returns true if
// the width was updated.
func (c *Controller) Move(ev surface.Event) bool {
	if c.drag == nil {
		return false
	}

	now := c.clock.Now()
	if now.Sub(c.lastUpdate) < UpdateInterval {
		return false
	}

	width := c.limits.snap(c.drag.StartWidth + ev.X - c.drag.StartX)
	c.store.Update(func(p *config.Preferences) {
		p.SidebarWidth = width
	})
	c.lastUpdate = now
	return true
}

// End finishes the gesture. A short press toggles the sidebar between
// collapsed and expanded. Returns true if it toggled.
func (c *Controller) End() bool {
	if c.drag == nil {
		return false
	}

	elapsed := c.clock.Since(c.drag.StartTime)
	c.release()

	if elapsed >= ClickMaxDuration {
		return false
	}
	c.Toggle()
	return true
}

// Cancel abandons the gesture without toggling. The last committed width stands.
func (c *Controller) Cancel() {
	if c.drag != nil {
		c.release()
	}
}

// Toggle switches between the collapsed and the default width.
func (c *Controller) Toggle() {
	c.store.Update(func(p *config.Preferences) {
		p.SidebarWidth = c.limits.toggled(p.SidebarWidth)
	})
}

// Resize moves the stored width by delta columns, following the same
// snapping rules as a drag. Expanding a collapsed sidebar starts from Min.
func (c *Controller) Resize(delta int) {
	c.store.Update(func(p *config.Preferences) {
		width := p.SidebarWidth
		if c.limits.Collapsed(width) && delta > 0 {
			width = c.limits.Min - delta
		}
		p.SidebarWidth = c.limits.snap(width + delta)
	})
}

// Close releases an active gesture. The controller can still be used after Close.
func (c *Controller) Close() {
	c.Cancel()
}

// Dragging reports whether a gesture is active.
func (c *Controller) Dragging() bool {
	return c.drag != nil
}

// Session returns a copy of the active gesture, if any.
func (c *Controller) Session() (DragSession, bool) {
	if c.drag == nil {
		return DragSession{}, false
	}
	return *c.drag, true
}

func (c *Controller) release() {
	c.window.RemoveListener(c.drag.moveID)
	c.window.RemoveListener(c.drag.upID)
	c.window.RemoveListener(c.drag.cancelID)
	c.drag = nil
}
