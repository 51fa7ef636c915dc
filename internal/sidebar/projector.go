package sidebar

import (
	"strconv"

	"github.com/zhubert/sidechat/internal/config"
	"github.com/zhubert/sidechat/internal/surface"
)

// MobileBreakpoint is the terminal width below which the sidebar takes the
// whole screen.
const MobileBreakpoint = 60

// Viewport reports whether the display is small enough to treat as mobile.
type Viewport interface {
	IsMobile() bool
}

// PropertySetter receives the published sidebar width.
type PropertySetter interface {
	SetProperty(name, value string)
}

// Classifier derives the viewport class from the terminal width.
type Classifier struct {
	Breakpoint int
	width      int
}

// NewClassifier returns a classifier using MobileBreakpoint. Until the first
// SetWidth it reports desktop.
func NewClassifier() *Classifier {
	return &Classifier{Breakpoint: MobileBreakpoint}
}

// SetWidth records the terminal width and reports whether the class changed.
func (c *Classifier) SetWidth(width int) bool {
	before := c.IsMobile()
	c.width = width
	return before != c.IsMobile()
}

// IsMobile reports whether the terminal is narrower than the breakpoint.
func (c *Classifier) IsMobile() bool {
	return c.width > 0 && c.width < c.Breakpoint
}

// EffectiveWidth is the rendered sidebar width.
type EffectiveWidth struct {
	FullWidth bool // Sidebar spans the whole terminal
	Columns   int  // Width in columns when not FullWidth
}

// String renders the width the way it is stored in the document:
// "100vw" for full width, "<n>px" otherwise.
func (e EffectiveWidth) String() string {
	if e.FullWidth {
		return "100vw"
	}
	return strconv.Itoa(e.Columns) + "px"
}

// Resolve converts the width to columns for a terminal termWidth columns wide.
func (e EffectiveWidth) Resolve(termWidth int) int {
	if e.FullWidth || e.Columns > termWidth {
		return termWidth
	}
	return e.Columns
}

// ParseEffectiveWidth parses the output of EffectiveWidth.String.
func ParseEffectiveWidth(s string) (EffectiveWidth, bool) {
	if s == "100vw" {
		return EffectiveWidth{FullWidth: true}, true
	}
	if len(s) < 3 || s[len(s)-2:] != "px" {
		return EffectiveWidth{}, false
	}
	n, err := strconv.Atoi(s[:len(s)-2])
	if err != nil || n < 0 {
		return EffectiveWidth{}, false
	}
	return EffectiveWidth{Columns: n}, true
}

// Projector computes the rendered width from the configured width and the
// viewport class and publishes it to the document as SidebarWidthProperty.
// It only reads from the store.
type Projector struct {
	viewport Viewport
	doc      PropertySetter
	limits   Limits

	width  int
	mobile bool

	unsubscribe func()
}

// ProjectorOption configures a Projector.
type ProjectorOption func(*Projector)

// WithProjectorLimits sets the width thresholds.
func WithProjectorLimits(limits Limits) ProjectorOption {
	return func(p *Projector) {
		p.limits = limits
	}
}

// NewProjector subscribes to store and publishes the initial width.
func NewProjector(store Store, viewport Viewport, doc PropertySetter, opts ...ProjectorOption) *Projector {
	p := &Projector{
		viewport: viewport,
		doc:      doc,
		limits:   DefaultLimits(),
		width:    store.Read().SidebarWidth,
		mobile:   viewport.IsMobile(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.unsubscribe = store.Subscribe(func(prefs config.Preferences) {
		p.width = prefs.SidebarWidth
		p.publish()
	})
	p.publish()
	return p
}

// ViewportChanged re-reads the viewport class and republishes.
func (p *Projector) ViewportChanged() {
	p.mobile = p.viewport.IsMobile()
	p.publish()
}

// ShouldNarrow reports whether the sidebar renders collapsed. It is never
// true on a mobile viewport.
func (p *Projector) ShouldNarrow() bool {
	return !p.mobile && p.limits.Collapsed(p.width)
}

// Effective returns the rendered width.
func (p *Projector) Effective() EffectiveWidth {
	switch {
	case p.mobile:
		return EffectiveWidth{FullWidth: true}
	case p.ShouldNarrow():
		return EffectiveWidth{Columns: p.limits.Narrow}
	default:
		return EffectiveWidth{Columns: min(max(p.width, p.limits.Narrow), p.limits.Max)}
	}
}

// Resolve returns the rendered width in columns for a terminal termWidth wide.
func (p *Projector) Resolve(termWidth int) int {
	return p.Effective().Resolve(termWidth)
}

// Close stops observing the store.
func (p *Projector) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

func (p *Projector) publish() {
	p.doc.SetProperty(surface.SidebarWidthProperty, p.Effective().String())
}
