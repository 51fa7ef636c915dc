// Package sidebar implements the width behaviour of the chat sidebar: the
// drag/click controller on the resize handle, the projection of the
// configured width onto the rendered layout, and the session hot-keys.
//
// Everything here runs on the UI goroutine and talks to its collaborators
// through small interfaces. The package does not log and does not render.
package sidebar

import (
	"fmt"

	"github.com/zhubert/sidechat/internal/config"
	perrors "github.com/zhubert/sidechat/internal/errors"
)

// Limits holds the width thresholds of the sidebar.
type Limits struct {
	Narrow  int // Width of the collapsed sidebar
	Min     int // Widths below this collapse to Narrow
	Default int // Width restored when expanding a collapsed sidebar
	Max     int // Upper bound on a user-chosen width
}

// DefaultLimits returns the limits used by the application, in terminal columns.
func DefaultLimits() Limits {
	return Limits{
		Narrow:  config.NarrowSidebarWidth,
		Min:     config.MinSidebarWidth,
		Default: config.DefaultSidebarWidth,
		Max:     config.MaxSidebarWidth,
	}
}

// Validate checks that 0 < Narrow < Min <= Default <= Max.
func (l Limits) Validate() error {
	if l.Narrow <= 0 || l.Narrow >= l.Min || l.Min > l.Default || l.Default > l.Max {
		return perrors.E(perrors.Op("sidebar.Limits"), perrors.KindInvalid,
			fmt.Sprintf("limits must satisfy 0 < narrow < min <= default <= max, got %d/%d/%d/%d",
				l.Narrow, l.Min, l.Default, l.Max))
	}
	return nil
}

// Clamp maps a stored width onto the range a reader may use: widths below
// Min collapse to Narrow and widths above Max are capped at Max.
func (l Limits) Clamp(width int) int {
	if width < l.Min {
		return l.Narrow
	}
	if width > l.Max {
		return l.Max
	}
	return width
}

// Collapsed reports whether width renders as the collapsed sidebar.
func (l Limits) Collapsed(width int) bool {
	return width < l.Min
}

// snap applies the drag rule to a proposed width
func (l Limits) snap(proposed int) int {
	proposed = min(proposed, l.Max)
	if proposed < l.Min {
		return l.Narrow
	}
	return proposed
}

// toggled returns the width a click on the handle switches to
func (l Limits) toggled(width int) int {
	if width < l.Min {
		return l.Default
	}
	return l.Narrow
}
