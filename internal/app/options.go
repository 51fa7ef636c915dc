package app

import (
	"github.com/jonboulle/clockwork"

	"github.com/zhubert/sidechat/internal/session"
	"github.com/zhubert/sidechat/internal/sidebar"
)

// options holds the collaborators New wires up. Tests replace the clock and
// the id generator to get deterministic gestures and sessions.
type options struct {
	clock  clockwork.Clock
	newID  func() string
	limits sidebar.Limits
}

// Option configures a Model.
type Option func(*options)

// WithClock sets the clock the width controller uses for throttling and
// click detection.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithIDGenerator replaces the session id generator.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		o.newID = fn
	}
}

// WithLimits sets the sidebar width thresholds.
func WithLimits(limits sidebar.Limits) Option {
	return func(o *options) {
		o.limits = limits
	}
}

func defaultOptions() *options {
	return &options{
		clock:  clockwork.NewRealClock(),
		limits: sidebar.DefaultLimits(),
	}
}

func (o *options) storeOptions() []session.Option {
	opts := []session.Option{session.WithClock(o.clock)}
	if o.newID != nil {
		opts = append(opts, session.WithIDGenerator(o.newID))
	}
	return opts
}
