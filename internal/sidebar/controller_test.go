package sidebar

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/zhubert/sidechat/internal/config"
	"github.com/zhubert/sidechat/internal/surface"
)

// pixelLimits are the thresholds of the browser sidebar this package models,
// used so scenarios can be written with familiar numbers.
var pixelLimits = Limits{Narrow: 100, Min: 280, Default: 300, Max: 500}

type harness struct {
	store   *config.Config
	window  *surface.Window
	clock   *clockwork.FakeClock
	ctrl    *Controller
	emitted []int
	times   []time.Time
}

func newHarness(t *testing.T, width int) *harness {
	t.Helper()
	h := &harness{
		store:  config.New(""),
		window: surface.NewWindow(),
		clock:  clockwork.NewFakeClock(),
	}
	h.store.Update(func(p *config.Preferences) { p.SidebarWidth = width })
	h.store.Subscribe(func(p config.Preferences) {
		h.emitted = append(h.emitted, p.SidebarWidth)
		h.times = append(h.times, h.clock.Now())
	})
	h.ctrl = NewController(h.store, h.window, WithClock(h.clock), WithLimits(pixelLimits))
	return h
}

func (h *harness) down(x int) bool {
	return h.ctrl.Begin(surface.Event{Kind: surface.PointerDown, X: x, Button: surface.ButtonLeft})
}

func (h *harness) move(x int) {
	h.window.Dispatch(surface.Event{Kind: surface.PointerMove, X: x, Button: surface.ButtonLeft})
}

func (h *harness) up() {
	h.window.Dispatch(surface.Event{Kind: surface.PointerUp, Button: surface.ButtonLeft})
}

func (h *harness) width() int {
	return h.store.Read().SidebarWidth
}

func (h *harness) listeners() int {
	return h.window.Count(surface.PointerMove) + h.window.Count(surface.PointerUp) + h.window.Count(surface.PointerCancel)
}

func TestController_CollapseByDrag(t *testing.T) {
	h := newHarness(t, 300)

	h.down(500)
	h.clock.Advance(50 * time.Millisecond)
	h.move(450)
	h.clock.Advance(350 * time.Millisecond)
	h.up()

	if len(h.emitted) != 1 || h.emitted[0] != 100 {
		t.Errorf("emitted = %v, want [100]", h.emitted)
	}
	if h.width() != 100 {
		t.Errorf("width = %d, want 100", h.width())
	}
}

func TestController_ExpandByDrag(t *testing.T) {
	h := newHarness(t, 100)

	h.down(50)
	h.clock.Advance(60 * time.Millisecond)
	h.move(350)
	h.clock.Advance(440 * time.Millisecond)
	h.up()

	if h.width() != 400 {
		t.Errorf("width = %d, want 400", h.width())
	}
}

func TestController_DragIsCappedAtMax(t *testing.T) {
	h := newHarness(t, 300)

	h.down(0)
	h.clock.Advance(50 * time.Millisecond)
	h.move(1000)
	h.clock.Advance(time.Second)
	h.up()

	if h.width() != pixelLimits.Max {
		t.Errorf("width = %d, want %d", h.width(), pixelLimits.Max)
	}
}

func TestController_ClickToggle(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		hold    time.Duration
		want    int
	}{
		{"expand collapsed", 100, 120 * time.Millisecond, 300},
		{"collapse expanded", 300, 200 * time.Millisecond, 100},
		{"collapse wide", 450, 0, 100},
		{"expand below min", 250, 299 * time.Millisecond, 300},
		{"long press does not toggle", 300, 300 * time.Millisecond, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.initial)

			h.down(10)
			h.clock.Advance(tt.hold)
			h.up()

			if h.width() != tt.want {
				t.Errorf("width = %d, want %d", h.width(), tt.want)
			}
		})
	}
}

func TestController_ThrottledStream(t *testing.T) {
	h := newHarness(t, 300)

	h.down(300)
	for i := 1; i <= 100; i++ {
		h.clock.Advance(time.Millisecond)
		h.move(300 + i)
	}

	if len(h.emitted) > 6 {
		t.Errorf("emitted %d updates for 100 moves in 100ms, want <= 6", len(h.emitted))
	}
	if len(h.emitted) == 0 {
		t.Error("expected at least one update")
	}
}

func TestController_ThrottleGap(t *testing.T) {
	h := newHarness(t, 300)

	h.down(300)
	steps := []time.Duration{3, 7, 15, 1, 30, 2, 19, 20, 5, 40}
	for i, d := range steps {
		h.clock.Advance(d * time.Millisecond)
		h.move(300 + i*5)
	}

	for i := 1; i < len(h.times); i++ {
		if gap := h.times[i].Sub(h.times[i-1]); gap < UpdateInterval {
			t.Errorf("updates %d and %d are %v apart, want >= %v", i-1, i, gap, UpdateInterval)
		}
	}
}

func TestController_EmittedWidthsAreValid(t *testing.T) {
	h := newHarness(t, 300)

	h.down(400)
	for x := -400; x <= 1200; x += 37 {
		h.clock.Advance(UpdateInterval)
		h.move(x)
	}
	h.clock.Advance(time.Second)
	h.up()

	if len(h.emitted) == 0 {
		t.Fatal("expected updates")
	}
	for _, w := range h.emitted {
		if w != pixelLimits.Narrow && (w < pixelLimits.Min || w > pixelLimits.Max) {
			t.Errorf("emitted width %d outside {narrow} and [min, max]", w)
		}
	}
}

func TestController_ExactlyOneToggle(t *testing.T) {
	for _, hold := range []time.Duration{0, 10 * time.Millisecond, 299 * time.Millisecond, 300 * time.Millisecond, 2 * time.Second} {
		h := newHarness(t, 300)

		h.down(100)
		h.clock.Advance(hold)
		h.up()

		want := 0
		if hold < ClickMaxDuration {
			want = 1
		}
		if len(h.emitted) != want {
			t.Errorf("hold %v: %d updates, want %d", hold, len(h.emitted), want)
		}
	}
}

func TestController_ToggleTwiceReturnsToClass(t *testing.T) {
	for _, start := range []int{100, 150, 279, 280, 300, 420, 500} {
		h := newHarness(t, start)

		h.ctrl.Toggle()
		h.ctrl.Toggle()

		startCollapsed := pixelLimits.Collapsed(start)
		if pixelLimits.Collapsed(h.width()) != startCollapsed {
			t.Errorf("start %d: after two toggles width %d is in the other class", start, h.width())
		}
		if startCollapsed && h.width() != pixelLimits.Narrow {
			t.Errorf("start %d: width = %d, want narrow", start, h.width())
		}
		if !startCollapsed && h.width() != pixelLimits.Default {
			t.Errorf("start %d: width = %d, want default", start, h.width())
		}
	}
}

func TestController_ClickAfterDragSamples(t *testing.T) {
	h := newHarness(t, 300)

	h.down(300)
	h.clock.Advance(30 * time.Millisecond)
	h.move(350)
	h.clock.Advance(30 * time.Millisecond)
	h.up()

	// The drag committed 350, then the short press toggled from there
	if len(h.emitted) != 2 || h.emitted[0] != 350 || h.emitted[1] != 100 {
		t.Errorf("emitted = %v, want [350 100]", h.emitted)
	}
}

func TestController_ListenerBalance(t *testing.T) {
	h := newHarness(t, 300)

	if h.listeners() != 0 {
		t.Fatalf("listeners before press = %d", h.listeners())
	}

	h.down(10)
	if h.window.Count(surface.PointerMove) != 1 || h.window.Count(surface.PointerUp) != 1 || h.window.Count(surface.PointerCancel) != 1 {
		t.Errorf("expected one move, up and cancel listener during a drag, got %d total", h.listeners())
	}
	h.up()
	if h.listeners() != 0 {
		t.Errorf("listeners after release = %d, want 0", h.listeners())
	}

	h.down(10)
	h.window.Dispatch(surface.Event{Kind: surface.PointerCancel})
	if h.listeners() != 0 {
		t.Errorf("listeners after cancel = %d, want 0", h.listeners())
	}

	h.down(10)
	h.ctrl.Close()
	if h.listeners() != 0 || h.ctrl.Dragging() {
		t.Errorf("Close should release the gesture, listeners = %d", h.listeners())
	}
}

func TestController_BeginWhileActiveIsIgnored(t *testing.T) {
	h := newHarness(t, 300)

	if !h.ctrl.Begin(surface.Event{X: 10, Button: surface.ButtonLeft}) {
		t.Fatal("first Begin should start a gesture")
	}
	if h.ctrl.Begin(surface.Event{X: 99, Button: surface.ButtonLeft}) {
		t.Error("second Begin should be ignored")
	}
	if s, _ := h.ctrl.Session(); s.StartX != 10 {
		t.Errorf("StartX = %d, want 10", s.StartX)
	}
	if h.listeners() != 3 {
		t.Errorf("listeners = %d, want 3", h.listeners())
	}
}

func TestController_NonPrimaryButtonIgnored(t *testing.T) {
	h := newHarness(t, 300)

	if h.ctrl.Begin(surface.Event{X: 10, Button: surface.ButtonRight}) {
		t.Error("right button should not start a gesture")
	}
	if h.ctrl.Dragging() {
		t.Error("controller should be idle")
	}
}

func TestController_CancelDoesNotToggle(t *testing.T) {
	h := newHarness(t, 300)

	h.down(10)
	h.clock.Advance(30 * time.Millisecond)
	h.move(40)
	h.window.Dispatch(surface.Event{Kind: surface.PointerCancel})
	h.up()

	if h.width() != 330 {
		t.Errorf("width = %d, want the last committed 330", h.width())
	}
	if len(h.emitted) != 1 {
		t.Errorf("emitted = %v, want a single drag update", h.emitted)
	}
}

func TestController_StartWidthCapturedAtPress(t *testing.T) {
	h := newHarness(t, 300)

	h.down(100)
	h.store.Update(func(p *config.Preferences) { p.SidebarWidth = 450 })
	h.emitted = nil
	h.clock.Advance(50 * time.Millisecond)
	h.move(120)

	if h.width() != 320 {
		t.Errorf("width = %d, want 320 relative to the press-time width", h.width())
	}
}

func TestController_ThrottleSpansGestures(t *testing.T) {
	h := newHarness(t, 300)

	h.down(0)
	h.clock.Advance(ClickMaxDuration)
	h.move(10)
	h.up()
	if len(h.emitted) != 1 {
		t.Fatalf("first gesture emitted %v, want one update", h.emitted)
	}

	h.down(0)
	h.clock.Advance(10 * time.Millisecond)
	h.move(20)
	if len(h.emitted) != 1 {
		t.Errorf("move within the interval of the previous gesture should be dropped, emitted = %v", h.emitted)
	}
	h.clock.Advance(10 * time.Millisecond)
	h.move(20)
	if len(h.emitted) != 2 {
		t.Errorf("move after the interval should be applied, emitted = %v", h.emitted)
	}
}

func TestController_MoveWithoutGesture(t *testing.T) {
	h := newHarness(t, 300)

	if h.ctrl.Move(surface.Event{X: 50}) {
		t.Error("Move without a gesture should do nothing")
	}
	if h.ctrl.End() {
		t.Error("End without a gesture should not toggle")
	}
	if len(h.emitted) != 0 {
		t.Errorf("emitted = %v, want none", h.emitted)
	}
}

func TestController_Resize(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		delta   int
		want    int
	}{
		{"grow", 300, 20, 320},
		{"grow capped", 490, 20, 500},
		{"shrink", 320, -20, 300},
		{"shrink past min collapses", 290, -20, 100},
		{"grow from collapsed starts at min", 100, 20, 280},
		{"shrink collapsed stays narrow", 100, -20, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.initial)
			h.ctrl.Resize(tt.delta)
			if h.width() != tt.want {
				t.Errorf("width = %d, want %d", h.width(), tt.want)
			}
		})
	}
}
