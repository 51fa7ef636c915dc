package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/jonboulle/clockwork"
)

func TestNewFooter(t *testing.T) {
	footer := NewFooter()

	if len(footer.bindings) == 0 {
		t.Error("Expected default bindings to be set")
	}
	if footer.HasFlash() {
		t.Error("Expected no flash message initially")
	}
}

func TestFooter_SetFlash(t *testing.T) {
	footer := NewFooter()

	footer.SetFlash("Copied WeChat ID", FlashSuccess)

	if footer.flashMessage == nil {
		t.Fatal("Expected flash message to be set")
	}
	if footer.flashMessage.Text != "Copied WeChat ID" || footer.flashMessage.Type != FlashSuccess {
		t.Errorf("flash = %+v", footer.flashMessage)
	}
	if footer.flashMessage.Duration != DefaultFlashDuration {
		t.Errorf("Expected duration %v, got %v", DefaultFlashDuration, footer.flashMessage.Duration)
	}

	footer.ClearFlash()
	if footer.HasFlash() {
		t.Error("Expected HasFlash() to return false after ClearFlash()")
	}
}

func TestFlashMessage_IsExpired(t *testing.T) {
	fresh := &FlashMessage{CreatedAt: time.Now(), Duration: 5 * time.Second}
	if fresh.IsExpired() {
		t.Error("New message should not be expired")
	}

	old := &FlashMessage{CreatedAt: time.Now().Add(-10 * time.Second), Duration: 5 * time.Second}
	if !old.IsExpired() {
		t.Error("Old message should be expired")
	}
}

func TestFooter_ClearIfExpired(t *testing.T) {
	clock := clockwork.NewFakeClock()
	footer := NewFooter()
	footer.clock = clock

	footer.SetFlashWithDuration("Saved", FlashInfo, 2*time.Second)

	clock.Advance(time.Second)
	if footer.ClearIfExpired() {
		t.Error("Should not clear non-expired message")
	}

	clock.Advance(time.Second)
	if !footer.ClearIfExpired() {
		t.Error("Should clear expired message")
	}
	if footer.HasFlash() {
		t.Error("Flash should be cleared")
	}
	if footer.ClearIfExpired() {
		t.Error("Nothing left to clear")
	}
}

func TestFooter_FlashTypes(t *testing.T) {
	tests := []struct {
		name         string
		flashType    FlashType
		expectedIcon string
	}{
		{"Error", FlashError, "✕"},
		{"Warning", FlashWarning, "⚠"},
		{"Info", FlashInfo, "ℹ"},
		{"Success", FlashSuccess, "✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			footer := NewFooter()
			footer.SetWidth(80)
			footer.SetFlash("Test message", tt.flashType)

			view := ansi.Strip(footer.View())
			if !strings.Contains(view, tt.expectedIcon+" Test message") {
				t.Errorf("Expected %s flash to contain icon %q, got %q", tt.name, tt.expectedIcon, view)
			}
			if strings.Contains(view, "quit") {
				t.Error("flash should replace the key bindings")
			}
		})
	}
}

func TestFooter_ContextBindings(t *testing.T) {
	tests := []struct {
		name        string
		chatFocused bool
		dragging    bool
		want        []string
		notWant     []string
	}{
		{"sidebar", false, false, []string{"n: new chat", "\\: collapse", "q: quit"}, []string{"enter: send"}},
		{"chat", true, false, []string{"enter: send", "tab: switch pane"}, []string{"q: quit"}},
		{"dragging", false, true, []string{"release: apply"}, []string{"n: new chat"}},
		{"dragging wins over chat", true, true, []string{"drag: resize"}, []string{"enter: send"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			footer := NewFooter()
			footer.SetWidth(200)
			footer.SetContext(tt.chatFocused, tt.dragging)

			view := ansi.Strip(footer.View())
			for _, s := range tt.want {
				if !strings.Contains(view, s) {
					t.Errorf("footer should contain %q, got %q", s, view)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(view, s) {
					t.Errorf("footer should not contain %q", s)
				}
			}
		})
	}
}

func TestFlashTick(t *testing.T) {
	if FlashTick() == nil {
		t.Error("FlashTick() should return a command")
	}
}
