// Package clipboard reads and writes text on the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	perrors "github.com/zhubert/sidechat/internal/errors"
	"github.com/zhubert/sidechat/internal/logger"
)

// Backend is the clipboard implementation. The system backend is used unless
// a test installs another with SetBackend.
type Backend interface {
	Init() error
	Write(text string) error
	Read() string
}

type systemBackend struct{}

func (systemBackend) Init() error {
	return clipboard.Init()
}

func (systemBackend) Write(text string) error {
	// Write returns a channel closed when the content is overwritten; we
	// don't track ownership.
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (systemBackend) Read() string {
	return string(clipboard.Read(clipboard.FmtText))
}

var (
	mu          sync.Mutex
	backend     Backend = systemBackend{}
	initialized bool
)

// SetBackend replaces the clipboard backend. Used by tests.
func SetBackend(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	backend = b
	initialized = false
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	SetBackend(systemBackend{})
}

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := backend.Init(); err != nil {
		logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	initialized = true
	return nil
}

// WriteText puts text on the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return perrors.ClipboardWriteFailed(err)
	}
	if err := backend.Write(text); err != nil {
		return perrors.ClipboardWriteFailed(err)
	}
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// ReadText reads text from the clipboard.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return "", err
	}
	return backend.Read(), nil
}
