package clipboard

import (
	"errors"
	"testing"

	perrors "github.com/zhubert/sidechat/internal/errors"
)

type memoryBackend struct {
	text     string
	initErr  error
	writeErr error
	inits    int
}

func (m *memoryBackend) Init() error {
	m.inits++
	return m.initErr
}

func (m *memoryBackend) Write(text string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.text = text
	return nil
}

func (m *memoryBackend) Read() string { return m.text }

func TestWriteAndReadText(t *testing.T) {
	mem := &memoryBackend{}
	SetBackend(mem)
	defer ResetBackend()

	if err := WriteText("tobeyou-20"); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	got, err := ReadText()
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	if got != "tobeyou-20" {
		t.Errorf("ReadText() = %q", got)
	}
	if mem.inits != 1 {
		t.Errorf("backend initialized %d times, want 1", mem.inits)
	}
}

func TestWriteText_Errors(t *testing.T) {
	tests := []struct {
		name    string
		backend *memoryBackend
	}{
		{"init fails", &memoryBackend{initErr: errors.New("no display")}},
		{"write fails", &memoryBackend{writeErr: errors.New("denied")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetBackend(tt.backend)
			defer ResetBackend()

			err := WriteText("x")
			if err == nil {
				t.Fatal("expected error")
			}
			if !perrors.Is(err, perrors.KindClipboard) {
				t.Errorf("error kind = %v, want clipboard", perrors.GetKind(err))
			}
		})
	}
}

func TestInit_RetriesAfterFailure(t *testing.T) {
	mem := &memoryBackend{initErr: errors.New("no display")}
	SetBackend(mem)
	defer ResetBackend()

	if err := Init(); err == nil {
		t.Fatal("Init() should fail")
	}
	mem.initErr = nil
	if err := Init(); err != nil {
		t.Fatalf("Init() after recovery error = %v", err)
	}
	if err := Init(); err != nil {
		t.Fatal(err)
	}
	if mem.inits != 2 {
		t.Errorf("inits = %d, want 2", mem.inits)
	}
}
