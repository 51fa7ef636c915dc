package modals

import (
	"os"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/sidechat/internal/logger"
)

func TestMain(m *testing.M) {
	// Keep test runs out of the debug log
	logger.Reset()
	logger.Init(os.DevNull)

	plain := lipgloss.NewStyle()
	gray := lipgloss.Color("#888888")
	SetStyles(plain, plain, plain, plain, plain,
		gray, gray, gray, gray, gray, gray,
		50, 256, 60, 14)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
