// Package launch opens URLs and app links with the operating system's
// default handler.
package launch

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	perrors "github.com/zhubert/sidechat/internal/errors"
	"github.com/zhubert/sidechat/internal/logger"
)

const (
	// ShopURL is the plugin shop linked from the sidebar
	ShopURL = "https://shop.lookforward.top"

	// WeChatURL opens the WeChat desktop app
	WeChatURL = "weixin://"

	// ContactID is the WeChat id copied by the contact action
	ContactID = "tobeyou-20"
)

// Runner starts a command without waiting for it to finish.
type Runner func(name string, args ...string) error

func startCommand(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

var runner Runner = startCommand

// SetRunner replaces the command runner. Used by tests.
func SetRunner(r Runner) {
	runner = r
}

// ResetRunner restores the default runner.
func ResetRunner() {
	runner = startCommand
}

// Command returns the program and arguments that open target on goos.
func Command(goos, target string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{target}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	case "windows":
		// The empty argument is the window title start expects before the target
		return "cmd", []string{"/c", "start", "", strings.ReplaceAll(target, "&", "^&")}, nil
	default:
		return "", nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}

// Open hands target to the default handler for the current OS.
func Open(target string) error {
	log := logger.WithComponent("launch")

	name, args, err := Command(runtime.GOOS, target)
	if err != nil {
		log.Warn("cannot open target", "target", target, "error", err)
		return perrors.LaunchFailed(target, err)
	}

	log.Info("opening", "target", target, "command", name)
	if err := runner(name, args...); err != nil {
		log.Warn("open failed", "target", target, "error", err)
		return perrors.LaunchFailed(target, err)
	}
	return nil
}
