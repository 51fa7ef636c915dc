// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	_ "embed"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/sidechat/internal/logger"
)

// Title is the title of every notification sidechat sends
const Title = "sidechat"

//go:embed icon.png
var icon []byte

// notifier is the function used to deliver notifications. Tests swap it out.
var notifier = beeep.Notify

func init() {
	beeep.AppName = Title
}

// SetNotifier replaces the notification function. Used by tests.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores the beeep notifier.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	err := notifier(title, message, icon)
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// ContactCopied tells the user the contact id is on the clipboard and the
// messaging app is about to open.
func ContactCopied(contactID string) error {
	return Send(Title, "Copied WeChat ID "+contactID+". Opening WeChat to add a friend...")
}

// SessionDeleted reports that a chat was deleted.
func SessionDeleted(topic string) error {
	return Send(Title, "Deleted \""+topic+"\"")
}
