// Package notify provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/anonchat/internal/logger"
)

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	logger.Log("Notify: sending notification - title=%q, message=%q", title, message)
	// Use empty string for icon - beeep handles platform defaults
	err := beeep.Notify(title, message, "")
	if err != nil {
		logger.Log("Notify: failed to send notification: %v", err)
	}
	return err
}

// NewMessages sends a notification about fresh messages in a room. Used
// when the terminal window is unfocused so the user isn't watching the
// poll loop.
func NewMessages(roomName string, count int) error {
	if count == 1 {
		return Send("anonchat", fmt.Sprintf("New message in %s", roomName))
	}
	return Send("anonchat", fmt.Sprintf("%d new messages in %s", count, roomName))
}
