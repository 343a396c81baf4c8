package ui

import (
	"strings"
)

// Header represents the top header bar
type Header struct {
	width    int
	roomName string
	nickname string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetRoom sets the active room name to display, or empty when in the lobby
func (h *Header) SetRoom(name string) {
	h.roomName = name
}

// SetNickname sets the session nickname to display
func (h *Header) SetNickname(name string) {
	h.nickname = name
}

// View renders the header
func (h *Header) View() string {
	titleText := " anonchat"
	var rightText string
	if h.roomName != "" {
		rightText = h.roomName
		if h.nickname != "" {
			rightText += " (" + h.nickname + ")"
		}
		rightText += " "
	}

	paddingLen := h.width - len(titleText) - len(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	return HeaderStyle.Width(h.width).Render(fullContent)
}
