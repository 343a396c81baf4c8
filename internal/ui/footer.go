package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// DefaultFlashDuration is how long a flash message stays visible.
const DefaultFlashDuration = 3 * time.Second

// FlashType categorizes flash messages for styling
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashWarning
	FlashError
	FlashSuccess
)

// FlashTimeoutMsg is sent when a flash message should be dismissed. Seq
// identifies which flash the timeout belongs to, so a newer flash isn't
// dismissed by an older timer.
type FlashTimeoutMsg struct {
	Seq int
}

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings and flash messages
type Footer struct {
	width         int
	joined        bool // Whether the room view is active
	canJoin       bool // Whether the join guard is currently satisfied
	flashText     string
	flashType     FlashType
	flashSeq      int
	flashDuration time.Duration
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{flashDuration: DefaultFlashDuration}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(joined, canJoin bool) {
	f.joined = joined
	f.canJoin = canJoin
}

// SetFlash displays a flash message until the matching timeout fires
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.flashText = text
	f.flashType = flashType
	f.flashSeq++
}

// FlashSeq returns the sequence number of the current flash
func (f *Footer) FlashSeq() int {
	return f.flashSeq
}

// HasFlash returns whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashText != ""
}

// ClearFlash dismisses the flash if the timeout belongs to it
func (f *Footer) ClearFlash(seq int) {
	if seq == f.flashSeq {
		f.flashText = ""
	}
}

// FlashTick returns a command that dismisses this footer's current flash
// after the flash duration.
func (f *Footer) FlashTick() tea.Cmd {
	seq := f.flashSeq
	return tea.Tick(f.flashDuration, func(time.Time) tea.Msg {
		return FlashTimeoutMsg{Seq: seq}
	})
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashText != "" {
		style := FooterDescStyle
		switch f.flashType {
		case FlashError:
			style = StatusErrorStyle
		case FlashWarning:
			style = StatusWarningStyle
		case FlashSuccess:
			style = StatusSuccessStyle
		}
		return FooterStyle.Width(f.width).Render(style.Render(f.flashText))
	}

	var bindings []KeyBinding
	if f.joined {
		bindings = []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "esc", Desc: "leave room"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	} else {
		bindings = []KeyBinding{
			{Key: "tab", Desc: "next field"},
			{Key: "↑/↓", Desc: "pick room"},
			{Key: "enter", Desc: "create/join"},
		}
		if f.canJoin {
			bindings = append(bindings, KeyBinding{Key: "ctrl+j", Desc: "join"})
		}
		bindings = append(bindings, KeyBinding{Key: "ctrl+c", Desc: "quit"})
	}

	var parts []string
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(content)
}
