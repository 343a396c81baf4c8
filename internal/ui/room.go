package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zhubert/anonchat/internal/api"
)

// RoomPanel is the active room view: the message list and the composition
// input. A fresh panel is created on every room activation; its state is
// never shared across rooms.
type RoomPanel struct {
	viewport viewport.Model
	input    textinput.Model
	width    int
	height   int
	roomName string
	nickname string
	messages []api.Message
	loading  bool
}

// NewRoomPanel creates a panel for the given room and session nickname.
func NewRoomPanel(roomName, nickname string) *RoomPanel {
	ti := textinput.New()
	ti.Placeholder = "Type a message"
	ti.CharLimit = 0
	ti.Focus()

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	p := &RoomPanel{
		viewport: vp,
		input:    ti,
		roomName: roomName,
		nickname: nickname,
		loading:  true,
	}
	p.updateContent()
	return p
}

// SetSize sets the panel dimensions
func (p *RoomPanel) SetSize(width, height int) {
	p.width = width
	p.height = height

	// Room title takes one line inside the bordered panel
	viewportHeight := height - InputTotalHeight - BorderSize - 1
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	p.viewport.SetWidth(width - BorderSize)
	p.viewport.SetHeight(viewportHeight)
	p.input.SetWidth(width - BorderSize - InputPaddingWidth)

	p.updateContent()
}

// SetMessages replaces the message collection wholesale, preserving server
// order, then scrolls to the bottom so the newest content is visible.
func (p *RoomPanel) SetMessages(messages []api.Message) {
	p.messages = messages
	p.loading = false
	p.updateContent()
}

// Messages returns the currently displayed collection
func (p *RoomPanel) Messages() []api.Message {
	return p.messages
}

// Loading reports whether the first fetch of this activation is still pending
func (p *RoomPanel) Loading() bool {
	return p.loading
}

// FinishLoading clears the loading indicator without touching the message
// collection. Used when a fetch fails: the prior collection stays visible.
func (p *RoomPanel) FinishLoading() {
	if p.loading {
		p.loading = false
		p.updateContent()
	}
}

// InputValue returns the raw composition field value
func (p *RoomPanel) InputValue() string {
	return p.input.Value()
}

// ClearInput clears the composition field
func (p *RoomPanel) ClearInput() {
	p.input.Reset()
}

// IsOwn reports whether a message should be rendered as the session's own.
// Classification is purely string equality on the nickname; the backend
// assigns no identity.
func (p *RoomPanel) IsOwn(msg api.Message) bool {
	return msg.Username == p.nickname
}

func (p *RoomPanel) updateContent() {
	wrapWidth := p.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var sb strings.Builder
	if p.loading {
		sb.WriteString(PlaceholderStyle.Render("Loading messages..."))
	} else if len(p.messages) == 0 {
		sb.WriteString(PlaceholderStyle.Render("No messages yet. Be the first to say hi!"))
	} else {
		for i, msg := range p.messages {
			if i > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(p.renderMessage(msg, wrapWidth))
		}
	}

	p.viewport.SetContent(sb.String())
	p.viewport.GotoBottom()
}

// renderMessage renders one message. Internal whitespace and newlines in
// the content are preserved; long lines wrap to the viewport width. Own
// messages are right-aligned.
func (p *RoomPanel) renderMessage(msg api.Message, wrapWidth int) string {
	nameStyle := ChatOtherNameStyle
	if p.IsOwn(msg) {
		nameStyle = ChatOwnNameStyle
	}

	block := nameStyle.Render(msg.Username) + "\n" + wrapText(msg.Content, wrapWidth)
	if p.IsOwn(msg) {
		return lipgloss.NewStyle().Width(wrapWidth).Align(lipgloss.Right).Render(block)
	}
	return block
}

// wrapText wraps text to the specified width, preserving existing newlines
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// Update handles messages
func (p *RoomPanel) Update(msg tea.Msg) (*RoomPanel, tea.Cmd) {
	var cmds []tea.Cmd

	if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
		switch keyMsg.String() {
		case "pgup", "pgdown", "ctrl+u", "ctrl+d", "home", "end":
			// Pass to viewport for scrolling
			var cmd tea.Cmd
			p.viewport, cmd = p.viewport.Update(msg)
			return p, cmd
		}

		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	// Update viewport for non-key events (mouse wheel)
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return p, tea.Batch(cmds...)
}

// View renders the room panel
func (p *RoomPanel) View() string {
	chatPanelHeight := p.height - InputTotalHeight

	var title strings.Builder
	title.WriteString(PanelTitleStyle.Render(p.roomName))
	title.WriteString("\n")
	title.WriteString(p.viewport.View())

	chatPanel := PanelStyle.Width(p.width - BorderSize).Height(chatPanelHeight - BorderSize).Render(title.String())
	inputArea := ChatInputStyle.Width(p.width - BorderSize).Render(p.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}
