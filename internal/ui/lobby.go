package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/anonchat/internal/api"
)

// lobbyFocus identifies which lobby field has keyboard focus
type lobbyFocus int

const (
	focusRoomList lobbyFocus = iota
	focusCreateInput
	focusNicknameInput
	lobbyFocusCount
)

// RoomChosenMsg is emitted when the user picks a room from the list
type RoomChosenMsg struct {
	Room api.Room
}

// CreateRoomRequestedMsg is emitted when the user submits the create-room field
type CreateRoomRequestedMsg struct {
	Name string
}

// JoinRequestedMsg is emitted when the user asks to join the chosen room
type JoinRequestedMsg struct{}

// Lobby is the pre-join screen: the room list, the room creation field,
// and the nickname field.
type Lobby struct {
	rooms       []api.Room
	loading     bool
	cursor      int
	selectedID  string
	createInput textinput.Model
	nickInput   textinput.Model
	focus       lobbyFocus
	width       int
	height      int
}

// NewLobby creates a new lobby screen
func NewLobby() *Lobby {
	createInput := textinput.New()
	createInput.Placeholder = "New room name"
	createInput.CharLimit = InputCharLimit

	nickInput := textinput.New()
	nickInput.Placeholder = "e.g. BlueFox42"
	nickInput.CharLimit = InputCharLimit

	l := &Lobby{
		loading:     true,
		createInput: createInput,
		nickInput:   nickInput,
		focus:       focusRoomList,
	}
	return l
}

// SetSize sets the lobby dimensions
func (l *Lobby) SetSize(width, height int) {
	l.width = width
	l.height = height

	inputWidth := l.panelInnerWidth() - InputPaddingWidth
	if inputWidth < 10 {
		inputWidth = 10
	}
	l.createInput.SetWidth(inputWidth)
	l.nickInput.SetWidth(inputWidth)
}

func (l *Lobby) panelInnerWidth() int {
	w := l.width/2 - BorderSize
	if w < 20 {
		w = 20
	}
	return w
}

// SetRooms replaces the room collection wholesale, preserving server order.
// The cursor is clamped; the selection marker survives if the room still
// exists in the new collection.
func (l *Lobby) SetRooms(rooms []api.Room) {
	l.rooms = rooms
	l.loading = false
	if l.cursor >= len(rooms) {
		l.cursor = len(rooms) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.selectedID != "" {
		found := false
		for _, r := range rooms {
			if r.ID == l.selectedID {
				found = true
				break
			}
		}
		if !found {
			l.selectedID = ""
		}
	}
}

// Rooms returns the current room collection
func (l *Lobby) Rooms() []api.Room {
	return l.rooms
}

// SetLoading sets the loading indicator for the room list
func (l *Lobby) SetLoading(loading bool) {
	l.loading = loading
}

// SetSelected marks a room as the chosen one
func (l *Lobby) SetSelected(roomID string) {
	l.selectedID = roomID
	for i, r := range l.rooms {
		if r.ID == roomID {
			l.cursor = i
			break
		}
	}
}

// NicknameValue returns the raw nickname field value
func (l *Lobby) NicknameValue() string {
	return l.nickInput.Value()
}

// SetNickname pre-fills the nickname field
func (l *Lobby) SetNickname(name string) {
	l.nickInput.SetValue(name)
}

// CreateValue returns the raw create-room field value
func (l *Lobby) CreateValue() string {
	return l.createInput.Value()
}

// ClearCreateInput clears the create-room field after a successful creation
func (l *Lobby) ClearCreateInput() {
	l.createInput.Reset()
}

// setFocus moves keyboard focus to the given field, blurring the others
func (l *Lobby) setFocus(f lobbyFocus) {
	l.focus = f
	l.createInput.Blur()
	l.nickInput.Blur()
	switch f {
	case focusCreateInput:
		l.createInput.Focus()
	case focusNicknameInput:
		l.nickInput.Focus()
	}
}

// Update handles messages
func (l *Lobby) Update(msg tea.Msg) (*Lobby, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyPressMsg)
	if !isKey {
		return l, nil
	}

	switch keyMsg.String() {
	case "tab":
		l.setFocus((l.focus + 1) % lobbyFocusCount)
		return l, nil
	case "shift+tab":
		l.setFocus((l.focus + lobbyFocusCount - 1) % lobbyFocusCount)
		return l, nil
	case "ctrl+j":
		return l, func() tea.Msg { return JoinRequestedMsg{} }
	}

	switch l.focus {
	case focusRoomList:
		switch keyMsg.String() {
		case "up", "k":
			if l.cursor > 0 {
				l.cursor--
			}
		case "down", "j":
			if l.cursor < len(l.rooms)-1 {
				l.cursor++
			}
		case "enter":
			if l.cursor >= 0 && l.cursor < len(l.rooms) {
				room := l.rooms[l.cursor]
				l.selectedID = room.ID
				return l, func() tea.Msg { return RoomChosenMsg{Room: room} }
			}
		}
		return l, nil

	case focusCreateInput:
		if keyMsg.String() == "enter" {
			name := l.createInput.Value()
			return l, func() tea.Msg { return CreateRoomRequestedMsg{Name: name} }
		}
		var cmd tea.Cmd
		l.createInput, cmd = l.createInput.Update(msg)
		return l, cmd

	case focusNicknameInput:
		if keyMsg.String() == "enter" {
			return l, func() tea.Msg { return JoinRequestedMsg{} }
		}
		var cmd tea.Cmd
		l.nickInput, cmd = l.nickInput.Update(msg)
		return l, cmd
	}

	return l, nil
}

// renderRoomList renders the room list section
func (l *Lobby) renderRoomList() string {
	if l.loading {
		return PlaceholderStyle.Render("Loading rooms...")
	}
	if len(l.rooms) == 0 {
		return PlaceholderStyle.Render("No rooms yet. Create one below.")
	}

	var sb strings.Builder
	for i, room := range l.rooms {
		style := ListItemStyle
		prefix := "  "
		if l.focus == focusRoomList && i == l.cursor {
			style = ListSelectedStyle
			prefix = "> "
		} else if room.ID == l.selectedID {
			prefix = "* "
		}
		line := prefix + room.Name + " " + ListIDStyle.Render("id: "+room.ID)
		sb.WriteString(style.Render(line))
		if i < len(l.rooms)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// View renders the lobby as two side-by-side panels
func (l *Lobby) View() string {
	panelWidth := l.width / 2
	panelHeight := l.height

	// Left panel: room list + create form
	leftStyle := PanelStyle
	if l.focus == focusRoomList || l.focus == focusCreateInput {
		leftStyle = PanelFocusedStyle
	}

	var left strings.Builder
	left.WriteString(PanelTitleStyle.Render("Choose a room"))
	left.WriteString("\n\n")
	left.WriteString(l.renderRoomList())
	left.WriteString("\n\n")
	left.WriteString(FieldLabelStyle.Render("New room:"))
	left.WriteString("\n")
	left.WriteString(l.createInput.View())

	// Right panel: nickname + join hint
	rightStyle := PanelStyle
	if l.focus == focusNicknameInput {
		rightStyle = PanelFocusedStyle
	}

	var right strings.Builder
	right.WriteString(PanelTitleStyle.Render("Pick a nickname"))
	right.WriteString("\n\n")
	right.WriteString(l.nickInput.View())
	right.WriteString("\n\n")
	if strings.TrimSpace(l.nickInput.Value()) != "" && l.selectedID != "" {
		right.WriteString(StatusSuccessStyle.Render("Ready - press ctrl+j to join"))
	} else {
		right.WriteString(PlaceholderStyle.Render("Pick a room and a nickname to join."))
	}
	right.WriteString("\n\n")
	right.WriteString(PlaceholderStyle.Render("No login required. Your nickname is\nonly used in this session."))

	leftPanel := leftStyle.Width(panelWidth - BorderSize).Height(panelHeight - BorderSize).Render(left.String())
	rightPanel := rightStyle.Width(l.width - panelWidth - BorderSize).Height(panelHeight - BorderSize).Render(right.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)
}
