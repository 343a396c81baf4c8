package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/anonchat/internal/logger"
	"github.com/zhubert/anonchat/internal/notify"
	"github.com/zhubert/anonchat/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case RoomsFetchedMsg:
		return m.handleRoomsFetched(msg)

	case RoomCreatedMsg:
		return m.handleRoomCreated(msg)

	case MessagesFetchedMsg:
		return m.handleMessagesFetched(msg)

	case MessageSentMsg:
		return m.handleMessageSent(msg)

	case PollTickMsg:
		return m.handlePollTick(msg)

	case ui.RoomChosenMsg:
		m.sess.SelectRoom(msg.Room)
		m.lobby.SetSelected(msg.Room.ID)
		return m, nil

	case ui.CreateRoomRequestedMsg:
		return m.handleCreateRoomRequested(msg)

	case ui.JoinRequestedMsg:
		return m.handleJoinRequested()

	case ui.FlashTimeoutMsg:
		m.footer.ClearFlash(msg.Seq)
		return m, nil
	}

	return m.routeToActiveView(msg)
}

// handleKeyPress handles global keys, then routes to the active view
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	if m.sess.Joined() {
		switch msg.String() {
		case "esc":
			return m.handleLeave()
		case "enter":
			return m.handleSend()
		}
	}

	return m.routeToActiveView(msg)
}

// routeToActiveView forwards a message to the room panel when joined,
// otherwise to the lobby.
func (m *Model) routeToActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.sess.Joined() && m.room != nil {
		room, cmd := m.room.Update(msg)
		m.room = room
		return m, cmd
	}

	lobby, cmd := m.lobby.Update(msg)
	m.lobby = lobby
	// The nickname field is the source of truth while in the lobby
	m.sess.SetUsername(m.lobby.NicknameValue())
	return m, cmd
}

func (m *Model) handleRoomsFetched(msg RoomsFetchedMsg) (tea.Model, tea.Cmd) {
	// Loading always clears, success or failure
	m.lobby.SetLoading(false)
	if msg.Err != nil {
		// Prior collection stays; the next refresh gets another chance
		logger.Error("App: failed to fetch rooms: %v", msg.Err)
		return m, nil
	}

	m.sess.SetRooms(msg.Rooms)
	m.lobby.SetRooms(msg.Rooms)
	return m, nil
}

func (m *Model) handleCreateRoomRequested(msg ui.CreateRoomRequestedMsg) (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(msg.Name)
	if name == "" {
		// Silently rejected, no request issued
		return m, nil
	}
	return m, m.createRoom(name)
}

func (m *Model) handleRoomCreated(msg RoomCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Error("App: room creation failed: %v", msg.Err)
		// The typed name stays in the field for retry
		m.footer.SetFlash("Failed to create room", ui.FlashError)
		return m, m.footer.FlashTick()
	}

	m.lobby.ClearCreateInput()
	m.sess.SelectRoom(msg.Room)
	m.lobby.SetSelected(msg.Room.ID)

	// Full refetch rather than local append, so the list reflects the
	// server's canonical assignment
	m.lobby.SetLoading(true)
	return m, m.fetchRooms()
}

func (m *Model) handleJoinRequested() (tea.Model, tea.Cmd) {
	m.sess.SetUsername(m.lobby.NicknameValue())
	if !m.sess.Join() {
		logger.Debug("App: join ignored, guard not satisfied")
		return m, nil
	}

	// Remember the nickname for next launch; failure is log-only
	m.config.SetDefaultNickname(m.sess.Nickname())
	if err := m.config.Save(); err != nil {
		logger.Warn("App: failed to save config: %v", err)
	}

	return m, m.activateRoom()
}

func (m *Model) handleLeave() (tea.Model, tea.Cmd) {
	m.sess.Leave()
	m.deactivateRoom()
	return m, nil
}

func (m *Model) handleSend() (tea.Model, tea.Cmd) {
	if m.room == nil {
		return m, nil
	}

	content := strings.TrimSpace(m.room.InputValue())
	if content == "" {
		// No request issued for empty/whitespace input
		return m, nil
	}

	room := m.sess.SelectedRoom()
	if room == nil {
		return m, nil
	}

	// Optimistic clear: the field empties before the request resolves,
	// and is not restored on failure
	m.room.ClearInput()
	return m, m.sendMessage(m.pollGen, room.ID, m.sess.Nickname(), content)
}

func (m *Model) handlePollTick(msg PollTickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.pollGen || m.room == nil {
		// Stale tick from a torn-down activation; not rescheduled
		return m, nil
	}

	room := m.sess.SelectedRoom()
	if room == nil {
		return m, nil
	}

	return m, tea.Batch(
		m.fetchMessages(msg.Gen, room.ID),
		PollTick(msg.Gen),
	)
}

func (m *Model) handleMessagesFetched(msg MessagesFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.pollGen || m.room == nil {
		logger.Debug("App: dropping stale messages fetch, gen=%d current=%d", msg.Gen, m.pollGen)
		return m, nil
	}

	if msg.Err != nil {
		// Prior collection stays visible; loading still clears
		logger.Error("App: failed to fetch messages: %v", msg.Err)
		m.room.FinishLoading()
		return m, nil
	}

	cmd := m.notifyIfUnseen(msg)

	// Full replace - the display always equals the latest applied response
	m.room.SetMessages(msg.Messages)
	return m, cmd
}

// notifyIfUnseen sends a desktop notification when the fetched batch grew
// with messages from other users while the terminal window is unfocused.
func (m *Model) notifyIfUnseen(msg MessagesFetchedMsg) tea.Cmd {
	if m.windowFocused || m.room == nil {
		return nil
	}

	prev := len(m.room.Messages())
	if len(msg.Messages) <= prev {
		return nil
	}

	nickname := m.sess.Nickname()
	fresh := 0
	for _, message := range msg.Messages[prev:] {
		if message.Username != nickname {
			fresh++
		}
	}
	if fresh == 0 {
		return nil
	}

	roomName := ""
	if room := m.sess.SelectedRoom(); room != nil {
		roomName = room.Name
	}
	count := fresh
	return func() tea.Msg {
		notify.NewMessages(roomName, count)
		return nil
	}
}

func (m *Model) handleMessageSent(msg MessageSentMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.pollGen || m.room == nil {
		return m, nil
	}

	if msg.Err != nil {
		// Logged only; the cleared input is not restored
		logger.Error("App: failed to send message: %v", msg.Err)
		return m, nil
	}

	// The sent message appears only once the server echoes it back
	return m, m.fetchMessages(msg.Gen, msg.RoomID)
}
