// Package app wires the lobby and room views into the top-level Bubble Tea
// model. All networking happens through commands; the update loop itself
// never blocks.
package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/anonchat/internal/api"
	"github.com/zhubert/anonchat/internal/config"
	"github.com/zhubert/anonchat/internal/logger"
	"github.com/zhubert/anonchat/internal/session"
	"github.com/zhubert/anonchat/internal/ui"
)

// Client is the backend surface the app depends on. *api.Client satisfies
// it; tests substitute a fake.
type Client interface {
	ListRooms(ctx context.Context) ([]api.Room, error)
	CreateRoom(ctx context.Context, name string) (api.Room, error)
	ListMessages(ctx context.Context, roomID string) ([]api.Message, error)
	PostMessage(ctx context.Context, roomID, username, content string) (api.Message, error)
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	client  Client
	version string // App version (injected at build time)

	sess   *session.Session
	header *ui.Header
	footer *ui.Footer
	lobby  *ui.Lobby
	room   *ui.RoomPanel // nil unless joined

	width  int
	height int

	// pollGen identifies the current room activation. Every fetch result
	// and poll tick carries the generation it was issued under; anything
	// stale is dropped, so a torn-down room view can never apply state.
	pollGen int

	windowFocused bool
}

// New creates a new app model
func New(cfg *config.Config, client Client, version string) *Model {
	m := &Model{
		config:        cfg,
		client:        client,
		version:       version,
		sess:          session.New(),
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		lobby:         ui.NewLobby(),
		windowFocused: true,
	}

	if nick := cfg.GetDefaultNickname(); nick != "" {
		m.lobby.SetNickname(nick)
		m.sess.SetUsername(nick)
	}

	return m
}

// Init initializes the model: the room list is fetched once at startup.
func (m *Model) Init() tea.Cmd {
	return m.fetchRooms()
}

// Session exposes the session state container (for tests)
func (m *Model) Session() *session.Session {
	return m.sess
}

// Room exposes the active room panel, or nil when not joined (for tests)
func (m *Model) Room() *ui.RoomPanel {
	return m.room
}

// Lobby exposes the lobby screen (for tests)
func (m *Model) Lobby() *ui.Lobby {
	return m.lobby
}

// Footer exposes the footer (for tests)
func (m *Model) Footer() *ui.Footer {
	return m.footer
}

// PollGen returns the current room activation generation (for tests)
func (m *Model) PollGen() int {
	return m.pollGen
}

// updateSizes recalculates component dimensions after a resize
func (m *Model) updateSizes() {
	contentHeight := m.height - ui.HeaderHeight - ui.FooterHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.lobby.SetSize(m.width, contentHeight)
	if m.room != nil {
		m.room.SetSize(m.width, contentHeight)
	}
}

// activateRoom tears down any previous room view and starts a fresh one:
// new panel, bumped generation, immediate fetch, and the recurring poll.
func (m *Model) activateRoom() tea.Cmd {
	room := m.sess.SelectedRoom()
	if room == nil {
		return nil
	}

	m.pollGen++
	m.room = ui.NewRoomPanel(room.Name, m.sess.Nickname())
	m.header.SetRoom(room.Name)
	m.header.SetNickname(m.sess.Nickname())
	m.updateSizes()

	logger.Log("App: room activated id=%s name=%q gen=%d", room.ID, room.Name, m.pollGen)
	return tea.Batch(
		m.fetchMessages(m.pollGen, room.ID),
		PollTick(m.pollGen),
	)
}

// deactivateRoom tears down the room view. Bumping the generation
// invalidates the recurring poll and any in-flight fetch.
func (m *Model) deactivateRoom() {
	m.pollGen++
	m.room = nil
	m.header.SetRoom("")
	m.header.SetNickname("")
	logger.Log("App: room deactivated, gen=%d", m.pollGen)
}
