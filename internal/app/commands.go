package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/anonchat/internal/api"
)

// requestTimeout bounds every backend call issued from the update loop.
const requestTimeout = 10 * time.Second

// RoomsFetchedMsg carries the result of a list-rooms call
type RoomsFetchedMsg struct {
	Rooms []api.Room
	Err   error
}

// RoomCreatedMsg carries the result of a create-room call
type RoomCreatedMsg struct {
	Room api.Room
	Err  error
}

// MessagesFetchedMsg carries the result of a list-messages call. Gen ties
// the result to the room activation that issued it.
type MessagesFetchedMsg struct {
	Gen      int
	RoomID   string
	Messages []api.Message
	Err      error
}

// MessageSentMsg carries the result of a post-message call
type MessageSentMsg struct {
	Gen    int
	RoomID string
	Err    error
}

// fetchRooms issues a list-rooms request
func (m *Model) fetchRooms() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		rooms, err := client.ListRooms(ctx)
		return RoomsFetchedMsg{Rooms: rooms, Err: err}
	}
}

// createRoom issues a create-room request with an already trimmed name
func (m *Model) createRoom(name string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		room, err := client.CreateRoom(ctx, name)
		return RoomCreatedMsg{Room: room, Err: err}
	}
}

// fetchMessages issues a list-messages request for the given activation
func (m *Model) fetchMessages(gen int, roomID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		messages, err := client.ListMessages(ctx, roomID)
		return MessagesFetchedMsg{Gen: gen, RoomID: roomID, Messages: messages, Err: err}
	}
}

// sendMessage issues a post-message request for the given activation
func (m *Model) sendMessage(gen int, roomID, username, content string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		_, err := client.PostMessage(ctx, roomID, username, content)
		return MessageSentMsg{Gen: gen, RoomID: roomID, Err: err}
	}
}
