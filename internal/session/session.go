// Package session holds the client-local session state: the known rooms,
// the selected room, the chosen nickname, and the joined flag. Nothing in
// this package performs I/O and nothing is persisted.
package session

import (
	"strings"

	"github.com/zhubert/anonchat/internal/api"
)

// Session is the state container behind the join flow. The joined flag may
// only become true while a room is selected and the trimmed nickname is
// non-empty; leaving clears only the flag so the user can rejoin without
// re-entering anything.
type Session struct {
	rooms    []api.Room
	selected *api.Room
	username string
	joined   bool
}

// New creates an empty session.
func New() *Session {
	return &Session{}
}

// SetRooms replaces the room collection wholesale, preserving server order.
func (s *Session) SetRooms(rooms []api.Room) {
	s.rooms = rooms
}

// Rooms returns the current room collection in server order.
func (s *Session) Rooms() []api.Room {
	return s.rooms
}

// SelectRoom marks a room as the current choice. Selection alone does not
// affect the joined flag.
func (s *Session) SelectRoom(room api.Room) {
	r := room
	s.selected = &r
}

// SelectedRoom returns the chosen room, or nil when none is selected.
func (s *Session) SelectedRoom() *api.Room {
	return s.selected
}

// SetUsername stores the nickname exactly as typed. Trimming is deferred to
// the join check so the user can edit freely, spaces included.
func (s *Session) SetUsername(name string) {
	s.username = name
}

// Username returns the raw nickname field value.
func (s *Session) Username() string {
	return s.username
}

// Nickname returns the trimmed nickname used for display and for
// own-message classification.
func (s *Session) Nickname() string {
	return strings.TrimSpace(s.username)
}

// CanJoin reports whether the join guard is satisfied.
func (s *Session) CanJoin() bool {
	return s.Nickname() != "" && s.selected != nil
}

// Join sets the joined flag when the guard is satisfied. Otherwise it is a
// no-op and the flag stays false.
func (s *Session) Join() bool {
	if !s.CanJoin() {
		return false
	}
	s.joined = true
	return true
}

// Leave clears the joined flag. The selected room, nickname, and room list
// all survive so a rejoin needs nothing re-entered.
func (s *Session) Leave() {
	s.joined = false
}

// Joined reports whether the user is currently in the room view.
func (s *Session) Joined() bool {
	return s.joined
}
