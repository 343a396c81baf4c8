package ui

import (
	"strings"
	"testing"

	"github.com/zhubert/anonchat/internal/api"
)

func TestLobby_LoadingThenEmpty(t *testing.T) {
	lobby := NewLobby()

	if got := lobby.renderRoomList(); !strings.Contains(got, "Loading rooms...") {
		t.Errorf("renderRoomList() = %q, want loading placeholder", got)
	}

	// Empty backend: the initial fetch resolves with no rooms
	lobby.SetRooms(nil)
	if got := lobby.renderRoomList(); !strings.Contains(got, "No rooms yet") {
		t.Errorf("renderRoomList() = %q, want empty placeholder", got)
	}
}

func TestLobby_SetRooms_FullReplace(t *testing.T) {
	lobby := NewLobby()
	lobby.SetRooms([]api.Room{
		{ID: "1", Name: "General"},
		{ID: "2", Name: "Random"},
	})
	lobby.SetSelected("1")

	// Replacement omits the selected room: the marker must not survive
	lobby.SetRooms([]api.Room{{ID: "2", Name: "Random"}})

	if len(lobby.Rooms()) != 1 {
		t.Fatalf("Rooms() has %d entries, want 1", len(lobby.Rooms()))
	}
	if lobby.selectedID != "" {
		t.Errorf("selectedID = %q, want cleared when room disappears", lobby.selectedID)
	}
}

func TestLobby_CursorClampedOnShrink(t *testing.T) {
	lobby := NewLobby()
	lobby.SetRooms([]api.Room{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "B"},
		{ID: "3", Name: "C"},
	})
	lobby.cursor = 2

	lobby.SetRooms([]api.Room{{ID: "1", Name: "A"}})
	if lobby.cursor != 0 {
		t.Errorf("cursor = %d, want clamped to 0", lobby.cursor)
	}
}

func TestLobby_SetSelectedMovesCursor(t *testing.T) {
	lobby := NewLobby()
	lobby.SetRooms([]api.Room{
		{ID: "1", Name: "General"},
		{ID: "2", Name: "Random"},
	})

	lobby.SetSelected("2")
	if lobby.cursor != 1 {
		t.Errorf("cursor = %d, want 1", lobby.cursor)
	}
	if lobby.selectedID != "2" {
		t.Errorf("selectedID = %q, want %q", lobby.selectedID, "2")
	}
}

func TestLobby_NicknameRoundTrip(t *testing.T) {
	lobby := NewLobby()
	lobby.SetNickname("  BlueFox42 ")

	// The raw value is preserved; trimming happens at the join check
	if got := lobby.NicknameValue(); got != "  BlueFox42 " {
		t.Errorf("NicknameValue() = %q, want raw value", got)
	}
}

func TestLobby_ClearCreateInput(t *testing.T) {
	lobby := NewLobby()
	lobby.createInput.SetValue("General")

	lobby.ClearCreateInput()
	if lobby.CreateValue() != "" {
		t.Errorf("CreateValue() = %q, want empty", lobby.CreateValue())
	}
}
