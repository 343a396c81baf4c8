package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zhubert/anonchat/internal/api"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New().Router())
	t.Cleanup(srv.Close)
	return srv
}

func createRoom(t *testing.T, srv *httptest.Server, name string) api.Room {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"name": name})
	resp, err := http.Post(srv.URL+"/api/rooms", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/rooms error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /api/rooms status = %d", resp.StatusCode)
	}
	var room api.Room
	if err := json.NewDecoder(resp.Body).Decode(&room); err != nil {
		t.Fatalf("decode room: %v", err)
	}
	return room
}

func postMessage(t *testing.T, srv *httptest.Server, roomID, username, content string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"room_id":  roomID,
		"username": username,
		"content":  content,
	})
	resp, err := http.Post(srv.URL+"/api/messages", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/messages error = %v", err)
	}
	return resp
}

func TestListRooms_EmptyBackend(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/rooms")
	if err != nil {
		t.Fatalf("GET /api/rooms error = %v", err)
	}
	defer resp.Body.Close()

	var rooms []api.Room
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		t.Fatalf("decode rooms: %v", err)
	}
	if len(rooms) != 0 {
		t.Errorf("rooms = %v, want empty", rooms)
	}
}

func TestCreateRoom_TrimsName(t *testing.T) {
	srv := newTestServer(t)

	room := createRoom(t, srv, "  General  ")
	if room.Name != "General" {
		t.Errorf("room name = %q, want %q", room.Name, "General")
	}
	if room.ID == "" {
		t.Error("room id should be server-assigned")
	}
}

func TestCreateRoom_RejectsEmptyName(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(map[string]string{"name": "   "})
	resp, err := http.Post(srv.URL+"/api/rooms", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/rooms error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestMessages_RoundTripAndOrder(t *testing.T) {
	srv := newTestServer(t)
	room := createRoom(t, srv, "General")

	for i := 1; i <= 3; i++ {
		resp := postMessage(t, srv, room.ID, "Fox", fmt.Sprintf("msg %d", i))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("POST /api/messages status = %d", resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/api/messages?room_id=" + room.ID + "&limit=100")
	if err != nil {
		t.Fatalf("GET /api/messages error = %v", err)
	}
	defer resp.Body.Close()

	var msgs []api.Message
	if err := json.NewDecoder(resp.Body).Decode(&msgs); err != nil {
		t.Fatalf("decode messages: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("len(msgs) = %d, want 3", len(msgs))
	}
	for i, m := range msgs {
		want := fmt.Sprintf("msg %d", i+1)
		if m.Content != want {
			t.Errorf("msgs[%d].Content = %q, want %q", i, m.Content, want)
		}
	}
}

func TestMessages_LimitWindow(t *testing.T) {
	srv := newTestServer(t)
	room := createRoom(t, srv, "General")

	for i := 1; i <= 5; i++ {
		resp := postMessage(t, srv, room.ID, "Fox", fmt.Sprintf("msg %d", i))
		resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/api/messages?room_id=" + room.ID + "&limit=2")
	if err != nil {
		t.Fatalf("GET /api/messages error = %v", err)
	}
	defer resp.Body.Close()

	var msgs []api.Message
	if err := json.NewDecoder(resp.Body).Decode(&msgs); err != nil {
		t.Fatalf("decode messages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("len(msgs) = %d, want 2", len(msgs))
	}
	// Most-recent window in chronological order
	if msgs[0].Content != "msg 4" || msgs[1].Content != "msg 5" {
		t.Errorf("window = [%q, %q], want [msg 4, msg 5]", msgs[0].Content, msgs[1].Content)
	}
}

func TestMessages_UnknownRoom(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/messages?room_id=nope")
	if err != nil {
		t.Fatalf("GET /api/messages error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}

	postResp := postMessage(t, srv, "nope", "Fox", "hello")
	defer postResp.Body.Close()
	if postResp.StatusCode != http.StatusNotFound {
		t.Errorf("post status = %d, want 404", postResp.StatusCode)
	}
}

func TestMessages_ValidatesFields(t *testing.T) {
	srv := newTestServer(t)
	room := createRoom(t, srv, "General")

	tests := []struct {
		name     string
		username string
		content  string
	}{
		{"empty username", "", "hello"},
		{"whitespace username", "   ", "hello"},
		{"empty content", "Fox", ""},
		{"whitespace content", "Fox", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postMessage(t, srv, room.ID, tt.username, tt.content)
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}
