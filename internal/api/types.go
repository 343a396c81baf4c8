package api

import (
	"encoding/json"
	"fmt"
)

// Room represents a named chat channel. IDs are opaque, server-assigned,
// and never interpreted by the client.
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts the id as either a JSON string or a JSON number;
// backends differ on which they emit.
func (r *Room) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID   json.RawMessage `json:"id"`
		Name string          `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	id, err := decodeID(raw.ID)
	if err != nil {
		return fmt.Errorf("room: %w", err)
	}
	r.ID = id
	r.Name = raw.Name
	return nil
}

// Message represents one chat utterance scoped to a room. Username is a
// freeform, session-chosen nickname; it is not an identity.
type Message struct {
	ID       string `json:"id"`
	RoomID   string `json:"room_id"`
	Username string `json:"username"`
	Content  string `json:"content"`
}

// UnmarshalJSON accepts ids as either JSON strings or JSON numbers.
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       json.RawMessage `json:"id"`
		RoomID   json.RawMessage `json:"room_id"`
		Username string          `json:"username"`
		Content  string          `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	id, err := decodeID(raw.ID)
	if err != nil {
		return fmt.Errorf("message: %w", err)
	}
	roomID, err := decodeID(raw.RoomID)
	if err != nil {
		return fmt.Errorf("message: %w", err)
	}
	m.ID = id
	m.RoomID = roomID
	m.Username = raw.Username
	m.Content = raw.Content
	return nil
}

// decodeID normalizes an opaque server-assigned identifier. Number ids
// decode to their decimal string form so the rest of the client only ever
// sees strings. A missing or null id decodes to the empty string.
func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}

	return "", fmt.Errorf("id must be a string or number, got %s", raw)
}
