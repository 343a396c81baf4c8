// Package api implements the REST client for the anonchat backend.
// All four endpoints are simple request/response JSON calls; there is no
// streaming or push channel.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/zhubert/anonchat/internal/errors"
)

const (
	httpTimeout = 10 * time.Second

	// MessageLimit is the fixed window of most-recent messages requested
	// on every poll.
	MessageLimit = 100
)

// Client talks to the anonchat backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given backend base address.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, client *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// BaseURL returns the backend base address this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListRooms retrieves all rooms in server order.
func (c *Client) ListRooms(ctx context.Context) ([]Room, error) {
	body, err := c.get(ctx, "/api/rooms")
	if err != nil {
		return nil, errors.RoomListFailed(err)
	}

	var rooms []Room
	if err := decodeArray(body, &rooms); err != nil {
		return nil, errors.RoomListFailed(err)
	}
	return rooms, nil
}

// CreateRoom creates a room with the given (already trimmed) name and
// returns the server's canonical record. Any non-2xx status is a hard
// failure surfaced to the caller.
func (c *Client) CreateRoom(ctx context.Context, name string) (Room, error) {
	payload, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return Room{}, errors.RoomCreateFailed(err)
	}

	body, err := c.post(ctx, "/api/rooms", payload)
	if err != nil {
		return Room{}, errors.RoomCreateFailed(err)
	}

	var room Room
	if err := json.Unmarshal(body, &room); err != nil {
		return Room{}, errors.RoomCreateFailed(err)
	}
	return room, nil
}

// ListMessages retrieves up to MessageLimit most-recent messages for the
// room, in server order.
func (c *Client) ListMessages(ctx context.Context, roomID string) ([]Message, error) {
	q := url.Values{}
	q.Set("room_id", roomID)
	q.Set("limit", strconv.Itoa(MessageLimit))

	body, err := c.get(ctx, "/api/messages?"+q.Encode())
	if err != nil {
		return nil, errors.MessageListFailed(roomID, err)
	}

	var messages []Message
	if err := decodeArray(body, &messages); err != nil {
		return nil, errors.MessageListFailed(roomID, err)
	}
	return messages, nil
}

// PostMessage posts a message to the room. The returned Message is the
// server's echo; callers refetch rather than appending it locally.
func (c *Client) PostMessage(ctx context.Context, roomID, username, content string) (Message, error) {
	payload, err := json.Marshal(map[string]string{
		"room_id":  roomID,
		"username": username,
		"content":  content,
	})
	if err != nil {
		return Message{}, errors.MessagePostFailed(roomID, err)
	}

	body, err := c.post(ctx, "/api/messages", payload)
	if err != nil {
		return Message{}, errors.MessagePostFailed(roomID, err)
	}

	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return Message{}, errors.MessagePostFailed(roomID, err)
	}
	return msg, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		op := errors.Op(req.Method + " " + req.URL.Path)
		return nil, errors.UnexpectedStatus(op, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// decodeArray unmarshals a JSON array into dst. A well-formed payload whose
// top level is not an array decodes to an empty collection rather than an
// error, so a misbehaving backend degrades to an empty view instead of a
// failure. Malformed JSON and elements that fail to decode are errors: a
// bad element must not be silently replaced by a zero value.
func decodeArray(body []byte, dst interface{}) error {
	err := json.Unmarshal(body, dst)
	if err == nil {
		return nil
	}

	var elems []json.RawMessage
	if json.Valid(body) && json.Unmarshal(body, &elems) != nil {
		return nil
	}
	return fmt.Errorf("failed to parse response: %w", err)
}
