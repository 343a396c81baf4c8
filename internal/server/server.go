// Package server implements a small in-memory anonchat backend for local
// development and tests. It covers exactly the four endpoints the client
// uses; nothing is persisted across restarts.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/zhubert/anonchat/internal/api"
	"github.com/zhubert/anonchat/internal/logger"
)

const defaultMessageLimit = 50

// Server holds the in-memory room and message store.
type Server struct {
	mu       sync.RWMutex
	rooms    []api.Room
	roomIDs  map[string]bool
	messages map[string][]api.Message // room id -> messages in arrival order
}

// New creates an empty server.
func New() *Server {
	return &Server{
		roomIDs:  make(map[string]bool),
		messages: make(map[string][]api.Message),
	}
}

// Router returns the HTTP handler for the server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/rooms", s.handleListRooms)
	r.Post("/api/rooms", s.handleCreateRoom)
	r.Get("/api/messages", s.handleListMessages)
	r.Post("/api/messages", s.handleCreateMessage)

	return r
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	rooms := make([]api.Room, len(s.rooms))
	copy(rooms, s.rooms)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, rooms)
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "room name must not be empty")
		return
	}

	room := api.Room{ID: uuid.NewString(), Name: name}

	s.mu.Lock()
	s.rooms = append(s.rooms, room)
	s.roomIDs[room.ID] = true
	s.mu.Unlock()

	logger.WithComponent("server").Info("room created", "id", room.ID, "name", room.Name)
	writeJSON(w, http.StatusOK, room)
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room_id")
	if roomID == "" {
		writeError(w, http.StatusBadRequest, "room_id is required")
		return
	}

	limit := defaultMessageLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.roomIDs[roomID] {
		writeError(w, http.StatusNotFound, "room not found")
		return
	}

	// Most-recent window, returned in chronological order.
	msgs := s.messages[roomID]
	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]api.Message, len(msgs))
	copy(out, msgs)

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoomID   string `json:"room_id"`
		Username string `json:"username"`
		Content  string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.RoomID == "" || strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "room_id, username, and content are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.roomIDs[req.RoomID] {
		writeError(w, http.StatusNotFound, "room not found")
		return
	}

	msg := api.Message{
		ID:       uuid.NewString(),
		RoomID:   req.RoomID,
		Username: req.Username,
		Content:  req.Content,
	}
	s.messages[req.RoomID] = append(s.messages[req.RoomID], msg)

	writeJSON(w, http.StatusOK, msg)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithComponent("server").Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
