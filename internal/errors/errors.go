// Package errors provides structured error types for the anonchat client.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindNetwork
	KindAPI
	KindConfig
	KindIO
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindNetwork:
		return "network error"
	case KindAPI:
		return "api error"
	case KindConfig:
		return "configuration error"
	case KindIO:
		return "I/O error"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for anonchat.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	var parts []string
	if e.Op != "" {
		parts = append(parts, string(e.Op))
	}
	if e.Context != "" {
		parts = append(parts, e.Context)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return e.Kind.String()
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// API errors

func RoomCreateFailed(err error) error {
	return E(Op("api.CreateRoom"), KindAPI, "failed to create room", err)
}

func RoomListFailed(err error) error {
	return E(Op("api.ListRooms"), KindNetwork, "failed to list rooms", err)
}

func MessageListFailed(roomID string, err error) error {
	return E(Op("api.ListMessages"), KindNetwork, fmt.Sprintf("failed to list messages for room %s", roomID), err)
}

func MessagePostFailed(roomID string, err error) error {
	return E(Op("api.PostMessage"), KindNetwork, fmt.Sprintf("failed to post message to room %s", roomID), err)
}

func UnexpectedStatus(op Op, status int) error {
	return E(op, KindAPI, fmt.Sprintf("backend returned status %d", status))
}

// Config errors

func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
