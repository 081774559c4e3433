// Package apierr defines the error kinds returned by handlers and the
// fixed mapping from kind to HTTP status.
//
// Handlers classify failures by Kind, never by message text. Anything
// that is not an *Error (driver errors, timeouts, bugs) is treated as a
// store failure and answered with 500.
package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Kind classifies an error for status selection.
type Kind int

const (
	// Store is a connection or persistence failure. Not user-correctable.
	Store Kind = iota
	// Validation is a bad or missing input field.
	Validation
	// NotFound means the addressed document does not exist.
	NotFound
	// Conflict means a uniqueness constraint rejected the write.
	Conflict
)

var kindStatus = map[Kind]int{
	Store:      http.StatusInternalServerError,
	Validation: http.StatusBadRequest,
	NotFound:   http.StatusNotFound,
	Conflict:   http.StatusConflict,
}

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	}
	return "store"
}

// Status returns the HTTP status for k.
func (k Kind) Status() int {
	if s, ok := kindStatus[k]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Error carries a client-facing message and its kind. Err, when set, is
// the underlying cause and is only logged.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Invalid returns a Validation error with a formatted message.
func Invalid(format string, args ...any) *Error {
	return &Error{Kind: Validation, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf returns a NotFound error with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Msg: fmt.Sprintf(format, args...)}
}

// Conflictf returns a Conflict error wrapping cause.
func Conflictf(cause error, format string, args ...any) *Error {
	return &Error{Kind: Conflict, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// StoreFailure wraps a persistence error under msg.
func StoreFailure(cause error, msg string) *Error {
	return &Error{Kind: Store, Msg: msg, Err: cause}
}

// KindOf returns the kind of err, or Store when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Store
}

// Message returns the client-facing message for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Kind == Store && e.Err != nil {
			return e.Msg + ": " + e.Err.Error()
		}
		return e.Msg
	}
	return err.Error()
}

// envelope is the failure body: {"error": "..."}.
type envelope struct {
	Error string `json:"error"`
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Write answers r with err's status and envelope and logs it. Client
// errors log at warn, everything else at error.
func Write(w http.ResponseWriter, r *http.Request, log *zap.Logger, op string, err error) {
	kind := KindOf(err)
	status := kind.Status()
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("kind", kind.String()),
		zap.Int("status", status),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", fields...)
	} else {
		log.Warn("request rejected", fields...)
	}
	WriteJSON(w, status, envelope{Error: Message(err)})
}
