package backend

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ErrNotFound matches any APIError with a 404 status via errors.Is.
var ErrNotFound = errors.New("backend: not found")

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return "backend: " + http.StatusText(e.Status) + ": " + e.Message
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

func decodeError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = payload.Message
		if msg == "" {
			msg = payload.Error
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
		if len(msg) > 200 || strings.HasPrefix(msg, "<") {
			msg = ""
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Status: status, Message: msg}
}

// Message returns the backend's message for err, or fallback when err did
// not come from the backend.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" && apiErr.Message != http.StatusText(apiErr.Status) {
		return apiErr.Message
	}
	return fallback
}

// Status returns the backend status carried by err, or def.
func Status(err error, def int) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return def
}
