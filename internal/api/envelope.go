package api

import (
	"encoding/json"
	"fmt"
)

// Envelope is the backend response body: {success, message?, payload?}.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Error is the one error shape flow controllers branch on, mirroring the
// backend's {response: {status, data: {message}}} rejection.
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Message extracts the user-facing message from any backend error;
// non-API errors collapse to a generic network message.
func Message(err error) string {
	if apiErr, ok := err.(*Error); ok {
		return apiErr.Message
	}
	return "Không thể kết nối máy chủ, vui lòng thử lại"
}

// StatusOf returns the HTTP status of an API error, 0 otherwise.
func StatusOf(err error) int {
	if apiErr, ok := err.(*Error); ok {
		return apiErr.Status
	}
	return 0
}
