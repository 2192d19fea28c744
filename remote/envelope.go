package remote

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrBadPayload is returned when the envelope payload does not match the expected type.
var ErrBadPayload = errors.New("bad payload")

// Envelope is the uniform wrapper of every remote call response.
type Envelope struct {
	Success      bool            `json:"success"`
	Response     json.RawMessage `json:"response,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
}

// EnvelopeError is returned when the server reports a failure.
type EnvelopeError struct {
	Host    string
	Message string
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Host, e.Message)
}

// UserMessage returns the message supplied by the server.
func (e *EnvelopeError) UserMessage() string {
	return e.Message
}

// HTTPError is returned when the server responds with a non-2xx status.
type HTTPError struct {
	Host       string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: unexpected status code %d", e.Host, e.StatusCode)
}

// Message returns the text shown to the user for a failed call: the server
// supplied message for failure envelopes, the error text otherwise.
func Message(err error) string {
	var envErr *EnvelopeError
	if errors.As(err, &envErr) {
		return envErr.UserMessage()
	}

	return err.Error()
}
