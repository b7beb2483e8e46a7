package outline

import (
	"fmt"
	"net/http"
)

const (
	msgCallFailed   = "Failed to call Outline API"
	msgDecodeFailed = "Failed to decode Outline API response"
	msgAPIError     = "Outline API error"
	msgUnknownError = "Unknown error"
)

// ConfigurationError reports missing or invalid startup configuration. It is
// fatal: nothing talks to Outline until configuration resolves cleanly.
type ConfigurationError struct {
	Msg string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		if e.Msg == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// RemoteCallError is returned for any failed call to Outline: transport
// failures, non-2xx responses, undecodable bodies and {"ok": false} envelopes.
type RemoteCallError struct {
	// Endpoint is the Outline operation that was called, e.g. "documents.info".
	Endpoint string
	Msg      string
	Err      error
}

func (e *RemoteCallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Endpoint, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Endpoint, e.Msg)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// StatusError describes a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	URL        string
	// Message is the upstream "error" or "message" field, when the body had one.
	Message string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("status %d %s for url %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}
