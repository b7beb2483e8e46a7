package outline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Response is the envelope Outline wraps every result in.
type Response struct {
	OK         *bool           `json:"ok,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
	Pagination json.RawMessage `json:"pagination,omitempty"`

	// Raw is the complete response body.
	Raw json.RawMessage `json:"-"`
}

// Execute POSTs body as JSON to the named endpoint and returns the parsed
// envelope. A nil body is sent as an empty object. The call is attempted once.
func (c *Client) Execute(ctx context.Context, endpoint string, body any) (*Response, error) {
	requestID := uuid.NewString()

	resp, err := c.execute(ctx, endpoint, requestID, body)
	if err != nil {
		c.logger.Error("error calling Outline API",
			"endpoint", endpoint,
			"request_id", requestID,
			"error", err,
		)
		return nil, err
	}
	return resp, nil
}

func (c *Client) execute(ctx context.Context, endpoint, requestID string, body any) (*Response, error) {
	startTime := time.Now()

	if body == nil {
		body = struct{}{}
	}
	reqJSON, err := json.Marshal(body)
	if err != nil {
		return nil, &RemoteCallError{Endpoint: endpoint, Msg: "failed to marshal request", Err: err}
	}

	url := c.baseURL + "/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqJSON))
	if err != nil {
		return nil, &RemoteCallError{Endpoint: endpoint, Msg: msgCallFailed, Err: err}
	}
	req.Header = c.headers.Clone()

	c.logger.Trace("sending request", "endpoint", endpoint, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RemoteCallError{Endpoint: endpoint, Msg: msgCallFailed, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteCallError{Endpoint: endpoint, Msg: msgCallFailed, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteCallError{
			Endpoint: endpoint,
			Msg:      msgCallFailed,
			Err: &StatusError{
				StatusCode: resp.StatusCode,
				URL:        url,
				Message:    upstreamMessage(respBody),
			},
		}
	}

	var envelope Response
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, &RemoteCallError{Endpoint: endpoint, Msg: msgDecodeFailed, Err: err}
	}
	envelope.Raw = respBody

	if envelope.OK != nil && !*envelope.OK {
		msg := envelope.Error
		if msg == "" {
			msg = msgUnknownError
		}
		return nil, &RemoteCallError{Endpoint: endpoint, Msg: fmt.Sprintf("%s: %s", msgAPIError, msg)}
	}

	c.logger.Debug("called Outline API",
		"endpoint", endpoint,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration_ms", time.Since(startTime).Milliseconds(),
	)

	return &envelope, nil
}

// upstreamMessage pulls a human-readable message out of an error body.
func upstreamMessage(body []byte) string {
	var apiErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return ""
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return apiErr.Error
}

// decodeLenient unmarshals data into v. Values with an unexpected JSON type
// are left at their zero value instead of failing the whole decode.
func decodeLenient(data []byte, v any) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	err := json.Unmarshal(data, v)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return nil
	}
	return err
}
