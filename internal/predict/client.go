package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/abhisek/heartrisk/internal/store"
	"github.com/abhisek/heartrisk/internal/vitals"
)

// Client calls the prediction service over HTTP. It issues exactly one
// request per Predict call and never retries.
type Client struct {
	endpoint string
	http     *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a Client for cfg.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: cfg.Endpoint(),
		http:     &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) Predict(ctx context.Context, req vitals.Request) Outcome {
	body, err := json.Marshal(req)
	if err != nil {
		return transportFailure(0, fmt.Errorf("encode request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return transportFailure(0, fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return transportFailure(0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return serviceFailure(resp.StatusCode, raw)
	}

	return decodeSuccess(resp.StatusCode, raw)
}

func decodeSuccess(status int, raw []byte) Outcome {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return transportFailure(status, fmt.Errorf("decode response: %w", err))
	}
	if err := validateResponse(raw, parsed); err != nil {
		return Failure{Message: MsgMalformed, StatusCode: status, Err: err}
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return Failure{
			Message:    MsgMalformed,
			StatusCode: status,
			Err:        &ErrMalformedResponse{Content: raw, Err: err},
		}
	}
	if out.Tips == nil {
		out.Tips = []string{}
	}
	return Success{Response: out, StatusCode: status}
}

// serviceFailure uses the service's own error text when the body carries
// one, and the fixed fallback otherwise (including non-JSON bodies).
func serviceFailure(status int, raw []byte) Outcome {
	msg := MsgServiceFallback
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		msg = body.Error
	}
	return Failure{
		Message:    msg,
		StatusCode: status,
		Err:        &ErrService{StatusCode: status, Message: msg},
	}
}

func transportFailure(status int, err error) Outcome {
	return Failure{
		Message:    MsgTransport,
		StatusCode: status,
		Err:        &ErrTransport{Err: err},
	}
}

// Kind classifies an outcome using the store's outcome kinds.
func Kind(o Outcome) string {
	f, ok := o.(Failure)
	if !ok {
		return store.OutcomeSuccess
	}
	var (
		svc       *ErrService
		malformed *ErrMalformedResponse
	)
	switch {
	case errors.As(f.Err, &svc):
		return store.OutcomeService
	case errors.As(f.Err, &malformed):
		return store.OutcomeMalformed
	default:
		return store.OutcomeTransport
	}
}
