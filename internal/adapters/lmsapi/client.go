package lmsapi

// Package lmsapi is the HTTP adapter for the upstream LMS REST backend. All
// business rules live upstream; this client owns the wire contract only:
// bearer auth headers, the {success,data,message} envelope, the fixed
// request timeout, and normalization of failures into the application error
// taxonomy. Handlers never see raw transport errors.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
)

const (
	// requestTimeout is the fixed timeout applied to administrative calls.
	requestTimeout = 10 * time.Second

	apiPrefix = "/api/v1"

	// maxResponseBytes bounds envelope reads; ticket PDFs stream separately.
	maxResponseBytes = 8 << 20
)

// NetworkErrorMessage is the user-facing message for unreachable-upstream
// failures. Part of the UI contract.
const NetworkErrorMessage = "Network error: Unable to connect to the server"

// Config captures runtime configuration for the LMS API client.
type Config struct {
	// BaseURL is the upstream origin, e.g. "https://lms-backend.example.com".
	BaseURL string
	// Timeout overrides the default 10s request timeout (tests only).
	Timeout time.Duration
	// Client overrides the underlying HTTP client (tests only).
	Client *http.Client
}

// Client talks to the upstream LMS API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs an LMS API client. Callers must provide a base URL.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("lmsapi: base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("lmsapi: invalid base URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = requestTimeout
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: base, http: hc}, nil
}

// envelope is the upstream response wrapper shared by every JSON endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// call groups the parameters of one upstream request.
type call struct {
	method string
	path   string // path under /api/v1, e.g. "/admin/courses"
	token  string // bearer token; empty for anonymous calls (login)
	query  url.Values
	body   any // JSON-marshaled when non-nil
}

// do executes the call and decodes the envelope's data field into out when
// out is non-nil. Every failure path returns an *apperrors.AppError.
func (c *Client) do(ctx context.Context, p call, out any) error {
	req, err := c.newRequest(ctx, p)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "build upstream request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransportErr(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, NetworkErrorMessage)
	}

	var env envelope
	if len(raw) > 0 {
		// A malformed body on an error status still classifies by status.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyStatus(resp.StatusCode, env.Message)
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "Upstream request failed"
		}
		return apperrors.Validation(msg)
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return apperrors.Internal("Upstream response missing data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode upstream response")
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, p call) (*http.Request, error) {
	endpoint := c.baseURL + apiPrefix + p.path
	if len(p.query) > 0 {
		endpoint += "?" + p.query.Encode()
	}

	var body io.Reader
	if p.body != nil {
		data, err := json.Marshal(p.body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, p.method, endpoint, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}
	return req, nil
}

// classifyStatus maps an upstream HTTP status to the application taxonomy,
// carrying the upstream message verbatim when present.
func classifyStatus(status int, message string) *apperrors.AppError {
	switch {
	case status == http.StatusUnauthorized:
		if message == "" {
			message = "Unauthorized: Invalid credentials"
		}
		return apperrors.Unauthorized(message)
	case status == http.StatusForbidden:
		return apperrors.Unauthorized(fallback(message, "Forbidden"))
	case status == http.StatusNotFound:
		return apperrors.NotFound(fallback(message, "Resource not found"))
	case status == http.StatusConflict:
		return apperrors.Conflict(fallback(message, "Conflict with existing data"))
	case status >= 400 && status < 500:
		return apperrors.Validation(fallback(message, "Invalid request"))
	default:
		return apperrors.Internal(fallback(message, "Upstream server error"))
	}
}

// classifyTransportErr distinguishes caller cancellation from genuine
// network failures; timeouts follow the network-error path.
func classifyTransportErr(ctx context.Context, err error) *apperrors.AppError {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return apperrors.Wrap(err, apperrors.ErrCodeCanceled, "request canceled")
	}
	if errors.Is(err, context.Canceled) {
		return apperrors.Wrap(err, apperrors.ErrCodeCanceled, "request canceled")
	}
	return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, NetworkErrorMessage)
}

func fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
