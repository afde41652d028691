package erold

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/erold-dev/mcp-server/internal/retry"
)

// userAgent identifies this client on every request.
const userAgent = "erold-mcp/1.0"

// Client issues authenticated requests against the Erold API. It owns
// the retry policy, timeout handling, and response envelope unwrapping;
// resource accessors are thin wrappers over Do.
//
// Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	debug      *DebugLogger
	policy     retry.Policy

	// timeout overrides the configured per-attempt timeout when set.
	timeout time.Duration
}

// RequestOptions describes a single logical request.
type RequestOptions struct {
	// Method defaults to GET.
	Method string

	// Body is JSON-encoded when non-nil.
	Body any

	// Query is appended to the URL in insertion order.
	Query Query

	// Header entries override the defaults, except X-Api-Key.
	Header http.Header
}

// NewClient creates a new Erold API client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
		policy:     retry.DefaultPolicy(),
	}
}

// WithHTTPClient sets a custom http.Client (for testing or custom transports).
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// WithDebugLogger attaches a debug logger.
func (c *Client) WithDebugLogger(logger *DebugLogger) *Client {
	c.debug = logger
	return c
}

// WithRetryBaseDelay sets the backoff unit (for testing).
func (c *Client) WithRetryBaseDelay(d time.Duration) *Client {
	c.policy.BaseDelay = d
	return c
}

// WithTimeout overrides the per-attempt timeout from configuration.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.timeout = d
	return c
}

// Get issues a GET request with an ordered query string.
func (c *Client) Get(ctx context.Context, path string, query Query) (json.RawMessage, error) {
	return c.Do(ctx, path, RequestOptions{Method: http.MethodGet, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, path, RequestOptions{Method: http.MethodPost, Body: body})
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, path, RequestOptions{Method: http.MethodPatch, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Do(ctx, path, RequestOptions{Method: http.MethodDelete})
}

// Do executes one logical request and returns the unwrapped payload.
//
// Configuration is re-read from the environment on every call, so an
// environment change takes effect on the very next request. Failed
// attempts are retried with linear backoff (up to 3 attempts total)
// when the error is retryable per IsRetryable; client errors other
// than 429 raise immediately.
func (c *Client) Do(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	fullURL := strings.TrimSuffix(cfg.BaseURL, "/") + path
	if qs := opts.Query.Encode(); qs != "" {
		fullURL += "?" + qs
	}

	var payload []byte
	if opts.Body != nil {
		payload, err = json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}

	// One ID per logical request; retry attempts reuse it so the
	// server can correlate them.
	requestID := ulid.Make().String()

	var lastErr error
	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		result, err := c.attempt(ctx, cfg, method, fullURL, payload, opts.Header, requestID)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsRetryable(err) {
			c.debug.LogError(method+" "+path, err)
			return nil, err
		}
		if attempt == c.policy.MaxAttempts {
			break
		}

		delay := c.policy.Backoff(attempt)
		c.debug.LogRetry(attempt, statusCodeOf(err), delay)
		if err := retry.Sleep(ctx, delay); err != nil {
			return nil, fmt.Errorf("request aborted: %w", err)
		}
	}

	c.debug.LogError(method+" "+path, lastErr)
	return nil, lastErr
}

// attempt performs a single HTTP round trip under the per-attempt timeout.
func (c *Client) attempt(ctx context.Context, cfg Config, method, fullURL string, payload []byte, extra http.Header, requestID string) (json.RawMessage, error) {
	timeout := cfg.Timeout
	if c.timeout > 0 {
		timeout = c.timeout
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	setHeaders(req, cfg, extra, requestID)

	c.debug.LogRequest(method, fullURL, payload)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyNetworkError(ctx, attemptCtx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyNetworkError(ctx, attemptCtx, err)
	}

	c.debug.LogResponse(resp.StatusCode, resp.Status, respBody)

	if resp.StatusCode == http.StatusTooManyRequests {
		seconds, _ := retry.RetryAfterSeconds(resp.Header.Get("Retry-After"))
		return nil, NewRateLimitError(seconds)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiErrorFromResponse(resp.StatusCode, respBody)
	}

	return unwrapEnvelope(respBody, resp.Header.Get("Content-Type")), nil
}

// setHeaders applies the default headers, then caller overrides, then
// the auth header. X-Api-Key goes last so extra headers can never
// bypass authentication.
func setHeaders(req *http.Request, cfg Config, extra http.Header, requestID string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-Id", requestID)

	for key, values := range extra {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	req.Header.Set("X-Api-Key", cfg.APIKey)
}

// classifyNetworkError normalizes transport-level failures. A fired
// per-attempt timeout becomes a retryable 408; cancellation of the
// caller's context stays a plain error; everything else (DNS failure,
// connection refused) carries status 0 and is not retried.
func classifyNetworkError(parent, attemptCtx context.Context, err error) error {
	if parent.Err() != nil {
		return fmt.Errorf("request aborted: %w", err)
	}

	var netErr net.Error
	if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &APIError{
			StatusCode: http.StatusRequestTimeout,
			Message:    "Request timed out",
			Cause:      err,
		}
	}

	return &APIError{
		StatusCode: 0,
		Message:    "Network error: " + err.Error(),
		Cause:      err,
	}
}

// apiErrorFromResponse builds an APIError from a non-2xx response,
// preferring the body's error.message, then message, then a generic
// "HTTP {status}" fallback.
func apiErrorFromResponse(statusCode int, body []byte) *APIError {
	var envelope struct {
		Error *struct {
			Message string          `json:"message"`
			Details json.RawMessage `json:"details"`
		} `json:"error"`
		Message string `json:"message"`
	}

	var message string
	var details json.RawMessage
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != nil {
			message = envelope.Error.Message
			details = envelope.Error.Details
		}
		if message == "" {
			message = envelope.Message
		}
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", statusCode)
	}

	return &APIError{StatusCode: statusCode, Message: message, Details: details}
}

// unwrapEnvelope extracts the logical result from a response body. A
// JSON object with a top-level "data" key unwraps to that value, even
// when the value is null, 0, or false; anything else passes through
// unchanged. Non-JSON bodies are returned as raw text.
func unwrapEnvelope(body []byte, contentType string) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if !strings.Contains(contentType, "json") {
		return json.RawMessage(body)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return json.RawMessage(body)
	}
	if data, ok := envelope["data"]; ok {
		return data
	}
	return json.RawMessage(body)
}

// statusCodeOf extracts the HTTP status from an APIError, or 0.
func statusCodeOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// tenantPath builds a tenant-scoped API path. The tenant is read from
// the environment on every call, matching the engine's fresh-config
// rule; each path segment is escaped.
func tenantPath(parts ...string) string {
	segments := make([]string, 0, len(parts)+2)
	segments = append(segments, "tenants", os.Getenv("EROLD_TENANT_ID"))
	segments = append(segments, parts...)
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(segments, "/")
}
