// Package retry holds the pieces of the client's retry policy: attempt
// budgeting, linear backoff, Retry-After parsing, and the retryable-status
// classification shared with the error model.
package retry

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

// Policy bounds the retry loop for one logical request.
type Policy struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int

	// BaseDelay is multiplied by the attempt number to produce the wait
	// before the next try (linear backoff).
	BaseDelay time.Duration
}

// DefaultPolicy returns the standard client policy: three attempts with a
// one-second base delay.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
	}
}

// Backoff returns how long to wait after the given attempt (1-based) before
// the next one. Attempt 1 waits one base delay, attempt 2 waits two, and so
// on.
func (p Policy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return time.Duration(attempt) * p.BaseDelay
}

// RetryableStatus reports whether a status code identifies a transient
// condition: request timeout (408), rate limiting (429), or any server
// error. Client errors and the synthesized network-failure status 0 are
// terminal.
func RetryableStatus(code int) bool {
	return code == http.StatusRequestTimeout ||
		code == http.StatusTooManyRequests ||
		code >= 500
}

// RetryAfterSeconds parses a Retry-After header value as a delay in seconds.
// Both the integer-seconds form and the HTTP-date form are accepted. The
// second return value is false when the header is absent or unusable.
func RetryAfterSeconds(header string) (int, bool) {
	if header == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(header); err == nil {
		if secs < 0 {
			return 0, false
		}
		return secs, true
	}
	if t, err := http.ParseTime(header); err == nil {
		secs := int(time.Until(t).Round(time.Second).Seconds())
		if secs < 0 {
			secs = 0
		}
		return secs, true
	}
	return 0, false
}

// Sleep waits for d or until ctx is done, whichever comes first, returning
// the context's error in the latter case.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
