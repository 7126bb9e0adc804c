package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrorKind classifies provider failures for the retry policy.
type ErrorKind int

const (
	KindUnavailable     ErrorKind = iota // down, unreachable or failing
	KindRateLimited                      // HTTP 429
	KindInvalidResponse                  // content does not match the schema
	KindTruncated                        // output stopped at MaxTokens
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate limited"
	case KindInvalidResponse:
		return "invalid response"
	case KindTruncated:
		return "truncated response"
	default:
		return "unavailable"
	}
}

// Error is returned by every provider in this package.
type Error struct {
	Kind     ErrorKind
	Provider string

	// RetryAfter is the wait the provider asked for, if any.
	RetryAfter time.Duration

	// Content is the rejected output for invalid or truncated responses.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	msg := "LLM " + e.Kind.String()
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.Kind == KindRateLimited && e.RetryAfter > 0 {
		msg += fmt.Sprintf(" (retry after %s)", e.RetryAfter)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// fromStatus wraps an SDK error by its HTTP status. Anything but a rate
// limit, including transport errors with status 0, counts as unavailable.
// header may be nil when the SDK does not expose the response.
func fromStatus(provider string, status int, header http.Header, err error) error {
	e := &Error{Kind: KindUnavailable, Provider: provider, Err: err}
	if status == http.StatusTooManyRequests {
		e.Kind = KindRateLimited
		if header != nil {
			e.RetryAfter = parseRetryAfter(header.Get("Retry-After"))
		}
	}
	return e
}

// parseRetryAfter reads the delay-seconds form of Retry-After.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
