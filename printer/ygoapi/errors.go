package ygoapi

import (
	"errors"
	"fmt"
)

// ErrRetriesExhausted is returned once every retry attempt failed. The
// last failure is wrapped alongside it.
var ErrRetriesExhausted = errors.New("retries exhausted")

// StatusError is a response status that is not retried.
type StatusError struct {
	Code int
	URL  string
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("card database returned %d for %s", e.Code, e.URL)
	}
	return fmt.Sprintf("card database returned %d for %s: %s", e.Code, e.URL, e.Body)
}

// IsStatus reports whether err carries the given HTTP status.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == code
}

// retryableError marks a response that used up one retry.
type retryableError struct {
	code int
	url  string
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("card database returned %d for %s", e.code, e.url)
}
