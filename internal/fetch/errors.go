package fetch

import (
	"errors"
	"fmt"
	"strings"
)

// NetworkError is a failed request: transport error or non-2xx status.
type NetworkError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		body := strings.TrimSpace(e.Body)
		if body == "" {
			return fmt.Sprintf("GET %s failed: %d", e.URL, e.StatusCode)
		}
		return fmt.Sprintf("GET %s failed: %d body=%s", e.URL, e.StatusCode, body)
	}
	return fmt.Sprintf("GET %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError is a response body that does not decode into the expected shape.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
