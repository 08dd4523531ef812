package wanikani

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport is returned when a request could not be completed.
	ErrTransport = errors.New("transport failure")
	// ErrUpstreamRejected is matched by every *StatusError.
	ErrUpstreamRejected = errors.New("upstream rejected the request")
	// ErrMalformedResponse is returned when a response body does not match the expected shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError is returned for a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUpstreamRejected
}

// IsUnauthorized reports whether err is a rejection of the API key.
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return false
	}
	return statusErr.StatusCode == http.StatusUnauthorized
}
