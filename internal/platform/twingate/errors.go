package twingate

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError reports a request that did not complete: a network failure,
// a non-2xx HTTP status or a GraphQL protocol error.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a response that does not match the expected shape.
type MalformedResponseError struct {
	Op  string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: unexpected response shape: %v", e.Op, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// ResourceCreationError reports a creation the service rejected.
// Reason is the service's own error message.
type ResourceCreationError struct {
	Name    string
	Address string
	Reason  string
}

func (e *ResourceCreationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("failed to create resource %s (%s): service gave no reason", e.Name, e.Address)
	}
	return fmt.Sprintf("failed to create resource %s (%s): %s", e.Name, e.Address, e.Reason)
}

// HTTPStatusError is returned by the transport for non-2xx responses.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned HTTP %d: %s", e.StatusCode, e.Body)
}

var errEmptyData = errors.New("response contains no data")

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsMalformedResponse checks if an error is a malformed response error.
func IsMalformedResponse(err error) bool {
	var target *MalformedResponseError
	return errors.As(err, &target)
}

// IsResourceCreation checks if an error is a rejected resource creation.
func IsResourceCreation(err error) bool {
	var target *ResourceCreationError
	return errors.As(err, &target)
}

// IsUnauthorized checks if an error is an HTTP 401 or 403 from the service.
func IsUnauthorized(err error) bool {
	var target *HTTPStatusError
	if errors.As(err, &target) {
		return target.StatusCode == http.StatusUnauthorized || target.StatusCode == http.StatusForbidden
	}
	return false
}
