package twingate

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")

	tests := []struct {
		name         string
		err          error
		transport    bool
		malformed    bool
		creation     bool
		unauthorized bool
		wantMessage  string
	}{
		{
			name:        "transport",
			err:         &TransportError{Op: "list remote networks", Err: cause},
			transport:   true,
			wantMessage: "list remote networks: boom",
		},
		{
			name:        "malformed",
			err:         &MalformedResponseError{Op: "create resource", Err: cause},
			malformed:   true,
			wantMessage: "create resource: unexpected response shape: boom",
		},
		{
			name:        "creation",
			err:         &ResourceCreationError{Name: "Resource-Public-1-2-3-4", Address: "1.2.3.4", Reason: "quota exceeded"},
			creation:    true,
			wantMessage: "failed to create resource Resource-Public-1-2-3-4 (1.2.3.4): quota exceeded",
		},
		{
			name:         "wrapped unauthorized",
			err:          fmt.Errorf("lookup: %w", &TransportError{Op: "list remote networks", Err: &HTTPStatusError{StatusCode: http.StatusForbidden}}),
			transport:    true,
			unauthorized: true,
			wantMessage:  "lookup: list remote networks: server returned HTTP 403",
		},
		{
			name:        "plain",
			err:         cause,
			wantMessage: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.transport, IsTransport(tt.err))
			assert.Equal(t, tt.malformed, IsMalformedResponse(tt.err))
			assert.Equal(t, tt.creation, IsResourceCreation(tt.err))
			assert.Equal(t, tt.unauthorized, IsUnauthorized(tt.err))
			assert.Equal(t, tt.wantMessage, tt.err.Error())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")
	assert.ErrorIs(t, &TransportError{Op: "op", Err: cause}, cause)
	assert.ErrorIs(t, &MalformedResponseError{Op: "op", Err: cause}, cause)
	assert.False(t, IsUnauthorized(nil))
}

func TestHTTPStatusError(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "server returned HTTP 500", (&HTTPStatusError{StatusCode: 500}).Error())
	assert.Equal(t, "server returned HTTP 401: nope", (&HTTPStatusError{StatusCode: 401, Body: "nope"}).Error())
}
