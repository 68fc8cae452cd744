package twingate

import (
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of a failed response is kept in HTTPStatusError.
const maxErrorBody = 512

// statusCheckTransport fails requests answered with a non-2xx status.
// The GraphQL client only reports status codes when the body is not JSON, so
// an authentication failure with a JSON body would otherwise look like an
// empty successful response.
type statusCheckTransport struct {
	base http.RoundTripper
}

func (t *statusCheckTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer func() {
		_ = resp.Body.Close()
	}()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return nil, &HTTPStatusError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
