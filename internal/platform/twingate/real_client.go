package twingate

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/machinebox/graphql"

	"github.com/imamik/tgprov/internal/config"
)

// APIKeyHeader carries the API key on every request.
const APIKeyHeader = "X-API-KEY"

// RealClient implements API using the service's GraphQL endpoint.
type RealClient struct {
	client     *graphql.Client
	endpoint   string
	apiKey     string
	timeouts   *config.Timeouts
	httpClient *http.Client
	debugLog   func(string)
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithTimeouts sets custom timeouts for the client.
func WithTimeouts(t *config.Timeouts) ClientOption {
	return func(c *RealClient) {
		c.timeouts = t
	}
}

// WithHTTPClient sets the HTTP client the GraphQL requests are sent with.
// The client is copied; its transport is wrapped, not replaced.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// WithDebugLog receives the raw request and response bodies.
func WithDebugLog(logf func(string)) ClientOption {
	return func(c *RealClient) {
		c.debugLog = logf
	}
}

// NewRealClient creates a new RealClient with optional configuration.
func NewRealClient(endpoint, apiKey string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		timeouts:   config.LoadTimeouts(),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := *c.httpClient
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc.Transport = &statusCheckTransport{base: base}
	if hc.Timeout == 0 && c.timeouts != nil && c.timeouts.Request > 0 {
		hc.Timeout = c.timeouts.Request
	}

	c.client = graphql.NewClient(endpoint, graphql.WithHTTPClient(&hc))
	if c.debugLog != nil {
		c.client.Log = c.debugLog
	}
	return c
}

// Endpoint returns the GraphQL endpoint URL.
func (c *RealClient) Endpoint() string {
	return c.endpoint
}

// run executes one GraphQL operation and decodes its data into out.
func (c *RealClient) run(ctx context.Context, op, query string, vars map[string]interface{}, out interface{}) error {
	req := graphql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}
	req.Header.Set(APIKeyHeader, c.apiKey)

	var data json.RawMessage
	if err := c.client.Run(ctx, req, &data); err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if len(data) == 0 || string(data) == "null" {
		return &MalformedResponseError{Op: op, Err: errEmptyData}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &MalformedResponseError{Op: op, Err: err}
	}
	return nil
}
