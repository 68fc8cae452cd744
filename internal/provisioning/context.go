package provisioning

import (
	"context"

	"github.com/google/uuid"

	"github.com/imamik/tgprov/internal/config"
	"github.com/imamik/tgprov/internal/platform/twingate"
)

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Client   twingate.API
	Observer Observer
	Metrics  *Metrics
	RunID    string
}

// Option configures a Context.
type Option func(*Context)

// WithObserver replaces the default console observer.
func WithObserver(o Observer) Option {
	return func(c *Context) {
		c.Observer = o
	}
}

// WithMetrics replaces the default metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *Context) {
		c.Metrics = m
	}
}

// NewContext creates a new provisioning context.
// Every context gets a fresh run ID, attached to all observer output.
func NewContext(ctx context.Context, cfg *config.Config, client twingate.API, opts ...Option) *Context {
	c := &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Client:   client,
		Observer: NewConsoleObserver(),
		Metrics:  NewMetrics(),
		RunID:    uuid.NewString(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Observer = c.Observer.WithFields(map[string]string{"run_id": c.RunID})
	return c
}
