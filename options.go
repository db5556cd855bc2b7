package pulse

import (
	"io"
	"log/slog"
	"time"
)

const (
	defaultGlobalTimeout = 5 * time.Second
	defaultCheckTimeout  = 3 * time.Second
)

// config holds the frozen aggregator settings. Populated once at build time
// and never mutated afterwards.
type config struct {
	logger        *slog.Logger
	globalTimeout time.Duration
	checkTimeout  time.Duration
	strict        bool
	coalesce      bool
}

// Option configures the checker at build time.
type Option func(*config)

// WithGlobalTimeout bounds a whole fan-out round. Probes still outstanding
// when it elapses are recorded as timed out and their late results are
// discarded. Default: 5 seconds.
func WithGlobalTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.globalTimeout = d
		}
	}
}

// WithCheckTimeout sets the default per-check sub-budget. Individual checks
// can override it with the WithTimeout registration option.
// Default: 3 seconds.
func WithCheckTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.checkTimeout = d
		}
	}
}

// WithStrictReadiness treats any readiness failure as fully unhealthy
// instead of degraded. Use when the service cannot operate in a reduced
// capacity and traffic must be cut on the first dependency failure.
func WithStrictReadiness() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithCoalescedRuns shares one fan-out between concurrent runs of the same
// filter. Protects backends from probe storms when several supervisors poll
// the endpoints simultaneously; callers joining an in-flight run receive
// that run's report instead of a fresh sample.
func WithCoalescedRuns() Option {
	return func(c *config) {
		c.coalesce = true
	}
}

// WithLogger sets the logger for failed-check warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// newConfig creates a config with defaults, modified by options.
func newConfig(opts ...Option) config {
	cfg := config{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		globalTimeout: defaultGlobalTimeout,
		checkTimeout:  defaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
