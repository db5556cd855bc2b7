package pulse

import "time"

// Config holds build-time aggregator settings loaded from the environment.
// Embed this in your app config for env parsing with caarlos0/env, then pass
// cfg.Options() to Build.
type Config struct {
	// Upper bound on a whole fan-out round. Probes still outstanding when
	// it elapses are reported as timed out.
	GlobalTimeout time.Duration `env:"HEALTH_GLOBAL_TIMEOUT" envDefault:"5s"`

	// Default per-check sub-budget, overridable per check at registration.
	CheckTimeout time.Duration `env:"HEALTH_CHECK_TIMEOUT" envDefault:"3s"`

	// Treat any readiness failure as fully unhealthy instead of degraded.
	StrictReadiness bool `env:"HEALTH_STRICT_READINESS" envDefault:"false"`
}

// Options converts the config into functional options for Build.
func (c Config) Options() []Option {
	opts := make([]Option, 0, 3)
	if c.GlobalTimeout > 0 {
		opts = append(opts, WithGlobalTimeout(c.GlobalTimeout))
	}
	if c.CheckTimeout > 0 {
		opts = append(opts, WithCheckTimeout(c.CheckTimeout))
	}
	if c.StrictReadiness {
		opts = append(opts, WithStrictReadiness())
	}
	return opts
}
