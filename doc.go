// Package pulse aggregates liveness and readiness checks for backend
// dependencies into a single composable health surface mountable inside a
// larger web service.
//
// Checks are registered on a Builder, frozen into an immutable Checker, and
// executed concurrently on every run with per-check timeouts, failure
// isolation, and a deterministic merge into one overall status.
//
// # Main Types
//
// [Builder] accumulates named checks and freezes them with Build.
// [Checker] fans out to all registered probes and merges the outcomes.
// [Report] is the structured result of one run.
//
// # Features
//
//   - Named checks classified as liveness, readiness, or both
//   - Concurrent fan-out with a global round budget and per-check timeouts
//   - Probe errors and panics isolated into per-check outcomes
//   - Timed-out checks reported distinctly from broken ones
//   - Registration-order outcomes regardless of completion order
//   - Lenient (degraded) or strict merge policy for readiness failures
//   - Ready-made probes for PostgreSQL, Redis, and HTTP endpoints
//   - Optional coalescing of concurrent runs via singleflight
//
// # Quick Start
//
// Register checks during startup and mount the routes:
//
//	b := pulse.NewBuilder()
//	b.MustAdd("postgres", pulse.KindReadiness, postgres.Probe(pool)).
//		MustAdd("redis", pulse.KindReadiness, redischeck.Probe(client)).
//		MustAdd("proc", pulse.KindLiveness, func(ctx context.Context) error {
//			return nil
//		})
//
//	checker := b.Build(
//		pulse.WithGlobalTimeout(5*time.Second),
//		pulse.WithCheckTimeout(2*time.Second),
//	)
//
//	r := chi.NewRouter()
//	r.Mount("/health", pulse.Routes(checker))
//
// # Endpoints
//
// Routes mounts three endpoints sharing the same frozen checker:
//
//   - GET /       full report: 200 when healthy or degraded, 503 when unhealthy
//   - GET /live   liveness-only: used by supervisors to decide restart
//   - GET /ready  readiness-only: used by routers to decide traffic admission
//
// Responses are JSON by default. Bare probes can request plain text with
// Accept: text/plain or ?format=text:
//
//	{
//	  "status": "degraded",
//	  "generated_at": "2026-08-23T10:00:00Z",
//	  "checks": [
//	    {"name": "postgres", "kind": "readiness", "status": "healthy", "latency_ms": 4},
//	    {"name": "redis", "kind": "readiness", "status": "unhealthy", "reason": "connection refused", "latency_ms": 2}
//	  ]
//	}
//
// # Merge Policy
//
// A failing liveness check always makes the service unhealthy. A failing
// readiness check degrades it under the default lenient policy; build with
// WithStrictReadiness to fail hard instead.
//
// # Configuration
//
// Build-time settings can be loaded from environment variables via [Config]:
//
//	HEALTH_GLOBAL_TIMEOUT   - Fan-out round budget (default: 5s)
//	HEALTH_CHECK_TIMEOUT    - Default per-check budget (default: 3s)
//	HEALTH_STRICT_READINESS - Strict merge policy (default: false)
//
// # Error Handling
//
// Registration errors are sentinel errors reported synchronously:
//
//   - [ErrDuplicateCheck] - Check name already registered
//   - [ErrEmptyCheckName] - Empty check name
//   - [ErrNilProbe] - Nil probe function
//   - [ErrBuilderConsumed] - Builder reused after Build
//
// Runtime probe failures never escape a run; they surface as unhealthy or
// timed-out outcomes in the report.
package pulse
