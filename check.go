package pulse

import (
	"context"
	"time"
)

// CheckFunc is the standard probe signature. A nil return means the
// dependency is healthy; any error is converted to an unhealthy outcome with
// the error text as the reason. Probes must respect ctx cancellation and
// must not mutate backend state observable by other clients.
//
// This matches the healthcheck closures produced by the postgres, redis,
// and httpcheck subpackages, and any func(context.Context) error works for
// custom dependencies.
type CheckFunc func(ctx context.Context) error

// Kind classifies what a check's failure means for the hosting process.
type Kind uint8

const (
	// KindLiveness marks a check of the process itself. A failing liveness
	// check signals supervisors to restart the process.
	KindLiveness Kind = iota + 1

	// KindReadiness marks a dependency reachability check. A failing
	// readiness check signals traffic routers to stop admitting requests.
	KindReadiness

	// KindBoth marks a check that participates in both liveness and
	// readiness evaluation simultaneously.
	KindBoth
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindLiveness:
		return "liveness"
	case KindReadiness:
		return "readiness"
	case KindBoth:
		return "both"
	default:
		return "unknown"
	}
}

// liveness reports whether the kind participates in liveness evaluation.
func (k Kind) liveness() bool {
	return k == KindLiveness || k == KindBoth
}

// readiness reports whether the kind participates in readiness evaluation.
func (k Kind) readiness() bool {
	return k == KindReadiness || k == KindBoth
}

// check is a registered probe. Owned by the Builder during accumulation,
// then moved into the frozen Checker at build time.
type check struct {
	name    string
	kind    Kind
	probe   CheckFunc
	timeout time.Duration // 0 means the checker-wide default applies
}

// CheckOption configures a single check at registration time.
type CheckOption func(*check)

// WithTimeout overrides the checker's default per-check timeout for this
// check only. Non-positive values are ignored.
func WithTimeout(d time.Duration) CheckOption {
	return func(c *check) {
		if d > 0 {
			c.timeout = d
		}
	}
}
