package pulse

import (
	"encoding/json"
	"time"
)

// Status is the merged health of a whole report.
type Status string

const (
	// StatusHealthy indicates every evaluated check passed.
	StatusHealthy Status = "healthy"
	// StatusDegraded indicates the process is alive but at least one
	// readiness dependency is down (lenient merge policy only).
	StatusDegraded Status = "degraded"
	// StatusUnhealthy indicates the process should not serve traffic.
	StatusUnhealthy Status = "unhealthy"
)

// CheckStatus is the health of a single check within one run.
type CheckStatus string

const (
	// CheckHealthy indicates the probe completed without error.
	CheckHealthy CheckStatus = "healthy"
	// CheckUnhealthy indicates the probe returned an error or panicked.
	CheckUnhealthy CheckStatus = "unhealthy"
	// CheckTimedOut indicates the probe did not finish within its budget.
	// Distinct from CheckUnhealthy so callers can tell slow dependencies
	// from broken ones.
	CheckTimedOut CheckStatus = "timed_out"
)

// Filter selects which checks a run executes and reports.
type Filter uint8

const (
	// FilterAll runs every registered check.
	FilterAll Filter = iota
	// FilterLiveness runs liveness-participating checks only.
	FilterLiveness
	// FilterReadiness runs readiness-participating checks only.
	FilterReadiness
)

// Outcome is the result of a single check within one run. Outcomes are
// created fresh on every run and never mutated afterwards.
type Outcome struct {
	Name    string
	Kind    Kind
	Status  CheckStatus
	Reason  string // non-empty only when Status is not CheckHealthy
	Latency time.Duration
}

// MarshalJSON renders latency as integer milliseconds, matching what probe
// consumers and dashboards expect.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name      string      `json:"name"`
		Kind      string      `json:"kind"`
		Status    CheckStatus `json:"status"`
		Reason    string      `json:"reason,omitempty"`
		LatencyMs int64       `json:"latency_ms"`
	}{
		Name:      o.Name,
		Kind:      o.Kind.String(),
		Status:    o.Status,
		Reason:    o.Reason,
		LatencyMs: o.Latency.Milliseconds(),
	})
}

// Report is the aggregated result of one run. Outcomes appear in
// registration order regardless of probe completion order. A report is
// owned exclusively by the invocation that created it.
type Report struct {
	Overall     Status    `json:"status"`
	GeneratedAt time.Time `json:"generated_at"`
	Outcomes    []Outcome `json:"checks,omitempty"`
}
