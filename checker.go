package pulse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

// Checker is the frozen aggregator produced by Builder.Build. It owns the
// registered check set and the merge policy, and is safe for unbounded
// concurrent Run calls without external locking. A Checker must not be
// copied after creation.
type Checker struct {
	cfg    config
	checks []check
	group  singleflight.Group
}

// Names returns the registered check names in registration order.
func (c *Checker) Names() []string {
	names := make([]string, len(c.checks))
	for i, ck := range c.checks {
		names[i] = ck.name
	}
	return names
}

// Run executes every check matching filter concurrently and merges the
// outcomes into a single report. The report's outcome order is the
// registration order, independent of probe completion order. Run never
// returns an error: probe failures, panics, and timeouts all surface as
// outcome statuses.
func (c *Checker) Run(ctx context.Context, filter Filter) *Report {
	if !c.cfg.coalesce {
		return c.run(ctx, filter)
	}

	// Concurrent runs of the same filter share one fan-out. The joining
	// callers receive the leader's report; fn never returns an error.
	v, _, _ := c.group.Do(coalesceKey(filter), func() (any, error) {
		return c.run(ctx, filter), nil
	})
	return v.(*Report)
}

func (c *Checker) run(ctx context.Context, filter Filter) *Report {
	report := &Report{
		Overall:     StatusHealthy,
		GeneratedAt: time.Now().UTC(),
	}

	selected := c.selectChecks(filter)
	if len(selected) == 0 {
		// Vacuous success: an endpoint with no registered dependencies
		// is trivially healthy.
		return report
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.globalTimeout)
	defer cancel()

	start := time.Now()

	// One buffered slot per check so a straggler finishing after the global
	// deadline never blocks a send or races with report assembly; its late
	// result just sits in the abandoned channel.
	slots := make([]chan Outcome, len(selected))
	for i, ck := range selected {
		slots[i] = make(chan Outcome, 1)
		go c.execute(ctx, ck, slots[i])
	}

	outcomes := make([]Outcome, 0, len(selected))
	for i, ck := range selected {
		select {
		case o := <-slots[i]:
			outcomes = append(outcomes, o)
		case <-ctx.Done():
			// Global budget elapsed. Collect whatever already finished;
			// everything else is recorded as timed out and abandoned.
			select {
			case o := <-slots[i]:
				outcomes = append(outcomes, o)
			default:
				o := Outcome{
					Name:    ck.name,
					Kind:    ck.kind,
					Status:  CheckTimedOut,
					Reason:  fmt.Sprintf("abandoned after global timeout %s", c.cfg.globalTimeout),
					Latency: time.Since(start),
				}
				c.warn(ctx, o)
				outcomes = append(outcomes, o)
			}
		}
	}

	report.Outcomes = outcomes
	report.Overall = c.merge(outcomes)
	return report
}

// execute runs a single probe under its own timeout and sends exactly one
// outcome on out. Probe errors and panics are captured here; nothing a
// probe does can escape to the aggregator.
func (c *Checker) execute(ctx context.Context, ck check, out chan<- Outcome) {
	timeout := c.cfg.checkTimeout
	if ck.timeout > 0 {
		timeout = ck.timeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	errc := make(chan error, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				errc <- fmt.Errorf("panic: %v", r)
			}
		}()
		errc <- ck.probe(ctx)
	}()

	o := Outcome{Name: ck.name, Kind: ck.kind, Status: CheckHealthy}

	select {
	case err := <-errc:
		o.Latency = time.Since(start)
		switch {
		case err == nil:
		case errors.Is(err, context.DeadlineExceeded):
			// Well-behaved probes surface their context deadline as an
			// error; classify it the same as an unresponsive probe.
			o.Status = CheckTimedOut
			o.Reason = fmt.Sprintf("exceeded %s timeout", timeout)
		default:
			o.Status = CheckUnhealthy
			o.Reason = err.Error()
		}
	case <-ctx.Done():
		o.Latency = time.Since(start)
		o.Status = CheckTimedOut
		o.Reason = fmt.Sprintf("exceeded %s timeout", timeout)
	}

	if o.Status != CheckHealthy {
		c.warn(ctx, o)
	}

	out <- o
}

// selectChecks returns the registration-ordered subset matching filter.
func (c *Checker) selectChecks(filter Filter) []check {
	if filter == FilterAll {
		return c.checks
	}

	selected := make([]check, 0, len(c.checks))
	for _, ck := range c.checks {
		switch filter {
		case FilterLiveness:
			if ck.kind.liveness() {
				selected = append(selected, ck)
			}
		case FilterReadiness:
			if ck.kind.readiness() {
				selected = append(selected, ck)
			}
		}
	}
	return selected
}

// merge folds individual outcomes into one overall status. Liveness
// failures dominate: a process that cannot serve traffic is unhealthy no
// matter what its dependencies report. Readiness failures degrade the
// service under the lenient policy and fail it under the strict one.
// Both-kind checks participate in both rules.
func (c *Checker) merge(outcomes []Outcome) Status {
	var livenessFailed, readinessFailed bool

	for _, o := range outcomes {
		if o.Status == CheckHealthy {
			continue
		}
		if o.Kind.liveness() {
			livenessFailed = true
		}
		if o.Kind.readiness() {
			readinessFailed = true
		}
	}

	switch {
	case livenessFailed:
		return StatusUnhealthy
	case readinessFailed && c.cfg.strict:
		return StatusUnhealthy
	case readinessFailed:
		return StatusDegraded
	default:
		return StatusHealthy
	}
}

func (c *Checker) warn(ctx context.Context, o Outcome) {
	c.cfg.logger.WarnContext(ctx, "health check failed",
		slog.String("check", o.Name),
		slog.String("status", string(o.Status)),
		slog.String("reason", o.Reason),
		slog.Duration("latency", o.Latency),
	)
}

func coalesceKey(filter Filter) string {
	switch filter {
	case FilterLiveness:
		return "liveness"
	case FilterReadiness:
		return "readiness"
	default:
		return "all"
	}
}
