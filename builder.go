package pulse

import "fmt"

// Builder accumulates named checks before freezing them into a Checker.
// Registration is pure accumulation: no probe is invoked until the first
// Run on the built checker. A Builder is not safe for concurrent use; wire
// checks during startup, then share the frozen Checker.
type Builder struct {
	checks []check
	names  map[string]struct{}
}

// NewBuilder creates an empty builder. A checker built with zero checks is
// legal and always reports healthy.
func NewBuilder() *Builder {
	return &Builder{names: make(map[string]struct{})}
}

// Add registers a named check. Names are case-sensitive and must be unique;
// registering a duplicate fails with ErrDuplicateCheck and leaves earlier
// registrations intact.
func (b *Builder) Add(name string, kind Kind, probe CheckFunc, opts ...CheckOption) error {
	if b.names == nil {
		return ErrBuilderConsumed
	}
	if name == "" {
		return ErrEmptyCheckName
	}
	if probe == nil {
		return fmt.Errorf("%w: %q", ErrNilProbe, name)
	}
	if kind < KindLiveness || kind > KindBoth {
		return fmt.Errorf("%w: %q", ErrInvalidKind, name)
	}
	if _, exists := b.names[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCheck, name)
	}

	c := check{name: name, kind: kind, probe: probe}
	for _, opt := range opts {
		opt(&c)
	}

	b.names[name] = struct{}{}
	b.checks = append(b.checks, c)
	return nil
}

// MustAdd registers a named check or panics. Use for static startup wiring
// where a registration error is a programming mistake.
func (b *Builder) MustAdd(name string, kind Kind, probe CheckFunc, opts ...CheckOption) *Builder {
	if err := b.Add(name, kind, probe, opts...); err != nil {
		panic(err)
	}
	return b
}

// Build consumes the builder and returns the frozen, immutable Checker.
// Ownership of the accumulated checks moves to the checker; subsequent Add
// calls on the builder fail with ErrBuilderConsumed.
func (b *Builder) Build(opts ...Option) *Checker {
	checks := b.checks
	b.checks = nil
	b.names = nil

	return &Checker{
		cfg:    newConfig(opts...),
		checks: checks,
	}
}
