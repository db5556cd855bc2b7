package pulse

import "errors"

// Sentinel errors returned during check registration.
var (
	// ErrDuplicateCheck is returned when a check name is already registered.
	ErrDuplicateCheck = errors.New("pulse: check name already registered")

	// ErrEmptyCheckName is returned when a check is registered without a name.
	ErrEmptyCheckName = errors.New("pulse: check name must not be empty")

	// ErrNilProbe is returned when a check is registered with a nil probe.
	ErrNilProbe = errors.New("pulse: probe must not be nil")

	// ErrInvalidKind is returned when a check is registered with an unknown kind.
	ErrInvalidKind = errors.New("pulse: unknown check kind")

	// ErrBuilderConsumed is returned when a builder is used after Build.
	ErrBuilderConsumed = errors.New("pulse: builder already consumed by Build")
)
