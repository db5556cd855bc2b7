package pulse

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func okProbe(ctx context.Context) error { return nil }

func TestBuilderAdd(t *testing.T) {
	t.Parallel()

	t.Run("registers checks in order", func(t *testing.T) {
		t.Parallel()

		b := NewBuilder()
		require.NoError(t, b.Add("db", KindReadiness, okProbe))
		require.NoError(t, b.Add("cache", KindReadiness, okProbe))
		require.NoError(t, b.Add("proc", KindLiveness, okProbe))

		checker := b.Build()
		require.Equal(t, []string{"db", "cache", "proc"}, checker.Names())
	})

	t.Run("duplicate name fails and keeps first registration", func(t *testing.T) {
		t.Parallel()

		b := NewBuilder()
		require.NoError(t, b.Add("db", KindReadiness, okProbe))

		err := b.Add("db", KindLiveness, func(ctx context.Context) error {
			return errors.New("should never run")
		})
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrDuplicateCheck))

		checker := b.Build()
		require.Equal(t, []string{"db"}, checker.Names())

		// The surviving registration is the first one.
		report := checker.Run(context.Background(), FilterAll)
		require.Equal(t, StatusHealthy, report.Overall)
		require.Equal(t, KindReadiness, report.Outcomes[0].Kind)
	})

	t.Run("names are case-sensitive", func(t *testing.T) {
		t.Parallel()

		b := NewBuilder()
		require.NoError(t, b.Add("db", KindReadiness, okProbe))
		require.NoError(t, b.Add("DB", KindReadiness, okProbe))
	})

	t.Run("empty name returns ErrEmptyCheckName", func(t *testing.T) {
		t.Parallel()

		b := NewBuilder()
		err := b.Add("", KindReadiness, okProbe)
		require.True(t, errors.Is(err, ErrEmptyCheckName))
	})

	t.Run("nil probe returns ErrNilProbe", func(t *testing.T) {
		t.Parallel()

		b := NewBuilder()
		err := b.Add("db", KindReadiness, nil)
		require.True(t, errors.Is(err, ErrNilProbe))
	})

	t.Run("unknown kind returns ErrInvalidKind", func(t *testing.T) {
		t.Parallel()

		b := NewBuilder()
		err := b.Add("db", Kind(0), okProbe)
		require.True(t, errors.Is(err, ErrInvalidKind))

		err = b.Add("db", Kind(42), okProbe)
		require.True(t, errors.Is(err, ErrInvalidKind))
	})
}

func TestBuilderBuild(t *testing.T) {
	t.Parallel()

	t.Run("consumes the builder", func(t *testing.T) {
		t.Parallel()

		b := NewBuilder()
		require.NoError(t, b.Add("db", KindReadiness, okProbe))
		_ = b.Build()

		err := b.Add("cache", KindReadiness, okProbe)
		require.True(t, errors.Is(err, ErrBuilderConsumed))
	})

	t.Run("empty builder yields a healthy checker", func(t *testing.T) {
		t.Parallel()

		checker := NewBuilder().Build()
		report := checker.Run(context.Background(), FilterAll)
		require.Equal(t, StatusHealthy, report.Overall)
		require.Empty(t, report.Outcomes)
	})
}

func TestBuilderMustAdd(t *testing.T) {
	t.Parallel()

	t.Run("chains registrations", func(t *testing.T) {
		t.Parallel()

		checker := NewBuilder().
			MustAdd("db", KindReadiness, okProbe).
			MustAdd("proc", KindLiveness, okProbe).
			Build()
		require.Equal(t, []string{"db", "proc"}, checker.Names())
	})

	t.Run("panics on registration error", func(t *testing.T) {
		t.Parallel()

		b := NewBuilder().MustAdd("db", KindReadiness, okProbe)
		require.Panics(t, func() {
			b.MustAdd("db", KindReadiness, okProbe)
		})
	})
}
