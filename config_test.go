package pulse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigOptions(t *testing.T) {
	t.Parallel()

	t.Run("populated config maps to options", func(t *testing.T) {
		t.Parallel()

		cfg := Config{
			GlobalTimeout:   200 * time.Millisecond,
			CheckTimeout:    50 * time.Millisecond,
			StrictReadiness: true,
		}

		b := NewBuilder()
		require.NoError(t, b.Add("cache", KindReadiness, failProbe("refused")))
		checker := b.Build(cfg.Options()...)

		report := checker.Run(context.Background(), FilterAll)
		require.Equal(t, StatusUnhealthy, report.Overall, "strict policy must apply")
	})

	t.Run("zero config falls back to defaults", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, Config{}.Options())

		b := NewBuilder()
		require.NoError(t, b.Add("cache", KindReadiness, failProbe("refused")))
		report := b.Build(Config{}.Options()...).Run(context.Background(), FilterAll)
		require.Equal(t, StatusDegraded, report.Overall, "default policy is lenient")
	})
}
