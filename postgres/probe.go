package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/pulse"
)

// Probe returns a readiness probe that verifies PostgreSQL connectivity
// with a single `SELECT 1` round trip on the provided pool. The probe never
// opens or closes connections itself; the pool's lifecycle belongs to the
// caller.
//
// Example:
//
//	b.MustAdd("postgres", pulse.KindReadiness, postgres.Probe(pool))
func Probe(pool *pgxpool.Pool) pulse.CheckFunc {
	return func(ctx context.Context) error {
		if pool == nil {
			return ErrNilPool
		}

		var one int
		if err := pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
			return errors.Join(ErrProbeFailed, err)
		}
		return nil
	}
}
