package redischeck

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/pulse"
)

// Probe returns a readiness probe that verifies Redis connectivity with a
// single PING round trip on the provided client. PING is read-only and
// leaves no state observable by other clients. The client's lifecycle
// belongs to the caller.
//
// Example:
//
//	b.MustAdd("redis", pulse.KindReadiness, redischeck.Probe(client))
func Probe(client redis.UniversalClient) pulse.CheckFunc {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrNilClient
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrProbeFailed, err)
		}
		return nil
	}
}
