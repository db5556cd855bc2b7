// Package postgres provides a PostgreSQL connectivity probe for pulse
// health checks.
//
// The probe wraps [github.com/jackc/pgx/v5/pgxpool] and performs a single
// read-only `SELECT 1` round trip per invocation. It expects a live,
// already-initialized pool and never manages the pool's lifecycle.
package postgres
