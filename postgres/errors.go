package postgres

import "errors"

var (
	ErrNilPool     = errors.New("postgres: connection pool is nil")
	ErrProbeFailed = errors.New("postgres: probe query failed")
)
