package redischeck

import "errors"

var (
	ErrNilClient   = errors.New("redischeck: client is nil")
	ErrProbeFailed = errors.New("redischeck: ping failed")
)
