package httpcheck

import "errors"

var (
	ErrNilClient        = errors.New("httpcheck: client is nil")
	ErrProbeFailed      = errors.New("httpcheck: request failed")
	ErrUnexpectedStatus = errors.New("httpcheck: unexpected response status")
)
