package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted   = errors.New("service not started")
	ErrUnknownItem  = errors.New("unknown item")
	ErrInvalidEvent = errors.New("invalid wear event")
)
