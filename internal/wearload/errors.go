package wearload

import "errors"

// Sentinel kinds for load run failures.
var (
	ErrNoItems       = errors.New("service has no items")
	ErrInvalidConfig = errors.New("invalid load config")
)
