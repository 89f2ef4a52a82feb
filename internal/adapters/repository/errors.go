package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrNotFound    = errors.New("item not found")
	ErrInvalidItem = errors.New("invalid item")
	ErrLoadSeed    = errors.New("load seed failed")
)
