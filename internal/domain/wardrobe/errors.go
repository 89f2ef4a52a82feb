package wardrobe

import "errors"

// Sentinel kinds for item validation.
var (
	ErrNegativePrice     = errors.New("price must not be negative")
	ErrNegativeWearCount = errors.New("times worn must not be negative")
)
