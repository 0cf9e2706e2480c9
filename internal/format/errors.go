package format

import "errors"

var (
	// ErrInvalidFormat reports text that is not digits[.digits][suffix].
	ErrInvalidFormat = errors.New("invalid suffixed number format")
	// ErrInvalidSuffix reports a trailing letter that is not a known tier.
	ErrInvalidSuffix = errors.New("invalid suffix in suffixed number")
	// ErrNegativeDuration reports a negative seconds count.
	ErrNegativeDuration = errors.New("duration must be >= 0")
)
