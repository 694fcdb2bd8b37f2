package builder

import "errors"

// Sentinel errors returned by the poset factories.
var (
	// ErrBadSize is returned for sizes outside the supported range.
	ErrBadSize = errors.New("builder: size out of range")

	// ErrTooFewElements is returned for empty element or label slices.
	ErrTooFewElements = errors.New("builder: too few elements")

	// ErrBadLabel is returned for duplicate, empty or malformed labels.
	ErrBadLabel = errors.New("builder: bad label")
)
