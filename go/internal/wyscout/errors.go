package wyscout

import "errors"

var (
	// ErrDataUnavailable is returned when no metrics export was loaded
	ErrDataUnavailable = errors.New("wyscout data not available")
	// ErrProfileNotFound is returned for an id missing from the metrics export
	ErrProfileNotFound = errors.New("player not found in wyscout data")
	ErrFileNotFound    = errors.New("file not found")
	ErrMissingParams   = errors.New("missing player or file param")
)
