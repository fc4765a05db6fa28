package player

import "errors"

// ErrMissingPlayerID is returned for a blank player id
var ErrMissingPlayerID = errors.New("player id is required")

// ErrPlayerNotFound is returned when neither the id nor the name of a
// requested player exists in the corpus
var ErrPlayerNotFound = errors.New("player not found")
