package bundles

import "errors"

// ErrNotFound indicates the requested bundle does not exist.
var ErrNotFound = errors.New("bundle not found")

// ErrIncomplete indicates a save was attempted with missing pieces.
var ErrIncomplete = errors.New("bundle is incomplete")
