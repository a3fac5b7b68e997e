package cache

import "errors"

// ErrUnknownBackend is returned by callers that select a backend by name.
var ErrUnknownBackend = errors.New("unknown cache backend")
