package arr

import "errors"

// Sentinel errors returned by arr operations.
var (
	// ErrEmpty is returned by Random when the input slice holds no elements.
	ErrEmpty = errors.New("arr: operation on empty slice")
)
