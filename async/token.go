package async

import "sync/atomic"

// CancelToken is a cooperative cancellation signal shared between the owner
// of an operation and the worker executing it. The flag is sticky: once
// Cancel has been called it can never be cleared. The worker is expected to
// poll Cancelled at its checkpoints; nothing is interrupted for it.
type CancelToken struct {
	cancelled atomic.Bool
}

// NewCancelToken returns a token with cancellation not yet requested.
func NewCancelToken() *CancelToken {
	return &CancelToken{}
}

// Cancel requests cancellation. Calling it more than once is harmless.
// Safe for concurrent use with Cancelled.
func (t *CancelToken) Cancel() {
	t.cancelled.Store(true)
}

// Cancelled reports whether cancellation has been requested.
func (t *CancelToken) Cancelled() bool {
	return t.cancelled.Load()
}
