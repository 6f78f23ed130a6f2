package async

import (
	"context"
	"sync"
)

// Future is a write-once handle to a value that becomes available
// asynchronously. Every future is paired with its own [CancelToken] at
// construction; cancelling the future trips the token but does not, by
// itself, resolve the future — cancellation is cooperative and it is up to
// whoever produces the value to honour it.
//
// A future moves from pending to resolved exactly once, via Complete or
// Fail. Once resolved, its value and error never change.
type Future[T any] struct {
	token *CancelToken
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

// New returns a pending future paired with a fresh cancellation token.
func New[T any]() *Future[T] {
	return &Future[T]{
		token: NewCancelToken(),
		done:  make(chan struct{}),
	}
}

// Go runs fn in its own goroutine and returns a future that resolves with
// fn's result. The goroutine starts immediately.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := New[T]()
	go func() {
		v, err := fn()
		f.settle(v, err)
	}()
	return f
}

// Completed returns a future already resolved with v.
func Completed[T any](v T) *Future[T] {
	f := New[T]()
	f.Complete(v)
	return f
}

// Failed returns a future already resolved with err.
func Failed[T any](err error) *Future[T] {
	f := New[T]()
	f.Fail(err)
	return f
}

// Complete resolves the future with v. Only the first resolution of a
// future takes effect; later Complete or Fail calls are ignored.
func (f *Future[T]) Complete(v T) {
	f.settle(v, nil)
}

// Fail resolves the future with err.
func (f *Future[T]) Fail(err error) {
	var zero T
	f.settle(zero, err)
}

func (f *Future[T]) settle(v T, err error) {
	f.once.Do(func() {
		f.value, f.err = v, err
		close(f.done)
	})
}

// Get blocks until the future resolves and returns its value and error.
// If ctx is done first, Get returns the zero value and ctx's error; the
// future itself is unaffected and a later Get can still succeed.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done reports whether the future has resolved, without blocking.
func (f *Future[T]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Cancel requests cooperative cancellation via the future's token.
// The future stays pending until its producer reacts.
func (f *Future[T]) Cancel() {
	f.token.Cancel()
}

// Cancelled reports whether cancellation has been requested on the
// future's token.
func (f *Future[T]) Cancelled() bool {
	return f.token.Cancelled()
}

// Token returns the cancellation token paired with this future, for
// handing to a worker that should poll it.
func (f *Future[T]) Token() *CancelToken {
	return f.token
}
