// Package async provides a minimal write-once future paired with a
// cooperative cancellation token, and helpers that merge the results of
// several pending list-producing computations into one ordered slice.
//
// # Futures and tokens
//
// A [Future] resolves exactly once and is created pending alongside its own
// [CancelToken]. Cancellation is purely cooperative: Cancel trips the token
// and nothing else — the producer decides whether and when to stop.
//
//	f := async.Go(func() ([]int, error) { return fetchPage(1), nil })
//	vals, err := f.Get(ctx)
//
// # Merging
//
// The Join family concatenates the results of many *Future[[]T] inputs in
// input order, skipping inputs that were cancelled before being read:
//
//	merged, err := async.Join(ctx, pages...)              // sequential, fail-fast
//	merged, errs := async.JoinSettled(ctx, pages...)      // never fails, errors listed
//	merged, err = async.JoinConcurrent(ctx, pages...)     // parallel waits, fail-fast
//	fut := async.JoinAsync(onDone, pages...)              // caller does not block
//
// JoinAsync runs the merge on its own goroutine and isolates per-input
// failures: one bad input cannot abort the merge, it just contributes
// nothing. Cancelling the future JoinAsync returns makes the worker stop at
// the next input boundary without resolving it, so that future can stay
// pending forever — bound any wait on it with a context deadline.
package async
