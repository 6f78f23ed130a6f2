package async

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Join blocks until every input future has been consulted and returns their
// values concatenated in input order (elements within one input keep their
// own order). Inputs that are nil or already cancelled are skipped without
// being read. The first resolution failure, or ctx expiring during a wait,
// aborts the join and is returned to the caller.
func Join[T any](ctx context.Context, inputs ...*Future[[]T]) ([]T, error) {
	merged := make([]T, 0)
	for _, in := range inputs {
		if in == nil || in.Cancelled() {
			continue
		}
		vals, err := in.Get(ctx)
		if err != nil {
			return nil, err
		}
		merged = append(merged, vals...)
	}
	return merged, nil
}

// JoinSettled is the collect-everything variant of [Join]: it never fails.
// Inputs whose wait or computation failed contribute nothing to the merged
// result; their errors are returned alongside it, in the order they were
// observed. An expired ctx surfaces as one error per remaining input.
func JoinSettled[T any](ctx context.Context, inputs ...*Future[[]T]) ([]T, []error) {
	merged := make([]T, 0)
	var errs []error
	for _, in := range inputs {
		if in == nil || in.Cancelled() {
			continue
		}
		vals, err := in.Get(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		merged = append(merged, vals...)
	}
	return merged, errs
}

// JoinAsync performs the same merge as [Join] without blocking the caller.
// It immediately returns a fresh pending future and hands the walk to a
// dedicated goroutine; when every input has been consulted the future
// resolves with the merged slice and callback, if non-nil, is then invoked
// on the worker goroutine with that same slice.
//
// Failure handling differs from Join on purpose: an input whose resolution
// fails is dropped from the merge and the overall result still completes.
// Use [JoinSettled] when the dropped errors matter.
//
// Cancelling the returned future stops the worker at the next input
// boundary. An in-flight wait on an individual input is not interrupted;
// only the following iteration observes the token. When the worker exits
// this way it resolves nothing and invokes no callback — the returned
// future stays pending forever, so observers must poll with Done or bound
// Get with a context deadline rather than wait indefinitely.
func JoinAsync[T any](callback func([]T), inputs ...*Future[[]T]) *Future[[]T] {
	out := New[[]T]()

	go func() {
		merged := make([]T, 0)
		for _, in := range inputs {
			if out.Cancelled() {
				return
			}
			if in == nil || in.Cancelled() {
				continue
			}
			vals, err := in.Get(context.Background())
			if err != nil {
				continue
			}
			merged = append(merged, vals...)
		}

		out.Complete(merged)
		if callback != nil {
			callback(merged)
		}
	}()

	return out
}

// JoinConcurrent awaits all inputs at once instead of one after another and
// returns their values concatenated in input order. Nil and already
// cancelled inputs are skipped. The first failure cancels the derived
// context, so remaining waits return early, and that error is returned.
func JoinConcurrent[T any](ctx context.Context, inputs ...*Future[[]T]) ([]T, error) {
	parts := make([][]T, len(inputs))
	g, gctx := errgroup.WithContext(ctx)

	for i, in := range inputs {
		if in == nil || in.Cancelled() {
			continue
		}
		i, in := i, in
		g.Go(func() error {
			vals, err := in.Get(gctx)
			if err != nil {
				return err
			}
			parts[i] = vals
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]T, 0)
	for _, part := range parts {
		merged = append(merged, part...)
	}
	return merged, nil
}
