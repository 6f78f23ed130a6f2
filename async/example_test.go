package async_test

import (
	"context"
	"fmt"

	"github.com/eddiep/go-array-utils/async"
)

func ExampleJoin() {
	a := async.Completed([]string{"a", "b"})
	b := async.Completed([]string{"c"})

	merged, err := async.Join(context.Background(), a, b)
	fmt.Println(merged, err)
	// Output: [a b c] <nil>
}

func ExampleJoinAsync() {
	done := make(chan []int, 1)
	pages := []*async.Future[[]int]{
		async.Go(func() ([]int, error) { return []int{1, 2}, nil }),
		async.Go(func() ([]int, error) { return []int{3}, nil }),
	}

	async.JoinAsync(func(merged []int) { done <- merged }, pages...)

	fmt.Println(<-done)
	// Output: [1 2 3]
}

func ExampleJoinSettled() {
	ok := async.Completed([]int{1})
	bad := async.Failed[[]int](fmt.Errorf("upstream down"))

	merged, errs := async.JoinSettled(context.Background(), ok, bad)
	fmt.Println(merged, len(errs))
	// Output: [1] 1
}

func ExampleFuture_Cancel() {
	f := async.New[[]int]()
	f.Cancel()

	// A cancelled input is skipped by every join without being read.
	merged, err := async.Join(context.Background(), f, async.Completed([]int{9}))
	fmt.Println(merged, err)
	// Output: [9] <nil>
}
