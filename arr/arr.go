package arr

import (
	"fmt"
	"math/rand"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// ForEach invokes fn once per element, in order.
// A panic raised by fn propagates immediately and aborts the remaining
// iterations.
func ForEach[T any](items []T, fn func(T)) {
	for _, item := range items {
		fn(item)
	}
}

// AssertEach evaluates fn for every element and fails on the first element
// that does not satisfy it. A false result yields an error carrying msg; an
// error from fn itself yields an error carrying msg and wrapping the cause.
// Returns nil when every element passes.
func AssertEach[T any](items []T, fn func(T) (bool, error), msg string) error {
	for _, item := range items {
		ok, err := fn(item)
		if err != nil {
			return fmt.Errorf("%s: %w", msg, err)
		}
		if !ok {
			return fmt.Errorf("%s", msg)
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Transform applies fn to each element and returns a new slice of the same
// length where element i equals fn(items[i]). The input slice is never
// mutated.
func Transform[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Trim removes every element for which fn returns true, in place, preserving
// the relative order of the survivors. The backing array of items is reused;
// the returned slice is the trimmed view of it.
func Trim[T any](items []T, fn func(T) bool) []T {
	out := items[:0]
	for _, item := range items {
		if !fn(item) {
			out = append(out, item)
		}
	}
	// Clear the tail so removed elements do not pin memory.
	var zero T
	for i := len(out); i < len(items); i++ {
		items[i] = zero
	}
	return out
}

// Filter returns a new slice holding the elements for which fn returns true.
// It is the non-mutating counterpart of [Trim] with the predicate inverted.
func Filter[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Combination
// ─────────────────────────────────────────────────────────────────────────────

// Concat returns a new slice of length len(a)+len(b) holding a's elements
// followed by b's, in order. Neither input is mutated.
func Concat[T any](a, b []T) []T {
	out := make([]T, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

// AppendTo appends src's elements onto dst and returns the extended dst.
// dst's backing array is grown as needed; src is never mutated. Note the
// direction: the result is dst's elements followed by src's.
func AppendTo[T any](src, dst []T) []T {
	return append(dst, src...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether items holds an element that equals v or whose
// hash code (see [Hasher]) matches v's. A hash collision alone counts as a
// match, so membership is deliberately looser than plain equality; callers
// that need strict equality should compare directly.
func Contains[T comparable](items []T, v T) bool {
	h := hashOf(v)
	for _, item := range items {
		if item == v || hashOf(item) == h {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first element equal to v, or -1.
// Unlike [Contains], only equality is considered.
func IndexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Random returns a uniformly selected element using the shared package-level
// random source. Returns the zero value and [ErrEmpty] when items is empty.
func Random[T any](items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmpty
	}
	return items[rand.Intn(len(items))], nil
}

// Shuffle returns a randomly shuffled copy of items, drawn from the same
// shared random source as [Random]. The input is never mutated.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// String form
// ─────────────────────────────────────────────────────────────────────────────

// String renders items as the default text form of each element followed by
// a tab character. The trailing tab is kept, so String of a one-element
// slice is "x\t" and String of an empty slice is "".
func String[T any](items []T) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%v\t", item)
	}
	return b.String()
}
