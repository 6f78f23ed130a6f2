// Package arr provides standalone generic helper functions for Go slices:
// element-wise transforms, in-place trimming, concatenation, membership
// testing, and uniform random selection.
//
// # One sequence API
//
// All helpers operate on plain []T values — no wrapper type required. Pure
// operations (Transform, Concat, Filter, Shuffle) allocate a fresh slice and
// never touch their input; in-place operations (Trim, AppendTo) deliberately
// reuse or grow the input's backing array and say so in their doc comment:
//
//	doubled := arr.Transform([]int{1, 2, 3}, func(n int) int { return n * 2 })
//	kept    := arr.Trim(nums, func(n int) bool { return n < 0 }) // mutates nums
//	both    := arr.Concat(a, b)
//
// # Membership by hash code
//
// Contains matches an element when it is equal to the needle or when the two
// hash codes collide (see [Hasher]). This looser-than-equality test is part
// of the package contract; use [IndexOf] when only equality should count:
//
//	arr.Contains(users, alice)       // equality or hash collision
//	arr.IndexOf(users, alice) >= 0   // equality only
//
// # Assertions
//
// AssertEach verifies a predicate over every element and fails fast with a
// single descriptive error, wrapping the predicate's own error when it is
// the predicate that failed:
//
//	err := arr.AssertEach(ports, func(p int) (bool, error) {
//	    return p > 0 && p < 65536, nil
//	}, "port out of range")
package arr
