package arr

import (
	"fmt"
	"hash/fnv"
)

// Hasher lets an element type supply its own hash code for [Contains].
// Types that do not implement it are hashed by FNV-1a over their default
// text form, so two values with equal text forms always collide.
type Hasher interface {
	HashCode() uint64
}

// hashOf returns v's hash code: the value's own HashCode when it implements
// [Hasher], otherwise an FNV-1a digest of fmt's default formatting of v.
func hashOf[T comparable](v T) uint64 {
	if h, ok := any(v).(Hasher); ok {
		return h.HashCode()
	}
	d := fnv.New64a()
	fmt.Fprintf(d, "%v", v)
	return d.Sum64()
}
