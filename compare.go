package arena

import (
	"cmp"
	"iter"
)

// Equal reports whether a and b hold the same values under the same refs.
// Freed slots and spare capacity are ignored.
func Equal[T comparable](a, b *SlotArena[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[T, U any](a *SlotArena[T], b *SlotArena[U], eq func(T, U) bool) bool {
	return CompareFunc(a, b, func(x T, y U) int {
		if eq(x, y) {
			return 0
		}
		return 1
	}) == 0
}

// Compare orders two arenas lexicographically by their occupied slots, ref
// first and value second. An arena whose slots are a prefix of the other's
// sorts first.
func Compare[T cmp.Ordered](a, b *SlotArena[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but compares values with compare.
func CompareFunc[T, U any](a *SlotArena[T], b *SlotArena[U], compare func(T, U) int) int {
	nextA, stopA := iter.Pull2(a.All())
	defer stopA()
	nextB, stopB := iter.Pull2(b.All())
	defer stopB()

	for {
		ra, va, okA := nextA()
		rb, vb, okB := nextB()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}
		if c := cmp.Compare(ra.index, rb.index); c != 0 {
			return c
		}
		if c := compare(va, vb); c != 0 {
			return c
		}
	}
}
