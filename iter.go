package arena

import "iter"

// All returns an iterator over the occupied slots in ascending index order.
// Each slot is checked against the free list, so a full pass costs
// O(slots × free). A nil arena yields nothing.
func (a *SlotArena[T]) All() iter.Seq2[Ref[T], T] {
	return func(yield func(Ref[T], T) bool) {
		if a == nil {
			return
		}
		for i := 0; i < len(a.raw); i++ {
			r := Ref[T]{index: uint32(i)}
			if a.isFree(r) {
				continue
			}
			if !yield(r, a.raw[i]) {
				return
			}
		}
	}
}

// AllPtr is like All but yields pointers into the arena, so values can be
// updated in place. Inserting during iteration may move the storage and
// leave earlier pointers dangling into the old copy.
func (a *SlotArena[T]) AllPtr() iter.Seq2[Ref[T], *T] {
	return func(yield func(Ref[T], *T) bool) {
		if a == nil {
			return
		}
		for i := 0; i < len(a.raw); i++ {
			r := Ref[T]{index: uint32(i)}
			if a.isFree(r) {
				continue
			}
			if !yield(r, &a.raw[i]) {
				return
			}
		}
	}
}

// Refs returns an iterator over the refs of occupied slots.
func (a *SlotArena[T]) Refs() iter.Seq[Ref[T]] {
	return func(yield func(Ref[T]) bool) {
		for r := range a.All() {
			if !yield(r) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of occupied slots.
func (a *SlotArena[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}
