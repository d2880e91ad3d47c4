package arena

import (
	"fmt"
	"math"
	"slices"
)

// MaxSlots is the largest number of slots a SlotArena can address.
const MaxSlots = math.MaxUint32

// SlotArena is a block of values of type T accessed using 32-bit Refs rather
// than memory addresses. Freed slots are recycled, last freed first; the
// backing storage never shrinks.
//
// The zero value is an empty arena ready to use. SlotArena is not
// goroutine-safe; callers sharing one must serialize access themselves.
type SlotArena[T any] struct {
	raw  []T
	free []Ref[T]

	// limit caps the slot count when non-zero; zero means MaxSlots.
	limit uint32
}

// New creates an empty SlotArena. It does not pre-allocate any memory.
func New[T any]() *SlotArena[T] {
	return &SlotArena[T]{}
}

// WithCapacity creates an empty SlotArena with room for n values before the
// backing storage has to grow.
func WithCapacity[T any](n uint32) *SlotArena[T] {
	return &SlotArena[T]{raw: make([]T, 0, n)}
}

// Free returns the slot behind r to the arena. The stored value is left in
// place until the slot is reused.
//
// Free does not check r. Freeing a ref twice, or freeing a ref the arena
// never handed out, corrupts later inserts: the same slot can be given out
// twice, or an insert can panic on an out-of-range slot.
func (a *SlotArena[T]) Free(r Ref[T]) {
	a.free = append(a.free, r)
}

// IsValid reports whether r is in bounds and not freed. The free-list check
// is a linear scan.
func (a *SlotArena[T]) IsValid(r Ref[T]) bool {
	return uint64(r.index) < uint64(len(a.raw)) && !a.isFree(r)
}

func (a *SlotArena[T]) isFree(r Ref[T]) bool {
	return slices.Contains(a.free, r)
}

// Get returns the value behind r, which must be valid.
//
// Validity is asserted only in builds tagged arenadebug. Otherwise an
// out-of-range ref panics on the slice bounds check, and a freed or reused
// ref silently yields whatever value the slot holds now.
func (a *SlotArena[T]) Get(r Ref[T]) T {
	if debugChecks {
		a.mustBeValid(r)
	}
	return a.raw[r.index]
}

// Ptr returns a pointer to the value behind r, which must be valid. The same
// caveats as Get apply. The pointer is invalidated by the next Insert that
// grows the arena.
func (a *SlotArena[T]) Ptr(r Ref[T]) *T {
	if debugChecks {
		a.mustBeValid(r)
	}
	return &a.raw[r.index]
}

// TryGet returns the value behind r, or false if r is not valid.
func (a *SlotArena[T]) TryGet(r Ref[T]) (T, bool) {
	if !a.IsValid(r) {
		var zero T
		return zero, false
	}
	return a.raw[r.index], true
}

// TryPtr returns a pointer to the value behind r, or false if r is not valid.
func (a *SlotArena[T]) TryPtr(r Ref[T]) (*T, bool) {
	if !a.IsValid(r) {
		return nil, false
	}
	return &a.raw[r.index], true
}

// Reserve grows the backing storage so that n more values can be appended
// without reallocating. Free slots are not counted.
func (a *SlotArena[T]) Reserve(n uint32) {
	a.raw = slices.Grow(a.raw, int(n))
}

// Clone returns a copy of the arena. Values are copied shallowly; refs
// issued by a stay valid in the clone.
func (a *SlotArena[T]) Clone() *SlotArena[T] {
	return &SlotArena[T]{
		raw:   slices.Clone(a.raw),
		free:  slices.Clone(a.free),
		limit: a.limit,
	}
}

func (a *SlotArena[T]) mustBeValid(r Ref[T]) {
	if !a.IsValid(r) {
		panic(fmt.Sprintf("arena: invalid ref %v (slots=%d, free=%d)", r, len(a.raw), len(a.free)))
	}
}
