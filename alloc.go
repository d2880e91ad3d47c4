package arena

// Insert stores value in the arena and returns a Ref to it. The most
// recently freed slot is reused first; otherwise a new slot is appended.
//
// Insert panics if the arena already holds MaxSlots slots and none is free.
func (a *SlotArena[T]) Insert(value T) Ref[T] {
	r, ok := a.TryInsert(value)
	if !ok {
		panic("arena: slot arena is full")
	}
	return r
}

// TryInsert is like Insert but reports false instead of panicking when the
// arena is full.
func (a *SlotArena[T]) TryInsert(value T) (Ref[T], bool) {
	if n := len(a.free); n > 0 {
		r := a.free[n-1]
		a.free = a.free[:n-1]
		a.raw[r.index] = value
		return r, true
	}

	if uint64(len(a.raw)) >= a.maxSlots() {
		return Ref[T]{}, false
	}

	r := Ref[T]{index: uint32(len(a.raw))}
	a.raw = append(a.raw, value)
	return r, true
}

// maxSlots returns the slot cap for this arena.
func (a *SlotArena[T]) maxSlots() uint64 {
	if a.limit != 0 {
		return uint64(a.limit)
	}
	return MaxSlots
}
