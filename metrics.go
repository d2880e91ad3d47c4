package arena

// The read-only accessors below treat a nil arena as empty, like All.

// Len returns the number of occupied slots.
// A ref freed twice is counted twice, so Len under-reports after such a bug.
func (a *SlotArena[T]) Len() int {
	if a == nil {
		return 0
	}
	n := len(a.raw) - len(a.free)
	if n < 0 {
		return 0
	}
	return n
}

// Slots returns the number of slots ever created, occupied or free.
func (a *SlotArena[T]) Slots() int {
	if a == nil {
		return 0
	}
	return len(a.raw)
}

// Capacity returns the number of slots the backing storage can hold before
// it has to grow.
func (a *SlotArena[T]) Capacity() int {
	if a == nil {
		return 0
	}
	return cap(a.raw)
}

// NumFree returns the number of entries on the free list.
func (a *SlotArena[T]) NumFree() int {
	if a == nil {
		return 0
	}
	return len(a.free)
}

// Utilization returns the ratio of occupied slots to all slots (0.0 to 1.0).
// Returns 0.0 if the arena has no slots.
func (a *SlotArena[T]) Utilization() float64 {
	slots := a.Slots()
	if slots == 0 {
		return 0
	}
	return float64(a.Len()) / float64(slots)
}

// Metrics returns a snapshot of arena statistics.
func (a *SlotArena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Len:         a.Len(),
		Slots:       a.Slots(),
		Capacity:    a.Capacity(),
		NumFree:     a.NumFree(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Len         int     // Occupied slots
	Slots       int     // Occupied plus free slots
	Capacity    int     // Slots the backing storage can hold
	NumFree     int     // Free-list length
	Utilization float64 // Ratio of occupied to total slots (0.0-1.0)
}
