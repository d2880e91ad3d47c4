// Package arena implements a slot arena: a growable pool of values of a
// single type, addressed by 32-bit handles instead of pointers.
//
// # Overview
//
// A SlotArena[T] stores values in one backing slice and hands out Ref[T]
// handles. A Ref is four bytes, copyable, comparable, ordered and usable as a
// map key, which makes it a compact way to link values together:
//
//   - Graph and tree nodes that point at each other by index
//   - Object tables referenced from serialized data
//   - Pools of entities that are created and destroyed often
//
// # Basic Usage
//
//	names := arena.New[string]()
//
//	james := names.Insert("James")
//	john := names.Insert("John")
//
//	fmt.Println(names.Get(james)) // James
//
//	names.Free(john)
//	names.IsValid(john) // false
//
//	for ref, name := range names.All() {
//		fmt.Println(ref, name)
//	}
//
// # Slot Reuse
//
// Free pushes a ref onto a free list. The next Insert pops the most recently
// freed ref and overwrites its slot, so slots are reused last freed first.
// The backing storage never shrinks.
//
// Refs carry no generation counter. A ref kept after Free cannot be told
// apart from the ref a later Insert hands out for the same slot.
//
// # Checked and Unchecked Access
//
// Insert, Get and Ptr are meant for paths where the caller already knows the
// ref is valid. Insert panics when the arena is full. Get and Ptr assert
// validity only when built with the arenadebug tag:
//
//	go test -tags arenadebug ./...
//
// Without the tag an out-of-range ref panics on the slice bounds check and a
// freed ref returns whatever value its slot holds.
//
// TryInsert, TryGet and TryPtr report failure with a boolean instead.
//
// Free is never checked. Freeing the same ref twice hands one slot out to
// two later inserts; freeing an out-of-range ref makes a later insert panic.
//
// # Thread Safety
//
// SlotArena is not goroutine-safe. Guard a shared arena with a mutex:
//
//	var mu sync.Mutex
//	mu.Lock()
//	ref := names.Insert("Jack")
//	mu.Unlock()
//
// # Performance Characteristics
//
//   - Insert, TryInsert, Free, Get, Ptr: O(1) amortized
//   - IsValid, TryGet, TryPtr: O(free-list length)
//   - All, AllPtr: O(slots × free-list length) per full pass
//
// # Serialization
//
// Ref encodes as an unsigned integer in CBOR and as decimal text.
// SlotArena implements cbor.Marshaler, encoding its slots and free list so
// refs stay meaningful after a round trip.
package arena
