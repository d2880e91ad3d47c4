package arena

import (
	"errors"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
)

// ErrCorruptSnapshot is returned when a decoded snapshot breaks the arena's
// invariants.
var ErrCorruptSnapshot = errors.New("arena: corrupt snapshot")

var (
	snapshotEncMode cbor.EncMode
	snapshotDecMode cbor.DecMode
)

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("arena: failed to create CBOR enc mode: %v", err))
	}
	snapshotEncMode = em

	// The default array cap (131072) is far below MaxSlots.
	dm, err := cbor.DecOptions{MaxArrayElements: math.MaxInt32}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("arena: failed to create CBOR dec mode: %v", err))
	}
	snapshotDecMode = dm
}

// snapshot is the wire form of a SlotArena. Slots includes freed slots so
// that refs survive a round trip; Free keeps free-list order.
type snapshot[T any] struct {
	Slots []T      `cbor:"1,keyasint"`
	Free  []uint32 `cbor:"2,keyasint"`
}

// MarshalCBOR encodes the whole arena state, free list included. A nil
// arena encodes as an empty one.
func (a *SlotArena[T]) MarshalCBOR() ([]byte, error) {
	if a == nil {
		a = &SlotArena[T]{}
	}
	s := snapshot[T]{
		Slots: a.raw,
		Free:  make([]uint32, len(a.free)),
	}
	for i, r := range a.free {
		s.Free[i] = r.index
	}
	data, err := snapshotEncMode.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("arena: encode snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalCBOR replaces the arena state with a decoded snapshot. Free
// indices must be in range and unique. The arena is left untouched on error.
func (a *SlotArena[T]) UnmarshalCBOR(data []byte) error {
	var s snapshot[T]
	if err := snapshotDecMode.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("arena: decode snapshot: %w", err)
	}
	if uint64(len(s.Slots)) > MaxSlots {
		return fmt.Errorf("%w: %d slots", ErrCorruptSnapshot, len(s.Slots))
	}

	free := make([]Ref[T], 0, len(s.Free))
	seen := make(map[uint32]struct{}, len(s.Free))
	for _, idx := range s.Free {
		if uint64(idx) >= uint64(len(s.Slots)) {
			return fmt.Errorf("%w: free slot %d out of range (slots=%d)", ErrCorruptSnapshot, idx, len(s.Slots))
		}
		if _, dup := seen[idx]; dup {
			return fmt.Errorf("%w: slot %d freed twice", ErrCorruptSnapshot, idx)
		}
		seen[idx] = struct{}{}
		free = append(free, Ref[T]{index: idx})
	}

	a.raw = s.Slots
	a.free = free
	a.limit = 0
	return nil
}
