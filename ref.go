package arena

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/fxamacker/cbor/v2"
)

// Ref is a 32-bit handle to a slot in a SlotArena[T].
//
// The type parameter only tags the handle: a Ref[int] cannot be passed where a
// Ref[string] is expected. Two arenas of the same T hand out refs that are
// indistinguishable by value, so callers must not mix refs between them.
type Ref[T any] struct {
	index uint32
}

// FromRaw builds a Ref from a raw slot index. No validation is done.
func FromRaw[T any](raw uint32) Ref[T] {
	return Ref[T]{index: raw}
}

// Raw returns the slot index of r.
func (r Ref[T]) Raw() uint32 {
	return r.index
}

// Compare orders refs by slot index.
func (r Ref[T]) Compare(other Ref[T]) int {
	return cmp.Compare(r.index, other.index)
}

// Less reports whether r sorts before other.
func (r Ref[T]) Less(other Ref[T]) bool {
	return r.index < other.index
}

func (r Ref[T]) String() string {
	return "Ref(" + strconv.FormatUint(uint64(r.index), 10) + ")"
}

// MarshalCBOR encodes r as a CBOR unsigned integer.
func (r Ref[T]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(r.index)
}

// UnmarshalCBOR decodes a CBOR unsigned integer into r.
func (r *Ref[T]) UnmarshalCBOR(data []byte) error {
	var raw uint32
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("arena: decode ref: %w", err)
	}
	r.index = raw
	return nil
}

// MarshalText encodes r as a decimal index, so refs can key JSON objects.
func (r Ref[T]) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(r.index), 10), nil
}

// UnmarshalText parses a decimal index into r.
func (r *Ref[T]) UnmarshalText(text []byte) error {
	raw, err := strconv.ParseUint(string(text), 10, 32)
	if err != nil {
		return fmt.Errorf("arena: decode ref: %w", err)
	}
	r.index = uint32(raw)
	return nil
}
