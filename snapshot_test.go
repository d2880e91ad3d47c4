package arena

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	a := build("A", "B", "C", "D")
	a.Free(FromRaw[string](1))
	a.Free(FromRaw[string](3))

	data, err := cbor.Marshal(a)
	require.NoError(t, err)

	var b SlotArena[string]
	require.NoError(t, cbor.Unmarshal(data, &b))

	assert.True(t, Equal(a, &b))
	assert.Equal(t, a.raw, b.raw, "freed slots keep their stale values")
	assert.Equal(t, a.free, b.free)

	// Free-list order survives, so reuse stays LIFO after decoding.
	assert.Equal(t, FromRaw[string](3), b.Insert("x"))
	assert.Equal(t, FromRaw[string](1), b.Insert("y"))
}

func TestSnapshotDeterministic(t *testing.T) {
	a := build("x", "y")
	a.Free(FromRaw[string](0))

	first, err := a.MarshalCBOR()
	require.NoError(t, err)
	second, err := a.Clone().MarshalCBOR()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSnapshotEmpty(t *testing.T) {
	data, err := New[int]().MarshalCBOR()
	require.NoError(t, err)

	b := build("leftover")
	require.NoError(t, b.UnmarshalCBOR(data))
	assert.Equal(t, 0, b.Slots())
	assert.Equal(t, 0, b.NumFree())
}

func TestSnapshotCorrupt(t *testing.T) {
	tests := []struct {
		name string
		snap snapshot[string]
	}{
		{"free index out of range", snapshot[string]{Slots: []string{"a"}, Free: []uint32{1}}},
		{"free list without slots", snapshot[string]{Free: []uint32{0}}},
		{"duplicate free index", snapshot[string]{Slots: []string{"a", "b"}, Free: []uint32{0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := cbor.Marshal(tt.snap)
			require.NoError(t, err)

			a := build("keep")
			err = a.UnmarshalCBOR(data)
			require.ErrorIs(t, err, ErrCorruptSnapshot)
			assert.Equal(t, []string{"keep"}, a.raw, "failed decode must leave the arena untouched")
		})
	}
}

func TestSnapshotGarbage(t *testing.T) {
	var a SlotArena[int]
	err := a.UnmarshalCBOR([]byte{0xff, 0x00})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCorruptSnapshot)
	assert.Contains(t, err.Error(), "arena: decode snapshot")
}

func TestSnapshotLargeRoundTrip(t *testing.T) {
	const n = 200_000

	tests := []struct {
		name  string
		freed int
	}{
		{"no free slots", 0},
		{"some free slots", 1_000},
		{"long free list", 150_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := WithCapacity[uint16](n)
			for i := range n {
				a.Insert(uint16(i))
			}
			for i := range tt.freed {
				a.Free(FromRaw[uint16](uint32(uint64(i) * n / uint64(tt.freed))))
			}

			data, err := a.MarshalCBOR()
			require.NoError(t, err)

			var b SlotArena[uint16]
			require.NoError(t, b.UnmarshalCBOR(data))
			assert.Equal(t, n, b.Slots())
			assert.Equal(t, tt.freed, b.NumFree())
			assert.Equal(t, a.raw, b.raw)
			assert.Equal(t, a.free, b.free)
		})
	}
}

func TestSnapshotNilArena(t *testing.T) {
	var a *SlotArena[string]
	data, err := a.MarshalCBOR()
	require.NoError(t, err)

	b := build("leftover")
	require.NoError(t, b.UnmarshalCBOR(data))
	assert.Equal(t, 0, b.Slots())
	assert.Equal(t, 0, b.NumFree())
}

func TestSnapshotClearsLimit(t *testing.T) {
	data, err := build("a", "b", "c").MarshalCBOR()
	require.NoError(t, err)

	a := &SlotArena[string]{limit: 1}
	require.NoError(t, a.UnmarshalCBOR(data))
	assert.Zero(t, a.limit)

	r, ok := a.TryInsert("d")
	require.True(t, ok, "a decoded arena is not bound by its previous limit")
	assert.Equal(t, FromRaw[string](3), r)
}
