package cache

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(t *testing.T) *SimpleLRU {
	t.Helper()
	c := NewSimpleLRU(32)
	for _, k := range []string{"a", "b", "c", "d"} {
		require.True(t, c.Put([]byte(k), []byte("v")))
	}
	require.NoError(t, c.Check())
	return c
}

func TestCheck_DetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(c *SimpleLRU)
	}{
		{"used drift", func(c *SimpleLRU) { c.used++ }},
		{"broken back link", func(c *SimpleLRU) { c.entries[c.tail].prev = c.tail }},
		{"tail mismatch", func(c *SimpleLRU) { c.tail = c.head }},
		{"head has prev", func(c *SimpleLRU) { c.entries[c.head].prev = c.tail }},
		{"cycle", func(c *SimpleLRU) { c.entries[c.tail].next = c.head }},
		{"stale index", func(c *SimpleLRU) { c.index["ghost"] = c.head }},
		{"missing index", func(c *SimpleLRU) { delete(c.index, "a") }},
		{"head without tail", func(c *SimpleLRU) { c.tail = none }},
		{"over capacity", func(c *SimpleLRU) { c.capacity = 4 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := filled(t)
			tt.corrupt(c)
			assert.ErrorIs(t, c.Check(), ErrCorrupted)
		})
	}
}

func TestSimpleLRU_ReusesSlots(t *testing.T) {
	c := filled(t)
	slots := len(c.entries)

	require.True(t, c.Delete([]byte("b")))
	require.True(t, c.Put([]byte("e"), []byte("v")))
	assert.Equal(t, slots, len(c.entries), "deleted slot should be reused")

	// evictions recycle slots too
	c = NewSimpleLRU(4)
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		require.True(t, c.Put([]byte(k), []byte("v")))
	}
	assert.Equal(t, 2, len(c.entries))
	assert.Empty(t, c.free)
	require.NoError(t, c.Check())
}

func TestSimpleLRU_ReleaseDropsData(t *testing.T) {
	c := filled(t)
	i := c.index["c"]

	require.True(t, c.Delete([]byte("c")))
	assert.Empty(t, c.entries[i].key)
	assert.Nil(t, c.entries[i].value)
}

func TestSimpleLRU_FitsRejectsSizeOverflow(t *testing.T) {
	c := NewSimpleLRU(math.MaxInt)

	assert.ErrorIs(t, c.fits(math.MaxInt, 1), ErrOversizedEntry)
	assert.ErrorIs(t, c.fits(1, math.MaxInt), ErrOversizedEntry)
	assert.NoError(t, c.fits(math.MaxInt-1, 1))
	assert.Equal(t, 0, c.Len())
}
