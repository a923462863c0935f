package cache

import (
	"bytes"
	"math"
)

// SimpleLRU is a byte-bounded key-value store with least recently used eviction.
// The capacity limits the sum of key and value lengths over all stored entries.
//
// SimpleLRU is not safe for concurrent use. Wrap it with Locked or Sharded
// when several goroutines share one store.
type SimpleLRU struct {
	capacity int
	used     int

	head int
	tail int

	index   map[string]int
	entries []entry
	free    []int

	onEvict func(key, value []byte) // Called for entries dropped to make room
}

// Option configures a SimpleLRU.
type Option func(*SimpleLRU)

// WithEvictCallback registers fn to be called for every entry evicted to free space.
// Explicit deletions do not trigger it.
func WithEvictCallback(fn func(key, value []byte)) Option {
	return func(c *SimpleLRU) {
		c.onEvict = fn
	}
}

// NewSimpleLRU creates a store holding at most capacity bytes of keys and values.
// The capacity must be positive, otherwise it panics.
func NewSimpleLRU(capacity int, opts ...Option) *SimpleLRU {
	if capacity <= 0 {
		panic(ErrInvalidCapacity)
	}
	c := &SimpleLRU{
		capacity: capacity,
		head:     none,
		tail:     none,
		index:    make(map[string]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Put stores the value under key and makes it the most recently used entry.
// It reports false only when the pair can never fit into the store.
func (c *SimpleLRU) Put(key, value []byte) bool {
	return c.TryPut(key, value) == nil
}

// PutIfAbsent stores the pair only if key is not present yet.
func (c *SimpleLRU) PutIfAbsent(key, value []byte) bool {
	return c.TryPutIfAbsent(key, value) == nil
}

// Set replaces the value of an existing key.
func (c *SimpleLRU) Set(key, value []byte) bool {
	return c.TrySet(key, value) == nil
}

// Delete removes key from the store.
func (c *SimpleLRU) Delete(key []byte) bool {
	return c.TryDelete(key) == nil
}

// Get returns a copy of the value stored under key and marks it as recently used.
func (c *SimpleLRU) Get(key []byte) ([]byte, bool) {
	value, err := c.TryGet(key)
	return value, err == nil
}

// TryPut is Put reporting ErrOversizedEntry instead of false.
func (c *SimpleLRU) TryPut(key, value []byte) error {
	if err := c.fits(len(key), len(value)); err != nil {
		return err
	}
	c.put(string(key), bytes.Clone(value))
	return nil
}

// TryPutIfAbsent returns ErrKeyExists when key is already stored.
func (c *SimpleLRU) TryPutIfAbsent(key, value []byte) error {
	if _, ok := c.index[string(key)]; ok {
		return ErrKeyExists
	}
	return c.TryPut(key, value)
}

// TrySet returns ErrKeyMissing when key is not stored.
// Other entries may be evicted to make room for a larger value; the updated
// entry itself never is.
func (c *SimpleLRU) TrySet(key, value []byte) error {
	if _, ok := c.index[string(key)]; !ok {
		return ErrKeyMissing
	}
	return c.TryPut(key, value)
}

// TryDelete returns ErrKeyMissing when key is not stored.
func (c *SimpleLRU) TryDelete(key []byte) error {
	i, ok := c.index[string(key)]
	if !ok {
		return ErrKeyMissing
	}
	e := &c.entries[i]
	c.unlink(i)
	delete(c.index, e.key)
	c.used -= e.size()
	c.release(i)
	return nil
}

// TryGet returns ErrKeyMissing when key is not stored.
// A hit is written back through the same path as Put, which promotes the entry.
func (c *SimpleLRU) TryGet(key []byte) ([]byte, error) {
	i, ok := c.index[string(key)]
	if !ok {
		return nil, ErrKeyMissing
	}
	e := &c.entries[i]
	value := e.value
	if err := c.fits(len(e.key), len(value)); err != nil {
		return nil, err
	}
	c.put(e.key, value)
	return bytes.Clone(value), nil
}

// Len returns the number of stored entries.
func (c *SimpleLRU) Len() int {
	return len(c.index)
}

// Used returns the number of bytes taken by stored keys and values.
func (c *SimpleLRU) Used() int {
	return c.used
}

// Capacity returns the byte budget fixed at construction.
func (c *SimpleLRU) Capacity() int {
	return c.capacity
}

// Keys returns the stored keys from the most to the least recently used.
// It does not change recency.
func (c *SimpleLRU) Keys() [][]byte {
	keys := make([][]byte, 0, len(c.index))
	for i := c.head; i != none; i = c.entries[i].next {
		keys = append(keys, []byte(c.entries[i].key))
	}
	return keys
}

// fits rejects pairs whose combined size overflows int or exceeds the capacity.
func (c *SimpleLRU) fits(keySize, valueSize int) error {
	if keySize > math.MaxInt-valueSize {
		return ErrOversizedEntry
	}
	if keySize+valueSize > c.capacity {
		return ErrOversizedEntry
	}
	return nil
}

// put inserts or updates the pair at the head. The caller has checked the size
// and hands over ownership of value.
func (c *SimpleLRU) put(key string, value []byte) {
	if i, ok := c.index[key]; ok {
		// Promote first so the entry sits at the head while the tail is evicted.
		c.moveToFront(i)
		delta := len(value) - len(c.entries[i].value)
		c.reserve(max(0, delta))
		c.entries[i].value = value
		c.used += delta
		return
	}

	needed := len(key) + len(value)
	c.reserve(needed)
	i := c.alloc(key, value)
	c.pushFront(i)
	c.index[key] = i
	c.used += needed
}

// reserve evicts from the tail until needed more bytes fit.
func (c *SimpleLRU) reserve(needed int) {
	for c.used+needed > c.capacity {
		if c.tail == none {
			panic("cache: cannot free space for an entry that passed the size check")
		}
		c.evict(c.tail)
	}
}

func (c *SimpleLRU) evict(i int) {
	e := c.entries[i]
	c.unlink(i)
	delete(c.index, e.key)
	c.used -= e.size()
	c.release(i)

	if c.onEvict != nil {
		c.onEvict([]byte(e.key), e.value)
	}
}
