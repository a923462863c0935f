package cache

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Sharded spreads keys over independent Locked stores by key hash.
// Recency order and the byte budget apply per shard: each shard gets an
// equal slice of the total capacity, the first shards taking the remainder.
type Sharded struct {
	shards []*Locked
}

// NewSharded splits capacity bytes across the given number of shards.
func NewSharded(capacity, shards int, opts ...Option) (*Sharded, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if shards <= 0 || shards > capacity {
		return nil, ErrInvalidShardCount
	}

	s := &Sharded{shards: make([]*Locked, shards)}
	per, rest := capacity/shards, capacity%shards
	for i := range s.shards {
		size := per
		if i < rest {
			size++
		}
		s.shards[i] = NewLocked(size, opts...)
	}
	return s, nil
}

func (s *Sharded) shard(key []byte) *Locked {
	if len(s.shards) == 1 {
		return s.shards[0]
	}
	return s.shards[xxhash.Sum64(key)%uint64(len(s.shards))]
}

// Put stores the pair in the shard owning key.
func (s *Sharded) Put(key, value []byte) bool {
	return s.shard(key).Put(key, value)
}

// PutIfAbsent stores the pair only if key is not present in its shard.
func (s *Sharded) PutIfAbsent(key, value []byte) bool {
	return s.shard(key).PutIfAbsent(key, value)
}

// Set replaces the value of an existing key.
func (s *Sharded) Set(key, value []byte) bool {
	return s.shard(key).Set(key, value)
}

// Delete removes key from its shard.
func (s *Sharded) Delete(key []byte) bool {
	return s.shard(key).Delete(key)
}

// Get returns a copy of the value and promotes the entry within its shard.
func (s *Sharded) Get(key []byte) ([]byte, bool) {
	return s.shard(key).Get(key)
}

// TryPut fails with ErrOversizedEntry when the pair exceeds the capacity of its shard.
func (s *Sharded) TryPut(key, value []byte) error {
	return s.shard(key).TryPut(key, value)
}

// TryPutIfAbsent returns ErrKeyExists when key is already stored.
func (s *Sharded) TryPutIfAbsent(key, value []byte) error {
	return s.shard(key).TryPutIfAbsent(key, value)
}

// TrySet returns ErrKeyMissing when key is not stored.
func (s *Sharded) TrySet(key, value []byte) error {
	return s.shard(key).TrySet(key, value)
}

// TryDelete returns ErrKeyMissing when key is not stored.
func (s *Sharded) TryDelete(key []byte) error {
	return s.shard(key).TryDelete(key)
}

// TryGet returns ErrKeyMissing when key is not stored.
func (s *Sharded) TryGet(key []byte) ([]byte, error) {
	return s.shard(key).TryGet(key)
}

// Shards returns the number of shards.
func (s *Sharded) Shards() int {
	return len(s.shards)
}

// Len sums the shard sizes. Shards are locked one at a time, so the result
// is not a snapshot under concurrent writes.
func (s *Sharded) Len() int {
	var n int
	for _, sh := range s.shards {
		n += sh.Len()
	}
	return n
}

// Used sums the bytes taken in every shard.
func (s *Sharded) Used() int {
	var n int
	for _, sh := range s.shards {
		n += sh.Used()
	}
	return n
}

// Capacity returns the total byte budget across shards.
func (s *Sharded) Capacity() int {
	var n int
	for _, sh := range s.shards {
		n += sh.Capacity()
	}
	return n
}

// Check verifies every shard and joins their failures.
func (s *Sharded) Check() error {
	var errs []error
	for i, sh := range s.shards {
		if err := sh.Check(); err != nil {
			errs = append(errs, fmt.Errorf("shard %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
