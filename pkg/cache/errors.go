package cache

import "errors"

var (
	// ErrOversizedEntry is returned when key and value together can never fit into the store.
	ErrOversizedEntry = errors.New("cache: entry exceeds store capacity")

	// ErrKeyExists is returned by PutIfAbsent when the key is already stored.
	ErrKeyExists = errors.New("cache: key already exists")

	// ErrKeyMissing is returned by Set, Delete and Get when the key is not stored.
	ErrKeyMissing = errors.New("cache: key not found")

	// ErrCorrupted is returned by Check when the recency list and the index disagree.
	ErrCorrupted = errors.New("cache: store invariants violated")

	ErrInvalidCapacity   = errors.New("cache: capacity must be positive")
	ErrInvalidShardCount = errors.New("cache: shard count must be positive and not exceed capacity")
)
