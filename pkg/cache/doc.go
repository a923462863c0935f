// Package cache provides a byte-bounded key-value store with least recently
// used (LRU) eviction, meant to back a key-value service.
//
// The store limits the total number of bytes held by keys and values rather
// than the number of entries. When a write needs more room than is free, the
// least recently used entries are evicted, oldest first, until the write fits.
//
// # Key Features
//
//   - Byte capacity: the sum of len(key)+len(value) over all entries never exceeds it
//   - Strict LRU eviction that stops as soon as enough space is free
//   - Reads refresh recency: Get writes the value back through the Put path
//   - Arena-backed recency list addressed by slot indices, no per-entry pointers
//   - Invariant self-check for tests and tooling
//   - Mutex and sharded wrappers for concurrent use
//
// # Usage
//
// Create a store with a capacity in bytes:
//
//	store := cache.NewSimpleLRU(64 << 20)
//
// Basic operations:
//
//	store.Put([]byte("user:1"), payload)           // insert or overwrite
//	store.PutIfAbsent([]byte("user:2"), payload)   // false if present
//	store.Set([]byte("user:1"), newPayload)        // false if absent
//	value, ok := store.Get([]byte("user:1"))       // promotes the entry
//	store.Delete([]byte("user:2"))                 // false if absent
//
// Every operation has a Try variant returning the reason for a negative result:
//
//	switch err := store.TryPutIfAbsent(key, value); {
//	case errors.Is(err, cache.ErrKeyExists):
//		// already stored, nothing changed
//	case errors.Is(err, cache.ErrOversizedEntry):
//		// can never fit, not retryable with the same arguments
//	}
//
// A rejected call never changes the store.
//
// # Capacity Management
//
// A pair whose key and value together exceed the capacity is rejected with
// ErrOversizedEntry before anything is touched. Otherwise:
//
//  1. A new key needs len(key)+len(value) free bytes
//  2. An existing key needs only the growth of its value; shrinking needs nothing
//  3. Entries are evicted from the tail until the needed bytes fit
//  4. The written entry becomes the most recently used
//
// An updated entry is moved to the head before eviction starts, so its own
// update never evicts it.
//
// # Thread Safety
//
// SimpleLRU is not safe for concurrent use. Serialize access with one of the wrappers:
//
//	store := cache.NewLocked(64 << 20)          // one mutex
//	store, err := cache.NewSharded(64<<20, 16)  // xxhash-selected shards
//
// Sharded divides the capacity evenly, so LRU order and the byte limit hold
// per shard rather than globally.
//
// # Performance Characteristics
//
//   - Put, PutIfAbsent, Set, Delete, Get: O(1) average plus O(k) for k evictions
//   - Keys and Check: O(n)
package cache
