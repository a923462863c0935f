package cache

import "sync"

// Locked serializes every call to a SimpleLRU through one mutex.
type Locked struct {
	mu  sync.Mutex
	lru *SimpleLRU
}

// NewLocked creates a mutex-guarded store. It panics on a non-positive capacity.
func NewLocked(capacity int, opts ...Option) *Locked {
	return &Locked{lru: NewSimpleLRU(capacity, opts...)}
}

// Put stores the pair under the lock. See SimpleLRU.Put.
func (l *Locked) Put(key, value []byte) bool {
	return l.TryPut(key, value) == nil
}

// PutIfAbsent stores the pair only if key is not present.
func (l *Locked) PutIfAbsent(key, value []byte) bool {
	return l.TryPutIfAbsent(key, value) == nil
}

// Set replaces the value of an existing key.
func (l *Locked) Set(key, value []byte) bool {
	return l.TrySet(key, value) == nil
}

// Delete removes key from the store.
func (l *Locked) Delete(key []byte) bool {
	return l.TryDelete(key) == nil
}

// Get returns a copy of the value and promotes the entry.
func (l *Locked) Get(key []byte) ([]byte, bool) {
	value, err := l.TryGet(key)
	return value, err == nil
}

// TryPut is Put reporting ErrOversizedEntry instead of false.
func (l *Locked) TryPut(key, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.TryPut(key, value)
}

// TryPutIfAbsent returns ErrKeyExists when key is already stored.
func (l *Locked) TryPutIfAbsent(key, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.TryPutIfAbsent(key, value)
}

// TrySet returns ErrKeyMissing when key is not stored.
func (l *Locked) TrySet(key, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.TrySet(key, value)
}

// TryDelete returns ErrKeyMissing when key is not stored.
func (l *Locked) TryDelete(key []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.TryDelete(key)
}

// TryGet returns ErrKeyMissing when key is not stored.
func (l *Locked) TryGet(key []byte) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.TryGet(key)
}

// Len returns the number of stored entries.
func (l *Locked) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Len()
}

// Used returns the bytes taken by stored keys and values.
func (l *Locked) Used() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Used()
}

// Capacity is fixed at construction and needs no lock.
func (l *Locked) Capacity() int {
	return l.lru.Capacity()
}

// Keys returns the keys from the most to the least recently used.
func (l *Locked) Keys() [][]byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Keys()
}

// Check verifies the store invariants under the lock.
func (l *Locked) Check() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Check()
}
