package cache

import (
	"errors"
	"fmt"
)

// Check walks the recency list and verifies it against the index and the
// byte accounting. It returns an error wrapping ErrCorrupted on the first
// inconsistency found, or nil for a healthy store.
func (c *SimpleLRU) Check() error {
	if (c.head == none) != (c.tail == none) {
		return corrupted("head is %d but tail is %d", c.head, c.tail)
	}
	if c.head == none && len(c.index) != 0 {
		return corrupted("list is empty but index holds %d keys", len(c.index))
	}
	if c.head != none && c.entries[c.head].prev != none {
		return corrupted("head %d has a previous entry", c.head)
	}

	var (
		count int
		used  int
		last  = none
	)
	for i := c.head; i != none; i = c.entries[i].next {
		if count == len(c.index) {
			return corrupted("list is longer than the index (%d keys) or has a cycle", len(c.index))
		}
		e := &c.entries[i]
		if e.prev != last {
			return corrupted("entry %q links back to %d, expected %d", e.key, e.prev, last)
		}
		if idx, ok := c.index[e.key]; !ok || idx != i {
			return corrupted("entry %q at slot %d is not indexed there", e.key, i)
		}
		if e.size() > c.capacity {
			return corrupted("entry %q takes %d bytes, capacity is %d", e.key, e.size(), c.capacity)
		}
		used += e.size()
		last = i
		count++
	}

	if last != c.tail {
		return corrupted("list ends at %d but tail is %d", last, c.tail)
	}
	if count != len(c.index) {
		return corrupted("list holds %d entries, index holds %d", count, len(c.index))
	}
	if used != c.used {
		return corrupted("entries take %d bytes, accounted %d", used, c.used)
	}
	if c.used > c.capacity {
		return corrupted("used %d bytes exceeds capacity %d", c.used, c.capacity)
	}
	return nil
}

func corrupted(format string, args ...any) error {
	return errors.Join(ErrCorrupted, fmt.Errorf(format, args...))
}
