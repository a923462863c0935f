package cache

// none marks the absence of a neighbour, head or tail.
const none = -1

// entry is a slot in the store arena. Links are arena indices:
// prev points toward head (more recent), next toward tail.
type entry struct {
	key   string
	value []byte
	prev  int
	next  int
}

func (e *entry) size() int {
	return len(e.key) + len(e.value)
}

// alloc places the pair into a free slot, growing the arena when none is left.
func (c *SimpleLRU) alloc(key string, value []byte) int {
	e := entry{key: key, value: value, prev: none, next: none}
	if n := len(c.free); n > 0 {
		i := c.free[n-1]
		c.free = c.free[:n-1]
		c.entries[i] = e
		return i
	}
	c.entries = append(c.entries, e)
	return len(c.entries) - 1
}

// release drops the slot's data so the bytes can be collected and recycles the slot.
func (c *SimpleLRU) release(i int) {
	c.entries[i] = entry{prev: none, next: none}
	c.free = append(c.free, i)
}

func (c *SimpleLRU) pushFront(i int) {
	e := &c.entries[i]
	e.prev = none
	e.next = c.head
	if c.head != none {
		c.entries[c.head].prev = i
	} else {
		c.tail = i
	}
	c.head = i
}

func (c *SimpleLRU) unlink(i int) {
	e := &c.entries[i]
	if e.prev != none {
		c.entries[e.prev].next = e.next
	} else {
		c.head = e.next
	}
	if e.next != none {
		c.entries[e.next].prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev, e.next = none, none
}

func (c *SimpleLRU) moveToFront(i int) {
	if i == c.head {
		return
	}
	c.unlink(i)
	c.pushFront(i)
}
