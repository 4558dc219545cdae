// Package symtab implements the calculator's variable bindings: a
// separate-chaining hash table mapping variable name to bignum value.
package symtab

import "github.com/skx/sapcalc/bignum"

// DefaultCapacity is the bucket count used when New is called without
// an explicit capacity.
const DefaultCapacity = 1000

type node struct {
	key  string
	val  *bignum.Num
	next *node
}

// Table is a fixed-capacity hash table from variable name to bignum
// value. It is not safe for concurrent use, matching the
// calculator's single-threaded contract.
type Table struct {
	buckets  []*node
	capacity int
}

// New returns an empty table with the default bucket count.
func New() *Table {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity returns an empty table with the given bucket count.
// Capacity is fixed for the table's lifetime; there is no rehashing.
func NewWithCapacity(capacity int) *Table {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Table{buckets: make([]*node, capacity), capacity: capacity}
}

// hash implements djb2: h = 5381; for each byte c: h = h*33 + c.
func hash(s string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return h
}

func (t *Table) bucketIndex(key string) int {
	return int(hash(key) % uint32(t.capacity))
}

// Find returns the value bound to key and true, or (nil, false) if
// key has no binding.
func (t *Table) Find(key string) (*bignum.Num, bool) {
	for n := t.buckets[t.bucketIndex(key)]; n != nil; n = n.next {
		if n.key == key {
			return n.val, true
		}
	}
	return nil, false
}

// Insert binds key to val, overwriting any existing binding.
func (t *Table) Insert(key string, val *bignum.Num) {
	idx := t.bucketIndex(key)
	for n := t.buckets[idx]; n != nil; n = n.next {
		if n.key == key {
			n.val = val
			return
		}
	}
	t.buckets[idx] = &node{key: key, val: val, next: t.buckets[idx]}
}

// Delete removes key's binding, if any.
func (t *Table) Delete(key string) {
	idx := t.bucketIndex(key)
	var prev *node
	for n := t.buckets[idx]; n != nil; n = n.next {
		if n.key == key {
			if prev == nil {
				t.buckets[idx] = n.next
			} else {
				prev.next = n.next
			}
			return
		}
		prev = n
	}
}

// Reset empties every bucket without releasing the backing array.
func (t *Table) Reset() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
}
