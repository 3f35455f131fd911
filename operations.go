package chainmap

import (
	"github.com/gostonefire/chainmap/errs"
	"github.com/gostonefire/chainmap/internal/hash"
)

// Get - Gets the value that corresponds to the given key.
//   - key is the key to look up, for nilable key types nil is a valid key
//
// It returns:
//   - value is the value of the matching entry, or the zero value if not found
//   - found is true if the key exists in the map, which tells a stored zero value apart from a missing key
func (H *HashMap[K, V]) Get(key K) (value V, found bool) {
	e := H.getEntry(key)
	if e == nil {
		return
	}

	return e.value, true
}

// ContainsKey - Returns true if the map holds an entry for key
func (H *HashMap[K, V]) ContainsKey(key K) bool {
	return H.getEntry(key) != nil
}

// ContainsValue - Returns true if at least one key maps to value.
// This walks the whole table.
func (H *HashMap[K, V]) ContainsValue(value V) bool {
	for _, e := range H.table {
		for ; e != nil; e = e.next {
			if H.valueEqual(value, e.value) {
				return true
			}
		}
	}

	return false
}

// Put - Associates value with key. An existing value is replaced in place, which is not a structural
// modification. A new key is prepended to its chain, and if the map then holds more entries than its
// threshold the table doubles.
//
// It returns:
//   - previous is the value that was replaced, or the zero value if the key was new
//   - replaced is true if the key already existed
func (H *HashMap[K, V]) Put(key K, value V) (previous V, replaced bool) {
	h := H.hash(key)
	i := hash.IndexFor(h, len(H.table))
	for e := H.table[i]; e != nil; e = e.next {
		if H.matches(e, h, key) {
			previous = e.value
			e.value = value
			replaced = true
			return
		}
	}

	H.modCount++
	H.addEntry(h, key, value, i)

	return
}

// PutAll - Copies all pairs from source into the map, replacing values of keys that already exist.
// If source holds more pairs than the current threshold the table is grown once up front. Growing is
// based on the source size alone, since source keys may already be present.
func (H *HashMap[K, V]) PutAll(source Source[K, V]) (err error) {
	if source == nil {
		err = errs.NewNullArgument("source can not be nil")
		return
	}

	n := source.Size()
	if n == 0 {
		return
	}

	if n > H.threshold {
		targetCapacity := int(float64(n)/H.loadFactor + 1)
		if targetCapacity > MaximumCapacity {
			targetCapacity = MaximumCapacity
		}
		newCapacity := len(H.table)
		for newCapacity < targetCapacity {
			newCapacity <<= 1
		}
		if newCapacity > len(H.table) {
			H.resize(newCapacity)
		}
	}

	err = source.ForEach(func(key K, value V) bool {
		H.Put(key, value)
		return true
	})

	return
}

// Remove - Removes the entry for key if present.
//
// It returns:
//   - previous is the removed value, or the zero value if the key was not found
//   - removed is true if an entry was removed
func (H *HashMap[K, V]) Remove(key K) (previous V, removed bool) {
	e := H.removeEntryForKey(key)
	if e == nil {
		return
	}

	return e.value, true
}

// Clear - Removes all entries, the capacity is kept
func (H *HashMap[K, V]) Clear() {
	H.modCount++
	clear(H.table)
	H.size = 0
}

// Size - Returns the number of entries
func (H *HashMap[K, V]) Size() int {
	return H.size
}

// IsEmpty - Returns true if the map holds no entries
func (H *HashMap[K, V]) IsEmpty() bool {
	return H.size == 0
}

// Capacity - Returns the current number of buckets
func (H *HashMap[K, V]) Capacity() int {
	return len(H.table)
}

// LoadFactor - Returns the load factor given at construction
func (H *HashMap[K, V]) LoadFactor() float64 {
	return H.loadFactor
}

// ForEach - Calls fn for every entry until fn returns false. The order is unspecified.
// If fn structurally modifies the map the walk stops and an error of type errs.ConcurrentModification is returned.
func (H *HashMap[K, V]) ForEach(fn func(key K, value V) bool) (err error) {
	it := newHashIterator(H)
	var e *Entry[K, V]
	for it.hasNext() {
		e, err = it.nextEntry()
		if err != nil {
			return
		}
		if !fn(e.key, e.value) {
			return
		}
	}

	// Catch a modification made by the last call to fn
	if H.modCount != it.expectedModCount {
		err = errs.ConcurrentModification{}
	}

	return
}

// Clone - Returns a shallow copy of the map: a new table of the same capacity and load factor holding the same
// keys and values. The copy has its own structural version and is independent of the original.
func (H *HashMap[K, V]) Clone() *HashMap[K, V] {
	c := &HashMap[K, V]{
		table:       make([]*Entry[K, V], len(H.table)),
		threshold:   H.threshold,
		loadFactor:  H.loadFactor,
		hasher:      H.hasher,
		valueEqual:  H.valueEqual,
		nilableKeys: H.nilableKeys,
		pointerKeys: H.pointerKeys,
		logger:      H.logger,
	}

	for _, e := range H.table {
		for ; e != nil; e = e.next {
			c.createEntry(e.hash, e.key, e.value, hash.IndexFor(e.hash, len(c.table)))
		}
	}

	return c
}
