package chainmap

import (
	"github.com/gostonefire/chainmap/errs"
)

// hashIterator - Walks the entries of a HashMap bucket by bucket, following each chain.
// It remembers the structural version of the map at creation and refuses to continue if it changes.
type hashIterator[K, V any] struct {
	hashMap *HashMap[K, V]
	// next - Entry to return from the next call to nextEntry
	next             *Entry[K, V]
	expectedModCount int
	// index - Next bucket to scan
	index int
	// current - Entry most recently returned, nil if none or if it was removed
	current *Entry[K, V]
}

// newHashIterator - Returns a pointer to a new hashIterator positioned before the first entry
func newHashIterator[K, V any](hashMap *HashMap[K, V]) *hashIterator[K, V] {
	it := &hashIterator[K, V]{
		hashMap:          hashMap,
		expectedModCount: hashMap.modCount,
	}
	if hashMap.size > 0 {
		it.scan()
	}

	return it
}

// scan - Advances index to the next occupied bucket and caches its head as next
func (I *hashIterator[K, V]) scan() {
	t := I.hashMap.table
	for I.next == nil && I.index < len(t) {
		I.next = t[I.index]
		I.index++
	}
}

// hasNext - Returns true if there are more entries to be fetched from a call to nextEntry
func (I *hashIterator[K, V]) hasNext() bool {
	return I.next != nil
}

// nextEntry - Returns the next entry.
// It returns:
//   - entry is the next entry
//   - err is of type errs.ConcurrentModification if the map was structurally modified since the iterator was created
//     (or since its last Remove), or of type errs.NoSuchElement if there are no more entries
func (I *hashIterator[K, V]) nextEntry() (entry *Entry[K, V], err error) {
	if I.hashMap.modCount != I.expectedModCount {
		err = errs.ConcurrentModification{}
		return
	}

	entry = I.next
	if entry == nil {
		err = errs.NoSuchElement{}
		return
	}

	I.next = entry.next
	if I.next == nil {
		I.scan()
	}
	I.current = entry

	return
}

// remove - Removes the entry most recently returned by nextEntry through the map's own removal routine,
// then adopts the new structural version so iteration can continue.
func (I *hashIterator[K, V]) remove() (err error) {
	if I.current == nil {
		err = errs.NewIllegalState("remove without a preceding next, or called twice")
		return
	}
	if I.hashMap.modCount != I.expectedModCount {
		err = errs.ConcurrentModification{}
		return
	}

	key := I.current.key
	I.current = nil
	I.hashMap.removeEntryForKey(key)
	I.expectedModCount = I.hashMap.modCount

	return
}

// KeyIterator - Iterates over the keys of a HashMap
type KeyIterator[K, V any] struct {
	it *hashIterator[K, V]
}

// HasNext - Returns true if there are more keys to be fetched from a call to Next
func (I *KeyIterator[K, V]) HasNext() bool {
	return I.it.hasNext()
}

// Next - Returns the next key.
// The error is of type errs.ConcurrentModification or errs.NoSuchElement, see EntryIterator.Next.
func (I *KeyIterator[K, V]) Next() (key K, err error) {
	e, err := I.it.nextEntry()
	if err != nil {
		return
	}

	return e.key, nil
}

// Remove - Removes the entry of the key most recently returned by Next
func (I *KeyIterator[K, V]) Remove() error {
	return I.it.remove()
}

// ValueIterator - Iterates over the values of a HashMap
type ValueIterator[K, V any] struct {
	it *hashIterator[K, V]
}

// HasNext - Returns true if there are more values to be fetched from a call to Next
func (I *ValueIterator[K, V]) HasNext() bool {
	return I.it.hasNext()
}

// Next - Returns the next value.
// The error is of type errs.ConcurrentModification or errs.NoSuchElement, see EntryIterator.Next.
func (I *ValueIterator[K, V]) Next() (value V, err error) {
	e, err := I.it.nextEntry()
	if err != nil {
		return
	}

	return e.value, nil
}

// Remove - Removes the entry of the value most recently returned by Next
func (I *ValueIterator[K, V]) Remove() error {
	return I.it.remove()
}

// EntryIterator - Iterates over the entries of a HashMap
type EntryIterator[K, V any] struct {
	it *hashIterator[K, V]
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next
func (I *EntryIterator[K, V]) HasNext() bool {
	return I.it.hasNext()
}

// Next - Returns the next entry. Setting its value through Entry.SetValue writes through to the map.
// It returns:
//   - entry is the next entry
//   - err is of type errs.ConcurrentModification if the map was structurally modified by other means than this
//     iterator's Remove, or of type errs.NoSuchElement if the iterator is exhausted.
//     Detection of modifications is best-effort and must only be used to find bugs.
func (I *EntryIterator[K, V]) Next() (entry *Entry[K, V], err error) {
	return I.it.nextEntry()
}

// Remove - Removes the entry most recently returned by Next.
// It returns an error of type errs.IllegalState if Next has not been called since the last Remove,
// or errs.ConcurrentModification if the map was modified behind the iterator's back.
func (I *EntryIterator[K, V]) Remove() error {
	return I.it.remove()
}
