// Package chainmap provides HashMap, a generic hash table using separate chaining.
//
// The table is an array of singly linked chains whose length is always a power of two. A key's raw hash code
// is dispersed and masked with length-1 to select its chain. New keys are prepended to the chain head. When the
// number of entries exceeds capacity*loadFactor the table doubles and every entry is relinked into the new
// layout, keeping its precomputed hash.
//
// Iterators over the KeySet, Values and EntrySet views are fail-fast: a structural modification made by any
// other means than the iterator's own Remove makes the next call to Next return errs.ConcurrentModification.
// This is best-effort bug detection only. A HashMap is not safe for concurrent use, guard it with a mutex if
// it has to be shared between goroutines.
package chainmap

import (
	"fmt"
	"github.com/gostonefire/chainmap/errs"
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/gostonefire/chainmap/internal/hash"
	"github.com/gostonefire/chainmap/internal/utils"
	"go.uber.org/zap"
	"math"
)

// DefaultInitialCapacity - The capacity used by NewDefaultHashMap
const DefaultInitialCapacity int = 16

// DefaultLoadFactor - The load factor used by NewDefaultHashMap and the bulk constructors
const DefaultLoadFactor float64 = 0.75

// MaximumCapacity - The max number of buckets, requested capacities above it are clamped
const MaximumCapacity = hash.MaximumCapacity

// Source - Anything that can hand over its key/value pairs, used by bulk construction and PutAll
type Source[K, V any] interface {
	// Size - Returns the number of pairs ForEach will produce
	Size() int
	// ForEach - Calls fn for each pair until fn returns false
	ForEach(fn func(key K, value V) bool) error
}

// Entry - A key/value pair stored in a HashMap chain.
// The key never changes for the lifetime of the entry, the value can be updated in place.
type Entry[K, V any] struct {
	key   K
	value V
	hash  uint32
	next  *Entry[K, V]
}

// Key - Returns the key of the entry
func (E *Entry[K, V]) Key() K {
	return E.key
}

// Value - Returns the current value of the entry
func (E *Entry[K, V]) Value() V {
	return E.value
}

// SetValue - Replaces the value of the entry and returns the old one.
// This is not a structural modification.
func (E *Entry[K, V]) SetValue(value V) (old V) {
	old = E.value
	E.value = value
	return
}

// String - Returns the entry as key=value
func (E *Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", E.key, E.value)
}

// HashMap - The main implementation struct
type HashMap[K, V any] struct {
	table      []*Entry[K, V]
	size       int
	threshold  int
	loadFactor float64
	// modCount - Number of structural modifications, used by iterators to fail fast
	modCount    int
	hasher      hashfunc.Hasher[K]
	valueEqual  func(a, b V) bool
	nilableKeys bool
	pointerKeys bool
	logger      *zap.Logger
}

// NewHashMap - Returns a new empty HashMap.
//   - initialCapacity is the number of buckets to start with, it is rounded up to the nearest power of two and clamped to MaximumCapacity
//   - loadFactor is the max ratio of entries per bucket before the table doubles, typically DefaultLoadFactor
//   - hasher provides hash codes and equality for keys, see the hashfunc package for built-in ones
//   - opts are optional settings such as WithLogger and WithValueEqual
//
// It returns:
//   - hashMap is a pointer to the new HashMap
//   - err is of type errs.IllegalArgument if initialCapacity is negative, loadFactor is not positive, or hasher is nil
func NewHashMap[K, V any](
	initialCapacity int,
	loadFactor float64,
	hasher hashfunc.Hasher[K],
	opts ...Option,
) (
	hashMap *HashMap[K, V],
	err error,
) {
	if initialCapacity < 0 {
		err = errs.NewIllegalArgument("illegal initial capacity: %d", initialCapacity)
		return
	}
	if loadFactor <= 0 || math.IsNaN(loadFactor) {
		err = errs.NewIllegalArgument("illegal load factor: %v", loadFactor)
		return
	}
	if hasher == nil {
		err = errs.NewIllegalArgument("hasher can not be nil")
		return
	}

	conf := newMapConfig(opts)
	valueEqual := utils.Equal[V]
	if conf.valueEqual != nil {
		eq, ok := conf.valueEqual.(func(a, b V) bool)
		if !ok {
			err = errs.NewIllegalArgument("value equality function does not match value type, got %T", conf.valueEqual)
			return
		}
		valueEqual = eq
	}

	capacity := hash.TableSizeFor(initialCapacity)

	hashMap = &HashMap[K, V]{
		table:       make([]*Entry[K, V], capacity),
		threshold:   hash.Threshold(capacity, loadFactor),
		loadFactor:  loadFactor,
		hasher:      hasher,
		valueEqual:  valueEqual,
		nilableKeys: utils.Nilable[K](),
		pointerKeys: utils.IsPointer[K](),
		logger:      conf.logger,
	}

	return
}

// NewDefaultHashMap - Returns a new empty HashMap with DefaultInitialCapacity and DefaultLoadFactor
func NewDefaultHashMap[K, V any](hasher hashfunc.Hasher[K], opts ...Option) (hashMap *HashMap[K, V], err error) {
	return NewHashMap[K, V](DefaultInitialCapacity, DefaultLoadFactor, hasher, opts...)
}

// NewHashMapFrom - Returns a new HashMap holding the same pairs as source.
// The table is sized once for source.Size() entries at DefaultLoadFactor, and pairs are added without resize
// checks. If source produces the same key twice the last value wins.
func NewHashMapFrom[K, V any](source Source[K, V], hasher hashfunc.Hasher[K], opts ...Option) (hashMap *HashMap[K, V], err error) {
	if source == nil {
		err = errs.NewNullArgument("source can not be nil")
		return
	}

	hashMap, err = NewHashMap[K, V](bulkCapacity(source.Size()), DefaultLoadFactor, hasher, opts...)
	if err != nil {
		return
	}

	err = hashMap.putAllForCreate(source)
	if err != nil {
		hashMap = nil
	}

	return
}

// NewHashMapFromMap - Returns a new HashMap holding the same pairs as the Go map m
func NewHashMapFromMap[K comparable, V any](m map[K]V, hasher hashfunc.Hasher[K], opts ...Option) (hashMap *HashMap[K, V], err error) {
	hashMap, err = NewHashMap[K, V](bulkCapacity(len(m)), DefaultLoadFactor, hasher, opts...)
	if err != nil {
		return
	}

	for k, v := range m {
		hashMap.putForCreate(k, v)
	}

	return
}

// bulkCapacity - Returns a capacity that holds n entries at DefaultLoadFactor without resizing
func bulkCapacity(n int) int {
	return max(int(float64(n)/DefaultLoadFactor)+1, DefaultInitialCapacity)
}

// hash - Returns the dispersed hash code for key, the nil key always hashes to 0
func (H *HashMap[K, V]) hash(key K) uint32 {
	if H.nilableKeys && utils.IsNil(key) {
		return 0
	}

	return hash.Spread(H.hasher.Hash(key))
}

// matches - Returns true if entry e holds key, given the dispersed hash h of key.
// Hash codes are compared first, then pointer identity, and last the hasher's equality predicate.
func (H *HashMap[K, V]) matches(e *Entry[K, V], h uint32, key K) bool {
	if e.hash != h {
		return false
	}
	if H.pointerKeys && any(e.key) == any(key) {
		return true
	}
	if H.nilableKeys {
		keyNil, entryNil := utils.IsNil(key), utils.IsNil(e.key)
		if keyNil || entryNil {
			return keyNil && entryNil
		}
	}

	return H.hasher.Equal(key, e.key)
}

// getEntry - Returns the entry holding key, or nil if there is none
func (H *HashMap[K, V]) getEntry(key K) *Entry[K, V] {
	h := H.hash(key)
	for e := H.table[hash.IndexFor(h, len(H.table))]; e != nil; e = e.next {
		if H.matches(e, h, key) {
			return e
		}
	}

	return nil
}

// addEntry - Prepends a new entry to bucket i and doubles the table if the entry count passed the threshold.
// The caller is responsible for the modCount.
func (H *HashMap[K, V]) addEntry(h uint32, key K, value V, i int) {
	H.table[i] = &Entry[K, V]{hash: h, key: key, value: value, next: H.table[i]}
	oldSize := H.size
	H.size++
	if oldSize >= H.threshold {
		H.resize(2 * len(H.table))
	}
}

// createEntry - Like addEntry but never resizes, used while constructing a map whose table is already sized
func (H *HashMap[K, V]) createEntry(h uint32, key K, value V, i int) {
	H.table[i] = &Entry[K, V]{hash: h, key: key, value: value, next: H.table[i]}
	H.size++
}

// putForCreate - Used instead of Put by bulk constructors and Clone.
// It does neither resize nor touch modCount, no iterator can exist yet.
func (H *HashMap[K, V]) putForCreate(key K, value V) {
	h := H.hash(key)
	i := hash.IndexFor(h, len(H.table))

	// Only happens if the source hands over keys that are equal by the hasher but were distinct in the source
	for e := H.table[i]; e != nil; e = e.next {
		if H.matches(e, h, key) {
			e.value = value
			return
		}
	}

	H.createEntry(h, key, value, i)
}

// putAllForCreate - Adds every pair from source using putForCreate
func (H *HashMap[K, V]) putAllForCreate(source Source[K, V]) error {
	return source.ForEach(func(key K, value V) bool {
		H.putForCreate(key, value)
		return true
	})
}

// resize - Rehashes the contents into a new table of newCapacity buckets.
// If the current capacity is already MaximumCapacity the table is kept and the threshold is set to math.MaxInt,
// which prevents any further resize attempts.
//   - newCapacity must be a power of two bigger than the current capacity unless that is MaximumCapacity
func (H *HashMap[K, V]) resize(newCapacity int) {
	oldCapacity := len(H.table)
	if oldCapacity == MaximumCapacity {
		H.threshold = math.MaxInt
		H.logger.Warn("table at maximum capacity, threshold pinned",
			zap.Int("capacity", oldCapacity),
			zap.Int("size", H.size))
		return
	}

	newTable := make([]*Entry[K, V], newCapacity)
	H.transfer(newTable)
	H.table = newTable
	H.threshold = hash.Threshold(newCapacity, H.loadFactor)

	H.logger.Debug("resized table",
		zap.Int("oldCapacity", oldCapacity),
		zap.Int("newCapacity", newCapacity),
		zap.Int("threshold", H.threshold),
		zap.Int("size", H.size))
}

// transfer - Relinks all entries from the current table into newTable, reusing their stored hash codes
func (H *HashMap[K, V]) transfer(newTable []*Entry[K, V]) {
	src := H.table
	newCapacity := len(newTable)
	for j, e := range src {
		if e == nil {
			continue
		}
		src[j] = nil
		for e != nil {
			next := e.next
			i := hash.IndexFor(e.hash, newCapacity)
			e.next = newTable[i]
			newTable[i] = e
			e = next
		}
	}
}

// removeEntryForKey - Unlinks and returns the entry holding key, or nil if there is none
func (H *HashMap[K, V]) removeEntryForKey(key K) *Entry[K, V] {
	h := H.hash(key)
	i := hash.IndexFor(h, len(H.table))

	var prev *Entry[K, V]
	for e := H.table[i]; e != nil; prev, e = e, e.next {
		if H.matches(e, h, key) {
			H.unlink(i, prev, e)
			return e
		}
	}

	return nil
}

// removeMapping - Unlinks and returns the entry holding key if its value also equals value, or nil
func (H *HashMap[K, V]) removeMapping(key K, value V) *Entry[K, V] {
	h := H.hash(key)
	i := hash.IndexFor(h, len(H.table))

	var prev *Entry[K, V]
	for e := H.table[i]; e != nil; prev, e = e, e.next {
		if H.matches(e, h, key) {
			if !H.valueEqual(value, e.value) {
				return nil
			}
			H.unlink(i, prev, e)
			return e
		}
	}

	return nil
}

// unlink - Removes e from chain i given its predecessor prev (nil if e is the chain head)
func (H *HashMap[K, V]) unlink(i int, prev, e *Entry[K, V]) {
	H.modCount++
	H.size--
	if prev == nil {
		H.table[i] = e.next
	} else {
		prev.next = e.next
	}
	e.next = nil
}
