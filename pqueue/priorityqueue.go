// Package pqueue provides PriorityQueue, an unbounded min-heap kept in a flat array.
//
// The element at index i has its children at 2i+1 and 2i+2. Removal does not swap the last element into the
// vacated slot. Instead the lesser child is promoted into the slot, then that child's lesser child into its old
// slot, and so on down to a leaf which is left empty. Empty slots (holes) are therefore always leaves and are
// filled again by later insertions.
//
// A PriorityQueue is not safe for concurrent use.
package pqueue

import (
	"cmp"
	"github.com/gostonefire/chainmap/errs"
	"github.com/gostonefire/chainmap/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Comparator - Returns a negative number, zero or a positive number as a is less than, equal to or greater than b.
// It must be a strict weak ordering and must not change during the lifetime of a queue.
type Comparator[E any] func(a, b E) int

// Ordered - Natural ordering of elements, used when a queue is created without a Comparator
type Ordered[E any] interface {
	Compare(other E) int
}

// slot - One position in the heap array, used is false for a hole
type slot[E any] struct {
	elem E
	used bool
}

// PriorityQueue - The main implementation struct
type PriorityQueue[E any] struct {
	storage    []slot[E]
	used       int
	comparator Comparator[E]
	compare    func(a, b E) int
	equal      func(a, b E) bool
	nilable    bool
	logger     *zap.Logger
}

// New - Returns a new empty PriorityQueue.
//   - capacity is the initial size of the heap array, it must be at least 1
//   - comparator orders the elements, if nil the elements must implement Ordered
//   - opts are optional settings such as WithLogger and WithElementEqual
//
// It returns:
//   - queue is a pointer to the new PriorityQueue
//   - err is of type errs.IllegalArgument if capacity is below 1 or if no ordering is available
func New[E any](capacity int, comparator Comparator[E], opts ...Option) (queue *PriorityQueue[E], err error) {
	if capacity < 1 {
		err = errs.NewIllegalArgument("illegal capacity: %d", capacity)
		return
	}

	compare := comparator
	if compare == nil {
		var zero E
		if _, ok := any(zero).(Ordered[E]); !ok {
			err = errs.NewIllegalArgument("no comparator given and %T does not implement Ordered", zero)
			return
		}
		compare = func(a, b E) int { return any(a).(Ordered[E]).Compare(b) }
	}

	conf := newQueueConfig(opts)
	equal := utils.Equal[E]
	if conf.elementEqual != nil {
		eq, ok := conf.elementEqual.(func(a, b E) bool)
		if !ok {
			err = errs.NewIllegalArgument("element equality function does not match element type, got %T", conf.elementEqual)
			return
		}
		equal = eq
	}

	queue = &PriorityQueue[E]{
		storage:    make([]slot[E], capacity),
		comparator: comparator,
		compare:    compare,
		equal:      equal,
		nilable:    utils.Nilable[E](),
		logger:     conf.logger,
	}

	return
}

// NewOrdered - Returns a new empty PriorityQueue ordered by the natural < ordering of E
func NewOrdered[E constraints.Ordered](capacity int, opts ...Option) (queue *PriorityQueue[E], err error) {
	return New[E](capacity, cmp.Compare[E], opts...)
}

// NewFromSlice - Returns a new PriorityQueue holding all elements, in any order, of the given slice
func NewFromSlice[E any](elements []E, comparator Comparator[E], opts ...Option) (queue *PriorityQueue[E], err error) {
	queue, err = New[E](initialCapacity(len(elements)), comparator, opts...)
	if err != nil {
		return
	}

	_, err = queue.AddAll(elements)
	if err != nil {
		queue = nil
	}

	return
}

// NewFromSorted - Returns a new PriorityQueue holding the elements of a slice sorted in ascending order.
// A sorted array already satisfies the heap order, so it is copied directly, but only after verifying that it
// really is sorted according to comparator. Otherwise the elements are inserted one by one.
func NewFromSorted[E any](sorted []E, comparator Comparator[E], opts ...Option) (queue *PriorityQueue[E], err error) {
	queue, err = New[E](initialCapacity(len(sorted)), comparator, opts...)
	if err != nil {
		return
	}

	err = queue.checkNotNil(sorted)
	if err != nil {
		queue = nil
		return
	}

	for i := 1; i < len(sorted); i++ {
		if queue.compare(sorted[i-1], sorted[i]) > 0 {
			queue.logger.Debug("source is not sorted by the queue ordering, building heap by insertion",
				zap.Int("position", i),
				zap.Int("elements", len(sorted)))
			_, err = queue.AddAll(sorted)
			return
		}
	}

	for i, e := range sorted {
		queue.storage[i] = slot[E]{elem: e, used: true}
	}
	queue.used = len(sorted)

	return
}

// NewFromQueue - Returns a new PriorityQueue with the same ordering and elements as other.
// The heap array is copied as is, since it is already in heap order for that same ordering.
func NewFromQueue[E any](other *PriorityQueue[E], opts ...Option) (queue *PriorityQueue[E], err error) {
	if other == nil {
		err = errs.NewNullArgument("queue can not be nil")
		return
	}

	queue, err = New[E](max(initialCapacity(other.used), len(other.storage)), other.comparator, opts...)
	if err != nil {
		return
	}

	copy(queue.storage, other.storage)
	queue.used = other.used

	return
}

// initialCapacity - Returns a capacity with some headroom over n
func initialCapacity(n int) int {
	return max(1, int(1.1*float64(n)))
}

// Comparator - Returns the comparator given at construction, nil if the queue uses natural ordering
func (Q *PriorityQueue[E]) Comparator() Comparator[E] {
	return Q.comparator
}

// Size - Returns the number of elements
func (Q *PriorityQueue[E]) Size() int {
	return Q.used
}

// IsEmpty - Returns true if the queue holds no elements
func (Q *PriorityQueue[E]) IsEmpty() bool {
	return Q.used == 0
}

// Clear - Removes all elements, the heap array keeps its size
func (Q *PriorityQueue[E]) Clear() {
	clear(Q.storage)
	Q.used = 0
}

// ToSlice - Returns the elements in heap array order, which is not sorted order
func (Q *PriorityQueue[E]) ToSlice() []E {
	elements := make([]E, 0, Q.used)
	for _, s := range Q.storage {
		if s.used {
			elements = append(elements, s.elem)
		}
	}

	return elements
}
