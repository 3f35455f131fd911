package pqueue

import (
	"github.com/gostonefire/chainmap/errs"
)

// Iterator - Walks the elements of a PriorityQueue in heap array order, skipping holes.
// The order is not the priority order. It is not fail-fast: inserting into the queue during a walk may
// place elements in slots that were already passed.
type Iterator[E any] struct {
	queue     *PriorityQueue[E]
	index     int
	count     int
	canRemove bool
}

// Iterator - Returns a new Iterator positioned before the first element
func (Q *PriorityQueue[E]) Iterator() *Iterator[E] {
	return &Iterator[E]{queue: Q, index: -1}
}

// HasNext - Returns true if there are more elements to be fetched from a call to Next
func (I *Iterator[E]) HasNext() bool {
	return I.count < I.queue.used
}

// Next - Returns the next element, or an error of type errs.NoSuchElement if there are no more
func (I *Iterator[E]) Next() (element E, err error) {
	if I.count >= I.queue.used {
		err = errs.NoSuchElement{}
		return
	}

	I.index++
	for !I.queue.storage[I.index].used {
		I.index++
	}
	I.count++
	I.canRemove = true

	return I.queue.storage[I.index].elem, nil
}

// Remove - Removes the element most recently returned by Next, the same way Poll removes the root.
// The slot is visited again since removal promotes a not yet visited descendant into it.
// It returns an error of type errs.IllegalState if Next has not been called since the last Remove, or if the
// slot was emptied by other means, such as a Poll, after Next returned it.
func (I *Iterator[E]) Remove() (err error) {
	if !I.canRemove {
		err = errs.NewIllegalState("remove without a preceding next, or called twice")
		return
	}

	I.canRemove = false
	if !I.queue.removeAt(I.index) {
		err = errs.NewIllegalState("element at iterator position is already gone")
		return
	}
	I.index--
	I.count--

	return
}
