package pqueue

import (
	"github.com/gostonefire/chainmap/errs"
	"github.com/gostonefire/chainmap/internal/utils"
	"go.uber.org/zap"
)

// Offer - Inserts an element into the queue.
//   - element is the element to insert, nil is not permitted for nilable element types
//
// It returns:
//   - err is of type errs.NullArgument if element is nil, the queue is then left untouched
func (Q *PriorityQueue[E]) Offer(element E) (err error) {
	if Q.nilable && utils.IsNil(element) {
		err = errs.NewNullArgument("element can not be nil")
		return
	}

	Q.insert(-1, element)

	return
}

// Peek - Returns the least element without removing it, found is false if the queue is empty
func (Q *PriorityQueue[E]) Peek() (element E, found bool) {
	if Q.used == 0 {
		return
	}

	return Q.storage[0].elem, true
}

// Poll - Removes and returns the least element, found is false if the queue is empty
func (Q *PriorityQueue[E]) Poll() (element E, found bool) {
	if Q.used == 0 {
		return
	}

	element = Q.storage[0].elem
	Q.removeAt(0)

	return element, true
}

// Remove - Removes the first element in heap array order that equals element.
// It returns true if an element was removed.
func (Q *PriorityQueue[E]) Remove(element E) bool {
	if Q.nilable && utils.IsNil(element) {
		return false
	}

	for i, s := range Q.storage {
		if s.used && Q.equal(element, s.elem) {
			Q.removeAt(i)
			return true
		}
	}

	return false
}

// AddAll - Inserts all elements of the slice.
// If any element is nil an error of type errs.NullArgument is returned and nothing is inserted.
//
// It returns:
//   - changed is true if at least one element was inserted
//   - err is either nil or of type errs.NullArgument
func (Q *PriorityQueue[E]) AddAll(elements []E) (changed bool, err error) {
	err = Q.checkNotNil(elements)
	if err != nil {
		return
	}

	newSlot := -1
	for _, e := range elements {
		newSlot = Q.insert(newSlot, e)
	}

	changed = len(elements) > 0

	return
}

// AddQueue - Inserts all elements of another queue.
// Adding a queue to itself returns an error of type errs.IllegalArgument.
func (Q *PriorityQueue[E]) AddQueue(other *PriorityQueue[E]) (changed bool, err error) {
	if other == nil {
		err = errs.NewNullArgument("queue can not be nil")
		return
	}
	if other == Q {
		err = errs.NewIllegalArgument("a queue can not be added to itself")
		return
	}

	return Q.AddAll(other.ToSlice())
}

// checkNotNil - Returns an error of type errs.NullArgument if any of elements is nil
func (Q *PriorityQueue[E]) checkNotNil(elements []E) (err error) {
	if !Q.nilable {
		return
	}

	for i, e := range elements {
		if utils.IsNil(e) {
			err = errs.NewNullArgument("element at position %d is nil", i)
			return
		}
	}

	return
}

// insert - Places element in the first free slot after start and sifts it up.
// It returns the slot that was used, so repeated inserts can continue the search from there.
func (Q *PriorityQueue[E]) insert(start int, element E) (index int) {
	index = Q.findSlot(start)
	Q.storage[index] = slot[E]{elem: element, used: true}
	Q.used++
	Q.bubbleUp(index)

	return
}

// findSlot - Returns the first hole after start, growing the heap array if it is full.
// Holes are always leaves, and every slot before the first hole is in use, so the returned slot has a parent.
func (Q *PriorityQueue[E]) findSlot(start int) int {
	if Q.used == len(Q.storage) {
		Q.grow()
		return Q.used
	}

	s := start + 1
	for ; s < len(Q.storage); s++ {
		if !Q.storage[s].used {
			break
		}
	}

	return s
}

// removeAt - Removes the element at index by promoting the lesser child into its place, then repeating from
// that child's old slot until a slot without children is reached, which becomes a hole.
// If only the first child exists it is promoted. If both exist the second is promoted only when the first is a
// hole or compares greater, so on ties the first child wins.
// It returns false if index already is a hole.
func (Q *PriorityQueue[E]) removeAt(index int) bool {
	if !Q.storage[index].used {
		return false
	}

	n := len(Q.storage)
	for Q.storage[index].used {
		child := 2*index + 1

		// Went off the end
		if child >= n {
			Q.storage[index] = slot[E]{}
			break
		}

		// A hole promoted here ends the walk on the next round
		if child+1 < n && Q.storage[child+1].used &&
			(!Q.storage[child].used || Q.compare(Q.storage[child].elem, Q.storage[child+1].elem) > 0) {
			child++
		}

		Q.storage[index] = Q.storage[child]
		index = child
	}

	Q.used--

	return true
}

// bubbleUp - Moves the element at index up the tree until its parent is not greater
func (Q *PriorityQueue[E]) bubbleUp(index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if Q.compare(Q.storage[parent].elem, Q.storage[index].elem) <= 0 {
			break
		}

		Q.storage[parent], Q.storage[index] = Q.storage[index], Q.storage[parent]
		index = parent
	}
}

// grow - Doubles the size of the heap array
func (Q *PriorityQueue[E]) grow() {
	oldCapacity := len(Q.storage)
	newStorage := make([]slot[E], 2*oldCapacity)
	copy(newStorage, Q.storage)
	Q.storage = newStorage

	Q.logger.Debug("grew heap array",
		zap.Int("oldCapacity", oldCapacity),
		zap.Int("newCapacity", len(newStorage)))
}
