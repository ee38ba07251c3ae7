package scheduler

import (
	"fmt"
)

// assignment is one step in progress on a worker.
// Remaining is relative to the last retirement event, not to run start.
type assignment struct {
	Step      StepID
	Remaining int
	TimeStart int
}

func (a *assignment) isBefore(other *assignment) bool {
	if a.Remaining != other.Remaining {
		return a.Remaining < other.Remaining
	}

	return a.Step < other.Step
}

// workerPool is a bounded minimum queue keyed by (Remaining, Step).
// Occupied slots are kept sorted and empty (nil) slots trail them.
type workerPool struct {
	slots []*assignment
}

func newWorkerPool(capacity int) *workerPool {
	if capacity < 1 {
		panic(
			fmt.Sprintf("worker pool capacity %d, need at least 1", capacity),
		)
	}

	return &workerPool{
		slots: make([]*assignment, capacity),
	}
}

func (pool *workerPool) isEmpty() bool {
	return pool.slots[0] == nil
}

func (pool *workerPool) isFull() bool {
	return pool.slots[len(pool.slots)-1] != nil
}

func (pool *workerPool) occupied() int {
	for ix, slot := range pool.slots {
		if slot == nil {
			return ix
		}
	}

	return len(pool.slots)
}

// insert places the assignment keeping the slots sorted.
// Panics when no worker is free.
func (pool *workerPool) insert(item *assignment) {
	if pool.isFull() {
		panic(
			fmt.Sprintf("worker pool full (%d workers), cannot take step %s", len(pool.slots), item.Step),
		)
	}

	if pool.isEmpty() {
		pool.slots[0] = item

		return
	}

	position := len(pool.slots) - 1

	for ix, slot := range pool.slots {
		if slot == nil || item.isBefore(slot) {
			position = ix

			break
		}
	}

	copy(pool.slots[position+1:], pool.slots[position:len(pool.slots)-1])
	pool.slots[position] = item
}

// pop retires the soonest finishing assignment and moves the clock of
// the remaining ones forward by its remaining time.
// Panics when the pool is empty.
func (pool *workerPool) pop() *assignment {
	if pool.isEmpty() {
		panic("worker pool empty, nothing to retire")
	}

	result := pool.slots[0]

	copy(pool.slots, pool.slots[1:])
	pool.slots[len(pool.slots)-1] = nil

	for _, slot := range pool.slots {
		if slot == nil {
			break
		}

		slot.Remaining = slot.Remaining - result.Remaining
	}

	return result
}
