package scheduling

import "clinic-dispatch/internal/domain/entity"

// HeapEntry wraps a ticket together with the priority key it was enqueued
// under. The key is captured at insert time so later mutation of the ticket
// cannot corrupt the heap.
type HeapEntry struct {
	Ticket   entity.Ticket
	Priority float64
}

// PriorityQueue is a binary max-heap of tickets: higher priority is served
// first. The heap owns its backing array exclusively; Snapshot returns
// copies, never internal references. Equal-priority entries have no
// guaranteed relative order; callers needing FIFO ties must fold a
// monotonic sequence number into the priority key.
//
// PriorityQueue is not safe for concurrent use; the owning service
// serializes access.
type PriorityQueue struct {
	entries []HeapEntry
}

// NewPriorityQueue creates an empty queue.
func NewPriorityQueue() *PriorityQueue {
	return &PriorityQueue{}
}

// Insert adds a ticket under the given priority key. O(log n).
func (pq *PriorityQueue) Insert(ticket entity.Ticket, priority float64) {
	pq.entries = append(pq.entries, HeapEntry{Ticket: ticket, Priority: priority})
	pq.siftUp(len(pq.entries) - 1)
}

// ExtractMax removes and returns the highest-priority entry. O(log n).
// Returns the entry and true, or a zero entry and false when empty.
func (pq *PriorityQueue) ExtractMax() (HeapEntry, bool) {
	if len(pq.entries) == 0 {
		return HeapEntry{}, false
	}

	top := pq.entries[0]
	last := len(pq.entries) - 1
	pq.entries[0] = pq.entries[last]
	pq.entries = pq.entries[:last]
	if len(pq.entries) > 0 {
		pq.siftDown(0)
	}
	return top, true
}

// Snapshot returns an independent copy of all entries in heap (not sorted)
// order, for inspection and debugging. Mutating the result does not affect
// the queue.
func (pq *PriorityQueue) Snapshot() []HeapEntry {
	out := make([]HeapEntry, len(pq.entries))
	copy(out, pq.entries)
	return out
}

// IsEmpty reports whether the queue holds no entries. O(1).
func (pq *PriorityQueue) IsEmpty() bool {
	return len(pq.entries) == 0
}

// Len returns the number of queued entries. O(1).
func (pq *PriorityQueue) Len() int {
	return len(pq.entries)
}

// siftUp restores the heap property after insertion: swap upward while the
// parent's priority is below the child's.
func (pq *PriorityQueue) siftUp(idx int) {
	for idx > 0 {
		parent := (idx - 1) / 2
		if pq.entries[parent].Priority >= pq.entries[idx].Priority {
			break
		}
		pq.entries[idx], pq.entries[parent] = pq.entries[parent], pq.entries[idx]
		idx = parent
	}
}

// siftDown restores the heap property after extraction by swapping with the
// larger child at each step.
func (pq *PriorityQueue) siftDown(idx int) {
	n := len(pq.entries)
	for {
		largest := idx
		left := 2*idx + 1
		right := 2*idx + 2

		if left < n && pq.entries[left].Priority > pq.entries[largest].Priority {
			largest = left
		}
		if right < n && pq.entries[right].Priority > pq.entries[largest].Priority {
			largest = right
		}
		if largest == idx {
			break
		}
		pq.entries[idx], pq.entries[largest] = pq.entries[largest], pq.entries[idx]
		idx = largest
	}
}
