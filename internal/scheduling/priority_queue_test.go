package scheduling

import (
	"testing"

	"clinic-dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

func newTicket(priority float64) entity.Ticket {
	return entity.Ticket{ID: uuid.New(), Priority: priority}
}

// verifyHeapProperty checks that every parent's priority is >= both children.
func verifyHeapProperty(t *testing.T, pq *PriorityQueue) {
	t.Helper()
	entries := pq.Snapshot()
	for i := range entries {
		left, right := 2*i+1, 2*i+2
		if left < len(entries) && entries[i].Priority < entries[left].Priority {
			t.Errorf("heap property violated: parent[%d]=%.1f < left[%d]=%.1f", i, entries[i].Priority, left, entries[left].Priority)
		}
		if right < len(entries) && entries[i].Priority < entries[right].Priority {
			t.Errorf("heap property violated: parent[%d]=%.1f < right[%d]=%.1f", i, entries[i].Priority, right, entries[right].Priority)
		}
	}
}

func TestPriorityQueue_ExtractionOrder(t *testing.T) {
	pq := NewPriorityQueue()
	for _, p := range []float64{5, 1, 9, 3} {
		pq.Insert(newTicket(p), p)
	}

	want := []float64{9, 5, 3, 1}
	for i, expected := range want {
		entry, ok := pq.ExtractMax()
		if !ok {
			t.Fatalf("ExtractMax() empty at step %d", i)
		}
		if entry.Priority != expected {
			t.Errorf("extraction %d = %.1f, want %.1f", i, entry.Priority, expected)
		}
	}

	if !pq.IsEmpty() {
		t.Error("queue not empty after extracting all entries")
	}
}

func TestPriorityQueue_ExtractEmpty(t *testing.T) {
	pq := NewPriorityQueue()

	entry, ok := pq.ExtractMax()
	if ok {
		t.Errorf("ExtractMax() on empty queue = %+v, want sentinel", entry)
	}
}

func TestPriorityQueue_HeapPropertyAfterMixedOps(t *testing.T) {
	pq := NewPriorityQueue()

	priorities := []float64{7, 2, 9, 4, 4, 11, 1, 8, 3, 6}
	for i, p := range priorities {
		pq.Insert(newTicket(p), p)
		verifyHeapProperty(t, pq)

		// Interleave extractions
		if i%3 == 2 {
			if _, ok := pq.ExtractMax(); !ok {
				t.Fatal("ExtractMax() unexpectedly empty")
			}
			verifyHeapProperty(t, pq)
		}
	}

	// Drain; each extraction must be non-increasing
	prev, ok := pq.ExtractMax()
	if !ok {
		t.Fatal("queue drained too early")
	}
	for {
		verifyHeapProperty(t, pq)
		entry, ok := pq.ExtractMax()
		if !ok {
			break
		}
		if entry.Priority > prev.Priority {
			t.Errorf("extraction order violated: %.1f after %.1f", entry.Priority, prev.Priority)
		}
		prev = entry
	}
}

func TestPriorityQueue_SnapshotIsolation(t *testing.T) {
	pq := NewPriorityQueue()
	for _, p := range []float64{5, 1, 9} {
		pq.Insert(newTicket(p), p)
	}

	snapshot := pq.Snapshot()
	if len(snapshot) != 3 {
		t.Fatalf("Snapshot() length = %d, want 3", len(snapshot))
	}

	// Mutating the snapshot must not affect the queue
	for i := range snapshot {
		snapshot[i].Priority = -100
		snapshot[i].Ticket.Priority = -100
	}

	entry, ok := pq.ExtractMax()
	if !ok {
		t.Fatal("ExtractMax() empty after snapshot mutation")
	}
	if entry.Priority != 9 {
		t.Errorf("ExtractMax() after snapshot mutation = %.1f, want 9", entry.Priority)
	}
}

func TestPriorityQueue_Len(t *testing.T) {
	pq := NewPriorityQueue()
	if pq.Len() != 0 || !pq.IsEmpty() {
		t.Error("new queue not empty")
	}

	pq.Insert(newTicket(1), 1)
	pq.Insert(newTicket(2), 2)
	if pq.Len() != 2 {
		t.Errorf("Len() = %d, want 2", pq.Len())
	}

	pq.ExtractMax()
	if pq.Len() != 1 {
		t.Errorf("Len() after extract = %d, want 1", pq.Len())
	}
}
