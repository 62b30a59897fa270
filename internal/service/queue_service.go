package service

import (
	"sync"

	"clinic-dispatch/internal/domain/entity"
	"clinic-dispatch/internal/scheduling"

	"github.com/sirupsen/logrus"
)

// QueueService is the single owner of the in-memory priority queue. The heap
// itself is unsynchronized; every HTTP worker goes through this mutex.
type QueueService struct {
	mu    sync.Mutex
	queue *scheduling.PriorityQueue
	log   *logrus.Logger
}

func NewQueueService(log *logrus.Logger) *QueueService {
	return &QueueService{
		queue: scheduling.NewPriorityQueue(),
		log:   log,
	}
}

// Rebuild replaces the queue contents from the open tickets in the store.
// Called once on startup before traffic is accepted.
func (s *QueueService) Rebuild(tickets []entity.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue = scheduling.NewPriorityQueue()
	for _, t := range tickets {
		s.queue.Insert(t, t.Priority)
	}
	s.log.Infof("Dispatch queue rebuilt: %d open tickets", s.queue.Len())
}

// Push enqueues a ticket under its priority.
func (s *QueueService) Push(ticket entity.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Insert(ticket, ticket.Priority)
}

// Pop removes and returns the highest-priority waiting ticket. The second
// return is false when the queue is empty.
func (s *QueueService) Pop() (entity.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	top, ok := s.queue.ExtractMax()
	if !ok {
		return entity.Ticket{}, false
	}
	return top.Ticket, true
}

// DrainAll empties the queue in priority order.
func (s *QueueService) DrainAll() []entity.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tickets []entity.Ticket
	for {
		top, ok := s.queue.ExtractMax()
		if !ok {
			return tickets
		}
		tickets = append(tickets, top.Ticket)
	}
}

// Snapshot returns an independent copy of the queued entries in heap order,
// for the waiting-room board.
func (s *QueueService) Snapshot() []scheduling.HeapEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Snapshot()
}

// Len returns the current queue depth.
func (s *QueueService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}
