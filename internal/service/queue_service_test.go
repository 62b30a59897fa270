package service

import (
	"sync"
	"testing"

	"clinic-dispatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func queueTicket(priority float64) entity.Ticket {
	return entity.Ticket{ID: uuid.New(), Priority: priority, Status: entity.TicketStatusOpen}
}

func TestQueueService_PushPopOrder(t *testing.T) {
	svc := NewQueueService(testLogger())

	for _, p := range []float64{5, 1, 9, 3} {
		svc.Push(queueTicket(p))
	}

	for _, want := range []float64{9, 5, 3, 1} {
		ticket, ok := svc.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, ticket.Priority)
	}

	_, ok := svc.Pop()
	assert.False(t, ok)
}

func TestQueueService_Rebuild(t *testing.T) {
	svc := NewQueueService(testLogger())
	svc.Push(queueTicket(100)) // stale entry, replaced by rebuild

	open := []entity.Ticket{queueTicket(2), queueTicket(7)}
	svc.Rebuild(open)

	assert.Equal(t, 2, svc.Len())
	ticket, ok := svc.Pop()
	assert.True(t, ok)
	assert.Equal(t, 7.0, ticket.Priority)
}

func TestQueueService_DrainAll(t *testing.T) {
	svc := NewQueueService(testLogger())
	for _, p := range []float64{2, 8, 5} {
		svc.Push(queueTicket(p))
	}

	drained := svc.DrainAll()

	assert.Len(t, drained, 3)
	assert.Equal(t, 8.0, drained[0].Priority)
	assert.Equal(t, 5.0, drained[1].Priority)
	assert.Equal(t, 2.0, drained[2].Priority)
	assert.Equal(t, 0, svc.Len())
}

func TestQueueService_SnapshotDoesNotDrain(t *testing.T) {
	svc := NewQueueService(testLogger())
	svc.Push(queueTicket(4))
	svc.Push(queueTicket(6))

	snapshot := svc.Snapshot()

	assert.Len(t, snapshot, 2)
	assert.Equal(t, 2, svc.Len())
}

func TestQueueService_ConcurrentPushPop(t *testing.T) {
	svc := NewQueueService(testLogger())

	const n = 100
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			svc.Push(queueTicket(float64(i)))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			svc.Pop()
		}
	}()
	wg.Wait()

	// Every remaining ticket is still extractable in priority order
	prev := float64(n + 1)
	for {
		ticket, ok := svc.Pop()
		if !ok {
			break
		}
		assert.LessOrEqual(t, ticket.Priority, prev)
		prev = ticket.Priority
	}
}
