package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notification is an outbound event headed for the transport collaborator.
// The batcher treats it as an opaque payload.
type Notification struct {
	TicketID uuid.UUID `json:"ticket_id"`
	Event    string    `json:"event"`
	Message  string    `json:"message"`
}

// Sink receives flushed batches, in the order the notifications were added.
// Delivery and delivery-failure handling belong to the transport.
type Sink interface {
	Deliver(batch []Notification)
}

// Batcher accumulates notifications and flushes on a size or time threshold.
// Reaching batchSize flushes immediately. Otherwise the first add into an
// empty batch arms a one-shot timer for flushInterval; later adds before the
// flush do not re-arm it. An explicit Flush cancels any pending timer.
type Batcher struct {
	mu            sync.Mutex
	batchSize     int
	flushInterval time.Duration
	scheduler     Scheduler
	sink          Sink

	pending []Notification
	timer   TimerHandle
}

// NewBatcher creates a batcher delivering to sink. batchSize must be at
// least 1.
func NewBatcher(batchSize int, flushInterval time.Duration, scheduler Scheduler, sink Sink) *Batcher {
	if batchSize < 1 {
		batchSize = 1
	}
	return &Batcher{
		batchSize:     batchSize,
		flushInterval: flushInterval,
		scheduler:     scheduler,
		sink:          sink,
	}
}

// Add appends a notification. When the batch reaches batchSize it is flushed
// to the sink immediately; the first item added to an empty batch arms the
// flush timer instead.
func (b *Batcher) Add(n Notification) {
	b.mu.Lock()
	b.pending = append(b.pending, n)

	if len(b.pending) >= b.batchSize {
		batch := b.flushLocked()
		b.mu.Unlock()
		b.sink.Deliver(batch)
		return
	}

	if len(b.pending) == 1 {
		b.timer = b.scheduler.AfterFunc(b.flushInterval, b.flushToSink)
	}
	b.mu.Unlock()
}

// Flush atomically snapshots and clears the batch, cancels any pending
// timer, and returns the snapshot in insertion order. Returns nil when there
// is nothing to send. The caller owns delivery of the returned batch.
func (b *Batcher) Flush() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushLocked()
}

// Pending returns the number of notifications waiting in the batch.
func (b *Batcher) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// flushToSink is the timer callback: it drains the batch and delivers it.
func (b *Batcher) flushToSink() {
	b.mu.Lock()
	batch := b.flushLocked()
	b.mu.Unlock()

	if len(batch) > 0 {
		b.sink.Deliver(batch)
	}
}

// flushLocked snapshots and clears the batch and cancels the timer. Caller
// holds b.mu.
func (b *Batcher) flushLocked() []Notification {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	if len(b.pending) == 0 {
		return nil
	}
	batch := b.pending
	b.pending = nil
	return batch
}
