package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"clinic-dispatch/internal/converter"
	"clinic-dispatch/internal/delivery/dto"
	"clinic-dispatch/internal/domain/entity"
	"clinic-dispatch/internal/domain/repository"
	"clinic-dispatch/internal/metrics"
	"clinic-dispatch/internal/notification"
	"clinic-dispatch/internal/service"
	"clinic-dispatch/pkg/clock"
	"clinic-dispatch/pkg/ratelimit"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrIntakeRateLimited = errors.New("intake rate limit exceeded")
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrTicketNotBooked   = errors.New("ticket has not been assigned yet")
	ErrTicketCompleted   = errors.New("ticket is already completed")
)

type TicketIntakeUsecase interface {
	CreateTicket(ctx context.Context, req *dto.CreateTicketRequest) (*dto.TicketResponse, error)
	CompleteTicket(ctx context.Context, ticketID uuid.UUID) error
	QueueSnapshot(ctx context.Context) *dto.QueueSnapshotResponse
	RebuildQueue(ctx context.Context) error
}

type ticketIntakeUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	ticketRepo repository.TicketRepository
	queueSvc   *service.QueueService
	queueSync  *service.QueueSyncService
	batcher    *notification.Batcher
	clk        clock.Clock

	// bucket assumes a single writer; all intake goes through bucketMu.
	bucketMu sync.Mutex
	bucket   *ratelimit.TokenBucket
}

func NewTicketIntakeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ticketRepo repository.TicketRepository,
	queueSvc *service.QueueService,
	queueSync *service.QueueSyncService,
	batcher *notification.Batcher,
	bucket *ratelimit.TokenBucket,
	clk clock.Clock,
) TicketIntakeUsecase {
	return &ticketIntakeUsecase{
		db:         db,
		log:        log,
		ticketRepo: ticketRepo,
		queueSvc:   queueSvc,
		queueSync:  queueSync,
		batcher:    batcher,
		bucket:     bucket,
		clk:        clk,
	}
}

// CreateTicket admits, persists and enqueues a walk-in ticket.
//
// Flow:
// 1. Admission check against the intake token bucket
// 2. Insert ticket (status open)
// 3. Reserve a display number in the Redis mirror (best effort)
// 4. Push into the in-memory priority queue
// 5. Enqueue an intake notification
func (u *ticketIntakeUsecase) CreateTicket(ctx context.Context, req *dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	// Step 1: Admission. Denial is a decision, not a failure; the caller may
	// tell the patient to retry shortly.
	u.bucketMu.Lock()
	admitted := u.bucket.Consume(1)
	u.bucketMu.Unlock()
	if !admitted {
		metrics.AdmissionDenialsTotal.Inc()
		return nil, ErrIntakeRateLimited
	}

	// Step 2: Persist
	ticket := &entity.Ticket{
		Priority: req.Priority,
		Symptoms: req.Symptoms,
		Status:   entity.TicketStatusOpen,
	}
	if err := u.ticketRepo.Create(u.db.WithContext(ctx), ticket); err != nil {
		u.log.Warnf("Failed to insert ticket: %+v", err)
		return nil, err
	}

	// Step 3: Display number from the Redis mirror. Losing it only degrades
	// the waiting-room board, so it never fails the intake.
	ticketNumber, err := u.queueSync.TakeTicketNumber(ctx)
	if err != nil {
		u.log.Warnf("Failed to reserve ticket number for %s (non-fatal): %+v", ticket.ID, err)
	}

	// Step 4: Enqueue
	u.queueSvc.Push(*ticket)

	// Step 5: Notify
	u.batcher.Add(notification.Notification{
		TicketID: ticket.ID,
		Event:    "ticket.created",
		Message:  fmt.Sprintf("Ticket %d joined the queue", ticketNumber),
	})

	u.log.Infof("Ticket created: id=%s, priority=%.1f, number=%d", ticket.ID, ticket.Priority, ticketNumber)

	resp := converter.TicketToResponse(ticket)
	resp.TicketNumber = ticketNumber
	return resp, nil
}

// CompleteTicket marks a booked ticket as served and records its wait time.
func (u *ticketIntakeUsecase) CompleteTicket(ctx context.Context, ticketID uuid.UUID) error {
	ticket, err := u.ticketRepo.FindByID(u.db.WithContext(ctx), ticketID)
	if err != nil {
		u.log.Warnf("Failed to find ticket %s: %+v", ticketID, err)
		return err
	}
	if ticket == nil {
		return ErrTicketNotFound
	}
	if ticket.IsCompleted() {
		return ErrTicketCompleted
	}
	if !ticket.IsBooked() {
		return ErrTicketNotBooked
	}

	if err := u.ticketRepo.UpdateStatus(u.db.WithContext(ctx), ticketID, entity.TicketStatusCompleted); err != nil {
		u.log.Warnf("Failed to complete ticket %s: %+v", ticketID, err)
		return err
	}

	wait := u.clk.Now().Sub(ticket.EffectiveCreatedAt()).Minutes()
	if wait >= 0 {
		metrics.WaitTimeMinutes.Observe(wait)
	}

	u.batcher.Add(notification.Notification{
		TicketID: ticket.ID,
		Event:    "ticket.completed",
		Message:  "Ticket served",
	})

	u.log.Infof("Ticket completed: id=%s, wait=%.0fmin", ticketID, wait)
	return nil
}

// QueueSnapshot returns an isolated copy of the waiting queue in heap order.
func (u *ticketIntakeUsecase) QueueSnapshot(_ context.Context) *dto.QueueSnapshotResponse {
	return converter.QueueSnapshotToResponse(u.queueSvc.Snapshot())
}

// RebuildQueue reloads open tickets from the store into the in-memory queue
// and re-syncs the Redis mirror. Called once during startup.
func (u *ticketIntakeUsecase) RebuildQueue(ctx context.Context) error {
	open, err := u.ticketRepo.FindOpen(u.db.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("load open tickets: %w", err)
	}

	u.queueSvc.Rebuild(open)

	if err := u.queueSync.SyncOnStartup(ctx, len(open), int64(len(open))); err != nil {
		u.log.Warnf("Queue mirror sync failed (non-fatal): %+v", err)
	}
	return nil
}
