package usecase

import (
	"context"
	"errors"
	"fmt"

	"clinic-dispatch/internal/converter"
	"clinic-dispatch/internal/delivery/dto"
	"clinic-dispatch/internal/domain/entity"
	"clinic-dispatch/internal/domain/repository"
	"clinic-dispatch/internal/metrics"
	"clinic-dispatch/internal/notification"
	"clinic-dispatch/internal/scheduling"
	"clinic-dispatch/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrQueueEmpty         = errors.New("dispatch queue is empty")
	ErrNoDoctorsAvailable = errors.New("no doctors available for assignment")
	ErrTicketNotOpen      = errors.New("ticket is no longer open")
)

// Assignment strategy names accepted in configuration.
const (
	StrategyLeastLoad  = "least_load"
	StrategySpecialty  = "specialty"
	StrategyRoundRobin = "round_robin"
)

type DispatchUsecase interface {
	DispatchNext(ctx context.Context) (*dto.AssignmentResponse, error)
	DispatchAll(ctx context.Context) (*dto.DispatchAllResponse, error)
	LoadRanking(ctx context.Context) (*dto.LoadRankingResponse, error)
}

type dispatchUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	ticketRepo repository.TicketRepository
	doctorRepo repository.DoctorRepository
	queueSvc   *service.QueueService
	queueSync  *service.QueueSyncService
	batcher    *notification.Batcher
	strategy   string
}

func NewDispatchUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ticketRepo repository.TicketRepository,
	doctorRepo repository.DoctorRepository,
	queueSvc *service.QueueService,
	queueSync *service.QueueSyncService,
	batcher *notification.Batcher,
	strategy string,
) DispatchUsecase {
	return &dispatchUsecase{
		db:         db,
		log:        log,
		ticketRepo: ticketRepo,
		doctorRepo: doctorRepo,
		queueSvc:   queueSvc,
		queueSync:  queueSync,
		batcher:    batcher,
		strategy:   strategy,
	}
}

// DispatchNext pops the highest-priority waiting ticket and routes it to a
// doctor using the configured strategy.
//
// Flow:
// 1. Pop the queue (empty queue is a sentinel, not an error condition)
// 2. Load the active roster snapshot
// 3. Pick a doctor: specialty match with least-load fallback, or least load
// 4. Persist the assignment atomically
// 5. Update the Redis mirror and enqueue a notification
func (u *dispatchUsecase) DispatchNext(ctx context.Context) (*dto.AssignmentResponse, error) {
	ticket, ok := u.queueSvc.Pop()
	if !ok {
		metrics.AssignmentsTotal.WithLabelValues(u.strategy, "empty_queue").Inc()
		return nil, ErrQueueEmpty
	}

	roster, err := u.doctorRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.queueSvc.Push(ticket) // don't lose the ticket
		u.log.Warnf("Failed to load roster: %+v", err)
		return nil, err
	}
	if len(roster) == 0 {
		u.queueSvc.Push(ticket)
		metrics.AssignmentsTotal.WithLabelValues(u.strategy, "no_doctor").Inc()
		return nil, ErrNoDoctorsAvailable
	}

	doctor, err := u.pickDoctor(ctx, &ticket, roster)
	if err != nil {
		u.queueSvc.Push(ticket)
		return nil, err
	}

	rows, err := u.ticketRepo.UpdateAssignment(u.db.WithContext(ctx), ticket.ID, doctor.ID)
	if err != nil {
		u.queueSvc.Push(ticket)
		u.log.Warnf("Failed to persist assignment for ticket %s: %+v", ticket.ID, err)
		return nil, err
	}
	if rows == 0 {
		// Ticket was completed or cancelled out-of-band while queued; drop it.
		u.log.Warnf("Ticket %s no longer open, dropping from queue", ticket.ID)
		return nil, ErrTicketNotOpen
	}

	if err := u.queueSync.MarkDispatched(ctx); err != nil {
		u.log.Warnf("Queue mirror update failed (non-fatal): %+v", err)
	}

	u.batcher.Add(notification.Notification{
		TicketID: ticket.ID,
		Event:    "ticket.assigned",
		Message:  fmt.Sprintf("Assigned to %s", doctor.Name),
	})

	metrics.AssignmentsTotal.WithLabelValues(u.strategy, "assigned").Inc()
	u.log.Infof("Ticket dispatched: ticket=%s, doctor=%s, strategy=%s", ticket.ID, doctor.ID, u.strategy)

	return &dto.AssignmentResponse{
		TicketID: ticket.ID,
		Doctor:   *converter.DoctorToResponse(doctor),
		Strategy: u.strategy,
	}, nil
}

// pickDoctor applies the configured strategy to one ticket. Specialty
// matching falls back to least load when no specialty overlaps the symptoms.
func (u *dispatchUsecase) pickDoctor(ctx context.Context, ticket *entity.Ticket, roster []entity.Doctor) (*entity.Doctor, error) {
	if u.strategy == StrategySpecialty {
		matches := scheduling.MatchBySpecialty(ticket.Symptoms, roster, 1)
		if len(matches) > 0 {
			doctor := matches[0].Doctor
			return &doctor, nil
		}
	}

	load, err := u.ticketRepo.CountActiveByDoctor(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count doctor load: %+v", err)
		return nil, err
	}

	doctor := scheduling.LeastLoad(roster, load)
	if doctor == nil {
		return nil, ErrNoDoctorsAvailable
	}
	return doctor, nil
}

// DispatchAll drains the whole queue and assigns doctors round robin, in
// priority order. Tickets that lost their open status are skipped; tickets
// that fail to persist are re-queued.
func (u *dispatchUsecase) DispatchAll(ctx context.Context) (*dto.DispatchAllResponse, error) {
	roster, err := u.doctorRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load roster: %+v", err)
		return nil, err
	}
	if len(roster) == 0 {
		return nil, ErrNoDoctorsAvailable
	}

	tickets := u.queueSvc.DrainAll()
	if len(tickets) == 0 {
		return nil, ErrQueueEmpty
	}

	assignments := scheduling.RoundRobin(tickets, roster)

	doctorsByID := make(map[uuid.UUID]*entity.Doctor, len(roster))
	for i := range roster {
		doctorsByID[roster[i].ID] = &roster[i]
	}

	resp := &dto.DispatchAllResponse{}
	for _, ticket := range tickets {
		doctorID := assignments[ticket.ID]

		rows, err := u.ticketRepo.UpdateAssignment(u.db.WithContext(ctx), ticket.ID, doctorID)
		if err != nil {
			u.queueSvc.Push(ticket)
			u.log.Warnf("Failed to persist assignment for ticket %s, re-queued: %+v", ticket.ID, err)
			continue
		}
		if rows == 0 {
			u.log.Warnf("Ticket %s no longer open, skipped", ticket.ID)
			continue
		}

		if err := u.queueSync.MarkDispatched(ctx); err != nil {
			u.log.Warnf("Queue mirror update failed (non-fatal): %+v", err)
		}

		doctor := doctorsByID[doctorID]
		u.batcher.Add(notification.Notification{
			TicketID: ticket.ID,
			Event:    "ticket.assigned",
			Message:  fmt.Sprintf("Assigned to %s", doctor.Name),
		})

		metrics.AssignmentsTotal.WithLabelValues(StrategyRoundRobin, "assigned").Inc()
		resp.Assignments = append(resp.Assignments, dto.AssignmentResponse{
			TicketID: ticket.ID,
			Doctor:   *converter.DoctorToResponse(doctor),
			Strategy: StrategyRoundRobin,
		})
	}
	resp.Total = len(resp.Assignments)

	u.log.Infof("Dispatch-all complete: %d assigned of %d drained", resp.Total, len(tickets))
	return resp, nil
}

// LoadRanking suggests a rebalancing order: active roster sorted ascending by
// open+booked ticket count. It does not mutate assignments.
func (u *dispatchUsecase) LoadRanking(ctx context.Context) (*dto.LoadRankingResponse, error) {
	roster, err := u.doctorRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load roster: %+v", err)
		return nil, err
	}

	tickets, err := u.ticketRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load active tickets: %+v", err)
		return nil, err
	}

	return converter.LoadRankingToResponse(scheduling.RankByLoad(roster, tickets)), nil
}
