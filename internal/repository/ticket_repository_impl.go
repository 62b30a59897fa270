package repository

import (
	"errors"
	"time"

	"clinic-dispatch/internal/domain/entity"
	domainRepo "clinic-dispatch/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ticketRepository struct{}

func NewTicketRepository() domainRepo.TicketRepository {
	return &ticketRepository{}
}

func (r *ticketRepository) Create(db *gorm.DB, ticket *entity.Ticket) error {
	return db.Create(ticket).Error
}

func (r *ticketRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := db.Preload("Doctor").Where("id = ?", id).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) FindOpen(db *gorm.DB) ([]entity.Ticket, error) {
	var tickets []entity.Ticket
	err := db.Where("status = ?", entity.TicketStatusOpen).
		Order("created_at ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) FindActive(db *gorm.DB) ([]entity.Ticket, error) {
	var tickets []entity.Ticket
	err := db.Where("status IN ?", []entity.TicketStatus{entity.TicketStatusOpen, entity.TicketStatusBooked}).
		Order("created_at ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) FindCompletedSince(db *gorm.DB, since time.Time) ([]entity.Ticket, error) {
	var tickets []entity.Ticket
	err := db.Where("status = ? AND completed_at >= ?", entity.TicketStatusCompleted, since).
		Order("completed_at ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// UpdateAssignment atomically books an open ticket for a doctor.
// Returns affected rows: 1 = success, 0 = ticket no longer open (prevents
// double-dispatch race).
func (r *ticketRepository) UpdateAssignment(db *gorm.DB, id uuid.UUID, doctorID uuid.UUID) (int64, error) {
	result := db.Model(&entity.Ticket{}).
		Where("id = ? AND status = ?", id, entity.TicketStatusOpen).
		Updates(map[string]interface{}{
			"doctor_id": doctorID,
			"status":    entity.TicketStatusBooked,
		})
	return result.RowsAffected, result.Error
}

func (r *ticketRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.TicketStatus) error {
	updates := map[string]interface{}{"status": status}
	if status == entity.TicketStatusCompleted {
		updates["completed_at"] = time.Now().UTC()
	}
	return db.Model(&entity.Ticket{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ticketRepository) CountActiveByDoctor(db *gorm.DB) (map[uuid.UUID]int, error) {
	type row struct {
		DoctorID uuid.UUID
		Count    int
	}
	var rows []row
	err := db.Model(&entity.Ticket{}).
		Select("doctor_id, COUNT(*) as count").
		Where("status = ? AND doctor_id IS NOT NULL", entity.TicketStatusBooked).
		Group("doctor_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		counts[r.DoctorID] = r.Count
	}
	return counts, nil
}
