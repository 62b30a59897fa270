package repository

import (
	"time"

	"clinic-dispatch/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketRepository interface {
	Create(db *gorm.DB, ticket *entity.Ticket) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Ticket, error)
	FindOpen(db *gorm.DB) ([]entity.Ticket, error)
	FindActive(db *gorm.DB) ([]entity.Ticket, error)
	FindCompletedSince(db *gorm.DB, since time.Time) ([]entity.Ticket, error)
	UpdateAssignment(db *gorm.DB, id uuid.UUID, doctorID uuid.UUID) (int64, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.TicketStatus) error
	CountActiveByDoctor(db *gorm.DB) (map[uuid.UUID]int, error)
}
