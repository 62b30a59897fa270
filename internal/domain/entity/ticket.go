package entity

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus represents the status of a walk-in ticket
type TicketStatus string

const (
	TicketStatusOpen      TicketStatus = "open"
	TicketStatusBooked    TicketStatus = "booked"
	TicketStatusCompleted TicketStatus = "completed"
)

// Ticket represents a walk-in queue entry awaiting assignment or completion.
// Status transitions are monotonic: open -> booked -> completed.
type Ticket struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Priority    float64      `gorm:"not null;index" json:"priority"`
	Symptoms    string       `gorm:"type:text" json:"symptoms,omitempty"`
	Status      TicketStatus `gorm:"type:ticket_status;not null;default:'open';index" json:"status"`
	DoctorID    *uuid.UUID   `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`

	// Timestamp is the legacy intake field kept for rows imported from the
	// old walk-in board; analytics falls back to it when CreatedAt is zero.
	Timestamp time.Time `gorm:"column:legacy_timestamp" json:"timestamp,omitempty"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// IsOpen checks if the ticket is still waiting for assignment
func (t *Ticket) IsOpen() bool {
	return t.Status == TicketStatusOpen
}

// IsBooked checks if the ticket has been assigned to a doctor
func (t *Ticket) IsBooked() bool {
	return t.Status == TicketStatusBooked
}

// IsCompleted checks if the ticket has been served
func (t *Ticket) IsCompleted() bool {
	return t.Status == TicketStatusCompleted
}

// Book assigns the ticket to a doctor and moves it to booked
func (t *Ticket) Book(doctorID uuid.UUID) {
	t.DoctorID = &doctorID
	t.Status = TicketStatusBooked
}

// Complete moves the ticket to completed and stamps the completion time
func (t *Ticket) Complete(at time.Time) {
	t.Status = TicketStatusCompleted
	t.CompletedAt = &at
}

// EffectiveCreatedAt returns CreatedAt, falling back to the legacy intake
// timestamp for imported rows.
func (t *Ticket) EffectiveCreatedAt() time.Time {
	if !t.CreatedAt.IsZero() {
		return t.CreatedAt
	}
	return t.Timestamp
}
