package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateTicketRequest struct {
	Priority float64 `json:"priority" validate:"required,gte=0"`
	Symptoms string  `json:"symptoms" validate:"max=2000"`
}

// Response DTOs

type TicketResponse struct {
	ID           uuid.UUID       `json:"id"`
	TicketNumber int64           `json:"ticket_number,omitempty"`
	Priority     float64         `json:"priority"`
	Symptoms     string          `json:"symptoms,omitempty"`
	Status       string          `json:"status"`
	Doctor       *DoctorResponse `json:"doctor,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
}

type QueueEntryResponse struct {
	Ticket   TicketResponse `json:"ticket"`
	Priority float64        `json:"priority"`
}

type QueueSnapshotResponse struct {
	Entries []QueueEntryResponse `json:"entries"`
	Depth   int                  `json:"depth"`
}
