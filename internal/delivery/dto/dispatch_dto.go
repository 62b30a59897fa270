package dto

import "github.com/google/uuid"

// Response DTOs

type AssignmentResponse struct {
	TicketID uuid.UUID      `json:"ticket_id"`
	Doctor   DoctorResponse `json:"doctor"`
	Strategy string         `json:"strategy"`
}

type DispatchAllResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Total       int                  `json:"total"`
}

type LoadRankingResponse struct {
	Ranking []DoctorLoadResponse `json:"ranking"`
}
