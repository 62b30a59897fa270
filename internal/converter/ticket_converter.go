package converter

import (
	"clinic-dispatch/internal/delivery/dto"
	"clinic-dispatch/internal/domain/entity"
	"clinic-dispatch/internal/scheduling"
)

func TicketToResponse(ticket *entity.Ticket) *dto.TicketResponse {
	resp := &dto.TicketResponse{
		ID:          ticket.ID,
		Priority:    ticket.Priority,
		Symptoms:    ticket.Symptoms,
		Status:      string(ticket.Status),
		CreatedAt:   ticket.CreatedAt,
		CompletedAt: ticket.CompletedAt,
	}
	if ticket.Doctor != nil {
		resp.Doctor = DoctorToResponse(ticket.Doctor)
	}
	return resp
}

func TicketsToResponses(tickets []entity.Ticket) []dto.TicketResponse {
	responses := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		responses = append(responses, *TicketToResponse(&tickets[i]))
	}
	return responses
}

func QueueSnapshotToResponse(entries []scheduling.HeapEntry) *dto.QueueSnapshotResponse {
	resp := &dto.QueueSnapshotResponse{
		Entries: make([]dto.QueueEntryResponse, 0, len(entries)),
		Depth:   len(entries),
	}
	for i := range entries {
		resp.Entries = append(resp.Entries, dto.QueueEntryResponse{
			Ticket:   *TicketToResponse(&entries[i].Ticket),
			Priority: entries[i].Priority,
		})
	}
	return resp
}
