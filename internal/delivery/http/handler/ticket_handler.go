package handler

import (
	"encoding/json"
	"net/http"

	"clinic-dispatch/internal/delivery/dto"
	"clinic-dispatch/internal/usecase"
	"clinic-dispatch/pkg/response"
	"clinic-dispatch/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TicketHandler struct {
	intakeUsecase usecase.TicketIntakeUsecase
	validator     *validator.CustomValidator
}

func NewTicketHandler(intakeUsecase usecase.TicketIntakeUsecase, validator *validator.CustomValidator) *TicketHandler {
	return &TicketHandler{
		intakeUsecase: intakeUsecase,
		validator:     validator,
	}
}

func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ticket, err := h.intakeUsecase.CreateTicket(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrIntakeRateLimited:
			response.TooManyRequests(w, "Intake is rate limited, please retry shortly")
		default:
			response.InternalServerError(w, "Failed to create ticket")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Ticket created successfully", ticket)
}

func (h *TicketHandler) CompleteTicket(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ticketID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ticket ID", nil)
		return
	}

	err = h.intakeUsecase.CompleteTicket(r.Context(), ticketID)
	if err != nil {
		switch err {
		case usecase.ErrTicketNotFound:
			response.NotFound(w, "Ticket not found")
		case usecase.ErrTicketNotBooked:
			response.Error(w, http.StatusConflict, "Ticket has not been assigned yet", nil)
		case usecase.ErrTicketCompleted:
			response.Error(w, http.StatusConflict, "Ticket is already completed", nil)
		default:
			response.InternalServerError(w, "Failed to complete ticket")
		}
		return
	}

	response.Success(w, http.StatusOK, "Ticket completed successfully", nil)
}

func (h *TicketHandler) GetQueue(w http.ResponseWriter, r *http.Request) {
	snapshot := h.intakeUsecase.QueueSnapshot(r.Context())
	response.Success(w, http.StatusOK, "Queue snapshot retrieved successfully", snapshot)
}
