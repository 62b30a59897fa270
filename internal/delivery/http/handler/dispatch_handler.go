package handler

import (
	"net/http"

	"clinic-dispatch/internal/usecase"
	"clinic-dispatch/pkg/response"
)

type DispatchHandler struct {
	dispatchUsecase usecase.DispatchUsecase
}

func NewDispatchHandler(dispatchUsecase usecase.DispatchUsecase) *DispatchHandler {
	return &DispatchHandler{dispatchUsecase: dispatchUsecase}
}

func (h *DispatchHandler) DispatchNext(w http.ResponseWriter, r *http.Request) {
	assignment, err := h.dispatchUsecase.DispatchNext(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrQueueEmpty:
			response.NotFound(w, "No tickets waiting for dispatch")
		case usecase.ErrNoDoctorsAvailable:
			response.Error(w, http.StatusConflict, "No doctors available for assignment", nil)
		case usecase.ErrTicketNotOpen:
			response.Error(w, http.StatusConflict, "Ticket was no longer open and has been dropped", nil)
		default:
			response.InternalServerError(w, "Failed to dispatch ticket")
		}
		return
	}

	response.Success(w, http.StatusOK, "Ticket dispatched successfully", assignment)
}

func (h *DispatchHandler) DispatchAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.dispatchUsecase.DispatchAll(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrQueueEmpty:
			response.NotFound(w, "No tickets waiting for dispatch")
		case usecase.ErrNoDoctorsAvailable:
			response.Error(w, http.StatusConflict, "No doctors available for assignment", nil)
		default:
			response.InternalServerError(w, "Failed to dispatch tickets")
		}
		return
	}

	response.Success(w, http.StatusOK, "Tickets dispatched successfully", result)
}

func (h *DispatchHandler) LoadRanking(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.dispatchUsecase.LoadRanking(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to compute load ranking")
		return
	}

	response.Success(w, http.StatusOK, "Load ranking retrieved successfully", ranking)
}
