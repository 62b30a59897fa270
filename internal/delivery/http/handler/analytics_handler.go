package handler

import (
	"encoding/json"
	"net/http"

	"clinic-dispatch/internal/delivery/dto"
	"clinic-dispatch/internal/usecase"
	"clinic-dispatch/pkg/response"
	"clinic-dispatch/pkg/validator"
)

type AnalyticsHandler struct {
	analyticsUsecase    usecase.AnalyticsUsecase
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAnalyticsHandler(
	analyticsUsecase usecase.AnalyticsUsecase,
	availabilityUsecase usecase.AvailabilityUsecase,
	validator *validator.CustomValidator,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUsecase:    analyticsUsecase,
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func (h *AnalyticsHandler) GetWaitTimeStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsUsecase.WaitTimeStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to compute wait-time statistics")
		return
	}

	response.Success(w, http.StatusOK, "Wait-time statistics retrieved successfully", stats)
}

func (h *AnalyticsHandler) GetActiveTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.analyticsUsecase.ActiveTickets(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get active tickets")
		return
	}

	response.Success(w, http.StatusOK, "Active tickets retrieved successfully", tickets)
}

func (h *AnalyticsHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result, err := h.analyticsUsecase.SearchDoctors(r.Context(), query)
	if err != nil {
		switch err {
		case usecase.ErrQueryRequired:
			response.Error(w, http.StatusBadRequest, "Query parameter 'q' is required", nil)
		default:
			response.InternalServerError(w, "Failed to search doctors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctors searched successfully", result)
}

func (h *AnalyticsHandler) GetFreeSlots(w http.ResponseWriter, r *http.Request) {
	var req dto.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slots, err := h.availabilityUsecase.FreeSlots(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to compute free slots")
		return
	}

	response.Success(w, http.StatusOK, "Free slots computed successfully", slots)
}
