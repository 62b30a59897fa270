package handler

import (
	"encoding/json"
	"net/http"

	"clinic-dispatch/internal/delivery/dto"
	"clinic-dispatch/internal/usecase"
	"clinic-dispatch/pkg/response"
	"clinic-dispatch/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) MatchDoctors(w http.ResponseWriter, r *http.Request) {
	symptoms := r.URL.Query().Get("symptoms")

	matches, err := h.doctorUsecase.MatchDoctors(r.Context(), symptoms)
	if err != nil {
		switch err {
		case usecase.ErrSymptomsRequired:
			response.Error(w, http.StatusBadRequest, "Query parameter 'symptoms' is required", nil)
		default:
			response.InternalServerError(w, "Failed to match doctors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctors matched successfully", matches)
}
