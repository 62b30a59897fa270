package dto

import "github.com/google/uuid"

// Request DTOs

type CreateDoctorRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Specialties string `json:"specialties" validate:"required"`
}

// Response DTOs

type DoctorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Specialties string    `json:"specialties"`
	Active      bool      `json:"active"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type DoctorMatchResponse struct {
	Doctor     DoctorResponse `json:"doctor"`
	Similarity float64        `json:"similarity"`
}

type DoctorLoadResponse struct {
	Doctor DoctorResponse `json:"doctor"`
	Load   int            `json:"load"`
}
