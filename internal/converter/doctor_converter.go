package converter

import (
	"clinic-dispatch/internal/delivery/dto"
	"clinic-dispatch/internal/domain/entity"
	"clinic-dispatch/internal/scheduling"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	return &dto.DoctorResponse{
		ID:          doctor.ID,
		Name:        doctor.Name,
		Specialties: doctor.Specialties,
		Active:      doctor.Active,
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		responses = append(responses, *DoctorToResponse(&doctors[i]))
	}
	return responses
}

func LoadRankingToResponse(ranking []scheduling.DoctorLoad) *dto.LoadRankingResponse {
	resp := &dto.LoadRankingResponse{
		Ranking: make([]dto.DoctorLoadResponse, 0, len(ranking)),
	}
	for i := range ranking {
		resp.Ranking = append(resp.Ranking, dto.DoctorLoadResponse{
			Doctor: *DoctorToResponse(&ranking[i].Doctor),
			Load:   ranking[i].Load,
		})
	}
	return resp
}
