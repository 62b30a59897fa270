package usecase

import (
	"context"
	"errors"

	"clinic-dispatch/internal/converter"
	"clinic-dispatch/internal/delivery/dto"
	"clinic-dispatch/internal/domain/entity"
	"clinic-dispatch/internal/domain/repository"
	"clinic-dispatch/internal/scheduling"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSymptomsRequired = errors.New("symptom text is required for matching")

// matchTopK bounds how many doctors a specialty match returns.
const matchTopK = 3

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	MatchDoctors(ctx context.Context, symptoms string) ([]dto.DoctorMatchResponse, error)
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		Name:        req.Name,
		Specialties: req.Specialties,
		Active:      true,
	}

	if err := u.doctorRepo.Create(u.db.WithContext(ctx), doctor); err != nil {
		u.log.Warnf("Failed to insert doctor: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor created: id=%s, name=%s", doctor.ID, doctor.Name)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load roster: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// MatchDoctors ranks active doctors against free-text symptoms by specialty
// overlap, best first. Doctors with no overlap are omitted.
func (u *doctorUsecase) MatchDoctors(ctx context.Context, symptoms string) ([]dto.DoctorMatchResponse, error) {
	if symptoms == "" {
		return nil, ErrSymptomsRequired
	}

	roster, err := u.doctorRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load roster: %+v", err)
		return nil, err
	}

	matches := scheduling.MatchBySpecialty(symptoms, roster, matchTopK)

	responses := make([]dto.DoctorMatchResponse, 0, len(matches))
	for i := range matches {
		responses = append(responses, dto.DoctorMatchResponse{
			Doctor:     *converter.DoctorToResponse(&matches[i].Doctor),
			Similarity: matches[i].Similarity,
		})
	}
	return responses, nil
}
