package usecase

import (
	"context"

	"clinic-dispatch/internal/delivery/dto"
	"clinic-dispatch/internal/scheduling"

	"github.com/sirupsen/logrus"
)

type AvailabilityUsecase interface {
	FreeSlots(ctx context.Context, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error)
}

type availabilityUsecase struct {
	log *logrus.Logger
}

func NewAvailabilityUsecase(log *logrus.Logger) AvailabilityUsecase {
	return &availabilityUsecase{log: log}
}

// FreeSlots computes the unbooked gaps inside the requested window. The
// booked intervals arrive from the booking collaborator as part of the
// request; nothing is read from storage here.
func (u *availabilityUsecase) FreeSlots(_ context.Context, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error) {
	booked := make([]scheduling.Interval, 0, len(req.Booked))
	for _, iv := range req.Booked {
		booked = append(booked, scheduling.Interval{Start: iv.Start, End: iv.End})
	}

	window := scheduling.Interval{Start: req.WindowStart, End: req.WindowEnd}
	gaps := scheduling.FreeSlots(booked, window)

	resp := &dto.AvailabilityResponse{
		Gaps: make([]dto.IntervalDTO, 0, len(gaps)),
	}
	for _, g := range gaps {
		resp.Gaps = append(resp.Gaps, dto.IntervalDTO{Start: g.Start, End: g.End})
	}
	return resp, nil
}
