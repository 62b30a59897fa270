package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-dispatch/internal/delivery/dto"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestAvailabilityUsecase_FreeSlots(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	uc := NewAvailabilityUsecase(log)

	day := func(hhmm string) time.Time {
		parsed, err := time.Parse("2006-01-02 15:04", "2026-08-25 "+hhmm)
		assert.NoError(t, err)
		return parsed
	}

	resp, err := uc.FreeSlots(context.Background(), &dto.AvailabilityRequest{
		WindowStart: day("09:00"),
		WindowEnd:   day("12:00"),
		Booked: []dto.IntervalDTO{
			{Start: day("09:30"), End: day("10:00")},
			{Start: day("10:30"), End: day("11:00")},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Gaps, 3)
	assert.Equal(t, day("09:00"), resp.Gaps[0].Start)
	assert.Equal(t, day("09:30"), resp.Gaps[0].End)
	assert.Equal(t, day("10:00"), resp.Gaps[1].Start)
	assert.Equal(t, day("10:30"), resp.Gaps[1].End)
	assert.Equal(t, day("11:00"), resp.Gaps[2].Start)
	assert.Equal(t, day("12:00"), resp.Gaps[2].End)
}

func TestAvailabilityUsecase_FreeSlots_FullyBooked(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	uc := NewAvailabilityUsecase(log)

	start := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	resp, err := uc.FreeSlots(context.Background(), &dto.AvailabilityRequest{
		WindowStart: start,
		WindowEnd:   end,
		Booked:      []dto.IntervalDTO{{Start: start, End: end}},
	})

	assert.NoError(t, err)
	assert.Empty(t, resp.Gaps)
}
