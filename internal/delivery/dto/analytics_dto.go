package dto

import "time"

// Request DTOs

type AvailabilityRequest struct {
	WindowStart time.Time     `json:"window_start" validate:"required"`
	WindowEnd   time.Time     `json:"window_end" validate:"required"`
	Booked      []IntervalDTO `json:"booked" validate:"dive"`
}

type IntervalDTO struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required"`
}

// Response DTOs

type AvailabilityResponse struct {
	Gaps []IntervalDTO `json:"gaps"`
}

type WaitTimeStatsResponse struct {
	Average       int     `json:"average_minutes"`
	Median        int     `json:"median_minutes"`
	Max           int     `json:"max_minutes"`
	Count         int     `json:"count"`
	RollingAvg    float64 `json:"rolling_average_minutes"`
	RollingWindow int     `json:"rolling_window"`
}

type ActiveTicketsResponse struct {
	Tickets []TicketResponse `json:"tickets"`
	Total   int              `json:"total"`
}

type DoctorSearchResponse struct {
	Matches []DoctorSearchMatch `json:"matches"`
	Total   int                 `json:"total"`
}

type DoctorSearchMatch struct {
	Doctor   DoctorResponse `json:"doctor"`
	Distance int            `json:"distance"`
}
