package analytics

import (
	"math"
	"sort"
	"time"

	"clinic-dispatch/internal/domain/entity"
)

// MovingAverage returns the mean of the last windowSize values, or of all
// values when fewer exist. Empty input yields zero.
func MovingAverage(values []float64, windowSize int) float64 {
	if len(values) == 0 || windowSize <= 0 {
		return 0
	}

	start := 0
	if len(values) > windowSize {
		start = len(values) - windowSize
	}

	sum := 0.0
	for _, v := range values[start:] {
		sum += v
	}
	return sum / float64(len(values)-start)
}

// WaitTimeStats summarizes completed-ticket wait times in whole minutes.
type WaitTimeStats struct {
	Average int `json:"average"`
	Median  int `json:"median"`
	Max     int `json:"max"`
	Count   int `json:"count"`
}

// ComputeWaitTimes measures completedAt - createdAt in minutes for every
// completed ticket carrying both timestamps, and reports mean, median and
// max, each rounded to the nearest integer. The median is the element at
// index n/2 of the ascending-sorted list, the upper middle for even n, not
// interpolated; changing that would alter observable statistics. All zeros
// when no ticket qualifies.
func ComputeWaitTimes(tickets []entity.Ticket) WaitTimeStats {
	var waits []float64
	for _, t := range tickets {
		if !t.IsCompleted() || t.CompletedAt == nil {
			continue
		}
		created := t.EffectiveCreatedAt()
		if created.IsZero() {
			continue
		}
		waits = append(waits, t.CompletedAt.Sub(created).Minutes())
	}

	if len(waits) == 0 {
		return WaitTimeStats{}
	}

	sort.Float64s(waits)

	sum := 0.0
	for _, w := range waits {
		sum += w
	}

	return WaitTimeStats{
		Average: int(math.Round(sum / float64(len(waits)))),
		Median:  int(math.Round(waits[len(waits)/2])),
		Max:     int(math.Round(waits[len(waits)-1])),
		Count:   len(waits),
	}
}

// ActiveTickets returns tickets whose effective intake time falls within
// windowMinutes of now and whose status is open or booked.
func ActiveTickets(tickets []entity.Ticket, windowMinutes int, now time.Time) []entity.Ticket {
	cutoff := now.Add(-time.Duration(windowMinutes) * time.Minute)

	var active []entity.Ticket
	for _, t := range tickets {
		if t.IsCompleted() {
			continue
		}
		if t.EffectiveCreatedAt().Before(cutoff) {
			continue
		}
		active = append(active, t)
	}
	return active
}
