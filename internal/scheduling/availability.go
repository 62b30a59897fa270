package scheduling

import (
	"sort"
	"time"
)

// Interval is a half-open time slot [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FreeSlots computes the maximal set of disjoint gaps inside the window
// [window.Start, window.End) not covered by any booked interval.
//
// Booked intervals may overlap or arrive out of order: the sweep sorts them
// by start and only ever advances its cursor, so double-booked stretches
// collapse naturally. A zero-length or inverted window yields no gaps.
func FreeSlots(booked []Interval, window Interval) []Interval {
	if !window.Start.Before(window.End) {
		return nil
	}

	sorted := make([]Interval, len(booked))
	copy(sorted, booked)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var gaps []Interval
	cursor := window.Start
	for _, iv := range sorted {
		if !iv.Start.Before(window.End) {
			break
		}
		if cursor.Before(iv.Start) {
			gaps = append(gaps, Interval{Start: cursor, End: iv.Start})
		}
		if iv.End.After(cursor) {
			cursor = iv.End
		}
	}

	if cursor.Before(window.End) {
		gaps = append(gaps, Interval{Start: cursor, End: window.End})
	}
	return gaps
}
