package analytics

import (
	"testing"
	"time"

	"clinic-dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

func completedTicket(created time.Time, waitMinutes float64) entity.Ticket {
	completedAt := created.Add(time.Duration(waitMinutes * float64(time.Minute)))
	return entity.Ticket{
		ID:          uuid.New(),
		Status:      entity.TicketStatusCompleted,
		CreatedAt:   created,
		CompletedAt: &completedAt,
	}
}

func TestMovingAverage(t *testing.T) {
	tests := []struct {
		name       string
		values     []float64
		windowSize int
		want       float64
	}{
		{"empty input", nil, 5, 0},
		{"zero window", []float64{1, 2, 3}, 0, 0},
		{"fewer values than window", []float64{2, 4}, 5, 3},
		{"exact window", []float64{1, 2, 3}, 3, 2},
		{"window slides to tail", []float64{100, 1, 2, 3}, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MovingAverage(tt.values, tt.windowSize); got != tt.want {
				t.Errorf("MovingAverage(%v, %d) = %v, want %v", tt.values, tt.windowSize, got, tt.want)
			}
		})
	}
}

func TestComputeWaitTimes(t *testing.T) {
	base := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		tickets []entity.Ticket
		want    WaitTimeStats
	}{
		{
			name:    "no tickets",
			tickets: nil,
			want:    WaitTimeStats{},
		},
		{
			name: "odd count",
			tickets: []entity.Ticket{
				completedTicket(base, 10),
				completedTicket(base, 30),
				completedTicket(base, 20),
			},
			want: WaitTimeStats{Average: 20, Median: 20, Max: 30, Count: 3},
		},
		{
			name: "even count takes upper middle",
			tickets: []entity.Ticket{
				completedTicket(base, 10),
				completedTicket(base, 20),
				completedTicket(base, 30),
				completedTicket(base, 40),
			},
			want: WaitTimeStats{Average: 25, Median: 30, Max: 40, Count: 4},
		},
		{
			name: "open tickets excluded",
			tickets: []entity.Ticket{
				completedTicket(base, 10),
				{ID: uuid.New(), Status: entity.TicketStatusOpen, CreatedAt: base},
				{ID: uuid.New(), Status: entity.TicketStatusBooked, CreatedAt: base},
			},
			want: WaitTimeStats{Average: 10, Median: 10, Max: 10, Count: 1},
		},
		{
			name: "completed without timestamp excluded",
			tickets: []entity.Ticket{
				{ID: uuid.New(), Status: entity.TicketStatusCompleted, CreatedAt: base},
			},
			want: WaitTimeStats{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeWaitTimes(tt.tickets); got != tt.want {
				t.Errorf("ComputeWaitTimes() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeWaitTimes_LegacyTimestampFallback(t *testing.T) {
	base := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	completedAt := base.Add(15 * time.Minute)

	ticket := entity.Ticket{
		ID:          uuid.New(),
		Status:      entity.TicketStatusCompleted,
		Timestamp:   base, // no CreatedAt, falls back to the legacy column
		CompletedAt: &completedAt,
	}

	got := ComputeWaitTimes([]entity.Ticket{ticket})
	want := WaitTimeStats{Average: 15, Median: 15, Max: 15, Count: 1}
	if got != want {
		t.Errorf("ComputeWaitTimes() = %+v, want %+v", got, want)
	}
}

func TestActiveTickets(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	recentOpen := entity.Ticket{ID: uuid.New(), Status: entity.TicketStatusOpen, CreatedAt: now.Add(-30 * time.Minute)}
	recentBooked := entity.Ticket{ID: uuid.New(), Status: entity.TicketStatusBooked, CreatedAt: now.Add(-59 * time.Minute)}
	staleOpen := entity.Ticket{ID: uuid.New(), Status: entity.TicketStatusOpen, CreatedAt: now.Add(-2 * time.Hour)}
	recentCompleted := completedTicket(now.Add(-10*time.Minute), 5)

	active := ActiveTickets([]entity.Ticket{recentOpen, recentBooked, staleOpen, recentCompleted}, 60, now)

	if len(active) != 2 {
		t.Fatalf("ActiveTickets() returned %d tickets, want 2", len(active))
	}
	if active[0].ID != recentOpen.ID || active[1].ID != recentBooked.ID {
		t.Error("ActiveTickets() kept the wrong tickets or reordered them")
	}
}

func TestActiveTickets_BoundaryInclusive(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	onCutoff := entity.Ticket{ID: uuid.New(), Status: entity.TicketStatusOpen, CreatedAt: now.Add(-60 * time.Minute)}

	active := ActiveTickets([]entity.Ticket{onCutoff}, 60, now)
	if len(active) != 1 {
		t.Errorf("ticket exactly on the cutoff excluded, want included")
	}
}
