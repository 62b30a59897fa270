package scheduling

import (
	"testing"
	"time"

	"clinic-dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

func newDoctor(name, specialties string) entity.Doctor {
	return entity.Doctor{ID: uuid.New(), Name: name, Specialties: specialties, Active: true}
}

func TestRoundRobin_CyclesThroughRoster(t *testing.T) {
	roster := []entity.Doctor{newDoctor("Alice", ""), newDoctor("Bob", ""), newDoctor("Carol", "")}

	tickets := make([]entity.Ticket, 5)
	for i := range tickets {
		tickets[i] = newTicket(float64(i))
	}

	assignments := RoundRobin(tickets, roster)
	if len(assignments) != 5 {
		t.Fatalf("RoundRobin() assigned %d tickets, want 5", len(assignments))
	}

	// The cursor wraps: tickets 0..4 map to doctors 0,1,2,0,1
	wantDoctor := []int{0, 1, 2, 0, 1}
	for i, ticket := range tickets {
		got, ok := assignments[ticket.ID]
		if !ok {
			t.Fatalf("ticket %d unassigned", i)
		}
		if got != roster[wantDoctor[i]].ID {
			t.Errorf("ticket %d assigned to wrong doctor, want roster[%d]", i, wantDoctor[i])
		}
	}
}

func TestRoundRobin_EmptyInputs(t *testing.T) {
	roster := []entity.Doctor{newDoctor("Alice", "")}

	if got := RoundRobin(nil, roster); len(got) != 0 {
		t.Errorf("RoundRobin(no tickets) = %d assignments, want 0", len(got))
	}
	if got := RoundRobin([]entity.Ticket{newTicket(1)}, nil); len(got) != 0 {
		t.Errorf("RoundRobin(no roster) = %d assignments, want 0", len(got))
	}
}

func TestLeastLoad(t *testing.T) {
	alice := newDoctor("Alice", "")
	bob := newDoctor("Bob", "")
	carol := newDoctor("Carol", "")
	roster := []entity.Doctor{alice, bob, carol}

	tests := []struct {
		name string
		load map[uuid.UUID]int
		want uuid.UUID
	}{
		{
			name: "picks lowest load",
			load: map[uuid.UUID]int{alice.ID: 3, bob.ID: 1, carol.ID: 2},
			want: bob.ID,
		},
		{
			name: "tie broken by roster order",
			load: map[uuid.UUID]int{alice.ID: 2, bob.ID: 2, carol.ID: 2},
			want: alice.ID,
		},
		{
			name: "missing load counts as zero",
			load: map[uuid.UUID]int{alice.ID: 1, bob.ID: 1},
			want: carol.ID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LeastLoad(roster, tt.load)
			if got == nil {
				t.Fatal("LeastLoad() = nil, want a doctor")
			}
			if got.ID != tt.want {
				t.Errorf("LeastLoad() picked %s, want another doctor", got.Name)
			}
		})
	}
}

func TestLeastLoad_EmptyRoster(t *testing.T) {
	if got := LeastLoad(nil, map[uuid.UUID]int{}); got != nil {
		t.Errorf("LeastLoad(empty roster) = %+v, want nil", got)
	}
}

func TestMatchBySpecialty(t *testing.T) {
	cardio := newDoctor("Alice", "cardiology, internal medicine")
	derm := newDoctor("Bob", "dermatology")
	general := newDoctor("Carol", "general practice")
	roster := []entity.Doctor{cardio, derm, general}

	tests := []struct {
		name     string
		symptoms string
		k        int
		wantLen  int
		wantTop  uuid.UUID
	}{
		{
			name:     "direct specialty overlap ranks first",
			symptoms: "cardiology consult",
			k:        3,
			wantLen:  1,
			wantTop:  cardio.ID,
		},
		{
			name:     "zero overlap yields no matches",
			symptoms: "orthopedic fracture",
			k:        3,
			wantLen:  0,
		},
		{
			name:     "k limits result count",
			symptoms: "general internal medicine practice",
			k:        1,
			wantLen:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchBySpecialty(tt.symptoms, roster, tt.k)
			if len(got) != tt.wantLen {
				t.Fatalf("MatchBySpecialty() returned %d matches, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && tt.wantTop != uuid.Nil && got[0].Doctor.ID != tt.wantTop {
				t.Errorf("top match is %s, want another doctor", got[0].Doctor.Name)
			}
		})
	}
}

func TestMatchBySpecialty_EmptySymptoms(t *testing.T) {
	roster := []entity.Doctor{newDoctor("Alice", "cardiology")}

	if got := MatchBySpecialty("", roster, 3); len(got) != 0 {
		t.Errorf("MatchBySpecialty(empty symptoms) = %d matches, want 0", len(got))
	}
	if got := MatchBySpecialty("   ", roster, 3); len(got) != 0 {
		t.Errorf("MatchBySpecialty(whitespace symptoms) = %d matches, want 0", len(got))
	}
}

func TestMatchBySpecialty_TieOrderStable(t *testing.T) {
	first := newDoctor("Alice", "cardiology")
	second := newDoctor("Bob", "cardiology")
	roster := []entity.Doctor{first, second}

	got := MatchBySpecialty("cardiology", roster, 2)
	if len(got) != 2 {
		t.Fatalf("MatchBySpecialty() returned %d matches, want 2", len(got))
	}
	if got[0].Doctor.ID != first.ID || got[1].Doctor.ID != second.ID {
		t.Error("equal-similarity matches not in roster order")
	}
}

func TestRankByLoad(t *testing.T) {
	alice := newDoctor("Alice", "")
	bob := newDoctor("Bob", "")
	roster := []entity.Doctor{alice, bob}

	now := time.Now()
	booked := func(doctorID uuid.UUID) entity.Ticket {
		tk := newTicket(1)
		tk.Status = entity.TicketStatusBooked
		tk.DoctorID = &doctorID
		tk.CreatedAt = now
		return tk
	}
	completed := func(doctorID uuid.UUID) entity.Ticket {
		tk := booked(doctorID)
		tk.Status = entity.TicketStatusCompleted
		tk.CompletedAt = &now
		return tk
	}

	tickets := []entity.Ticket{
		booked(bob.ID),
		booked(bob.ID),
		booked(alice.ID),
		completed(alice.ID), // completed work does not count toward load
		{ID: uuid.New(), Status: entity.TicketStatusOpen, CreatedAt: now}, // unassigned
	}

	ranking := RankByLoad(roster, tickets)
	if len(ranking) != 2 {
		t.Fatalf("RankByLoad() returned %d entries, want 2", len(ranking))
	}
	if ranking[0].Doctor.ID != alice.ID || ranking[0].Load != 1 {
		t.Errorf("ranking[0] = %s load %d, want Alice load 1", ranking[0].Doctor.Name, ranking[0].Load)
	}
	if ranking[1].Doctor.ID != bob.ID || ranking[1].Load != 2 {
		t.Errorf("ranking[1] = %s load %d, want Bob load 2", ranking[1].Doctor.Name, ranking[1].Load)
	}
}
