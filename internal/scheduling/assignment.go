package scheduling

import (
	"sort"
	"strings"

	"clinic-dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// Assignment strategies. All are pure functions over a roster snapshot and
// ticket(s): with an empty roster they report "no assignment possible" via a
// nil/absent result rather than an error.

// RoundRobin assigns roster members cyclically in roster order, one per
// ticket. The cursor is internal to a single invocation; calls are stateless
// across invocations.
func RoundRobin(tickets []entity.Ticket, roster []entity.Doctor) map[uuid.UUID]uuid.UUID {
	if len(roster) == 0 || len(tickets) == 0 {
		return nil
	}

	assignments := make(map[uuid.UUID]uuid.UUID, len(tickets))
	cursor := 0
	for _, ticket := range tickets {
		assignments[ticket.ID] = roster[cursor%len(roster)].ID
		cursor++
	}
	return assignments
}

// LeastLoad selects the doctor with the strictly smallest current load. The
// first roster entry encountered wins ties, so the result is stable by roster
// iteration order. Returns nil when the roster is empty.
func LeastLoad(roster []entity.Doctor, load map[uuid.UUID]int) *entity.Doctor {
	if len(roster) == 0 {
		return nil
	}

	best := 0
	for i := 1; i < len(roster); i++ {
		if load[roster[i].ID] < load[roster[best].ID] {
			best = i
		}
	}
	picked := roster[best]
	return &picked
}

// SpecialtyMatch ranks a doctor against a symptom description.
type SpecialtyMatch struct {
	Doctor     entity.Doctor
	Similarity float64
}

// MatchBySpecialty tokenizes the ticket's symptom text and each doctor's
// specialty list on whitespace and commas, scores each doctor as
// |intersection| / max(|symptom tokens|, |specialty tokens|), and returns the
// top k doctors with similarity strictly above zero, descending. Doctors with
// no specialty tokens never match. Equal scores keep roster input order.
func MatchBySpecialty(symptoms string, roster []entity.Doctor, k int) []SpecialtyMatch {
	if len(roster) == 0 || k <= 0 {
		return nil
	}

	symptomTokens := tokenize(symptoms)
	if len(symptomTokens) == 0 {
		return nil
	}

	matches := make([]SpecialtyMatch, 0, len(roster))
	for _, doctor := range roster {
		specialtyTokens := tokenize(doctor.Specialties)
		if len(specialtyTokens) == 0 {
			continue
		}

		overlap := 0
		for token := range specialtyTokens {
			if _, ok := symptomTokens[token]; ok {
				overlap++
			}
		}

		denom := len(symptomTokens)
		if len(specialtyTokens) > denom {
			denom = len(specialtyTokens)
		}
		similarity := float64(overlap) / float64(denom)
		if similarity > 0 {
			matches = append(matches, SpecialtyMatch{Doctor: doctor, Similarity: similarity})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// DoctorLoad pairs a doctor with their open+booked ticket count.
type DoctorLoad struct {
	Doctor entity.Doctor
	Load   int
}

// RankByLoad counts open and booked tickets per doctor (completed tickets are
// excluded) and returns the roster sorted ascending by that load. It is a
// rebalancing suggestion, it does not mutate assignments. Ties keep roster
// input order.
func RankByLoad(roster []entity.Doctor, tickets []entity.Ticket) []DoctorLoad {
	counts := make(map[uuid.UUID]int, len(roster))
	for _, ticket := range tickets {
		if ticket.IsCompleted() || ticket.DoctorID == nil {
			continue
		}
		counts[*ticket.DoctorID]++
	}

	ranked := make([]DoctorLoad, 0, len(roster))
	for _, doctor := range roster {
		ranked = append(ranked, DoctorLoad{Doctor: doctor, Load: counts[doctor.ID]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Load < ranked[j].Load
	})
	return ranked
}

// tokenize splits text on whitespace and commas into a lowercased token set.
func tokenize(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}
