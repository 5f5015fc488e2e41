package formstate

import (
	"strconv"
	"strings"

	"leasehub-backend/internal/domain"
)

// Terms is the in-memory draft of an application's proposed lease terms, as
// held by one editing session before an explicit save. ProposedRent is kept
// as typed so "450", "450.0" and " 450 " compare as the same number.
type Terms struct {
	MoveInDate     string                          `json:"move_in_date"`
	RentalDuration int32                           `json:"rental_duration"`
	ProposedRent   string                          `json:"proposed_rent"`
	TotalRent      float64                         `json:"total_rent"`
	Inclusions     map[string]domain.Inclusion     `json:"inclusions"`
	OccupancyType  domain.OccupancyType            `json:"occupancy_type"`
	Message        string                          `json:"message"`
}

// TermsChanged reports whether current differs from baseline after
// normalization. A nil baseline means the form has not hydrated yet, and
// nothing counts as changed.
func TermsChanged(current, baseline *Terms) bool {
	if baseline == nil {
		return false
	}
	if current == nil {
		current = &Terms{}
	}
	if normText(current.MoveInDate) != normText(baseline.MoveInDate) {
		return true
	}
	if current.RentalDuration != baseline.RentalDuration {
		return true
	}
	if !rentEqual(current.ProposedRent, baseline.ProposedRent) {
		return true
	}
	if current.TotalRent != baseline.TotalRent {
		return true
	}
	if current.OccupancyType != baseline.OccupancyType {
		return true
	}
	if normText(current.Message) != normText(baseline.Message) {
		return true
	}
	return !inclusionsEqual(current.Inclusions, baseline.Inclusions)
}

// Optional text fields treat "" and unset as the same value.
func normText(s string) string {
	return strings.TrimSpace(s)
}

// rentEqual parses both sides numerically before comparing; blank on both
// sides is equal, blank on one side differs from any number.
func rentEqual(a, b string) bool {
	av, aok := parseRent(a)
	bv, bok := parseRent(b)
	if !aok || !bok {
		return aok == bok
	}
	return av == bv
}

func parseRent(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// inclusionsEqual compares every {selected, price} pair structurally. The
// price on a deselected inclusion still participates: a stale price is
// preserved and reported as a change rather than silently normalized away.
func inclusionsEqual(a, b map[string]domain.Inclusion) bool {
	if len(a) != len(b) {
		return false
	}
	for name, ai := range a {
		bi, ok := b[name]
		if !ok {
			return false
		}
		if ai.Selected != bi.Selected || ai.Price != bi.Price {
			return false
		}
	}
	return true
}
