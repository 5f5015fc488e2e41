package formstate

import (
	"testing"

	"leasehub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func baseTerms() *Terms {
	return &Terms{
		MoveInDate:     "2026-10-01",
		RentalDuration: 12,
		ProposedRent:   "450",
		TotalRent:      480,
		Inclusions: map[string]domain.Inclusion{
			"furniture": {Selected: true, Price: 20},
			"bills":     {Selected: false, Price: 35},
		},
		OccupancyType: domain.OccupancySingle,
		Message:       "Happy to sign 12 months.",
	}
}

func TestTermsChanged_NilBaseline(t *testing.T) {
	assert.False(t, TermsChanged(baseTerms(), nil), "no baseline means no changes, ever")
	assert.False(t, TermsChanged(nil, nil))
	assert.False(t, TermsChanged(&Terms{}, nil))
}

func TestTermsChanged_NormalizedEquality(t *testing.T) {
	t.Run("Identical terms", func(t *testing.T) {
		assert.False(t, TermsChanged(baseTerms(), baseTerms()))
	})

	t.Run("Empty string equals unset for optional text", func(t *testing.T) {
		current := baseTerms()
		baseline := baseTerms()
		current.Message = ""
		baseline.Message = "   "
		assert.False(t, TermsChanged(current, baseline))

		current.MoveInDate = ""
		baseline.MoveInDate = ""
		assert.False(t, TermsChanged(current, baseline))
	})

	t.Run("Rent compared numerically", func(t *testing.T) {
		current := baseTerms()
		current.ProposedRent = " 450.0 "
		assert.False(t, TermsChanged(current, baseTerms()))

		current.ProposedRent = "451"
		assert.True(t, TermsChanged(current, baseTerms()))

		current.ProposedRent = ""
		assert.True(t, TermsChanged(current, baseTerms()), "blank vs number is a change")
	})

	t.Run("Blank rent on both sides", func(t *testing.T) {
		current := baseTerms()
		baseline := baseTerms()
		current.ProposedRent = ""
		baseline.ProposedRent = " "
		assert.False(t, TermsChanged(current, baseline))
	})
}

func TestTermsChanged_FieldDifferences(t *testing.T) {
	baseline := baseTerms()

	tests := []struct {
		name   string
		mutate func(*Terms)
	}{
		{"Move-in date", func(c *Terms) { c.MoveInDate = "2026-11-01" }},
		{"Duration", func(c *Terms) { c.RentalDuration = 6 }},
		{"Total rent", func(c *Terms) { c.TotalRent = 500 }},
		{"Occupancy", func(c *Terms) { c.OccupancyType = domain.OccupancyDual }},
		{"Message", func(c *Terms) { c.Message = "Different note" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := baseTerms()
			tt.mutate(current)
			assert.True(t, TermsChanged(current, baseline))
		})
	}
}

func TestTermsChanged_Inclusions(t *testing.T) {
	t.Run("Selected flip", func(t *testing.T) {
		current := baseTerms()
		current.Inclusions["bills"] = domain.Inclusion{Selected: true, Price: 35}
		assert.True(t, TermsChanged(current, baseTerms()))
	})

	t.Run("Price change on deselected inclusion still counts", func(t *testing.T) {
		current := baseTerms()
		current.Inclusions["bills"] = domain.Inclusion{Selected: false, Price: 40}
		assert.True(t, TermsChanged(current, baseTerms()))
	})

	t.Run("Added inclusion", func(t *testing.T) {
		current := baseTerms()
		current.Inclusions["carpark"] = domain.Inclusion{Selected: true, Price: 15}
		assert.True(t, TermsChanged(current, baseTerms()))
	})

	t.Run("Removed inclusion", func(t *testing.T) {
		current := baseTerms()
		delete(current.Inclusions, "bills")
		assert.True(t, TermsChanged(current, baseTerms()))
	})

	t.Run("Nil and empty maps equal", func(t *testing.T) {
		current := baseTerms()
		baseline := baseTerms()
		current.Inclusions = nil
		baseline.Inclusions = map[string]domain.Inclusion{}
		assert.False(t, TermsChanged(current, baseline))
	})
}
