package utils

import (
	"math"

	"leasehub-backend/internal/domain"
)

// RentBreakdown itemizes the weekly cost of a proposal.
type RentBreakdown struct {
	BaseRent       float64
	InclusionsCost float64
	Total          float64
}

// TotalWithInclusions returns the weekly total for a base rent plus every
// selected inclusion. Deselected inclusions keep their price but contribute
// nothing.
func TotalWithInclusions(baseRent float64, inclusions map[string]domain.Inclusion) float64 {
	return BreakdownRent(baseRent, inclusions).Total
}

// BreakdownRent computes the full itemization behind TotalWithInclusions.
func BreakdownRent(baseRent float64, inclusions map[string]domain.Inclusion) RentBreakdown {
	var extras float64
	for _, inc := range inclusions {
		if inc.Selected {
			extras += inc.Price
		}
	}
	return RentBreakdown{
		BaseRent:       baseRent,
		InclusionsCost: extras,
		Total:          baseRent + extras,
	}
}

// RentEqual compares two dollar amounts at cent precision.
func RentEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}
