package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusDraft       ApplicationStatus = "draft"
	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusApproved    ApplicationStatus = "approved"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"
)

type ApplicationType string

const (
	ApplicationTypeIndividual ApplicationType = "individual"
	ApplicationTypeGroup      ApplicationType = "group"
)

type OccupancyType string

const (
	OccupancySingle OccupancyType = "single"
	OccupancyDual   OccupancyType = "dual"
)

// Inclusion is a priced tenancy add-on. Price is preserved even when the
// inclusion is deselected, so an earlier quote survives a toggle.
type Inclusion struct {
	Selected bool    `json:"selected"`
	Price    float64 `json:"price"`
}

// InclusionNames is the closed set of add-ons an application may carry.
var InclusionNames = []string{"furniture", "bills", "cleaning", "carpark", "storage"}

func KnownInclusion(name string) bool {
	for _, n := range InclusionNames {
		if n == name {
			return true
		}
	}
	return false
}

// Application is one applicant's proposal for one unit of one property.
// Rows are mutated in place while submitted/under_review, become logically
// immutable once approved/rejected, and are never physically deleted;
// withdrawal is a status change.
type Application struct {
	ID              string               `json:"id"`
	ApplicantID     int32                `json:"applicant_id"`
	PropertyID      int32                `json:"property_id"`
	UnitID          *int32               `json:"unit_id,omitempty"`
	ApplicationType ApplicationType      `json:"application_type"`
	Status          ApplicationStatus    `json:"status"`
	Message         string               `json:"message,omitempty"`
	MoveInDate      string               `json:"move_in_date"` // yyyy-mm-dd
	RentalDuration  int32                `json:"rental_duration"` // months
	ProposedRent    *float64             `json:"proposed_rent,omitempty"`
	TotalRent       float64              `json:"total_rent"`
	Inclusions      map[string]Inclusion `json:"inclusions"`
	OccupancyType   OccupancyType        `json:"occupancy_type"`
	CreatedOn       time.Time            `json:"created_on"`
	SubmittedOn     *time.Time           `json:"submitted_on,omitempty"`
	UpdatedOn       time.Time            `json:"updated_on"`
}

// transitions lists every legal status move. Approved, rejected and
// withdrawn are terminal. Draft remains in the enum for a future
// save-as-draft action; no current write path lands on it.
var transitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusDraft:       {ApplicationStatusSubmitted},
	ApplicationStatusSubmitted:   {ApplicationStatusUnderReview, ApplicationStatusApproved, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusUnderReview: {ApplicationStatusApproved, ApplicationStatusRejected, ApplicationStatusWithdrawn},
}

func CanTransition(from, to ApplicationStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Reviewable reports whether a row can still be mutated by its applicant or
// advanced by a reviewer.
func (s ApplicationStatus) Reviewable() bool {
	return s == ApplicationStatusSubmitted || s == ApplicationStatusUnderReview
}

func (t ApplicationType) Valid() bool {
	return t == ApplicationTypeIndividual || t == ApplicationTypeGroup
}

func (o OccupancyType) Valid() bool {
	return o == OccupancySingle || o == OccupancyDual
}
