package domain

import "time"

// LeaseTerms are the application's proposed terms copied verbatim into a
// snapshot at creation time.
type LeaseTerms struct {
	PropertyID      int32                `json:"propertyId"`
	UnitID          *int32               `json:"unitId,omitempty"`
	ApplicationType ApplicationType      `json:"applicationType"`
	MoveInDate      string               `json:"moveInDate"`
	RentalDuration  int32                `json:"rentalDuration"`
	ProposedRent    *float64             `json:"proposedRent,omitempty"`
	TotalRent       float64              `json:"totalRent"`
	Inclusions      map[string]Inclusion `json:"inclusions"`
	OccupancyType   OccupancyType        `json:"occupancyType"`
	Message         string               `json:"message,omitempty"`
	SubmittedAt     *time.Time           `json:"submittedAt,omitempty"`
}

// ProfileSnapshot flattens the applicant's personal fields.
type ProfileSnapshot struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Username          string `json:"username"`
	PhoneNumber       string `json:"phoneNumber"`
	DateOfBirth       string `json:"dateOfBirth"`
	Gender            string `json:"gender"`
	Occupation        string `json:"occupation"`
	Bio               string `json:"bio"`
	PreferredLanguage string `json:"preferredLanguage"`
	ContactMethod     string `json:"contactMethod"`
}

// FinanceSnapshot flattens the residency/employment/finance answers.
type FinanceSnapshot struct {
	CitizenshipAnswered   bool             `json:"citizenshipAnswered"`
	IsCitizen             bool             `json:"isCitizen"`
	VisaType              string           `json:"visaType,omitempty"`
	EmploymentStatus      EmploymentStatus `json:"employmentStatus"`
	EmploymentType        string           `json:"employmentType,omitempty"`
	IncomeSource          string           `json:"incomeSource,omitempty"`
	IncomeFrequency       string           `json:"incomeFrequency,omitempty"`
	IncomeAmount          *float64         `json:"incomeAmount,omitempty"`
	StudentStatus         StudentStatus    `json:"studentStatus,omitempty"`
	FinanceSupportType    string           `json:"financeSupportType,omitempty"`
	FinanceSupportDetails string           `json:"financeSupportDetails,omitempty"`
}

// RentalSnapshot flattens the rental preferences.
type RentalSnapshot struct {
	WeeklyBudget          float64 `json:"weeklyBudget"`
	PreferredLocality     string  `json:"preferredLocality"`
	EmergencyContactName  string  `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string  `json:"emergencyContactPhone,omitempty"`
}

// SnapshotPayload is the full frozen state written at snapshot time. Once
// persisted it is never mutated.
type SnapshotPayload struct {
	Lease     LeaseTerms             `json:"lease"`
	Profile   ProfileSnapshot        `json:"profile"`
	Finance   FinanceSnapshot        `json:"finance"`
	Rental    RentalSnapshot         `json:"rental"`
	Documents map[string]DocumentRef `json:"documents"`
}

// ApplicationSnapshot is one append-only history record. The most recent
// snapshot for an application is the authoritative record of what was
// submitted.
type ApplicationSnapshot struct {
	ID            string          `json:"id"`
	ApplicationID string          `json:"application_id"`
	Payload       SnapshotPayload `json:"snapshot"`
	CreatedBy     int32           `json:"created_by"`
	Note          string          `json:"note,omitempty"`
	CreatedOn     time.Time       `json:"created_on"`
}
