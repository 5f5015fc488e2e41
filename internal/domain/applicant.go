package domain

import "time"

type Applicant struct {
	ID                  int32     `json:"id"`
	Email               string    `json:"email"`
	PasswordHash        string    `json:"-"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	Username            string    `json:"username"`
	PhoneNumber         string    `json:"phone_number"`
	DateOfBirth         string    `json:"date_of_birth"` // yyyy-mm-dd
	Gender              string    `json:"gender"`
	Occupation          string    `json:"occupation"`
	Bio                 string    `json:"bio"`
	PreferredLanguage   string    `json:"preferred_language"`
	ContactMethod       string    `json:"contact_method"`
	IsAdmin             bool      `json:"is_admin"`
	IsReviewer          bool      `json:"is_reviewer"`
	CreatedOn           time.Time `json:"created_on"`
	UpdatedOn           time.Time `json:"updated_on"`
}

type EmploymentStatus string

const (
	EmploymentStatusWorking    EmploymentStatus = "working"
	EmploymentStatusNotWorking EmploymentStatus = "not_working"
)

type StudentStatus string

const (
	StudentStatusStudent    StudentStatus = "student"
	StudentStatusNotStudent StudentStatus = "not_student"
)

// ApplicationIntent is the 1:1 sub-record of an applicant's profile holding
// residency, employment, finance and rental-preference answers. Updated in
// place, never deleted.
type ApplicationIntent struct {
	ApplicantID           int32            `json:"applicant_id"`
	CitizenshipAnswered   bool             `json:"citizenship_answered"`
	IsCitizen             bool             `json:"is_citizen"`
	VisaType              string           `json:"visa_type"`
	EmploymentStatus      EmploymentStatus `json:"employment_status"`
	EmploymentType        string           `json:"employment_type"`
	IncomeSource          string           `json:"income_source"`
	IncomeFrequency       string           `json:"income_frequency"`
	IncomeAmount          *float64         `json:"income_amount,omitempty"`
	StudentStatus         StudentStatus    `json:"student_status"`
	FinanceSupportType    string           `json:"finance_support_type"`
	FinanceSupportDetails string           `json:"finance_support_details"`
	WeeklyBudget          float64          `json:"weekly_budget"`
	PreferredLocality     string           `json:"preferred_locality"`
	EmergencyContactName  string           `json:"emergency_contact_name"`
	EmergencyContactPhone string           `json:"emergency_contact_phone"`
	UpdatedOn             time.Time        `json:"updated_on"`
}

func (s EmploymentStatus) Valid() bool {
	return s == EmploymentStatusWorking || s == EmploymentStatusNotWorking
}

func (s StudentStatus) Valid() bool {
	return s == StudentStatusStudent || s == StudentStatusNotStudent
}
