package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"leasehub-backend/internal/apperrors"
	"leasehub-backend/internal/domain"
)

var validate = validator.New()

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewValidation("malformed request body: %v", err)
	}
	if err := validate.Struct(dst); err != nil {
		return apperrors.NewValidation("invalid request: %v", err)
	}
	return nil
}

type signupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type profileRequest struct {
	FirstName         string        `json:"first_name"`
	LastName          string        `json:"last_name"`
	Username          string        `json:"username"`
	PhoneNumber       string        `json:"phone_number"`
	DateOfBirth       string        `json:"date_of_birth"`
	Gender            string        `json:"gender"`
	Occupation        string        `json:"occupation"`
	Bio               string        `json:"bio"`
	PreferredLanguage string        `json:"preferred_language"`
	ContactMethod     string        `json:"contact_method"`
	Intent            *intentInput  `json:"intent,omitempty"`
}

type intentInput struct {
	CitizenshipAnswered   bool     `json:"citizenship_answered"`
	IsCitizen             bool     `json:"is_citizen"`
	VisaType              string   `json:"visa_type"`
	EmploymentStatus      string   `json:"employment_status" validate:"omitempty,oneof=working not_working"`
	EmploymentType        string   `json:"employment_type"`
	IncomeSource          string   `json:"income_source"`
	IncomeFrequency       string   `json:"income_frequency"`
	IncomeAmount          *float64 `json:"income_amount,omitempty"`
	StudentStatus         string   `json:"student_status" validate:"omitempty,oneof=student not_student"`
	FinanceSupportType    string   `json:"finance_support_type"`
	FinanceSupportDetails string   `json:"finance_support_details"`
	WeeklyBudget          float64  `json:"weekly_budget" validate:"gte=0"`
	PreferredLocality     string   `json:"preferred_locality"`
	EmergencyContactName  string   `json:"emergency_contact_name"`
	EmergencyContactPhone string   `json:"emergency_contact_phone"`
}

func (in *intentInput) toDomain() *domain.ApplicationIntent {
	if in == nil {
		return nil
	}
	return &domain.ApplicationIntent{
		CitizenshipAnswered:   in.CitizenshipAnswered,
		IsCitizen:             in.IsCitizen,
		VisaType:              in.VisaType,
		EmploymentStatus:      domain.EmploymentStatus(in.EmploymentStatus),
		EmploymentType:        in.EmploymentType,
		IncomeSource:          in.IncomeSource,
		IncomeFrequency:       in.IncomeFrequency,
		IncomeAmount:          in.IncomeAmount,
		StudentStatus:         domain.StudentStatus(in.StudentStatus),
		FinanceSupportType:    in.FinanceSupportType,
		FinanceSupportDetails: in.FinanceSupportDetails,
		WeeklyBudget:          in.WeeklyBudget,
		PreferredLocality:     in.PreferredLocality,
		EmergencyContactName:  in.EmergencyContactName,
		EmergencyContactPhone: in.EmergencyContactPhone,
	}
}

type documentRequest struct {
	FileName string `json:"file_name" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
}

type applicationRequest struct {
	ID              string                      `json:"id,omitempty"`
	PropertyID      int32                       `json:"property_id" validate:"required"`
	UnitID          *int32                      `json:"unit_id,omitempty"`
	ApplicationType string                      `json:"application_type" validate:"required,oneof=individual group"`
	MoveInDate      string                      `json:"move_in_date"`
	RentalDuration  int32                       `json:"rental_duration" validate:"gte=0"`
	ProposedRent    *float64                    `json:"proposed_rent,omitempty"`
	TotalRent       float64                     `json:"total_rent" validate:"gte=0"`
	Inclusions      map[string]domain.Inclusion `json:"inclusions"`
	OccupancyType   string                      `json:"occupancy_type" validate:"omitempty,oneof=single dual"`
	Message         string                      `json:"message"`
}

type submitRequest struct {
	Note string `json:"note"`
}

type withdrawRequest struct {
	Confirm bool `json:"confirm"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=under_review approved rejected"`
}

type listResponse struct {
	Items any   `json:"items"`
	Total int32 `json:"total"`
	Page  int32 `json:"page"`
}
