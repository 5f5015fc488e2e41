package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"leasehub-backend/internal/apperrors"
	"leasehub-backend/internal/domain"
	"leasehub-backend/internal/repository"
)

type applicantRepository struct {
	db *sql.DB
}

func NewApplicantRepository(db *sql.DB) repository.ApplicantRepository {
	return &applicantRepository{db: db}
}

const applicantColumns = `id, email, password_hash, first_name, last_name, username, phone_number, date_of_birth, gender, occupation, bio, preferred_language, contact_method, is_admin, is_reviewer, created_on, updated_on`

func (r *applicantRepository) Create(ctx context.Context, a *domain.Applicant) error {
	now := time.Now().UTC()
	a.CreatedOn = now
	a.UpdatedOn = now
	query := `INSERT INTO applicants (email, password_hash, first_name, last_name, username, phone_number, date_of_birth, gender, occupation, bio, preferred_language, contact_method, is_admin, is_reviewer, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		a.Email, a.PasswordHash, a.FirstName, a.LastName, a.Username, a.PhoneNumber,
		a.DateOfBirth, a.Gender, a.Occupation, a.Bio, a.PreferredLanguage, a.ContactMethod,
		a.IsAdmin, a.IsReviewer, a.CreatedOn, a.UpdatedOn).Scan(&a.ID)
}

func (r *applicantRepository) GetByID(ctx context.Context, id int32) (*domain.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE id = $1`
	a, err := scanApplicant(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("applicant %d not found", id)
	}
	return a, err
}

func (r *applicantRepository) GetByEmail(ctx context.Context, email string) (*domain.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE email = $1`
	a, err := scanApplicant(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("applicant with email %s not found", email)
	}
	return a, err
}

func (r *applicantRepository) Update(ctx context.Context, a *domain.Applicant) error {
	a.UpdatedOn = time.Now().UTC()
	query := `UPDATE applicants SET first_name=$1, last_name=$2, username=$3, phone_number=$4, date_of_birth=$5, gender=$6, occupation=$7, bio=$8, preferred_language=$9, contact_method=$10, updated_on=$11 WHERE id=$12`
	_, err := r.db.ExecContext(ctx, query,
		a.FirstName, a.LastName, a.Username, a.PhoneNumber, a.DateOfBirth, a.Gender,
		a.Occupation, a.Bio, a.PreferredLanguage, a.ContactMethod, a.UpdatedOn, a.ID)
	return err
}

func (r *applicantRepository) GetIntent(ctx context.Context, applicantID int32) (*domain.ApplicationIntent, error) {
	intent := &domain.ApplicationIntent{}
	query := `SELECT applicant_id, citizenship_answered, is_citizen, visa_type, employment_status, employment_type, income_source, income_frequency, income_amount, student_status, finance_support_type, finance_support_details, weekly_budget, preferred_locality, emergency_contact_name, emergency_contact_phone, updated_on
	          FROM application_intents WHERE applicant_id = $1`
	err := r.db.QueryRowContext(ctx, query, applicantID).Scan(
		&intent.ApplicantID, &intent.CitizenshipAnswered, &intent.IsCitizen, &intent.VisaType,
		&intent.EmploymentStatus, &intent.EmploymentType, &intent.IncomeSource, &intent.IncomeFrequency,
		&intent.IncomeAmount, &intent.StudentStatus, &intent.FinanceSupportType, &intent.FinanceSupportDetails,
		&intent.WeeklyBudget, &intent.PreferredLocality, &intent.EmergencyContactName,
		&intent.EmergencyContactPhone, &intent.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("intent for applicant %d not found", applicantID)
	}
	if err != nil {
		return nil, err
	}
	return intent, nil
}

func (r *applicantRepository) UpsertIntent(ctx context.Context, intent *domain.ApplicationIntent) error {
	intent.UpdatedOn = time.Now().UTC()
	query := `INSERT INTO application_intents (applicant_id, citizenship_answered, is_citizen, visa_type, employment_status, employment_type, income_source, income_frequency, income_amount, student_status, finance_support_type, finance_support_details, weekly_budget, preferred_locality, emergency_contact_name, emergency_contact_phone, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	          ON CONFLICT (applicant_id) DO UPDATE SET
	            citizenship_answered=EXCLUDED.citizenship_answered, is_citizen=EXCLUDED.is_citizen,
	            visa_type=EXCLUDED.visa_type, employment_status=EXCLUDED.employment_status,
	            employment_type=EXCLUDED.employment_type, income_source=EXCLUDED.income_source,
	            income_frequency=EXCLUDED.income_frequency, income_amount=EXCLUDED.income_amount,
	            student_status=EXCLUDED.student_status, finance_support_type=EXCLUDED.finance_support_type,
	            finance_support_details=EXCLUDED.finance_support_details, weekly_budget=EXCLUDED.weekly_budget,
	            preferred_locality=EXCLUDED.preferred_locality, emergency_contact_name=EXCLUDED.emergency_contact_name,
	            emergency_contact_phone=EXCLUDED.emergency_contact_phone, updated_on=EXCLUDED.updated_on`
	_, err := r.db.ExecContext(ctx, query,
		intent.ApplicantID, intent.CitizenshipAnswered, intent.IsCitizen, intent.VisaType,
		intent.EmploymentStatus, intent.EmploymentType, intent.IncomeSource, intent.IncomeFrequency,
		intent.IncomeAmount, intent.StudentStatus, intent.FinanceSupportType, intent.FinanceSupportDetails,
		intent.WeeklyBudget, intent.PreferredLocality, intent.EmergencyContactName,
		intent.EmergencyContactPhone, intent.UpdatedOn)
	return err
}

func scanApplicant(row rowScanner) (*domain.Applicant, error) {
	a := &domain.Applicant{}
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.FirstName, &a.LastName, &a.Username,
		&a.PhoneNumber, &a.DateOfBirth, &a.Gender, &a.Occupation, &a.Bio, &a.PreferredLanguage,
		&a.ContactMethod, &a.IsAdmin, &a.IsReviewer, &a.CreatedOn, &a.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return a, nil
}
