package service

import (
	"context"

	"leasehub-backend/internal/completeness"
	"leasehub-backend/internal/domain"
)

// UpsertInput carries the terms of an application create-or-update. A blank
// ID means insert; a set ID means update of an owned row.
type UpsertInput struct {
	ID              string
	PropertyID      int32
	UnitID          *int32
	ApplicationType domain.ApplicationType
	MoveInDate      string
	RentalDuration  int32
	ProposedRent    *float64
	TotalRent       float64
	Inclusions      map[string]domain.Inclusion
	OccupancyType   domain.OccupancyType
	Message         string
}

type ApplicationService interface {
	Upsert(ctx context.Context, applicantID int32, in UpsertInput) (*domain.Application, error)
	Submit(ctx context.Context, applicantID int32, applicationID, note string) (*domain.Application, error)
	Withdraw(ctx context.Context, applicantID int32, applicationID string, confirm bool) (*domain.Application, error)
	ReviewerSetStatus(ctx context.Context, applicationID string, next domain.ApplicationStatus) (*domain.Application, error)
	Get(ctx context.Context, applicantID int32, applicationID string) (*domain.Application, error)
	List(ctx context.Context, applicantID int32, status string, page, pageSize int32) ([]domain.Application, int32, error)
}

type SnapshotService interface {
	Create(ctx context.Context, userID int32, applicationID, note string) (*domain.ApplicationSnapshot, error)
	List(ctx context.Context, userID int32, applicationID string) ([]domain.ApplicationSnapshot, error)
	Latest(ctx context.Context, userID int32, applicationID string) (*domain.ApplicationSnapshot, error)
	Get(ctx context.Context, userID int32, snapshotID string) (*domain.ApplicationSnapshot, error)
	Compare(ctx context.Context, userID int32, firstID, secondID string) (*domain.ApplicationSnapshot, *domain.ApplicationSnapshot, error)
	Delete(ctx context.Context, snapshotID string) error
}

// ProfileInput is the editable slice of an applicant profile plus its
// intent sub-record.
type ProfileInput struct {
	FirstName         string
	LastName          string
	Username          string
	PhoneNumber       string
	DateOfBirth       string
	Gender            string
	Occupation        string
	Bio               string
	PreferredLanguage string
	ContactMethod     string
	Intent            *domain.ApplicationIntent
}

type ProfileService interface {
	GetProfile(ctx context.Context, applicantID int32) (*domain.Applicant, *domain.ApplicationIntent, error)
	UpdateProfile(ctx context.Context, applicantID int32, in ProfileInput) (*domain.Applicant, *domain.ApplicationIntent, error)
	Completeness(ctx context.Context, applicantID int32) (completeness.Report, error)
	ListDocuments(ctx context.Context, applicantID int32) (map[string]domain.DocumentRef, error)
	RegisterDocument(ctx context.Context, applicantID int32, docType, fileName, url string) (*domain.DocumentRef, error)
	RemoveDocument(ctx context.Context, applicantID int32, docType string) error
}

type AuthService interface {
	Signup(ctx context.Context, email, password, firstName, lastName string) (*domain.Applicant, string, string, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type EmailService interface {
	SendSubmissionReceipt(ctx context.Context, email, name, propertyName string) error
	SendStatusChangeNotification(ctx context.Context, email, name string, status domain.ApplicationStatus) error
	SendIncompleteProfileReminder(ctx context.Context, email, name string, overall int) error
}
