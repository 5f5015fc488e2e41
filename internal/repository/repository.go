package repository

import (
	"context"
	"time"

	"leasehub-backend/internal/domain"
)

type ApplicantRepository interface {
	Create(ctx context.Context, applicant *domain.Applicant) error
	GetByID(ctx context.Context, id int32) (*domain.Applicant, error)
	GetByEmail(ctx context.Context, email string) (*domain.Applicant, error)
	Update(ctx context.Context, applicant *domain.Applicant) error

	// Application intent sub-record (1:1 with applicant)
	GetIntent(ctx context.Context, applicantID int32) (*domain.ApplicationIntent, error)
	UpsertIntent(ctx context.Context, intent *domain.ApplicationIntent) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	Update(ctx context.Context, app *domain.Application) error
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
	ListByApplicant(ctx context.Context, applicantID int32, status string, page, pageSize int32) ([]domain.Application, int32, error)

	// Scheduled-job queries
	ListSubmittedBefore(ctx context.Context, cutoff time.Time) ([]domain.Application, error)
	ListWithdrawnBefore(ctx context.Context, cutoff time.Time) ([]domain.Application, error)
}

type SnapshotRepository interface {
	// Create is the only write: snapshots are append-only and never updated.
	Create(ctx context.Context, snap *domain.ApplicationSnapshot) error
	GetByID(ctx context.Context, id string) (*domain.ApplicationSnapshot, error)
	ListByApplication(ctx context.Context, applicationID string) ([]domain.ApplicationSnapshot, error)
	Latest(ctx context.Context, applicationID string) (*domain.ApplicationSnapshot, error)
	Delete(ctx context.Context, id string) error
}

type DocumentRepository interface {
	Upsert(ctx context.Context, applicantID int32, doc *domain.DocumentRef) error
	Delete(ctx context.Context, applicantID int32, docType string) error
	GetRegistry(ctx context.Context, applicantID int32) (map[string]domain.DocumentRef, error)
}

// PropertyRepository reads the external property/unit catalog.
type PropertyRepository interface {
	GetProperty(ctx context.Context, id int32) (*domain.Property, error)
	GetUnit(ctx context.Context, id int32) (*domain.Unit, error)
}
