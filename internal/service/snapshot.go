package service

import (
	"context"

	"github.com/google/uuid"

	"leasehub-backend/internal/apperrors"
	"leasehub-backend/internal/domain"
	"leasehub-backend/internal/logger"
	"leasehub-backend/internal/repository"
)

type snapshotService struct {
	snapRepo      repository.SnapshotRepository
	appRepo       repository.ApplicationRepository
	applicantRepo repository.ApplicantRepository
	docRepo       repository.DocumentRepository
}

func NewSnapshotService(
	snapRepo repository.SnapshotRepository,
	appRepo repository.ApplicationRepository,
	applicantRepo repository.ApplicantRepository,
	docRepo repository.DocumentRepository,
) SnapshotService {
	return &snapshotService{
		snapRepo:      snapRepo,
		appRepo:       appRepo,
		applicantRepo: applicantRepo,
		docRepo:       docRepo,
	}
}

// Create freezes the application's current terms together with the owner's
// profile, finance answers and document registry into one append-only
// record. Every call appends; nothing is ever rewritten.
func (s *snapshotService) Create(ctx context.Context, userID int32, applicationID, note string) (*domain.ApplicationSnapshot, error) {
	app, err := s.ownedApplication(ctx, userID, applicationID)
	if err != nil {
		return nil, err
	}

	payload, err := s.assemblePayload(ctx, app)
	if err != nil {
		return nil, err
	}

	snap := &domain.ApplicationSnapshot{
		ID:            uuid.NewString(),
		ApplicationID: applicationID,
		Payload:       *payload,
		CreatedBy:     userID,
		Note:          note,
	}
	if err := s.snapRepo.Create(ctx, snap); err != nil {
		return nil, wrapStore("snapshot insert", err)
	}
	logger.InfoContext(ctx, "snapshot created", "snapshot_id", snap.ID, "application_id", applicationID)
	return snap, nil
}

func (s *snapshotService) assemblePayload(ctx context.Context, app *domain.Application) (*domain.SnapshotPayload, error) {
	applicant, err := s.applicantRepo.GetByID(ctx, app.ApplicantID)
	if err != nil {
		return nil, err
	}
	intent, err := s.applicantRepo.GetIntent(ctx, app.ApplicantID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			return nil, err
		}
		intent = &domain.ApplicationIntent{ApplicantID: app.ApplicantID}
	}
	docs, err := s.docRepo.GetRegistry(ctx, app.ApplicantID)
	if err != nil {
		return nil, wrapStore("document registry read", err)
	}

	return &domain.SnapshotPayload{
		Lease: domain.LeaseTerms{
			PropertyID:      app.PropertyID,
			UnitID:          app.UnitID,
			ApplicationType: app.ApplicationType,
			MoveInDate:      app.MoveInDate,
			RentalDuration:  app.RentalDuration,
			ProposedRent:    app.ProposedRent,
			TotalRent:       app.TotalRent,
			Inclusions:      app.Inclusions,
			OccupancyType:   app.OccupancyType,
			Message:         app.Message,
			SubmittedAt:     app.SubmittedOn,
		},
		Profile: domain.ProfileSnapshot{
			FirstName:         applicant.FirstName,
			LastName:          applicant.LastName,
			Username:          applicant.Username,
			PhoneNumber:       applicant.PhoneNumber,
			DateOfBirth:       applicant.DateOfBirth,
			Gender:            applicant.Gender,
			Occupation:        applicant.Occupation,
			Bio:               applicant.Bio,
			PreferredLanguage: applicant.PreferredLanguage,
			ContactMethod:     applicant.ContactMethod,
		},
		Finance: domain.FinanceSnapshot{
			CitizenshipAnswered:   intent.CitizenshipAnswered,
			IsCitizen:             intent.IsCitizen,
			VisaType:              intent.VisaType,
			EmploymentStatus:      intent.EmploymentStatus,
			EmploymentType:        intent.EmploymentType,
			IncomeSource:          intent.IncomeSource,
			IncomeFrequency:       intent.IncomeFrequency,
			IncomeAmount:          intent.IncomeAmount,
			StudentStatus:         intent.StudentStatus,
			FinanceSupportType:    intent.FinanceSupportType,
			FinanceSupportDetails: intent.FinanceSupportDetails,
		},
		Rental: domain.RentalSnapshot{
			WeeklyBudget:          intent.WeeklyBudget,
			PreferredLocality:     intent.PreferredLocality,
			EmergencyContactName:  intent.EmergencyContactName,
			EmergencyContactPhone: intent.EmergencyContactPhone,
		},
		Documents: docs,
	}, nil
}

func (s *snapshotService) List(ctx context.Context, userID int32, applicationID string) ([]domain.ApplicationSnapshot, error) {
	if _, err := s.ownedApplication(ctx, userID, applicationID); err != nil {
		return nil, err
	}
	snaps, err := s.snapRepo.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, wrapStore("snapshot list", err)
	}
	return snaps, nil
}

func (s *snapshotService) Latest(ctx context.Context, userID int32, applicationID string) (*domain.ApplicationSnapshot, error) {
	if _, err := s.ownedApplication(ctx, userID, applicationID); err != nil {
		return nil, err
	}
	return s.snapRepo.Latest(ctx, applicationID)
}

func (s *snapshotService) Get(ctx context.Context, userID int32, snapshotID string) (*domain.ApplicationSnapshot, error) {
	snap, err := s.snapRepo.GetByID(ctx, snapshotID)
	if err != nil {
		return nil, err
	}
	// Ownership is inherited from the parent application.
	if _, err := s.ownedApplication(ctx, userID, snap.ApplicationID); err != nil {
		return nil, err
	}
	return snap, nil
}

// Compare returns both snapshots for a side-by-side diff. Both must belong
// to applications owned by the caller; they need not share an application.
func (s *snapshotService) Compare(ctx context.Context, userID int32, firstID, secondID string) (*domain.ApplicationSnapshot, *domain.ApplicationSnapshot, error) {
	first, err := s.Get(ctx, userID, firstID)
	if err != nil {
		return nil, nil, err
	}
	second, err := s.Get(ctx, userID, secondID)
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

// Delete exists only for the retention job; it is never exposed to
// applicants.
func (s *snapshotService) Delete(ctx context.Context, snapshotID string) error {
	if err := s.snapRepo.Delete(ctx, snapshotID); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return wrapStore("snapshot delete", err)
	}
	return nil
}

func (s *snapshotService) ownedApplication(ctx context.Context, userID int32, applicationID string) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID != userID {
		return nil, apperrors.NewAuthorization("application %s does not belong to applicant %d", applicationID, userID)
	}
	return app, nil
}
