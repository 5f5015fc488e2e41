package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"leasehub-backend/internal/apperrors"
	"leasehub-backend/internal/completeness"
	"leasehub-backend/internal/domain"
	"leasehub-backend/internal/logger"
	"leasehub-backend/internal/repository"
	"leasehub-backend/internal/utils"
)

type applicationService struct {
	appRepo       repository.ApplicationRepository
	propertyRepo  repository.PropertyRepository
	applicantRepo repository.ApplicantRepository
	docRepo       repository.DocumentRepository
	snapshots     SnapshotService
	emailSvc      EmailService
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	propertyRepo repository.PropertyRepository,
	applicantRepo repository.ApplicantRepository,
	docRepo repository.DocumentRepository,
	snapshots SnapshotService,
	emailSvc EmailService,
) ApplicationService {
	return &applicationService{
		appRepo:       appRepo,
		propertyRepo:  propertyRepo,
		applicantRepo: applicantRepo,
		docRepo:       docRepo,
		snapshots:     snapshots,
		emailSvc:      emailSvc,
	}
}

// Upsert creates or updates an application behind a single entry point,
// branching once on the optional id. All validation and ownership checks
// run before any write.
func (s *applicationService) Upsert(ctx context.Context, applicantID int32, in UpsertInput) (*domain.Application, error) {
	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}

	if in.ID == "" {
		return s.insert(ctx, applicantID, in)
	}
	return s.update(ctx, applicantID, in)
}

func (s *applicationService) validateInput(ctx context.Context, in UpsertInput) error {
	if in.PropertyID == 0 {
		return apperrors.NewValidation("property id is required")
	}
	if in.ApplicationType == "" {
		return apperrors.NewValidation("application type is required")
	}
	if !in.ApplicationType.Valid() {
		return apperrors.NewValidation("unknown application type %q", in.ApplicationType)
	}
	if in.OccupancyType != "" && !in.OccupancyType.Valid() {
		return apperrors.NewValidation("unknown occupancy type %q", in.OccupancyType)
	}
	for name := range in.Inclusions {
		if !domain.KnownInclusion(name) {
			return apperrors.NewValidation("unknown inclusion %q", name)
		}
	}
	// When a proposed rent is named, the quoted total must add up.
	if in.ProposedRent != nil && in.TotalRent > 0 {
		expected := utils.TotalWithInclusions(*in.ProposedRent, in.Inclusions)
		if !utils.RentEqual(expected, in.TotalRent) {
			return apperrors.NewValidation("total rent %.2f does not match proposed rent plus selected inclusions (%.2f)", in.TotalRent, expected)
		}
	}
	if _, err := s.propertyRepo.GetProperty(ctx, in.PropertyID); err != nil {
		return err
	}
	// A unit, when set, must belong to the referenced property.
	if in.UnitID != nil {
		unit, err := s.propertyRepo.GetUnit(ctx, *in.UnitID)
		if err != nil {
			return err
		}
		if unit.PropertyID != in.PropertyID {
			return apperrors.NewValidation("unit %d does not belong to property %d", *in.UnitID, in.PropertyID)
		}
	}
	return nil
}

func (s *applicationService) insert(ctx context.Context, applicantID int32, in UpsertInput) (*domain.Application, error) {
	now := time.Now().UTC()
	app := &domain.Application{
		ID:              uuid.NewString(),
		ApplicantID:     applicantID,
		PropertyID:      in.PropertyID,
		UnitID:          in.UnitID,
		ApplicationType: in.ApplicationType,
		// First persisted write always lands as submitted; draft is
		// reserved and no current path persists it.
		Status:         domain.ApplicationStatusSubmitted,
		Message:        in.Message,
		MoveInDate:     in.MoveInDate,
		RentalDuration: in.RentalDuration,
		ProposedRent:   in.ProposedRent,
		TotalRent:      in.TotalRent,
		Inclusions:     in.Inclusions,
		OccupancyType:  in.OccupancyType,
		SubmittedOn:    &now,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, wrapStore("application insert", err)
	}
	logger.InfoContext(ctx, "application created", "application_id", app.ID, "applicant_id", applicantID, "property_id", in.PropertyID)
	return app, nil
}

func (s *applicationService) update(ctx context.Context, applicantID int32, in UpsertInput) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	// Fail closed before touching anything: never overwrite another
	// applicant's row, silently or otherwise.
	if app.ApplicantID != applicantID {
		return nil, apperrors.NewAuthorization("application %s does not belong to applicant %d", in.ID, applicantID)
	}
	if !app.Status.Reviewable() {
		return nil, apperrors.NewInvalidTransition(string(app.Status), string(app.Status))
	}

	app.PropertyID = in.PropertyID
	app.UnitID = in.UnitID
	app.ApplicationType = in.ApplicationType
	app.Message = in.Message
	app.MoveInDate = in.MoveInDate
	app.RentalDuration = in.RentalDuration
	app.ProposedRent = in.ProposedRent
	app.TotalRent = in.TotalRent
	app.Inclusions = in.Inclusions
	app.OccupancyType = in.OccupancyType

	// Status and submitted_on stay as they are; only updated_on moves.
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, wrapStore("application update", err)
	}
	logger.InfoContext(ctx, "application updated", "application_id", app.ID, "applicant_id", applicantID)
	return app, nil
}

// Submit freezes the current terms and profile into a snapshot and, only
// once that write has succeeded, advances the status. A snapshot failure
// leaves the application exactly as it was.
func (s *applicationService) Submit(ctx context.Context, applicantID int32, applicationID, note string) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID != applicantID {
		return nil, apperrors.NewAuthorization("application %s does not belong to applicant %d", applicationID, applicantID)
	}
	if !app.Status.Reviewable() {
		return nil, apperrors.NewInvalidTransition(string(app.Status), string(domain.ApplicationStatusUnderReview))
	}

	if err := s.checkProfileComplete(ctx, applicantID); err != nil {
		return nil, err
	}

	if _, err := s.snapshots.Create(ctx, applicantID, applicationID, note); err != nil {
		return nil, err
	}

	// Policy: a fresh submission moves to under_review; re-submitting while
	// already under review just refreshes the snapshot.
	if app.Status == domain.ApplicationStatusSubmitted {
		if err := s.appRepo.UpdateStatus(ctx, applicationID, domain.ApplicationStatusUnderReview); err != nil {
			return nil, wrapStore("submit status update", err)
		}
		app.Status = domain.ApplicationStatusUnderReview
	}

	s.notifySubmission(ctx, app)
	logger.InfoContext(ctx, "application submitted", "application_id", applicationID, "applicant_id", applicantID, "status", app.Status)
	return app, nil
}

func (s *applicationService) checkProfileComplete(ctx context.Context, applicantID int32) error {
	profile, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		return err
	}
	intent, err := s.applicantRepo.GetIntent(ctx, applicantID)
	if err != nil && !apperrors.IsNotFound(err) {
		return err
	}
	docs, err := s.docRepo.GetRegistry(ctx, applicantID)
	if err != nil {
		return wrapStore("document registry read", err)
	}
	report := completeness.Score(profile, intent, docs)
	if !report.IsComplete {
		return apperrors.NewValidation("profile is %d%% complete; all required sections must reach 100%% before submitting", report.Overall)
	}
	return nil
}

// Withdraw is applicant-initiated and irreversible, so it demands explicit
// confirmation.
func (s *applicationService) Withdraw(ctx context.Context, applicantID int32, applicationID string, confirm bool) (*domain.Application, error) {
	if !confirm {
		return nil, apperrors.NewValidation("withdrawal requires explicit confirmation")
	}
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID != applicantID {
		return nil, apperrors.NewAuthorization("application %s does not belong to applicant %d", applicationID, applicantID)
	}
	if !domain.CanTransition(app.Status, domain.ApplicationStatusWithdrawn) {
		return nil, apperrors.NewInvalidTransition(string(app.Status), string(domain.ApplicationStatusWithdrawn))
	}

	if err := s.appRepo.UpdateStatus(ctx, applicationID, domain.ApplicationStatusWithdrawn); err != nil {
		return nil, wrapStore("withdraw status update", err)
	}
	app.Status = domain.ApplicationStatusWithdrawn
	logger.InfoContext(ctx, "application withdrawn", "application_id", applicationID, "applicant_id", applicantID)
	return app, nil
}

// ReviewerSetStatus persists reviewer decisions made elsewhere. The state
// machine still gates every move.
func (s *applicationService) ReviewerSetStatus(ctx context.Context, applicationID string, next domain.ApplicationStatus) (*domain.Application, error) {
	switch next {
	case domain.ApplicationStatusUnderReview, domain.ApplicationStatusApproved, domain.ApplicationStatusRejected:
	default:
		return nil, apperrors.NewValidation("reviewers may only move an application to under_review, approved or rejected")
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(app.Status, next) {
		return nil, apperrors.NewInvalidTransition(string(app.Status), string(next))
	}

	if err := s.appRepo.UpdateStatus(ctx, applicationID, next); err != nil {
		return nil, wrapStore("reviewer status update", err)
	}
	app.Status = next

	if applicant, aerr := s.applicantRepo.GetByID(ctx, app.ApplicantID); aerr == nil {
		_ = s.emailSvc.SendStatusChangeNotification(ctx, applicant.Email, applicant.FirstName, next)
	}
	logger.InfoContext(ctx, "application status changed by reviewer", "application_id", applicationID, "status", next)
	return app, nil
}

func (s *applicationService) Get(ctx context.Context, applicantID int32, applicationID string) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID != applicantID {
		return nil, apperrors.NewAuthorization("application %s does not belong to applicant %d", applicationID, applicantID)
	}
	return app, nil
}

func (s *applicationService) List(ctx context.Context, applicantID int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	apps, total, err := s.appRepo.ListByApplicant(ctx, applicantID, status, page, pageSize)
	if err != nil {
		return nil, 0, wrapStore("application list", err)
	}
	return apps, total, nil
}

// Notification failures never fail the submission itself.
func (s *applicationService) notifySubmission(ctx context.Context, app *domain.Application) {
	applicant, err := s.applicantRepo.GetByID(ctx, app.ApplicantID)
	if err != nil {
		return
	}
	propertyName := ""
	if property, err := s.propertyRepo.GetProperty(ctx, app.PropertyID); err == nil {
		propertyName = property.Name
	}
	if err := s.emailSvc.SendSubmissionReceipt(ctx, applicant.Email, applicant.FirstName, propertyName); err != nil {
		logger.WarnContext(ctx, "submission receipt email failed", "application_id", app.ID, "error", err)
	}
}

// wrapStore turns raw store failures into PersistenceError while letting
// already-typed errors through untouched.
func wrapStore(op string, err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsNotFound(err) || apperrors.IsValidation(err) || apperrors.IsAuthorization(err) ||
		apperrors.IsInvalidTransition(err) || apperrors.IsPersistence(err) {
		return err
	}
	return apperrors.NewPersistence(op, err)
}
