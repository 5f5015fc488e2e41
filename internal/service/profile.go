package service

import (
	"context"
	"time"

	"leasehub-backend/internal/apperrors"
	"leasehub-backend/internal/completeness"
	"leasehub-backend/internal/domain"
	"leasehub-backend/internal/logger"
	"leasehub-backend/internal/repository"
)

type profileService struct {
	applicantRepo repository.ApplicantRepository
	docRepo       repository.DocumentRepository
}

func NewProfileService(applicantRepo repository.ApplicantRepository, docRepo repository.DocumentRepository) ProfileService {
	return &profileService{applicantRepo: applicantRepo, docRepo: docRepo}
}

func (s *profileService) GetProfile(ctx context.Context, applicantID int32) (*domain.Applicant, *domain.ApplicationIntent, error) {
	applicant, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, nil, err
	}
	intent, err := s.applicantRepo.GetIntent(ctx, applicantID)
	if err != nil {
		// A profile without an intent row is just an empty intent.
		if !apperrors.IsNotFound(err) {
			return nil, nil, err
		}
		intent = &domain.ApplicationIntent{ApplicantID: applicantID}
	}
	return applicant, intent, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, applicantID int32, in ProfileInput) (*domain.Applicant, *domain.ApplicationIntent, error) {
	if in.DateOfBirth != "" {
		if _, err := time.Parse("2006-01-02", in.DateOfBirth); err != nil {
			return nil, nil, apperrors.NewValidation("date of birth must be yyyy-mm-dd")
		}
	}
	if in.Intent != nil {
		if in.Intent.EmploymentStatus != "" && !in.Intent.EmploymentStatus.Valid() {
			return nil, nil, apperrors.NewValidation("unknown employment status %q", in.Intent.EmploymentStatus)
		}
		if in.Intent.StudentStatus != "" && !in.Intent.StudentStatus.Valid() {
			return nil, nil, apperrors.NewValidation("unknown student status %q", in.Intent.StudentStatus)
		}
		if in.Intent.WeeklyBudget < 0 {
			return nil, nil, apperrors.NewValidation("weekly budget cannot be negative")
		}
	}

	applicant, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, nil, err
	}

	applicant.FirstName = in.FirstName
	applicant.LastName = in.LastName
	applicant.Username = in.Username
	applicant.PhoneNumber = in.PhoneNumber
	applicant.DateOfBirth = in.DateOfBirth
	applicant.Gender = in.Gender
	applicant.Occupation = in.Occupation
	applicant.Bio = in.Bio
	applicant.PreferredLanguage = in.PreferredLanguage
	applicant.ContactMethod = in.ContactMethod

	if err := s.applicantRepo.Update(ctx, applicant); err != nil {
		return nil, nil, wrapStore("profile update", err)
	}

	intent := in.Intent
	if intent != nil {
		intent.ApplicantID = applicantID
		if err := s.applicantRepo.UpsertIntent(ctx, intent); err != nil {
			return nil, nil, wrapStore("intent upsert", err)
		}
	} else {
		intent, err = s.applicantRepo.GetIntent(ctx, applicantID)
		if err != nil {
			if !apperrors.IsNotFound(err) {
				return nil, nil, err
			}
			intent = &domain.ApplicationIntent{ApplicantID: applicantID}
		}
	}

	logger.InfoContext(ctx, "profile updated", "applicant_id", applicantID)
	return applicant, intent, nil
}

func (s *profileService) Completeness(ctx context.Context, applicantID int32) (completeness.Report, error) {
	applicant, intent, err := s.GetProfile(ctx, applicantID)
	if err != nil {
		return completeness.Report{}, err
	}
	docs, err := s.docRepo.GetRegistry(ctx, applicantID)
	if err != nil {
		return completeness.Report{}, wrapStore("document registry read", err)
	}
	return completeness.Score(applicant, intent, docs), nil
}

func (s *profileService) ListDocuments(ctx context.Context, applicantID int32) (map[string]domain.DocumentRef, error) {
	docs, err := s.docRepo.GetRegistry(ctx, applicantID)
	if err != nil {
		return nil, wrapStore("document registry read", err)
	}
	return docs, nil
}

// RegisterDocument records an already-uploaded file against a known slot.
// A second registration of the same type replaces the first.
func (s *profileService) RegisterDocument(ctx context.Context, applicantID int32, docType, fileName, url string) (*domain.DocumentRef, error) {
	if !domain.KnownDocumentType(docType) {
		return nil, apperrors.NewValidation("unknown document type %q", docType)
	}
	if fileName == "" || url == "" {
		return nil, apperrors.NewValidation("file name and url are required")
	}
	doc := &domain.DocumentRef{
		Type:       docType,
		FileName:   fileName,
		URL:        url,
		UploadedOn: time.Now().UTC(),
	}
	if err := s.docRepo.Upsert(ctx, applicantID, doc); err != nil {
		return nil, wrapStore("document upsert", err)
	}
	logger.InfoContext(ctx, "document registered", "applicant_id", applicantID, "doc_type", docType)
	return doc, nil
}

func (s *profileService) RemoveDocument(ctx context.Context, applicantID int32, docType string) error {
	if !domain.KnownDocumentType(docType) {
		return apperrors.NewValidation("unknown document type %q", docType)
	}
	if err := s.docRepo.Delete(ctx, applicantID, docType); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return wrapStore("document delete", err)
	}
	return nil
}
