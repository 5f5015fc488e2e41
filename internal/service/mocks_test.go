package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"leasehub-backend/internal/domain"
)

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockApplicationRepo) ListByApplicant(ctx context.Context, applicantID int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	args := m.Called(ctx, applicantID, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Application), args.Get(1).(int32), args.Error(2)
}
func (m *MockApplicationRepo) ListSubmittedBefore(ctx context.Context, cutoff time.Time) ([]domain.Application, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListWithdrawnBefore(ctx context.Context, cutoff time.Time) ([]domain.Application, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

// MockSnapshotRepo
type MockSnapshotRepo struct {
	mock.Mock
}

func (m *MockSnapshotRepo) Create(ctx context.Context, snap *domain.ApplicationSnapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}
func (m *MockSnapshotRepo) GetByID(ctx context.Context, id string) (*domain.ApplicationSnapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationSnapshot), args.Error(1)
}
func (m *MockSnapshotRepo) ListByApplication(ctx context.Context, applicationID string) ([]domain.ApplicationSnapshot, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationSnapshot), args.Error(1)
}
func (m *MockSnapshotRepo) Latest(ctx context.Context, applicationID string) (*domain.ApplicationSnapshot, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationSnapshot), args.Error(1)
}
func (m *MockSnapshotRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockApplicantRepo
type MockApplicantRepo struct {
	mock.Mock
}

func (m *MockApplicantRepo) Create(ctx context.Context, applicant *domain.Applicant) error {
	args := m.Called(ctx, applicant)
	return args.Error(0)
}
func (m *MockApplicantRepo) GetByID(ctx context.Context, id int32) (*domain.Applicant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}
func (m *MockApplicantRepo) GetByEmail(ctx context.Context, email string) (*domain.Applicant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}
func (m *MockApplicantRepo) Update(ctx context.Context, applicant *domain.Applicant) error {
	args := m.Called(ctx, applicant)
	return args.Error(0)
}
func (m *MockApplicantRepo) GetIntent(ctx context.Context, applicantID int32) (*domain.ApplicationIntent, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationIntent), args.Error(1)
}
func (m *MockApplicantRepo) UpsertIntent(ctx context.Context, intent *domain.ApplicationIntent) error {
	args := m.Called(ctx, intent)
	return args.Error(0)
}

// MockDocumentRepo
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Upsert(ctx context.Context, applicantID int32, doc *domain.DocumentRef) error {
	args := m.Called(ctx, applicantID, doc)
	return args.Error(0)
}
func (m *MockDocumentRepo) Delete(ctx context.Context, applicantID int32, docType string) error {
	args := m.Called(ctx, applicantID, docType)
	return args.Error(0)
}
func (m *MockDocumentRepo) GetRegistry(ctx context.Context, applicantID int32) (map[string]domain.DocumentRef, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.DocumentRef), args.Error(1)
}

// MockPropertyRepo
type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) GetProperty(ctx context.Context, id int32) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) GetUnit(ctx context.Context, id int32) (*domain.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

// MockSnapshotService
type MockSnapshotService struct {
	mock.Mock
}

func (m *MockSnapshotService) Create(ctx context.Context, userID int32, applicationID, note string) (*domain.ApplicationSnapshot, error) {
	args := m.Called(ctx, userID, applicationID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationSnapshot), args.Error(1)
}
func (m *MockSnapshotService) List(ctx context.Context, userID int32, applicationID string) ([]domain.ApplicationSnapshot, error) {
	args := m.Called(ctx, userID, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationSnapshot), args.Error(1)
}
func (m *MockSnapshotService) Latest(ctx context.Context, userID int32, applicationID string) (*domain.ApplicationSnapshot, error) {
	args := m.Called(ctx, userID, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationSnapshot), args.Error(1)
}
func (m *MockSnapshotService) Get(ctx context.Context, userID int32, snapshotID string) (*domain.ApplicationSnapshot, error) {
	args := m.Called(ctx, userID, snapshotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationSnapshot), args.Error(1)
}
func (m *MockSnapshotService) Compare(ctx context.Context, userID int32, firstID, secondID string) (*domain.ApplicationSnapshot, *domain.ApplicationSnapshot, error) {
	args := m.Called(ctx, userID, firstID, secondID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.ApplicationSnapshot), args.Get(1).(*domain.ApplicationSnapshot), args.Error(2)
}
func (m *MockSnapshotService) Delete(ctx context.Context, snapshotID string) error {
	args := m.Called(ctx, snapshotID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendSubmissionReceipt(ctx context.Context, email, name, propertyName string) error {
	args := m.Called(ctx, email, name, propertyName)
	return args.Error(0)
}
func (m *MockEmailService) SendStatusChangeNotification(ctx context.Context, email, name string, status domain.ApplicationStatus) error {
	args := m.Called(ctx, email, name, status)
	return args.Error(0)
}
func (m *MockEmailService) SendIncompleteProfileReminder(ctx context.Context, email, name string, overall int) error {
	args := m.Called(ctx, email, name, overall)
	return args.Error(0)
}
