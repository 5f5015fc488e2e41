package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"leasehub-backend/internal/apperrors"
	"leasehub-backend/internal/domain"
)

var appCols = []string{"id", "applicant_id", "property_id", "unit_id", "application_type", "status", "message", "move_in_date", "rental_duration", "proposed_rent", "total_rent", "inclusions", "occupancy_type", "created_on", "submitted_on", "updated_on"}

func TestApplicationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	app := &domain.Application{
		ID:              "app-1",
		ApplicantID:     1,
		PropertyID:      10,
		ApplicationType: domain.ApplicationTypeIndividual,
		Status:          domain.ApplicationStatusSubmitted,
		MoveInDate:      "2026-10-01",
		RentalDuration:  12,
		TotalRent:       480,
		Inclusions:      map[string]domain.Inclusion{"furniture": {Selected: true, Price: 30}},
		OccupancyType:   domain.OccupancySingle,
	}
	inclusions, _ := json.Marshal(app.Inclusions)

	mock.ExpectExec("INSERT INTO applications").
		WithArgs(app.ID, app.ApplicantID, app.PropertyID, nil, app.ApplicationType, app.Status,
			app.Message, app.MoveInDate, app.RentalDuration, nil, app.TotalRent,
			inclusions, app.OccupancyType, sqlmock.AnyArg(), nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(ctx, app)
	assert.NoError(t, err)
	assert.False(t, app.CreatedOn.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("Found", func(t *testing.T) {
		inclusions, _ := json.Marshal(map[string]domain.Inclusion{"bills": {Selected: true, Price: 50}})
		rows := sqlmock.NewRows(appCols).
			AddRow("app-1", int32(1), int32(10), nil, "individual", "under_review", "", "2026-10-01", int32(12), nil, 480.0, inclusions, "single", now, now, now)
		mock.ExpectQuery("SELECT (.+) FROM applications WHERE id").
			WithArgs("app-1").
			WillReturnRows(rows)

		app, err := repo.GetByID(ctx, "app-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusUnderReview, app.Status)
		assert.Equal(t, 50.0, app.Inclusions["bills"].Price)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM applications WHERE id").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(appCols))

		_, err := repo.GetByID(ctx, "missing")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestApplicationRepository_Update_LeavesStatusColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	app := &domain.Application{
		ID:              "app-1",
		ApplicationType: domain.ApplicationTypeIndividual,
		MoveInDate:      "2026-11-01",
		RentalDuration:  6,
		TotalRent:       500,
		OccupancyType:   domain.OccupancyDual,
	}
	inclusions, _ := json.Marshal(app.Inclusions)

	// The UPDATE statement must not name status or submitted_on.
	mock.ExpectExec(`UPDATE applications SET unit_id=\$1, application_type=\$2, message=\$3, move_in_date=\$4, rental_duration=\$5, proposed_rent=\$6, total_rent=\$7, inclusions=\$8, occupancy_type=\$9, updated_on=\$10 WHERE id=\$11`).
		WithArgs(nil, app.ApplicationType, app.Message, app.MoveInDate, app.RentalDuration,
			nil, app.TotalRent, inclusions, app.OccupancyType, sqlmock.AnyArg(), app.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(ctx, app)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE applications SET status").
			WithArgs(domain.ApplicationStatusWithdrawn, sqlmock.AnyArg(), "app-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, "app-1", domain.ApplicationStatusWithdrawn)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE applications SET status").
			WithArgs(domain.ApplicationStatusWithdrawn, sqlmock.AnyArg(), "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, "missing", domain.ApplicationStatusWithdrawn)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestApplicationRepository_ListByApplicant(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()
	inclusions, _ := json.Marshal(map[string]domain.Inclusion{})

	mock.ExpectQuery("SELECT count").
		WithArgs(int32(1), "submitted").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int32(2)))
	rows := sqlmock.NewRows(appCols).
		AddRow("app-2", int32(1), int32(10), nil, "individual", "submitted", "", "2026-10-01", int32(12), nil, 480.0, inclusions, "single", now, now, now).
		AddRow("app-1", int32(1), int32(11), nil, "group", "submitted", "", "2026-09-01", int32(6), nil, 520.0, inclusions, "dual", now.Add(-time.Hour), now, now)
	mock.ExpectQuery("SELECT (.+) FROM applications WHERE applicant_id (.+) ORDER BY created_on DESC").
		WithArgs(int32(1), "submitted", int32(20), int32(0)).
		WillReturnRows(rows)

	apps, total, err := repo.ListByApplicant(ctx, 1, "submitted", 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), total)
	assert.Len(t, apps, 2)
	assert.Equal(t, "app-2", apps[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
