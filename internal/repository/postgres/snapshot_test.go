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

var snapCols = []string{"id", "application_id", "payload", "created_by", "note", "created_on"}

func snapPayload(t *testing.T, totalRent float64) []byte {
	t.Helper()
	b, err := json.Marshal(domain.SnapshotPayload{
		Lease: domain.LeaseTerms{PropertyID: 10, TotalRent: totalRent},
	})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSnapshotRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	snap := &domain.ApplicationSnapshot{
		ID:            "snap-1",
		ApplicationID: "app-1",
		Payload:       domain.SnapshotPayload{Lease: domain.LeaseTerms{PropertyID: 10, TotalRent: 480}},
		CreatedBy:     1,
		Note:          "first pass",
	}
	payload, _ := json.Marshal(snap.Payload)

	mock.ExpectExec("INSERT INTO application_snapshots").
		WithArgs(snap.ID, snap.ApplicationID, payload, snap.CreatedBy, snap.Note, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(ctx, snap)
	assert.NoError(t, err)
	assert.False(t, snap.CreatedOn.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_ListByApplication_NewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewSnapshotRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(snapCols).
		AddRow("snap-3", "app-1", snapPayload(t, 520), int32(1), "", now).
		AddRow("snap-2", "app-1", snapPayload(t, 500), int32(1), "", now.Add(-time.Hour)).
		AddRow("snap-1", "app-1", snapPayload(t, 480), int32(1), "", now.Add(-2*time.Hour))
	mock.ExpectQuery("SELECT (.+) FROM application_snapshots WHERE application_id (.+) ORDER BY created_on DESC, id DESC").
		WithArgs("app-1").
		WillReturnRows(rows)

	snaps, err := repo.ListByApplication(ctx, "app-1")
	assert.NoError(t, err)
	assert.Len(t, snaps, 3)
	assert.Equal(t, "snap-3", snaps[0].ID)
	assert.Equal(t, 520.0, snaps[0].Payload.Lease.TotalRent)
	assert.Equal(t, "snap-1", snaps[2].ID)
}

func TestSnapshotRepository_Latest(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(snapCols).
			AddRow("snap-9", "app-1", snapPayload(t, 520), int32(1), "latest", time.Now().UTC())
		mock.ExpectQuery("SELECT (.+) FROM application_snapshots WHERE application_id (.+) LIMIT 1").
			WithArgs("app-1").
			WillReturnRows(rows)

		snap, err := repo.Latest(ctx, "app-1")
		assert.NoError(t, err)
		assert.Equal(t, "snap-9", snap.ID)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM application_snapshots WHERE application_id (.+) LIMIT 1").
			WithArgs("app-2").
			WillReturnRows(sqlmock.NewRows(snapCols))

		_, err := repo.Latest(ctx, "app-2")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestSnapshotRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM application_snapshots").
			WithArgs("snap-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "snap-1"))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM application_snapshots").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.True(t, apperrors.IsNotFound(repo.Delete(ctx, "missing")))
	})
}
