package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"leasehub-backend/internal/apperrors"
	"leasehub-backend/internal/domain"
	"leasehub-backend/internal/repository"
)

// snapshotRepository is append-only: there is intentionally no UPDATE
// statement in this file. Delete exists as an administrative escape hatch.
type snapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) repository.SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Create(ctx context.Context, snap *domain.ApplicationSnapshot) error {
	payload, err := json.Marshal(snap.Payload)
	if err != nil {
		return err
	}
	snap.CreatedOn = time.Now().UTC()
	query := `INSERT INTO application_snapshots (id, application_id, payload, created_by, note, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.db.ExecContext(ctx, query, snap.ID, snap.ApplicationID, payload, snap.CreatedBy, snap.Note, snap.CreatedOn)
	return err
}

func (r *snapshotRepository) GetByID(ctx context.Context, id string) (*domain.ApplicationSnapshot, error) {
	query := `SELECT id, application_id, payload, created_by, note, created_on FROM application_snapshots WHERE id = $1`
	snap, err := scanSnapshot(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("snapshot %s not found", id)
	}
	return snap, err
}

func (r *snapshotRepository) ListByApplication(ctx context.Context, applicationID string) ([]domain.ApplicationSnapshot, error) {
	query := `SELECT id, application_id, payload, created_by, note, created_on FROM application_snapshots WHERE application_id = $1 ORDER BY created_on DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []domain.ApplicationSnapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, *snap)
	}
	return snaps, rows.Err()
}

func (r *snapshotRepository) Latest(ctx context.Context, applicationID string) (*domain.ApplicationSnapshot, error) {
	query := `SELECT id, application_id, payload, created_by, note, created_on FROM application_snapshots WHERE application_id = $1 ORDER BY created_on DESC, id DESC LIMIT 1`
	snap, err := scanSnapshot(r.db.QueryRowContext(ctx, query, applicationID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("no snapshots for application %s", applicationID)
	}
	return snap, err
}

func (r *snapshotRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM application_snapshots WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NewNotFound("snapshot %s not found", id)
	}
	return nil
}

func scanSnapshot(row rowScanner) (*domain.ApplicationSnapshot, error) {
	snap := &domain.ApplicationSnapshot{}
	var payload []byte
	err := row.Scan(&snap.ID, &snap.ApplicationID, &payload, &snap.CreatedBy, &snap.Note, &snap.CreatedOn)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &snap.Payload); err != nil {
		return nil, err
	}
	return snap, nil
}
