package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"leasehub-backend/internal/apperrors"
	"leasehub-backend/internal/domain"
	"leasehub-backend/internal/repository"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `id, applicant_id, property_id, unit_id, application_type, status, message, move_in_date, rental_duration, proposed_rent, total_rent, inclusions, occupancy_type, created_on, submitted_on, updated_on`

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	inclusions, err := json.Marshal(app.Inclusions)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	app.CreatedOn = now
	app.UpdatedOn = now
	query := `INSERT INTO applications (id, applicant_id, property_id, unit_id, application_type, status, message, move_in_date, rental_duration, proposed_rent, total_rent, inclusions, occupancy_type, created_on, submitted_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = r.db.ExecContext(ctx, query,
		app.ID, app.ApplicantID, app.PropertyID, app.UnitID, app.ApplicationType, app.Status,
		app.Message, app.MoveInDate, app.RentalDuration, app.ProposedRent, app.TotalRent,
		inclusions, app.OccupancyType, app.CreatedOn, app.SubmittedOn, app.UpdatedOn)
	return err
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	app, err := scanApplication(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("application %s not found", id)
	}
	return app, err
}

// Update rewrites the editable term fields of a row. Status and
// submitted_on belong to the lifecycle transitions and are deliberately not
// touched here.
func (r *applicationRepository) Update(ctx context.Context, app *domain.Application) error {
	inclusions, err := json.Marshal(app.Inclusions)
	if err != nil {
		return err
	}
	app.UpdatedOn = time.Now().UTC()
	query := `UPDATE applications SET unit_id=$1, application_type=$2, message=$3, move_in_date=$4, rental_duration=$5, proposed_rent=$6, total_rent=$7, inclusions=$8, occupancy_type=$9, updated_on=$10 WHERE id=$11`
	res, err := r.db.ExecContext(ctx, query,
		app.UnitID, app.ApplicationType, app.Message, app.MoveInDate, app.RentalDuration,
		app.ProposedRent, app.TotalRent, inclusions, app.OccupancyType, app.UpdatedOn, app.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NewNotFound("application %s not found", app.ID)
	}
	return nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	query := `UPDATE applications SET status=$1, updated_on=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NewNotFound("application %s not found", id)
	}
	return nil
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query := `SELECT ` + applicationColumns + ` FROM applications WHERE applicant_id = $1`
	args := []interface{}{applicantID}
	argIdx := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	apps, err := collectApplications(rows)
	if err != nil {
		return nil, 0, err
	}
	return apps, count, nil
}

func (r *applicationRepository) ListSubmittedBefore(ctx context.Context, cutoff time.Time) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE status = $1 AND submitted_on < $2 ORDER BY submitted_on ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.ApplicationStatusSubmitted, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *applicationRepository) ListWithdrawnBefore(ctx context.Context, cutoff time.Time) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE status = $1 AND updated_on < $2 ORDER BY updated_on ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.ApplicationStatusWithdrawn, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanApplication(row rowScanner) (*domain.Application, error) {
	app := &domain.Application{}
	var inclusions []byte
	err := row.Scan(&app.ID, &app.ApplicantID, &app.PropertyID, &app.UnitID, &app.ApplicationType,
		&app.Status, &app.Message, &app.MoveInDate, &app.RentalDuration, &app.ProposedRent,
		&app.TotalRent, &inclusions, &app.OccupancyType, &app.CreatedOn, &app.SubmittedOn, &app.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if len(inclusions) > 0 {
		if err := json.Unmarshal(inclusions, &app.Inclusions); err != nil {
			return nil, err
		}
	}
	return app, nil
}

func collectApplications(rows *sql.Rows) ([]domain.Application, error) {
	var apps []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}
