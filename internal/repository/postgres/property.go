package postgres

import (
	"context"
	"database/sql"
	"errors"

	"leasehub-backend/internal/apperrors"
	"leasehub-backend/internal/domain"
	"leasehub-backend/internal/repository"
)

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) GetProperty(ctx context.Context, id int32) (*domain.Property, error) {
	p := &domain.Property{}
	query := `SELECT id, name, suburb FROM properties WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Suburb)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("property %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *propertyRepository) GetUnit(ctx context.Context, id int32) (*domain.Unit, error) {
	u := &domain.Unit{}
	query := `SELECT id, property_id, label, base_rent FROM units WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.PropertyID, &u.Label, &u.BaseRent)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("unit %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
