package postgres

import (
	"database/sql"

	"leasehub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ApplicantRepository
	repository.ApplicationRepository
	repository.SnapshotRepository
	repository.DocumentRepository
	repository.PropertyRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ApplicantRepository:   NewApplicantRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		SnapshotRepository:    NewSnapshotRepository(db),
		DocumentRepository:    NewDocumentRepository(db),
		PropertyRepository:    NewPropertyRepository(db),
	}
}
