package postgres

import (
	"context"
	"database/sql"
	"time"

	"leasehub-backend/internal/domain"
	"leasehub-backend/internal/repository"
)

type documentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Upsert(ctx context.Context, applicantID int32, doc *domain.DocumentRef) error {
	doc.UploadedOn = time.Now().UTC()
	query := `INSERT INTO applicant_documents (applicant_id, doc_type, file_name, url, uploaded_on)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (applicant_id, doc_type) DO UPDATE SET
	            file_name=EXCLUDED.file_name, url=EXCLUDED.url, uploaded_on=EXCLUDED.uploaded_on`
	_, err := r.db.ExecContext(ctx, query, applicantID, doc.Type, doc.FileName, doc.URL, doc.UploadedOn)
	return err
}

func (r *documentRepository) Delete(ctx context.Context, applicantID int32, docType string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM applicant_documents WHERE applicant_id = $1 AND doc_type = $2`, applicantID, docType)
	return err
}

// GetRegistry returns the applicant's document map keyed by type; an
// applicant with no documents gets an empty registry, not an error.
func (r *documentRepository) GetRegistry(ctx context.Context, applicantID int32) (map[string]domain.DocumentRef, error) {
	query := `SELECT doc_type, file_name, url, uploaded_on FROM applicant_documents WHERE applicant_id = $1`
	rows, err := r.db.QueryContext(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registry := make(map[string]domain.DocumentRef)
	for rows.Next() {
		var doc domain.DocumentRef
		if err := rows.Scan(&doc.Type, &doc.FileName, &doc.URL, &doc.UploadedOn); err != nil {
			return nil, err
		}
		registry[doc.Type] = doc
	}
	return registry, rows.Err()
}
