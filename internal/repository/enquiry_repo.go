package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/BossEnterprises/chataru_api/internal/models"
)

// EnquiryRepository handles data access for contact enquiries.
type EnquiryRepository struct {
	db *sqlx.DB
}

// NewEnquiryRepository creates a new EnquiryRepository.
func NewEnquiryRepository(db *sqlx.DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

// Insert stores a new enquiry. The generated id is not returned; callers
// only need success or failure.
func (r *EnquiryRepository) Insert(ctx context.Context, e *models.Enquiry) error {
	const q = `
        INSERT INTO enquiries (name, email, phone, message, source_page)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, q, e.Name, e.Email, e.Phone, e.Message, e.SourcePage)
	return err
}

// List returns all enquiries, newest first.
func (r *EnquiryRepository) List(ctx context.Context) ([]models.Enquiry, error) {
	const q = `
        SELECT id, name, email, phone, message, source_page, created_at
        FROM enquiries
        ORDER BY created_at DESC, id DESC`

	enquiries := []models.Enquiry{}
	if err := r.db.SelectContext(ctx, &enquiries, q); err != nil {
		return nil, err
	}
	return enquiries, nil
}
