package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/repository"
)

// CompanyRepository is a read-only PostgreSQL implementation of
// repository.CompanyRepository. Companies are written by the company
// administration subsystem, never here.
type CompanyRepository struct {
	q Querier
}

// NewCompanyRepository creates a new PostgreSQL company repository.
func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{q: db}
}

// GetByID retrieves a company by ID.
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	query := `SELECT id, name, created_at FROM companies WHERE id = $1`

	var company domain.Company
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&company.ID,
		&company.Name,
		&company.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// GetAll retrieves all companies.
func (r *CompanyRepository) GetAll(ctx context.Context) ([]*domain.Company, error) {
	query := `SELECT id, name, created_at FROM companies ORDER BY name ASC`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*domain.Company
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(&company.ID, &company.Name, &company.CreatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, &company)
	}
	return companies, rows.Err()
}
