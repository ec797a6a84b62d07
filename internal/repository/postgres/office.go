package postgres

import (
	"context"
	"database/sql"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
)

// OfficeRepository is a read-only PostgreSQL implementation of
// repository.OfficeRepository.
type OfficeRepository struct {
	q Querier
}

// NewOfficeRepository creates a new PostgreSQL office repository.
func NewOfficeRepository(db *sql.DB) *OfficeRepository {
	return &OfficeRepository{q: db}
}

// GetByCompany retrieves the office locations of a company.
func (r *OfficeRepository) GetByCompany(ctx context.Context, companyID string) ([]*domain.Office, error) {
	query := `
		SELECT id, company_id, name, lat, lng
		FROM offices WHERE company_id = $1 ORDER BY name ASC
	`

	rows, err := r.q.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offices []*domain.Office
	for rows.Next() {
		var office domain.Office
		if err := rows.Scan(
			&office.ID,
			&office.CompanyID,
			&office.Name,
			&office.Latitude,
			&office.Longitude,
		); err != nil {
			return nil, err
		}
		offices = append(offices, &office)
	}
	return offices, rows.Err()
}
