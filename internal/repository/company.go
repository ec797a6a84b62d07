package repository

import (
	"context"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
)

// CompanyRepository defines read-only company lookups. Company writes belong
// to a separate subsystem.
type CompanyRepository interface {
	// GetByID retrieves a company by ID.
	GetByID(ctx context.Context, id string) (*domain.Company, error)

	// GetAll retrieves all companies.
	GetAll(ctx context.Context) ([]*domain.Company, error)
}

// OfficeRepository defines read-only office location lookups.
type OfficeRepository interface {
	// GetByCompany retrieves the office locations of a company.
	GetByCompany(ctx context.Context, companyID string) ([]*domain.Office, error)
}
