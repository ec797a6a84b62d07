package repository

import (
	"context"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
)

// RouteRepository defines the persistence operations for routes. Every write
// replaces the whole stop sequence; there is no partial-stop patch.
type RouteRepository interface {
	// Create persists a new route.
	Create(ctx context.Context, route *domain.Route) error

	// GetByID retrieves a route by ID.
	GetByID(ctx context.Context, id string) (*domain.Route, error)

	// List retrieves routes ordered by creation time descending.
	// An empty companyID returns routes for all companies.
	List(ctx context.Context, companyID string) ([]*domain.Route, error)

	// Update replaces the stop sequence and distance of an existing route.
	Update(ctx context.Context, route *domain.Route) error

	// Delete removes a route.
	Delete(ctx context.Context, id string) error
}
