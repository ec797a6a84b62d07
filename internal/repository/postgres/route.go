package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/repository"
)

// RouteRepository is a PostgreSQL implementation of repository.RouteRepository.
//
// Via stops are stored as a JSONB array so the operator's stop order
// round-trips losslessly.
type RouteRepository struct {
	q Querier
}

// NewRouteRepository creates a new PostgreSQL route repository.
func NewRouteRepository(db *sql.DB) *RouteRepository {
	return &RouteRepository{q: db}
}

// NewRouteRepositoryWithTx creates a route repository using a transaction.
func NewRouteRepositoryWithTx(tx *sql.Tx) *RouteRepository {
	return &RouteRepository{q: tx}
}

const routeColumns = `id, company_id, creator_id,
	start_name, start_lat, start_lng, start_kind,
	via_stops,
	end_name, end_lat, end_lng, end_kind,
	distance_km, distance_resolved, created_at`

// Create persists a new route.
func (r *RouteRepository) Create(ctx context.Context, route *domain.Route) error {
	query := `
		INSERT INTO routes (` + routeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	viaJSON, err := marshalVia(route.Via)
	if err != nil {
		return err
	}

	_, err = r.q.ExecContext(ctx, query,
		route.ID,
		route.CompanyID,
		route.CreatorID,
		route.Start.Name,
		route.Start.Latitude,
		route.Start.Longitude,
		route.Start.Kind,
		viaJSON,
		route.End.Name,
		route.End.Latitude,
		route.End.Longitude,
		route.End.Kind,
		route.TotalDistanceKm,
		route.DistanceResolved,
		route.CreatedAt,
	)

	return err
}

// GetByID retrieves a route by ID.
func (r *RouteRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = $1`

	route, err := scanRoute(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return route, nil
}

// List retrieves routes ordered by creation time descending, optionally
// filtered by company.
func (r *RouteRepository) List(ctx context.Context, companyID string) ([]*domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes`
	args := []any{}
	if companyID != "" {
		query += ` WHERE company_id = $1`
		args = append(args, companyID)
	}
	query += ` ORDER BY created_at DESC LIMIT 100`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []*domain.Route
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}
	return routes, rows.Err()
}

// Update replaces the stop sequence and distance of an existing route.
func (r *RouteRepository) Update(ctx context.Context, route *domain.Route) error {
	query := `
		UPDATE routes
		SET start_name = $1, start_lat = $2, start_lng = $3, start_kind = $4,
			via_stops = $5,
			end_name = $6, end_lat = $7, end_lng = $8, end_kind = $9,
			distance_km = $10, distance_resolved = $11
		WHERE id = $12
	`

	viaJSON, err := marshalVia(route.Via)
	if err != nil {
		return err
	}

	result, err := r.q.ExecContext(ctx, query,
		route.Start.Name,
		route.Start.Latitude,
		route.Start.Longitude,
		route.Start.Kind,
		viaJSON,
		route.End.Name,
		route.End.Latitude,
		route.End.Longitude,
		route.End.Kind,
		route.TotalDistanceKm,
		route.DistanceResolved,
		route.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a route.
func (r *RouteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoute(row rowScanner) (*domain.Route, error) {
	var route domain.Route
	var viaJSON []byte

	err := row.Scan(
		&route.ID,
		&route.CompanyID,
		&route.CreatorID,
		&route.Start.Name,
		&route.Start.Latitude,
		&route.Start.Longitude,
		&route.Start.Kind,
		&viaJSON,
		&route.End.Name,
		&route.End.Latitude,
		&route.End.Longitude,
		&route.End.Kind,
		&route.TotalDistanceKm,
		&route.DistanceResolved,
		&route.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(viaJSON, &route.Via); err != nil {
		return nil, fmt.Errorf("decode via stops for route %s: %w", route.ID, err)
	}
	return &route, nil
}

func marshalVia(via []domain.Location) ([]byte, error) {
	// Store an explicit empty array, never JSON null.
	if via == nil {
		via = []domain.Location{}
	}
	data, err := json.Marshal(via)
	if err != nil {
		return nil, fmt.Errorf("encode via stops: %w", err)
	}
	return data, nil
}
