package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/repository"
)

// editLockTTL bounds how long a route edit lock can be held if a request
// dies without releasing it.
const editLockTTL = 10 * time.Second

// RouteLocker defines the distributed locking contract used to serialize
// concurrent edits of the same route. This interface allows for testing with
// mock implementations.
type RouteLocker interface {
	AcquireRouteLock(ctx context.Context, routeID string, ttl time.Duration) (bool, error)
	ReleaseRouteLock(ctx context.Context, routeID string) error
}

// RouteService handles route persistence operations.
type RouteService struct {
	routeRepo repository.RouteRepository
	locks     RouteLocker
}

// NewRouteService creates a new RouteService. locks may be nil, in which case
// concurrent edits of one route are not serialized.
func NewRouteService(routeRepo repository.RouteRepository, locks RouteLocker) *RouteService {
	return &RouteService{
		routeRepo: routeRepo,
		locks:     locks,
	}
}

// CreateRouteRequest contains the parameters for creating a route. Distance
// values come from the aggregator, never from hand edits.
type CreateRouteRequest struct {
	CompanyID        string
	CreatorID        string
	Start            domain.Location
	Via              []domain.Location
	End              domain.Location
	DistanceKm       float64
	DistanceResolved bool
}

// UpdateRouteRequest contains the parameters for updating a route. The whole
// stop sequence and its recomputed distance are always resubmitted together.
type UpdateRouteRequest struct {
	RouteID          string
	Start            domain.Location
	Via              []domain.Location
	End              domain.Location
	DistanceKm       float64
	DistanceResolved bool
}

// Create validates and persists a new route.
func (s *RouteService) Create(ctx context.Context, req CreateRouteRequest) (*domain.Route, error) {
	if req.CompanyID == "" {
		return nil, ErrInvalidCompanyID
	}
	if req.CreatorID == "" {
		return nil, ErrInvalidCreatorID
	}
	if req.Start.IsZero() {
		return nil, ErrMissingStart
	}
	if req.End.IsZero() {
		return nil, ErrMissingEnd
	}

	route := &domain.Route{
		ID:               uuid.New().String(),
		CompanyID:        req.CompanyID,
		CreatorID:        req.CreatorID,
		Start:            req.Start,
		Via:              req.Via,
		End:              req.End,
		TotalDistanceKm:  req.DistanceKm,
		DistanceResolved: req.DistanceResolved,
		CreatedAt:        time.Now(),
	}

	if err := s.routeRepo.Create(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

// List returns routes ordered by creation time descending, optionally
// filtered by company.
func (s *RouteService) List(ctx context.Context, companyID string) ([]*domain.Route, error) {
	return s.routeRepo.List(ctx, companyID)
}

// Update replaces a route's stop sequence and distance. Concurrent updates of
// the same route are rejected with ErrRouteBusy.
func (s *RouteService) Update(ctx context.Context, req UpdateRouteRequest) (*domain.Route, error) {
	if req.RouteID == "" {
		return nil, ErrInvalidRouteID
	}
	if req.Start.IsZero() {
		return nil, ErrMissingStart
	}
	if req.End.IsZero() {
		return nil, ErrMissingEnd
	}

	release, err := s.acquireLock(ctx, req.RouteID)
	if err != nil {
		return nil, err
	}
	defer release()

	route, err := s.routeRepo.GetByID(ctx, req.RouteID)
	if err != nil {
		return nil, err
	}

	route.Start = req.Start
	route.Via = req.Via
	route.End = req.End
	route.TotalDistanceKm = req.DistanceKm
	route.DistanceResolved = req.DistanceResolved

	if err := s.routeRepo.Update(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

// Delete removes a route.
func (s *RouteService) Delete(ctx context.Context, routeID string) error {
	if routeID == "" {
		return ErrInvalidRouteID
	}

	release, err := s.acquireLock(ctx, routeID)
	if err != nil {
		return err
	}
	defer release()

	return s.routeRepo.Delete(ctx, routeID)
}

func (s *RouteService) acquireLock(ctx context.Context, routeID string) (func(), error) {
	if s.locks == nil {
		return func() {}, nil
	}

	ok, err := s.locks.AcquireRouteLock(ctx, routeID, editLockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRouteBusy
	}

	return func() {
		_ = s.locks.ReleaseRouteLock(context.WithoutCancel(ctx), routeID)
	}, nil
}
