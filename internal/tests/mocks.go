package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/maps"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/repository"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/service"
)

// ──────────────────────────────────────────────
// MOCK ROUTE REPOSITORY
// ──────────────────────────────────────────────

// MockRouteRepository is a mock implementation of repository.RouteRepository.
// Routes are kept in insertion order so recency ordering can be asserted.
type MockRouteRepository struct {
	mu     sync.RWMutex
	routes []*domain.Route

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	UpdateError error
	DeleteError error
}

// NewMockRouteRepository creates a new mock route repository.
func NewMockRouteRepository() *MockRouteRepository {
	return &MockRouteRepository{}
}

func (m *MockRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *route
	m.routes = append(m.routes, &copy)
	return nil
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.routes {
		if r.ID == id {
			copy := *r
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockRouteRepository) List(ctx context.Context, companyID string) ([]*domain.Route, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Newest first, like the ORDER BY created_at DESC of the real repository.
	var result []*domain.Route
	for i := len(m.routes) - 1; i >= 0; i-- {
		r := m.routes[i]
		if companyID != "" && r.CompanyID != companyID {
			continue
		}
		copy := *r
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockRouteRepository) Update(ctx context.Context, route *domain.Route) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.routes {
		if r.ID == route.ID {
			copy := *route
			m.routes[i] = &copy
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockRouteRepository) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.routes {
		if r.ID == id {
			m.routes = append(m.routes[:i], m.routes[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// ──────────────────────────────────────────────
// MOCK PLACES CLIENT
// ──────────────────────────────────────────────

// MockPlacesClient is a mock implementation of service.PlacesClient.
type MockPlacesClient struct {
	// Canned responses
	Candidates []domain.SearchCandidate
	Places     map[string]domain.Location

	// Counters for verification
	AutocompleteCallCount int32
	DetailsCallCount      int32

	// Error injection
	AutocompleteError error
	DetailsError      error
}

// NewMockPlacesClient creates a new mock places client.
func NewMockPlacesClient() *MockPlacesClient {
	return &MockPlacesClient{
		Places: make(map[string]domain.Location),
	}
}

func (m *MockPlacesClient) Autocomplete(ctx context.Context, input string) ([]domain.SearchCandidate, error) {
	atomic.AddInt32(&m.AutocompleteCallCount, 1)
	if m.AutocompleteError != nil {
		return nil, m.AutocompleteError
	}
	return m.Candidates, nil
}

func (m *MockPlacesClient) PlaceDetails(ctx context.Context, placeID string) (domain.Location, error) {
	atomic.AddInt32(&m.DetailsCallCount, 1)
	if m.DetailsError != nil {
		return domain.Location{}, m.DetailsError
	}
	// Unknown ids yield a zero Location, matching the real client.
	return m.Places[placeID], nil
}

// ──────────────────────────────────────────────
// MOCK DIRECTIONS CLIENT
// ──────────────────────────────────────────────

// MockDirectionsClient is a mock implementation of service.DirectionsClient.
type MockDirectionsClient struct {
	mu sync.Mutex

	// Canned response
	Result maps.Directions

	// Counters and captured arguments for verification
	CallCount int32
	LastVia   []domain.Location

	// Error injection
	Error error
}

// NewMockDirectionsClient creates a new mock directions client.
func NewMockDirectionsClient() *MockDirectionsClient {
	return &MockDirectionsClient{}
}

func (m *MockDirectionsClient) Directions(ctx context.Context, origin, destination domain.Location, via []domain.Location) (maps.Directions, error) {
	atomic.AddInt32(&m.CallCount, 1)
	m.mu.Lock()
	m.LastVia = append([]domain.Location(nil), via...)
	m.mu.Unlock()
	if m.Error != nil {
		return maps.Directions{}, m.Error
	}
	return m.Result, nil
}

// ──────────────────────────────────────────────
// MOCK COMPOSER COLLABORATORS
// ──────────────────────────────────────────────

// MockResolver is a mock implementation of composer.Resolver. SearchFunc,
// when set, takes precedence over the canned candidates so tests can control
// interleaving.
type MockResolver struct {
	SearchFunc func(ctx context.Context, query string) ([]domain.SearchCandidate, error)

	Candidates []domain.SearchCandidate
	Places     map[string]domain.Location

	SearchCallCount  int32
	ResolveCallCount int32

	SearchError  error
	ResolveError error
}

// NewMockResolver creates a new mock resolver.
func NewMockResolver() *MockResolver {
	return &MockResolver{
		Places: make(map[string]domain.Location),
	}
}

func (m *MockResolver) Search(ctx context.Context, query string) ([]domain.SearchCandidate, error) {
	atomic.AddInt32(&m.SearchCallCount, 1)
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	if m.SearchError != nil {
		return nil, m.SearchError
	}
	return m.Candidates, nil
}

func (m *MockResolver) Resolve(ctx context.Context, placeID string) (domain.Location, error) {
	atomic.AddInt32(&m.ResolveCallCount, 1)
	if m.ResolveError != nil {
		return domain.Location{}, m.ResolveError
	}
	return m.Places[placeID], nil
}

// MockAggregator is a mock implementation of composer.Aggregator.
type MockAggregator struct {
	AggregateFunc func(ctx context.Context, start, end domain.Location, via []domain.Location) (float64, bool, error)

	Km       float64
	Resolved bool
	Error    error

	CallCount int32

	mu        sync.Mutex
	LastStart domain.Location
	LastEnd   domain.Location
	LastVia   []domain.Location
}

// NewMockAggregator creates a new mock aggregator returning the given distance.
func NewMockAggregator(km float64) *MockAggregator {
	return &MockAggregator{Km: km, Resolved: true}
}

func (m *MockAggregator) Aggregate(ctx context.Context, start, end domain.Location, via []domain.Location) (float64, bool, error) {
	atomic.AddInt32(&m.CallCount, 1)
	m.mu.Lock()
	m.LastStart = start
	m.LastEnd = end
	m.LastVia = append([]domain.Location(nil), via...)
	m.mu.Unlock()
	if m.AggregateFunc != nil {
		return m.AggregateFunc(ctx, start, end, via)
	}
	if m.Error != nil {
		return 0, false, m.Error
	}
	return m.Km, m.Resolved, nil
}

// MockRouteStore is a mock implementation of composer.Store.
type MockRouteStore struct {
	CreateCallCount int32
	UpdateCallCount int32

	CreateError error
	UpdateError error

	mu         sync.Mutex
	LastCreate service.CreateRouteRequest
	LastUpdate service.UpdateRouteRequest
}

// NewMockRouteStore creates a new mock route store.
func NewMockRouteStore() *MockRouteStore {
	return &MockRouteStore{}
}

func (m *MockRouteStore) Create(ctx context.Context, req service.CreateRouteRequest) (*domain.Route, error) {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	m.mu.Lock()
	m.LastCreate = req
	m.mu.Unlock()
	return &domain.Route{
		ID:               "route-created",
		CompanyID:        req.CompanyID,
		CreatorID:        req.CreatorID,
		Start:            req.Start,
		Via:              req.Via,
		End:              req.End,
		TotalDistanceKm:  req.DistanceKm,
		DistanceResolved: req.DistanceResolved,
		CreatedAt:        time.Now(),
	}, nil
}

func (m *MockRouteStore) Update(ctx context.Context, req service.UpdateRouteRequest) (*domain.Route, error) {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	m.mu.Lock()
	m.LastUpdate = req
	m.mu.Unlock()
	return &domain.Route{
		ID:               req.RouteID,
		Start:            req.Start,
		Via:              req.Via,
		End:              req.End,
		TotalDistanceKm:  req.DistanceKm,
		DistanceResolved: req.DistanceResolved,
		CreatedAt:        time.Now(),
	}, nil
}

// ──────────────────────────────────────────────
// MOCK ROUTE LOCKER
// ──────────────────────────────────────────────

// MockRouteLocker is a mock implementation of service.RouteLocker.
type MockRouteLocker struct {
	mu   sync.Mutex
	held map[string]bool

	AcquireCallCount int32
	ReleaseCallCount int32

	AcquireError error
}

// NewMockRouteLocker creates a new mock route locker.
func NewMockRouteLocker() *MockRouteLocker {
	return &MockRouteLocker{held: make(map[string]bool)}
}

func (m *MockRouteLocker) AcquireRouteLock(ctx context.Context, routeID string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.held[routeID] {
		return false, nil
	}
	m.held[routeID] = true
	return true, nil
}

func (m *MockRouteLocker) ReleaseRouteLock(ctx context.Context, routeID string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.held, routeID)
	return nil
}

// Hold marks a route lock as already taken by someone else.
func (m *MockRouteLocker) Hold(routeID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.held[routeID] = true
}
