package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/repository"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/service"
)

func validCreateRequest() service.CreateRouteRequest {
	return service.CreateRouteRequest{
		CompanyID: "company-1",
		CreatorID: "admin-1",
		Start:     domain.Location{Name: "HQ", Latitude: -1.28, Longitude: 36.82, Kind: domain.LocationKindOffice},
		Via: []domain.Location{
			{Name: "A", Latitude: -1.29, Longitude: 36.83, Kind: domain.LocationKindCustom},
			{Name: "B", Latitude: -1.30, Longitude: 36.84, Kind: domain.LocationKindCustom},
		},
		End:              domain.Location{Name: "Depot", Latitude: -1.31, Longitude: 36.85, Kind: domain.LocationKindCustom},
		DistanceKm:       7.3,
		DistanceResolved: true,
	}
}

func TestRouteCreate_ValidInput_Succeeds(t *testing.T) {
	t.Parallel()

	repo := NewMockRouteRepository()
	routeService := service.NewRouteService(repo, nil)

	route, err := routeService.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if route.ID == "" {
		t.Error("expected route ID to be assigned")
	}
	if route.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be stamped")
	}
	if route.TotalDistanceKm != 7.3 {
		t.Errorf("expected distance 7.3, got %v", route.TotalDistanceKm)
	}
}

func TestRouteCreate_MissingFields_Fails(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(*service.CreateRouteRequest)
		wantErr error
	}{
		{
			name:    "missing company",
			mutate:  func(r *service.CreateRouteRequest) { r.CompanyID = "" },
			wantErr: service.ErrInvalidCompanyID,
		},
		{
			name:    "missing creator",
			mutate:  func(r *service.CreateRouteRequest) { r.CreatorID = "" },
			wantErr: service.ErrInvalidCreatorID,
		},
		{
			name:    "missing start",
			mutate:  func(r *service.CreateRouteRequest) { r.Start = domain.Location{} },
			wantErr: service.ErrMissingStart,
		},
		{
			name:    "missing end",
			mutate:  func(r *service.CreateRouteRequest) { r.End = domain.Location{} },
			wantErr: service.ErrMissingEnd,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := NewMockRouteRepository()
			routeService := service.NewRouteService(repo, nil)

			req := validCreateRequest()
			tc.mutate(&req)

			_, err := routeService.Create(context.Background(), req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got: %v", tc.wantErr, err)
			}
			if repo.CreateCallCount != 0 {
				t.Error("expected no persist on validation failure")
			}
		})
	}
}

func TestRouteList_ViaOrderRoundTrips(t *testing.T) {
	t.Parallel()

	repo := NewMockRouteRepository()
	routeService := service.NewRouteService(repo, nil)

	if _, err := routeService.Create(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("create: %v", err)
	}

	routes, err := routeService.List(context.Background(), "company-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(routes))
	}

	via := routes[0].Via
	if len(via) != 2 || via[0].Name != "A" || via[1].Name != "B" {
		t.Errorf("expected via order [A B], got %+v", via)
	}
}

func TestRouteList_NewestFirst(t *testing.T) {
	t.Parallel()

	repo := NewMockRouteRepository()
	routeService := service.NewRouteService(repo, nil)

	first, err := routeService.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := routeService.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	routes, err := routeService.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(routes))
	}
	if routes[0].ID != second.ID || routes[1].ID != first.ID {
		t.Error("expected newest route first")
	}
}

func TestRouteUpdate_ReplacesWholeStopSet(t *testing.T) {
	t.Parallel()

	repo := NewMockRouteRepository()
	routeService := service.NewRouteService(repo, nil)

	route, err := routeService.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := routeService.Update(context.Background(), service.UpdateRouteRequest{
		RouteID:          route.ID,
		Start:            route.Start,
		Via:              nil, // all via stops removed
		End:              route.End,
		DistanceKm:       4.1,
		DistanceResolved: true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(updated.Via) != 0 {
		t.Errorf("expected via stops cleared, got %+v", updated.Via)
	}
	if updated.TotalDistanceKm != 4.1 {
		t.Errorf("expected distance 4.1, got %v", updated.TotalDistanceKm)
	}
	if updated.CompanyID != route.CompanyID || updated.CreatorID != route.CreatorID {
		t.Error("update must not change route ownership")
	}
}

func TestRouteUpdate_UnknownRoute_NotFound(t *testing.T) {
	t.Parallel()

	routeService := service.NewRouteService(NewMockRouteRepository(), nil)

	req := service.UpdateRouteRequest{
		RouteID:    "missing",
		Start:      domain.Location{Name: "S", Latitude: 1, Longitude: 1},
		End:        domain.Location{Name: "E", Latitude: 2, Longitude: 2},
		DistanceKm: 1,
	}

	_, err := routeService.Update(context.Background(), req)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestRouteUpdate_LockHeld_ReturnsBusy(t *testing.T) {
	t.Parallel()

	repo := NewMockRouteRepository()
	locks := NewMockRouteLocker()
	routeService := service.NewRouteService(repo, locks)

	route, err := routeService.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	locks.Hold(route.ID)

	_, err = routeService.Update(context.Background(), service.UpdateRouteRequest{
		RouteID:    route.ID,
		Start:      route.Start,
		End:        route.End,
		DistanceKm: 2,
	})
	if !errors.Is(err, service.ErrRouteBusy) {
		t.Errorf("expected ErrRouteBusy, got: %v", err)
	}
	if repo.UpdateCallCount != 0 {
		t.Error("expected no repository update while locked")
	}
}

func TestRouteUpdate_ReleasesLockAfterSuccess(t *testing.T) {
	t.Parallel()

	repo := NewMockRouteRepository()
	locks := NewMockRouteLocker()
	routeService := service.NewRouteService(repo, locks)

	route, err := routeService.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	req := service.UpdateRouteRequest{
		RouteID:    route.ID,
		Start:      route.Start,
		End:        route.End,
		DistanceKm: 2,
	}

	if _, err := routeService.Update(context.Background(), req); err != nil {
		t.Fatalf("first update: %v", err)
	}
	// The lock must be released so the next edit can proceed.
	if _, err := routeService.Update(context.Background(), req); err != nil {
		t.Fatalf("second update: %v", err)
	}

	if locks.ReleaseCallCount != 2 {
		t.Errorf("expected 2 lock releases, got %d", locks.ReleaseCallCount)
	}
}

func TestRouteDelete_RemovesRoute(t *testing.T) {
	t.Parallel()

	repo := NewMockRouteRepository()
	routeService := service.NewRouteService(repo, nil)

	route, err := routeService.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := routeService.Delete(context.Background(), route.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	routes, err := routeService.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(routes) != 0 {
		t.Errorf("expected empty list after delete, got %d routes", len(routes))
	}

	if err := routeService.Delete(context.Background(), route.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got: %v", err)
	}
}
