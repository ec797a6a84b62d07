package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	proxy := NewProxy("SECRET", time.Second)
	return NewClient(proxy, server.URL), server
}

func TestAutocomplete_MapsPredictions(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("input"); got != "nairobi cbd" {
			t.Errorf("expected input %q, got %q", "nairobi cbd", got)
		}
		if got := r.URL.Query().Get("key"); got != "SECRET" {
			t.Errorf("expected substituted credential, got %q", got)
		}
		w.Write([]byte(`{"predictions":[
			{"description":"Nairobi CBD, Kenya","place_id":"p1"},
			{"description":"Nairobi CBD Stage","place_id":"p2"}
		]}`))
	})

	candidates, err := client.Autocomplete(context.Background(), "nairobi cbd")
	if err != nil {
		t.Fatalf("autocomplete failed: %v", err)
	}

	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Description != "Nairobi CBD, Kenya" || candidates[0].PlaceID != "p1" {
		t.Errorf("unexpected first candidate: %+v", candidates[0])
	}
}

func TestPlaceDetails_EmptyResults_ZeroLocation(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	})

	loc, err := client.PlaceDetails(context.Background(), "badId")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !loc.IsZero() {
		t.Errorf("expected zero location, got: %+v", loc)
	}
}

func TestPlaceDetails_FirstResultWins(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[
			{"name":"Moi Avenue","geometry":{"location":{"lat":-1.284,"lng":36.824}}},
			{"name":"Moi Avenue Annex","geometry":{"location":{"lat":-1.3,"lng":36.9}}}
		]}`))
	})

	loc, err := client.PlaceDetails(context.Background(), "p1")
	if err != nil {
		t.Fatalf("place details failed: %v", err)
	}

	if loc.Name != "Moi Avenue" {
		t.Errorf("expected first result, got %q", loc.Name)
	}
	if loc.Latitude != -1.284 || loc.Longitude != 36.824 {
		t.Errorf("unexpected coordinates: %+v", loc)
	}
	if loc.Kind != domain.LocationKindCustom {
		t.Errorf("expected CUSTOM kind, got %q", loc.Kind)
	}
}

func TestDirections_OneRequestWaypointOrderPreserved(t *testing.T) {
	t.Parallel()

	var calls int32

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		q := r.URL.Query()
		if got := q.Get("origin"); got != "1,1" {
			t.Errorf("expected origin 1,1, got %q", got)
		}
		if got := q.Get("destination"); got != "2,2" {
			t.Errorf("expected destination 2,2, got %q", got)
		}
		if got := q.Get("waypoints"); got != "1.25,1.25|1.75,1.75" {
			t.Errorf("waypoint order changed: %q", got)
		}
		w.Write([]byte(`{"routes":[{"legs":[
			{"distance":{"value":1000}},
			{"distance":{"value":2000}},
			{"distance":{"value":500}}
		]}]}`))
	})

	result, err := client.Directions(context.Background(),
		domain.Location{Latitude: 1, Longitude: 1},
		domain.Location{Latitude: 2, Longitude: 2},
		[]domain.Location{
			{Latitude: 1.25, Longitude: 1.25},
			{Latitude: 1.75, Longitude: 1.75},
		},
	)
	if err != nil {
		t.Fatalf("directions failed: %v", err)
	}

	if calls != 1 {
		t.Errorf("expected exactly 1 upstream call, got %d", calls)
	}
	if len(result.Routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(result.Routes))
	}
	if len(result.Routes[0].Legs) != 3 {
		t.Fatalf("expected 3 legs, got %d", len(result.Routes[0].Legs))
	}
	if result.Routes[0].Legs[1].DistanceMeters != 2000 {
		t.Errorf("unexpected leg distance: %+v", result.Routes[0].Legs[1])
	}
}

func TestDirections_NoWaypointsParamWhenViaEmpty(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.URL.Query()["waypoints"]; ok {
			t.Error("waypoints parameter must be omitted for an empty via sequence")
		}
		w.Write([]byte(`{"routes":[]}`))
	})

	result, err := client.Directions(context.Background(),
		domain.Location{Latitude: 1, Longitude: 1},
		domain.Location{Latitude: 2, Longitude: 2},
		nil,
	)
	if err != nil {
		t.Fatalf("directions failed: %v", err)
	}
	if len(result.Routes) != 0 {
		t.Errorf("expected no routes, got %d", len(result.Routes))
	}
}
