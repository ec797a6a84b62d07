package service

import (
	"context"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/maps"
)

// minQueryLength bounds upstream call volume during incremental typing:
// queries shorter than this never reach the mapping service.
const minQueryLength = 3

// PlacesClient defines the mapping-service operations the resolver needs.
// This interface allows for testing with mock implementations.
type PlacesClient interface {
	Autocomplete(ctx context.Context, input string) ([]domain.SearchCandidate, error)
	PlaceDetails(ctx context.Context, placeID string) (domain.Location, error)
}

// Ensure the real client implements PlacesClient.
var _ PlacesClient = (*maps.Client)(nil)

// LocationResolver turns free-text queries into search candidates and
// candidate ids into resolved locations.
type LocationResolver struct {
	places PlacesClient
}

// NewLocationResolver creates a new LocationResolver.
func NewLocationResolver(places PlacesClient) *LocationResolver {
	return &LocationResolver{places: places}
}

// Search returns autocomplete candidates for a free-text query. Queries
// shorter than three characters return an empty set without any upstream
// call. One upstream call is made otherwise.
func (r *LocationResolver) Search(ctx context.Context, query string) ([]domain.SearchCandidate, error) {
	if len(query) < minQueryLength {
		return []domain.SearchCandidate{}, nil
	}
	return r.places.Autocomplete(ctx, query)
}

// Resolve expands a candidate id to coordinates and a canonical name. An
// unknown id yields a zero Location with a nil error; callers must check
// Location.IsZero before using the result.
func (r *LocationResolver) Resolve(ctx context.Context, placeID string) (domain.Location, error) {
	return r.places.PlaceDetails(ctx, placeID)
}
