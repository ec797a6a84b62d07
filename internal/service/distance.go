package service

import (
	"context"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/maps"
)

// DirectionsClient defines the mapping-service operation the aggregator needs.
// This interface allows for testing with mock implementations.
type DirectionsClient interface {
	Directions(ctx context.Context, origin, destination domain.Location, via []domain.Location) (maps.Directions, error)
}

// Ensure the real client implements DirectionsClient.
var _ DirectionsClient = (*maps.Client)(nil)

// DistanceAggregator computes the total distance of a stop sequence from the
// external directions service.
type DistanceAggregator struct {
	directions DirectionsClient
}

// NewDistanceAggregator creates a new DistanceAggregator.
func NewDistanceAggregator(directions DirectionsClient) *DistanceAggregator {
	return &DistanceAggregator{directions: directions}
}

// Aggregate issues exactly one directions call for start → end through via
// (order preserved) and sums the leg distances of the first candidate route.
//
// The returned bool reports whether the upstream found any route at all.
// When it is false the distance is 0, which is a degraded-but-non-fatal
// result: unreachable stops do not fail a save, but the zero must not be
// mistaken for a measured distance.
func (a *DistanceAggregator) Aggregate(ctx context.Context, start, end domain.Location, via []domain.Location) (float64, bool, error) {
	result, err := a.directions.Directions(ctx, start, end, via)
	if err != nil {
		return 0, false, err
	}

	if len(result.Routes) == 0 {
		return 0, false, nil
	}

	meters := 0
	for _, leg := range result.Routes[0].Legs {
		meters += leg.DistanceMeters
	}
	return float64(meters) / 1000, true, nil
}
