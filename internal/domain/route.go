package domain

import "time"

// Route is a persisted commute route: an ordered stop sequence plus the total
// distance computed for exactly that sequence.
//
// TotalDistanceKm is only ever written from an aggregation result; it is never
// hand-edited. DistanceResolved is false when the directions service returned
// no route for the stop sequence, so a stored 0 km can be told apart from a
// genuinely zero-length route.
type Route struct {
	ID               string
	CompanyID        string
	CreatorID        string
	Start            Location
	Via              []Location // order-significant, may be empty
	End              Location
	TotalDistanceKm  float64
	DistanceResolved bool
	CreatedAt        time.Time
}
