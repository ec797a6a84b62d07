package service

import "errors"

var (
	// ErrMissingStart is returned when a route is submitted without a start location.
	ErrMissingStart = errors.New("start location is required")

	// ErrMissingEnd is returned when a route is submitted without an end location.
	ErrMissingEnd = errors.New("end location is required")

	// ErrInvalidCompanyID is returned when the company ID is empty.
	ErrInvalidCompanyID = errors.New("invalid company id")

	// ErrInvalidCreatorID is returned when the creating admin's ID is empty.
	ErrInvalidCreatorID = errors.New("invalid creator id")

	// ErrInvalidRouteID is returned when the route ID is empty.
	ErrInvalidRouteID = errors.New("invalid route id")

	// ErrRouteBusy is returned when another edit of the same route is in flight.
	ErrRouteBusy = errors.New("route is being edited by another request")
)
