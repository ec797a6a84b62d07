package domain

import "time"

// Company is a read-only lookup referenced by routes. Company management is
// handled by a separate subsystem; this service never writes companies.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Office is a company office location, offered to the operator as a
// ready-made OFFICE-kind stop when composing a route.
type Office struct {
	ID        string
	CompanyID string
	Name      string
	Latitude  float64
	Longitude float64
}

// AsLocation converts an office into a route stop.
func (o Office) AsLocation() Location {
	return Location{
		Name:      o.Name,
		Latitude:  o.Latitude,
		Longitude: o.Longitude,
		Kind:      LocationKindOffice,
	}
}
