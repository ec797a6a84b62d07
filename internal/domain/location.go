package domain

// LocationKind distinguishes company office stops from free-text picks.
type LocationKind string

const (
	LocationKindOffice LocationKind = "OFFICE"
	LocationKindCustom LocationKind = "CUSTOM"
)

// Location is a resolved geographic point. It is a value: a fresh Location is
// produced per search selection and never mutated afterwards.
type Location struct {
	Name      string       `json:"name"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Kind      LocationKind `json:"kind"`
}

// IsZero reports whether the location is the empty "not found" value.
// Resolving an unknown place id yields a zero Location rather than an error.
func (l Location) IsZero() bool {
	return l.Name == "" && l.Latitude == 0 && l.Longitude == 0
}

// SearchCandidate is an unresolved autocomplete match. It exists only between
// a text query and the operator's selection; it is never persisted.
type SearchCandidate struct {
	Description string `json:"description"`
	PlaceID     string `json:"placeId"`
}
