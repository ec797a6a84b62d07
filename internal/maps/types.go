package maps

// Wire types for the mapping-service JSON responses. Only the fields this
// service reads are declared.

type autocompleteResponse struct {
	Predictions []struct {
		Description string `json:"description"`
		PlaceID     string `json:"place_id"`
	} `json:"predictions"`
}

type detailsResponse struct {
	Results []struct {
		Name     string `json:"name"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type directionsResponse struct {
	Routes []struct {
		Legs []struct {
			Distance struct {
				Value int `json:"value"` // meters
			} `json:"distance"`
		} `json:"legs"`
	} `json:"routes"`
}

// Directions is the decoded result of a directions call.
type Directions struct {
	Routes []DirectionsRoute
}

// DirectionsRoute is one candidate route; a route through N waypoints has
// N+1 legs.
type DirectionsRoute struct {
	Legs []RouteLeg
}

// RouteLeg is one point-to-point segment of a candidate route.
type RouteLeg struct {
	DistanceMeters int
}
