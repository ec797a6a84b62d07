package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
)

// keyPlaceholder stands in for the credential in every request URL the client
// builds; the Proxy substitutes the real secret before the request leaves the
// process. The long-lived key therefore exists in exactly one place.
const keyPlaceholder = "CLIENT_SIDE_KEY"

// Client talks to the external mapping service for place autocomplete, place
// details and directions. All requests go through the credential-shielding
// Proxy. The client never retries.
type Client struct {
	proxy   *Proxy
	baseURL string
}

// NewClient creates a mapping-service client routed through the given proxy.
func NewClient(proxy *Proxy, baseURL string) *Client {
	return &Client{
		proxy:   proxy,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Autocomplete issues one autocomplete request and maps the predictions to
// search candidates.
func (c *Client) Autocomplete(ctx context.Context, input string) ([]domain.SearchCandidate, error) {
	u := c.baseURL + "/maps/api/place/autocomplete/json?input=" + url.QueryEscape(input) + "&key=" + keyPlaceholder

	body, err := c.proxy.Forward(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("autocomplete %q: %w", input, err)
	}

	var decoded autocompleteResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode autocomplete response: %w", err)
	}

	candidates := make([]domain.SearchCandidate, 0, len(decoded.Predictions))
	for _, p := range decoded.Predictions {
		candidates = append(candidates, domain.SearchCandidate{
			Description: p.Description,
			PlaceID:     p.PlaceID,
		})
	}
	return candidates, nil
}

// PlaceDetails resolves a place id to coordinates and a canonical name.
// An empty upstream result set yields a zero Location, not an error; callers
// must treat a zero Location as "not found".
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (domain.Location, error) {
	u := c.baseURL + "/maps/api/place/details/json?placeid=" + url.QueryEscape(placeID) + "&key=" + keyPlaceholder

	body, err := c.proxy.Forward(ctx, u)
	if err != nil {
		return domain.Location{}, fmt.Errorf("place details %q: %w", placeID, err)
	}

	var decoded detailsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.Location{}, fmt.Errorf("decode details response: %w", err)
	}

	if len(decoded.Results) == 0 {
		return domain.Location{}, nil
	}

	r := decoded.Results[0]
	return domain.Location{
		Name:      r.Name,
		Latitude:  r.Geometry.Location.Lat,
		Longitude: r.Geometry.Location.Lng,
		Kind:      domain.LocationKindCustom,
	}, nil
}

// Directions issues exactly one directions request for origin → destination
// through the given waypoints. Waypoint order is preserved verbatim; no
// optimization is requested.
func (c *Client) Directions(ctx context.Context, origin, destination domain.Location, via []domain.Location) (Directions, error) {
	u := c.baseURL + "/maps/api/directions/json?origin=" + formatPoint(origin) +
		"&destination=" + formatPoint(destination)

	if len(via) > 0 {
		points := make([]string, 0, len(via))
		for _, w := range via {
			points = append(points, formatPoint(w))
		}
		u += "&waypoints=" + url.QueryEscape(strings.Join(points, "|"))
	}
	u += "&key=" + keyPlaceholder

	body, err := c.proxy.Forward(ctx, u)
	if err != nil {
		return Directions{}, fmt.Errorf("directions: %w", err)
	}

	var decoded directionsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return Directions{}, fmt.Errorf("decode directions response: %w", err)
	}

	out := Directions{Routes: make([]DirectionsRoute, 0, len(decoded.Routes))}
	for _, r := range decoded.Routes {
		route := DirectionsRoute{Legs: make([]RouteLeg, 0, len(r.Legs))}
		for _, l := range r.Legs {
			route.Legs = append(route.Legs, RouteLeg{DistanceMeters: l.Distance.Value})
		}
		out.Routes = append(out.Routes, route)
	}
	return out, nil
}

func formatPoint(l domain.Location) string {
	return strconv.FormatFloat(l.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(l.Longitude, 'f', -1, 64)
}
