package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/service"
)

// LocationHandler handles HTTP requests for location search and resolution.
type LocationHandler struct {
	resolver *service.LocationResolver
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(resolver *service.LocationResolver) *LocationHandler {
	return &LocationHandler{resolver: resolver}
}

// SearchResponse is the HTTP response for a location search.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// SearchResult is one autocomplete candidate.
type SearchResult struct {
	Description string `json:"description"`
	PlaceID     string `json:"placeId"`
}

// DetailsResponse is the HTTP response for a resolved location.
type DetailsResponse struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Search handles GET /v1/search-location?q=<string>
//
// A missing or short query yields an empty result set without touching the
// mapping service.
func (h *LocationHandler) Search(c *gin.Context) {
	candidates, err := h.resolver.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]SearchResult, 0, len(candidates))
	for _, cand := range candidates {
		results = append(results, SearchResult{
			Description: cand.Description,
			PlaceID:     cand.PlaceID,
		})
	}

	respondJSON(c, http.StatusOK, SearchResponse{Results: results})
}

// Details handles GET /v1/location-details?placeId=<string>
//
// An unresolvable place id yields an empty object, not an error; clients
// must null-check the fields.
func (h *LocationHandler) Details(c *gin.Context) {
	loc, err := h.resolver.Resolve(c.Request.Context(), c.Query("placeId"))
	if err != nil {
		respondError(c, err)
		return
	}

	if loc.IsZero() {
		respondJSON(c, http.StatusOK, gin.H{})
		return
	}

	respondJSON(c, http.StatusOK, DetailsResponse{
		Name:      loc.Name,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	})
}

// locationFromPayload converts a request-body location into a domain value.
func locationFromPayload(p LocationPayload) domain.Location {
	kind := domain.LocationKind(p.Kind)
	if kind == "" {
		kind = domain.LocationKindCustom
	}
	return domain.Location{
		Name:      p.Name,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Kind:      kind,
	}
}

// LocationPayload is the request/response body shape of a route stop.
type LocationPayload struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Kind      string  `json:"kind,omitempty"`
}

func locationToPayload(l domain.Location) LocationPayload {
	return LocationPayload{
		Name:      l.Name,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Kind:      string(l.Kind),
	}
}
