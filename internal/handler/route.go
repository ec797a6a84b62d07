package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/service"
)

// RouteHandler handles HTTP requests for routes.
type RouteHandler struct {
	routeService *service.RouteService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(routeService *service.RouteService) *RouteHandler {
	return &RouteHandler{routeService: routeService}
}

// CreateRouteRequest is the HTTP request body for creating a route.
type CreateRouteRequest struct {
	CompanyID        string            `json:"companyId"`
	AdminID          string            `json:"adminId"`
	Start            LocationPayload   `json:"start"`
	Via              []LocationPayload `json:"via"`
	End              LocationPayload   `json:"end"`
	Distance         float64           `json:"distance"`
	DistanceResolved bool              `json:"distanceResolved"`
}

// UpdateRouteRequest is the HTTP request body for updating a route. The whole
// stop set is always resubmitted together with its recomputed distance.
type UpdateRouteRequest struct {
	RouteID          string            `json:"routeId"`
	Start            LocationPayload   `json:"start"`
	Via              []LocationPayload `json:"via"`
	End              LocationPayload   `json:"end"`
	Distance         float64           `json:"distance"`
	DistanceResolved bool              `json:"distanceResolved"`
}

// RouteResponse is the HTTP response for route data.
type RouteResponse struct {
	ID               string            `json:"id"`
	CompanyID        string            `json:"companyId"`
	AdminID          string            `json:"adminId"`
	Start            LocationPayload   `json:"start"`
	Via              []LocationPayload `json:"via"`
	End              LocationPayload   `json:"end"`
	Distance         float64           `json:"distance"`
	DistanceResolved bool              `json:"distanceResolved"`
	CreatedAt        string            `json:"createdAt"`
}

// Create handles POST /v1/routes
func (h *RouteHandler) Create(c *gin.Context) {
	var req CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	route, err := h.routeService.Create(c.Request.Context(), service.CreateRouteRequest{
		CompanyID:        req.CompanyID,
		CreatorID:        req.AdminID,
		Start:            locationFromPayload(req.Start),
		Via:              locationsFromPayload(req.Via),
		End:              locationFromPayload(req.End),
		DistanceKm:       req.Distance,
		DistanceResolved: req.DistanceResolved,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, routeToResponse(route))
}

// GetAll handles GET /v1/routes?companyId=<optional>
func (h *RouteHandler) GetAll(c *gin.Context) {
	routes, err := h.routeService.List(c.Request.Context(), c.Query("companyId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		response = append(response, routeToResponse(r))
	}

	respondJSON(c, http.StatusOK, response)
}

// Update handles PUT /v1/routes
func (h *RouteHandler) Update(c *gin.Context) {
	var req UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	route, err := h.routeService.Update(c.Request.Context(), service.UpdateRouteRequest{
		RouteID:          req.RouteID,
		Start:            locationFromPayload(req.Start),
		Via:              locationsFromPayload(req.Via),
		End:              locationFromPayload(req.End),
		DistanceKm:       req.Distance,
		DistanceResolved: req.DistanceResolved,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, routeToResponse(route))
}

// Delete handles DELETE /v1/routes?id=<id>
func (h *RouteHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id parameter is required"})
		return
	}

	if err := h.routeService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func routeToResponse(r *domain.Route) RouteResponse {
	via := make([]LocationPayload, 0, len(r.Via))
	for _, v := range r.Via {
		via = append(via, locationToPayload(v))
	}

	return RouteResponse{
		ID:               r.ID,
		CompanyID:        r.CompanyID,
		AdminID:          r.CreatorID,
		Start:            locationToPayload(r.Start),
		Via:              via,
		End:              locationToPayload(r.End),
		Distance:         r.TotalDistanceKm,
		DistanceResolved: r.DistanceResolved,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}
}

func locationsFromPayload(payloads []LocationPayload) []domain.Location {
	out := make([]domain.Location, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, locationFromPayload(p))
	}
	return out
}
