package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/maps"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/repository"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrMissingStart),
		errors.Is(err, service.ErrMissingEnd),
		errors.Is(err, service.ErrInvalidCompanyID),
		errors.Is(err, service.ErrInvalidCreatorID),
		errors.Is(err, service.ErrInvalidRouteID):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrRouteBusy):
		return http.StatusConflict

	// Upstream mapping service failures
	case errors.Is(err, maps.ErrUpstreamUnavailable):
		return http.StatusBadGateway

	// Missing credential is a server misconfiguration, never retried.
	case errors.Is(err, maps.ErrCredentialNotConfigured):
		return http.StatusInternalServerError

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
