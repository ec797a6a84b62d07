package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/maps"
)

// ProxyHandler handles HTTP requests that must reach the mapping service
// without exposing the server-held credential to the browser.
type ProxyHandler struct {
	proxy *maps.Proxy
}

// NewProxyHandler creates a new ProxyHandler.
func NewProxyHandler(proxy *maps.Proxy) *ProxyHandler {
	return &ProxyHandler{proxy: proxy}
}

// Forward handles GET /v1/proxy?url=<urlencoded upstream URL>
//
// The upstream body is relayed verbatim on success, so whatever JSON shape
// the mapping service answers with reaches the caller unchanged.
func (h *ProxyHandler) Forward(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "url parameter is required"})
		return
	}

	body, err := h.proxy.Forward(c.Request.Context(), rawURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
