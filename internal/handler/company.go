package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/redis"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/repository"
)

// CompanyHandler serves the read-only company and office lookups that the
// route composer needs. Writes are owned by the company subsystem.
type CompanyHandler struct {
	companyRepo repository.CompanyRepository
	officeRepo  repository.OfficeRepository
	cache       redis.LookupCacheInterface
}

// NewCompanyHandler creates a new CompanyHandler. cache may be nil.
func NewCompanyHandler(companyRepo repository.CompanyRepository, officeRepo repository.OfficeRepository, cache redis.LookupCacheInterface) *CompanyHandler {
	return &CompanyHandler{
		companyRepo: companyRepo,
		officeRepo:  officeRepo,
		cache:       cache,
	}
}

// CompanyResponse is the HTTP response for company data.
type CompanyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OfficeResponse is the HTTP response for an office location.
type OfficeResponse struct {
	ID        string  `json:"id"`
	CompanyID string  `json:"companyId"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GetAll handles GET /v1/companies
func (h *CompanyHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	var companies []*domain.Company
	if h.cache != nil {
		cached, err := h.cache.GetCompanies(ctx)
		if err != nil {
			log.Printf("company cache read failed: %v", err)
		}
		companies = cached
	}

	if companies == nil {
		var err error
		companies, err = h.companyRepo.GetAll(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		if h.cache != nil {
			if err := h.cache.SetCompanies(ctx, companies); err != nil {
				log.Printf("company cache write failed: %v", err)
			}
		}
	}

	response := make([]CompanyResponse, 0, len(companies))
	for _, company := range companies {
		response = append(response, CompanyResponse{ID: company.ID, Name: company.Name})
	}

	respondJSON(c, http.StatusOK, response)
}

// GetOffices handles GET /v1/companies/:id/offices
func (h *CompanyHandler) GetOffices(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.Param("id")

	var offices []*domain.Office
	if h.cache != nil {
		cached, err := h.cache.GetOffices(ctx, companyID)
		if err != nil {
			log.Printf("office cache read failed: %v", err)
		}
		offices = cached
	}

	if offices == nil {
		// Confirm the company exists so unknown ids return 404, not [].
		if _, err := h.companyRepo.GetByID(ctx, companyID); err != nil {
			respondError(c, err)
			return
		}

		var err error
		offices, err = h.officeRepo.GetByCompany(ctx, companyID)
		if err != nil {
			respondError(c, err)
			return
		}
		if h.cache != nil {
			if err := h.cache.SetOffices(ctx, companyID, offices); err != nil {
				log.Printf("office cache write failed: %v", err)
			}
		}
	}

	response := make([]OfficeResponse, 0, len(offices))
	for _, office := range offices {
		response = append(response, OfficeResponse{
			ID:        office.ID,
			CompanyID: office.CompanyID,
			Name:      office.Name,
			Latitude:  office.Latitude,
			Longitude: office.Longitude,
		})
	}

	respondJSON(c, http.StatusOK, response)
}
