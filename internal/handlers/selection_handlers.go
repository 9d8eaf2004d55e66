package handlers

import (
	"context"
	"net/http"

	"github.com/epeers/portfolio-wizard/internal/middleware"
	"github.com/epeers/portfolio-wizard/internal/models"
	"github.com/epeers/portfolio-wizard/internal/services"
	"github.com/gin-gonic/gin"
)

// SelectionHandler handles catalog browsing, filters, exclusions and company selection
type SelectionHandler struct {
	wizardSvc *services.WizardService
}

// NewSelectionHandler creates a new SelectionHandler
func NewSelectionHandler(wizardSvc *services.WizardService) *SelectionHandler {
	return &SelectionHandler{
		wizardSvc: wizardSvc,
	}
}

// Catalog handles GET /companies
// @Summary List the company catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Company
// @Router /companies [get]
func (h *SelectionHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.wizardSvc.Catalog().Companies())
}

// Sectors handles GET /sectors
// @Summary List catalog sectors
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /sectors [get]
func (h *SelectionHandler) Sectors(c *gin.Context) {
	c.JSON(http.StatusOK, h.wizardSvc.Catalog().Sectors())
}

// Regions handles GET /regions
// @Summary List catalog regions
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /regions [get]
func (h *SelectionHandler) Regions(c *gin.Context) {
	c.JSON(http.StatusOK, h.wizardSvc.Catalog().Regions())
}

// Candidates handles GET /sessions/:session_id/companies
// @Summary List candidate companies
// @Description Applies the session's exclusions and filters, then search, sort and pagination
// @Tags selection
// @Produce json
// @Param session_id path string true "Session ID"
// @Param search query string false "Case-insensitive search over name, ticker, sector, region"
// @Param sort query string false "name|sector|region|marketCap|price|dividend|volatility"
// @Param direction query string false "asc|desc"
// @Param page query int false "Page (1-based)"
// @Param per_page query int false "Page size (default 10)"
// @Success 200 {object} models.CompanyPage
// @Failure 400 {object} models.ErrorResponse
// @Router /sessions/{session_id}/companies [get]
func (h *SelectionHandler) Candidates(c *gin.Context) {
	var q models.CompaniesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err.Error())
		return
	}

	sessionID, _ := middleware.GetSessionID(c)
	page, err := h.wizardSvc.ListCandidates(c.Request.Context(), sessionID, q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// SetFilters handles PATCH /sessions/:session_id/filters
// @Summary Merge filter criteria
// @Tags selection
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param body body models.FilterPatch true "Fields to change"
// @Success 200 {object} models.StateResponse
// @Router /sessions/{session_id}/filters [patch]
func (h *SelectionHandler) SetFilters(c *gin.Context) {
	var patch models.FilterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err.Error())
		return
	}
	runSessionOp(c, func(ctx context.Context, sessionID string) (*models.WizardState, error) {
		return h.wizardSvc.SetFilters(ctx, sessionID, patch)
	})
}

// ToggleExclusion handles POST /sessions/:session_id/exclusions/:sector
// @Summary Exclude or re-admit a sector
// @Description Excluding a sector deselects its companies and drops their allocations
// @Tags selection
// @Produce json
// @Param session_id path string true "Session ID"
// @Param sector path string true "Sector"
// @Success 200 {object} models.StateResponse
// @Router /sessions/{session_id}/exclusions/{sector} [post]
func (h *SelectionHandler) ToggleExclusion(c *gin.Context) {
	sector := c.Param("sector")
	runSessionOp(c, func(ctx context.Context, sessionID string) (*models.WizardState, error) {
		return h.wizardSvc.ToggleExclusion(ctx, sessionID, sector)
	})
}

// ToggleSelection handles POST /sessions/:session_id/selection/:company_id
// @Summary Select or deselect a company
// @Description At 20 selected companies further selections are ignored with warning W2001
// @Tags selection
// @Produce json
// @Param session_id path string true "Session ID"
// @Param company_id path string true "Company ID"
// @Success 200 {object} models.StateResponse
// @Router /sessions/{session_id}/selection/{company_id} [post]
func (h *SelectionHandler) ToggleSelection(c *gin.Context) {
	companyID := c.Param("company_id")
	runSessionOp(c, func(ctx context.Context, sessionID string) (*models.WizardState, error) {
		return h.wizardSvc.ToggleSelection(ctx, sessionID, companyID)
	})
}
