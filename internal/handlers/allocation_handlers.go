package handlers

import (
	"context"
	"net/http"

	"github.com/epeers/portfolio-wizard/internal/middleware"
	"github.com/epeers/portfolio-wizard/internal/models"
	"github.com/epeers/portfolio-wizard/internal/services"
	"github.com/gin-gonic/gin"
)

// AllocationHandler handles allocation and summary endpoints
type AllocationHandler struct {
	wizardSvc *services.WizardService
}

// NewAllocationHandler creates a new AllocationHandler
func NewAllocationHandler(wizardSvc *services.WizardService) *AllocationHandler {
	return &AllocationHandler{
		wizardSvc: wizardSvc,
	}
}

// List handles GET /sessions/:session_id/allocations
// @Summary List allocations
// @Tags allocation
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.AllocationsResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{session_id}/allocations [get]
func (h *AllocationHandler) List(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	resp, err := h.wizardSvc.Allocations(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetPercentage handles PUT /sessions/:session_id/allocations/:company_id/percentage
// @Summary Allocate a percentage
// @Description Amount and whole shares are derived; locked allocations are left unchanged (W1001)
// @Tags allocation
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param company_id path string true "Company ID"
// @Param body body models.PercentageRequest true "Percentage 0..100"
// @Success 200 {object} models.StateResponse
// @Router /sessions/{session_id}/allocations/{company_id}/percentage [put]
func (h *AllocationHandler) SetPercentage(c *gin.Context) {
	var req models.PercentageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	companyID := c.Param("company_id")
	runSessionOp(c, func(ctx context.Context, sessionID string) (*models.WizardState, error) {
		return h.wizardSvc.SetPercentage(ctx, sessionID, companyID, *req.Percentage)
	})
}

// SetShares handles PUT /sessions/:session_id/allocations/:company_id/shares
// @Summary Allocate a share count
// @Tags allocation
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param company_id path string true "Company ID"
// @Param body body models.SharesRequest true "Shares"
// @Success 200 {object} models.StateResponse
// @Router /sessions/{session_id}/allocations/{company_id}/shares [put]
func (h *AllocationHandler) SetShares(c *gin.Context) {
	var req models.SharesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	companyID := c.Param("company_id")
	runSessionOp(c, func(ctx context.Context, sessionID string) (*models.WizardState, error) {
		return h.wizardSvc.SetShares(ctx, sessionID, companyID, *req.Shares)
	})
}

// ToggleLock handles POST /sessions/:session_id/allocations/:company_id/lock
// @Summary Lock or unlock an allocation
// @Description Locked allocations are skipped by rebalance and refuse direct edits
// @Tags allocation
// @Produce json
// @Param session_id path string true "Session ID"
// @Param company_id path string true "Company ID"
// @Success 200 {object} models.StateResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{session_id}/allocations/{company_id}/lock [post]
func (h *AllocationHandler) ToggleLock(c *gin.Context) {
	companyID := c.Param("company_id")
	runSessionOp(c, func(ctx context.Context, sessionID string) (*models.WizardState, error) {
		return h.wizardSvc.ToggleLock(ctx, sessionID, companyID)
	})
}

// Distribute handles POST /sessions/:session_id/distribute
// @Summary Split the investment equally
// @Description Resets every allocation, including locked ones
// @Tags allocation
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.StateResponse
// @Router /sessions/{session_id}/distribute [post]
func (h *AllocationHandler) Distribute(c *gin.Context) {
	runSessionOp(c, h.wizardSvc.DistributeEqually)
}

// Rebalance handles POST /sessions/:session_id/rebalance
// @Summary Rebalance around locked allocations
// @Tags allocation
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.StateResponse
// @Router /sessions/{session_id}/rebalance [post]
func (h *AllocationHandler) Rebalance(c *gin.Context) {
	runSessionOp(c, h.wizardSvc.Rebalance)
}

// Summary handles GET /sessions/:session_id/summary
// @Summary Review the portfolio
// @Tags summary
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.SummaryResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{session_id}/summary [get]
func (h *AllocationHandler) Summary(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	resp, err := h.wizardSvc.Summary(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
