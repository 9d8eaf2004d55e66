package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/epeers/portfolio-wizard/internal/middleware"
	"github.com/epeers/portfolio-wizard/internal/models"
	"github.com/epeers/portfolio-wizard/internal/services"
	"github.com/gin-gonic/gin"
)

// SessionHandler handles session lifecycle and navigation endpoints
type SessionHandler struct {
	wizardSvc *services.WizardService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(wizardSvc *services.WizardService) *SessionHandler {
	return &SessionHandler{
		wizardSvc: wizardSvc,
	}
}

// Create handles POST /sessions
// @Summary Start a wizard session
// @Description Creates a session on the welcome screen, optionally with portfolio basics
// @Tags sessions
// @Accept json
// @Produce json
// @Param body body models.CreateSessionRequest false "Optional basics"
// @Success 201 {object} models.StateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err.Error())
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	sessionID, state, err := h.wizardSvc.CreateSession(ctx, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newStateResponse(sessionID, state, wc.GetWarnings()))
}

// Get handles GET /sessions/:session_id
// @Summary Get session state
// @Tags sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.StateResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{session_id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	runSessionOp(c, h.wizardSvc.GetState)
}

// Delete handles DELETE /sessions/:session_id
// @Summary Delete a session
// @Description Removes the stored state and its snapshot
// @Tags sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /sessions/{session_id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	if err := h.wizardSvc.DeleteSession(c.Request.Context(), sessionID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "session deleted"})
}

// Reset handles POST /sessions/:session_id/reset
// @Summary Start over
// @Description Returns the session to the welcome screen with default basics
// @Tags sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.StateResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{session_id}/reset [post]
func (h *SessionHandler) Reset(c *gin.Context) {
	runSessionOp(c, h.wizardSvc.Reset)
}

// Advance handles POST /sessions/:session_id/advance
// @Summary Move to the next step
// @Description Refused with warning W3001 while the current step is incomplete
// @Tags navigation
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.StateResponse
// @Router /sessions/{session_id}/advance [post]
func (h *SessionHandler) Advance(c *gin.Context) {
	runSessionOp(c, h.wizardSvc.Advance)
}

// Retreat handles POST /sessions/:session_id/retreat
// @Summary Move to the previous step
// @Description Warning W3003 when already on the welcome screen
// @Tags navigation
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.StateResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{session_id}/retreat [post]
func (h *SessionHandler) Retreat(c *gin.Context) {
	runSessionOp(c, h.wizardSvc.Retreat)
}

// GoTo handles POST /sessions/:session_id/goto
// @Summary Jump to a step
// @Description Steps beyond one past the furthest visited step are clamped (warning W3002)
// @Tags navigation
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param body body models.GoToRequest true "Target step (-1..4)"
// @Success 200 {object} models.StateResponse
// @Router /sessions/{session_id}/goto [post]
func (h *SessionHandler) GoTo(c *gin.Context) {
	var req models.GoToRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	runSessionOp(c, func(ctx context.Context, sessionID string) (*models.WizardState, error) {
		return h.wizardSvc.GoTo(ctx, sessionID, *req.Step)
	})
}

// SetBasics handles PUT /sessions/:session_id/basics
// @Summary Set portfolio name and investment amount
// @Tags sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param body body models.BasicsRequest true "Basics"
// @Success 200 {object} models.StateResponse
// @Router /sessions/{session_id}/basics [put]
func (h *SessionHandler) SetBasics(c *gin.Context) {
	var req models.BasicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	runSessionOp(c, func(ctx context.Context, sessionID string) (*models.WizardState, error) {
		return h.wizardSvc.SetBasics(ctx, sessionID, req.PortfolioName, *req.InvestmentAmount)
	})
}
