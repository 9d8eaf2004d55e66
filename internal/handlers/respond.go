package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/epeers/portfolio-wizard/internal/middleware"
	"github.com/epeers/portfolio-wizard/internal/models"
	"github.com/epeers/portfolio-wizard/internal/services"
	"github.com/epeers/portfolio-wizard/internal/wizard"
	"github.com/gin-gonic/gin"
)

// sessionOp is one wizard operation or read applied to the session in the request path
type sessionOp func(ctx context.Context, sessionID string) (*models.WizardState, error)

// runSessionOp applies fn and writes the resulting state along with any rejection warnings
func runSessionOp(c *gin.Context, fn sessionOp) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "session ID required",
		})
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	state, err := fn(ctx, sessionID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newStateResponse(sessionID, state, wc.GetWarnings()))
}

func newStateResponse(sessionID string, state *models.WizardState, warnings []models.Warning) models.StateResponse {
	return models.StateResponse{
		SessionID:  sessionID,
		State:      *state,
		CanAdvance: wizard.CanAdvance(*state),
		Totals:     wizard.ComputeTotals(*state),
		Warnings:   warnings,
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

// writeError maps service errors to HTTP responses
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "session not found",
		})
	case errors.Is(err, services.ErrInvalidSessionID), errors.Is(err, services.ErrInvalidQuery):
		badRequest(c, err.Error())
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}
