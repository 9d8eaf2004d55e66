package handlers

import (
	"context"
	"net/http"

	"github.com/epeers/portfolio-wizard/internal/models"
	"github.com/epeers/portfolio-wizard/internal/services"
	"github.com/gin-gonic/gin"
)

// RiskHandler handles the risk questionnaire endpoints
type RiskHandler struct {
	wizardSvc *services.WizardService
}

// NewRiskHandler creates a new RiskHandler
func NewRiskHandler(wizardSvc *services.WizardService) *RiskHandler {
	return &RiskHandler{
		wizardSvc: wizardSvc,
	}
}

// Questions handles GET /risk/questions
// @Summary List risk questions
// @Tags risk
// @Produce json
// @Success 200 {array} models.RiskQuestion
// @Router /risk/questions [get]
func (h *RiskHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, h.wizardSvc.Catalog().Questions())
}

// Answer handles PUT /sessions/:session_id/answers/:question_id
// @Summary Answer a risk question
// @Description Scores outside 1..5 or unknown questions are ignored with a warning
// @Tags risk
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param question_id path string true "Question ID"
// @Param body body models.AnswerRequest true "Score"
// @Success 200 {object} models.StateResponse
// @Router /sessions/{session_id}/answers/{question_id} [put]
func (h *RiskHandler) Answer(c *gin.Context) {
	var req models.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	questionID := c.Param("question_id")
	runSessionOp(c, func(ctx context.Context, sessionID string) (*models.WizardState, error) {
		return h.wizardSvc.RecordAnswer(ctx, sessionID, questionID, *req.Score)
	})
}
