package handlers

import (
	"net/http"

	"github.com/epeers/portfolio-wizard/internal/metrics"
	"github.com/epeers/portfolio-wizard/internal/middleware"
	"github.com/epeers/portfolio-wizard/internal/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every endpoint of the wizard API onto a gin engine
func NewRouter(wizardSvc *services.WizardService) *gin.Engine {
	sessionHandler := NewSessionHandler(wizardSvc)
	riskHandler := NewRiskHandler(wizardSvc)
	selectionHandler := NewSelectionHandler(wizardSvc)
	allocationHandler := NewAllocationHandler(wizardSvc)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Reference data routes
	router.GET("/companies", selectionHandler.Catalog)
	router.GET("/sectors", selectionHandler.Sectors)
	router.GET("/regions", selectionHandler.Regions)
	router.GET("/risk/questions", riskHandler.Questions)

	router.POST("/sessions", sessionHandler.Create)

	// Session routes
	session := router.Group("/sessions/:session_id", middleware.RequireSession())
	session.GET("", sessionHandler.Get)
	session.DELETE("", sessionHandler.Delete)
	session.POST("/reset", sessionHandler.Reset)
	session.POST("/advance", sessionHandler.Advance)
	session.POST("/retreat", sessionHandler.Retreat)
	session.POST("/goto", sessionHandler.GoTo)
	session.PUT("/basics", sessionHandler.SetBasics)

	session.PUT("/answers/:question_id", riskHandler.Answer)

	session.GET("/companies", selectionHandler.Candidates)
	session.PATCH("/filters", selectionHandler.SetFilters)
	session.POST("/exclusions/:sector", selectionHandler.ToggleExclusion)
	session.POST("/selection/:company_id", selectionHandler.ToggleSelection)

	session.GET("/allocations", allocationHandler.List)
	session.PUT("/allocations/:company_id/percentage", allocationHandler.SetPercentage)
	session.PUT("/allocations/:company_id/shares", allocationHandler.SetShares)
	session.POST("/allocations/:company_id/lock", allocationHandler.ToggleLock)
	session.POST("/distribute", allocationHandler.Distribute)
	session.POST("/rebalance", allocationHandler.Rebalance)

	session.GET("/summary", allocationHandler.Summary)

	return router
}
