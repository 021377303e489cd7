package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skillswap/interviewer-match/internal/analytics"
	"github.com/skillswap/interviewer-match/services"
)

// API holds dependencies for API handlers.
type API struct {
	pool      services.PoolManager
	searcher  services.Searcher
	analytics *analytics.Service
	logger    *zap.Logger
}

// NewAPI creates a new API handler structure.
func NewAPI(pool services.PoolManager, searcher services.Searcher, analyticsService *analytics.Service, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		pool:      pool,
		searcher:  searcher,
		analytics: analyticsService,
		logger:    logger,
	}
}

// SetupRoutes defines all the API routes for the matching service.
func SetupRoutes(router *gin.Engine, apiHandler *API) {
	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(10 << 20)) // 10 MB

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analytics route
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	// Interviewer pool routes
	interviewerRoutes := router.Group("/interviewers")
	{
		interviewerRoutes.PUT("", apiHandler.UpsertInterviewersHandler)    // Add/Update interviewers
		interviewerRoutes.GET("", apiHandler.ListInterviewersHandler)      // List interviewers with pagination
		interviewerRoutes.DELETE("", apiHandler.DeleteAllInterviewersHandler)

		interviewerRoutes.GET("/search", apiHandler.SearchHandler) // Rank interviewers against a query

		interviewerRoutes.GET("/:applicationId", apiHandler.GetInterviewerHandler)
		interviewerRoutes.DELETE("/:applicationId", apiHandler.DeleteInterviewerHandler)
	}
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "interviewer-match",
		"pool_size": api.pool.PoolSize(),
		"timestamp": time.Now().Unix(),
	})
}

// GetAnalyticsHandler handles the request to get analytics data
func (api *API) GetAnalyticsHandler(c *gin.Context) {
	dashboard, err := api.analytics.GetDashboardData()
	if err != nil {
		SendInternalError(c, "retrieve analytics data", err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
