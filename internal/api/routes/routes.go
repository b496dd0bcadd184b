package routes

import (
	"net/http"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/api/handlers"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/api/middleware"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/classifier"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/config"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/metrics"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/repository"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application.
// model is shared by every request and never rebuilt.
func SetupRoutes(db *gorm.DB, cfg *config.Config, model classifier.Classifier) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	router.SetHTMLTemplate(handlers.Templates())

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db, cfg.QueryTimeout)
	teamRepo := repository.NewTeamRepository(db, cfg.QueryTimeout)

	// Initialize services
	riskService := service.NewRiskService(model)
	reportService := service.NewReportService(riskService, employeeRepo, teamRepo)
	exportService := service.NewExportService()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, model)
	subjectHandler := handlers.NewSubjectHandler(reportService, riskService, exportService)
	dashboardHandler := handlers.NewDashboardHandler(reportService)

	// Health check routes (no auth required)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(metrics.Default().Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Dashboard pages
	router.GET("/", dashboardHandler.Index)
	router.GET("/employee/:id", dashboardHandler.Employee)
	router.GET("/team/:id", dashboardHandler.Team)
	router.GET("/update_dropdown", dashboardHandler.UpdateDropdown)
	router.POST("/update_data", dashboardHandler.UpdateData)

	// API v1 routes; :kind is employees or teams
	v1 := router.Group("/api/v1")
	{
		v1.GET("/:kind", subjectHandler.ListNames)
		v1.GET("/:kind/:id", subjectHandler.GetName)
		v1.GET("/:kind/:id/events", subjectHandler.GetEvents)
		v1.GET("/:kind/:id/notes", subjectHandler.GetNotes)
		v1.GET("/:kind/:id/features", subjectHandler.GetFeatures)
		v1.GET("/:kind/:id/risk", subjectHandler.GetRisk)
		v1.GET("/:kind/:id/report", subjectHandler.GetReport)
		v1.GET("/:kind/:id/export.xlsx", subjectHandler.ExportReport)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, model classifier.Classifier) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, model)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
