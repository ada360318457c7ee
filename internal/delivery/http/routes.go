package http

import (
	"github.com/gin-gonic/gin"

	"github.com/gymcoach/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	workout := router.Group("/workout-planner")
	{
		workout.POST("/generate", handler.GenerateWorkout)
	}

	meal := router.Group("/meal-planner")
	{
		meal.POST("/generate", handler.GenerateMealPlan)
	}

	scanner := router.Group("/food-scanner")
	{
		scanner.POST("/analyze", handler.AnalyzeFood)
	}

	coach := router.Group("/coach")
	{
		coach.POST("/chat", handler.Chat)
	}

	return router
}
