package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gymcoach/backend/config"
	httpDelivery "github.com/gymcoach/backend/internal/delivery/http"
	"github.com/gymcoach/backend/internal/domain"
	"github.com/gymcoach/backend/internal/infrastructure/cache"
	"github.com/gymcoach/backend/internal/infrastructure/llm"
	"github.com/gymcoach/backend/internal/infrastructure/tavily"
	"github.com/gymcoach/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Gym Coach Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Model: %s", cfg.OpenAI.Model)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()

	llmClient := llm.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)

	var searcher domain.VideoSearcher
	if cfg.Tavily.APIKey != "" {
		tavilyClient := tavily.NewClient(cfg.Tavily.APIKey, cfg.Tavily.BaseURL)
		if cfg.Server.Environment == "development" {
			tavilyClient.SetDebug(true)
			log.Printf("Tavily client debug mode enabled")
		}
		searcher = tavilyClient
		log.Printf("Video search configured: %s", cfg.Tavily.BaseURL)
	} else {
		log.Printf("WARNING: Tavily API key not set - workout plans will carry no video links")
	}

	// Initialize usecase layer
	workoutService := usecase.NewWorkoutService(
		llmClient,
		searcher,
		memoryCache,
		usecase.WorkoutServiceConfig{
			Days:     cfg.Workout.Days,
			CacheTTL: cfg.Cache.TTL,
		},
	)
	mealService := usecase.NewMealService(llmClient)
	scanService := usecase.NewScanService(llmClient)
	coachService := usecase.NewCoachService(llmClient)

	log.Printf("Workout planner: %d days per plan", cfg.Workout.Days)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(workoutService, mealService, scanService, coachService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
