package http

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gymcoach/backend/internal/domain"
	"github.com/gymcoach/backend/internal/usecase"
)

// maxImageSize caps uploaded food images at 10 MB
const maxImageSize = 10 << 20

// Handler holds dependencies for HTTP handlers
type Handler struct {
	workoutService *usecase.WorkoutService
	mealService    *usecase.MealService
	scanService    *usecase.ScanService
	coachService   *usecase.CoachService
}

// NewHandler creates a new HTTP handler. Nil services make their
// endpoints respond 501.
func NewHandler(
	workoutService *usecase.WorkoutService,
	mealService *usecase.MealService,
	scanService *usecase.ScanService,
	coachService *usecase.CoachService,
) *Handler {
	return &Handler{
		workoutService: workoutService,
		mealService:    mealService,
		scanService:    scanService,
		coachService:   coachService,
	}
}

// ChatRequest is the request body for the coach chat endpoint
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the response body for the coach chat endpoint
type ChatResponse struct {
	Response string `json:"response"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "gymcoach-backend",
		"version": "1.0.0",
	})
}

// GenerateWorkout generates a personalized workout plan from a user
// profile. Generation failures still respond 200 with a failure
// envelope; only malformed requests get a 4xx.
func (h *Handler) GenerateWorkout(c *gin.Context) {
	if h.workoutService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Workout planner not configured",
		})
		return
	}

	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		msg := "invalid request: " + err.Error()
		c.JSON(http.StatusBadRequest, domain.WorkoutResponse{
			Success: false,
			Error:   &msg,
		})
		return
	}

	resp := h.workoutService.GenerateWorkoutPlan(c.Request.Context(), &profile)
	c.JSON(http.StatusOK, resp)
}

// GenerateMealPlan generates a daily meal plan from a user profile
func (h *Handler) GenerateMealPlan(c *gin.Context) {
	if h.mealService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Meal planner not configured",
		})
		return
	}

	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request: " + err.Error(),
		})
		return
	}

	plan, err := h.mealService.GenerateMealPlan(c.Request.Context(), &profile)
	if err != nil {
		log.Printf("[MEAL] generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// AnalyzeFood analyzes an uploaded food image. Analysis failures still
// respond 200 with a failure envelope, matching the workout endpoint.
func (h *Handler) AnalyzeFood(c *gin.Context) {
	if h.scanService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Food scanner not configured",
		})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "image file is required",
		})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "File must be an image",
		})
		return
	}

	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "image exceeds maximum size of 10MB",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unable to read image file",
		})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unable to read image file",
		})
		return
	}

	analysis, err := h.scanService.AnalyzeFoodImage(c.Request.Context(), imageData, contentType)
	if err != nil {
		log.Printf("[SCAN] analysis failed: %v", err)
		msg := err.Error()
		c.JSON(http.StatusOK, domain.FoodScanResponse{
			Success: false,
			Error:   &msg,
		})
		return
	}

	c.JSON(http.StatusOK, domain.FoodScanResponse{
		Success:  true,
		Analysis: analysis,
	})
}

// Chat runs one turn of the coaching conversation
func (h *Handler) Chat(c *gin.Context) {
	if h.coachService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Coach not configured",
		})
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "message is required",
		})
		return
	}

	reply, err := h.coachService.Chat(c.Request.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyMessage), errors.Is(err, domain.ErrMessageTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("[CHAT] turn failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Response: reply})
}
