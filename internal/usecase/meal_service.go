package usecase

import (
	"context"
	"log"

	"github.com/gymcoach/backend/internal/domain"
	"github.com/gymcoach/backend/internal/parse"
)

// MealService generates strict-JSON daily meal plans. Unlike workouts
// there is no degraded path: a plan the validator rejects is surfaced
// as an error, because fabricating nutrition numbers is unacceptable.
type MealService struct {
	textGen domain.TextGenerator
}

// NewMealService creates a meal planning service
func NewMealService(textGen domain.TextGenerator) *MealService {
	return &MealService{textGen: textGen}
}

// GenerateMealPlan builds a validated daily meal plan for the profile
func (s *MealService) GenerateMealPlan(ctx context.Context, profile *domain.UserProfile) (*domain.DailyMealPlan, error) {
	prompt := buildMealPrompt(profile)

	content, err := s.textGen.Complete(ctx, mealSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	cleaned := stripJSONFences(content)

	plan, err := parse.MealPlan([]byte(cleaned))
	if err != nil {
		log.Printf("[MEAL] rejected model output: %v", err)
		return nil, err
	}

	return plan, nil
}
