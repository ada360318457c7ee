package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gymcoach/backend/internal/domain"
)

const mealModelOutput = `{
  "breakfast": {"name": "Oatmeal Bowl", "description": "Oats with berries", "calories": 420, "protein": 18, "carbs": 60, "fat": 12, "rationale": "Slow carbs for the morning", "preparation_steps": ["Boil oats", "Add berries"]},
  "lunch": {"name": "Chicken Salad", "description": "Grilled chicken on greens", "calories": 550, "protein": 42, "carbs": 30, "fat": 22, "rationale": "High protein for muscle gain", "preparation_steps": ["Grill chicken", "Toss salad"]},
  "snack": {"name": "Greek Yogurt", "description": "Yogurt with honey", "calories": 200, "protein": 15, "carbs": 20, "fat": 6, "rationale": "Protein between meals", "preparation_steps": ["Combine and serve"]},
  "dinner": {"name": "Salmon Plate", "description": "Salmon with quinoa", "calories": 610, "protein": 40, "carbs": 45, "fat": 25, "rationale": "Omega-3 rich dinner", "preparation_steps": ["Bake salmon", "Cook quinoa"]}
}`

func TestGenerateMealPlan(t *testing.T) {
	t.Run("returns validated plan for clean JSON", func(t *testing.T) {
		textGen := &MockTextGenerator{response: mealModelOutput}
		svc := NewMealService(textGen)

		plan, err := svc.GenerateMealPlan(context.Background(), testProfile())
		if err != nil {
			t.Fatalf("GenerateMealPlan() error = %v", err)
		}
		if plan.Breakfast.Name != "Oatmeal Bowl" {
			t.Errorf("Breakfast.Name = %q", plan.Breakfast.Name)
		}
		if plan.Dinner.Fat != 25 {
			t.Errorf("Dinner.Fat = %v, want 25", plan.Dinner.Fat)
		}
	})

	t.Run("strips markdown fences before validation", func(t *testing.T) {
		textGen := &MockTextGenerator{response: "```json\n" + mealModelOutput + "\n```"}
		svc := NewMealService(textGen)

		plan, err := svc.GenerateMealPlan(context.Background(), testProfile())
		if err != nil {
			t.Fatalf("GenerateMealPlan() error = %v", err)
		}
		if plan.Snack.Name != "Greek Yogurt" {
			t.Errorf("Snack.Name = %q", plan.Snack.Name)
		}
	})

	t.Run("non-JSON output fails with invalid format", func(t *testing.T) {
		textGen := &MockTextGenerator{response: "Here is your meal plan: eat well!"}
		svc := NewMealService(textGen)

		_, err := svc.GenerateMealPlan(context.Background(), testProfile())
		if !errors.Is(err, domain.ErrInvalidMealPlan) {
			t.Errorf("error = %v, want ErrInvalidMealPlan", err)
		}
	})

	t.Run("missing meal key fails hard", func(t *testing.T) {
		broken := strings.Replace(mealModelOutput, `"snack"`, `"supper"`, 1)
		textGen := &MockTextGenerator{response: broken}
		svc := NewMealService(textGen)

		_, err := svc.GenerateMealPlan(context.Background(), testProfile())
		if !errors.Is(err, domain.ErrMissingKey) {
			t.Errorf("error = %v, want ErrMissingKey", err)
		}
		if err != nil && !strings.Contains(err.Error(), "snack") {
			t.Errorf("error %q should reference snack", err.Error())
		}
	})

	t.Run("upstream failure propagates", func(t *testing.T) {
		textGen := &MockTextGenerator{err: domain.ErrUpstreamFailure}
		svc := NewMealService(textGen)

		_, err := svc.GenerateMealPlan(context.Background(), testProfile())
		if !errors.Is(err, domain.ErrUpstreamFailure) {
			t.Errorf("error = %v, want ErrUpstreamFailure", err)
		}
	})

	t.Run("prompt carries the profile and required keys", func(t *testing.T) {
		textGen := &MockTextGenerator{response: mealModelOutput}
		svc := NewMealService(textGen)

		if _, err := svc.GenerateMealPlan(context.Background(), testProfile()); err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{"Build muscle", "peanuts", "breakfast", "lunch", "snack", "dinner", "preparation_steps"} {
			if !strings.Contains(textGen.lastPrompt, want) {
				t.Errorf("prompt missing %q", want)
			}
		}
	})
}
