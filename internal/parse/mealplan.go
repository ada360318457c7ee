package parse

import (
	"encoding/json"
	"fmt"

	"github.com/gymcoach/backend/internal/domain"
)

// mealKeys are the four required top-level meal plan keys, in plan order
var mealKeys = []string{"breakfast", "lunch", "snack", "dinner"}

// mealFieldKeys are the eight required fields of every meal object
var mealFieldKeys = []string{
	"name", "description", "calories", "protein",
	"carbs", "fat", "rationale", "preparation_steps",
}

// MealPlan validates a text model's JSON meal plan output and
// materializes the typed records. Unlike the workout and nutrition
// parsers there is no partial-recovery path: any structural deviation
// is a hard failure, because meal display has no sensible defaults.
func MealPlan(content []byte) (*domain.DailyMealPlan, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("%w from LLM: %v", domain.ErrInvalidMealPlan, err)
	}

	meals := make(map[string]domain.Meal, len(mealKeys))
	for _, key := range mealKeys {
		mealRaw, ok := raw[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingKey, key)
		}
		meal, err := parseMeal(key, mealRaw)
		if err != nil {
			return nil, err
		}
		meals[key] = meal
	}

	return &domain.DailyMealPlan{
		Breakfast: meals["breakfast"],
		Lunch:     meals["lunch"],
		Snack:     meals["snack"],
		Dinner:    meals["dinner"],
	}, nil
}

// parseMeal validates one meal object and coerces its fields
func parseMeal(mealKey string, data json.RawMessage) (domain.Meal, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Meal{}, fmt.Errorf("%w in %s: %v", domain.ErrInvalidMealPlan, mealKey, err)
	}

	for _, field := range mealFieldKeys {
		if _, ok := raw[field]; !ok {
			return domain.Meal{}, fmt.Errorf("%w in %s: %s", domain.ErrMissingKey, mealKey, field)
		}
	}

	var meal domain.Meal
	var err error
	if meal.Name, err = decodeString(mealKey, "name", raw["name"]); err != nil {
		return domain.Meal{}, err
	}
	if meal.Description, err = decodeString(mealKey, "description", raw["description"]); err != nil {
		return domain.Meal{}, err
	}
	if meal.Rationale, err = decodeString(mealKey, "rationale", raw["rationale"]); err != nil {
		return domain.Meal{}, err
	}
	if meal.Calories, err = decodeNumber(mealKey, "calories", raw["calories"]); err != nil {
		return domain.Meal{}, err
	}
	if meal.Protein, err = decodeNumber(mealKey, "protein", raw["protein"]); err != nil {
		return domain.Meal{}, err
	}
	if meal.Carbs, err = decodeNumber(mealKey, "carbs", raw["carbs"]); err != nil {
		return domain.Meal{}, err
	}
	if meal.Fat, err = decodeNumber(mealKey, "fat", raw["fat"]); err != nil {
		return domain.Meal{}, err
	}
	if err = json.Unmarshal(raw["preparation_steps"], &meal.PreparationSteps); err != nil {
		return domain.Meal{}, invalidField(mealKey, "preparation_steps", err)
	}
	if meal.PreparationSteps == nil {
		return domain.Meal{}, nullField(mealKey, "preparation_steps")
	}

	return meal, nil
}

// decodeString and decodeNumber decode through pointers so that a JSON
// null is distinguishable from a present value; Unmarshal into a plain
// string or float64 silently ignores null.
func decodeString(mealKey, field string, data json.RawMessage) (string, error) {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", invalidField(mealKey, field, err)
	}
	if s == nil {
		return "", nullField(mealKey, field)
	}
	return *s, nil
}

func decodeNumber(mealKey, field string, data json.RawMessage) (float64, error) {
	var f *float64
	if err := json.Unmarshal(data, &f); err != nil {
		return 0, invalidField(mealKey, field, err)
	}
	if f == nil {
		return 0, nullField(mealKey, field)
	}
	return *f, nil
}

func nullField(mealKey, field string) error {
	return fmt.Errorf("%w in %s: %s is null", domain.ErrInvalidMealPlan, mealKey, field)
}

func invalidField(mealKey, field string, err error) error {
	return fmt.Errorf("%w in %s: invalid %s: %v", domain.ErrInvalidMealPlan, mealKey, field, err)
}
