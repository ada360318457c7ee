package domain

// Meal is one meal recommendation. All eight fields are required by the
// meal plan validator; there are no sensible defaults to synthesize.
type Meal struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Calories         float64  `json:"calories"`
	Protein          float64  `json:"protein"`
	Carbs            float64  `json:"carbs"`
	Fat              float64  `json:"fat"`
	Rationale        string   `json:"rationale"`
	PreparationSteps []string `json:"preparation_steps"`
}

// DailyMealPlan is a full day's meals
type DailyMealPlan struct {
	Breakfast Meal `json:"breakfast"`
	Lunch     Meal `json:"lunch"`
	Snack     Meal `json:"snack"`
	Dinner    Meal `json:"dinner"`
}
