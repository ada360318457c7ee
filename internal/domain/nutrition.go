package domain

// NutritionInfo is the macro profile of a food or meal. A FoodAnalysis
// is only valid when all four values are present and non-zero.
type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"` // grams
	Carbs    float64 `json:"carbs"`   // grams
	Fat      float64 `json:"fat"`     // grams
}

// Complete reports whether every macro was extracted with a non-zero value
func (n NutritionInfo) Complete() bool {
	return n.Calories > 0 && n.Protein > 0 && n.Carbs > 0 && n.Fat > 0
}

// FoodAnalysis is the result of scanning one food image
type FoodAnalysis struct {
	FoodItems      []string      `json:"food_items"`
	Nutrition      NutritionInfo `json:"nutrition"`
	HealthBenefits []string      `json:"health_benefits"`
	Concerns       []string      `json:"concerns"`
}

// FoodScanResponse is the envelope returned by the food scan endpoint
type FoodScanResponse struct {
	Success  bool          `json:"success"`
	Analysis *FoodAnalysis `json:"analysis"`
	Error    *string       `json:"error"`
}
