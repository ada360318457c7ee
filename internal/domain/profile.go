package domain

// PrimaryGoal is the user's main fitness objective
type PrimaryGoal string

const (
	GoalBuildMuscle  PrimaryGoal = "Build muscle"
	GoalLoseWeight   PrimaryGoal = "Lose weight"
	GoalEatHealthier PrimaryGoal = "Eat healthier"
)

// EatingStyle is the user's dietary pattern
type EatingStyle string

const (
	EatingStyleVegan      EatingStyle = "Vegan"
	EatingStyleKeto       EatingStyle = "Keto"
	EatingStylePaleo      EatingStyle = "Paleo"
	EatingStyleVegetarian EatingStyle = "Vegetarian"
	EatingStyleBalanced   EatingStyle = "Balanced"
	EatingStyleNone       EatingStyle = "None"
)

// ConsumptionFrequency describes how often the user consumes caffeine or sugar
type ConsumptionFrequency string

const (
	ConsumptionNone         ConsumptionFrequency = "None"
	ConsumptionOccasionally ConsumptionFrequency = "Occasionally"
	ConsumptionRegularly    ConsumptionFrequency = "Regularly"
	ConsumptionCravings     ConsumptionFrequency = "Cravings"
)

// UserProfile carries the caller's fitness and dietary parameters.
// It is input-side only: it drives prompt construction and is never
// parsed out of model output.
type UserProfile struct {
	PrimaryGoal         PrimaryGoal          `json:"primary_goal" binding:"required,oneof='Build muscle' 'Lose weight' 'Eat healthier'"`
	WeightKg            float64              `json:"weight_kg" binding:"required"`
	HeightCm            float64              `json:"height_cm" binding:"required"`
	IsMeatEater         bool                 `json:"is_meat_eater"`
	IsLactoseIntolerant bool                 `json:"is_lactose_intolerant"`
	Allergies           []string             `json:"allergies"`
	EatingStyle         EatingStyle          `json:"eating_style" binding:"required,oneof=Vegan Keto Paleo Vegetarian Balanced None"`
	CaffeineConsumption ConsumptionFrequency `json:"caffeine_consumption" binding:"required,oneof=None Occasionally Regularly Cravings"`
	SugarConsumption    ConsumptionFrequency `json:"sugar_consumption" binding:"required,oneof=None Occasionally Regularly Cravings"`
}
