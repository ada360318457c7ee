package usecase

import (
	"fmt"
	"strings"

	"github.com/gymcoach/backend/internal/domain"
)

// System prompts for the model collaborators
const (
	workoutSystemPrompt = "You are a professional fitness coach creating detailed workout plans."

	mealSystemPrompt = "You are a professional nutritionist creating personalized daily meal plans."

	visionSystemPrompt = `You are a nutritional analysis expert. Analyze the food image and respond in exactly this format:

Food Items and Ingredients:
- [identified food item]

Total Nutritional Values:
Calories: [number] kcal
Protein: [number]g
Carbs: [number]g
Fat: [number]g

Health Benefits:
- [benefit]

Dietary Concerns:
- [concern]

Estimate nutritional values for the whole visible portion. Every macro value must be a number.`

	coachSystemPrompt = `You are an AI Health & Gym Coach, equipped to:
1. Answer general fitness and nutrition questions with scientific accuracy
2. Provide motivational support and encouragement
3. Give personalized advice based on user context
4. Share relevant fitness tips and best practices

Always maintain a supportive and professional tone. If asked about medical conditions,
remind users to consult healthcare professionals for medical advice.`
)

// buildWorkoutPrompt asks the text model for one day's workout in the
// pipe-separated three-section format the workout parser understands
func buildWorkoutPrompt(profile *domain.UserProfile, focus string, day int, structure workoutStructure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a detailed %s workout for Day %d considering:\n", focus, day)
	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "- Primary Goal: %s\n", profile.PrimaryGoal)
	fmt.Fprintf(&b, "- Weight: %.1fkg\n", profile.WeightKg)
	fmt.Fprintf(&b, "- Height: %.1fcm\n", profile.HeightCm)
	fmt.Fprintf(&b, "- Diet: %s\n", profile.EatingStyle)
	fmt.Fprintf(&b, "- Meat Eater: %t\n", profile.IsMeatEater)
	fmt.Fprintf(&b, "- Lactose Intolerant: %t\n", profile.IsLactoseIntolerant)
	fmt.Fprintf(&b, "- Allergies: %s\n", strings.Join(profile.Allergies, ", "))
	fmt.Fprintf(&b, "- Caffeine: %s\n", profile.CaffeineConsumption)
	fmt.Fprintf(&b, "- Sugar: %s\n", profile.SugarConsumption)

	fmt.Fprintf(&b, "\nTarget intensity: %s. Typical rest between sets: %s.\n", structure.Intensity, structure.Rest)
	if structure.NutritionNote != "" {
		fmt.Fprintf(&b, "Note: %s.\n", structure.NutritionNote)
	}
	if structure.WarmUpGuidance != "" {
		fmt.Fprintf(&b, "Warm-up guidance: %s.\n", structure.WarmUpGuidance)
	}

	b.WriteString(`
Provide the workout plan in this format:

Warm-up:
- [Exercise Name] | [Instructions]
- [Exercise Name] | [Instructions]

Main Routine:
- [Exercise Name] | Sets: [X] | Reps: [X] | Rest: [Xs] | [Instructions]
- [Exercise Name] | Sets: [X] | Reps: [X] | Rest: [Xs] | [Instructions]

Cool-down:
- [Exercise Name] | [Instructions]
- [Exercise Name] | [Instructions]
`)

	return b.String()
}

// buildMealPrompt asks the text model for a strict-JSON daily meal plan
func buildMealPrompt(profile *domain.UserProfile) string {
	var b strings.Builder

	b.WriteString("Create a personalized daily meal plan based on these user details:\n")
	fmt.Fprintf(&b, "Goal: %s\n", profile.PrimaryGoal)
	fmt.Fprintf(&b, "Weight: %.1fkg\n", profile.WeightKg)
	fmt.Fprintf(&b, "Height: %.1fcm\n", profile.HeightCm)
	fmt.Fprintf(&b, "Meat Eater: %t\n", profile.IsMeatEater)
	fmt.Fprintf(&b, "Lactose Intolerant: %t\n", profile.IsLactoseIntolerant)
	fmt.Fprintf(&b, "Allergies: %s\n", strings.Join(profile.Allergies, ", "))
	fmt.Fprintf(&b, "Eating Style: %s\n", profile.EatingStyle)
	fmt.Fprintf(&b, "Caffeine: %s\n", profile.CaffeineConsumption)
	fmt.Fprintf(&b, "Sugar: %s\n", profile.SugarConsumption)

	b.WriteString(`
You MUST respond with a valid JSON object containing personalized meal recommendations appropriate for this specific user. Return ONLY a JSON object matching this structure:

{
`)
	for i, meal := range []string{"breakfast", "lunch", "snack", "dinner"} {
		fmt.Fprintf(&b, `  %q: {
    "name": "[GENERATE APPROPRIATE NAME]",
    "description": "[GENERATE BRIEF DESCRIPTION]",
    "calories": [APPROPRIATE CALORIE NUMBER],
    "protein": [APPROPRIATE PROTEIN GRAMS],
    "carbs": [APPROPRIATE CARB GRAMS],
    "fat": [APPROPRIATE FAT GRAMS],
    "rationale": "[EXPLAIN WHY THIS MEAL FITS USER'S NEEDS]",
    "preparation_steps": ["[STEP 1]", "[STEP 2]", "..."]
  }`, meal)
		if i < 3 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")

	fmt.Fprintf(&b, `
IMPORTANT:
- Create realistic, nutritionally appropriate meals for this user's specific profile and goal
- All nutritional values must be numbers without units (no "g" suffix)
- Ensure preparation_steps is an array of strings with clear cooking/preparation instructions
- Provide accurate nutritional values based on the ingredients
- The response must be a valid JSON object with NO text outside the JSON
- For a user trying to %s, adjust calories and macros accordingly
`, strings.ToLower(string(profile.PrimaryGoal)))

	return b.String()
}

// stripJSONFences removes a surrounding markdown code fence that models
// sometimes wrap JSON output in despite instructions
func stripJSONFences(content string) string {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
