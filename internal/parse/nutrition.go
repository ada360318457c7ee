package parse

import (
	"fmt"
	"strings"

	"github.com/gymcoach/backend/internal/domain"
)

// Nutrition analysis section keys
const (
	sectionItems     = "items"
	sectionNutrition = "nutrition"
	sectionBenefits  = "benefits"
	sectionConcerns  = "concerns"
)

var nutritionHeaderRules = []HeaderRule{
	{Section: sectionItems, Phrases: []string{"food items and ingredients"}},
	{Section: sectionNutrition, Phrases: []string{"total nutritional values"}},
	{Section: sectionBenefits, Phrases: []string{"health benefits"}},
	{Section: sectionConcerns, Phrases: []string{"dietary concerns"}},
}

var nutritionSplitter = NewSectionSplitter(nutritionHeaderRules)

// FoodAnalysis parses a vision model's free-text food analysis.
// Failures inside a single line are non-fatal and the line is skipped;
// only the terminal completeness check on the four macro values is
// fatal, because downstream consumers assume complete macros.
func FoodAnalysis(content string) (*domain.FoodAnalysis, error) {
	sections := nutritionSplitter.Split(content)

	analysis := &domain.FoodAnalysis{
		FoodItems:      harvestBullets(sections[sectionItems], true),
		Nutrition:      parseMacros(sections[sectionNutrition]),
		HealthBenefits: harvestBullets(sections[sectionBenefits], false),
		Concerns:       harvestBullets(sections[sectionConcerns], false),
	}

	if !analysis.Nutrition.Complete() {
		return nil, fmt.Errorf("%w: got %+v", domain.ErrIncompleteNutrition, analysis.Nutrition)
	}

	return analysis, nil
}

// harvestBullets keeps only bulleted lines, stripped of their markers.
// When filterHeaderEchoes is set, lines that merely restate the section
// header words are discarded.
func harvestBullets(lines []string, filterHeaderEchoes bool) []string {
	var items []string
	for _, line := range lines {
		if !isNutritionBullet(line) {
			continue
		}
		item := stripNutritionBullet(line)
		if item == "" {
			continue
		}
		if filterHeaderEchoes && isHeaderEcho(item) {
			continue
		}
		items = append(items, item)
	}
	return items
}

// isNutritionBullet reports whether a line begins with a bullet marker
// accepted in food analyses
func isNutritionBullet(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, marker := range []string{"-", "•", "*", "○"} {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

// stripNutritionBullet removes the leading bullet marker and whitespace
func stripNutritionBullet(line string) string {
	return strings.TrimLeft(strings.TrimSpace(line), "-•*○ \t")
}

// isHeaderEcho reports whether an items-section line is a restatement of
// the header words rather than an actual food item
func isHeaderEcho(item string) bool {
	lower := strings.ToLower(item)
	return strings.Contains(lower, "food items") || strings.Contains(lower, "ingredients")
}

// parseMacros routes colon-separated nutrition lines into the four macro
// values by keyword match on the lower-cased key
func parseMacros(lines []string) domain.NutritionInfo {
	var nutrition domain.NutritionInfo

	for _, line := range lines {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(stripNutritionBullet(line[:idx])))
		value := FirstNumberOrZero(line[idx+1:])

		switch {
		case strings.Contains(key, "calories"):
			nutrition.Calories = value
		case strings.Contains(key, "protein"):
			nutrition.Protein = value
		case strings.Contains(key, "carb"):
			nutrition.Carbs = value
		case strings.Contains(key, "fat"):
			nutrition.Fat = value
		}
	}

	return nutrition
}
