package parse

import (
	"log"
	"strconv"
	"strings"

	"github.com/gymcoach/backend/internal/domain"
)

// Workout section keys
const (
	SectionWarmUp      = "warm_up"
	SectionMainRoutine = "main_routine"
	SectionCoolDown    = "cool_down"
)

// Main-routine defaults applied when a field is absent or unparseable
const (
	defaultSets         = 3
	defaultReps         = "10-12"
	defaultRest         = "60s"
	placeholderActivity = "Perform at a comfortable pace"
)

var workoutHeaderRules = []HeaderRule{
	{Section: SectionWarmUp, Phrases: []string{"warm-up:", "warmup:"}},
	{Section: SectionMainRoutine, Phrases: []string{"main routine:", "main workout:"}},
	{Section: SectionCoolDown, Phrases: []string{"cool-down:", "cooldown:"}},
}

var workoutSplitter = NewSectionSplitter(workoutHeaderRules)

// ParsedWorkout holds the three exercise lists for a day's workout.
// Every list is non-empty: sections that yielded nothing are populated
// with a single placeholder exercise. Degraded is true when parsing
// produced no usable content at all and the whole result is synthetic,
// an availability-over-fidelity trade-off specific to workouts.
type ParsedWorkout struct {
	WarmUp      []domain.Exercise
	MainRoutine []domain.Exercise
	CoolDown    []domain.Exercise
	Degraded    bool
}

// Workout parses a text model's workout plan into three exercise
// segments. It never fails: malformed lines are logged and skipped, and
// empty segments are filled with placeholders.
func Workout(content string) *ParsedWorkout {
	sections := workoutSplitter.Split(content)

	result := &ParsedWorkout{
		WarmUp:      parseSegment(SectionWarmUp, sections[SectionWarmUp]),
		MainRoutine: parseSegment(SectionMainRoutine, sections[SectionMainRoutine]),
		CoolDown:    parseSegment(SectionCoolDown, sections[SectionCoolDown]),
	}

	result.Degraded = len(result.WarmUp) == 0 && len(result.MainRoutine) == 0 && len(result.CoolDown) == 0

	if len(result.WarmUp) == 0 {
		result.WarmUp = []domain.Exercise{placeholderExercise(SectionWarmUp)}
	}
	if len(result.MainRoutine) == 0 {
		result.MainRoutine = []domain.Exercise{placeholderExercise(SectionMainRoutine)}
	}
	if len(result.CoolDown) == 0 {
		result.CoolDown = []domain.Exercise{placeholderExercise(SectionCoolDown)}
	}

	return result
}

// parseSegment converts the bulleted lines of one section into exercises
func parseSegment(section string, lines []string) []domain.Exercise {
	var exercises []domain.Exercise
	for _, line := range lines {
		if !isBulleted(line) {
			continue
		}
		exercise, ok := parseExerciseLine(section, line)
		if !ok {
			log.Printf("[PARSE] skipping malformed exercise line: %q", line)
			continue
		}
		exercises = append(exercises, exercise)
	}
	return exercises
}

// isBulleted reports whether a line starts with a recognized bullet marker
func isBulleted(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "-") ||
		strings.HasPrefix(trimmed, "•") ||
		strings.HasPrefix(trimmed, "*")
}

// stripBullet removes leading bullet markers and surrounding whitespace
func stripBullet(line string) string {
	return strings.TrimLeft(strings.TrimSpace(line), "-•* \t")
}

// parseExerciseLine splits a bulleted line on pipes and extracts the
// exercise fields. The main routine carries the full
// name|sets|reps|rest|instructions form; warm-up and cool-down use the
// simpler name|instructions form with fixed set/rep values.
func parseExerciseLine(section, line string) (domain.Exercise, bool) {
	parts := strings.Split(stripBullet(line), "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	name := parts[0]
	if name == "" {
		name = "Unnamed Exercise"
	}

	if section != SectionMainRoutine {
		instructions := placeholderActivity
		if len(parts) > 1 && parts[1] != "" {
			instructions = parts[1]
		}
		return domain.Exercise{
			Name:         name,
			Sets:         1,
			Reps:         "As needed",
			Rest:         "None",
			Instructions: instructions,
		}, true
	}

	exercise := domain.Exercise{
		Name: name,
		Sets: defaultSets,
		Reps: defaultReps,
		Rest: defaultRest,
	}

	for _, part := range parts[1:] {
		lower := strings.ToLower(part)
		switch {
		case strings.Contains(lower, "sets:"):
			sets, ok := parseSets(part)
			if !ok {
				return domain.Exercise{}, false
			}
			exercise.Sets = sets
		case strings.Contains(lower, "reps:"):
			exercise.Reps = afterColon(part)
		case strings.Contains(lower, "rest:"):
			exercise.Rest = afterColon(part)
		default:
			exercise.Instructions = part
		}
	}

	return exercise, true
}

// parseSets extracts a positive set count from a "Sets: X" fragment
// using digits-only extraction, defaulting to 3 when no digits exist
func parseSets(part string) (int, bool) {
	var digits strings.Builder
	for _, r := range part {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return defaultSets, true
	}
	sets, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return sets, true
}

// afterColon returns the trimmed text following the last colon
func afterColon(part string) string {
	idx := strings.LastIndex(part, ":")
	if idx < 0 {
		return strings.TrimSpace(part)
	}
	return strings.TrimSpace(part[idx+1:])
}

// placeholderExercise builds the synthetic exercise injected into a
// section that yielded no parseable content
func placeholderExercise(section string) domain.Exercise {
	return domain.Exercise{
		Name:         "Basic " + titleCase(strings.ReplaceAll(section, "_", " ")),
		Sets:         1,
		Reps:         "As needed",
		Rest:         "None",
		Instructions: placeholderActivity,
	}
}

// titleCase capitalizes the first letter of each space-separated word
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
