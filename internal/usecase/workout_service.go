package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gymcoach/backend/internal/domain"
	"github.com/gymcoach/backend/internal/parse"
)

// Fixed per-segment mottos and durations
const (
	warmUpMotto   = "Keep moving—you've got this."
	mainMotto     = "You're doing awesome—keep the energy up."
	coolDownMotto = "Breathe in peace—breathe out strength."

	warmUpDuration   = "10-15 minutes"
	mainDuration     = "30-45 minutes"
	coolDownDuration = "10-15 minutes"
)

// workoutStructure shapes the plan for a primary goal
type workoutStructure struct {
	Splits         []string
	Intensity      string
	Rest           string
	NutritionNote  string
	WarmUpGuidance string
}

// baseStructures maps each primary goal to its training split
var baseStructures = map[domain.PrimaryGoal]workoutStructure{
	domain.GoalBuildMuscle: {
		Splits:    []string{"Upper Body Push", "Lower Body", "Upper Body Pull"},
		Intensity: "High",
		Rest:      "60-90s",
	},
	domain.GoalLoseWeight: {
		Splits:    []string{"HIIT Cardio", "Full Body Strength", "Metabolic Conditioning"},
		Intensity: "Moderate-High",
		Rest:      "30-45s",
	},
	domain.GoalEatHealthier: {
		Splits:    []string{"Full Body", "Mobility & Flexibility", "Light Cardio"},
		Intensity: "Moderate",
		Rest:      "45-60s",
	},
}

// WorkoutServiceConfig holds configuration for the workout service
type WorkoutServiceConfig struct {
	Days     int
	CacheTTL time.Duration
}

// WorkoutService generates multi-day workout plans. Parsing failures
// never surface to the caller: the parser degrades to placeholder
// exercises, so only collaborator failures produce an error envelope.
type WorkoutService struct {
	textGen  domain.TextGenerator
	searcher domain.VideoSearcher
	cache    domain.CacheRepository
	days     int
	cacheTTL time.Duration
}

// NewWorkoutService creates a workout service. searcher may be nil, in
// which case segments carry no video URLs.
func NewWorkoutService(
	textGen domain.TextGenerator,
	searcher domain.VideoSearcher,
	cache domain.CacheRepository,
	config WorkoutServiceConfig,
) *WorkoutService {
	days := config.Days
	if days <= 0 {
		days = 3
	}
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &WorkoutService{
		textGen:  textGen,
		searcher: searcher,
		cache:    cache,
		days:     days,
		cacheTTL: cacheTTL,
	}
}

// GenerateWorkoutPlan builds the full plan. Days are generated
// concurrently; each day's parse is independent and idempotent given
// the same model output.
func (s *WorkoutService) GenerateWorkoutPlan(ctx context.Context, profile *domain.UserProfile) *domain.WorkoutResponse {
	structure := s.buildStructure(profile)

	plan := make([]domain.DailyWorkout, s.days)
	g, gctx := errgroup.WithContext(ctx)

	for day := 1; day <= s.days; day++ {
		g.Go(func() error {
			focus := structure.Splits[(day-1)%len(structure.Splits)]
			daily, err := s.generateDailyWorkout(gctx, profile, structure, focus, day)
			if err != nil {
				return fmt.Errorf("day %d: %w", day, err)
			}
			plan[day-1] = *daily
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("[WORKOUT] plan generation failed: %v", err)
		msg := err.Error()
		return &domain.WorkoutResponse{
			Success:     false,
			WorkoutPlan: []domain.DailyWorkout{},
			Error:       &msg,
		}
	}

	return &domain.WorkoutResponse{
		Success:     true,
		WorkoutPlan: plan,
	}
}

// buildStructure selects the goal's base split and adjusts it for the
// dietary profile
func (s *WorkoutService) buildStructure(profile *domain.UserProfile) workoutStructure {
	structure, ok := baseStructures[profile.PrimaryGoal]
	if !ok {
		structure = baseStructures[domain.GoalEatHealthier]
	}

	if profile.EatingStyle == domain.EatingStyleVegan || profile.EatingStyle == domain.EatingStyleVegetarian {
		structure.NutritionNote = "Include pre-workout protein sources"
	}
	if profile.CaffeineConsumption == domain.ConsumptionNone {
		structure.WarmUpGuidance = "Use a longer 15-20 minute warm-up"
	}

	return structure
}

// generateDailyWorkout runs one text generation plus up to three video
// searches and assembles the day's three segments
func (s *WorkoutService) generateDailyWorkout(
	ctx context.Context,
	profile *domain.UserProfile,
	structure workoutStructure,
	focus string,
	day int,
) (*domain.DailyWorkout, error) {
	prompt := buildWorkoutPrompt(profile, focus, day, structure)
	content, err := s.textGen.Complete(ctx, workoutSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	warmUpVideo := s.findVideo(ctx, focus+" warm up exercises")
	mainVideo := s.findVideo(ctx, fmt.Sprintf("%s %s workout", focus, profile.PrimaryGoal))
	coolDownVideo := s.findVideo(ctx, focus+" cool down stretches")

	parsed := parse.Workout(content)
	if parsed.Degraded {
		log.Printf("[WORKOUT] day %d: model output unusable, serving placeholder plan", day)
	}

	return &domain.DailyWorkout{
		Day:   fmt.Sprintf("Day %d", day),
		Focus: focus,
		WarmUp: domain.WorkoutSegment{
			Motto:     warmUpMotto,
			Exercises: parsed.WarmUp,
			Duration:  warmUpDuration,
			VideoURL:  warmUpVideo,
		},
		MainRoutine: domain.WorkoutSegment{
			Motto:     mainMotto,
			Exercises: parsed.MainRoutine,
			Duration:  mainDuration,
			VideoURL:  mainVideo,
		},
		CoolDown: domain.WorkoutSegment{
			Motto:     coolDownMotto,
			Exercises: parsed.CoolDown,
			Duration:  coolDownDuration,
			VideoURL:  coolDownVideo,
		},
	}, nil
}

// findVideo looks up a demonstration video for a query. Search failures
// are never fatal; the segment simply ships without a video.
func (s *WorkoutService) findVideo(ctx context.Context, query string) *string {
	if s.searcher == nil {
		return nil
	}

	cacheKey := "video:" + strings.ToLower(query)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			return &cached
		} else if err != nil && !errors.Is(err, domain.ErrCacheMiss) {
			log.Printf("[WORKOUT] video cache error for %q: %v", query, err)
		}
	}

	results, err := s.searcher.SearchVideos(ctx, query+" exercise video tutorial demonstration")
	if err != nil {
		log.Printf("[WORKOUT] video search error for %q: %v", query, err)
		return nil
	}

	for _, result := range results {
		if strings.Contains(result.URL, "youtube.com") {
			url := result.URL
			if s.cache != nil {
				if err := s.cache.Set(ctx, cacheKey, url, s.cacheTTL); err != nil {
					log.Printf("[WORKOUT] video cache store error for %q: %v", query, err)
				}
			}
			return &url
		}
	}

	log.Printf("[WORKOUT] no suitable video found for: %q", query)
	return nil
}
