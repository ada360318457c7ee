package domain

// Exercise is a single exercise prescription within a workout segment
type Exercise struct {
	Name         string `json:"name"`
	Sets         int    `json:"sets"`
	Reps         string `json:"reps"` // free-form, e.g. "10-12" or "As needed"
	Rest         string `json:"rest"`
	Instructions string `json:"instructions"`
}

// WorkoutSegment is one phase of a daily workout. Exercises is never
// empty: parsing injects a placeholder when nothing usable was found.
type WorkoutSegment struct {
	Motto     string     `json:"motto"`
	Exercises []Exercise `json:"exercises"`
	Duration  string     `json:"duration"`
	VideoURL  *string    `json:"video_url"`
}

// DailyWorkout is one day's full plan: exactly three non-empty segments
type DailyWorkout struct {
	Day         string         `json:"day"`
	Focus       string         `json:"focus"`
	WarmUp      WorkoutSegment `json:"warm_up"`
	MainRoutine WorkoutSegment `json:"main_routine"`
	CoolDown    WorkoutSegment `json:"cool_down"`
}

// WorkoutResponse is the envelope returned by workout generation.
// Parsing failures never surface here; only upstream collaborator
// failures set Success to false.
type WorkoutResponse struct {
	Success     bool           `json:"success"`
	WorkoutPlan []DailyWorkout `json:"workout_plan"`
	Error       *string        `json:"error"`
}
