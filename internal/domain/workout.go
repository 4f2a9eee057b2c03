package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mood type for how the athlete felt during a session
type Mood string

const (
	MoodExcellent Mood = "excellent"
	MoodGood      Mood = "good"
	MoodAverage   Mood = "average"
	MoodPoor      Mood = "poor"
	MoodExhausted Mood = "exhausted"
)

// LoggedSeverity type for injuries noted inside a workout log. Narrower
// than the standalone Injury severity scale: a critical injury gets its own
// Injury record.
type LoggedSeverity string

const (
	LoggedMinor    LoggedSeverity = "minor"
	LoggedModerate LoggedSeverity = "moderate"
	LoggedSevere   LoggedSeverity = "severe"
)

// ExerciseLog records what the athlete actually did for one exercise.
type ExerciseLog struct {
	Name              string `bson:"name" json:"name"`
	SetsCompleted     int    `bson:"setsCompleted,omitempty" json:"setsCompleted,omitempty"`
	RepsCompleted     string `bson:"repsCompleted,omitempty" json:"repsCompleted,omitempty"`
	DurationCompleted string `bson:"durationCompleted,omitempty" json:"durationCompleted,omitempty"`
	Weight            string `bson:"weight,omitempty" json:"weight,omitempty"`
	Notes             string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// WorkoutInjury is a short injury note attached to a session log.
type WorkoutInjury struct {
	BodyPart    string         `bson:"bodyPart" json:"bodyPart"`
	Severity    LoggedSeverity `bson:"severity" json:"severity"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
}

// Workout represents a single session logged by an athlete.
type Workout struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AthleteID      primitive.ObjectID `bson:"athleteId" json:"athleteId"`
	TrainingPlanID primitive.ObjectID `bson:"trainingPlanId" json:"trainingPlanId"`
	Date           time.Time          `bson:"date" json:"date"`
	Exercises      []ExerciseLog      `bson:"exercises,omitempty" json:"exercises,omitempty"`
	TotalDuration  int                `bson:"totalDuration" json:"totalDuration"` // Minutes
	CaloriesBurned int                `bson:"caloriesBurned,omitempty" json:"caloriesBurned,omitempty"`

	// Self-reported ratings, 1-10.
	DifficultyRating int  `bson:"difficultyRating,omitempty" json:"difficultyRating,omitempty"`
	FatigueLevel     int  `bson:"fatigueLevel,omitempty" json:"fatigueLevel,omitempty"`
	Mood             Mood `bson:"mood,omitempty" json:"mood,omitempty"`

	Notes    string          `bson:"notes,omitempty" json:"notes,omitempty"`
	Injuries []WorkoutInjury `bson:"injuries,omitempty" json:"injuries,omitempty"`

	Completed  bool   `bson:"completed" json:"completed"`
	Skipped    bool   `bson:"skipped" json:"skipped"`
	SkipReason string `bson:"skipReason,omitempty" json:"skipReason,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func validMood(m Mood) bool {
	switch m {
	case MoodExcellent, MoodGood, MoodAverage, MoodPoor, MoodExhausted:
		return true
	}
	return false
}

func validLoggedSeverity(s LoggedSeverity) bool {
	switch s {
	case LoggedMinor, LoggedModerate, LoggedSevere:
		return true
	}
	return false
}

// Validate checks a workout log before persistence. The completed/skipped
// contradiction is reported as ErrConflictingState; everything else comes
// back as itemized field errors.
func (w *Workout) Validate(now time.Time) error {
	if w.Completed && w.Skipped {
		return ErrConflictingState
	}

	errs := FieldErrors{}

	if w.AthleteID.IsZero() {
		errs.Add("athleteId", "athlete ID is required")
	}
	if w.TrainingPlanID.IsZero() {
		errs.Add("trainingPlanId", "training plan ID is required")
	}
	if w.Date.IsZero() {
		errs.Add("date", "workout date is required")
	} else if w.Date.After(now) {
		errs.Add("date", "workout date cannot be in the future")
	}
	if w.TotalDuration < 1 {
		errs.Add("totalDuration", "duration must be at least 1 minute")
	} else if w.TotalDuration > 600 {
		errs.Add("totalDuration", "duration cannot exceed 600 minutes")
	}
	if w.CaloriesBurned < 0 || w.CaloriesBurned > 5000 {
		errs.Add("caloriesBurned", "calories burned must be between 0 and 5000")
	}
	if w.DifficultyRating != 0 && (w.DifficultyRating < 1 || w.DifficultyRating > 10) {
		errs.Add("difficultyRating", "difficulty rating must be between 1 and 10")
	}
	if w.FatigueLevel != 0 && (w.FatigueLevel < 1 || w.FatigueLevel > 10) {
		errs.Add("fatigueLevel", "fatigue level must be between 1 and 10")
	}
	if w.Mood != "" && !validMood(w.Mood) {
		errs.Add("mood", "invalid mood")
	}
	if len(w.Notes) > 2000 {
		errs.Add("notes", "notes cannot exceed 2000 characters")
	}
	if w.Skipped && w.SkipReason == "" {
		errs.Add("skipReason", "skip reason is required for skipped workouts")
	}
	if len(w.SkipReason) > 500 {
		errs.Add("skipReason", "skip reason cannot exceed 500 characters")
	}
	if w.Completed && len(w.Exercises) == 0 {
		errs.Add("exercises", "completed workouts must have at least one exercise")
	}

	for i, ex := range w.Exercises {
		if ex.Name == "" {
			errs.Add(fieldAt("exercises", i, "name"), "exercise name is required")
		} else if len(ex.Name) > 100 {
			errs.Add(fieldAt("exercises", i, "name"), "exercise name cannot exceed 100 characters")
		}
		if ex.SetsCompleted < 0 || ex.SetsCompleted > 100 {
			errs.Add(fieldAt("exercises", i, "setsCompleted"), "sets completed must be between 0 and 100")
		}
		if len(ex.Notes) > 500 {
			errs.Add(fieldAt("exercises", i, "notes"), "exercise notes cannot exceed 500 characters")
		}
	}
	for i, inj := range w.Injuries {
		if inj.BodyPart == "" {
			errs.Add(fieldAt("injuries", i, "bodyPart"), "body part is required")
		} else if len(inj.BodyPart) > 50 {
			errs.Add(fieldAt("injuries", i, "bodyPart"), "body part cannot exceed 50 characters")
		}
		if !validLoggedSeverity(inj.Severity) {
			errs.Add(fieldAt("injuries", i, "severity"), "invalid severity level")
		}
		if len(inj.Description) > 500 {
			errs.Add(fieldAt("injuries", i, "description"), "injury description cannot exceed 500 characters")
		}
	}

	return errs.Err()
}

// IntensityScore derives difficulty x duration / 10. Zero when either
// input is missing.
func (w *Workout) IntensityScore() float64 {
	if w.DifficultyRating == 0 || w.TotalDuration == 0 {
		return 0
	}
	return float64(w.DifficultyRating) * float64(w.TotalDuration) / 10
}

// NeedsRecovery flags sessions with high fatigue or any injury noted.
func (w *Workout) NeedsRecovery() bool {
	return w.FatigueLevel >= 8 || len(w.Injuries) > 0
}
