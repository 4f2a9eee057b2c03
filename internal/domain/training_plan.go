// internal/domain/training_plan.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanCategory type for the training focus of a plan
type PlanCategory string

const (
	CategoryStrength    PlanCategory = "strength"
	CategoryEndurance   PlanCategory = "endurance"
	CategorySkills      PlanCategory = "skills"
	CategoryFlexibility PlanCategory = "flexibility"
	CategorySpeed       PlanCategory = "speed"
	CategoryMixed       PlanCategory = "mixed"
)

// PlanStatus type for the plan lifecycle
type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "draft"
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
	PlanStatusArchived  PlanStatus = "archived"
)

// Intensity type for prescribed exercise intensity
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityMedium   Intensity = "medium"
	IntensityHigh     Intensity = "high"
	IntensityVeryHigh Intensity = "very high"
)

// PlanExercise is a single prescribed exercise inside a scheduled workout.
type PlanExercise struct {
	Name      string    `bson:"name" json:"name"`
	Sets      int       `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps      string    `bson:"reps,omitempty" json:"reps,omitempty"`
	Duration  string    `bson:"duration,omitempty" json:"duration,omitempty"`
	Intensity Intensity `bson:"intensity,omitempty" json:"intensity,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

// PlanWorkout is one scheduled day within a plan.
type PlanWorkout struct {
	Day       int            `bson:"day" json:"day"`
	Title     string         `bson:"title" json:"title"`
	Exercises []PlanExercise `bson:"exercises,omitempty" json:"exercises,omitempty"`
	RestDay   bool           `bson:"restDay" json:"restDay"`
}

// PlanGoal is a measurable target attached to a plan.
type PlanGoal struct {
	Metric   string     `bson:"metric" json:"metric"`
	Target   string     `bson:"target" json:"target"`
	Deadline *time.Time `bson:"deadline,omitempty" json:"deadline,omitempty"`
}

// PlanDuration holds the length and weekly cadence of a plan.
type PlanDuration struct {
	Weeks           int `bson:"weeks" json:"weeks"`
	SessionsPerWeek int `bson:"sessionsPerWeek" json:"sessionsPerWeek"`
}

// TrainingPlan represents a coach-authored program assigned to athletes.
type TrainingPlan struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	CoachID     primitive.ObjectID   `bson:"coachId" json:"coachId"` // Who created the plan
	AthleteIDs  []primitive.ObjectID `bson:"athleteIds,omitempty" json:"athleteIds,omitempty"`
	Category    PlanCategory         `bson:"category" json:"category"`
	Duration    PlanDuration         `bson:"duration" json:"duration"`
	StartDate   time.Time            `bson:"startDate" json:"startDate"`
	EndDate     time.Time            `bson:"endDate" json:"endDate"`
	Workouts    []PlanWorkout        `bson:"workouts,omitempty" json:"workouts,omitempty"`
	Goals       []PlanGoal           `bson:"goals,omitempty" json:"goals,omitempty"`
	Status      PlanStatus           `bson:"status" json:"status"`
	IsActive    bool                 `bson:"isActive" json:"isActive"`

	// CompletionRate is maintained by the coach, 0-100.
	CompletionRate int                 `bson:"completionRate" json:"completionRate"`
	LastModifiedBy *primitive.ObjectID `bson:"lastModifiedBy,omitempty" json:"lastModifiedBy,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func validPlanCategory(c PlanCategory) bool {
	switch c {
	case CategoryStrength, CategoryEndurance, CategorySkills, CategoryFlexibility, CategorySpeed, CategoryMixed:
		return true
	}
	return false
}

func validPlanStatus(s PlanStatus) bool {
	switch s {
	case PlanStatusDraft, PlanStatusActive, PlanStatusCompleted, PlanStatusArchived:
		return true
	}
	return false
}

func validIntensity(i Intensity) bool {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh, IntensityVeryHigh:
		return true
	}
	return false
}

// Normalize fills defaulted fields before persistence.
func (p *TrainingPlan) Normalize() {
	if p.Status == "" {
		p.Status = PlanStatusDraft
	}
	for i := range p.Workouts {
		for j := range p.Workouts[i].Exercises {
			if p.Workouts[i].Exercises[j].Intensity == "" {
				p.Workouts[i].Exercises[j].Intensity = IntensityMedium
			}
		}
	}
}

// Validate checks structural constraints and returns itemized field errors.
func (p *TrainingPlan) Validate() error {
	errs := FieldErrors{}

	if p.Title == "" {
		errs.Add("title", "please provide a title")
	} else if len(p.Title) > 200 {
		errs.Add("title", "title cannot exceed 200 characters")
	}
	if p.Description == "" {
		errs.Add("description", "please provide a description")
	} else if len(p.Description) > 2000 {
		errs.Add("description", "description cannot exceed 2000 characters")
	}
	if p.CoachID.IsZero() {
		errs.Add("coachId", "coach ID is required")
	}
	if !validPlanCategory(p.Category) {
		errs.Add("category", "invalid category")
	}
	if p.Duration.Weeks < 1 || p.Duration.Weeks > 52 {
		errs.Add("duration.weeks", "duration must be between 1 and 52 weeks")
	}
	if p.Duration.SessionsPerWeek < 1 || p.Duration.SessionsPerWeek > 7 {
		errs.Add("duration.sessionsPerWeek", "sessions per week must be between 1 and 7")
	}
	if p.StartDate.IsZero() {
		errs.Add("startDate", "start date is required")
	}
	if p.EndDate.IsZero() {
		errs.Add("endDate", "end date is required")
	} else if !p.StartDate.IsZero() && !p.EndDate.After(p.StartDate) {
		errs.Add("endDate", "end date must be after start date")
	}
	if !validPlanStatus(p.Status) {
		errs.Add("status", "invalid status")
	}
	if p.CompletionRate < 0 || p.CompletionRate > 100 {
		errs.Add("completionRate", "completion rate must be between 0 and 100")
	}

	for i, w := range p.Workouts {
		if w.Day < 1 {
			errs.Add(fieldAt("workouts", i, "day"), "day must be at least 1")
		}
		if w.Title == "" {
			errs.Add(fieldAt("workouts", i, "title"), "workout title is required")
		} else if len(w.Title) > 100 {
			errs.Add(fieldAt("workouts", i, "title"), "title cannot exceed 100 characters")
		}
		for j, ex := range w.Exercises {
			if ex.Name == "" {
				errs.Add(fieldAt(fieldAt("workouts", i, "exercises"), j, "name"), "exercise name is required")
			}
			if ex.Sets != 0 && ex.Sets < 1 {
				errs.Add(fieldAt(fieldAt("workouts", i, "exercises"), j, "sets"), "sets must be at least 1")
			}
			if ex.Intensity != "" && !validIntensity(ex.Intensity) {
				errs.Add(fieldAt(fieldAt("workouts", i, "exercises"), j, "intensity"), "invalid intensity")
			}
			if len(ex.Notes) > 500 {
				errs.Add(fieldAt(fieldAt("workouts", i, "exercises"), j, "notes"), "notes cannot exceed 500 characters")
			}
		}
	}
	for i, g := range p.Goals {
		if g.Metric == "" {
			errs.Add(fieldAt("goals", i, "metric"), "goal metric is required")
		}
		if g.Target == "" {
			errs.Add(fieldAt("goals", i, "target"), "goal target is required")
		}
	}

	return errs.Err()
}

// TotalDays returns the plan length in days.
func (p *TrainingPlan) TotalDays() int {
	return p.Duration.Weeks * 7
}

// TotalSessions returns the number of sessions across the whole plan.
func (p *TrainingPlan) TotalSessions() int {
	return p.Duration.Weeks * p.Duration.SessionsPerWeek
}

// ProgressPercentage computes elapsed time through the plan as 0-100,
// clamped at the boundaries. Computed on read and never persisted.
func (p *TrainingPlan) ProgressPercentage(now time.Time) int {
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return 0
	}
	if now.Before(p.StartDate) {
		return 0
	}
	if now.After(p.EndDate) {
		return 100
	}
	total := p.EndDate.Sub(p.StartDate)
	if total <= 0 {
		return 0
	}
	elapsed := now.Sub(p.StartDate)
	return int(float64(elapsed)/float64(total)*100 + 0.5)
}

// DurationMatchesDates reports whether endDate is within a day of
// startDate + duration. A mismatch is tolerated; callers only warn.
func (p *TrainingPlan) DurationMatchesDates() bool {
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return true
	}
	expected := p.StartDate.AddDate(0, 0, p.TotalDays())
	diff := p.EndDate.Sub(expected)
	if diff < 0 {
		diff = -diff
	}
	return diff <= 24*time.Hour
}
