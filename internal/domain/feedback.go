package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeedbackType type for what a feedback message is about
type FeedbackType string

const (
	FeedbackWorkout  FeedbackType = "workout"
	FeedbackPlan     FeedbackType = "plan"
	FeedbackGeneral  FeedbackType = "general"
	FeedbackInjury   FeedbackType = "injury"
	FeedbackProgress FeedbackType = "progress"
)

// FeedbackPriority type for triage ordering
type FeedbackPriority string

const (
	PriorityLow    FeedbackPriority = "low"
	PriorityMedium FeedbackPriority = "medium"
	PriorityHigh   FeedbackPriority = "high"
	PriorityUrgent FeedbackPriority = "urgent"
)

// FeedbackStatus type for the feedback lifecycle
type FeedbackStatus string

const (
	FeedbackPending  FeedbackStatus = "pending"
	FeedbackReviewed FeedbackStatus = "reviewed"
	FeedbackResolved FeedbackStatus = "resolved"
	FeedbackArchived FeedbackStatus = "archived"
)

// CoachResponse is the coach's reply embedded in a feedback record.
type CoachResponse struct {
	Message     string              `bson:"message" json:"message"`
	RespondedAt time.Time           `bson:"respondedAt" json:"respondedAt"`
	RespondedBy *primitive.ObjectID `bson:"respondedBy,omitempty" json:"respondedBy,omitempty"`
}

// Feedback is a message from an athlete to a coach, optionally tied to a
// plan or a workout.
type Feedback struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	AthleteID      primitive.ObjectID  `bson:"athleteId" json:"athleteId"`
	CoachID        primitive.ObjectID  `bson:"coachId" json:"coachId"`
	TrainingPlanID *primitive.ObjectID `bson:"trainingPlanId,omitempty" json:"trainingPlanId,omitempty"`
	WorkoutID      *primitive.ObjectID `bson:"workoutId,omitempty" json:"workoutId,omitempty"`
	Type           FeedbackType        `bson:"type" json:"type"`
	Rating         *int                `bson:"rating,omitempty" json:"rating,omitempty"` // 1-5
	Message        string              `bson:"message" json:"message"`
	Priority       FeedbackPriority    `bson:"priority" json:"priority"`
	CoachResponse  *CoachResponse      `bson:"coachResponse,omitempty" json:"coachResponse,omitempty"`
	Status         FeedbackStatus      `bson:"status" json:"status"`
	Tags           []string            `bson:"tags,omitempty" json:"tags,omitempty"`
	IsRead         bool                `bson:"isRead" json:"isRead"`
	ReadAt         *time.Time          `bson:"readAt,omitempty" json:"readAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func validFeedbackType(t FeedbackType) bool {
	switch t {
	case FeedbackWorkout, FeedbackPlan, FeedbackGeneral, FeedbackInjury, FeedbackProgress:
		return true
	}
	return false
}

func validFeedbackPriority(p FeedbackPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func validFeedbackStatus(s FeedbackStatus) bool {
	switch s {
	case FeedbackPending, FeedbackReviewed, FeedbackResolved, FeedbackArchived:
		return true
	}
	return false
}

// Normalize applies the derive-before-persist rules: injury feedback
// without an explicit priority escalates to urgent, an attached response
// moves pending feedback to reviewed, marking read stamps readAt, and tags
// are trimmed and lowercased.
func (f *Feedback) Normalize(now time.Time) {
	if f.Priority == "" {
		if f.Type == FeedbackInjury {
			f.Priority = PriorityUrgent
		} else {
			f.Priority = PriorityMedium
		}
	}
	if f.Status == "" {
		if f.CoachResponse != nil {
			f.Status = FeedbackReviewed
		} else {
			f.Status = FeedbackPending
		}
	}
	if f.IsRead && f.ReadAt == nil {
		t := now
		f.ReadAt = &t
	}
	for i, tag := range f.Tags {
		f.Tags[i] = strings.ToLower(strings.TrimSpace(tag))
	}
}

// Validate checks a feedback record before persistence.
func (f *Feedback) Validate() error {
	errs := FieldErrors{}

	if f.AthleteID.IsZero() {
		errs.Add("athleteId", "athlete ID is required")
	}
	if f.CoachID.IsZero() {
		errs.Add("coachId", "coach ID is required")
	}
	if !validFeedbackType(f.Type) {
		errs.Add("type", "invalid feedback type")
	}
	if f.Rating != nil && (*f.Rating < 1 || *f.Rating > 5) {
		errs.Add("rating", "rating must be between 1 and 5")
	}
	if f.Message == "" {
		errs.Add("message", "feedback message is required")
	} else if len(f.Message) > 2000 {
		errs.Add("message", "message cannot exceed 2000 characters")
	}
	if f.Priority != "" && !validFeedbackPriority(f.Priority) {
		errs.Add("priority", "invalid priority level")
	}
	if f.Status != "" && !validFeedbackStatus(f.Status) {
		errs.Add("status", "invalid status")
	}
	if f.CoachResponse != nil {
		if f.CoachResponse.Message == "" {
			errs.Add("coachResponse.message", "response message is required")
		} else if len(f.CoachResponse.Message) > 2000 {
			errs.Add("coachResponse.message", "response message cannot exceed 2000 characters")
		}
	}

	return errs.Err()
}

// IsUrgent reports whether the feedback needs immediate coach attention.
func (f *Feedback) IsUrgent() bool {
	return f.Priority == PriorityUrgent || f.Type == FeedbackInjury
}

// ResponseTime returns whole hours between submission and the coach's
// response. ok is false when no response is attached yet.
func (f *Feedback) ResponseTime() (hours int, ok bool) {
	if f.CoachResponse == nil || f.CoachResponse.RespondedAt.IsZero() {
		return 0, false
	}
	return int(f.CoachResponse.RespondedAt.Sub(f.CreatedAt).Hours()), true
}
