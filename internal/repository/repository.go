package repository

import (
	"context"
	"time"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound       = RepositoryError("not found")
	ErrDuplicateEmail = RepositoryError("user with this email already exists")
	ErrUpdateFailed   = RepositoryError("update failed")
	ErrDeleteFailed   = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserUpdate carries the fields an admin may change on a user record.
// Nil fields are left untouched.
type UserUpdate struct {
	Name           *string
	Phone          *string
	SportsCategory *string
	Role           *domain.Role
	CoachID        *primitive.ObjectID
	IsActive       *bool
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	GetAthletesByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error)
	Update(ctx context.Context, id primitive.ObjectID, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// TrainingPlanRepository defines the interface for interacting with training plan data.
type TrainingPlanRepository interface {
	Create(ctx context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingPlan, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.TrainingPlan, error)
	GetActiveByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.TrainingPlan, error)
	Update(ctx context.Context, plan *domain.TrainingPlan) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.PlanStatus) (int64, error)
}

// WorkoutFilter narrows athlete workout listings to a date range.
// Zero bounds are ignored.
type WorkoutFilter struct {
	From time.Time
	To   time.Time
}

// WorkoutRepository defines the interface for interacting with logged sessions.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	GetByAthleteID(ctx context.Context, athleteID primitive.ObjectID, filter WorkoutFilter) ([]domain.Workout, error)
	GetRecentByAthleteID(ctx context.Context, athleteID primitive.ObjectID, limit int64) ([]domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Count(ctx context.Context) (int64, error)
}

// PerformanceRepository defines the interface for metric snapshots.
type PerformanceRepository interface {
	Create(ctx context.Context, perf *domain.Performance) (primitive.ObjectID, error)
	GetByAthleteID(ctx context.Context, athleteID primitive.ObjectID, limit int64) ([]domain.Performance, error)
}

// FeedbackRepository defines the interface for athlete/coach feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *domain.Feedback) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Feedback, error)
	GetByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Feedback, error)
	Update(ctx context.Context, fb *domain.Feedback) error
}

// InjuryRepository defines the interface for reported injuries.
type InjuryRepository interface {
	Create(ctx context.Context, injury *domain.Injury) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Injury, error)
	GetByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Injury, error)
	GetActiveByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Injury, error)
	Update(ctx context.Context, injury *domain.Injury) error
}
