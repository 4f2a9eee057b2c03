package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Athlete-facing listing limit for performance history.
const performanceHistoryLimit = 50

// AthleteService covers everything an athlete does with their own data:
// viewing assigned plans, logging sessions and metrics, sending feedback
// and reporting injuries.
type AthleteService interface {
	// Plans
	ListPlans(ctx context.Context, athleteID primitive.ObjectID) ([]domain.TrainingPlan, error)

	// Workouts
	LogWorkout(ctx context.Context, athleteID primitive.ObjectID, workout *domain.Workout) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, athleteID primitive.ObjectID, filter repository.WorkoutFilter) ([]domain.Workout, error)
	UpdateWorkout(ctx context.Context, athleteID, workoutID primitive.ObjectID, incoming *domain.Workout) (*domain.Workout, error)

	// Performance
	LogPerformance(ctx context.Context, athleteID primitive.ObjectID, perf *domain.Performance) (*domain.Performance, error)
	ListPerformance(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Performance, error)

	// Feedback
	SubmitFeedback(ctx context.Context, athleteID primitive.ObjectID, fb *domain.Feedback) (*domain.Feedback, error)
	ListFeedback(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Feedback, error)

	// Injuries
	ReportInjury(ctx context.Context, athleteID primitive.ObjectID, injury *domain.Injury) (*domain.Injury, error)
	ListInjuries(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Injury, error)
	UpdateInjury(ctx context.Context, athleteID, injuryID primitive.ObjectID, incoming *domain.Injury) (*domain.Injury, error)
}

// athleteService implements the AthleteService interface.
type athleteService struct {
	planRepo     repository.TrainingPlanRepository
	workoutRepo  repository.WorkoutRepository
	perfRepo     repository.PerformanceRepository
	feedbackRepo repository.FeedbackRepository
	injuryRepo   repository.InjuryRepository
	refs         referenceChecker
}

// NewAthleteService creates a new instance of athleteService.
func NewAthleteService(
	userRepo repository.UserRepository,
	planRepo repository.TrainingPlanRepository,
	workoutRepo repository.WorkoutRepository,
	perfRepo repository.PerformanceRepository,
	feedbackRepo repository.FeedbackRepository,
	injuryRepo repository.InjuryRepository,
) AthleteService {
	return &athleteService{
		planRepo:     planRepo,
		workoutRepo:  workoutRepo,
		perfRepo:     perfRepo,
		feedbackRepo: feedbackRepo,
		injuryRepo:   injuryRepo,
		refs:         newReferenceChecker(userRepo),
	}
}

// === Plans ===

// ListPlans returns the athlete's currently active assigned plans. The
// athlete id is a hard server-side filter, never a client parameter.
func (s *athleteService) ListPlans(ctx context.Context, athleteID primitive.ObjectID) ([]domain.TrainingPlan, error) {
	if athleteID.IsZero() {
		return nil, errors.New("athlete ID is required")
	}
	return s.planRepo.GetActiveByAthleteID(ctx, athleteID)
}

// === Workouts ===

// LogWorkout records a session against one of the athlete's plans. The
// referenced plan must exist; it does not need to be active, since sessions
// may be logged late.
func (s *athleteService) LogWorkout(ctx context.Context, athleteID primitive.ObjectID, workout *domain.Workout) (*domain.Workout, error) {
	if athleteID.IsZero() {
		return nil, errors.New("athlete ID is required")
	}
	workout.AthleteID = athleteID // Ownership comes from the token, never the payload

	if err := workout.Validate(time.Now().UTC()); err != nil {
		return nil, err
	}
	if _, err := s.planRepo.GetByID(ctx, workout.TrainingPlanID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: trainingPlanId does not reference an existing plan", ErrInvalidReference)
		}
		return nil, err
	}

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = workoutID
	return workout, nil
}

// ListWorkouts returns the athlete's own sessions, optionally narrowed to
// a date range, newest first.
func (s *athleteService) ListWorkouts(ctx context.Context, athleteID primitive.ObjectID, filter repository.WorkoutFilter) ([]domain.Workout, error) {
	if athleteID.IsZero() {
		return nil, errors.New("athlete ID is required")
	}
	return s.workoutRepo.GetByAthleteID(ctx, athleteID, filter)
}

// UpdateWorkout replaces the mutable fields of an owned session log,
// enforcing existence before ownership.
func (s *athleteService) UpdateWorkout(ctx context.Context, athleteID, workoutID primitive.ObjectID, incoming *domain.Workout) (*domain.Workout, error) {
	existing, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if existing.AthleteID != athleteID {
		return nil, ErrNotAuthorized
	}

	incoming.ID = existing.ID
	incoming.AthleteID = existing.AthleteID
	incoming.CreatedAt = existing.CreatedAt
	if incoming.TrainingPlanID.IsZero() {
		incoming.TrainingPlanID = existing.TrainingPlanID
	}

	if err := incoming.Validate(time.Now().UTC()); err != nil {
		return nil, err
	}
	if incoming.TrainingPlanID != existing.TrainingPlanID {
		if _, err := s.planRepo.GetByID(ctx, incoming.TrainingPlanID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: trainingPlanId does not reference an existing plan", ErrInvalidReference)
			}
			return nil, err
		}
	}
	if err := s.workoutRepo.Update(ctx, incoming); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return incoming, nil
}

// === Performance ===

// LogPerformance records a metric snapshot for the athlete.
func (s *athleteService) LogPerformance(ctx context.Context, athleteID primitive.ObjectID, perf *domain.Performance) (*domain.Performance, error) {
	if athleteID.IsZero() {
		return nil, errors.New("athlete ID is required")
	}
	perf.AthleteID = athleteID

	if err := perf.Validate(time.Now().UTC()); err != nil {
		return nil, err
	}

	perfID, err := s.perfRepo.Create(ctx, perf)
	if err != nil {
		return nil, err
	}
	perf.ID = perfID
	return perf, nil
}

// ListPerformance returns the athlete's recent snapshots, newest first.
func (s *athleteService) ListPerformance(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Performance, error) {
	if athleteID.IsZero() {
		return nil, errors.New("athlete ID is required")
	}
	return s.perfRepo.GetByAthleteID(ctx, athleteID, performanceHistoryLimit)
}

// === Feedback ===

// SubmitFeedback sends a message to a coach. The addressed coach must
// exist and hold the coach role.
func (s *athleteService) SubmitFeedback(ctx context.Context, athleteID primitive.ObjectID, fb *domain.Feedback) (*domain.Feedback, error) {
	if athleteID.IsZero() {
		return nil, errors.New("athlete ID is required")
	}
	fb.AthleteID = athleteID
	fb.Normalize(time.Now().UTC())

	if err := fb.Validate(); err != nil {
		return nil, err
	}
	if err := s.refs.EnsureCoach(ctx, fb.CoachID, "coachId"); err != nil {
		return nil, err
	}

	fbID, err := s.feedbackRepo.Create(ctx, fb)
	if err != nil {
		return nil, err
	}
	fb.ID = fbID
	return fb, nil
}

// ListFeedback returns the athlete's own feedback threads, newest first.
func (s *athleteService) ListFeedback(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Feedback, error) {
	if athleteID.IsZero() {
		return nil, errors.New("athlete ID is required")
	}
	return s.feedbackRepo.GetByAthleteID(ctx, athleteID)
}

// === Injuries ===

// ReportInjury records a new injury for the athlete.
func (s *athleteService) ReportInjury(ctx context.Context, athleteID primitive.ObjectID, injury *domain.Injury) (*domain.Injury, error) {
	if athleteID.IsZero() {
		return nil, errors.New("athlete ID is required")
	}
	injury.AthleteID = athleteID
	injury.ReportedBy = &athleteID
	injury.Normalize()

	if err := injury.Validate(time.Now().UTC()); err != nil {
		return nil, err
	}

	injuryID, err := s.injuryRepo.Create(ctx, injury)
	if err != nil {
		return nil, err
	}
	injury.ID = injuryID
	return injury, nil
}

// ListInjuries returns all of the athlete's reported injuries, newest
// first, including recovered ones.
func (s *athleteService) ListInjuries(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Injury, error) {
	if athleteID.IsZero() {
		return nil, errors.New("athlete ID is required")
	}
	return s.injuryRepo.GetByAthleteID(ctx, athleteID)
}

// UpdateInjury replaces the mutable fields of an owned injury report,
// typically to record recovery progress. Existence is checked before
// ownership.
func (s *athleteService) UpdateInjury(ctx context.Context, athleteID, injuryID primitive.ObjectID, incoming *domain.Injury) (*domain.Injury, error) {
	existing, err := s.injuryRepo.GetByID(ctx, injuryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if existing.AthleteID != athleteID {
		return nil, ErrNotAuthorized
	}

	incoming.ID = existing.ID
	incoming.AthleteID = existing.AthleteID
	incoming.ReportedBy = existing.ReportedBy
	incoming.CreatedAt = existing.CreatedAt
	incoming.Normalize()

	if err := incoming.Validate(time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.injuryRepo.Update(ctx, incoming); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return incoming, nil
}
