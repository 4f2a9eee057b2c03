package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/notify"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/report"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/repository"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrReportGeneration is returned when the PDF rendering itself fails.
var ErrReportGeneration = errors.New("failed to generate plan report")

// Recent-history limits for the athlete progress view.
const (
	progressWorkoutLimit     = 30
	progressPerformanceLimit = 10
)

// AthleteProgress bundles an athlete's recent activity for their coach.
type AthleteProgress struct {
	Workouts    []domain.Workout     `json:"workouts"`
	Performance []domain.Performance `json:"performance"`
}

// CoachService covers plan authoring, athlete oversight and feedback
// responses.
type CoachService interface {
	// Plan Management
	CreatePlan(ctx context.Context, coachID primitive.ObjectID, plan *domain.TrainingPlan) (*domain.TrainingPlan, error)
	ListPlans(ctx context.Context, coachID primitive.ObjectID) ([]domain.TrainingPlan, error)
	GetPlan(ctx context.Context, coachID, planID primitive.ObjectID) (*domain.TrainingPlan, error)
	UpdatePlan(ctx context.Context, coachID, planID primitive.ObjectID, incoming *domain.TrainingPlan) (*domain.TrainingPlan, error)
	DeletePlan(ctx context.Context, coachID, planID primitive.ObjectID) error
	PlanReportURL(ctx context.Context, coachID, planID primitive.ObjectID) (string, error)

	// Athlete Oversight
	ListAthletes(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error)
	AthleteProgress(ctx context.Context, coachID, athleteID primitive.ObjectID) (*AthleteProgress, error)
	ListAthleteInjuries(ctx context.Context, coachID, athleteID primitive.ObjectID) ([]domain.Injury, error)

	// Feedback
	RespondToFeedback(ctx context.Context, coachID, feedbackID primitive.ObjectID, message string) (*domain.Feedback, error)
}

// coachService implements the CoachService interface.
type coachService struct {
	userRepo      repository.UserRepository
	planRepo      repository.TrainingPlanRepository
	workoutRepo   repository.WorkoutRepository
	perfRepo      repository.PerformanceRepository
	feedbackRepo  repository.FeedbackRepository
	injuryRepo    repository.InjuryRepository
	reportStorage storage.ReportStorage
	notifier      notify.Notifier
	refs          referenceChecker
}

// NewCoachService creates a new instance of coachService.
func NewCoachService(
	userRepo repository.UserRepository,
	planRepo repository.TrainingPlanRepository,
	workoutRepo repository.WorkoutRepository,
	perfRepo repository.PerformanceRepository,
	feedbackRepo repository.FeedbackRepository,
	injuryRepo repository.InjuryRepository,
	reportStorage storage.ReportStorage,
	notifier notify.Notifier,
) CoachService {
	return &coachService{
		userRepo:      userRepo,
		planRepo:      planRepo,
		workoutRepo:   workoutRepo,
		perfRepo:      perfRepo,
		feedbackRepo:  feedbackRepo,
		injuryRepo:    injuryRepo,
		reportStorage: reportStorage,
		notifier:      notifier,
		refs:          newReferenceChecker(userRepo),
	}
}

// === Plan Management ===

// CreatePlan validates and persists a new plan owned by the coach, then
// notifies each assigned athlete best-effort.
func (s *coachService) CreatePlan(ctx context.Context, coachID primitive.ObjectID, plan *domain.TrainingPlan) (*domain.TrainingPlan, error) {
	if coachID.IsZero() {
		return nil, errors.New("coach ID is required")
	}
	plan.CoachID = coachID // Ownership comes from the token, never the payload
	plan.Normalize()

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if err := s.refs.EnsureAthletes(ctx, plan.AthleteIDs, "athleteIds"); err != nil {
		return nil, err
	}
	if !plan.DurationMatchesDates() {
		// Intentionally lenient: the stored dates win over the stated weeks.
		log.Printf("WARN: plan %q end date does not match duration calculation", plan.Title)
	}

	planID, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = planID

	s.notifyAssignedAthletes(ctx, plan)
	return plan, nil
}

// ListPlans returns the coach's own plans, newest first. The coach's id is
// a hard server-side filter, never a client parameter.
func (s *coachService) ListPlans(ctx context.Context, coachID primitive.ObjectID) ([]domain.TrainingPlan, error) {
	if coachID.IsZero() {
		return nil, errors.New("coach ID is required")
	}
	return s.planRepo.GetByCoachID(ctx, coachID)
}

// GetPlan fetches one plan, enforcing existence before ownership.
func (s *coachService) GetPlan(ctx context.Context, coachID, planID primitive.ObjectID) (*domain.TrainingPlan, error) {
	return s.ownedPlan(ctx, coachID, planID)
}

// UpdatePlan replaces the mutable fields of an owned plan. Concurrent
// updates resolve last-write-wins.
func (s *coachService) UpdatePlan(ctx context.Context, coachID, planID primitive.ObjectID, incoming *domain.TrainingPlan) (*domain.TrainingPlan, error) {
	existing, err := s.ownedPlan(ctx, coachID, planID)
	if err != nil {
		return nil, err
	}

	incoming.ID = existing.ID
	incoming.CoachID = existing.CoachID
	incoming.CreatedAt = existing.CreatedAt
	incoming.LastModifiedBy = &coachID
	incoming.Normalize()

	if err := incoming.Validate(); err != nil {
		return nil, err
	}
	if err := s.refs.EnsureAthletes(ctx, incoming.AthleteIDs, "athleteIds"); err != nil {
		return nil, err
	}
	if !incoming.DurationMatchesDates() {
		log.Printf("WARN: plan %q end date does not match duration calculation", incoming.Title)
	}

	if err := s.planRepo.Update(ctx, incoming); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return incoming, nil
}

// DeletePlan removes an owned plan outright. Nothing cascades: workouts
// and feedback keep their dangling plan references.
func (s *coachService) DeletePlan(ctx context.Context, coachID, planID primitive.ObjectID) error {
	if _, err := s.ownedPlan(ctx, coachID, planID); err != nil {
		return err
	}
	err := s.planRepo.Delete(ctx, planID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// PlanReportURL renders the plan as a PDF, stores it, and returns a
// short-lived download URL.
func (s *coachService) PlanReportURL(ctx context.Context, coachID, planID primitive.ObjectID) (string, error) {
	plan, err := s.ownedPlan(ctx, coachID, planID)
	if err != nil {
		return "", err
	}

	coach, err := s.userRepo.GetByID(ctx, coachID)
	if err != nil {
		return "", err
	}
	athletes := make([]domain.User, 0, len(plan.AthleteIDs))
	for _, id := range plan.AthleteIDs {
		athlete, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue // Deleted athletes are skipped, not fatal
			}
			return "", err
		}
		athletes = append(athletes, *athlete)
	}

	pdfBytes, err := report.BuildPlanReport(plan, coach, athletes)
	if err != nil {
		log.Printf("ERROR: building report for plan %s: %v", planID.Hex(), err)
		return "", ErrReportGeneration
	}

	objectKey := fmt.Sprintf("reports/%s/%s.pdf", planID.Hex(), uuid.NewString())
	if err := s.reportStorage.PutObject(ctx, objectKey, report.PlanReportContentType, pdfBytes); err != nil {
		return "", err
	}

	return s.reportStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
}

// === Athlete Oversight ===

// ListAthletes returns the athletes assigned to this coach.
func (s *coachService) ListAthletes(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error) {
	if coachID.IsZero() {
		return nil, errors.New("coach ID is required")
	}
	athletes, err := s.userRepo.GetAthletesByCoachID(ctx, coachID)
	if err != nil {
		return nil, err
	}
	stripHashes(athletes)
	return athletes, nil
}

// AthleteProgress gathers an athlete's recent workouts and performance
// snapshots. The athlete must be managed by the requesting coach.
func (s *coachService) AthleteProgress(ctx context.Context, coachID, athleteID primitive.ObjectID) (*AthleteProgress, error) {
	if err := s.ensureManagedAthlete(ctx, coachID, athleteID); err != nil {
		return nil, err
	}

	workouts, err := s.workoutRepo.GetRecentByAthleteID(ctx, athleteID, progressWorkoutLimit)
	if err != nil {
		return nil, err
	}
	performance, err := s.perfRepo.GetByAthleteID(ctx, athleteID, progressPerformanceLimit)
	if err != nil {
		return nil, err
	}

	return &AthleteProgress{Workouts: workouts, Performance: performance}, nil
}

// ListAthleteInjuries returns a managed athlete's unresolved injuries.
func (s *coachService) ListAthleteInjuries(ctx context.Context, coachID, athleteID primitive.ObjectID) ([]domain.Injury, error) {
	if err := s.ensureManagedAthlete(ctx, coachID, athleteID); err != nil {
		return nil, err
	}
	return s.injuryRepo.GetActiveByAthleteID(ctx, athleteID)
}

// === Feedback ===

// RespondToFeedback attaches the coach's response to owned feedback and
// moves it to reviewed, then notifies the athlete best-effort.
func (s *coachService) RespondToFeedback(ctx context.Context, coachID, feedbackID primitive.ObjectID, message string) (*domain.Feedback, error) {
	if message == "" {
		errs := domain.FieldErrors{}
		errs.Add("message", "response message is required")
		return nil, errs
	}

	fb, err := s.feedbackRepo.GetByID(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if fb.CoachID != coachID {
		return nil, ErrNotAuthorized
	}

	now := time.Now().UTC()
	fb.CoachResponse = &domain.CoachResponse{
		Message:     message,
		RespondedAt: now,
		RespondedBy: &coachID,
	}
	fb.Status = domain.FeedbackReviewed

	if err := fb.Validate(); err != nil {
		return nil, err
	}
	if err := s.feedbackRepo.Update(ctx, fb); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.notifyFeedbackResponded(ctx, fb)
	return fb, nil
}

// === Helpers ===

// ownedPlan loads a plan, returning ErrNotFound when absent and
// ErrNotAuthorized when owned by another coach, in that order.
func (s *coachService) ownedPlan(ctx context.Context, coachID, planID primitive.ObjectID) (*domain.TrainingPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if plan.CoachID != coachID {
		return nil, ErrNotAuthorized
	}
	return plan, nil
}

func (s *coachService) ensureManagedAthlete(ctx context.Context, coachID, athleteID primitive.ObjectID) error {
	athlete, err := s.userRepo.GetByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !athlete.IsAthlete() {
		return ErrNotFound
	}
	if athlete.CoachID == nil || *athlete.CoachID != coachID {
		return ErrNotAuthorized
	}
	return nil
}

// Notification failures never fail the triggering request; the write is
// already durable.
func (s *coachService) notifyAssignedAthletes(ctx context.Context, plan *domain.TrainingPlan) {
	for _, athleteID := range plan.AthleteIDs {
		athlete, err := s.userRepo.GetByID(ctx, athleteID)
		if err != nil {
			log.Printf("WARN: skipping plan notification, athlete %s: %v", athleteID.Hex(), err)
			continue
		}
		if err := s.notifier.PlanAssigned(ctx, *athlete, *plan); err != nil {
			log.Printf("WARN: plan notification to %s failed: %v", athlete.Email, err)
		}
	}
}

func (s *coachService) notifyFeedbackResponded(ctx context.Context, fb *domain.Feedback) {
	athlete, err := s.userRepo.GetByID(ctx, fb.AthleteID)
	if err != nil {
		log.Printf("WARN: skipping feedback notification, athlete %s: %v", fb.AthleteID.Hex(), err)
		return
	}
	if err := s.notifier.FeedbackResponded(ctx, *athlete, *fb); err != nil {
		log.Printf("WARN: feedback notification to %s failed: %v", athlete.Email, err)
	}
}
