package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/repository"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AthleteHandler holds the athlete service dependency.
type AthleteHandler struct {
	athleteService service.AthleteService
}

// NewAthleteHandler creates a new AthleteHandler.
func NewAthleteHandler(athleteService service.AthleteService) *AthleteHandler {
	return &AthleteHandler{athleteService: athleteService}
}

// --- Request Structs ---

// WorkoutRequest is the payload for logging or updating a session.
// Completed is a pointer so an omitted field defaults to true, matching
// the common case of logging a session that happened.
type WorkoutRequest struct {
	TrainingPlanID   string                 `json:"trainingPlanId" binding:"required"`
	Date             time.Time              `json:"date" binding:"required"`
	Exercises        []domain.ExerciseLog   `json:"exercises"`
	TotalDuration    int                    `json:"totalDuration" binding:"required"`
	CaloriesBurned   int                    `json:"caloriesBurned"`
	DifficultyRating int                    `json:"difficultyRating"`
	FatigueLevel     int                    `json:"fatigueLevel"`
	Mood             domain.Mood            `json:"mood"`
	Notes            string                 `json:"notes"`
	Injuries         []domain.WorkoutInjury `json:"injuries"`
	Completed        *bool                  `json:"completed"`
	Skipped          bool                   `json:"skipped"`
	SkipReason       string                 `json:"skipReason"`
}

func (r *WorkoutRequest) toDomain() (*domain.Workout, error) {
	planID, err := primitive.ObjectIDFromHex(r.TrainingPlanID)
	if err != nil {
		return nil, fmt.Errorf("invalid trainingPlanId %q", r.TrainingPlanID)
	}

	completed := true
	if r.Completed != nil {
		completed = *r.Completed
	}

	return &domain.Workout{
		TrainingPlanID:   planID,
		Date:             r.Date,
		Exercises:        r.Exercises,
		TotalDuration:    r.TotalDuration,
		CaloriesBurned:   r.CaloriesBurned,
		DifficultyRating: r.DifficultyRating,
		FatigueLevel:     r.FatigueLevel,
		Mood:             r.Mood,
		Notes:            r.Notes,
		Injuries:         r.Injuries,
		Completed:        completed,
		Skipped:          r.Skipped,
		SkipReason:       r.SkipReason,
	}, nil
}

// PerformanceRequest is the payload for logging a metric snapshot.
type PerformanceRequest struct {
	Date             time.Time `json:"date" binding:"required"`
	Speed            *float64  `json:"speed"`
	Strength         *float64  `json:"strength"`
	Endurance        *float64  `json:"endurance"`
	Flexibility      *float64  `json:"flexibility"`
	Weight           *float64  `json:"weight"`
	BodyFat          *float64  `json:"bodyFat"`
	RestingHeartRate *int      `json:"restingHeartRate"`
	Notes            string    `json:"notes"`
}

func (r *PerformanceRequest) toDomain() *domain.Performance {
	return &domain.Performance{
		Date:             r.Date,
		Speed:            r.Speed,
		Strength:         r.Strength,
		Endurance:        r.Endurance,
		Flexibility:      r.Flexibility,
		Weight:           r.Weight,
		BodyFat:          r.BodyFat,
		RestingHeartRate: r.RestingHeartRate,
		Notes:            r.Notes,
	}
}

// FeedbackRequest is the payload for sending feedback to a coach.
type FeedbackRequest struct {
	CoachID        string                  `json:"coachId" binding:"required"`
	TrainingPlanID *string                 `json:"trainingPlanId"`
	WorkoutID      *string                 `json:"workoutId"`
	Type           domain.FeedbackType     `json:"type" binding:"required"`
	Rating         *int                    `json:"rating"`
	Message        string                  `json:"message" binding:"required,max=2000"`
	Priority       domain.FeedbackPriority `json:"priority"`
	Tags           []string                `json:"tags"`
}

func (r *FeedbackRequest) toDomain() (*domain.Feedback, error) {
	coachID, err := primitive.ObjectIDFromHex(r.CoachID)
	if err != nil {
		return nil, fmt.Errorf("invalid coachId %q", r.CoachID)
	}

	fb := &domain.Feedback{
		CoachID:  coachID,
		Type:     r.Type,
		Rating:   r.Rating,
		Message:  r.Message,
		Priority: r.Priority,
		Tags:     r.Tags,
	}
	if r.TrainingPlanID != nil {
		planID, err := primitive.ObjectIDFromHex(*r.TrainingPlanID)
		if err != nil {
			return nil, fmt.Errorf("invalid trainingPlanId %q", *r.TrainingPlanID)
		}
		fb.TrainingPlanID = &planID
	}
	if r.WorkoutID != nil {
		workoutID, err := primitive.ObjectIDFromHex(*r.WorkoutID)
		if err != nil {
			return nil, fmt.Errorf("invalid workoutId %q", *r.WorkoutID)
		}
		fb.WorkoutID = &workoutID
	}
	return fb, nil
}

// InjuryRequest is the payload for reporting or updating an injury.
type InjuryRequest struct {
	BodyPart             string                `json:"bodyPart" binding:"required,max=100"`
	Severity             domain.InjurySeverity `json:"severity" binding:"required"`
	Description          string                `json:"description" binding:"required,max=2000"`
	DateOccurred         time.Time             `json:"dateOccurred" binding:"required"`
	ExpectedRecoveryDate *time.Time            `json:"expectedRecoveryDate"`
	ActualRecoveryDate   *time.Time            `json:"actualRecoveryDate"`
	Treatment            string                `json:"treatment"`
	Restrictions         []domain.Restriction  `json:"restrictions"`
	Status               domain.InjuryStatus   `json:"status"`
	MedicalNotes         string                `json:"medicalNotes"`
	FollowUps            []domain.FollowUp     `json:"followUpDates"`
	RelatedWorkoutID     *string               `json:"relatedWorkoutId"`
	PainLevel            int                   `json:"painLevel"`
}

func (r *InjuryRequest) toDomain() (*domain.Injury, error) {
	injury := &domain.Injury{
		BodyPart:             r.BodyPart,
		Severity:             r.Severity,
		Description:          r.Description,
		DateOccurred:         r.DateOccurred,
		ExpectedRecoveryDate: r.ExpectedRecoveryDate,
		ActualRecoveryDate:   r.ActualRecoveryDate,
		Treatment:            r.Treatment,
		Restrictions:         r.Restrictions,
		Status:               r.Status,
		MedicalNotes:         r.MedicalNotes,
		FollowUps:            r.FollowUps,
		PainLevel:            r.PainLevel,
	}
	if r.RelatedWorkoutID != nil {
		workoutID, err := primitive.ObjectIDFromHex(*r.RelatedWorkoutID)
		if err != nil {
			return nil, fmt.Errorf("invalid relatedWorkoutId %q", *r.RelatedWorkoutID)
		}
		injury.RelatedWorkoutID = &workoutID
	}
	return injury, nil
}

// --- Plan Handlers ---

// ListPlans returns the caller's active assigned plans.
func (h *AthleteHandler) ListPlans(c *gin.Context) {
	athleteID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	plans, err := h.athleteService.ListPlans(c.Request.Context(), athleteID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	views := planViews(plans, time.Now().UTC())
	respondList(c, views, len(views))
}

// --- Workout Handlers ---

// LogWorkout records a session for the caller.
func (h *AthleteHandler) LogWorkout(c *gin.Context) {
	athleteID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	workout, err := req.toDomain()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.athleteService.LogWorkout(c.Request.Context(), athleteID, workout)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, newWorkoutView(*created))
}

// ListWorkouts returns the caller's sessions, optionally bounded by
// startDate/endDate query parameters (RFC 3339 or YYYY-MM-DD).
func (h *AthleteHandler) ListWorkouts(c *gin.Context) {
	athleteID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var filter repository.WorkoutFilter
	if filter.From, err = parseDateQuery(c.Query("startDate")); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid startDate format")
		return
	}
	if filter.To, err = parseDateQuery(c.Query("endDate")); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid endDate format")
		return
	}

	workouts, err := h.athleteService.ListWorkouts(c.Request.Context(), athleteID, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	views := workoutViews(workouts)
	respondList(c, views, len(views))
}

// UpdateWorkout replaces one of the caller's session logs.
func (h *AthleteHandler) UpdateWorkout(c *gin.Context) {
	athleteID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	workoutID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	incoming, err := req.toDomain()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.athleteService.UpdateWorkout(c.Request.Context(), athleteID, workoutID, incoming)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, newWorkoutView(*updated))
}

// --- Performance Handlers ---

// LogPerformance records a metric snapshot for the caller.
func (h *AthleteHandler) LogPerformance(c *gin.Context) {
	athleteID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req PerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	created, err := h.athleteService.LogPerformance(c.Request.Context(), athleteID, req.toDomain())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, created)
}

// ListPerformance returns the caller's recent snapshots.
func (h *AthleteHandler) ListPerformance(c *gin.Context) {
	athleteID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	snapshots, err := h.athleteService.ListPerformance(c.Request.Context(), athleteID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, snapshots, len(snapshots))
}

// --- Feedback Handlers ---

// SubmitFeedback sends a message from the caller to a coach.
func (h *AthleteHandler) SubmitFeedback(c *gin.Context) {
	athleteID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	fb, err := req.toDomain()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.athleteService.SubmitFeedback(c.Request.Context(), athleteID, fb)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, newFeedbackView(*created))
}

// ListFeedback returns the caller's feedback threads.
func (h *AthleteHandler) ListFeedback(c *gin.Context) {
	athleteID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	items, err := h.athleteService.ListFeedback(c.Request.Context(), athleteID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	views := feedbackViews(items)
	respondList(c, views, len(views))
}

// --- Injury Handlers ---

// ReportInjury records a new injury for the caller.
func (h *AthleteHandler) ReportInjury(c *gin.Context) {
	athleteID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req InjuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	injury, err := req.toDomain()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.athleteService.ReportInjury(c.Request.Context(), athleteID, injury)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, newInjuryView(*created, time.Now().UTC()))
}

// ListInjuries returns all of the caller's reported injuries.
func (h *AthleteHandler) ListInjuries(c *gin.Context) {
	athleteID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	injuries, err := h.athleteService.ListInjuries(c.Request.Context(), athleteID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	views := injuryViews(injuries, time.Now().UTC())
	respondList(c, views, len(views))
}

// UpdateInjury replaces one of the caller's injury reports.
func (h *AthleteHandler) UpdateInjury(c *gin.Context) {
	athleteID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	injuryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req InjuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	incoming, err := req.toDomain()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.athleteService.UpdateInjury(c.Request.Context(), athleteID, injuryID, incoming)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, newInjuryView(*updated, time.Now().UTC()))
}

// parseDateQuery accepts either an RFC 3339 timestamp or a bare date.
// Empty input yields a zero time, which repositories treat as unbounded.
func parseDateQuery(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
