package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CoachHandler holds the coach service dependency.
type CoachHandler struct {
	coachService service.CoachService
}

// NewCoachHandler creates a new CoachHandler.
func NewCoachHandler(coachService service.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// --- Request Structs ---

// PlanRequest is the payload for creating or replacing a training plan.
// CoachID never appears here; it always comes from the token.
type PlanRequest struct {
	Title       string               `json:"title" binding:"required,max=200"`
	Description string               `json:"description" binding:"required,max=2000"`
	AthleteIDs  []string             `json:"athleteIds"`
	Category    domain.PlanCategory  `json:"category" binding:"required"`
	Duration    domain.PlanDuration  `json:"duration" binding:"required"`
	StartDate   time.Time            `json:"startDate" binding:"required"`
	EndDate     time.Time            `json:"endDate" binding:"required"`
	Workouts    []domain.PlanWorkout `json:"workouts"`
	Goals       []domain.PlanGoal    `json:"goals"`
	Status      domain.PlanStatus    `json:"status"`
	IsActive    *bool                `json:"isActive"`
	// CompletionRate is maintained by the coach, 0-100.
	CompletionRate int `json:"completionRate"`
}

func (r *PlanRequest) toDomain() (*domain.TrainingPlan, error) {
	athleteIDs := make([]primitive.ObjectID, 0, len(r.AthleteIDs))
	for _, hex := range r.AthleteIDs {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, fmt.Errorf("invalid athlete ID %q", hex)
		}
		athleteIDs = append(athleteIDs, id)
	}

	isActive := true // Plans default to active unless explicitly disabled
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &domain.TrainingPlan{
		Title:          r.Title,
		Description:    r.Description,
		AthleteIDs:     athleteIDs,
		Category:       r.Category,
		Duration:       r.Duration,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Workouts:       r.Workouts,
		Goals:          r.Goals,
		Status:         r.Status,
		IsActive:       isActive,
		CompletionRate: r.CompletionRate,
	}, nil
}

// FeedbackResponseRequest carries the coach's reply to athlete feedback.
type FeedbackResponseRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

// --- Plan Handlers ---

// CreatePlan creates a training plan owned by the calling coach.
func (h *CoachHandler) CreatePlan(c *gin.Context) {
	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	plan, err := req.toDomain()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.coachService.CreatePlan(c.Request.Context(), coachID, plan)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, newPlanView(*created, time.Now().UTC()))
}

// ListPlans returns the calling coach's plans.
func (h *CoachHandler) ListPlans(c *gin.Context) {
	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	plans, err := h.coachService.ListPlans(c.Request.Context(), coachID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	views := planViews(plans, time.Now().UTC())
	respondList(c, views, len(views))
}

// GetPlan returns one of the calling coach's plans.
func (h *CoachHandler) GetPlan(c *gin.Context) {
	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	planID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	plan, err := h.coachService.GetPlan(c.Request.Context(), coachID, planID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, newPlanView(*plan, time.Now().UTC()))
}

// UpdatePlan replaces one of the calling coach's plans.
func (h *CoachHandler) UpdatePlan(c *gin.Context) {
	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	planID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	incoming, err := req.toDomain()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.coachService.UpdatePlan(c.Request.Context(), coachID, planID, incoming)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, newPlanView(*updated, time.Now().UTC()))
}

// DeletePlan removes one of the calling coach's plans.
func (h *CoachHandler) DeletePlan(c *gin.Context) {
	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	planID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.coachService.DeletePlan(c.Request.Context(), coachID, planID); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, "Training plan deleted successfully")
}

// DownloadPlanReport renders the plan as a PDF and returns a short-lived
// download URL.
func (h *CoachHandler) DownloadPlanReport(c *gin.Context) {
	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	planID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	url, err := h.coachService.PlanReportURL(c.Request.Context(), coachID, planID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"downloadUrl": url})
}

// --- Athlete Oversight Handlers ---

// ListAthletes returns the athletes assigned to the calling coach.
func (h *CoachHandler) ListAthletes(c *gin.Context) {
	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	athletes, err := h.coachService.ListAthletes(c.Request.Context(), coachID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, athletes, len(athletes))
}

// AthleteProgress returns a managed athlete's recent workouts and
// performance snapshots.
func (h *CoachHandler) AthleteProgress(c *gin.Context) {
	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	athleteID, ok := parseIDParam(c, "athleteId")
	if !ok {
		return
	}

	progress, err := h.coachService.AthleteProgress(c.Request.Context(), coachID, athleteID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, progressView{
		Workouts:    workoutViews(progress.Workouts),
		Performance: progress.Performance,
	})
}

// ListAthleteInjuries returns a managed athlete's unresolved injuries.
func (h *CoachHandler) ListAthleteInjuries(c *gin.Context) {
	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	athleteID, ok := parseIDParam(c, "athleteId")
	if !ok {
		return
	}

	injuries, err := h.coachService.ListAthleteInjuries(c.Request.Context(), coachID, athleteID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	views := injuryViews(injuries, time.Now().UTC())
	respondList(c, views, len(views))
}

// --- Feedback Handlers ---

// RespondToFeedback attaches the calling coach's reply to feedback
// addressed to them.
func (h *CoachHandler) RespondToFeedback(c *gin.Context) {
	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	feedbackID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req FeedbackResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	fb, err := h.coachService.RespondToFeedback(c.Request.Context(), coachID, feedbackID, req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, newFeedbackView(*fb))
}
