package domain

import (
	"errors"
	"testing"
	"time"
)

func TestFeedbackNormalizeInjuryEscalatesToUrgent(t *testing.T) {
	f := Feedback{Type: FeedbackInjury}
	f.Normalize(time.Now())

	if f.Priority != PriorityUrgent {
		t.Errorf("Priority = %s, want urgent", f.Priority)
	}
}

func TestFeedbackNormalizeDefaultPriority(t *testing.T) {
	f := Feedback{Type: FeedbackGeneral}
	f.Normalize(time.Now())

	if f.Priority != PriorityMedium {
		t.Errorf("Priority = %s, want medium", f.Priority)
	}
}

func TestFeedbackNormalizeKeepsExplicitPriority(t *testing.T) {
	f := Feedback{Type: FeedbackInjury, Priority: PriorityLow}
	f.Normalize(time.Now())

	if f.Priority != PriorityLow {
		t.Errorf("Priority = %s, want low (explicit value kept)", f.Priority)
	}
}

func TestFeedbackNormalizeResponseSetsReviewed(t *testing.T) {
	f := Feedback{
		Type:          FeedbackPlan,
		CoachResponse: &CoachResponse{Message: "Looks good"},
	}
	f.Normalize(time.Now())

	if f.Status != FeedbackReviewed {
		t.Errorf("Status = %s, want reviewed", f.Status)
	}

	f = Feedback{Type: FeedbackPlan}
	f.Normalize(time.Now())
	if f.Status != FeedbackPending {
		t.Errorf("Status without response = %s, want pending", f.Status)
	}
}

func TestFeedbackNormalizeStampsReadAt(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	f := Feedback{Type: FeedbackGeneral, IsRead: true}
	f.Normalize(now)

	if f.ReadAt == nil || !f.ReadAt.Equal(now) {
		t.Errorf("ReadAt = %v, want %v", f.ReadAt, now)
	}
}

func TestFeedbackNormalizeCleansTags(t *testing.T) {
	f := Feedback{Type: FeedbackGeneral, Tags: []string{" Recovery ", "SLEEP"}}
	f.Normalize(time.Now())

	if f.Tags[0] != "recovery" || f.Tags[1] != "sleep" {
		t.Errorf("Tags = %v, want lowercased and trimmed", f.Tags)
	}
}

func TestFeedbackValidateRatingBounds(t *testing.T) {
	rating := 6
	f := Feedback{
		AthleteID: newTestID(1),
		CoachID:   newTestID(2),
		Type:      FeedbackWorkout,
		Message:   "Tough session",
		Rating:    &rating,
	}
	f.Normalize(time.Now())

	err := f.Validate()
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("Validate() = %v, want FieldErrors", err)
	}
	if _, ok := fieldErrs["rating"]; !ok {
		t.Errorf("expected rating error, got %v", fieldErrs)
	}
}

func TestFeedbackIsUrgent(t *testing.T) {
	f := Feedback{Type: FeedbackInjury, Priority: PriorityLow}
	if !f.IsUrgent() {
		t.Error("injury feedback should always be urgent")
	}

	f = Feedback{Type: FeedbackGeneral, Priority: PriorityUrgent}
	if !f.IsUrgent() {
		t.Error("urgent priority should be urgent")
	}

	f = Feedback{Type: FeedbackGeneral, Priority: PriorityLow}
	if f.IsUrgent() {
		t.Error("low priority general feedback should not be urgent")
	}
}

func TestFeedbackResponseTime(t *testing.T) {
	created := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	f := Feedback{
		CreatedAt: created,
		CoachResponse: &CoachResponse{
			Message:     "Rest up",
			RespondedAt: created.Add(26 * time.Hour),
		},
	}

	hours, ok := f.ResponseTime()
	if !ok || hours != 26 {
		t.Errorf("ResponseTime() = %d, %v, want 26, true", hours, ok)
	}

	f.CoachResponse = nil
	if _, ok := f.ResponseTime(); ok {
		t.Error("ResponseTime() without response should report not ok")
	}
}
