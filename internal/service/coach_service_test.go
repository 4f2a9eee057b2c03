package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
)

type coachFixture struct {
	svc      CoachService
	users    *fakeUserRepo
	plans    *fakePlanRepo
	feedback *fakeFeedbackRepo
	injuries *fakeInjuryRepo
	notifier *fakeNotifier
	storage  *fakeReportStorage
}

func newCoachFixture(users ...domain.User) *coachFixture {
	f := &coachFixture{
		users:    newFakeUserRepo(users...),
		plans:    newFakePlanRepo(),
		feedback: newFakeFeedbackRepo(),
		injuries: newFakeInjuryRepo(),
		notifier: &fakeNotifier{},
		storage:  newFakeReportStorage(),
	}
	f.svc = NewCoachService(
		f.users, f.plans, newFakeWorkoutRepo(), &fakePerformanceRepo{},
		f.feedback, f.injuries, f.storage, f.notifier,
	)
	return f
}

func coachUser(id byte) domain.User {
	return domain.User{ID: oid(id), Name: "Coach", Email: "coach@example.com", Role: domain.RoleCoach, IsActive: true}
}

func athleteUser(id byte, coachID *byte) domain.User {
	u := domain.User{ID: oid(id), Name: "Athlete", Email: "athlete@example.com", Role: domain.RoleAthlete, IsActive: true}
	if coachID != nil {
		cid := oid(*coachID)
		u.CoachID = &cid
	}
	return u
}

func draftPlan(coachID byte, athleteIDs ...byte) *domain.TrainingPlan {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	plan := &domain.TrainingPlan{
		Title:       "Offseason Strength",
		Description: "Heavy compound work",
		Category:    domain.CategoryStrength,
		Duration:    domain.PlanDuration{Weeks: 6, SessionsPerWeek: 3},
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 6*7),
		CoachID:     oid(coachID),
	}
	for _, id := range athleteIDs {
		plan.AthleteIDs = append(plan.AthleteIDs, oid(id))
	}
	return plan
}

func TestCreatePlanForcesCoachOwnership(t *testing.T) {
	coachID := byte(1)
	f := newCoachFixture(coachUser(1), athleteUser(2, &coachID))

	plan := draftPlan(9, 2) // payload claims a different coach
	created, err := f.svc.CreatePlan(context.Background(), oid(1), plan)
	if err != nil {
		t.Fatalf("CreatePlan() = %v, want nil", err)
	}
	if created.CoachID != oid(1) {
		t.Errorf("CoachID = %v, want the caller's ID", created.CoachID)
	}
	if created.ID.IsZero() {
		t.Error("expected an assigned plan ID")
	}
	if created.Status != domain.PlanStatusDraft {
		t.Errorf("Status = %s, want draft default", created.Status)
	}
}

func TestCreatePlanNotifiesAssignedAthletes(t *testing.T) {
	coachID := byte(1)
	f := newCoachFixture(coachUser(1), athleteUser(2, &coachID))

	if _, err := f.svc.CreatePlan(context.Background(), oid(1), draftPlan(1, 2)); err != nil {
		t.Fatalf("CreatePlan() = %v, want nil", err)
	}
	if len(f.notifier.planAssigned) != 1 || f.notifier.planAssigned[0] != "athlete@example.com" {
		t.Errorf("notifications = %v, want one to athlete@example.com", f.notifier.planAssigned)
	}
}

func TestCreatePlanRejectsNonAthleteReference(t *testing.T) {
	f := newCoachFixture(coachUser(1), coachUser(3))

	_, err := f.svc.CreatePlan(context.Background(), oid(1), draftPlan(1, 3))
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("CreatePlan(coach as athlete) = %v, want ErrInvalidReference", err)
	}

	_, err = f.svc.CreatePlan(context.Background(), oid(1), draftPlan(1, 42))
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("CreatePlan(missing athlete) = %v, want ErrInvalidReference", err)
	}
}

func TestGetPlanNotFoundBeforeOwnership(t *testing.T) {
	f := newCoachFixture(coachUser(1))

	// Missing plan: 404 even though the caller would not own it anyway.
	_, err := f.svc.GetPlan(context.Background(), oid(1), oid(99))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetPlan(missing) = %v, want ErrNotFound", err)
	}

	// Existing plan owned by someone else: ownership failure.
	other := draftPlan(2)
	if _, err := f.plans.Create(context.Background(), other); err != nil {
		t.Fatal(err)
	}
	_, err = f.svc.GetPlan(context.Background(), oid(1), other.ID)
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("GetPlan(foreign) = %v, want ErrNotAuthorized", err)
	}
}

func TestListPlansIsCoachScoped(t *testing.T) {
	f := newCoachFixture(coachUser(1))
	mine := draftPlan(1)
	theirs := draftPlan(2)
	f.plans.Create(context.Background(), mine)
	f.plans.Create(context.Background(), theirs)

	plans, err := f.svc.ListPlans(context.Background(), oid(1))
	if err != nil {
		t.Fatalf("ListPlans() = %v, want nil", err)
	}
	if len(plans) != 1 || plans[0].ID != mine.ID {
		t.Errorf("ListPlans() returned %d plans, want only the caller's", len(plans))
	}
}

func TestUpdatePlanPreservesIdentityFields(t *testing.T) {
	coachID := byte(1)
	f := newCoachFixture(coachUser(1), athleteUser(2, &coachID))
	existing := draftPlan(1)
	f.plans.Create(context.Background(), existing)

	incoming := draftPlan(1)
	incoming.Title = "Revised Offseason Strength"
	updated, err := f.svc.UpdatePlan(context.Background(), oid(1), existing.ID, incoming)
	if err != nil {
		t.Fatalf("UpdatePlan() = %v, want nil", err)
	}
	if updated.ID != existing.ID || updated.CoachID != oid(1) {
		t.Error("update must not change plan identity or ownership")
	}
	if updated.LastModifiedBy == nil || *updated.LastModifiedBy != oid(1) {
		t.Error("expected lastModifiedBy to record the caller")
	}
	if updated.Title != "Revised Offseason Strength" {
		t.Errorf("Title = %s, want the new value", updated.Title)
	}
}

func TestDeletePlanChecksOwnership(t *testing.T) {
	f := newCoachFixture(coachUser(1))
	foreign := draftPlan(2)
	f.plans.Create(context.Background(), foreign)

	err := f.svc.DeletePlan(context.Background(), oid(1), foreign.ID)
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("DeletePlan(foreign) = %v, want ErrNotAuthorized", err)
	}
}

func TestPlanReportURLStoresAndSigns(t *testing.T) {
	coachID := byte(1)
	f := newCoachFixture(coachUser(1), athleteUser(2, &coachID))
	plan := draftPlan(1, 2)
	f.plans.Create(context.Background(), plan)

	url, err := f.svc.PlanReportURL(context.Background(), oid(1), plan.ID)
	if err != nil {
		t.Fatalf("PlanReportURL() = %v, want nil", err)
	}
	if !strings.Contains(url, "reports/"+plan.ID.Hex()+"/") {
		t.Errorf("url = %s, want a key under reports/<planID>/", url)
	}
	if len(f.storage.objects) != 1 {
		t.Errorf("stored objects = %d, want 1", len(f.storage.objects))
	}
	for _, data := range f.storage.objects {
		if len(data) == 0 {
			t.Error("stored report is empty")
		}
	}
}

func TestAthleteProgressRequiresManagedAthlete(t *testing.T) {
	otherCoach := byte(9)
	f := newCoachFixture(coachUser(1), athleteUser(2, &otherCoach))

	_, err := f.svc.AthleteProgress(context.Background(), oid(1), oid(2))
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("AthleteProgress(unmanaged) = %v, want ErrNotAuthorized", err)
	}

	_, err = f.svc.AthleteProgress(context.Background(), oid(1), oid(55))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("AthleteProgress(missing) = %v, want ErrNotFound", err)
	}
}

func TestRespondToFeedbackSetsReviewedAndNotifies(t *testing.T) {
	coachID := byte(1)
	f := newCoachFixture(coachUser(1), athleteUser(2, &coachID))
	fb := domain.Feedback{
		AthleteID: oid(2),
		CoachID:   oid(1),
		Type:      domain.FeedbackWorkout,
		Message:   "Knees ached after squats",
		Priority:  domain.PriorityMedium,
		Status:    domain.FeedbackPending,
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	f.feedback.Create(context.Background(), &fb)

	updated, err := f.svc.RespondToFeedback(context.Background(), oid(1), fb.ID, "Drop the weight 10% next session")
	if err != nil {
		t.Fatalf("RespondToFeedback() = %v, want nil", err)
	}
	if updated.Status != domain.FeedbackReviewed {
		t.Errorf("Status = %s, want reviewed", updated.Status)
	}
	if updated.CoachResponse == nil || updated.CoachResponse.RespondedBy == nil || *updated.CoachResponse.RespondedBy != oid(1) {
		t.Error("expected the response to record the responding coach")
	}
	if len(f.notifier.feedbackResponded) != 1 {
		t.Errorf("notifications = %v, want one", f.notifier.feedbackResponded)
	}
}

func TestRespondToFeedbackChecksOwnership(t *testing.T) {
	f := newCoachFixture(coachUser(1))
	fb := domain.Feedback{
		AthleteID: oid(2),
		CoachID:   oid(9), // addressed to someone else
		Type:      domain.FeedbackGeneral,
		Message:   "Hello",
	}
	f.feedback.Create(context.Background(), &fb)

	_, err := f.svc.RespondToFeedback(context.Background(), oid(1), fb.ID, "Hi")
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("RespondToFeedback(foreign) = %v, want ErrNotAuthorized", err)
	}

	_, err = f.svc.RespondToFeedback(context.Background(), oid(1), oid(123), "Hi")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("RespondToFeedback(missing) = %v, want ErrNotFound", err)
	}
}

func TestListAthleteInjuriesFiltersResolved(t *testing.T) {
	coachID := byte(1)
	f := newCoachFixture(coachUser(1), athleteUser(2, &coachID))
	f.injuries.items[oid(30)] = domain.Injury{ID: oid(30), AthleteID: oid(2), Status: domain.InjuryActive}
	f.injuries.items[oid(31)] = domain.Injury{ID: oid(31), AthleteID: oid(2), Status: domain.InjuryRecovered}

	injuries, err := f.svc.ListAthleteInjuries(context.Background(), oid(1), oid(2))
	if err != nil {
		t.Fatalf("ListAthleteInjuries() = %v, want nil", err)
	}
	if len(injuries) != 1 || injuries[0].Status != domain.InjuryActive {
		t.Errorf("injuries = %v, want only unresolved ones", injuries)
	}
}
