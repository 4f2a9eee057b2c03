package api

import (
	"time"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
)

// View types wrap domain documents with fields derived at read time.
// Derived values are never stored; they are recomputed for every response.

type planView struct {
	domain.TrainingPlan
	TotalDays          int `json:"totalDays"`
	TotalSessions      int `json:"totalSessions"`
	ProgressPercentage int `json:"progressPercentage"`
}

func newPlanView(p domain.TrainingPlan, now time.Time) planView {
	return planView{
		TrainingPlan:       p,
		TotalDays:          p.TotalDays(),
		TotalSessions:      p.TotalSessions(),
		ProgressPercentage: p.ProgressPercentage(now),
	}
}

func planViews(plans []domain.TrainingPlan, now time.Time) []planView {
	views := make([]planView, len(plans))
	for i, p := range plans {
		views[i] = newPlanView(p, now)
	}
	return views
}

type workoutView struct {
	domain.Workout
	IntensityScore float64 `json:"intensityScore"`
	NeedsRecovery  bool    `json:"needsRecovery"`
}

func newWorkoutView(w domain.Workout) workoutView {
	return workoutView{
		Workout:        w,
		IntensityScore: w.IntensityScore(),
		NeedsRecovery:  w.NeedsRecovery(),
	}
}

func workoutViews(workouts []domain.Workout) []workoutView {
	views := make([]workoutView, len(workouts))
	for i, w := range workouts {
		views[i] = newWorkoutView(w)
	}
	return views
}

type feedbackView struct {
	domain.Feedback
	IsUrgent bool `json:"isUrgent"`
	// ResponseTime is whole hours until the coach responded; null until then.
	ResponseTime *int `json:"responseTime"`
}

func newFeedbackView(f domain.Feedback) feedbackView {
	view := feedbackView{Feedback: f, IsUrgent: f.IsUrgent()}
	if hours, ok := f.ResponseTime(); ok {
		view.ResponseTime = &hours
	}
	return view
}

func feedbackViews(items []domain.Feedback) []feedbackView {
	views := make([]feedbackView, len(items))
	for i, f := range items {
		views[i] = newFeedbackView(f)
	}
	return views
}

type injuryView struct {
	domain.Injury
	// RecoveryDuration is whole days to recovery; null while unrecovered.
	RecoveryDuration *int `json:"recoveryDuration"`
	IsOverdue        bool `json:"isOverdue"`
	DaysSinceInjury  int  `json:"daysSinceInjury"`
}

func newInjuryView(inj domain.Injury, now time.Time) injuryView {
	view := injuryView{
		Injury:          inj,
		IsOverdue:       inj.IsOverdue(now),
		DaysSinceInjury: inj.DaysSinceInjury(now),
	}
	if days, ok := inj.RecoveryDuration(); ok {
		view.RecoveryDuration = &days
	}
	return view
}

func injuryViews(items []domain.Injury, now time.Time) []injuryView {
	views := make([]injuryView, len(items))
	for i, inj := range items {
		views[i] = newInjuryView(inj, now)
	}
	return views
}

// progressView mirrors the coach's athlete progress payload with derived
// workout fields included.
type progressView struct {
	Workouts    []workoutView        `json:"workouts"`
	Performance []domain.Performance `json:"performance"`
}
