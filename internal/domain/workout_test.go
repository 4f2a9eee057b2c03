package domain

import (
	"errors"
	"testing"
	"time"
)

func validWorkout() Workout {
	return Workout{
		AthleteID:      newTestID(1),
		TrainingPlanID: newTestID(2),
		Date:           time.Now().Add(-24 * time.Hour),
		Exercises:      []ExerciseLog{{Name: "Squats", SetsCompleted: 3}},
		TotalDuration:  45,
		Completed:      true,
	}
}

func TestWorkoutValidateOK(t *testing.T) {
	w := validWorkout()
	if err := w.Validate(time.Now()); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestWorkoutCompletedAndSkippedConflict(t *testing.T) {
	w := validWorkout()
	w.Skipped = true
	w.SkipReason = "felt sick"

	err := w.Validate(time.Now())
	if !errors.Is(err, ErrConflictingState) {
		t.Fatalf("Validate() = %v, want ErrConflictingState", err)
	}
}

func TestWorkoutSkippedRequiresReason(t *testing.T) {
	w := validWorkout()
	w.Completed = false
	w.Exercises = nil
	w.Skipped = true

	err := w.Validate(time.Now())
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("Validate() = %v, want FieldErrors", err)
	}
	if _, ok := fieldErrs["skipReason"]; !ok {
		t.Errorf("expected skipReason error, got %v", fieldErrs)
	}
}

func TestWorkoutCompletedRequiresExercises(t *testing.T) {
	w := validWorkout()
	w.Exercises = nil

	err := w.Validate(time.Now())
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("Validate() = %v, want FieldErrors", err)
	}
	if _, ok := fieldErrs["exercises"]; !ok {
		t.Errorf("expected exercises error, got %v", fieldErrs)
	}
}

func TestWorkoutDateCannotBeFuture(t *testing.T) {
	now := time.Now()
	w := validWorkout()
	w.Date = now.Add(48 * time.Hour)

	err := w.Validate(now)
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("Validate() = %v, want FieldErrors", err)
	}
	if _, ok := fieldErrs["date"]; !ok {
		t.Errorf("expected date error, got %v", fieldErrs)
	}
}

func TestWorkoutDurationBounds(t *testing.T) {
	for _, duration := range []int{0, 601} {
		w := validWorkout()
		w.TotalDuration = duration

		err := w.Validate(time.Now())
		var fieldErrs FieldErrors
		if !errors.As(err, &fieldErrs) {
			t.Fatalf("Validate() with duration %d = %v, want FieldErrors", duration, err)
		}
		if _, ok := fieldErrs["totalDuration"]; !ok {
			t.Errorf("duration %d: expected totalDuration error, got %v", duration, fieldErrs)
		}
	}
}

func TestWorkoutIntensityScore(t *testing.T) {
	w := validWorkout()
	w.DifficultyRating = 8
	w.TotalDuration = 50

	if got := w.IntensityScore(); got != 40 {
		t.Errorf("IntensityScore() = %v, want 40", got)
	}

	w.DifficultyRating = 0
	if got := w.IntensityScore(); got != 0 {
		t.Errorf("IntensityScore() without rating = %v, want 0", got)
	}
}

func TestWorkoutNeedsRecovery(t *testing.T) {
	w := validWorkout()
	if w.NeedsRecovery() {
		t.Error("fresh workout should not need recovery")
	}

	w.FatigueLevel = 8
	if !w.NeedsRecovery() {
		t.Error("fatigue 8 should need recovery")
	}

	w.FatigueLevel = 2
	w.Injuries = []WorkoutInjury{{BodyPart: "knee", Severity: LoggedMinor}}
	if !w.NeedsRecovery() {
		t.Error("logged injury should need recovery")
	}
}
