package domain

import (
	"errors"
	"testing"
	"time"
)

func validInjury() Injury {
	return Injury{
		AthleteID:    newTestID(1),
		BodyPart:     "hamstring",
		Severity:     SeverityModerate,
		Description:  "Strain during sprint drills",
		DateOccurred: time.Now().Add(-72 * time.Hour),
	}
}

func TestInjuryNormalizeDefaultStatus(t *testing.T) {
	inj := validInjury()
	inj.Normalize()

	if inj.Status != InjuryActive {
		t.Errorf("Status = %s, want active", inj.Status)
	}
}

func TestInjuryNormalizeRecoveryDateForcesRecovered(t *testing.T) {
	recovered := time.Now().Add(-24 * time.Hour)
	inj := validInjury()
	inj.Status = InjuryRecovering
	inj.ActualRecoveryDate = &recovered

	inj.Normalize()

	if inj.Status != InjuryRecovered {
		t.Errorf("Status = %s, want recovered", inj.Status)
	}
}

func TestInjuryNormalizeCriticalForcesMedicalAttention(t *testing.T) {
	inj := validInjury()
	inj.Severity = SeverityCritical

	inj.Normalize()

	if !inj.RequiresMedicalAttention {
		t.Error("critical severity should force requiresMedicalAttention")
	}
}

func TestInjuryNormalizeFollowUpDefaults(t *testing.T) {
	inj := validInjury()
	inj.FollowUps = []FollowUp{{Date: time.Now().Add(48 * time.Hour)}}

	inj.Normalize()

	if inj.FollowUps[0].Status != FollowUpScheduled {
		t.Errorf("follow-up status = %s, want scheduled", inj.FollowUps[0].Status)
	}
}

func TestInjuryValidateOK(t *testing.T) {
	inj := validInjury()
	inj.Normalize()
	if err := inj.Validate(time.Now()); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestInjuryDateCannotBeFuture(t *testing.T) {
	now := time.Now()
	inj := validInjury()
	inj.DateOccurred = now.Add(24 * time.Hour)
	inj.Normalize()

	err := inj.Validate(now)
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("Validate() = %v, want FieldErrors", err)
	}
	if _, ok := fieldErrs["dateOccurred"]; !ok {
		t.Errorf("expected dateOccurred error, got %v", fieldErrs)
	}
}

func TestInjuryExpectedRecoveryAfterOccurrence(t *testing.T) {
	inj := validInjury()
	before := inj.DateOccurred.Add(-24 * time.Hour)
	inj.ExpectedRecoveryDate = &before
	inj.Normalize()

	err := inj.Validate(time.Now())
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("Validate() = %v, want FieldErrors", err)
	}
	if _, ok := fieldErrs["expectedRecoveryDate"]; !ok {
		t.Errorf("expected expectedRecoveryDate error, got %v", fieldErrs)
	}
}

func TestInjuryRecoveryDuration(t *testing.T) {
	occurred := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	recovered := occurred.AddDate(0, 0, 14)
	inj := validInjury()
	inj.DateOccurred = occurred
	inj.ActualRecoveryDate = &recovered

	days, ok := inj.RecoveryDuration()
	if !ok || days != 14 {
		t.Errorf("RecoveryDuration() = %d, %v, want 14, true", days, ok)
	}

	inj.ActualRecoveryDate = nil
	if _, ok := inj.RecoveryDuration(); ok {
		t.Error("RecoveryDuration() while unrecovered should report not ok")
	}
}

func TestInjuryIsOverdue(t *testing.T) {
	now := time.Now()
	expected := now.Add(-24 * time.Hour)
	inj := validInjury()
	inj.ExpectedRecoveryDate = &expected
	inj.Status = InjuryActive

	if !inj.IsOverdue(now) {
		t.Error("past expected recovery should be overdue")
	}

	inj.Status = InjuryRecovered
	if inj.IsOverdue(now) {
		t.Error("recovered injury is never overdue")
	}
}
