package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InjurySeverity type for how serious a reported injury is
type InjurySeverity string

const (
	SeverityMinor    InjurySeverity = "minor"
	SeverityModerate InjurySeverity = "moderate"
	SeveritySevere   InjurySeverity = "severe"
	SeverityCritical InjurySeverity = "critical"
)

// InjuryStatus type for the recovery lifecycle
type InjuryStatus string

const (
	InjuryActive     InjuryStatus = "active"
	InjuryRecovering InjuryStatus = "recovering"
	InjuryRecovered  InjuryStatus = "recovered"
	InjuryChronic    InjuryStatus = "chronic"
)

// FollowUpStatus type for scheduled follow-up appointments
type FollowUpStatus string

const (
	FollowUpScheduled FollowUpStatus = "scheduled"
	FollowUpCompleted FollowUpStatus = "completed"
	FollowUpCancelled FollowUpStatus = "cancelled"
)

// Restriction is an activity the athlete must avoid while recovering.
type Restriction struct {
	Activity string `bson:"activity" json:"activity"`
	Duration string `bson:"duration" json:"duration"`
	Notes    string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// FollowUp is a scheduled check on a reported injury.
type FollowUp struct {
	Date        time.Time           `bson:"date" json:"date"`
	Notes       string              `bson:"notes,omitempty" json:"notes,omitempty"`
	PerformedBy *primitive.ObjectID `bson:"performedBy,omitempty" json:"performedBy,omitempty"`
	Status      FollowUpStatus      `bson:"status" json:"status"`
}

// Injury is a reported injury event for an athlete.
type Injury struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AthleteID   primitive.ObjectID `bson:"athleteId" json:"athleteId"`
	BodyPart    string             `bson:"bodyPart" json:"bodyPart"`
	Severity    InjurySeverity     `bson:"severity" json:"severity"`
	Description string             `bson:"description" json:"description"`

	DateOccurred         time.Time  `bson:"dateOccurred" json:"dateOccurred"`
	ExpectedRecoveryDate *time.Time `bson:"expectedRecoveryDate,omitempty" json:"expectedRecoveryDate,omitempty"`
	ActualRecoveryDate   *time.Time `bson:"actualRecoveryDate,omitempty" json:"actualRecoveryDate,omitempty"`

	Treatment    string        `bson:"treatment,omitempty" json:"treatment,omitempty"`
	Restrictions []Restriction `bson:"restrictions,omitempty" json:"restrictions,omitempty"`
	Status       InjuryStatus  `bson:"status" json:"status"`
	CoachNotes   string        `bson:"coachNotes,omitempty" json:"coachNotes,omitempty"`
	MedicalNotes string        `bson:"medicalNotes,omitempty" json:"medicalNotes,omitempty"`
	FollowUps    []FollowUp    `bson:"followUpDates,omitempty" json:"followUpDates,omitempty"`

	ReportedBy       *primitive.ObjectID `bson:"reportedBy,omitempty" json:"reportedBy,omitempty"`
	RelatedWorkoutID *primitive.ObjectID `bson:"relatedWorkoutId,omitempty" json:"relatedWorkoutId,omitempty"`

	PainLevel                int  `bson:"painLevel,omitempty" json:"painLevel,omitempty"` // 0-10
	RequiresMedicalAttention bool `bson:"requiresMedicalAttention" json:"requiresMedicalAttention"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func validInjurySeverity(s InjurySeverity) bool {
	switch s {
	case SeverityMinor, SeverityModerate, SeveritySevere, SeverityCritical:
		return true
	}
	return false
}

func validInjuryStatus(s InjuryStatus) bool {
	switch s {
	case InjuryActive, InjuryRecovering, InjuryRecovered, InjuryChronic:
		return true
	}
	return false
}

// Normalize applies the derive-before-persist rules: an actual recovery
// date forces status recovered, and critical severity forces the medical
// attention flag.
func (i *Injury) Normalize() {
	if i.Status == "" {
		i.Status = InjuryActive
	}
	if i.ActualRecoveryDate != nil && i.Status != InjuryRecovered {
		i.Status = InjuryRecovered
	}
	if i.Severity == SeverityCritical {
		i.RequiresMedicalAttention = true
	}
	for j := range i.FollowUps {
		if i.FollowUps[j].Status == "" {
			i.FollowUps[j].Status = FollowUpScheduled
		}
	}
}

// Validate checks an injury report before persistence.
func (i *Injury) Validate(now time.Time) error {
	errs := FieldErrors{}

	if i.AthleteID.IsZero() {
		errs.Add("athleteId", "athlete ID is required")
	}
	if i.BodyPart == "" {
		errs.Add("bodyPart", "please specify the injured body part")
	} else if len(i.BodyPart) > 100 {
		errs.Add("bodyPart", "body part cannot exceed 100 characters")
	}
	if !validInjurySeverity(i.Severity) {
		errs.Add("severity", "invalid severity level")
	}
	if i.Description == "" {
		errs.Add("description", "please provide injury description")
	} else if len(i.Description) > 2000 {
		errs.Add("description", "description cannot exceed 2000 characters")
	}
	if i.DateOccurred.IsZero() {
		errs.Add("dateOccurred", "date occurred is required")
	} else if i.DateOccurred.After(now) {
		errs.Add("dateOccurred", "injury date cannot be in the future")
	}
	if i.ExpectedRecoveryDate != nil && !i.ExpectedRecoveryDate.After(i.DateOccurred) {
		errs.Add("expectedRecoveryDate", "expected recovery date must be after injury date")
	}
	if i.ActualRecoveryDate != nil && i.ActualRecoveryDate.Before(i.DateOccurred) {
		errs.Add("actualRecoveryDate", "actual recovery date must be on or after injury date")
	}
	if i.Status != "" && !validInjuryStatus(i.Status) {
		errs.Add("status", "invalid status")
	}
	if i.PainLevel < 0 || i.PainLevel > 10 {
		errs.Add("painLevel", "pain level must be between 0 and 10")
	}

	for j, r := range i.Restrictions {
		if r.Activity == "" {
			errs.Add(fieldAt("restrictions", j, "activity"), "activity restriction is required")
		} else if len(r.Activity) > 100 {
			errs.Add(fieldAt("restrictions", j, "activity"), "activity cannot exceed 100 characters")
		}
		if r.Duration == "" {
			errs.Add(fieldAt("restrictions", j, "duration"), "duration is required")
		} else if len(r.Duration) > 50 {
			errs.Add(fieldAt("restrictions", j, "duration"), "duration cannot exceed 50 characters")
		}
	}
	for j, f := range i.FollowUps {
		if f.Date.IsZero() {
			errs.Add(fieldAt("followUpDates", j, "date"), "follow-up date is required")
		}
		if len(f.Notes) > 1000 {
			errs.Add(fieldAt("followUpDates", j, "notes"), "notes cannot exceed 1000 characters")
		}
	}

	return errs.Err()
}

// RecoveryDuration returns whole days from injury to actual recovery.
// ok is false while the athlete has not recovered.
func (i *Injury) RecoveryDuration() (days int, ok bool) {
	if i.ActualRecoveryDate == nil {
		return 0, false
	}
	return int(i.ActualRecoveryDate.Sub(i.DateOccurred).Hours() / 24), true
}

// IsOverdue reports whether the expected recovery date has passed without
// the athlete recovering.
func (i *Injury) IsOverdue(now time.Time) bool {
	if i.ExpectedRecoveryDate == nil || i.Status == InjuryRecovered {
		return false
	}
	return now.After(*i.ExpectedRecoveryDate)
}

// DaysSinceInjury returns whole days elapsed since the injury occurred.
func (i *Injury) DaysSinceInjury(now time.Time) int {
	return int(now.Sub(i.DateOccurred).Hours() / 24)
}
