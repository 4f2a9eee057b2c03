package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Performance is a metric snapshot logged by an athlete on a given date.
// Metric fields are pointers so an absent measurement is distinguishable
// from a recorded zero.
type Performance struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AthleteID primitive.ObjectID `bson:"athleteId" json:"athleteId"`
	Date      time.Time          `bson:"date" json:"date"`

	// Rated 0-100.
	Speed       *float64 `bson:"speed,omitempty" json:"speed,omitempty"`
	Strength    *float64 `bson:"strength,omitempty" json:"strength,omitempty"`
	Endurance   *float64 `bson:"endurance,omitempty" json:"endurance,omitempty"`
	Flexibility *float64 `bson:"flexibility,omitempty" json:"flexibility,omitempty"`

	Weight           *float64 `bson:"weight,omitempty" json:"weight,omitempty"` // Kilograms
	BodyFat          *float64 `bson:"bodyFat,omitempty" json:"bodyFat,omitempty"`
	RestingHeartRate *int     `bson:"restingHeartRate,omitempty" json:"restingHeartRate,omitempty"`

	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks a performance snapshot before persistence.
func (p *Performance) Validate(now time.Time) error {
	errs := FieldErrors{}

	if p.AthleteID.IsZero() {
		errs.Add("athleteId", "athlete ID is required")
	}
	if p.Date.IsZero() {
		errs.Add("date", "date is required")
	} else if p.Date.After(now) {
		errs.Add("date", "date cannot be in the future")
	}

	checkRange := func(field string, v *float64) {
		if v != nil && (*v < 0 || *v > 100) {
			errs.Add(field, field+" must be between 0 and 100")
		}
	}
	checkRange("speed", p.Speed)
	checkRange("strength", p.Strength)
	checkRange("endurance", p.Endurance)
	checkRange("flexibility", p.Flexibility)

	if p.Weight != nil && *p.Weight <= 0 {
		errs.Add("weight", "weight must be positive")
	}
	if p.BodyFat != nil && (*p.BodyFat < 0 || *p.BodyFat > 100) {
		errs.Add("bodyFat", "body fat must be between 0 and 100")
	}
	if p.RestingHeartRate != nil && (*p.RestingHeartRate < 20 || *p.RestingHeartRate > 250) {
		errs.Add("restingHeartRate", "resting heart rate is out of range")
	}
	if len(p.Notes) > 1000 {
		errs.Add("notes", "notes cannot exceed 1000 characters")
	}

	return errs.Err()
}
