package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleAdmin   Role = "admin"
	RoleCoach   Role = "coach"
	RoleAthlete Role = "athlete"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleCoach || r == RoleAthlete
}

// User represents an account in the system (admin, coach or athlete).
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`    // Unique, stored lowercase
	PasswordHash   string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role           Role               `bson:"role" json:"role"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	SportsCategory string             `bson:"sportsCategory,omitempty" json:"sportsCategory,omitempty"`

	// CoachID links an athlete to the coach managing them. Nil for admins,
	// coaches and unassigned athletes.
	CoachID *primitive.ObjectID `bson:"coachId,omitempty" json:"coachId,omitempty"`

	// IsActive gates login and every authenticated request. Deactivation is
	// the soft-delete path for accounts.
	IsActive bool `bson:"isActive" json:"isActive"`

	// PasswordChangedAt invalidates tokens issued before a password change.
	PasswordChangedAt *time.Time `bson:"passwordChangedAt,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}

func (u *User) IsAthlete() bool {
	return u.Role == RoleAthlete
}

// ChangedPasswordAfter reports whether the password was changed after the
// given token issue time. Tokens older than the change are rejected.
func (u *User) ChangedPasswordAfter(issuedAt time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return u.PasswordChangedAt.After(issuedAt)
}
