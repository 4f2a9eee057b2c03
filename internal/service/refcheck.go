package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserLookup is the narrow read surface cross-document reference checks
// need. Keeping it an interface lets unit tests run without a database.
type UserLookup interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// referenceChecker verifies that ids embedded in documents resolve to
// users holding the expected role. This is an explicit application-level
// check, performed before persistence, not a schema hook.
type referenceChecker struct {
	users UserLookup
}

func newReferenceChecker(users UserLookup) referenceChecker {
	return referenceChecker{users: users}
}

func (c referenceChecker) ensureRole(ctx context.Context, id primitive.ObjectID, role domain.Role, field string) error {
	user, err := c.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %s does not reference an existing user", ErrInvalidReference, field)
		}
		return err
	}
	if user.Role != role {
		return fmt.Errorf("%w: %s does not reference a user with role %q", ErrInvalidReference, field, role)
	}
	return nil
}

// EnsureCoach verifies id resolves to a user with the coach role.
func (c referenceChecker) EnsureCoach(ctx context.Context, id primitive.ObjectID, field string) error {
	return c.ensureRole(ctx, id, domain.RoleCoach, field)
}

// EnsureAthlete verifies id resolves to a user with the athlete role.
func (c referenceChecker) EnsureAthlete(ctx context.Context, id primitive.ObjectID, field string) error {
	return c.ensureRole(ctx, id, domain.RoleAthlete, field)
}

// EnsureAthletes verifies every id in the slice resolves to an athlete.
func (c referenceChecker) EnsureAthletes(ctx context.Context, ids []primitive.ObjectID, field string) error {
	for _, id := range ids {
		if err := c.EnsureAthlete(ctx, id, field); err != nil {
			return err
		}
	}
	return nil
}
