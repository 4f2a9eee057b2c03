package notify

import (
	"context"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
)

// Notifier delivers best-effort messages after successful mutations.
// Callers must treat failures as non-fatal: the database write is already
// durable by the time a notification is attempted.
type Notifier interface {
	// PlanAssigned tells an athlete they were assigned to a training plan.
	PlanAssigned(ctx context.Context, recipient domain.User, plan domain.TrainingPlan) error

	// FeedbackResponded tells an athlete their feedback received a coach
	// response.
	FeedbackResponded(ctx context.Context, recipient domain.User, fb domain.Feedback) error
}
