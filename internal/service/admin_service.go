package service

import (
	"context"
	"errors"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidRole = errors.New("invalid role")
)

// SystemStats aggregates read-only counts across collections. No snapshot
// guarantee; each count reflects document state at query time.
type SystemStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalCoaches  int64 `json:"totalCoaches"`
	TotalAthletes int64 `json:"totalAthletes"`
	TotalPlans    int64 `json:"totalPlans"`
	ActivePlans   int64 `json:"activePlans"`
	TotalWorkouts int64 `json:"totalWorkouts"`
}

// AdminService covers user administration and system statistics.
type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, update repository.UserUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
	SystemStats(ctx context.Context) (*SystemStats, error)
}

// adminService implements the AdminService interface.
type adminService struct {
	userRepo    repository.UserRepository
	planRepo    repository.TrainingPlanRepository
	workoutRepo repository.WorkoutRepository
}

// NewAdminService creates a new instance of adminService.
func NewAdminService(
	userRepo repository.UserRepository,
	planRepo repository.TrainingPlanRepository,
	workoutRepo repository.WorkoutRepository,
) AdminService {
	return &adminService{
		userRepo:    userRepo,
		planRepo:    planRepo,
		workoutRepo: workoutRepo,
	}
}

// ListUsers returns every account, newest first.
func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	stripHashes(users)
	return users, nil
}

// ListUsersByRole returns accounts holding the given role.
func (s *adminService) ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	users, err := s.userRepo.GetByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	stripHashes(users)
	return users, nil
}

// UpdateUser applies a partial update to a user record. Setting IsActive
// false is the soft-deactivation path.
func (s *adminService) UpdateUser(ctx context.Context, id primitive.ObjectID, update repository.UserUpdate) (*domain.User, error) {
	if update.Role != nil && !domain.ValidRole(*update.Role) {
		return nil, ErrInvalidRole
	}
	user, err := s.userRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// DeleteUser removes a user record outright. References held by other
// documents are left dangling; nothing cascades.
func (s *adminService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	err := s.userRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// SystemStats gathers platform-wide counts for the admin dashboard.
func (s *adminService) SystemStats(ctx context.Context) (*SystemStats, error) {
	stats := &SystemStats{}
	var err error

	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCoaches, err = s.userRepo.CountByRole(ctx, domain.RoleCoach); err != nil {
		return nil, err
	}
	if stats.TotalAthletes, err = s.userRepo.CountByRole(ctx, domain.RoleAthlete); err != nil {
		return nil, err
	}
	if stats.TotalPlans, err = s.planRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.ActivePlans, err = s.planRepo.CountByStatus(ctx, domain.PlanStatusActive); err != nil {
		return nil, err
	}
	if stats.TotalWorkouts, err = s.workoutRepo.Count(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

func stripHashes(users []domain.User) {
	for i := range users {
		users[i].PasswordHash = ""
	}
}
