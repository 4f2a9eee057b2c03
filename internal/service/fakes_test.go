package service

import (
	"context"
	"time"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes implementing the repository interfaces. They keep just
// enough behavior for service tests: sentinel errors, ownership fields
// and id assignment.

func oid(b byte) primitive.ObjectID {
	var id primitive.ObjectID
	id[11] = b
	return id
}

var idCounter byte = 100

func nextID() primitive.ObjectID {
	idCounter++
	return oid(idCounter)
}

// --- users ---

type fakeUserRepo struct {
	users map[primitive.ObjectID]domain.User
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[primitive.ObjectID]domain.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicateEmail
		}
	}
	user.ID = nextID()
	r.users[user.ID] = *user
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := u
	return &copied, nil
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) GetByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetAthletesByCoachID(_ context.Context, coachID primitive.ObjectID) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if u.Role == domain.RoleAthlete && u.CoachID != nil && *u.CoachID == coachID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id primitive.ObjectID, update repository.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.IsActive != nil {
		u.IsActive = *update.IsActive
	}
	r.users[id] = u
	copied := u
	return &copied, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	users, _ := r.GetByRole(context.Background(), role)
	return int64(len(users)), nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// --- training plans ---

type fakePlanRepo struct {
	plans map[primitive.ObjectID]domain.TrainingPlan
}

func newFakePlanRepo(plans ...domain.TrainingPlan) *fakePlanRepo {
	repo := &fakePlanRepo{plans: make(map[primitive.ObjectID]domain.TrainingPlan)}
	for _, p := range plans {
		repo.plans[p.ID] = p
	}
	return repo
}

func (r *fakePlanRepo) Create(_ context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error) {
	plan.ID = nextID()
	r.plans[plan.ID] = *plan
	return plan.ID, nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.TrainingPlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := p
	return &copied, nil
}

func (r *fakePlanRepo) GetByCoachID(_ context.Context, coachID primitive.ObjectID) ([]domain.TrainingPlan, error) {
	var out []domain.TrainingPlan
	for _, p := range r.plans {
		if p.CoachID == coachID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) GetActiveByAthleteID(_ context.Context, athleteID primitive.ObjectID) ([]domain.TrainingPlan, error) {
	var out []domain.TrainingPlan
	for _, p := range r.plans {
		if p.Status != domain.PlanStatusActive {
			continue
		}
		for _, id := range p.AthleteIDs {
			if id == athleteID {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *fakePlanRepo) Update(_ context.Context, plan *domain.TrainingPlan) error {
	if _, ok := r.plans[plan.ID]; !ok {
		return repository.ErrNotFound
	}
	r.plans[plan.ID] = *plan
	return nil
}

func (r *fakePlanRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.plans[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.plans, id)
	return nil
}

func (r *fakePlanRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.plans)), nil
}

func (r *fakePlanRepo) CountByStatus(_ context.Context, status domain.PlanStatus) (int64, error) {
	var n int64
	for _, p := range r.plans {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

// --- workouts ---

type fakeWorkoutRepo struct {
	workouts map[primitive.ObjectID]domain.Workout
}

func newFakeWorkoutRepo(workouts ...domain.Workout) *fakeWorkoutRepo {
	repo := &fakeWorkoutRepo{workouts: make(map[primitive.ObjectID]domain.Workout)}
	for _, w := range workouts {
		repo.workouts[w.ID] = w
	}
	return repo
}

func (r *fakeWorkoutRepo) Create(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	workout.ID = nextID()
	r.workouts[workout.ID] = *workout
	return workout.ID, nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := w
	return &copied, nil
}

func (r *fakeWorkoutRepo) GetByAthleteID(_ context.Context, athleteID primitive.ObjectID, filter repository.WorkoutFilter) ([]domain.Workout, error) {
	var out []domain.Workout
	for _, w := range r.workouts {
		if w.AthleteID != athleteID {
			continue
		}
		if !filter.From.IsZero() && w.Date.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && w.Date.After(filter.To) {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (r *fakeWorkoutRepo) GetRecentByAthleteID(ctx context.Context, athleteID primitive.ObjectID, limit int64) ([]domain.Workout, error) {
	out, err := r.GetByAthleteID(ctx, athleteID, repository.WorkoutFilter{})
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeWorkoutRepo) Update(_ context.Context, workout *domain.Workout) error {
	if _, ok := r.workouts[workout.ID]; !ok {
		return repository.ErrNotFound
	}
	r.workouts[workout.ID] = *workout
	return nil
}

func (r *fakeWorkoutRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.workouts)), nil
}

// --- performance ---

type fakePerformanceRepo struct {
	snapshots []domain.Performance
}

func (r *fakePerformanceRepo) Create(_ context.Context, perf *domain.Performance) (primitive.ObjectID, error) {
	perf.ID = nextID()
	r.snapshots = append(r.snapshots, *perf)
	return perf.ID, nil
}

func (r *fakePerformanceRepo) GetByAthleteID(_ context.Context, athleteID primitive.ObjectID, limit int64) ([]domain.Performance, error) {
	var out []domain.Performance
	for _, p := range r.snapshots {
		if p.AthleteID == athleteID {
			out = append(out, p)
		}
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- feedback ---

type fakeFeedbackRepo struct {
	items map[primitive.ObjectID]domain.Feedback
}

func newFakeFeedbackRepo(items ...domain.Feedback) *fakeFeedbackRepo {
	repo := &fakeFeedbackRepo{items: make(map[primitive.ObjectID]domain.Feedback)}
	for _, f := range items {
		repo.items[f.ID] = f
	}
	return repo
}

func (r *fakeFeedbackRepo) Create(_ context.Context, fb *domain.Feedback) (primitive.ObjectID, error) {
	fb.ID = nextID()
	r.items[fb.ID] = *fb
	return fb.ID, nil
}

func (r *fakeFeedbackRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Feedback, error) {
	f, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := f
	return &copied, nil
}

func (r *fakeFeedbackRepo) GetByAthleteID(_ context.Context, athleteID primitive.ObjectID) ([]domain.Feedback, error) {
	var out []domain.Feedback
	for _, f := range r.items {
		if f.AthleteID == athleteID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFeedbackRepo) Update(_ context.Context, fb *domain.Feedback) error {
	if _, ok := r.items[fb.ID]; !ok {
		return repository.ErrNotFound
	}
	r.items[fb.ID] = *fb
	return nil
}

// --- injuries ---

type fakeInjuryRepo struct {
	items map[primitive.ObjectID]domain.Injury
}

func newFakeInjuryRepo(items ...domain.Injury) *fakeInjuryRepo {
	repo := &fakeInjuryRepo{items: make(map[primitive.ObjectID]domain.Injury)}
	for _, inj := range items {
		repo.items[inj.ID] = inj
	}
	return repo
}

func (r *fakeInjuryRepo) Create(_ context.Context, injury *domain.Injury) (primitive.ObjectID, error) {
	injury.ID = nextID()
	r.items[injury.ID] = *injury
	return injury.ID, nil
}

func (r *fakeInjuryRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Injury, error) {
	inj, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := inj
	return &copied, nil
}

func (r *fakeInjuryRepo) GetByAthleteID(_ context.Context, athleteID primitive.ObjectID) ([]domain.Injury, error) {
	var out []domain.Injury
	for _, inj := range r.items {
		if inj.AthleteID == athleteID {
			out = append(out, inj)
		}
	}
	return out, nil
}

func (r *fakeInjuryRepo) GetActiveByAthleteID(_ context.Context, athleteID primitive.ObjectID) ([]domain.Injury, error) {
	var out []domain.Injury
	for _, inj := range r.items {
		if inj.AthleteID != athleteID {
			continue
		}
		if inj.Status == domain.InjuryActive || inj.Status == domain.InjuryRecovering {
			out = append(out, inj)
		}
	}
	return out, nil
}

func (r *fakeInjuryRepo) Update(_ context.Context, injury *domain.Injury) error {
	if _, ok := r.items[injury.ID]; !ok {
		return repository.ErrNotFound
	}
	r.items[injury.ID] = *injury
	return nil
}

// --- notifier & storage ---

type fakeNotifier struct {
	planAssigned      []string
	feedbackResponded []string
}

func (n *fakeNotifier) PlanAssigned(_ context.Context, recipient domain.User, _ domain.TrainingPlan) error {
	n.planAssigned = append(n.planAssigned, recipient.Email)
	return nil
}

func (n *fakeNotifier) FeedbackResponded(_ context.Context, recipient domain.User, _ domain.Feedback) error {
	n.feedbackResponded = append(n.feedbackResponded, recipient.Email)
	return nil
}

type fakeReportStorage struct {
	objects map[string][]byte
}

func newFakeReportStorage() *fakeReportStorage {
	return &fakeReportStorage{objects: make(map[string][]byte)}
}

func (s *fakeReportStorage) PutObject(_ context.Context, key, _ string, data []byte) error {
	s.objects[key] = data
	return nil
}

func (s *fakeReportStorage) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://storage.test/" + key, nil
}

func (s *fakeReportStorage) DeleteObject(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}
