// internal/repository/mongo/training_plan_repo.go
package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const trainingPlanCollectionName = "training_plans"

// mongoTrainingPlanRepository implements repository.TrainingPlanRepository using MongoDB.
type mongoTrainingPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainingPlanRepository creates a new instance of mongoTrainingPlanRepository.
func NewMongoTrainingPlanRepository(db *mongo.Database) repository.TrainingPlanRepository {
	return &mongoTrainingPlanRepository{
		collection: db.Collection(trainingPlanCollectionName),
	}
}

// Create inserts a new training plan.
func (r *mongoTrainingPlanRepository) Create(ctx context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error) {
	if plan.CoachID.IsZero() {
		return primitive.NilObjectID, errors.New("plan coach ID is required")
	}

	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single plan.
func (r *mongoTrainingPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingPlan, error) {
	var plan domain.TrainingPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// GetByCoachID retrieves all plans authored by a coach, newest first.
func (r *mongoTrainingPlanRepository) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.TrainingPlan, error) {
	return r.findPlans(ctx, bson.M{"coachId": coachID})
}

// GetActiveByAthleteID retrieves active plans an athlete is assigned to,
// newest first.
func (r *mongoTrainingPlanRepository) GetActiveByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.TrainingPlan, error) {
	filter := bson.M{
		"athleteIds": athleteID,
		"status":     domain.PlanStatusActive,
	}
	return r.findPlans(ctx, filter)
}

func (r *mongoTrainingPlanRepository) findPlans(ctx context.Context, filter bson.M) ([]domain.TrainingPlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []domain.TrainingPlan
	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []domain.TrainingPlan{}
	}
	return plans, nil
}

// Update replaces a plan document. Last write wins; no version token.
func (r *mongoTrainingPlanRepository) Update(ctx context.Context, plan *domain.TrainingPlan) error {
	plan.UpdatedAt = time.Now().UTC()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": plan.ID}, plan)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a plan. Hard delete per the plan lifecycle.
func (r *mongoTrainingPlanRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Count returns the total number of plans.
func (r *mongoTrainingPlanRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountByStatus returns the number of plans in the given lifecycle status.
func (r *mongoTrainingPlanRepository) CountByStatus(ctx context.Context, status domain.PlanStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

// EnsureTrainingPlanIndexes creates necessary indexes for the training_plans collection.
func EnsureTrainingPlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "coachId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "athleteIds", Value: 1}}},
		{Keys: bson.D{{Key: "startDate", Value: 1}, {Key: "endDate", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
