// internal/repository/mongo/workout_repo.go
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

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository using MongoDB.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new instance of mongoWorkoutRepository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout log.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.AthleteID.IsZero() {
		return primitive.NilObjectID, errors.New("workout athlete ID is required")
	}

	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single workout log.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// GetByAthleteID retrieves an athlete's workouts, optionally bounded by a
// date range, most recent first.
func (r *mongoWorkoutRepository) GetByAthleteID(ctx context.Context, athleteID primitive.ObjectID, filter repository.WorkoutFilter) ([]domain.Workout, error) {
	query := bson.M{"athleteId": athleteID}
	dateRange := bson.M{}
	if !filter.From.IsZero() {
		dateRange["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		dateRange["$lte"] = filter.To
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	return r.findWorkouts(ctx, query, 0)
}

// GetRecentByAthleteID retrieves the athlete's most recent workouts.
func (r *mongoWorkoutRepository) GetRecentByAthleteID(ctx context.Context, athleteID primitive.ObjectID, limit int64) ([]domain.Workout, error) {
	return r.findWorkouts(ctx, bson.M{"athleteId": athleteID}, limit)
}

func (r *mongoWorkoutRepository) findWorkouts(ctx context.Context, filter bson.M, limit int64) ([]domain.Workout, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workouts []domain.Workout
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	return workouts, nil
}

// Update replaces a workout document. Last write wins.
func (r *mongoWorkoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	workout.UpdatedAt = time.Now().UTC()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": workout.ID}, workout)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Count returns the total number of logged workouts.
func (r *mongoWorkoutRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// EnsureWorkoutIndexes creates necessary indexes for the workouts collection.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "athleteId", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "trainingPlanId", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "completed", Value: 1}}},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
