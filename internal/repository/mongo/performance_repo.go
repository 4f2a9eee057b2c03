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

const performanceCollectionName = "performances"

// mongoPerformanceRepository implements repository.PerformanceRepository using MongoDB.
type mongoPerformanceRepository struct {
	collection *mongo.Collection
}

// NewMongoPerformanceRepository creates a new instance of mongoPerformanceRepository.
func NewMongoPerformanceRepository(db *mongo.Database) repository.PerformanceRepository {
	return &mongoPerformanceRepository{
		collection: db.Collection(performanceCollectionName),
	}
}

// Create inserts a new performance snapshot.
func (r *mongoPerformanceRepository) Create(ctx context.Context, perf *domain.Performance) (primitive.ObjectID, error) {
	if perf.AthleteID.IsZero() {
		return primitive.NilObjectID, errors.New("performance athlete ID is required")
	}

	perf.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	perf.CreatedAt = now
	perf.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, perf)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByAthleteID retrieves an athlete's snapshots, most recent first.
func (r *mongoPerformanceRepository) GetByAthleteID(ctx context.Context, athleteID primitive.ObjectID, limit int64) ([]domain.Performance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, bson.M{"athleteId": athleteID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var snapshots []domain.Performance
	if err = cursor.All(ctx, &snapshots); err != nil {
		return nil, err
	}
	if snapshots == nil {
		snapshots = []domain.Performance{}
	}
	return snapshots, nil
}

// EnsurePerformanceIndexes creates necessary indexes for the performances collection.
func EnsurePerformanceIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "athleteId", Value: 1}, {Key: "date", Value: -1}}},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
