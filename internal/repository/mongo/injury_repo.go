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

const injuryCollectionName = "injuries"

// mongoInjuryRepository implements repository.InjuryRepository using MongoDB.
type mongoInjuryRepository struct {
	collection *mongo.Collection
}

// NewMongoInjuryRepository creates a new instance of mongoInjuryRepository.
func NewMongoInjuryRepository(db *mongo.Database) repository.InjuryRepository {
	return &mongoInjuryRepository{
		collection: db.Collection(injuryCollectionName),
	}
}

// Create inserts a new injury report.
func (r *mongoInjuryRepository) Create(ctx context.Context, injury *domain.Injury) (primitive.ObjectID, error) {
	if injury.AthleteID.IsZero() {
		return primitive.NilObjectID, errors.New("injury athlete ID is required")
	}

	injury.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	injury.CreatedAt = now
	injury.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, injury)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single injury report.
func (r *mongoInjuryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Injury, error) {
	var injury domain.Injury
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&injury)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &injury, nil
}

// GetByAthleteID retrieves all injuries reported for an athlete, most
// recent first.
func (r *mongoInjuryRepository) GetByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Injury, error) {
	return r.findInjuries(ctx, bson.M{"athleteId": athleteID})
}

// GetActiveByAthleteID retrieves injuries the athlete has not recovered
// from (active or recovering).
func (r *mongoInjuryRepository) GetActiveByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Injury, error) {
	filter := bson.M{
		"athleteId": athleteID,
		"status":    bson.M{"$in": []domain.InjuryStatus{domain.InjuryActive, domain.InjuryRecovering}},
	}
	return r.findInjuries(ctx, filter)
}

func (r *mongoInjuryRepository) findInjuries(ctx context.Context, filter bson.M) ([]domain.Injury, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateOccurred", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var injuries []domain.Injury
	if err = cursor.All(ctx, &injuries); err != nil {
		return nil, err
	}
	if injuries == nil {
		injuries = []domain.Injury{}
	}
	return injuries, nil
}

// Update replaces an injury document.
func (r *mongoInjuryRepository) Update(ctx context.Context, injury *domain.Injury) error {
	injury.UpdatedAt = time.Now().UTC()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": injury.ID}, injury)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureInjuryIndexes creates necessary indexes for the injuries collection.
func EnsureInjuryIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "athleteId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "dateOccurred", Value: -1}}},
		{Keys: bson.D{{Key: "severity", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
