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

const feedbackCollectionName = "feedbacks"

// mongoFeedbackRepository implements repository.FeedbackRepository using MongoDB.
type mongoFeedbackRepository struct {
	collection *mongo.Collection
}

// NewMongoFeedbackRepository creates a new instance of mongoFeedbackRepository.
func NewMongoFeedbackRepository(db *mongo.Database) repository.FeedbackRepository {
	return &mongoFeedbackRepository{
		collection: db.Collection(feedbackCollectionName),
	}
}

// Create inserts a new feedback record.
func (r *mongoFeedbackRepository) Create(ctx context.Context, fb *domain.Feedback) (primitive.ObjectID, error) {
	if fb.AthleteID.IsZero() || fb.CoachID.IsZero() {
		return primitive.NilObjectID, errors.New("feedback athlete ID and coach ID are required")
	}

	fb.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	fb.CreatedAt = now
	fb.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, fb)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single feedback record.
func (r *mongoFeedbackRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Feedback, error) {
	var fb domain.Feedback
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&fb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &fb, nil
}

// GetByAthleteID retrieves an athlete's feedback, newest first.
func (r *mongoFeedbackRepository) GetByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"athleteId": athleteID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var feedback []domain.Feedback
	if err = cursor.All(ctx, &feedback); err != nil {
		return nil, err
	}
	if feedback == nil {
		feedback = []domain.Feedback{}
	}
	return feedback, nil
}

// Update replaces a feedback document.
func (r *mongoFeedbackRepository) Update(ctx context.Context, fb *domain.Feedback) error {
	fb.UpdatedAt = time.Now().UTC()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": fb.ID}, fb)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureFeedbackIndexes creates necessary indexes for the feedbacks collection.
func EnsureFeedbackIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "athleteId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "coachId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "trainingPlanId", Value: 1}}},
		{Keys: bson.D{{Key: "workoutId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "priority", Value: 1}}},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
