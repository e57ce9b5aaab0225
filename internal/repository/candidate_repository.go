package repository

import (
	"context"
	"errors"
	"time"

	"eventvote/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type candidateRepository struct {
	collection *mongo.Collection
}

func NewCandidateRepository(collection *mongo.Collection) CandidateRepository {
	return &candidateRepository{
		collection: collection,
	}
}

func (r *candidateRepository) Create(ctx context.Context, candidate *models.Candidate) error {

	res, err := r.collection.InsertOne(ctx, candidate)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		candidate.ID = id
	}
	return nil
}

func (r *candidateRepository) List(ctx context.Context, category models.Category) ([]models.Candidate, error) {

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "votes", Value: -1}, {Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	candidates := []models.Candidate{}
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *candidateRepository) IncrementVotes(ctx context.Context, id primitive.ObjectID) (int64, error) {

	filter := bson.M{"_id": id}
	update := bson.M{
		"$inc": bson.M{"votes": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	return r.applyVoteDelta(ctx, filter, update)
}

func (r *candidateRepository) DecrementVotes(ctx context.Context, id primitive.ObjectID) (int64, error) {

	filter := bson.M{"_id": id, "votes": bson.M{"$gt": 0}}
	update := bson.M{
		"$inc": bson.M{"votes": -1},
		"$set": bson.M{"updated_at": time.Now()},
	}

	votes, err := r.applyVoteDelta(ctx, filter, update)
	if !errors.Is(err, ErrNotFound) {
		return votes, err
	}

	// Either the candidate is gone or already at zero.
	var candidate models.Candidate
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&candidate); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return candidate.Votes, nil
}

func (r *candidateRepository) applyVoteDelta(ctx context.Context, filter, update bson.M) (int64, error) {

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var candidate models.Candidate
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&candidate)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return candidate.Votes, nil
}

func (r *candidateRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *candidateRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {

	res, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
