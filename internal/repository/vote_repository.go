package repository

import (
	"context"
	"errors"

	"eventvote/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type voteRepository struct {
	collection *mongo.Collection
}

func NewVoteRepository(collection *mongo.Collection) VoteRepository {
	return &voteRepository{
		collection: collection,
	}
}

func (r *voteRepository) Insert(ctx context.Context, vote *models.Vote) error {

	res, err := r.collection.InsertOne(ctx, vote)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		vote.ID = id
	}
	return nil
}

func (r *voteRepository) FindByOrigin(ctx context.Context, ipAddress string, category models.Category) ([]models.Vote, error) {

	filter := bson.M{"ip_address": ipAddress, "category": category}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	votes := []models.Vote{}
	if err := cursor.All(ctx, &votes); err != nil {
		return nil, err
	}
	return votes, nil
}

func (r *voteRepository) DeleteLatest(ctx context.Context, candidateID primitive.ObjectID, ipAddress string) (bool, error) {

	filter := bson.M{"candidate_id": candidateID, "ip_address": ipAddress}
	opts := options.FindOneAndDelete().SetSort(bson.D{{Key: "created_at", Value: -1}})

	err := r.collection.FindOneAndDelete(ctx, filter, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
