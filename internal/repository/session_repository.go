package repository

import (
	"context"
	"errors"
	"time"

	"eventvote/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type sessionRepository struct {
	collection *mongo.Collection
}

func NewSessionRepository(collection *mongo.Collection) SessionRepository {
	return &sessionRepository{
		collection: collection,
	}
}

func (r *sessionRepository) Get(ctx context.Context, category models.Category) (*models.VotingSession, error) {

	var session models.VotingSession
	err := r.collection.FindOne(ctx, bson.M{"category": category}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) List(ctx context.Context) ([]models.VotingSession, error) {

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []models.VotingSession{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) Upsert(ctx context.Context, category models.Category, isActive bool) (*models.VotingSession, error) {

	now := time.Now()
	filter := bson.M{"category": category}
	update := bson.M{
		"$set":         bson.M{"is_active": isActive, "updated_at": now},
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var session models.VotingSession
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}
