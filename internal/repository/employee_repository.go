package repository

import (
	"context"
	"time"

	"eventvote/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type employeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(collection *mongo.Collection) EmployeeRepository {
	return &employeeRepository{
		collection: collection,
	}
}

func (r *employeeRepository) Upsert(ctx context.Context, input models.EmployeeInput) error {

	now := time.Now()
	filter := bson.M{"employee_code": input.EmployeeCode}
	update := bson.M{
		"$set": bson.M{
			"name":       input.Name,
			"department": input.Department,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"has_won_prize": false,
			"prize_type":    nil,
			"won_at":        nil,
			"created_at":    now,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *employeeRepository) List(ctx context.Context, hasWonPrize *bool) ([]models.Employee, error) {

	filter := bson.M{}
	if hasWonPrize != nil {
		filter["has_won_prize"] = *hasWonPrize
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (r *employeeRepository) Eligible(ctx context.Context) ([]models.Employee, error) {
	return r.find(ctx, bson.M{"has_won_prize": false}, options.Find())
}

func (r *employeeRepository) MarkWinners(ctx context.Context, ids []primitive.ObjectID, prizeType models.PrizeType, wonAt time.Time) (int64, error) {

	filter := bson.M{"_id": bson.M{"$in": ids}}
	update := bson.M{"$set": bson.M{
		"has_won_prize": true,
		"prize_type":    prizeType,
		"won_at":        wonAt,
		"updated_at":    wonAt,
	}}

	res, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *employeeRepository) Winners(ctx context.Context, prizeType models.PrizeType) ([]models.Employee, error) {

	filter := bson.M{"has_won_prize": true}
	if prizeType != "" {
		filter["prize_type"] = prizeType
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "won_at", Value: -1}}))
}

func (r *employeeRepository) CountWinners(ctx context.Context, prizeType models.PrizeType) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"has_won_prize": true, "prize_type": prizeType})
}

func (r *employeeRepository) ResetAll(ctx context.Context) (int64, error) {

	update := bson.M{"$set": bson.M{
		"has_won_prize": false,
		"prize_type":    nil,
		"won_at":        nil,
		"updated_at":    time.Now(),
	}}

	res, err := r.collection.UpdateMany(ctx, bson.M{}, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *employeeRepository) DeleteAll(ctx context.Context) (int64, error) {

	res, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *employeeRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Employee, error) {

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	employees := []models.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}
