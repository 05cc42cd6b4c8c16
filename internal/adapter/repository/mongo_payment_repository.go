package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mealmate/internal/domain/entity"
	"mealmate/internal/domain/repository"
	"mealmate/pkg/errors"
)

type mongoPaymentRepository struct {
	collection *mongo.Collection
}

func NewMongoPaymentRepository(db *mongo.Database) repository.PaymentRepository {
	return &mongoPaymentRepository{
		collection: db.Collection("payments"),
	}
}

func (r *mongoPaymentRepository) Create(ctx context.Context, payment *entity.Payment) (*entity.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return nil, errors.Internal("Failed to create payment", err)
	}

	return toInsertResult(res), nil
}

func (r *mongoPaymentRepository) ListAll(ctx context.Context) ([]entity.Payment, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoPaymentRepository) ListByEmail(ctx context.Context, email string) ([]entity.Payment, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *mongoPaymentRepository) find(ctx context.Context, filter bson.M) ([]entity.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Internal("Failed to list payments", err)
	}

	payments := make([]entity.Payment, 0)
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, errors.Internal("Failed to decode payments", err)
	}

	return payments, nil
}

func (r *mongoPaymentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, errors.Internal("Failed to check payments", err)
	}

	return true, nil
}
