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

type mongoMealRepository struct {
	collection *mongo.Collection
}

// NewMongoMealRepository serves one meal collection; it is constructed once
// for "meals" and once for "upcoming_meals".
func NewMongoMealRepository(db *mongo.Database, collection string) repository.MealRepository {
	return &mongoMealRepository{
		collection: db.Collection(collection),
	}
}

func (r *mongoMealRepository) Create(ctx context.Context, meal *entity.Meal) (*entity.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, meal)
	if err != nil {
		return nil, errors.Internal("Failed to create meal", err)
	}

	return toInsertResult(res), nil
}

func (r *mongoMealRepository) GetByID(ctx context.Context, id string) (*entity.Meal, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var meal entity.Meal
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&meal)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to get meal", err)
	}

	return &meal, nil
}

func (r *mongoMealRepository) List(ctx context.Context, params repository.ListParams) ([]entity.Meal, error) {
	filter := ComposeFilter(params, mealFacets)

	cursor, err := r.collection.Find(ctx, filter, ComposeFindOptions(params))
	if err != nil {
		return nil, errors.Internal("Failed to list meals", err)
	}

	meals := make([]entity.Meal, 0)
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, errors.Internal("Failed to decode meals", err)
	}

	return meals, nil
}

func (r *mongoMealRepository) Update(ctx context.Context, id string, fields bson.M) (*entity.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return nil, errors.Internal("Failed to update meal", err)
	}

	return toUpdateResult(res), nil
}

func (r *mongoMealRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	// Deleting an absent id reports zero affected documents, not an error.
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, errors.Internal("Failed to delete meal", err)
	}

	return toDeleteResult(res), nil
}

func (r *mongoMealRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, errors.Internal("Failed to count meals", err)
	}

	return count, nil
}

func (r *mongoMealRepository) ListRecent(ctx context.Context, mealType string, limit int64) ([]entity.Meal, error) {
	filter := bson.M{}
	if mealType != "" {
		filter["mealType"] = mealType
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Internal("Failed to list recent meals", err)
	}

	meals := make([]entity.Meal, 0)
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, errors.Internal("Failed to decode meals", err)
	}

	return meals, nil
}

func (r *mongoMealRepository) IncrementLikes(ctx context.Context, id string, delta int) (*entity.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"likes": delta}})
	if err != nil {
		return nil, errors.Internal("Failed to update like counter", err)
	}

	return toUpdateResult(res), nil
}
