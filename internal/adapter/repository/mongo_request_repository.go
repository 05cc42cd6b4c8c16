package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mealmate/internal/domain/entity"
	"mealmate/internal/domain/repository"
	"mealmate/pkg/errors"
	"mealmate/pkg/logger"
)

type mongoRequestRepository struct {
	requests *mongo.Collection
	meals    *mongo.Collection
}

func NewMongoRequestRepository(db *mongo.Database) repository.RequestRepository {
	return &mongoRequestRepository{
		requests: db.Collection("meals-request"),
		meals:    db.Collection("meals"),
	}
}

func (r *mongoRequestRepository) Create(ctx context.Context, request *entity.MealRequest) (*entity.InsertResult, error) {
	res, err := r.requests.InsertOne(ctx, request)
	if mongo.IsDuplicateKeyError(err) {
		// The unique index on (recEmail, recMealId) closed the window the
		// Exists fast path leaves open under concurrent identical requests.
		return nil, errors.Conflict("Request already exists")
	}
	if err != nil {
		return nil, errors.Internal("Failed to create request", err)
	}

	return toInsertResult(res), nil
}

func (r *mongoRequestRepository) Exists(ctx context.Context, email, mealID string) (bool, error) {
	err := r.requests.FindOne(ctx, bson.M{"recEmail": email, "recMealId": mealID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, errors.Internal("Failed to check request", err)
	}

	return true, nil
}

func (r *mongoRequestRepository) ListWithMeals(ctx context.Context, email string) ([]bson.M, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

	cursor, err := r.requests.Find(ctx, bson.M{"recEmail": email}, opts)
	if err != nil {
		return nil, errors.Internal("Failed to list requests", err)
	}

	requests := make([]bson.M, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, errors.Internal("Failed to decode requests", err)
	}
	if len(requests) == 0 {
		return requests, nil
	}

	// One batched lookup for every referenced meal.
	mealIDs := make([]primitive.ObjectID, 0, len(requests))
	for _, request := range requests {
		hex, _ := request["recMealId"].(string)
		oid, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			logger.Warn("Request %v references unparseable meal id %q", request["_id"], hex)
			continue
		}
		mealIDs = append(mealIDs, oid)
	}

	mealCursor, err := r.meals.Find(ctx, bson.M{"_id": bson.M{"$in": mealIDs}})
	if err != nil {
		return nil, errors.Internal("Failed to fetch requested meals", err)
	}

	meals := make([]bson.M, 0)
	if err := mealCursor.All(ctx, &meals); err != nil {
		return nil, errors.Internal("Failed to decode requested meals", err)
	}

	return mergeRequestMeals(requests, meals), nil
}

// mergeRequestMeals denormalizes each request with the fields of its meal.
// The meal's _id is discarded so the request keeps its own identity, and a
// request whose meal no longer exists passes through unmerged. Output order
// follows the requests, not the meals.
func mergeRequestMeals(requests, meals []bson.M) []bson.M {
	lookup := make(map[string]bson.M, len(meals))
	for _, meal := range meals {
		if oid, ok := meal["_id"].(primitive.ObjectID); ok {
			lookup[oid.Hex()] = meal
		}
	}

	merged := make([]bson.M, 0, len(requests))
	for _, request := range requests {
		mealID, _ := request["recMealId"].(string)
		meal, ok := lookup[mealID]
		if !ok {
			merged = append(merged, request)
			continue
		}

		doc := make(bson.M, len(request)+len(meal))
		for key, value := range request {
			doc[key] = value
		}
		for key, value := range meal {
			if key == "_id" {
				continue
			}
			doc[key] = value
		}
		merged = append(merged, doc)
	}

	return merged
}

func (r *mongoRequestRepository) List(ctx context.Context, params repository.ListParams) ([]entity.MealRequest, error) {
	filter := ComposeFilter(params, requestFacets)

	cursor, err := r.requests.Find(ctx, filter, ComposeFindOptions(params))
	if err != nil {
		return nil, errors.Internal("Failed to list requests", err)
	}

	requests := make([]entity.MealRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, errors.Internal("Failed to decode requests", err)
	}

	return requests, nil
}

func (r *mongoRequestRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.requests.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, errors.Internal("Failed to update request status", err)
	}

	return toUpdateResult(res), nil
}

func (r *mongoRequestRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.requests.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, errors.Internal("Failed to delete request", err)
	}

	return toDeleteResult(res), nil
}

func (r *mongoRequestRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.requests.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, errors.Internal("Failed to count requests", err)
	}

	return count, nil
}
