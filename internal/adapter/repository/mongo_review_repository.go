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

type mongoReviewRepository struct {
	collection *mongo.Collection
}

func NewMongoReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &mongoReviewRepository{
		collection: db.Collection("reviews"),
	}
}

func (r *mongoReviewRepository) Create(ctx context.Context, review *entity.Review) (*entity.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return nil, errors.Internal("Failed to create review", err)
	}

	return toInsertResult(res), nil
}

func (r *mongoReviewRepository) List(ctx context.Context) ([]entity.Review, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoReviewRepository) ListByPost(ctx context.Context, postID string) ([]entity.Review, error) {
	return r.find(ctx, bson.M{"postId": postID})
}

func (r *mongoReviewRepository) ListByEmail(ctx context.Context, email string) ([]entity.Review, error) {
	return r.find(ctx, bson.M{"reviewUserEmail": email})
}

func (r *mongoReviewRepository) find(ctx context.Context, filter bson.M) ([]entity.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Internal("Failed to list reviews", err)
	}

	reviews := make([]entity.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, errors.Internal("Failed to decode reviews", err)
	}

	return reviews, nil
}

func (r *mongoReviewRepository) Update(ctx context.Context, id string, fields bson.M) (*entity.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return nil, errors.Internal("Failed to update review", err)
	}

	return toUpdateResult(res), nil
}

func (r *mongoReviewRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, errors.Internal("Failed to delete review", err)
	}

	return toDeleteResult(res), nil
}

type ratingGroup struct {
	TotalRating int `bson:"totalRating"`
	TotalCount  int `bson:"totalCount"`
}

func (r *mongoReviewRepository) RatingSummary(ctx context.Context, postID string) (*entity.RatingSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "postId", Value: postID}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRating", Value: bson.D{{Key: "$sum", Value: "$rating"}}},
			{Key: "totalCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Internal("Failed to aggregate ratings", err)
	}

	var groups []ratingGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, errors.Internal("Failed to decode rating aggregation", err)
	}

	return summarizeRatings(groups), nil
}

// summarizeRatings keeps the contract total: a post with no reviews gets a
// zero summary instead of a missing response or a NaN average.
func summarizeRatings(groups []ratingGroup) *entity.RatingSummary {
	if len(groups) == 0 || groups[0].TotalCount == 0 {
		return &entity.RatingSummary{}
	}

	group := groups[0]
	return &entity.RatingSummary{
		TotalRating:   group.TotalRating,
		TotalCount:    group.TotalCount,
		AverageRating: float64(group.TotalRating) / float64(group.TotalCount),
	}
}
