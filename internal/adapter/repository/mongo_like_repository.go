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

type mongoLikeRepository struct {
	collection *mongo.Collection
}

func NewMongoLikeRepository(db *mongo.Database) repository.LikeRepository {
	return &mongoLikeRepository{
		collection: db.Collection("likes"),
	}
}

func (r *mongoLikeRepository) Upsert(ctx context.Context, like *entity.Like) (*entity.UpdateResult, error) {
	filter := bson.M{"email": like.Email, "postId": like.PostID}
	update := bson.M{"$set": bson.M{
		"email":  like.Email,
		"postId": like.PostID,
		"liked":  like.Liked,
	}}

	res, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, errors.Internal("Failed to upsert like", err)
	}

	return toUpdateResult(res), nil
}

func (r *mongoLikeRepository) IsLiked(ctx context.Context, postID, email string) (bool, error) {
	var like entity.Like
	err := r.collection.FindOne(ctx, bson.M{"postId": postID, "email": email}).Decode(&like)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, errors.Internal("Failed to read like", err)
	}

	return like.Liked, nil
}
