package repository

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mealmate/internal/domain/entity"
	"mealmate/pkg/errors"
)

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.BadRequest("Invalid id", err)
	}
	return oid, nil
}

func toInsertResult(res *mongo.InsertOneResult) *entity.InsertResult {
	return &entity.InsertResult{InsertedID: res.InsertedID}
}

func toUpdateResult(res *mongo.UpdateResult) *entity.UpdateResult {
	return &entity.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func toDeleteResult(res *mongo.DeleteResult) *entity.DeleteResult {
	return &entity.DeleteResult{DeletedCount: res.DeletedCount}
}
