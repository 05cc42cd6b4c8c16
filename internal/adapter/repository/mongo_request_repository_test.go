package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMergeRequestMeals(t *testing.T) {
	mealID := primitive.NewObjectID()
	requestID := primitive.NewObjectID()

	requests := []bson.M{
		{
			"_id":       requestID,
			"recEmail":  "a@b.c",
			"recMealId": mealID.Hex(),
			"status":    "pending",
		},
	}
	meals := []bson.M{
		{
			"_id":   mealID,
			"title": "Nasi Goreng",
			"price": 7.5,
		},
	}

	merged := mergeRequestMeals(requests, meals)

	assert.Len(t, merged, 1)
	doc := merged[0]
	assert.Equal(t, requestID, doc["_id"], "request keeps its own identity")
	assert.Equal(t, "Nasi Goreng", doc["title"])
	assert.Equal(t, 7.5, doc["price"])
	assert.Equal(t, "pending", doc["status"])
	assert.Equal(t, mealID.Hex(), doc["recMealId"])
}

func TestMergeRequestMealsMealFieldsWin(t *testing.T) {
	mealID := primitive.NewObjectID()

	requests := []bson.M{
		{"_id": primitive.NewObjectID(), "recMealId": mealID.Hex(), "title": "stale"},
	}
	meals := []bson.M{
		{"_id": mealID, "title": "fresh"},
	}

	merged := mergeRequestMeals(requests, meals)
	assert.Equal(t, "fresh", merged[0]["title"])
}

func TestMergeRequestMealsDeletedMealPassesThrough(t *testing.T) {
	requestID := primitive.NewObjectID()
	requests := []bson.M{
		{"_id": requestID, "recMealId": primitive.NewObjectID().Hex(), "status": "pending"},
	}

	merged := mergeRequestMeals(requests, nil)

	assert.Len(t, merged, 1)
	assert.Equal(t, requests[0], merged[0])
}

func TestMergeRequestMealsPreservesRequestOrder(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	requests := []bson.M{
		{"_id": primitive.NewObjectID(), "recMealId": second.Hex()},
		{"_id": primitive.NewObjectID(), "recMealId": first.Hex()},
	}
	meals := []bson.M{
		{"_id": first, "title": "first"},
		{"_id": second, "title": "second"},
	}

	merged := mergeRequestMeals(requests, meals)

	assert.Equal(t, "second", merged[0]["title"])
	assert.Equal(t, "first", merged[1]["title"])
}

func TestMergeRequestMealsEmpty(t *testing.T) {
	merged := mergeRequestMeals(nil, nil)
	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}
