package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mealmate/internal/domain/entity"
)

type RequestRepository interface {
	// Create inserts a request. The collection carries a unique index on
	// (recEmail, recMealId); a duplicate surfaces as a CONFLICT error.
	Create(ctx context.Context, request *entity.MealRequest) (*entity.InsertResult, error)
	Exists(ctx context.Context, email, mealID string) (bool, error)

	// ListWithMeals returns the requester's requests newest-first, each merged
	// with the fields of its referenced meal. The meal's _id is dropped so the
	// request keeps its identity; a request whose meal was deleted comes back
	// unmerged.
	ListWithMeals(ctx context.Context, email string) ([]bson.M, error)

	List(ctx context.Context, params ListParams) ([]entity.MealRequest, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.UpdateResult, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}
