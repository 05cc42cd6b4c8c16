package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mealmate/internal/domain/entity"
)

// MealRepository is implemented once for the live meals collection and once
// for the upcoming collection; the two sets are independent and moving a meal
// between them is an explicit copy, not a state transition.
type MealRepository interface {
	Create(ctx context.Context, meal *entity.Meal) (*entity.InsertResult, error)
	GetByID(ctx context.Context, id string) (*entity.Meal, error)
	List(ctx context.Context, params ListParams) ([]entity.Meal, error)

	// Update sets exactly the provided fields; anything absent from the map,
	// the likes and review counters included, keeps its stored value.
	Update(ctx context.Context, id string, fields bson.M) (*entity.UpdateResult, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
	Count(ctx context.Context) (int64, error)

	// ListRecent returns the newest meals, optionally restricted to one meal
	// type. Used by the per-type teaser rows on the landing page.
	ListRecent(ctx context.Context, mealType string, limit int64) ([]entity.Meal, error)

	// IncrementLikes adjusts the aggregate likes counter by delta. The
	// per-user ledger lives in LikeRepository; the pair is not atomic.
	IncrementLikes(ctx context.Context, id string, delta int) (*entity.UpdateResult, error)
}
