package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mealmate/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) (*entity.InsertResult, error)
	List(ctx context.Context) ([]entity.Review, error)
	ListByPost(ctx context.Context, postID string) ([]entity.Review, error)
	ListByEmail(ctx context.Context, email string) ([]entity.Review, error)

	// Update sets exactly the provided fields; omitted fields keep their
	// stored values.
	Update(ctx context.Context, id string, fields bson.M) (*entity.UpdateResult, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)

	// RatingSummary groups the post's reviews into sum, count and average.
	// Zero reviews yield {0, 0, 0}.
	RatingSummary(ctx context.Context, postID string) (*entity.RatingSummary, error)
}
