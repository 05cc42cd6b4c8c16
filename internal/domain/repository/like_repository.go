package repository

import (
	"context"

	"mealmate/internal/domain/entity"
)

type LikeRepository interface {
	// Upsert writes the (email, postId) ledger record with the given liked
	// flag, creating it on first use.
	Upsert(ctx context.Context, like *entity.Like) (*entity.UpdateResult, error)

	// IsLiked reports whether a ledger record exists for the pair and is
	// currently liked. Absence and liked=false are not distinguished.
	IsLiked(ctx context.Context, postID, email string) (bool, error)
}
