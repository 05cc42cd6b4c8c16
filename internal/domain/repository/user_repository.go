package repository

import (
	"context"

	"mealmate/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.InsertResult, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, params ListParams) ([]entity.User, error)
	Count(ctx context.Context) (int64, error)
	UpdateRole(ctx context.Context, id, role string) (*entity.UpdateResult, error)

	// UpsertBadgeByEmail sets the badge on the user keyed by email, creating a
	// minimal record when none exists yet. Payments from accounts that have
	// not completed signup still land somewhere.
	UpsertBadgeByEmail(ctx context.Context, email, badge string) (*entity.UpdateResult, error)
}
