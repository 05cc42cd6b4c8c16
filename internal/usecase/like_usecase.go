package usecase

import (
	"context"

	"mealmate/internal/domain/entity"
	"mealmate/internal/domain/repository"
)

type LikeUseCase struct {
	mealRepo     repository.MealRepository
	upcomingRepo repository.MealRepository
	likeRepo     repository.LikeRepository
}

func NewLikeUseCase(mealRepo, upcomingRepo repository.MealRepository, likeRepo repository.LikeRepository) *LikeUseCase {
	return &LikeUseCase{
		mealRepo:     mealRepo,
		upcomingRepo: upcomingRepo,
		likeRepo:     likeRepo,
	}
}

// ApplyLikeInput carries the caller-declared transition: Delta is +1 when
// moving to liked and -1 when moving away. The pair is applied as given and
// never re-derived from stored state.
type ApplyLikeInput struct {
	PostID string
	Email  string
	Delta  int
	Liked  bool
}

type ApplyLikeResult struct {
	Counter *entity.UpdateResult `json:"result"`
	Ledger  *entity.UpdateResult `json:"likeResult"`
}

// ApplyLike bumps the post's aggregate counter and upserts the per-user
// ledger record. The two writes commit independently; a failure between them
// leaves counter and ledger out of step until the user toggles again.
func (uc *LikeUseCase) ApplyLike(ctx context.Context, upcoming bool, input ApplyLikeInput) (*ApplyLikeResult, error) {
	mealRepo := uc.mealRepo
	if upcoming {
		mealRepo = uc.upcomingRepo
	}

	counter, err := mealRepo.IncrementLikes(ctx, input.PostID, input.Delta)
	if err != nil {
		return nil, err
	}

	ledger, err := uc.likeRepo.Upsert(ctx, &entity.Like{
		Email:  input.Email,
		PostID: input.PostID,
		Liked:  input.Liked,
	})
	if err != nil {
		return nil, err
	}

	return &ApplyLikeResult{Counter: counter, Ledger: ledger}, nil
}

func (uc *LikeUseCase) IsLiked(ctx context.Context, postID, email string) (bool, error) {
	return uc.likeRepo.IsLiked(ctx, postID, email)
}
