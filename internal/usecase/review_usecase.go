package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mealmate/internal/domain/entity"
	"mealmate/internal/domain/repository"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
	}
}

func (uc *ReviewUseCase) Create(ctx context.Context, review *entity.Review) (*entity.InsertResult, error) {
	return uc.reviewRepo.Create(ctx, review)
}

func (uc *ReviewUseCase) List(ctx context.Context) ([]entity.Review, error) {
	return uc.reviewRepo.List(ctx)
}

func (uc *ReviewUseCase) ListByPost(ctx context.Context, postID string) ([]entity.Review, error) {
	return uc.reviewRepo.ListByPost(ctx, postID)
}

func (uc *ReviewUseCase) ListByEmail(ctx context.Context, email string) ([]entity.Review, error) {
	return uc.reviewRepo.ListByEmail(ctx, email)
}

func (uc *ReviewUseCase) Update(ctx context.Context, id string, fields bson.M) (*entity.UpdateResult, error) {
	return uc.reviewRepo.Update(ctx, id, fields)
}

func (uc *ReviewUseCase) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	return uc.reviewRepo.Delete(ctx, id)
}

func (uc *ReviewUseCase) RatingSummary(ctx context.Context, postID string) (*entity.RatingSummary, error) {
	return uc.reviewRepo.RatingSummary(ctx, postID)
}
