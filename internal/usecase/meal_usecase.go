package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mealmate/internal/domain/entity"
	"mealmate/internal/domain/repository"
)

// MealUseCase serves both the live catalog and the upcoming set; the two
// collections share one repository contract and differ only in which one an
// operation is pointed at.
type MealUseCase struct {
	mealRepo     repository.MealRepository
	upcomingRepo repository.MealRepository
}

func NewMealUseCase(mealRepo, upcomingRepo repository.MealRepository) *MealUseCase {
	return &MealUseCase{
		mealRepo:     mealRepo,
		upcomingRepo: upcomingRepo,
	}
}

func (uc *MealUseCase) repo(upcoming bool) repository.MealRepository {
	if upcoming {
		return uc.upcomingRepo
	}
	return uc.mealRepo
}

func (uc *MealUseCase) Create(ctx context.Context, upcoming bool, meal *entity.Meal) (*entity.InsertResult, error) {
	return uc.repo(upcoming).Create(ctx, meal)
}

func (uc *MealUseCase) GetByID(ctx context.Context, id string) (*entity.Meal, error) {
	return uc.mealRepo.GetByID(ctx, id)
}

func (uc *MealUseCase) List(ctx context.Context, upcoming bool, params repository.ListParams) ([]entity.Meal, error) {
	return uc.repo(upcoming).List(ctx, params)
}

func (uc *MealUseCase) Update(ctx context.Context, upcoming bool, id string, fields bson.M) (*entity.UpdateResult, error) {
	return uc.repo(upcoming).Update(ctx, id, fields)
}

func (uc *MealUseCase) Delete(ctx context.Context, upcoming bool, id string) (*entity.DeleteResult, error) {
	return uc.repo(upcoming).Delete(ctx, id)
}

func (uc *MealUseCase) Count(ctx context.Context) (int64, error) {
	return uc.mealRepo.Count(ctx)
}

func (uc *MealUseCase) Recent(ctx context.Context, mealType string, limit int64) ([]entity.Meal, error) {
	return uc.mealRepo.ListRecent(ctx, mealType, limit)
}
