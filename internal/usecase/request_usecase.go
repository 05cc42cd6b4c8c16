package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mealmate/internal/domain/entity"
	"mealmate/internal/domain/repository"
	"mealmate/pkg/errors"
)

type RequestUseCase struct {
	requestRepo repository.RequestRepository
}

func NewRequestUseCase(requestRepo repository.RequestRepository) *RequestUseCase {
	return &RequestUseCase{
		requestRepo: requestRepo,
	}
}

// Create inserts a meal request unless the requester already has one for the
// same meal. A duplicate is a soft outcome with a null insertion marker, not
// an HTTP error: the existence check answers the common case cheaply and the
// unique index catches the race the check cannot see.
func (uc *RequestUseCase) Create(ctx context.Context, request *entity.MealRequest) (*entity.InsertResult, error) {
	exists, err := uc.requestRepo.Exists(ctx, request.RequesterEmail, request.MealID)
	if err != nil {
		return nil, err
	}
	if exists {
		return duplicateRequestResult(), nil
	}

	res, err := uc.requestRepo.Create(ctx, request)
	if errors.Is(err, "CONFLICT") {
		return duplicateRequestResult(), nil
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

func duplicateRequestResult() *entity.InsertResult {
	return &entity.InsertResult{
		InsertedID: nil,
		Message:    "Request already exists",
	}
}

func (uc *RequestUseCase) RequestedMeals(ctx context.Context, email string) ([]bson.M, error) {
	return uc.requestRepo.ListWithMeals(ctx, email)
}

func (uc *RequestUseCase) List(ctx context.Context, params repository.ListParams) ([]entity.MealRequest, error) {
	return uc.requestRepo.List(ctx, params)
}

func (uc *RequestUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.UpdateResult, error) {
	return uc.requestRepo.UpdateStatus(ctx, id, status)
}

func (uc *RequestUseCase) Cancel(ctx context.Context, id string) (*entity.DeleteResult, error) {
	return uc.requestRepo.Delete(ctx, id)
}

func (uc *RequestUseCase) Count(ctx context.Context) (int64, error) {
	return uc.requestRepo.Count(ctx)
}
