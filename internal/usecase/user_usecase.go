package usecase

import (
	"context"

	"mealmate/internal/domain/entity"
	"mealmate/internal/domain/repository"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// Register stores a new user keyed by email. Re-registering an existing email
// reports success with a null insertion marker so repeated client logins stay
// harmless.
func (uc *UserUseCase) Register(ctx context.Context, user *entity.User) (*entity.InsertResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &entity.InsertResult{
			InsertedID: nil,
			Message:    "User already exists",
		}, nil
	}

	return uc.userRepo.Create(ctx, user)
}

func (uc *UserUseCase) List(ctx context.Context, params repository.ListParams) ([]entity.User, error) {
	return uc.userRepo.List(ctx, params)
}

func (uc *UserUseCase) Count(ctx context.Context) (int64, error) {
	return uc.userRepo.Count(ctx)
}

func (uc *UserUseCase) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}

	return user != nil && user.Role == "admin", nil
}

func (uc *UserUseCase) ChangeRole(ctx context.Context, id, role string) (*entity.UpdateResult, error) {
	return uc.userRepo.UpdateRole(ctx, id, role)
}

func (uc *UserUseCase) ChangeBadge(ctx context.Context, email, badge string) (*entity.UpdateResult, error) {
	return uc.userRepo.UpsertBadgeByEmail(ctx, email, badge)
}
