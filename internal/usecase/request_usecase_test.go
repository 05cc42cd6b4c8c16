package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"mealmate/internal/domain/entity"
	"mealmate/internal/domain/repository"
	"mealmate/pkg/errors"
)

type fakeRequestRepo struct {
	existing  map[string]bool // key email+"|"+mealID
	createErr error
	created   []*entity.MealRequest
}

func (f *fakeRequestRepo) Create(ctx context.Context, request *entity.MealRequest) (*entity.InsertResult, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, request)
	return &entity.InsertResult{InsertedID: "new-id"}, nil
}

func (f *fakeRequestRepo) Exists(ctx context.Context, email, mealID string) (bool, error) {
	return f.existing[email+"|"+mealID], nil
}

func (f *fakeRequestRepo) ListWithMeals(ctx context.Context, email string) ([]bson.M, error) {
	return nil, nil
}

func (f *fakeRequestRepo) List(ctx context.Context, params repository.ListParams) ([]entity.MealRequest, error) {
	return nil, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id, status string) (*entity.UpdateResult, error) {
	return nil, nil
}

func (f *fakeRequestRepo) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	return nil, nil
}

func (f *fakeRequestRepo) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func TestRequestCreate(t *testing.T) {
	repo := &fakeRequestRepo{existing: map[string]bool{}}
	uc := NewRequestUseCase(repo)

	res, err := uc.Create(context.Background(), &entity.MealRequest{
		RequesterEmail: "a@b.c",
		MealID:         "m1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new-id", res.InsertedID)
	assert.Len(t, repo.created, 1)
}

func TestRequestCreateDuplicateSuppressed(t *testing.T) {
	repo := &fakeRequestRepo{existing: map[string]bool{"a@b.c|m1": true}}
	uc := NewRequestUseCase(repo)

	res, err := uc.Create(context.Background(), &entity.MealRequest{
		RequesterEmail: "a@b.c",
		MealID:         "m1",
	})

	assert.NoError(t, err)
	assert.Nil(t, res.InsertedID)
	assert.Equal(t, "Request already exists", res.Message)
	assert.Empty(t, repo.created, "duplicate never reaches the store")
}

func TestRequestCreateRacingDuplicateSuppressed(t *testing.T) {
	// Exists said no, but the unique index rejected the insert: same soft
	// outcome as the fast path.
	repo := &fakeRequestRepo{
		existing:  map[string]bool{},
		createErr: errors.Conflict("Request already exists"),
	}
	uc := NewRequestUseCase(repo)

	res, err := uc.Create(context.Background(), &entity.MealRequest{
		RequesterEmail: "a@b.c",
		MealID:         "m1",
	})

	assert.NoError(t, err)
	assert.Nil(t, res.InsertedID)
	assert.Equal(t, "Request already exists", res.Message)
}

func TestRequestCreatePropagatesOtherErrors(t *testing.T) {
	repo := &fakeRequestRepo{
		existing:  map[string]bool{},
		createErr: errors.Internal("store down", nil),
	}
	uc := NewRequestUseCase(repo)

	_, err := uc.Create(context.Background(), &entity.MealRequest{
		RequesterEmail: "a@b.c",
		MealID:         "m1",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
}
