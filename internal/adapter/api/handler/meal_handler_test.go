package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"mealmate/internal/domain/entity"
	"mealmate/internal/domain/repository"
	"mealmate/internal/usecase"
)

type stubMealRepo struct {
	updatedID     string
	updatedFields bson.M
}

func (s *stubMealRepo) Create(ctx context.Context, meal *entity.Meal) (*entity.InsertResult, error) {
	return &entity.InsertResult{InsertedID: "id"}, nil
}

func (s *stubMealRepo) GetByID(ctx context.Context, id string) (*entity.Meal, error) {
	return nil, nil
}

func (s *stubMealRepo) List(ctx context.Context, params repository.ListParams) ([]entity.Meal, error) {
	return nil, nil
}

func (s *stubMealRepo) Update(ctx context.Context, id string, fields bson.M) (*entity.UpdateResult, error) {
	s.updatedID = id
	s.updatedFields = fields
	return &entity.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *stubMealRepo) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	return &entity.DeleteResult{DeletedCount: 1}, nil
}

func (s *stubMealRepo) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func (s *stubMealRepo) ListRecent(ctx context.Context, mealType string, limit int64) ([]entity.Meal, error) {
	return nil, nil
}

func (s *stubMealRepo) IncrementLikes(ctx context.Context, id string, delta int) (*entity.UpdateResult, error) {
	return &entity.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func mealUpdateContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPut, "/meal-update/abc", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	return c, rec
}

func TestMealUpdateWritesOnlyProvidedFields(t *testing.T) {
	repo := &stubMealRepo{}
	h := NewMealHandler(usecase.NewMealUseCase(repo, &stubMealRepo{}))
	c, rec := mealUpdateContext(`{"title":"Nasi Goreng","price":9.5}`)

	assert.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", repo.updatedID)
	assert.Equal(t, bson.M{"title": "Nasi Goreng", "price": 9.5}, repo.updatedFields)
}

func TestMealUpdateOmittedCountersStayUntouched(t *testing.T) {
	repo := &stubMealRepo{}
	h := NewMealHandler(usecase.NewMealUseCase(repo, &stubMealRepo{}))
	c, _ := mealUpdateContext(`{"title":"Edited","mealType":"lunch"}`)

	assert.NoError(t, h.Update(c))
	assert.NotContains(t, repo.updatedFields, "likes", "counter must survive an edit that omits it")
	assert.NotContains(t, repo.updatedFields, "review")
}

func TestMealUpdateDropsID(t *testing.T) {
	repo := &stubMealRepo{}
	h := NewMealHandler(usecase.NewMealUseCase(repo, &stubMealRepo{}))
	c, _ := mealUpdateContext(`{"_id":"evil","title":"Edited"}`)

	assert.NoError(t, h.Update(c))
	assert.Equal(t, bson.M{"title": "Edited"}, repo.updatedFields)
}

func TestMealUpdateEmptyBodyRejected(t *testing.T) {
	repo := &stubMealRepo{}
	h := NewMealHandler(usecase.NewMealUseCase(repo, &stubMealRepo{}))
	c, rec := mealUpdateContext(`{}`)

	assert.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.updatedID, "nothing reaches the store")
}

func TestMealUpdateUpcomingTargetsUpcomingCollection(t *testing.T) {
	live := &stubMealRepo{}
	upcoming := &stubMealRepo{}
	h := NewMealHandler(usecase.NewMealUseCase(live, upcoming))
	c, _ := mealUpdateContext(`{"title":"Soon"}`)

	assert.NoError(t, h.UpdateUpcoming(c))
	assert.Empty(t, live.updatedID)
	assert.Equal(t, "abc", upcoming.updatedID)
}
