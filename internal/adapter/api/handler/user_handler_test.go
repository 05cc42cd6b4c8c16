package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"mealmate/internal/domain/entity"
	"mealmate/internal/domain/repository"
	"mealmate/internal/usecase"
)

type stubUserRepo struct {
	users map[string]*entity.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) (*entity.InsertResult, error) {
	return &entity.InsertResult{InsertedID: "id"}, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.users[email], nil
}

func (s *stubUserRepo) List(ctx context.Context, params repository.ListParams) ([]entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func (s *stubUserRepo) UpdateRole(ctx context.Context, id, role string) (*entity.UpdateResult, error) {
	return &entity.UpdateResult{}, nil
}

func (s *stubUserRepo) UpsertBadgeByEmail(ctx context.Context, email, badge string) (*entity.UpdateResult, error) {
	return &entity.UpdateResult{}, nil
}

func isAdminContext(t *testing.T, tokenEmail, paramEmail string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/user/admin/"+paramEmail, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues(paramEmail)
	c.Set("email", tokenEmail)
	return c, rec
}

func TestIsAdminRejectsProbeForOtherIdentity(t *testing.T) {
	h := NewUserHandler(usecase.NewUserUseCase(&stubUserRepo{users: map[string]*entity.User{}}))
	c, rec := isAdminContext(t, "me@b.c", "someone-else@b.c")

	assert.NoError(t, h.IsAdmin(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Unauthorized access"}`, rec.Body.String())
}

func TestIsAdminTrueForAdminRole(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*entity.User{
		"me@b.c": {Email: "me@b.c", Role: "admin"},
	}}
	h := NewUserHandler(usecase.NewUserUseCase(repo))
	c, rec := isAdminContext(t, "me@b.c", "me@b.c")

	assert.NoError(t, h.IsAdmin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin":true}`, rec.Body.String())
}

func TestIsAdminFalseForMember(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*entity.User{
		"me@b.c": {Email: "me@b.c", Role: "member"},
	}}
	h := NewUserHandler(usecase.NewUserUseCase(repo))
	c, rec := isAdminContext(t, "me@b.c", "me@b.c")

	assert.NoError(t, h.IsAdmin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin":false}`, rec.Body.String())
}
