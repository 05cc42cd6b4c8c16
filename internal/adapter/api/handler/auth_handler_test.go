package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"mealmate/internal/adapter/api"
	"mealmate/internal/adapter/api/middleware"
	"mealmate/internal/usecase"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

func TestCreateTokenSetsCookie(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@b.c"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAuthHandler(usecase.NewAuthUseCase("secret", 3600), "development")

	assert.NoError(t, h.CreateToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.TokenCookie, cookie.Name)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure, "development cookie stays plain-http friendly")
}

func TestCreateTokenRejectsBadEmail(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAuthHandler(usecase.NewAuthUseCase("secret", 3600), "development")

	assert.NoError(t, h.CreateToken(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAuthHandler(usecase.NewAuthUseCase("secret", 3600), "development")

	assert.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestProductionCookieCrossSite(t *testing.T) {
	h := NewAuthHandler(usecase.NewAuthUseCase("secret", 3600), "production")

	cookie := h.tokenCookie("tok", 0)

	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}
