package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mealmate/internal/adapter/api/middleware"
	"mealmate/internal/usecase"
	"mealmate/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	environment string
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, environment string) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		environment: environment,
	}
}

type tokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *AuthHandler) CreateToken(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	token, err := h.authUseCase.IssueToken(req.Email)
	if err != nil {
		return response.Error(c, err)
	}

	c.SetCookie(h.tokenCookie(token, 0))

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.tokenCookie("", -1))

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) tokenCookie(value string, maxAge int) *http.Cookie {
	production := h.environment == "production"

	sameSite := http.SameSiteStrictMode
	if production {
		// Cross-site frontend hosting needs SameSite=None, which in turn
		// requires Secure.
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   production,
		SameSite: sameSite,
	}
}
