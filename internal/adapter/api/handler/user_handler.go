package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mealmate/internal/domain/entity"
	"mealmate/internal/domain/repository"
	"mealmate/internal/usecase"
	"mealmate/pkg/response"
	"mealmate/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type newUserRequest struct {
	Email string `json:"userEmail" validate:"required,email"`
	Name  string `json:"userName" validate:"required"`
	Role  string `json:"role"`
	Badge string `json:"badge"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req newUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	res, err := h.userUseCase.Register(c.Request().Context(), &entity.User{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
		Badge: req.Badge,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *UserHandler) Count(c echo.Context) error {
	count, err := h.userUseCase.Count(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}

func (h *UserHandler) List(c echo.Context) error {
	window := utils.AdminWindow(c)

	users, err := h.userUseCase.List(c.Request().Context(), repository.ListParams{
		Search: c.QueryParam("search"),
		Filter: c.QueryParam("filter"),
		Limit:  window.Limit,
		Skip:   window.Skip,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, users)
}

// IsAdmin answers the dashboard's role probe. The probed email must match the
// verified identity; asking about someone else is a 403.
func (h *UserHandler) IsAdmin(c echo.Context) error {
	email := c.Param("email")

	if tokenEmail, _ := c.Get("email").(string); tokenEmail != email {
		return c.JSON(http.StatusForbidden, map[string]string{"message": "Unauthorized access"})
	}

	admin, err := h.userUseCase.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"admin": admin})
}

func (h *UserHandler) ChangeBadge(c echo.Context) error {
	res, err := h.userUseCase.ChangeBadge(c.Request().Context(), c.QueryParam("email"), c.QueryParam("badge"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *UserHandler) ChangeRole(c echo.Context) error {
	res, err := h.userUseCase.ChangeRole(c.Request().Context(), c.QueryParam("id"), c.QueryParam("role"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, res)
}
