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

type RequestHandler struct {
	requestUseCase *usecase.RequestUseCase
}

func NewRequestHandler(requestUseCase *usecase.RequestUseCase) *RequestHandler {
	return &RequestHandler{
		requestUseCase: requestUseCase,
	}
}

type mealRequestRequest struct {
	RequesterEmail string `json:"recEmail" validate:"required,email"`
	RequesterName  string `json:"recName"`
	MealID         string `json:"recMealId" validate:"required"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
}

func (h *RequestHandler) Create(c echo.Context) error {
	var req mealRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}

	res, err := h.requestUseCase.Create(c.Request().Context(), &entity.MealRequest{
		RequesterEmail: req.RequesterEmail,
		RequesterName:  req.RequesterName,
		MealID:         req.MealID,
		Status:         status,
		CreatedAt:      req.CreatedAt,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

// RequestedMeals returns the caller's requests denormalized with the meals
// they reference.
func (h *RequestHandler) RequestedMeals(c echo.Context) error {
	merged, err := h.requestUseCase.RequestedMeals(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, merged)
}

func (h *RequestHandler) List(c echo.Context) error {
	window := utils.AdminWindow(c)

	requests, err := h.requestUseCase.List(c.Request().Context(), repository.ListParams{
		Search: c.QueryParam("search"),
		Filter: c.QueryParam("filter"),
		Limit:  window.Limit,
		Skip:   window.Skip,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, requests)
}

func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	res, err := h.requestUseCase.UpdateStatus(c.Request().Context(), c.QueryParam("id"), c.QueryParam("status"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *RequestHandler) Cancel(c echo.Context) error {
	res, err := h.requestUseCase.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *RequestHandler) Count(c echo.Context) error {
	count, err := h.requestUseCase.Count(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}
