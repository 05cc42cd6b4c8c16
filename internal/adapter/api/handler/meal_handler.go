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

const teaserLimit = 6

type MealHandler struct {
	mealUseCase *usecase.MealUseCase
}

func NewMealHandler(mealUseCase *usecase.MealUseCase) *MealHandler {
	return &MealHandler{
		mealUseCase: mealUseCase,
	}
}

type mealRequest struct {
	Title            string  `json:"title" validate:"required"`
	MealType         string  `json:"mealType" validate:"required,oneof=breakfast lunch dinner"`
	Image            string  `json:"image"`
	Ingredients      string  `json:"ingredients"`
	Description      string  `json:"description"`
	Price            float64 `json:"price" validate:"gte=0"`
	Rating           float64 `json:"rating"`
	PostTime         string  `json:"postTime"`
	Likes            int     `json:"likes"`
	ReviewCount      int     `json:"review"`
	DistributorName  string  `json:"distributorName"`
	DistributorEmail string  `json:"distributorEmail"`
}

func (r *mealRequest) toEntity() *entity.Meal {
	return &entity.Meal{
		Title:            r.Title,
		MealType:         r.MealType,
		Image:            r.Image,
		Ingredients:      r.Ingredients,
		Description:      r.Description,
		Price:            r.Price,
		Rating:           r.Rating,
		PostTime:         r.PostTime,
		Likes:            r.Likes,
		ReviewCount:      r.ReviewCount,
		DistributorName:  r.DistributorName,
		DistributorEmail: r.DistributorEmail,
	}
}

func (h *MealHandler) Create(c echo.Context) error {
	return h.create(c, false)
}

func (h *MealHandler) CreateUpcoming(c echo.Context) error {
	return h.create(c, true)
}

func (h *MealHandler) create(c echo.Context, upcoming bool) error {
	var req mealRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	res, err := h.mealUseCase.Create(c.Request().Context(), upcoming, req.toEntity())
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

// Browse is the public, unauthenticated catalog view: fixed page size of 4,
// newest first, full filter grammar.
func (h *MealHandler) Browse(c echo.Context) error {
	window := utils.BrowseWindow(c)

	meals, err := h.mealUseCase.List(c.Request().Context(), false, repository.ListParams{
		Search: c.QueryParam("search"),
		Filter: c.QueryParam("filter"),
		Limit:  window.Limit,
		Skip:   window.Skip,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, meals)
}

// ListAll is the dashboard view. Its filter parameter selects a sort by
// engagement counter, not a predicate.
func (h *MealHandler) ListAll(c echo.Context) error {
	window := utils.AdminWindow(c)

	var sort string
	switch c.QueryParam("filter") {
	case "like":
		sort = "likes"
	case "review":
		sort = "review"
	}

	meals, err := h.mealUseCase.List(c.Request().Context(), false, repository.ListParams{
		Search: c.QueryParam("search"),
		Sort:   sort,
		Limit:  window.Limit,
		Skip:   window.Skip,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, meals)
}

// ListUpcoming applies the browse filter grammar to the not-yet-released set,
// ranked by like count so the most wanted meals surface first.
func (h *MealHandler) ListUpcoming(c echo.Context) error {
	meals, err := h.mealUseCase.List(c.Request().Context(), true, repository.ListParams{
		Search: c.QueryParam("search"),
		Filter: c.QueryParam("filter"),
		Sort:   "likes",
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, meals)
}

func (h *MealHandler) Update(c echo.Context) error {
	return h.update(c, false)
}

func (h *MealHandler) UpdateUpcoming(c echo.Context) error {
	return h.update(c, true)
}

func (h *MealHandler) update(c echo.Context, upcoming bool) error {
	fields, err := bindUpdate(c)
	if err != nil {
		return response.Error(c, err)
	}

	res, err := h.mealUseCase.Update(c.Request().Context(), upcoming, c.Param("id"), fields)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *MealHandler) Delete(c echo.Context) error {
	res, err := h.mealUseCase.Delete(c.Request().Context(), false, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *MealHandler) DeleteUpcoming(c echo.Context) error {
	res, err := h.mealUseCase.Delete(c.Request().Context(), true, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *MealHandler) Count(c echo.Context) error {
	count, err := h.mealUseCase.Count(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}

func (h *MealHandler) Len(c echo.Context) error {
	count, err := h.mealUseCase.Count(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int64{"finalRes": count})
}

func (h *MealHandler) RecentSix(c echo.Context) error {
	return h.recent(c, "")
}

func (h *MealHandler) Breakfast(c echo.Context) error {
	return h.recent(c, "breakfast")
}

func (h *MealHandler) Lunch(c echo.Context) error {
	return h.recent(c, "lunch")
}

func (h *MealHandler) Dinner(c echo.Context) error {
	return h.recent(c, "dinner")
}

func (h *MealHandler) recent(c echo.Context, mealType string) error {
	meals, err := h.mealUseCase.Recent(c.Request().Context(), mealType, teaserLimit)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, meals)
}

func (h *MealHandler) Details(c echo.Context) error {
	meal, err := h.mealUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	// A missing meal serializes as null, matching the single-record contract.
	return c.JSON(http.StatusOK, meal)
}
