package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mealmate/internal/domain/entity"
	"mealmate/internal/usecase"
	"mealmate/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

// Rating range 1-5 is a client expectation, deliberately not enforced here.
type reviewRequest struct {
	PostID    string `json:"postId" validate:"required"`
	Rating    int    `json:"rating" validate:"required"`
	Text      string `json:"text"`
	UserEmail string `json:"reviewUserEmail" validate:"required,email"`
	UserName  string `json:"reviewUserName"`
	CreatedAt string `json:"createdAt"`
}

func (r *reviewRequest) toEntity() *entity.Review {
	return &entity.Review{
		PostID:    r.PostID,
		Rating:    r.Rating,
		Text:      r.Text,
		UserEmail: r.UserEmail,
		UserName:  r.UserName,
		CreatedAt: r.CreatedAt,
	}
}

func (h *ReviewHandler) Create(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	res, err := h.reviewUseCase.Create(c.Request().Context(), req.toEntity())
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviewUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) ListByPost(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListByPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) ListMine(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Update(c echo.Context) error {
	fields, err := bindUpdate(c)
	if err != nil {
		return response.Error(c, err)
	}

	res, err := h.reviewUseCase.Update(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *ReviewHandler) Delete(c echo.Context) error {
	res, err := h.reviewUseCase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *ReviewHandler) RatingSummary(c echo.Context) error {
	summary, err := h.reviewUseCase.RatingSummary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}
