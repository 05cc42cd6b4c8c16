package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mealmate/internal/usecase"
	"mealmate/pkg/response"
)

type LikeHandler struct {
	likeUseCase *usecase.LikeUseCase
}

func NewLikeHandler(likeUseCase *usecase.LikeUseCase) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
	}
}

type likeRequest struct {
	ID    string `json:"id" validate:"required"`
	Count int    `json:"count" validate:"required,oneof=1 -1"`
	Liked bool   `json:"liked"`
	Email string `json:"email" validate:"required,email"`
}

func (h *LikeHandler) ApplyLike(c echo.Context) error {
	return h.applyLike(c, false)
}

func (h *LikeHandler) ApplyLikeUpcoming(c echo.Context) error {
	return h.applyLike(c, true)
}

func (h *LikeHandler) applyLike(c echo.Context, upcoming bool) error {
	var req likeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	res, err := h.likeUseCase.ApplyLike(c.Request().Context(), upcoming, usecase.ApplyLikeInput{
		PostID: req.ID,
		Email:  req.Email,
		Delta:  req.Count,
		Liked:  req.Liked,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *LikeHandler) IsLiked(c echo.Context) error {
	liked, err := h.likeUseCase.IsLiked(c.Request().Context(), c.QueryParam("id"), c.QueryParam("email"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, liked)
}
