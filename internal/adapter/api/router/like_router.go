package router

import (
	"mealmate/internal/adapter/api/handler"
	"mealmate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupLikeRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	likeHandler := handler.GetLikeHandler()

	e.GET("/liked-count", likeHandler.IsLiked)

	e.PUT("/like-count", likeHandler.ApplyLike, authMiddleware.Authenticate)
	e.PUT("/like-count-upcoming", likeHandler.ApplyLikeUpcoming, authMiddleware.Authenticate)
}
