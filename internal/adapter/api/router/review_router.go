package router

import (
	"mealmate/internal/adapter/api/handler"
	"mealmate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/reviews", reviewHandler.List)
	e.GET("/read-review/:id", reviewHandler.ListByPost)
	e.GET("/sum-of-rating/:id", reviewHandler.RatingSummary)

	e.POST("/post-review", reviewHandler.Create, authMiddleware.Authenticate)
	e.PUT("/review-update/:id", reviewHandler.Update, authMiddleware.Authenticate)
	e.GET("/read-my-review/:email", reviewHandler.ListMine, authMiddleware.Authenticate)
	e.DELETE("/delete-review/:id", reviewHandler.Delete, authMiddleware.Authenticate)
}
