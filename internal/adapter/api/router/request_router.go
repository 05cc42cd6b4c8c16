package router

import (
	"mealmate/internal/adapter/api/handler"
	"mealmate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupRequestRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	requestHandler := handler.GetRequestHandler()

	e.GET("/request", requestHandler.List)

	e.POST("/meals-request", requestHandler.Create, authMiddleware.Authenticate)
	e.GET("/request-meals/:email", requestHandler.RequestedMeals, authMiddleware.Authenticate)
	e.PATCH("/request-meals-status-update", requestHandler.UpdateStatus, authMiddleware.Authenticate)
	e.DELETE("/cancel-req/:id", requestHandler.Cancel, authMiddleware.Authenticate)
	e.DELETE("/request-delete/:id", requestHandler.Cancel, authMiddleware.Authenticate)
	e.GET("/total-request", requestHandler.Count, authMiddleware.Authenticate)
}
