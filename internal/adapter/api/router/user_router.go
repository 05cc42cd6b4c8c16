package router

import (
	"mealmate/internal/adapter/api/handler"
	"mealmate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	// Registration is public; it runs before the client has a cookie.
	e.POST("/new-user", userHandler.Register)

	e.GET("/total-users", userHandler.Count, authMiddleware.Authenticate)
	e.GET("/users", userHandler.List, authMiddleware.Authenticate)
	e.GET("/user/admin/:email", userHandler.IsAdmin, authMiddleware.Authenticate)
	e.PATCH("/change-user-badge", userHandler.ChangeBadge, authMiddleware.Authenticate)
	e.PATCH("/change-user-role", userHandler.ChangeRole, authMiddleware.Authenticate)
}
