package router

import (
	"mealmate/internal/adapter/api/handler"
	"mealmate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public: issuing the cookie is how a session starts.
	e.POST("/jwt", authHandler.CreateToken)

	e.POST("/logout", authHandler.Logout, authMiddleware.Authenticate)
}
