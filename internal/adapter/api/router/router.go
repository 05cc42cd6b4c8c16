package router

import (
	"mealmate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupMealRouter(e, authMiddleware)
	SetupLikeRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupRequestRouter(e, authMiddleware)
	SetupPaymentRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
