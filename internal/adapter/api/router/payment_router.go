package router

import (
	"mealmate/internal/adapter/api/handler"
	"mealmate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPaymentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	paymentHandler := handler.GetPaymentHandler()

	// Public so the membership page can probe before the user logs in.
	e.GET("/paymentssCnf/:email", paymentHandler.HasPaid)

	e.POST("/create-payment-intent", paymentHandler.CreateIntent, authMiddleware.Authenticate)
	e.POST("/payments", paymentHandler.Record, authMiddleware.Authenticate)
	e.GET("/all-payments", paymentHandler.History, authMiddleware.Authenticate)
	e.GET("/paymentss/:email", paymentHandler.HistoryByEmail, authMiddleware.Authenticate)
}
