package router

import (
	"mealmate/internal/adapter/api/handler"
	"mealmate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupMealRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	mealHandler := handler.GetMealHandler()

	// Public catalog surface.
	e.GET("/meals", mealHandler.Browse)
	e.GET("/total-meals", mealHandler.Count)
	e.GET("/meals-len", mealHandler.Len)
	e.GET("/meals-six", mealHandler.RecentSix)
	e.GET("/breakfast", mealHandler.Breakfast)
	e.GET("/lunch", mealHandler.Lunch)
	e.GET("/dinner", mealHandler.Dinner)
	e.GET("/details/:id", mealHandler.Details)
	e.GET("/upcoming-meals", mealHandler.ListUpcoming)

	e.POST("/post-meal", mealHandler.Create, authMiddleware.Authenticate)
	e.GET("/all-meals", mealHandler.ListAll, authMiddleware.Authenticate)
	e.PUT("/meal-update/:id", mealHandler.Update, authMiddleware.Authenticate)
	e.DELETE("/delete-meal/:id", mealHandler.Delete, authMiddleware.Authenticate)

	// The route spelling below predates this service and is load-bearing for
	// existing clients.
	e.POST("/upcomig-meal", mealHandler.CreateUpcoming, authMiddleware.Authenticate)
	e.PUT("/upcoming-meal-update/:id", mealHandler.UpdateUpcoming, authMiddleware.Authenticate)
	e.DELETE("/delete-upcoming-meal/:id", mealHandler.DeleteUpcoming, authMiddleware.Authenticate)
}
