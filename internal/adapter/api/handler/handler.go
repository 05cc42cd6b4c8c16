package handler

import (
	"mealmate/internal/usecase"
)

var (
	authHandler    *AuthHandler
	userHandler    *UserHandler
	mealHandler    *MealHandler
	likeHandler    *LikeHandler
	reviewHandler  *ReviewHandler
	requestHandler *RequestHandler
	paymentHandler *PaymentHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	mealUseCase *usecase.MealUseCase,
	likeUseCase *usecase.LikeUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	requestUseCase *usecase.RequestUseCase,
	paymentUseCase *usecase.PaymentUseCase,
	environment string,
) {
	authHandler = NewAuthHandler(authUseCase, environment)
	userHandler = NewUserHandler(userUseCase)
	mealHandler = NewMealHandler(mealUseCase)
	likeHandler = NewLikeHandler(likeUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	requestHandler = NewRequestHandler(requestUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetMealHandler() *MealHandler {
	return mealHandler
}

func GetLikeHandler() *LikeHandler {
	return likeHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetRequestHandler() *RequestHandler {
	return requestHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}
