package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"mealmate/internal/adapter/api"
	"mealmate/internal/adapter/api/handler"
	apimiddleware "mealmate/internal/adapter/api/middleware"
	"mealmate/internal/adapter/api/router"
	"mealmate/internal/adapter/repository"
	"mealmate/internal/domain/service"
	"mealmate/internal/infrastructure/mongodb"
	"mealmate/internal/usecase"
	"mealmate/pkg/config"
	"mealmate/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	db := client.Database(cfg.Database)

	// The unique index is the real duplicate-request guard; the service still
	// works without it, so a failure here is not fatal.
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		logger.Warn("Failed to ensure indexes: %v", err)
	}

	mealRepo := repository.NewMongoMealRepository(db, "meals")
	upcomingRepo := repository.NewMongoMealRepository(db, "upcoming_meals")
	requestRepo := repository.NewMongoRequestRepository(db)
	likeRepo := repository.NewMongoLikeRepository(db)
	reviewRepo := repository.NewMongoReviewRepository(db)
	userRepo := repository.NewMongoUserRepository(db)
	paymentRepo := repository.NewMongoPaymentRepository(db)

	intentService := service.NewStripePaymentService(cfg.StripeSecretKey)

	authUseCase := usecase.NewAuthUseCase(cfg.TokenSecret, cfg.TokenExpiry)
	userUseCase := usecase.NewUserUseCase(userRepo)
	mealUseCase := usecase.NewMealUseCase(mealRepo, upcomingRepo)
	likeUseCase := usecase.NewLikeUseCase(mealRepo, upcomingRepo, likeRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo)
	requestUseCase := usecase.NewRequestUseCase(requestRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, userRepo, intentService)

	handler.Setup(
		authUseCase,
		userUseCase,
		mealUseCase,
		likeUseCase,
		reviewUseCase,
		requestUseCase,
		paymentUseCase,
		cfg.Environment,
	)

	authMiddleware := apimiddleware.NewAuthMiddleware(cfg.TokenSecret)

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowCredentials: true,
	}))

	router.Setup(e, authMiddleware)

	logger.Info("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
