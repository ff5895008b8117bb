package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodcourt/app/echo-server/router"
	"foodcourt/business/auth"
	"foodcourt/business/catalog"
	"foodcourt/business/orders"
	"foodcourt/business/payments"
	"foodcourt/internal/middleware"
	psqlRepo "foodcourt/internal/repository/postgres"
	redisRepo "foodcourt/internal/repository/redis"
	"foodcourt/internal/rest"
	"foodcourt/pkg/config"
	"foodcourt/pkg/database"
	redisdb "foodcourt/pkg/database/redis"
	"foodcourt/pkg/logger"
	"foodcourt/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Foodcourt", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	logger.Info("Database connected successfully")

	if cfg.App.SeedOnStart {
		if err := database.Seed(db); err != nil {
			logger.Fatal("Failed to seed database", "error", err)
		}
	}

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer func() {
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Failed to close Redis client", err)
		}
	}()

	// Init metrics
	metrics.Init()

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	restaurantRepo := psqlRepo.NewRestaurantRepository(db)
	menuRepo := psqlRepo.NewMenuItemRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	paymentRepo := psqlRepo.NewPaymentMethodsRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init service
	authService := auth.NewAuthService(userRepo, tokenRepo, validate)
	catalogService := catalog.NewCatalogService(restaurantRepo, menuRepo)
	ordersService := orders.NewOrdersService(ordersRepo, restaurantRepo, menuRepo)
	paymentsService := payments.NewPaymentsService(paymentRepo, cfg.App.CardEncryptionKey)

	// Init handler
	authHandler := rest.NewAuthHandler(authService)
	userHandler := rest.NewUserHandler(authService)
	restaurantHandler := rest.NewRestaurantHandler(catalogService)
	ordersHandler := rest.NewOrdersHandler(ordersService)
	paymentMethodsHandler := rest.NewPaymentMethodsHandler(paymentsService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(authService, userRepo)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupAuthRoutes(api, authHandler, authRequired)
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupRestaurantRoutes(api, restaurantHandler, authRequired)
	router.SetupOrderRoutes(api, ordersHandler, authRequired)
	router.SetupPaymentMethodRoutes(api, paymentMethodsHandler, authRequired)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
