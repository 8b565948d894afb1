package main

import (
	"context"
	"log"
	"net/http"

	_ "printshop/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"printshop/internal/auth"
	"printshop/internal/cache"
	"printshop/internal/config"
	"printshop/internal/db"
	"printshop/internal/handler"
	"printshop/internal/model"
	"printshop/internal/notify"
	"printshop/internal/repository"
	"printshop/internal/router"
	"printshop/internal/service"
	"printshop/internal/storage"
)

// @title PrintShop Order API
// @version 1.0
// @description Order intake and fulfillment tracking for a PCB/3D-printing service, with an SSE channel for admin dashboard notifications.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Customer{},
		&model.Order{},
		&model.Admin{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	fileStore, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	hub := notify.NewHub()

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(adminRepo, jwtService)
	orderService := service.NewOrderService(orderRepo, customerRepo, hub, cacheClient)
	customerService := service.NewCustomerService(customerRepo, orderRepo, cacheClient)

	// Create the default super admin if this is a fresh database.
	if err := authService.Bootstrap(context.Background(), cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}

	// Initialize handlers
	orderHandler := handler.NewOrderHandler(orderService, fileStore)
	customerHandler := handler.NewCustomerHandler(customerService)
	adminHandler := handler.NewAdminHandler(authService)
	eventsHandler := handler.NewEventsHandler(hub, jwtService, adminRepo)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		adminRepo,
		orderHandler,
		customerHandler,
		adminHandler,
		eventsHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
