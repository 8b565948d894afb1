package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"printshop/internal/auth"
	"printshop/internal/config"
	"printshop/internal/handler"
	"printshop/internal/model"
	"printshop/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	adminRepo repository.AdminRepository,
	orderHandler *handler.OrderHandler,
	customerHandler *handler.CustomerHandler,
	adminHandler *handler.AdminHandler,
	eventsHandler *handler.EventsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowCredentials: false,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/orders", orderHandler.Submit)
	api.POST("/admin/login", adminHandler.Login)

	// The SSE endpoint validates its token itself because EventSource
	// cannot set the Authorization header.
	api.GET("/events", eventsHandler.Stream)

	// Secured routes: echo-jwt gates on signature and expiry, AdminContext
	// then resolves the claims to an active admin.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}), auth.AdminContext(jwtService, adminRepo))

	// Order routes
	secured.GET("/orders", orderHandler.List)
	secured.GET("/orders/:orderId", orderHandler.Get)
	secured.PUT("/orders/:orderId/status", orderHandler.UpdateStatus)
	secured.GET("/orders/:orderId/file", orderHandler.GetFile)

	// Customer routes. The stats route is registered before the parameter
	// route so "stats" is never read as a customer ID.
	secured.GET("/customers", customerHandler.List)
	secured.GET("/customers/stats/overview", customerHandler.Stats)
	secured.GET("/customers/:customerId", customerHandler.Get)
	secured.PUT("/customers/:customerId", customerHandler.Update)

	// Admin routes
	secured.GET("/admin/verify", adminHandler.Verify)
	secured.GET("/admin/profile", adminHandler.Profile)

	superAdmin := secured.Group("", auth.RequireRole(model.RoleSuperAdmin))
	superAdmin.POST("/admin/create", adminHandler.Create)
	superAdmin.GET("/admin", adminHandler.List)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
