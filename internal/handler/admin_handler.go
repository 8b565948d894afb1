package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"printshop/internal/auth"
	"printshop/internal/model"
	"printshop/internal/service"
)

// AdminHandler handles admin authentication and management endpoints.
type AdminHandler struct {
	authService service.AuthService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(authService service.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

// LoginRequest carries admin credentials. Username also matches by email.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message string                `json:"message"`
	Token   string                `json:"token"`
	Admin   *service.AdminProfile `json:"admin"`
}

// CreateAdminRequest carries a new staff account. Role defaults to "admin".
type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin super_admin"`
}

// VerifyResponse confirms a token resolves to an active admin.
type VerifyResponse struct {
	Valid bool                  `json:"valid"`
	Admin *service.AdminProfile `json:"admin"`
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("username and password are required", "MISSING_CREDENTIALS")
	}

	token, profile, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   token,
		Admin:   profile,
	})
}

// Verify godoc
// @Summary Verify the bearer token
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} VerifyResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/verify [get]
func (h *AdminHandler) Verify(c echo.Context) error {
	admin := auth.AdminFromContext(c)
	profile, err := h.authService.Profile(c.Request().Context(), admin.ID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, VerifyResponse{Valid: true, Admin: profile})
}

// Profile godoc
// @Summary Get the authenticated admin's profile
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.AdminProfile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/profile [get]
func (h *AdminHandler) Profile(c echo.Context) error {
	admin := auth.AdminFromContext(c)
	profile, err := h.authService.Profile(c.Request().Context(), admin.ID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Create godoc
// @Summary Create a new admin account
// @Description Super admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAdminRequest true "New admin"
// @Success 201 {object} service.AdminProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/create [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_FAILED")
	}

	profile, err := h.authService.CreateAdmin(c.Request().Context(), service.CreateAdminInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.AdminRole(req.Role),
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Admin created successfully",
		"admin":   profile,
	})
}

// List godoc
// @Summary List all admins
// @Description Super admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Admin
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin [get]
func (h *AdminHandler) List(c echo.Context) error {
	admins, err := h.authService.ListAdmins(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, admins)
}
