package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "printshop/internal/errors"
	"printshop/internal/model"
	"printshop/internal/repository"
)

// adminContextKey is where the resolved admin is stored on the Echo context.
const adminContextKey = "current_admin"

// AdminContext parses the bearer token into typed claims and resolves them
// to a live admin row, rejecting tokens whose admin no longer exists or has
// been deactivated. It runs behind the echo-jwt gate on secured routes.
func AdminContext(jwtService *JWTService, adminRepo repository.AdminRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == "" || tokenString == header {
				return unauthorized()
			}

			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				return unauthorized()
			}

			adminID, err := uuid.Parse(claims.AdminID)
			if err != nil {
				return unauthorized()
			}

			admin, err := adminRepo.FindByID(c.Request().Context(), adminID)
			if err != nil || !admin.Active {
				return unauthorized()
			}

			c.Set(adminContextKey, admin)
			return next(c)
		}
	}
}

// RequireRole rejects requests whose authenticated admin does not hold the
// given role.
func RequireRole(role model.AdminRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin := AdminFromContext(c)
			if admin == nil {
				return unauthorized()
			}
			if admin.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: apperrors.ErrForbidden.Error(),
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}

// AdminFromContext returns the admin resolved by AdminContext, or nil.
func AdminFromContext(c echo.Context) *model.Admin {
	admin, _ := c.Get(adminContextKey).(*model.Admin)
	return admin
}

func unauthorized() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: apperrors.ErrInvalidToken.Error(),
		Code:  "INVALID_TOKEN",
	})
}
