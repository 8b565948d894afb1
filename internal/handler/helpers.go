package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"printshop/internal/errors"
)

// mapError converts a domain error to the standard {error, code} response.
// Internal failures are logged here and surfaced opaquely.
func mapError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message, code string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
