// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"nutrisheet/internal/delivery/http/response"
	domainerrors "nutrisheet/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// rowID reads the :id path parameter, the sheet row of a record.
func rowID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("id must be a positive row number"))
	}

	return id, nil
}

// bindAndValidate decodes the JSON body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid request body"))
	}

	return c.Validate(req)
}
