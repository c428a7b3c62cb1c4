package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"affiliate-hub-backend/pkg/apperr"
)

// writeErr maps the error taxonomy onto HTTP: validation → 400 with field
// details, not found → 404, anything else → 500 (storage errors pass through
// unmodified; messaging is the caller's job).
func writeErr(c echo.Context, err error) error {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		details := make([]FieldError, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			details = append(details, FieldError{Field: f.Field, Message: f.Message})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: details})
	}
	if errors.Is(err, apperr.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

func paramID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Validation(name, "must be a positive integer")
	}
	return id, nil
}

func queryInt(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
