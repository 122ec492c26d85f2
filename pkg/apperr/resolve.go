package apperr

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Resolve maps a domain error onto the JSON error shape the UI displays
// verbatim. Unknown errors are reported as-is with a 500.
func Resolve(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case IsValidation(err):
		status = http.StatusBadRequest
	case IsNotFound(err):
		status = http.StatusNotFound
	case IsInvalidState(err):
		status = http.StatusConflict
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
