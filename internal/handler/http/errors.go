// internal/handler/http/errors.go
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"reddit-tools/internal/models"
	"reddit-tools/internal/tools"
)

// toHTTPError maps the tool error taxonomy onto status codes: invalid
// parameters 400, missing resources 404, upstream fetch/parse trouble 502.
func toHTTPError(err error) *echo.HTTPError {
	var notFound *models.NotFoundError
	var fetchErr *models.FetchError
	var parseErr *models.ParseError

	switch {
	case errors.Is(err, tools.ErrInvalidParam):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.As(err, &fetchErr):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	case errors.As(err, &parseErr):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func intParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid `"+name+"` parameter")
	}
	return v, nil
}
