// internal/handler/http/user_handler.go
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"reddit-tools/internal/tools"
)

type UserHandler struct {
	svc *tools.Service
}

func NewUserHandler(svc *tools.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetUser godoc
// @Summary Get a Reddit user's recent activity
// @Description Returns a user's overview, submitted posts or comments as plain text
// @Tags user
// @Produce plain
// @Param username query string true "Reddit username without the u/ prefix"
// @Param kind query string false "Listing kind (overview, submitted, comments)"
// @Param limit query int false "Number of items, capped at the configured maximum"
// @Success 200 {string} string
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 502 {object} echo.HTTPError
// @Router /user [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `username` parameter")
	}

	limit, err := intParam(c, "limit")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	page, err := h.svc.GetUser(ctx, username, c.QueryParam("kind"), limit)
	if err != nil {
		return toHTTPError(err)
	}

	return c.String(http.StatusOK, page)
}
