// internal/handler/http/open_handler.go
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"reddit-tools/internal/tools"
)

type OpenHandler struct {
	svc *tools.Service
}

func NewOpenHandler(svc *tools.Service) *OpenHandler {
	return &OpenHandler{svc: svc}
}

// Open godoc
// @Summary Open any Reddit URL
// @Description Classifies the URL (subreddit, post, user, search) and returns the matching page as plain text
// @Tags open
// @Produce plain
// @Param url query string true "Any Reddit URL"
// @Success 200 {string} string
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 502 {object} echo.HTTPError
// @Router /open [get]
func (h *OpenHandler) Open(c echo.Context) error {
	rawURL := c.QueryParam("url")
	if rawURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `url` parameter")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	page, err := h.svc.Open(ctx, rawURL)
	if err != nil {
		return toHTTPError(err)
	}

	return c.String(http.StatusOK, page)
}
