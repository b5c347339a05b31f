// internal/handler/http/search_handler.go
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"reddit-tools/internal/tools"
)

type SearchHandler struct {
	svc *tools.Service
}

func NewSearchHandler(svc *tools.Service) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search godoc
// @Summary Search Reddit for posts
// @Description Returns search results as plain text, optionally restricted to one subreddit
// @Tags search
// @Produce plain
// @Param q query string true "Search query"
// @Param subreddit query string false "Restrict search to this subreddit"
// @Param sort query string false "Sort order (relevance, hot, top, new, comments)"
// @Param time query string false "Time window (hour, day, week, month, year, all)"
// @Param limit query int false "Number of results, capped at the configured maximum"
// @Success 200 {string} string
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 502 {object} echo.HTTPError
// @Router /search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `q` parameter")
	}

	limit, err := intParam(c, "limit")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	page, err := h.svc.Search(ctx, query, c.QueryParam("subreddit"), c.QueryParam("sort"), c.QueryParam("time"), limit)
	if err != nil {
		return toHTTPError(err)
	}

	return c.String(http.StatusOK, page)
}
