// internal/handler/http/subreddit_handler.go
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"reddit-tools/internal/tools"
)

type SubredditHandler struct {
	svc *tools.Service
}

func NewSubredditHandler(svc *tools.Service) *SubredditHandler {
	return &SubredditHandler{svc: svc}
}

// GetSubredditPosts godoc
// @Summary Get posts from a subreddit
// @Description Returns one page of a subreddit listing as plain text
// @Tags subreddit
// @Produce plain
// @Param name query string true "Subreddit name without the r/ prefix"
// @Param sort query string false "Sort order (hot, new, top, rising, best)"
// @Param limit query int false "Number of posts, capped at the configured maximum"
// @Param time query string false "Time window for top sort (hour, day, week, month, year, all)"
// @Success 200 {string} string
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 502 {object} echo.HTTPError
// @Router /subreddit [get]
func (h *SubredditHandler) GetSubredditPosts(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `name` parameter")
	}

	limit, err := intParam(c, "limit")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	page, err := h.svc.GetSubreddit(ctx, name, c.QueryParam("sort"), limit, c.QueryParam("time"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.String(http.StatusOK, page)
}

// GetSubredditInfo godoc
// @Summary Get subreddit metadata
// @Description Returns the about page of a subreddit as plain text
// @Tags subreddit
// @Produce plain
// @Param name query string true "Subreddit name without the r/ prefix"
// @Success 200 {string} string
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 502 {object} echo.HTTPError
// @Router /subreddit/about [get]
func (h *SubredditHandler) GetSubredditInfo(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `name` parameter")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	page, err := h.svc.GetSubredditInfo(ctx, name)
	if err != nil {
		return toHTTPError(err)
	}

	return c.String(http.StatusOK, page)
}
