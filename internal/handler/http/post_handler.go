// internal/handler/http/post_handler.go
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"reddit-tools/internal/tools"
)

type PostHandler struct {
	svc *tools.Service
}

func NewPostHandler(svc *tools.Service) *PostHandler {
	return &PostHandler{svc: svc}
}

// GetPost godoc
// @Summary Get a Reddit post with comments
// @Description Returns a post and its comment tree as plain text
// @Tags post
// @Produce plain
// @Param url query string true "Post URL, permalink or bare post ID"
// @Param comment_limit query int false "Number of top-level comments, capped at the configured maximum"
// @Success 200 {string} string
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 502 {object} echo.HTTPError
// @Router /post [get]
func (h *PostHandler) GetPost(c echo.Context) error {
	rawURL := c.QueryParam("url")
	if rawURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `url` parameter")
	}

	commentLimit, err := intParam(c, "comment_limit")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	page, err := h.svc.GetPost(ctx, rawURL, commentLimit)
	if err != nil {
		return toHTTPError(err)
	}

	return c.String(http.StatusOK, page)
}
