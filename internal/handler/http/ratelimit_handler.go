// internal/handler/http/ratelimit_handler.go
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"reddit-tools/internal/tools"
)

type RateLimitHandler struct {
	svc *tools.Service
}

func NewRateLimitHandler(svc *tools.Service) *RateLimitHandler {
	return &RateLimitHandler{svc: svc}
}

// Status godoc
// @Summary Get Reddit rate limit status
// @Description Reports the quota Reddit last communicated via response headers; fields never observed read "unknown"
// @Tags ratelimit
// @Produce plain
// @Success 200 {string} string
// @Router /ratelimit [get]
func (h *RateLimitHandler) Status(c echo.Context) error {
	return c.String(http.StatusOK, h.svc.RateLimitStatus())
}
