// internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"reddit-tools/internal/handler/http"
	"reddit-tools/internal/tools"
)

func NewRouter(e *echo.Echo, svc *tools.Service) {
	opn := http.NewOpenHandler(svc)
	sub := http.NewSubredditHandler(svc)
	pst := http.NewPostHandler(svc)
	usr := http.NewUserHandler(svc)
	sch := http.NewSearchHandler(svc)
	rlm := http.NewRateLimitHandler(svc)

	e.GET("/open", opn.Open)
	e.GET("/subreddit", sub.GetSubredditPosts)
	e.GET("/subreddit/about", sub.GetSubredditInfo)
	e.GET("/post", pst.GetPost)
	e.GET("/user", usr.GetUser)
	e.GET("/search", sch.Search)
	e.GET("/ratelimit", rlm.Status)
}
