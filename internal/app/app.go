// internal/app/app.go
package app

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"reddit-tools/internal/client"
	"reddit-tools/internal/config"
	"reddit-tools/internal/parser"
	"reddit-tools/internal/ratelimit"
	"reddit-tools/internal/router"
	"reddit-tools/internal/tools"
)

type App struct {
	Config  *config.Config
	Echo    *echo.Echo
	Service *tools.Service
	Tracker *ratelimit.Tracker
}

func Initialize() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	tracker := ratelimit.NewTracker()

	redditClient, err := client.NewRedditClient(cfg, tracker)
	if err != nil {
		return nil, fmt.Errorf("failed to create Reddit client: %w", err)
	}

	svc := tools.NewService(redditClient, parser.NewRedditParser(), tracker, cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	router.NewRouter(e, svc)

	return &App{
		Config:  cfg,
		Echo:    e,
		Service: svc,
		Tracker: tracker,
	}, nil
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error.Error())
				slog.Error("request", attrs...)
				return nil
			}
			slog.Info("request", attrs...)
			return nil
		},
	})
}

func (a *App) Start() error {
	port := a.Config.ServerPort
	if port == "" {
		port = "8080"
	}
	a.Echo.Server.ReadTimeout = a.Config.ReadTimeout
	a.Echo.Server.WriteTimeout = a.Config.WriteTimeout
	return a.Echo.Start(":" + port)
}
