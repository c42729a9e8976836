package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/no-pressure/internal/agent"
	"github.com/iliyamo/no-pressure/internal/config"
	"github.com/iliyamo/no-pressure/internal/database"
	"github.com/iliyamo/no-pressure/internal/handler"
	"github.com/iliyamo/no-pressure/internal/logging"
	appmw "github.com/iliyamo/no-pressure/internal/middleware"
	"github.com/iliyamo/no-pressure/internal/repository"
	"github.com/iliyamo/no-pressure/internal/router"
	"github.com/iliyamo/no-pressure/internal/views"
)

func main() {
	_ = godotenv.Load() // optional .env for local runs
	cfg := config.Load()
	slog.SetDefault(logging.New(cfg.Env))

	conn, err := database.NewConnector(cfg)
	if err != nil {
		log.Fatal(err)
	}
	readings := repository.NewReadingRepo(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := readings.EnsureSchema(ctx); err != nil {
		log.Fatal(err)
	}

	guide, err := agent.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal(err)
	}
	if err := views.LoadTemplates(); err != nil {
		log.Fatal(err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	limiter := appmw.NewTokenBucket(config.LoadRateLimitConfig(), config.NewRedisClient())
	h := handler.NewReadingHandler(cfg, readings, guide)
	router.RegisterRoutes(e, h, limiter)

	addr := ":" + cfg.Port
	slog.Info("listening", "addr", addr, "env", cfg.Env, "db_driver", cfg.DBDriver)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
