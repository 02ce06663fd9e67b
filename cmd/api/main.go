package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aryangupta0810/ecart-backend/api/routes"
	"github.com/aryangupta0810/ecart-backend/internal/assistant"
	cartsvc "github.com/aryangupta0810/ecart-backend/internal/cart"
	"github.com/aryangupta0810/ecart-backend/internal/catalog"
	prefsvc "github.com/aryangupta0810/ecart-backend/internal/preferences"
	"github.com/aryangupta0810/ecart-backend/pkg/config"
	"github.com/aryangupta0810/ecart-backend/pkg/db"
	"github.com/aryangupta0810/ecart-backend/pkg/env"
	"github.com/aryangupta0810/ecart-backend/pkg/gemini"
	"github.com/aryangupta0810/ecart-backend/pkg/logger"
	"github.com/aryangupta0810/ecart-backend/pkg/metrics"
	"github.com/aryangupta0810/ecart-backend/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	catalogRepo := catalog.NewRepository(dbClient.DB())
	if err := catalogRepo.Seed(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to seed catalog", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	var generator assistant.TextGenerator = assistant.DisabledGenerator{}
	if cfg.Gemini.APIKey != "" {
		geminiClient, err := gemini.NewClient(cfg.Gemini.APIKey,
			gemini.WithModel(cfg.Gemini.Model),
			gemini.WithBaseURL(cfg.Gemini.BaseURL),
			gemini.WithTimeout(cfg.Gemini.Timeout),
		)
		if err != nil {
			logg.Error(context.Background(), "failed to create gemini client", err)
			os.Exit(1)
		}
		generator = geminiClient
	} else {
		logg.Warn(context.Background(), "gemini api key not set, assistant serves fallbacks only")
	}

	assistantMetrics := metrics.NewAssistantMetrics(prometheus.DefaultRegisterer)
	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartService, err := cartsvc.NewService(cartsvc.NewStore(), catalogService, cfg.Pricing)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	preferencesService, err := prefsvc.NewService(redisClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create preferences service", err)
		os.Exit(1)
	}

	assistantService, err := assistant.NewService(generator, assistantMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create assistant service", err)
		os.Exit(1)
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient,
			catalogService, cartService, preferencesService, assistantService,
			httpMetrics, nil),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
