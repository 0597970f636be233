package main

import (
	"time"

	"stylistapi/config"
	"stylistapi/controllers"
	"stylistapi/logging"
	"stylistapi/metrics"
	"stylistapi/models"
	"stylistapi/services"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      services.GetEnv("ENV", "local"),
		Release:          "stylistapi@1.0.0",
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("sentry.Init failed")
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	backends := make([]services.ModelBackend, 0, len(cfg.Models)+1)
	for _, model := range cfg.Models {
		backends = append(backends, services.NewOpenRouterBackend(cfg.OpenRouterAPIKey, model, cfg.SiteReferer, cfg.SiteTitle))
	}
	if cfg.GoogleAPIKey != "" {
		backends = append(backends, services.NewGeminiBackend(cfg.GoogleAPIKey, cfg.GeminiModel))
	}

	dispatcher, err := services.NewDispatcher(backends, cfg.MaxAttempts, cfg.AttemptTimeout, cfg.RetryDelay)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize model dispatcher")
	}

	weather, err := services.NewWeatherCacheService(services.SimulatedWeather{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize weather cache service")
	}

	registry := metrics.NewRegistry()
	session := models.NewSessionContext()

	e := controllers.SetupServer(session, dispatcher, weather, registry, cfg.MaxImageEdge)
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	log.Info().
		Str("address", cfg.Address).
		Int("backends", len(backends)).
		Msg("starting stylist API")
	log.Fatal().Err(e.Start(cfg.Address)).Msg("server stopped")
}
