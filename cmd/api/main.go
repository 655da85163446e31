package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/herovault/hero-api/internal/api"
	"github.com/herovault/hero-api/internal/core/ports"
	"github.com/herovault/hero-api/internal/core/service"
	"github.com/herovault/hero-api/internal/infrastructure/config"
	"github.com/herovault/hero-api/internal/infrastructure/db/memory"
	"github.com/herovault/hero-api/internal/infrastructure/db/postgres"
	httphandlers "github.com/herovault/hero-api/internal/infrastructure/http/handlers"
	"github.com/herovault/hero-api/internal/infrastructure/token"
	"github.com/herovault/hero-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tokens := token.NewHMAC(cfg.SessionSecret, 0)

	// Connect the primary store; fall back to a transient in-memory store so
	// the service still comes up when the database is unavailable.
	var (
		heroRepo ports.HeroRepository
		authRepo ports.AuthRepository
		store    httphandlers.Pinger
	)
	pool, err := postgres.Connect(ctx, postgres.Config{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
	})
	if err == nil {
		err = postgres.Migrate(ctx, pool)
	}
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		log.Warn().Err(err).Msg("postgres unavailable, falling back to in-memory store")
		mem := memory.NewStore()
		heroRepo, authRepo, store = mem, mem, mem
	} else {
		defer pool.Close()
		heroRepo = postgres.NewHeroRepository(pool)
		authRepo = postgres.NewAuthRepository(pool)
		store = postgres.NewStore(pool)
		log.Info().Msg("connected to postgres")
	}

	e := api.NewRouter(api.Deps{
		HeroService: service.NewHeroService(heroRepo, log),
		AuthService: service.NewAuthService(authRepo, tokens),
		Verifier:    tokens,
		Store:       store,
		Logger:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("hero API listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
