package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/tone-converter/internal/config"  // Internal config loader
	"github.com/iliyamo/tone-converter/internal/groq"    // Language-model client
	"github.com/iliyamo/tone-converter/internal/handler" // HTTP handlers
	"github.com/iliyamo/tone-converter/internal/logging" // Logger setup
	"github.com/iliyamo/tone-converter/internal/router"  // Internal router setup
)

func main() {
	envErr := godotenv.Load() // optional; absence is normal outside local dev
	cfg := config.Load()      // Load environment config
	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		log.WithError(envErr).Warn("could not read .env file")
	}

	llm := groq.New(cfg.Groq) // built once, read-only for the process lifetime
	if !llm.Configured() {
		log.Warn("GROQ_API_KEY environment variable not set. Real API calls will fail.")
	}
	log.WithField("model", llm.Model()).Info("language-model client ready")

	e := echo.New()
	if err := router.Setup(e, cfg, log); err != nil {
		log.WithError(err).Fatal("invalid server configuration")
	}
	router.RegisterRoutes(e, handler.NewConvertHandler(llm, log))

	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout
	e.Server.IdleTimeout = cfg.IdleTimeout

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("listening on %s (env=%s)", cfg.Addr(), cfg.Env)
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
