package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lightbnb/lightbnb/internal/config"
	"github.com/lightbnb/lightbnb/internal/database"
	"github.com/lightbnb/lightbnb/internal/handler"
	"github.com/lightbnb/lightbnb/internal/logger"
	"github.com/lightbnb/lightbnb/internal/middleware"
	"github.com/lightbnb/lightbnb/internal/repository"
	"github.com/lightbnb/lightbnb/internal/router"
	"github.com/lightbnb/lightbnb/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// no logger yet; stderr is all we have
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.Primary.Env)

	ctx := context.Background()
	if err := database.Migrate(ctx, log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv.DB.Pool)
	middlewares := middleware.NewMiddlewares(srv)
	handlers := handler.NewHandlers(srv, repos)

	srv.SetupHTTPServer(router.New(handlers, middlewares))

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
