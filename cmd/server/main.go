package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/hnparser/config"
	"github.com/spacesedan/hnparser/internal/api"
	"github.com/spacesedan/hnparser/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := config.GetServerConfig()
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: api.NewRouter(),
	}

	go func() {
		slog.Info("[Server] Listening", slog.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Server] Listen failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Handle graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	<-stopChan

	slog.Info("[Server] Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("[Server] Forced shutdown", slog.String("error", err.Error()))
	}
}
