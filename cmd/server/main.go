package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gridiron/internal/app"
	"github.com/KirkDiggler/gridiron/internal/common/logger"
	"github.com/KirkDiggler/gridiron/internal/config"
	"github.com/KirkDiggler/gridiron/internal/handlers/rest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(&logger.Config{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	if !cfg.LogDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	a, err := app.New(ctx, cfg, zl)
	cancel()
	if err != nil {
		zl.Fatal("failed to start", zap.Error(err))
	}
	defer a.Close()

	handler, err := rest.New(&rest.Config{
		CoachService:   a.CoachService,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         zl.Named("http"),
	})
	if err != nil {
		zl.Fatal("failed to create REST handler", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("error shutting down server", zap.Error(err))
	}

	zl.Info("server has been shut down")
}
