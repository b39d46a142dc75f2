package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/marcosmapl/studium-backend-sub000/cfgloader"
	"github.com/marcosmapl/studium-backend-sub000/internal/app"
	"github.com/marcosmapl/studium-backend-sub000/internal/config"
	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/marcosmapl/studium-backend-sub000/mask"
)

func main() {
	cfg := cfgloader.MustLoad[config.Config]()

	log, err := logger.New(cfg.Logger)
	if err != nil {
		slog.Error("failed to build logger", "error", err)
		os.Exit(1)
	}

	log.With("config", mask.Struct(cfg)).Info("configuration loaded")

	a, err := app.New(cfg, log)
	if err != nil {
		log.Fatalf("failed to start application: %v", err)
	}

	go func() {
		if err := a.Run(); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	a.Shutdown()
}
