package main

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/imenapop/paperpop/adapters/chromium"
	"github.com/imenapop/paperpop/adapters/httpapi"
	"github.com/imenapop/paperpop/internal/config"
	"github.com/imenapop/paperpop/internal/logging"
	"github.com/imenapop/paperpop/invite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger := logging.New("info", "console")
		logger.Fatal("could not load configuration", zap.Error(err))
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	defer logger.Sync()

	assets := invite.DefaultAssetResolver()
	if cfg.Assets.Dir != "" {
		assets = invite.DirAssetResolver(cfg.Assets.Dir)
		logger.Info("using asset directory override", zap.String("dir", cfg.Assets.Dir))
	}

	engine := &chromium.Engine{
		BrowserPath: cfg.Chromium.Path,
		Headless:    cfg.Chromium.Headless,
		Timeout:     cfg.Chromium.RenderTimeout(),
		Args:        cfg.Chromium.Args,
	}

	service := invite.NewService(invite.DefaultRegistry(), engine, assets, logging.NewAdapter(logger))
	handler := httpapi.NewHandler(service, logging.NewAdapter(logger))
	app := httpapi.NewApp(handler, httpapi.Options{AllowedOrigins: cfg.Server.AllowedOrigins})

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Server.Addr()))
		if err := app.Listen(cfg.Server.Addr()); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := engine.Close(); err != nil {
		logger.Error("browser shutdown failed", zap.Error(err))
	}
}
