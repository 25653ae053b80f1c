package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"

	"github.com/allandeluna/brainstash/internal/config"
	"github.com/allandeluna/brainstash/internal/middleware"
	"github.com/allandeluna/brainstash/internal/pkg/logging"
	"github.com/allandeluna/brainstash/internal/platform/db"
)

const cfgFile = "config.json"

// Run wires the whole application together and serves until ctx is
// cancelled.
func Run(ctx context.Context) error {
	slog.Info("Initializing...")

	if os.Getenv("ENV") != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	envCfg, err := config.LoadEnv()
	if err != nil {
		return err
	}

	logging.Setup(envCfg.AppEnv, envCfg.LogLevel, os.Stdout)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	dbConn, err := db.NewConnection(ctx, cfg.DB, &envCfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	provider, err := newProvider(cfg, envCfg)
	if err != nil {
		return err
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CheckContentType,
	}

	application := New(cfg, envCfg, dbConn, provider, middlewares)
	if err := application.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return application.Shutdown()
}
