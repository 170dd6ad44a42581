package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/gorm"

	"kalyx/internal/config"
	"kalyx/internal/db"
	"kalyx/internal/db/mock"
	applog "kalyx/internal/log"
	"kalyx/internal/metrics"
	"kalyx/internal/server"
	"kalyx/models"
)

// serverLifecycle is the slice of server.Server that run drives; tests
// substitute stubs for it.
type serverLifecycle interface {
	Start() error
	Stop() error
}

var (
	loadConfigFunc            = config.Load
	setLogLevelFunc           = applog.SetLevel
	newMockDatabaseFunc       = mock.New
	configureDatabase         = db.Configure
	publishCatalogMetricsFunc = publishCatalogMetrics

	newServerFunc = func(cfg server.Config) (serverLifecycle, error) {
		return server.New(cfg)
	}

	subscribeShutdownSig = func() (<-chan os.Signal, func()) {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		return sigCh, func() { signal.Stop(sigCh) }
	}
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	cfg, err := loadConfigFunc()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		return 1
	}

	if err := setLogLevelFunc(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "error", err, "level", cfg.Logging.Level)
		return 1
	}

	var database *gorm.DB
	if cfg.Database.UseMock {
		applog.Info(ctx, "using in-memory mock database")
		database, err = newMockDatabaseFunc(ctx)
	} else {
		database, err = configureDatabase(cfg.Database)
	}
	if err != nil {
		applog.Error(ctx, "failed to initialize database", "error", err)
		return 1
	}

	publishCatalogMetricsFunc(ctx, database)

	srv, err := newServerFunc(server.Config{
		Addr:     cfg.Server.Addr,
		Database: database,
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		return 1
	}

	errCh := make(chan error, 1)
	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr)
		errCh <- srv.Start()
	}()

	shutdownCh, unsubscribe := subscribeShutdownSig()
	defer unsubscribe()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server encountered an error", "error", err)
			return 1
		}
	case sig := <-shutdownCh:
		applog.Info(ctx, "shutdown signal received", "signal", sig.String())
		if err := srv.Stop(); err != nil {
			applog.Error(ctx, "graceful shutdown failed", "error", err)
			return 1
		}
	}

	applog.Info(ctx, "server stopped")
	return 0
}

// publishCatalogMetrics exposes current catalog sizes on the metrics
// registry so dashboards can correlate recommendation quality with
// catalog growth.
func publishCatalogMetrics(ctx context.Context, database *gorm.DB) {
	if database == nil {
		return
	}

	entities := []struct {
		name  string
		model any
	}{
		{name: "strains", model: &models.Strain{}},
		{name: "effects", model: &models.Effect{}},
		{name: "conditions", model: &models.Condition{}},
		{name: "pharmacies", model: &models.Pharmacy{}},
	}

	for _, entity := range entities {
		var count int64
		if err := database.WithContext(ctx).Model(entity.model).Count(&count).Error; err != nil {
			applog.Warn(ctx, "failed to count catalog rows", "entity", entity.name, "error", err)
			continue
		}
		metrics.SetCatalogRows(entity.name, count)
	}
}
