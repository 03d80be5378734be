// Package app wires the configured storage backend and the REST controller
// together and manages their lifecycle.
package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/madeira-wx/foehnwx/internal/controllers/restserver"
	"github.com/madeira-wx/foehnwx/internal/database"
	"github.com/madeira-wx/foehnwx/internal/log"
	"github.com/madeira-wx/foehnwx/pkg/config"
)

// App represents the main application
type App struct {
	configProvider config.ConfigProvider
	logger         *zap.SugaredLogger
}

// New creates a new application instance
func New(configProvider config.ConfigProvider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
	}
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	storageConfig, err := a.configProvider.GetStorageConfig()
	if err != nil {
		return err
	}

	store, err := database.NewStore(storageConfig)
	if err != nil {
		return err
	}
	if store == nil {
		log.Info("no storage backend configured, analyses will not be retained")
	} else {
		defer store.Close()
	}

	controller, err := restserver.NewController(ctx, &wg, a.configProvider, store, a.logger)
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- controller.StartServer()
	}()

	log.Info("application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	case err := <-serverErr:
		if err != nil {
			return err
		}
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	// Wait for all workers to terminate
	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
