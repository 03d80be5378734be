// Package restserver exposes the Föhn analysis engine over HTTP: analysis
// runs, stored results, report and CSV downloads, and scenario presets.
package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/madeira-wx/foehnwx/internal/database"
	"github.com/madeira-wx/foehnwx/internal/log"
	"github.com/madeira-wx/foehnwx/pkg/config"
	"github.com/madeira-wx/foehnwx/pkg/foehn"
)

// Controller represents the REST server controller
type Controller struct {
	ctx          context.Context
	wg           *sync.WaitGroup
	serverConfig config.ServerData
	Server       http.Server
	Store        database.Store
	Params       foehn.Params
	Presets      []config.PresetData
	logger       *zap.SugaredLogger
	handlers     *Handlers
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, configProvider config.ConfigProvider, store database.Store, logger *zap.SugaredLogger) (*Controller, error) {
	serverConfig, err := configProvider.GetServerConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading server configuration: %w", err)
	}

	engine, err := configProvider.GetEngine()
	if err != nil {
		return nil, fmt.Errorf("error loading engine configuration: %w", err)
	}

	presets, err := configProvider.GetPresets()
	if err != nil {
		return nil, fmt.Errorf("error loading presets: %w", err)
	}

	ctrl := &Controller{
		ctx:          ctx,
		wg:           wg,
		serverConfig: *serverConfig,
		Store:        store,
		Params:       engineParams(engine),
		Presets:      presets,
		logger:       logger,
	}

	ctrl.handlers = NewHandlers(ctrl)
	ctrl.Server.Handler = ctrl.router()

	return ctrl, nil
}

// engineParams maps the configuration section onto engine parameters;
// unset fields keep the engine defaults.
func engineParams(cfg *config.EngineData) foehn.Params {
	params := foehn.DefaultParams()
	if cfg == nil {
		return params
	}
	if cfg.MoistureLossFraction > 0 {
		params.MoistureLossFraction = cfg.MoistureLossFraction
	}
	if cfg.ProcessSteps > 0 {
		params.ProcessSteps = cfg.ProcessSteps
	}
	if cfg.MaxIterations > 0 {
		params.MaxIterations = cfg.MaxIterations
	}
	if cfg.PressureTolerance > 0 {
		params.PressureTolerance = cfg.PressureTolerance
	}
	return params
}

func (c *Controller) router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/analyze", c.handlers.Analyze).Methods(http.MethodPost)
	router.HandleFunc("/api/analyses", c.handlers.ListAnalyses).Methods(http.MethodGet)
	router.HandleFunc("/api/analyses/{id}", c.handlers.GetAnalysis).Methods(http.MethodGet)
	router.HandleFunc("/api/analyses/{id}/report.txt", c.handlers.GetReport).Methods(http.MethodGet)
	router.HandleFunc("/api/analyses/{id}/data.csv", c.handlers.GetCSV).Methods(http.MethodGet)
	router.HandleFunc("/api/presets", c.handlers.GetPresets).Methods(http.MethodGet)
	router.HandleFunc("/health", c.handlers.Health).Methods(http.MethodGet)

	return router
}

// StartServer launches the REST server and blocks until context
// cancellation shuts it down.
func (c *Controller) StartServer() error {
	listenAddr := fmt.Sprintf("%s:%d", c.serverConfig.ListenAddr, c.serverConfig.Port)
	c.Server.Addr = listenAddr

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		<-c.ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Server.Shutdown(shutdownCtx); err != nil {
			log.Errorf("error shutting down REST server: %v", err)
		}
	}()

	var err error
	if c.serverConfig.Cert != "" && c.serverConfig.Key != "" {
		log.Infof("REST server listening on https://%s", listenAddr)
		err = c.Server.ListenAndServeTLS(c.serverConfig.Cert, c.serverConfig.Key)
	} else {
		log.Infof("REST server listening on http://%s", listenAddr)
		err = c.Server.ListenAndServe()
	}

	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
