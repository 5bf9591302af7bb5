// Package server wires and runs the development record backend: an
// in-memory store behind the HTTP API, with logging, metrics and tracing.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrijs2005/recordsync/internal/logging"
	"github.com/dmitrijs2005/recordsync/internal/server/config"
	"github.com/dmitrijs2005/recordsync/internal/server/httpapi"
	"github.com/dmitrijs2005/recordsync/internal/server/records"
	"github.com/dmitrijs2005/recordsync/internal/tracing"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	recordService  *records.Service
	registry       *prometheus.Registry
	tracingOptions tracing.Options
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stdout, c.LogLevel, "json")
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	rs := records.NewService(records.NewInMemoryRepository())
	if err := rs.Seed(context.Background(), c.Seed); err != nil {
		return nil, fmt.Errorf("seed error: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &App{
		config:        c,
		logger:        logger,
		recordService: rs,
		registry:      reg,
		tracingOptions: tracing.Options{
			ServiceName: "recordsync-server",
			Exporter:    c.TracingExporter,
			SampleRatio: c.TracingSampleRatio,
		},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s, err := httpapi.NewServer(app.config.ListenAddr, app.logger, app.recordService, app.registry, app.registry)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	shutdownTracing, err := tracing.Init(ctx, app.tracingOptions, app.logger)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		return
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			app.logger.Warn(ctx, "tracing shutdown", "error", err)
		}
	}()

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
