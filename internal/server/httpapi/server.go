// Package httpapi serves the record API over HTTP with fiber.
package httpapi

import (
	"context"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/recordsync/internal/common"
	"github.com/dmitrijs2005/recordsync/internal/logging"
	"github.com/dmitrijs2005/recordsync/internal/server/records"
)

const (
	metricsPath = "/metrics"
	healthPath  = "/healthz"
)

type Server struct {
	address string
	records *records.Service
	logger  logging.Logger
	app     *fiber.App
}

// NewServer builds the fiber app with its middleware and routes. Metrics are
// registered on reg and exposed from gatherer.
func NewServer(address string, l logging.Logger, rs *records.Service, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*Server, error) {
	s := &Server{
		address: address,
		records: rs,
		logger:  l.With("module", "http_server"),
	}

	counter, err := NewRequestCounter(reg)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(),
	})

	app.Use(otelfiber.Middleware(
		otelfiber.WithServerName("recordsync-server"),
		otelfiber.WithNext(func(c *fiber.Ctx) bool { return c.Path() == metricsPath || c.Path() == healthPath }),
	))
	app.Use(RequestID())
	app.Use(RequestLogger(s.logger))
	app.Use(counter.Handler())

	app.Get(healthPath, func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get(metricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	app.Get(common.RecordsPath, s.listRecords)
	app.Post(common.AddRecordPath, s.addRecord)

	s.app = app
	return s, nil
}

// App exposes the fiber app for in-process tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens until ctx is done, then shuts the app down.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = s.app.Shutdown()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	return s.app.Listen(s.address)
}
