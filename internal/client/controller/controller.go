package controller

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrijs2005/recordsync/internal/client/client"
	"github.com/dmitrijs2005/recordsync/internal/client/loop"
	"github.com/dmitrijs2005/recordsync/internal/client/metrics"
	"github.com/dmitrijs2005/recordsync/internal/client/models"
	"github.com/dmitrijs2005/recordsync/internal/client/ui"
	"github.com/dmitrijs2005/recordsync/internal/common"
	"github.com/dmitrijs2005/recordsync/internal/logging"
)

// Placeholder is the only line shown for an empty record list.
const Placeholder = "No data yet."

const tracerName = "github.com/dmitrijs2005/recordsync/internal/client/controller"

// FormatRecord renders one record as a display line.
func FormatRecord(r models.Record) string {
	return fmt.Sprintf("ID: %s, Data: %s", r.ID, r.Content)
}

// Controller keeps the record view in sync with the backend. All methods run
// on the loop goroutine.
type Controller struct {
	api     client.Client
	view    ui.Container
	input   ui.TextField
	loop    *loop.Loop
	logger  logging.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures a Controller.
type Option func(*Controller)

// WithMetrics counts load and submit outcomes in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// WithTracer replaces the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) { c.tracer = t }
}

// New returns a Controller that renders into view and reads from input.
func New(api client.Client, view ui.Container, input ui.TextField, lp *loop.Loop, logger logging.Logger, opts ...Option) *Controller {
	c := &Controller{
		api:    api,
		view:   view,
		input:  input,
		loop:   lp,
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load fetches all records and renders them once the response arrives.
// It must be called on the loop goroutine and returns immediately.
func (c *Controller) Load(ctx context.Context) {
	rid := client.NewRequestID()
	ctx = client.WithRequestID(ctx, rid)
	ctx, span := c.tracer.Start(ctx, "controller.load", trace.WithAttributes(attribute.String("request_id", rid)))

	loop.Await(c.loop, ctx, c.api.ListRecords, func(records []models.Record, err error) {
		defer span.End()

		if err != nil {
			err = fmt.Errorf("%w: %w", common.ErrReadFailure, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "read failed")
			c.logger.Error(ctx, "load failed", "op", metrics.OpLoad, "request_id", rid, "error", err)
			c.metrics.Observe(metrics.OpLoad, metrics.ResultFailure)
			return
		}

		span.SetAttributes(attribute.Int("records", len(records)))
		c.Render(records)
		c.logger.Debug(ctx, "records loaded", "request_id", rid, "count", len(records))
		c.metrics.Observe(metrics.OpLoad, metrics.ResultSuccess)
	})
}

// Render replaces the container contents with one line per record, or with
// Placeholder when records is empty.
func (c *Controller) Render(records []models.Record) {
	c.view.Clear()

	if len(records) == 0 {
		c.view.Append(Placeholder)
		return
	}
	for _, r := range records {
		c.view.Append(FormatRecord(r))
	}
}

// Submit sends the trimmed input as a new record. Blank input is ignored.
// On success the field is cleared and the list reloaded. A second Submit
// while one is in flight is not prevented.
func (c *Controller) Submit(ctx context.Context) {
	content := strings.TrimSpace(c.input.Value())
	if content == "" {
		c.metrics.Observe(metrics.OpSubmit, metrics.ResultSkipped)
		return
	}

	rid := client.NewRequestID()
	ctx = client.WithRequestID(ctx, rid)
	ctx, span := c.tracer.Start(ctx, "controller.submit", trace.WithAttributes(attribute.String("request_id", rid)))

	write := func(ctx context.Context) (*models.AddResponse, error) {
		return c.api.AddRecord(ctx, content)
	}

	loop.Await(c.loop, ctx, write, func(resp *models.AddResponse, err error) {
		defer span.End()

		if err != nil {
			err = fmt.Errorf("%w: %w", common.ErrWriteFailure, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "write failed")
			c.logger.Error(ctx, "submit failed", "op", metrics.OpSubmit, "request_id", rid, "error", err)
			c.metrics.Observe(metrics.OpSubmit, metrics.ResultFailure)
			return
		}

		var msg string
		if resp != nil {
			msg = resp.Message
		}
		c.logger.Info(ctx, "record submitted", "request_id", rid, "message", msg)
		c.metrics.Observe(metrics.OpSubmit, metrics.ResultSuccess)

		c.input.SetValue("")
		c.Load(ctx)
	})
}
