package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/recordsync/internal/client/client"
	"github.com/dmitrijs2005/recordsync/internal/client/config"
	"github.com/dmitrijs2005/recordsync/internal/client/controller"
	"github.com/dmitrijs2005/recordsync/internal/client/loop"
	"github.com/dmitrijs2005/recordsync/internal/client/metrics"
	"github.com/dmitrijs2005/recordsync/internal/client/ui"
	"github.com/dmitrijs2005/recordsync/internal/logging"
	"github.com/dmitrijs2005/recordsync/internal/tracing"
)

// drainTimeout bounds how long requests still in flight after the user
// leaves may take to finish.
const drainTimeout = 5 * time.Second

type App struct {
	config     *config.Config
	logger     logging.Logger
	registry   *prometheus.Registry
	loop       *loop.Loop
	view       *ui.TerminalContainer
	input      *ui.Field
	controller *controller.Controller
	in         io.Reader
}

// NewApp wires the client against the process's stdio. Logs go to stderr so
// the record display on stdout stays clean.
func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdin, os.Stdout, os.Stderr)
}

func newApp(c *config.Config, in io.Reader, out, logOut io.Writer) (*App, error) {
	logger, err := logging.New(logOut, c.LogLevel, "text")
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	api, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		return nil, fmt.Errorf("metrics init error: %w", err)
	}

	lp := loop.New()
	view := ui.NewTerminalContainer(out)
	input := ui.NewField("")

	return &App{
		config:     c,
		logger:     logger,
		registry:   reg,
		loop:       lp,
		view:       view,
		input:      input,
		controller: controller.New(api, view, input, lp, logger, controller.WithMetrics(m)),
		in:         in,
	}, nil
}

// List reloads the display from the server.
func (a *App) List(ctx context.Context) {
	a.controller.Load(ctx)
}

// Add puts text into the input field and submits it.
func (a *App) Add(ctx context.Context, text string) {
	a.input.SetValue(text)
	a.controller.Submit(ctx)
}

// Show prints the current display again.
func (a *App) Show() {
	if len(a.view.Lines()) == 0 {
		printlnFn("Nothing loaded yet.")
		return
	}
	a.view.Reprint()
}

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run loads the record list, then serves REPL commands until the user
// leaves, stdin ends or a signal arrives. After a normal exit, requests
// still in flight get drainTimeout to complete.
func (a *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	a.initSignalHandler(cancelFunc)

	shutdownTracing, err := tracing.Init(ctx, tracing.Options{
		ServiceName: "recordsync-client",
		Exporter:    a.config.TracingExporter,
		SampleRatio: a.config.TracingSampleRatio,
	}, a.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			a.logger.Warn(ctx, "tracing shutdown", "error", err)
		}
	}()

	if a.config.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, a.config.MetricsAddr, a.registry, a.logger); err != nil {
				a.logger.Error(ctx, "metrics endpoint failed", "error", err)
			}
		}()
	}

	printlnFn("Welcome to recordsync (type 'help' for commands)")

	loopCtx, stop := context.WithCancel(ctx)
	defer stop()

	a.loop.Post(func() {
		a.controller.Load(ctx)
		printFn(prompt)
	})

	go runREPL(ctx, a.loop, a, bufio.NewScanner(a.in), stop)

	_ = a.loop.Run(loopCtx)

	if ctx.Err() != nil {
		return nil
	}

	drainCtx, cancel := context.WithTimeout(ctx, drainTimeout)
	defer cancel()
	if err := a.loop.Drain(drainCtx); err != nil {
		a.logger.Warn(ctx, "pending requests abandoned", "outstanding", a.loop.Outstanding(), "error", err)
	}
	return nil
}
