package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/recordsync/internal/common"
	"github.com/dmitrijs2005/recordsync/internal/logging"
)

// requestIDLocal is the fiber locals key holding the request id.
const requestIDLocal = "request_id"

// RequestID reuses the caller's X-Request-ID or generates one, stores it in
// locals and echoes it on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(common.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(requestIDLocal, id)
		c.Set(common.RequestIDHeader, id)

		return c.Next()
	}
}

func requestIDFromCtx(c *fiber.Ctx) string {
	if s, ok := c.Locals(requestIDLocal).(string); ok {
		return s
	}
	return ""
}

// statusOf returns the status the error handler will send for err.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// RequestLogger logs one line per request after the handler ran.
func RequestLogger(logger logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		logger.Info(c.UserContext(), "request",
			"request_id", requestIDFromCtx(c),
			"method", c.Method(),
			"path", c.Path(),
			"status", statusOf(c, err),
			"latency_ms", float64(time.Since(start).Microseconds())/1000,
		)
		return err
	}
}

// RequestCounter counts requests by method, route pattern and status.
type RequestCounter struct {
	requests *prometheus.CounterVec
}

func NewRequestCounter(reg prometheus.Registerer) (*RequestCounter, error) {
	m := &RequestCounter{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "recordsync",
				Subsystem: "server",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
	}

	if err := reg.Register(m.requests); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *RequestCounter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == metricsPath {
			return c.Next()
		}

		err := c.Next()

		// Method and Path alias the request buffer; labels outlive it.
		path := c.Route().Path
		if path == "" || path == "/" {
			path = utils.CopyString(c.Path())
		}

		m.requests.WithLabelValues(utils.CopyString(c.Method()), path, strconv.Itoa(statusOf(c, err))).Inc()
		return err
	}
}
