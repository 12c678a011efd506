// Package handler exposes the HTTP handlers of the demo API. None of them
// report cache problems to the client: a missing or failing cache degrades
// the counter response instead.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/aspire-counter-api/internal/counter"
	"github.com/iliyamo/aspire-counter-api/internal/queue"
	"github.com/iliyamo/aspire-counter-api/internal/service"
)

const (
	// SourceRedis marks a counter value read back from the cache.
	SourceRedis = "redis"
	// SourceNoRedis marks the degraded response used without a working cache.
	SourceNoRedis = "no-redis"
)

// publishTimeout bounds the counter event publish, dial included.
var publishTimeout = 2 * time.Second

// Greeting is the fixed body of GET /.
type Greeting struct {
	Message    string `json:"message"`
	ManagedBy  string `json:"managed_by"`
	Conference string `json:"conference"`
}

// DefaultGreeting is returned on every call to GET /.
var DefaultGreeting = Greeting{
	Message:    "Hello from Go Echo API!",
	ManagedBy:  "Aspire",
	Conference: "Swetugg Stockholm 2026",
}

// CounterResponse is the body of GET /counter.
type CounterResponse struct {
	Counter int64  `json:"counter"`
	Source  string `json:"source"`
}

// InfoResponse is the body of GET /info.
type InfoResponse struct {
	Runtime   string `json:"runtime"`
	Framework string `json:"framework"`
	Vendor    string `json:"vendor"`
}

// APIHandler serves the greeting, counter and info routes.
type APIHandler struct {
	Store      counter.Store
	Publisher  service.CounterPublisher
	CounterKey string
	Logger     *slog.Logger
}

// NewAPIHandler constructs an APIHandler. A nil publisher disables counter
// events and a nil logger falls back to slog.Default().
func NewAPIHandler(store counter.Store, pub service.CounterPublisher, key string, logger *slog.Logger) *APIHandler {
	if store == nil {
		panic("nil counter store passed to NewAPIHandler")
	}
	if pub == nil {
		pub = service.NoopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &APIHandler{Store: store, Publisher: pub, CounterKey: key, Logger: logger}
}

// Home returns the static greeting.
func (h *APIHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, DefaultGreeting)
}

// Counter increments the cached counter. Without a cache, or when the
// increment fails, it answers {"counter":0,"source":"no-redis"} with 200.
func (h *APIHandler) Counter(c echo.Context) error {
	ctx := c.Request().Context()
	n, err := h.Store.Increment(ctx)
	if err != nil {
		if h.Store.Enabled() {
			h.Logger.Debug("counter increment failed", "error", err)
		}
		return c.JSON(http.StatusOK, CounterResponse{Counter: 0, Source: SourceNoRedis})
	}

	h.publish(ctx, n)
	return c.JSON(http.StatusOK, CounterResponse{Counter: n, Source: SourceRedis})
}

func (h *APIHandler) publish(ctx context.Context, n int64) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	ev := queue.CounterIncrementedEvent{
		Key:           h.CounterKey,
		Value:         n,
		IncrementedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.Publisher.PublishCounterIncremented(ctx, ev); err != nil {
		h.Logger.Warn("publish counter event failed", "error", err)
	}
}

// Info describes the runtime serving the request.
func (h *APIHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, InfoResponse{
		Runtime:   "Go " + runtime.Version(),
		Framework: "Echo",
		Vendor:    runtime.GOOS + "/" + runtime.GOARCH,
	})
}
