package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/aspire-counter-api/internal/counter"
	"github.com/iliyamo/aspire-counter-api/internal/handler"
)

func TestNewRegistersRoutes(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewAPIHandler(counter.NewRedisStore(rdb, "go-counter"), nil, "go-counter", logger)
	e := New(h, logger)

	tests := []struct {
		path string
		want string
	}{
		{"/", `{"message":"Hello from Go Echo API!","managed_by":"Aspire","conference":"Swetugg Stockholm 2026"}`},
		{"/health", `{"status":"healthy"}`},
		{"/counter", `{"counter":1,"source":"redis"}`},
		{"/counter", `{"counter":2,"source":"redis"}`},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		require.Equal(t, http.StatusOK, rec.Code, tt.path)
		assert.JSONEq(t, tt.want, rec.Body.String(), tt.path)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/info", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
