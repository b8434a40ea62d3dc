package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketgen/ticketgen/internal/config"
	"github.com/ticketgen/ticketgen/internal/service"
	gen "github.com/ticketgen/ticketgen/internal/ticket"
	"github.com/ticketgen/ticketgen/internal/web/handler/ticket"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	cfg := &config.Config{
		Title: "ticketgen-test",
		Webserver: config.Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
		Generator: config.Generator{
			Strategy:          gen.StrategyLibrary,
			Charset:           gen.NameAlphanumeric,
			MinLength:         gen.DefaultMinLength,
			MaxLength:         gen.DefaultMaxLength,
			MaxExplicitLength: 64,
			MaxCount:          10,
		},
	}

	reg := prometheus.NewRegistry()

	tickets, err := service.NewTicketService(cfg.Generator, gen.GlobalSource, service.NewMetrics(reg))
	require.NoError(t, err)

	return New(cfg, tickets, reg)
}

func TestCheckAlive(t *testing.T) {
	s := newTestService(t)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, CheckAlivePath, nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	s.alive.Store(false)

	resp, err = s.App.Test(httptest.NewRequest(http.MethodGet, CheckAlivePath, nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestTicketsAndMetrics(t *testing.T) {
	s := newTestService(t)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, ticket.Path+"?strategy=secure&count=3", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	resp, err = s.App.Test(httptest.NewRequest(http.MethodGet, MetricsPath, nil))
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `tickets_generated_total{strategy="secure"} 3`)
}

func TestNotFoundIsJSON(t *testing.T) {
	s := newTestService(t)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
}

func TestWaitShutdownAfterListenError(t *testing.T) {
	s := newTestService(t)
	s.cfg.Webserver.ShutDownTime = 30

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer busy.Close()

	require.Error(t, s.listen(busy.Addr().String(), fiber.ListenConfig{DisableStartupMessage: true}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()

	require.NoError(t, s.WaitShutdown(ctx))
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, s.alive.Load())
}

func TestStartAndWaitShutdown(t *testing.T) {
	s := newTestService(t)

	listening := make(chan net.Addr, 1)
	done := make(chan error, 1)

	go func() {
		done <- s.listen("127.0.0.1:0", fiber.ListenConfig{
			DisableStartupMessage: true,
			ListenerAddrFunc:      func(addr net.Addr) { listening <- addr },
		})
	}()

	addr := <-listening

	resp, err := http.Get("http://" + addr.String() + CheckAlivePath) //nolint:noctx
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, s.WaitShutdown(ctx))
	require.NoError(t, <-done)
	assert.False(t, s.alive.Load())
}
