package daemon

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketgen/ticketgen/internal/config"
	"github.com/ticketgen/ticketgen/internal/web"
)

func freePort(t *testing.T) int {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	port := ln.Addr().(*net.TCPAddr).Port //nolint:forcetypeassert
	require.NoError(t, ln.Close())

	return port
}

func TestDaemonLifecycle(t *testing.T) {
	cfg := config.Default()
	cfg.DevMode = true
	cfg.Webserver.Port = freePort(t)
	cfg.Log.Console.Enabled = false

	d, err := New(&cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- d.Start(ctx) }()

	url := "http://127.0.0.1:" + strconv.Itoa(cfg.Webserver.Port) + web.CheckAlivePath

	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:noctx
		if err != nil {
			return false
		}

		resp.Body.Close()

		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("daemon did not stop")
	}
}

func TestDaemonPortInUse(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)

	defer busy.Close()

	cfg := config.Default()
	cfg.Webserver.Port = busy.Addr().(*net.TCPAddr).Port //nolint:forcetypeassert
	cfg.Webserver.ShutDownTime = 30
	cfg.Log.Console.Enabled = false

	d, err := New(&cfg)
	require.NoError(t, err)

	done := make(chan error, 1)

	go func() { done <- d.Start(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("daemon kept draining after the listener failed")
	}
}

func TestNewInvalidStrategy(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Console.Enabled = false
	cfg.Generator.Strategy = "qr"

	_, err := New(&cfg)
	require.Error(t, err)
}
