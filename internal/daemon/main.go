// Package daemon wires config, logging, the ticket service and the web service together.
package daemon

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ticketgen/ticketgen/internal/config"
	"github.com/ticketgen/ticketgen/internal/logger"
	"github.com/ticketgen/ticketgen/internal/service"
	"github.com/ticketgen/ticketgen/internal/ticket"
	"github.com/ticketgen/ticketgen/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
}

// Start runs the web service until ctx is done or SIGINT/SIGTERM arrives.
func (d *Daemon) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return d.webService.Start(d.webService.Addr())
	})
	g.Go(func() error {
		return d.webService.WaitShutdown(gctx)
	})

	return g.Wait()
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil, nil
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, err
	}

	// ticket counters live on their own registry, the default one carries the runtime
	// collectors and log_statements_total
	reg := prometheus.NewRegistry()

	tickets, err := service.NewTicketService(cfg.Generator, ticket.GlobalSource, service.NewMetrics(reg))
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("strategy", cfg.Generator.Strategy).
		Int("port", cfg.Webserver.Port).
		Bool("dev", cfg.DevMode).
		Msg("ticketgen daemon configured")

	return &Daemon{
		webService: web.New(cfg, tickets, prometheus.Gatherers{prometheus.DefaultGatherer, reg}),
	}, nil
}
