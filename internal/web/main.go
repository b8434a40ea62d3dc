// Package web is the http surface of ticketgen.
package web

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/ticketgen/ticketgen/internal/config"
	fiberlogger "github.com/ticketgen/ticketgen/internal/logger/adapter/fiber"
	"github.com/ticketgen/ticketgen/internal/service"
	"github.com/ticketgen/ticketgen/internal/web/handler"
	"github.com/ticketgen/ticketgen/internal/web/handler/charset"
	"github.com/ticketgen/ticketgen/internal/web/handler/ticket"
)

const (
	// CheckAlivePath answers 200 while the service accepts traffic.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"

	// defaultReadBufferSize is used when the config leaves it at 0.
	defaultReadBufferSize = 8192

	shutdownTimeout = 10 * time.Second
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	listenFailed atomic.Bool
}

// Start listens on addr and blocks until the server was shut down.
func (s *Service) Start(addr string) error {
	return s.listen(addr, fiber.ListenConfig{DisableStartupMessage: !s.cfg.DevMode})
}

// Addr returns host:port from the webserver config.
func (s *Service) Addr() string {
	return ":" + strconv.Itoa(s.cfg.Webserver.Port)
}

func (s *Service) listen(addr string, lc fiber.ListenConfig) error {
	log.Info().Str("addr", addr).Msg("starting http server")

	if err := s.App.Listen(addr, lc); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.listenFailed.Store(true)

		return errors.Wrap(err, "fiber listen error")
	}

	return nil
}

// WaitShutdown blocks until ctx is done and shuts the server down gracefully.
// It returns at once if the listener failed, there is nothing to drain then.
func (s *Service) WaitShutdown(ctx context.Context) error {
	<-ctx.Done()

	if s.listenFailed.Load() {
		log.Warn().Msgf("http server not listening, skipping graceful shutdown (%v)", context.Cause(ctx))

		return nil
	}

	log.Info().Msgf("shutdown request (%v)", context.Cause(ctx))

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return errors.Wrap(err, "http server shutdown")
	}

	log.Info().Msg("http server was stopped ... good bye...")

	return nil
}

// New creates the web service. gatherer feeds /metrics, nil means the default registry.
func New(cfg *config.Config, tickets *service.TicketService, gatherer prometheus.Gatherer) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if tickets == nil {
		panic("ticket service cannot be nil")
	}

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	readBufferSize := cfg.Webserver.ReadBufferSize
	if readBufferSize == 0 {
		readBufferSize = defaultReadBufferSize
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize:  readBufferSize,
			AppName:         cfg.Title,
			CaseSensitive:   true,
			Immutable:       true,
			ErrorHandler:    handler.ErrorHandler,
			StructValidator: handler.NewValidator(),
		},
	)

	s := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.DevMode,
	}
	s.alive.Store(true)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	app.Get(CheckAlivePath, healthcheck.New(healthcheck.Config{
		Probe: func(fiber.Ctx) bool { return s.alive.Load() },
	}))
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	for _, h := range []handler.Service{&ticket.Service{}, &charset.Service{}} {
		if err := h.Init(app, cfg, tickets); err != nil {
			log.Fatal().Err(err).Msg("handler init failed")
		}
	}

	return s
}
