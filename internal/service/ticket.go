// Package service selects a ticket strategy per request, applies the configured defaults
// and generates batches of tickets.
package service

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/ticketgen/ticketgen/internal/config"
	"github.com/ticketgen/ticketgen/internal/ticket"
)

var (
	// ErrInvalidCount is returned when count is negative or above Generator.MaxCount.
	ErrInvalidCount = errors.New("invalid count")

	// ErrLengthTooLarge is returned for an explicit length above Generator.MaxExplicitLength.
	ErrLengthTooLarge = errors.New("length too large")

	// ErrInvalidLimits is returned by NewTicketService when MaxExplicitLength is below MaxLength.
	ErrInvalidLimits = errors.New("invalid generator limits")
)

// Request is one ticket generation request. Zero values select the configured defaults.
type Request struct {
	Strategy string
	Charset  string
	Length   *int // nil picks a length from the configured range
	Count    int  // 0 means 1
}

// Batch is the result of one Request.
type Batch struct {
	ID       uuid.UUID `json:"id"`
	Strategy string    `json:"strategy"`
	Tickets  []string  `json:"tickets"`
}

// TicketService generates tickets with the configured defaults.
type TicketService struct {
	cfg        config.Generator
	generators map[string]ticket.Generator
	metrics    *Metrics
}

// NewTicketService creates a TicketService. src must be safe for concurrent use when the
// service is shared, ticket.GlobalSource is. A nil metrics registers on a private registry.
func NewTicketService(cfg config.Generator, src ticket.Source, metrics *Metrics) (*TicketService, error) {
	if metrics == nil {
		metrics = NewMetrics(prometheus.NewRegistry())
	}

	if cfg.MaxExplicitLength < cfg.MaxLength {
		return nil, errors.Wrapf(ErrInvalidLimits, "max explicit length %d is below max length %d",
			cfg.MaxExplicitLength, cfg.MaxLength)
	}

	s := &TicketService{
		cfg:        cfg,
		generators: make(map[string]ticket.Generator),
		metrics:    metrics,
	}

	for _, name := range ticket.Strategies() {
		g, err := ticket.NewGenerator(name, src)
		if err != nil {
			return nil, err
		}

		s.generators[name] = g
	}

	if _, ok := s.generators[cfg.Strategy]; !ok {
		return nil, errors.Wrapf(ticket.ErrUnknownStrategy, "default strategy %q", cfg.Strategy)
	}

	return s, nil
}

// Generate produces req.Count tickets. The first failing ticket aborts the batch.
func (s *TicketService) Generate(req Request) (Batch, error) {
	strategy := valueOrDefault(req.Strategy, s.cfg.Strategy)

	gen, ok := s.generators[strategy]
	if !ok {
		return Batch{}, errors.Wrapf(ticket.ErrUnknownStrategy, "%q", strategy)
	}

	count := req.Count
	if count == 0 {
		count = 1
	}

	if count < 0 || count > s.cfg.MaxCount {
		return Batch{}, errors.Wrapf(ErrInvalidCount, "%d not in [1, %d]", count, s.cfg.MaxCount)
	}

	if req.Length != nil && *req.Length > s.cfg.MaxExplicitLength {
		return Batch{}, errors.Wrapf(ErrLengthTooLarge, "%d above %d", *req.Length, s.cfg.MaxExplicitLength)
	}

	batch := Batch{
		ID:       uuid.New(),
		Strategy: strategy,
		Tickets:  make([]string, 0, count),
	}

	opts := s.options(strategy, req)

	for range count {
		t, err := gen.Generate(opts...)
		if err != nil {
			s.metrics.failed.WithLabelValues(strategy).Inc()

			log.Error().Err(err).
				Str("batch", batch.ID.String()).
				Str("strategy", strategy).
				Msg("ticket generation failed")

			return Batch{}, err
		}

		batch.Tickets = append(batch.Tickets, t)
	}

	s.metrics.generated.WithLabelValues(strategy).Add(float64(count))

	log.Debug().
		Str("batch", batch.ID.String()).
		Str("strategy", strategy).
		Int("count", count).
		Msg("tickets generated")

	return batch, nil
}

// options turns req into ticket options.
func (s *TicketService) options(strategy string, req Request) []ticket.Option {
	opts := []ticket.Option{ticket.WithLengthRange(s.cfg.MinLength, s.cfg.MaxLength)}

	if req.Length != nil {
		opts = append(opts, ticket.WithLength(*req.Length))
	}

	charset := valueOrDefault(req.Charset, s.cfg.Charset)
	if charset == "" {
		return opts
	}

	// sampling takes literal charsets only, table names are resolved here
	if strategy == ticket.StrategySampling {
		if resolved, ok := ticket.Lookup(charset); ok {
			charset = resolved
		}
	}

	return append(opts, ticket.WithCharset(charset))
}

// valueOrDefault returns value, or fallback if value is empty.
func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
