package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the prometheus counters of the ticket service.
type Metrics struct {
	generated *prometheus.CounterVec
	failed    *prometheus.CounterVec
}

// NewMetrics registers the ticket counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		generated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tickets_generated_total",
				Help: "Number of generated tickets, differentiated by strategy.",
			},
			[]string{"strategy"},
		),
		failed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ticket_generation_errors_total",
				Help: "Number of failed ticket generations, differentiated by strategy.",
			},
			[]string{"strategy"},
		),
	}
}
