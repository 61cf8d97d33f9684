package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/smartcontractkit/ibt-bridge/types"
)

const (
	namespace = "ibt_bridge"

	statusSuccess = "success"
	statusError   = "error"
)

// BridgeMetrics records transfer legs and outcomes as prometheus series.
type BridgeMetrics struct {
	legsTotal        *prometheus.CounterVec
	legDuration      *prometheus.HistogramVec
	outcomesTotal    *prometheus.CounterVec
	transferDuration *prometheus.HistogramVec
}

// NewBridgeMetrics creates the collectors and registers them on reg. Collectors already
// registered on reg are reused.
func NewBridgeMetrics(reg prometheus.Registerer) (*BridgeMetrics, error) {
	m := &BridgeMetrics{
		legsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "leg",
				Name:      "submissions_total",
				Help:      "Total number of submitted legs by direction, chain, leg and status",
			},
			[]string{"direction", "chain", "leg", "status"},
		),
		legDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "leg",
				Name:      "duration_seconds",
				Help:      "Time from submission to confirmation of a leg",
				Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300},
			},
			[]string{"direction", "chain", "leg", "status"},
		),
		outcomesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "transfer",
				Name:      "outcomes_total",
				Help:      "Total number of transfers by direction and outcome",
			},
			[]string{"direction", "outcome"},
		),
		transferDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "transfer",
				Name:      "duration_seconds",
				Help:      "Time from the start of a transfer to its terminal outcome",
				Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600},
			},
			[]string{"direction", "outcome"},
		),
	}

	var err error
	if m.legsTotal, err = register(reg, m.legsTotal); err != nil {
		return nil, err
	}
	if m.legDuration, err = register(reg, m.legDuration); err != nil {
		return nil, err
	}
	if m.outcomesTotal, err = register(reg, m.outcomesTotal); err != nil {
		return nil, err
	}
	if m.transferDuration, err = register(reg, m.transferDuration); err != nil {
		return nil, err
	}

	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}

		return c, err
	}

	return c, nil
}

func (m *BridgeMetrics) RecordLeg(direction types.Direction, chain, leg string, success bool, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}

	m.legsTotal.WithLabelValues(direction.String(), chain, leg, status).Inc()
	m.legDuration.WithLabelValues(direction.String(), chain, leg, status).Observe(duration.Seconds())
}

func (m *BridgeMetrics) RecordOutcome(direction types.Direction, kind types.OutcomeKind, duration time.Duration) {
	m.outcomesTotal.WithLabelValues(direction.String(), kind.String()).Inc()
	m.transferDuration.WithLabelValues(direction.String(), kind.String()).Observe(duration.Seconds())
}
