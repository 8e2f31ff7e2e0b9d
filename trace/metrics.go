// SPDX-License-Identifier: MIT

package trace

import (
	"math/big"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lll/lll"
	"github.com/katalvlaran/lll/vector"
)

var _ lll.Observer = (*Metrics)(nil)

// Namespace prefixes every metric name.
const Namespace = "lll"

// Metrics is an lll.Observer backed by Prometheus collectors.
type Metrics struct {
	Coefficients   prometheus.Counter
	SizeReductions prometheus.Counter
	Conditions     *prometheus.CounterVec // label "result": pass|fail
	Swaps          prometheus.Counter
	Reductions     prometheus.Counter
	Iterations     prometheus.Histogram
}

// NewMetrics builds the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Coefficients: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "coefficients_total",
			Help:      "Projection coefficients computed during size-reduction",
		}),
		SizeReductions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "size_reductions_total",
			Help:      "Basis vectors replaced by size-reduction",
		}),
		Conditions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "lovasz_checks_total",
			Help:      "Lovász condition evaluations by outcome",
		}, []string{"result"}),
		Swaps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "swaps_total",
			Help:      "Adjacent basis vector swaps",
		}),
		Reductions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "reductions_total",
			Help:      "Reductions that converged",
		}),
		Iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "iterations",
			Help:      "Outer steps per converged reduction",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.Coefficients, m.SizeReductions, m.Conditions, m.Swaps, m.Reductions, m.Iterations,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) CoefficientComputed(int, int, *big.Rat) { m.Coefficients.Inc() }

func (m *Metrics) VectorReplaced(int, int, *big.Int, vector.Vector) { m.SizeReductions.Inc() }

func (m *Metrics) ConditionChecked(_ int, _ *big.Rat, holds bool) {
	if holds {
		m.Conditions.WithLabelValues("pass").Inc()
		return
	}
	m.Conditions.WithLabelValues("fail").Inc()
}

func (m *Metrics) Swapped(int) { m.Swaps.Inc() }

func (m *Metrics) Converged(res *lll.Result) {
	m.Reductions.Inc()
	m.Iterations.Observe(float64(res.Iterations))
}
