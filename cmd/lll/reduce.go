package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lll/basisio"
	"github.com/katalvlaran/lll/lll"
	"github.com/katalvlaran/lll/trace"
)

type reduceFlags struct {
	input         inputFlags
	output        string
	maxIterations int
	trace         bool
	metrics       bool
}

func newReduceCmd() *cobra.Command {
	f := &reduceFlags{}
	cmd := &cobra.Command{
		Use:   "reduce [file]",
		Short: "Reduce a lattice basis",
		Long: `Reduce reads a basis and a threshold, runs LLL, and prints the reduced basis.

Without a file the basis is read from stdin; on a terminal you are prompted
for the dimension, each basis vector, and the threshold.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			return runReduce(cmd, path, f)
		},
	}
	f.input.register(cmd.Flags())
	cmd.Flags().StringVar(&f.output, "output", "text", "Output format (text|yaml)")
	cmd.Flags().IntVar(&f.maxIterations, "max-iterations", 0, "Iteration cap (default: from input, else library default)")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "Log every coefficient, replacement, condition and swap")
	cmd.Flags().BoolVar(&f.metrics, "metrics", false, "Collect Prometheus counters and log them on exit")

	return cmd
}

func runReduce(cmd *cobra.Command, path string, f *reduceFlags) error {
	if f.output != "text" && f.output != "yaml" {
		return fmt.Errorf("--output %q: want text or yaml", f.output)
	}
	in, err := loadInput(cmd, path, &f.input)
	if err != nil {
		return err
	}

	opts := []lll.Option{lll.WithContext(cmd.Context())}
	switch {
	case f.maxIterations > 0:
		opts = append(opts, lll.WithMaxIterations(f.maxIterations))
	case f.maxIterations < 0:
		return fmt.Errorf("--max-iterations %d: must be >= 0", f.maxIterations)
	case in.MaxIterations > 0:
		opts = append(opts, lll.WithMaxIterations(in.MaxIterations))
	}
	if f.trace {
		opts = append(opts, lll.WithObserver(trace.NewLogger(log.Logger).WithLevel(zerolog.InfoLevel)))
	}
	var reg *prometheus.Registry
	if f.metrics {
		reg = prometheus.NewRegistry()
		m, err := trace.NewMetrics(reg)
		if err != nil {
			return err
		}
		opts = append(opts, lll.WithObserver(m))
	}

	r, err := lll.New(in.Delta, opts...)
	if err != nil {
		return err
	}
	start := time.Now()
	res, err := r.Reduce(in.Basis)
	if err != nil {
		return err
	}
	log.Info().
		Int("dimension", len(res.Basis)).
		Int("iterations", res.Iterations).
		Int("swaps", res.Swaps).
		Dur("elapsed", time.Since(start)).
		Msg("basis reduced")
	if reg != nil {
		logMetrics(reg)
	}

	if f.output == "yaml" {
		return basisio.WriteYAML(cmd.OutOrStdout(), res, in.Delta)
	}

	return basisio.WriteText(cmd.OutOrStdout(), res.Basis)
}

// logMetrics writes one log line per gathered series.
func logMetrics(reg prometheus.Gatherer) {
	mfs, err := reg.Gather()
	if err != nil {
		log.Warn().Err(err).Msg("gather metrics")
		return
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			ev := log.Info().Str("metric", mf.GetName())
			for _, lp := range m.GetLabel() {
				ev = ev.Str(lp.GetName(), lp.GetValue())
			}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				ev = ev.Float64("value", m.GetCounter().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				ev = ev.Uint64("count", h.GetSampleCount()).Float64("sum", h.GetSampleSum())
			}
			ev.Msg("metric")
		}
	}
}
