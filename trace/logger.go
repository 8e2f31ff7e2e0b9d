// SPDX-License-Identifier: MIT

package trace

import (
	"math/big"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lll/lll"
	"github.com/katalvlaran/lll/vector"
)

var _ lll.Observer = (*Logger)(nil)

// Event names, used as the "event" field of every log line.
const (
	EventCoefficient = "coefficient"
	EventReplace     = "replace"
	EventCondition   = "condition"
	EventSwap        = "swap"
	EventConverged   = "converged"
)

// Logger is an lll.Observer that writes structured zerolog events.
type Logger struct {
	log   zerolog.Logger
	level zerolog.Level
}

// NewLogger returns a Logger writing step events at debug level and the
// final converged event at info level.
func NewLogger(l zerolog.Logger) *Logger {
	return &Logger{log: l.With().Str("component", "lll").Logger(), level: zerolog.DebugLevel}
}

// WithLevel returns a copy that writes step events at lvl.
func (l *Logger) WithLevel(lvl zerolog.Level) *Logger {
	cp := *l
	cp.level = lvl

	return &cp
}

func (l *Logger) CoefficientComputed(idx, j int, coeff *big.Rat) {
	l.log.WithLevel(l.level).
		Str("event", EventCoefficient).
		Int("idx", idx).
		Int("j", j).
		Str("mu", coeff.RatString()).
		Msg("projection coefficient computed")
}

func (l *Logger) VectorReplaced(idx, j int, factor *big.Int, v vector.Vector) {
	l.log.WithLevel(l.level).
		Str("event", EventReplace).
		Int("idx", idx).
		Int("j", j).
		Str("factor", factor.String()).
		Str("vector", v.String()).
		Msg("basis vector size-reduced")
}

func (l *Logger) ConditionChecked(idx int, mu *big.Rat, holds bool) {
	l.log.WithLevel(l.level).
		Str("event", EventCondition).
		Int("idx", idx).
		Str("mu", mu.RatString()).
		Bool("holds", holds).
		Msg("lovasz condition checked")
}

func (l *Logger) Swapped(idx int) {
	l.log.WithLevel(l.level).
		Str("event", EventSwap).
		Int("idx", idx).
		Int("with", idx-1).
		Msg("basis vectors swapped")
}

func (l *Logger) Converged(res *lll.Result) {
	l.log.Info().
		Str("event", EventConverged).
		Int("dimension", len(res.Vectors)).
		Int("iterations", res.Iterations).
		Int("size_reductions", res.SizeReductions).
		Int("swaps", res.Swaps).
		Msg("reduction converged")
}
