// SPDX-License-Identifier: MIT

// Package lll: functional configuration for the Reducer.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error); runtime problems are returned as errors.
//   - Options are resolved once in New and never mutated afterwards, so a
//     *Reducer can be shared.
package lll

import "context"

// DefaultMaxIterations bounds the number of outer LLL steps per call.
// Reduction of sane inputs at the dimensions this package targets stays far
// below it.
const DefaultMaxIterations = 1 << 20

const (
	panicMaxIterationsInvalid = "lll: WithMaxIterations: n must be > 0"
	panicObserverNil          = "lll: WithObserver: observer must be non-nil"
	panicContextNil           = "lll: WithContext: ctx must be non-nil"
)

// Option mutates Options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxIterations int
	observers     []Observer
	ctx           context.Context
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		maxIterations: DefaultMaxIterations,
		ctx:           context.Background(),
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxIterations caps the number of outer steps (size-reduce + Lovász
// test) a single Reduce call may take. Exceeding it yields ErrNonTermination.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithObserver attaches an Observer. Repeated use attaches several; they are
// notified in the order given.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(panicObserverNil)
	}

	return func(o *Options) { o.observers = append(o.observers, obs) }
}

// WithContext makes Reduce check ctx before every outer step.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicContextNil)
	}

	return func(o *Options) { o.ctx = ctx }
}
