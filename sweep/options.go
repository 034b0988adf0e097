// SPDX-License-Identifier: MIT
// Package sweep: run options.
//
// Option constructors panic on nonsensical values (programmer error).

package sweep

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/lvoptics/berreman"
)

// DefaultStrict keeps per-wavelength failures in the dataset.
const DefaultStrict = false

const (
	panicWorkers = "sweep: WithWorkers: n must be ≥ 1"
	panicLogger  = "sweep: WithLogger: nil logger"
)

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	workers    int
	strict     bool
	logger     *slog.Logger
	engineOpts []berreman.Option
}

func newRunConfig(opts ...Option) runConfig {
	cfg := runConfig{
		workers: runtime.NumCPU(),
		strict:  DefaultStrict,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	return cfg
}

// WithWorkers sets the number of concurrent workers (default NumCPU).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkers)
	}
	return func(c *runConfig) { c.workers = n }
}

// WithStrict makes the first per-wavelength failure abort the sweep.
func WithStrict() Option {
	return func(c *runConfig) { c.strict = true }
}

// WithLogger routes sweep events to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLogger)
	}
	return func(c *runConfig) { c.logger = l }
}

// WithEngineOptions passes options to the berreman engine used by the sweep.
func WithEngineOptions(opts ...berreman.Option) Option {
	return func(c *runConfig) { c.engineOpts = append(c.engineOpts, opts...) }
}
