// SPDX-License-Identifier: MIT
// Package sweep: the worker pool.

package sweep

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvoptics/berreman"
	"github.com/katalvlaran/lvoptics/polar"
	"github.com/katalvlaran/lvoptics/structure"
)

// Run evaluates s at every wavelength (metres) for the in-plane wavenumber
// kx and returns the dataset in input order.
//
// Stages:
//  1. Validate the configuration; nothing runs on error.
//  2. Start min(workers, len) goroutines; each claims the next index,
//     evaluates it and writes entries[i].
//  3. Wait, then report strict or context failures.
//
// Errors: ErrEmptySweepConfiguration, ErrNilStructure, ErrInvalidWavelength,
// ErrInvalidKx, ctx.Err() when cancellation left an index unevaluated, and in
// strict mode the first *EntryError.
func Run(ctx context.Context, s *structure.Structure, wavelengths []float64, kx float64, opts ...Option) (*Dataset, error) {
	// Stage 1: configuration
	if len(wavelengths) == 0 {
		return nil, ErrEmptySweepConfiguration
	}
	if s == nil {
		return nil, ErrNilStructure
	}
	if math.IsNaN(kx) || math.IsInf(kx, 0) {
		return nil, fmt.Errorf("Run: kx %g: %w", kx, ErrInvalidKx)
	}
	for i, w := range wavelengths {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return nil, &EntryError{Index: i, Wavelength: w, Err: ErrInvalidWavelength}
		}
	}
	cfg := newRunConfig(opts...)
	engine := berreman.NewEngine(cfg.engineOpts...)

	d := &Dataset{
		id:      uuid.New(),
		kx:      kx,
		entries: make([]Entry, len(wavelengths)),
	}
	log := cfg.logger.With("run", d.id.String())
	workers := cfg.workers
	if workers > len(wavelengths) {
		workers = len(wavelengths)
	}
	log.Info("sweep start", "points", len(wavelengths), "slices", s.NumSlices(), "workers", workers, "kx", kx, "strict", cfg.strict)
	start := time.Now()

	// Stage 2: pool
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		next     int64 = -1
		failures int64
		done     int64
		wg       sync.WaitGroup
		once     sync.Once
		strictE  error
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				i := int(atomic.AddInt64(&next, 1))
				if i >= len(wavelengths) {
					return
				}
				e := evaluate(engine, s, i, berreman.Query{Wavelength: wavelengths[i], Kx: kx})
				d.entries[i] = e
				atomic.AddInt64(&done, 1)
				if e.Err != nil {
					atomic.AddInt64(&failures, 1)
					log.Warn("entry failed", "index", i, "wavelength", wavelengths[i], "err", e.Err)
					if cfg.strict {
						once.Do(func() {
							strictE = e.Err
							cancel()
						})
						return
					}
					continue
				}
				for _, warn := range e.Result.Warnings {
					log.Warn("entry diagnostic", "index", i, "wavelength", wavelengths[i], "err", warn)
				}
			}
		}()
	}
	wg.Wait()

	// Stage 3: outcome
	if strictE != nil {
		log.Error("sweep aborted", "err", strictE)
		return nil, strictE
	}
	if err := ctx.Err(); err != nil && atomic.LoadInt64(&done) < int64(len(wavelengths)) {
		log.Warn("sweep cancelled", "err", err, "evaluated", atomic.LoadInt64(&done))
		return nil, err
	}
	log.Info("sweep done", "duration", time.Since(start), "failed", atomic.LoadInt64(&failures))

	return d, nil
}

// evaluate runs one unit.
func evaluate(engine *berreman.Engine, s *structure.Structure, i int, q berreman.Query) Entry {
	res, err := engine.Evaluate(s, q)
	if err != nil {
		return Entry{Query: q, Err: &EntryError{Index: i, Wavelength: q.Wavelength, Err: err}}
	}

	c, err := polar.FromResult(res)
	if err != nil {
		return Entry{Query: q, Result: res, Err: &EntryError{Index: i, Wavelength: q.Wavelength, Err: err}}
	}

	return Entry{Query: q, Result: res, Coefficients: c}
}
