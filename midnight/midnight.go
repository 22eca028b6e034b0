// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package midnight estimates solar midnight, the instant at which the
// sun reaches its lowest point below the horizon, to sub-second
// precision within a window of time.
//
// The estimate runs in three stages. The window is sampled at evenly
// spaced instants, the samples either side of the lowest one bracket
// the minimum, and the bracket is then narrowed by a derivative free
// scalar minimization of the sun's altitude as a function of time.
// The sun's position at any instant comes from an injected
// ephemeris.Provider, so the pipeline itself is a deterministic, pure
// function of its inputs.
package midnight

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/solar/ephemeris"
	"cloudeng.io/solar/place"
)

// TimestampLayout renders instants with microsecond precision and a
// numeric zone offset.
const TimestampLayout = "2006-01-02 15:04:05.000000-07:00"

const (
	defaultSampleCount   = 100
	defaultTolerance     = 50 * time.Millisecond
	defaultMaxIterations = 64
)

type options struct {
	samples       int
	tolerance     time.Duration
	maxIterations int
	concurrency   int
}

type Option func(o *options)

// WithSampleCount sets the number of evenly spaced instants at which
// the window is sampled, 100 by default and never fewer than 3. More
// samples tolerate narrower dips but cost more ephemeris evaluations.
func WithSampleCount(n int) Option {
	return func(o *options) {
		o.samples = n
	}
}

// WithTolerance sets the absolute time tolerance to which refinement
// converges, 50ms by default.
func WithTolerance(d time.Duration) Option {
	return func(o *options) {
		o.tolerance = d
	}
}

// WithMaxIterations caps the number of refinement iterations before
// the estimate fails with ErrConvergenceFailure, 64 by default.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithConcurrency sets the number of goroutines used to evaluate the
// coarse samples. Values below 2 leave the scan sequential. The
// refinement stage is inherently sequential and is unaffected.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// Estimator estimates solar midnight using the supplied ephemeris.
// Estimators are stateless and safe for concurrent use.
type Estimator struct {
	provider ephemeris.Provider
	options
}

// New returns an Estimator backed by the supplied ephemeris provider.
func New(provider ephemeris.Provider, opts ...Option) (*Estimator, error) {
	if provider == nil {
		return nil, fmt.Errorf("no ephemeris provider")
	}
	est := &Estimator{provider: provider}
	est.samples = defaultSampleCount
	est.tolerance = defaultTolerance
	est.maxIterations = defaultMaxIterations
	for _, fn := range opts {
		fn(&est.options)
	}
	if est.samples < 3 {
		return nil, fmt.Errorf("sample count %v: need at least 3 to bracket a minimum", est.samples)
	}
	if est.tolerance <= 0 {
		return nil, fmt.Errorf("tolerance %v: must be positive", est.tolerance)
	}
	if est.maxIterations < 1 {
		return nil, fmt.Errorf("max iterations %v: must be positive", est.maxIterations)
	}
	return est, nil
}

// Result is a solar midnight estimate.
type Result struct {
	// When is the estimated instant of solar midnight, expressed in
	// the place's time zone.
	When time.Time
	// Altitude is the sun's altitude at When, in degrees.
	Altitude float64
	// Samples are the coarse samples the estimate started from.
	Samples []Sample
	// Evaluations counts the calls made to the ephemeris provider.
	Evaluations int
	// Iterations counts the refinement iterations used.
	Iterations int
}

// Estimate estimates the instant of solar midnight within the window.
// The returned instant always lies within the window and the sun's
// altitude there never exceeds that of any coarse sample. Identical
// arguments yield identical results.
//
// Estimate fails with ErrNoMinimumInWindow if the sun never drops
// below the horizon within the window, with ErrMinimumAtBoundary if
// the lowest altitude falls on the window's edge, and with
// ErrConvergenceFailure if refinement exhausts its iteration limit.
// Ephemeris errors, including ephemeris.ErrDataUnavailable, are
// returned as they arise. No partial result accompanies an error.
func (est *Estimator) Estimate(ctx context.Context, pl place.Place, w Window) (Result, error) {
	samples, err := est.Samples(ctx, pl, w)
	if err != nil {
		return Result{}, err
	}
	low := lowestIndex(samples)
	if samples[low].Altitude >= 0 {
		return Result{}, fmt.Errorf("window %v: %w", w, ErrNoMinimumInWindow)
	}
	br, err := SelectBracket(samples)
	if err != nil {
		return Result{}, err
	}
	ctxlog.Logger(ctx).Debug("bracketed solar midnight",
		"window", w.String(), "bracket", br.String(), "lowest", samples[low].String())
	best, iterations, evals, err := est.refine(ctx, pl, br, samples[low])
	if err != nil {
		return Result{}, err
	}
	ctxlog.Logger(ctx).Debug("refined solar midnight",
		"when", best.When, "altitude", best.Altitude,
		"iterations", iterations, "evaluations", len(samples)+evals)
	return Result{
		When:        best.When.In(pl.Location()),
		Altitude:    best.Altitude,
		Samples:     samples,
		Evaluations: len(samples) + evals,
		Iterations:  iterations,
	}, nil
}
