// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package midnight

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/solar/place"
	"cloudeng.io/sync/errgroup"
)

// Sample pairs an instant with the sun's altitude at that instant, in
// degrees.
type Sample struct {
	When     time.Time
	Altitude float64
}

func (s Sample) String() string {
	return fmt.Sprintf("%v: %.4f°", s.When.Format(TimestampLayout), s.Altitude)
}

// Samples evaluates the ephemeris at evenly spaced instants spanning
// the window, the first exactly at its start and the last exactly at
// its end, and returns them in increasing time order. The number of
// instants is set by WithSampleCount. Any ephemeris error abandons
// the scan.
func (est *Estimator) Samples(ctx context.Context, p place.Place, w Window) ([]Sample, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	n := est.samples
	if w.Duration() < time.Duration(n-1) {
		return nil, fmt.Errorf("window %v: too narrow for %v distinct samples", w, n)
	}
	samples := make([]Sample, n)
	for i := range samples {
		samples[i].When = w.instant(i, n)
	}
	if est.concurrency > 1 {
		g, ctx := errgroup.WithContext(ctx)
		g = errgroup.WithConcurrency(g, est.concurrency)
		for i := range samples {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				pos, err := est.provider.SunPosition(p, samples[i].When)
				if err != nil {
					return err
				}
				samples[i].Altitude = pos.Altitude
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return samples, nil
	}
	for i := range samples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pos, err := est.provider.SunPosition(p, samples[i].When)
		if err != nil {
			return nil, err
		}
		samples[i].Altitude = pos.Altitude
	}
	return samples, nil
}

// lowestIndex returns the index of the lowest altitude, resolving
// ties in favour of the earliest instant.
func lowestIndex(samples []Sample) int {
	low := 0
	for i, s := range samples {
		if s.Altitude < samples[low].Altitude {
			low = i
		}
	}
	return low
}
