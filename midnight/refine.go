// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package midnight

import (
	"context"
	"fmt"
	"math"
	"time"

	"cloudeng.io/solar/place"
)

// The golden section fraction, (3-sqrt(5))/2.
const cgold = 0.3819660112501051

func timeAt(origin time.Time, offset float64) time.Time {
	return origin.Add(time.Duration(offset * float64(time.Second)))
}

// Refine minimizes the sun's altitude over the bracket using Brent's
// method, that is, golden section descent accelerated by parabolic
// interpolation wherever the altitude curve cooperates. The search
// needs no derivatives and stops once the bracketing interval has
// shrunk to within twice the configured tolerance of its centre,
// which places the true minimum within two tolerances of the returned
// instant. It fails with ErrConvergenceFailure if the iteration limit
// is reached first.
func (est *Estimator) Refine(ctx context.Context, pl place.Place, br Bracket) (Sample, error) {
	if err := pl.Validate(); err != nil {
		return Sample{}, err
	}
	if !br.Lower.Before(br.Upper) {
		return Sample{}, fmt.Errorf("bracket %v: lower is not before upper", br)
	}
	mid := br.Lower.Add(br.Upper.Sub(br.Lower) / 2)
	pos, err := est.provider.SunPosition(pl, mid)
	if err != nil {
		return Sample{}, err
	}
	best, _, _, err := est.refine(ctx, pl, br, Sample{When: mid, Altitude: pos.Altitude})
	return best, err
}

// refine is the Brent loop. seed must be a previously evaluated
// sample lying within the bracket; since the best point is only ever
// replaced by a lower one, the result can never be worse than seed.
// It returns the lowest sample together with the iteration and
// ephemeris evaluation counts.
func (est *Estimator) refine(ctx context.Context, pl place.Place, br Bracket, seed Sample) (Sample, int, int, error) {
	var (
		a, b   = 0.0, br.Upper.Sub(br.Lower).Seconds()
		x      = seed.When.Sub(br.Lower).Seconds()
		w, v   = x, x
		fx     = seed.Altitude
		fw, fv = fx, fx
		d, e   float64
		evals  int
	)
	tol1 := est.tolerance.Seconds()
	tol2 := 2 * tol1
	for iter := 1; iter <= est.maxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return Sample{}, iter - 1, evals, err
		}
		xm := 0.5 * (a + b)
		if math.Abs(x-xm) <= tol2-0.5*(b-a) {
			return Sample{When: timeAt(br.Lower, x), Altitude: fx}, iter - 1, evals, nil
		}
		if math.Abs(e) > tol1 {
			// Fit a parabola through x, w, v and trial its minimum,
			// unless the fit is degenerate, the step would leave the
			// interval, or it fails to halve the step before last.
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			etemp := e
			e = d
			if math.Abs(p) >= math.Abs(0.5*q*etemp) || p <= q*(a-x) || p >= q*(b-x) {
				if x >= xm {
					e = a - x
				} else {
					e = b - x
				}
				d = cgold * e
			} else {
				d = p / q
				if u := x + d; u-a < tol2 || b-u < tol2 {
					d = math.Copysign(tol1, xm-x)
				}
			}
		} else {
			if x >= xm {
				e = a - x
			} else {
				e = b - x
			}
			d = cgold * e
		}
		var u float64
		if math.Abs(d) >= tol1 {
			u = x + d
		} else {
			u = x + math.Copysign(tol1, d)
		}
		fu, err := est.altitudeAt(pl, br.Lower, u)
		if err != nil {
			return Sample{}, iter - 1, evals, err
		}
		evals++
		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, w, x = w, x, u
			fv, fw, fx = fw, fx, fu
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || w == x {
				v, w = w, u
				fv, fw = fw, fu
			} else if fu <= fv || v == x || v == w {
				v = u
				fv = fu
			}
		}
	}
	return Sample{}, est.maxIterations, evals, fmt.Errorf("bracket %v: %v iterations at tolerance %v: %w",
		br, est.maxIterations, est.tolerance, ErrConvergenceFailure)
}

func (est *Estimator) altitudeAt(pl place.Place, origin time.Time, offset float64) (float64, error) {
	pos, err := est.provider.SunPosition(pl, timeAt(origin, offset))
	if err != nil {
		return 0, err
	}
	return pos.Altitude, nil
}
